// Package userapp handles registration, login and identity resolution.
package userapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"sonet/internal/core/apperr"
	userEntity "sonet/internal/core/user"
	"sonet/internal/ports/content"
)

// ErrInvalidCredentials covers both unknown handle and wrong password, so a
// login attempt cannot probe which handles exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenValidity = 24 * time.Hour

type UserService struct {
	store  content.Store
	jwtKey []byte
}

func NewUserService(store content.Store, jwtKey []byte) *UserService {
	return &UserService{
		store:  store,
		jwtKey: jwtKey,
	}
}

// RegisterUser creates a user with a bcrypt-hashed credential. The handle
// must be unique among live users.
func (s *UserService) RegisterUser(ctx context.Context, handle, password string) (*content.UserDTO, error) {
	if existing, err := s.store.FindUserByHandle(ctx, handle); err == nil && existing != nil {
		return nil, &apperr.Conflict{Reason: fmt.Sprintf("handle %s is already taken", handle)}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Handle:   handle,
		Password: string(hashed),
		Role:     userEntity.RoleUser,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return toUserDTO(u), nil
}

// LoginUser verifies the credential and mints a signed token.
func (s *UserService) LoginUser(ctx context.Context, handle, password string) (*content.LoginResponse, error) {
	u, err := s.store.FindUserByHandle(ctx, handle)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenValidity)
	token, err := s.generateJWT(u, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &content.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Resolve maps an authenticated principal's ID to a live user. A miss is an
// internal inconsistency: authentication already vouched for the caller.
func (s *UserService) Resolve(ctx context.Context, userID string) (*content.UserDTO, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, &apperr.Unresolvable{UserID: userID}
	}

	u, err := s.store.FindUserByID(ctx, uid)
	if err != nil {
		return nil, &apperr.Unresolvable{UserID: userID}
	}
	return toUserDTO(u), nil
}

func (s *UserService) generateJWT(u *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Issuer:    "sonet",
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

func toUserDTO(u *userEntity.User) *content.UserDTO {
	return &content.UserDTO{
		ID:     u.ID.String(),
		Handle: u.Handle,
		Role:   string(u.Role),
	}
}
