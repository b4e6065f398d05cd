package database

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"sonet/internal/core/apperr"
	"sonet/internal/core/user"
)

func (s *ContentStoreDatabase) CreateUser(ctx context.Context, u *user.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperr.Conflict{Reason: "handle " + u.Handle + " is already taken"}
		}
		return err
	}
	return nil
}

func (s *ContentStoreDatabase) FindUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	if err := s.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user", id.String())
	}
	return &u, nil
}

func (s *ContentStoreDatabase) FindUserByHandle(ctx context.Context, handle string) (*user.User, error) {
	var u user.User
	if err := s.db.WithContext(ctx).
		Where("handle = ? AND deleted_at IS NULL", handle).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user", handle)
	}
	return &u, nil
}
