package userapp

import (
	"context"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonet/internal/core/apperr"
	userEntity "sonet/internal/core/user"
	"sonet/internal/ports/content"
)

// fakeStore keeps users in a map; only the user methods are implemented.
type fakeStore struct {
	content.Store

	users map[string]*userEntity.User // by handle
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]*userEntity.User)}
}

func (f *fakeStore) CreateUser(ctx context.Context, u *userEntity.User) error {
	f.users[u.Handle] = u
	return nil
}

func (f *fakeStore) FindUserByHandle(ctx context.Context, handle string) (*userEntity.User, error) {
	if u, ok := f.users[handle]; ok && u.DeletedAt == nil {
		return u, nil
	}
	return nil, &apperr.NotFound{Entity: "user", ID: handle}
}

func (f *fakeStore) FindUserByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	for _, u := range f.users {
		if u.ID == id && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, &apperr.NotFound{Entity: "user", ID: id.String()}
}

var testSecret = []byte("test-secret")

func TestRegisterUser(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testSecret)

	dto, err := svc.RegisterUser(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Handle)
	assert.Equal(t, string(userEntity.RoleUser), dto.Role)

	// the stored credential is hashed
	stored := store.users["alice"]
	assert.NotEqual(t, "pw", stored.Password)
}

func TestRegisterUser_DuplicateHandle(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testSecret)

	_, err := svc.RegisterUser(context.Background(), "alice", "pw")
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), "alice", "other")
	var conflict *apperr.Conflict
	require.ErrorAs(t, err, &conflict)
}

func TestLoginUser(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testSecret)

	registered, err := svc.RegisterUser(context.Background(), "alice", "pw")
	require.NoError(t, err)

	res, err := svc.LoginUser(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Greater(t, res.ExpiresAt, int64(0))

	// the token subject is the user ID
	claims := &jwt.StandardClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.Subject)
}

func TestLoginUser_BadCredentials(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testSecret)

	_, err := svc.RegisterUser(context.Background(), "alice", "pw")
	require.NoError(t, err)

	_, err = svc.LoginUser(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginUser(context.Background(), "nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolve(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store, testSecret)

	registered, err := svc.RegisterUser(context.Background(), "alice", "pw")
	require.NoError(t, err)

	dto, err := svc.Resolve(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Handle)

	var unresolvable *apperr.Unresolvable
	_, err = svc.Resolve(context.Background(), uuid.Must(uuid.NewV4()).String())
	require.ErrorAs(t, err, &unresolvable)

	_, err = svc.Resolve(context.Background(), "not-a-uuid")
	require.ErrorAs(t, err, &unresolvable)
}
