package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ads-manager/internal/auth"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port/mocks"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, *mocks.MockUserRepository) {
	users := mocks.NewMockUserRepository(t)
	uc := NewAuthUseCase(users, auth.NewTokenManager("test-secret", time.Hour))
	uc.cost = bcrypt.MinCost
	return uc, users
}

func TestAuth_RegisterAndAuthenticate(t *testing.T) {
	uc, users := newAuthUseCase(t)
	users.EXPECT().GetByEmail(mock.Anything, "ann@example.com").Return(nil, "", nil)
	users.EXPECT().
		Create(mock.Anything, "ann@example.com", "Ann", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, _, hash string) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
		}).
		Return(&domain.User{ID: "u1", Email: "ann@example.com", Name: "Ann"}, nil)

	res, err := uc.Register(context.Background(), domain.Registration{Email: " Ann@Example.com", Password: "secret1", Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)

	id, err := uc.Authenticate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = uc.Authenticate("garbage")
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestAuth_RegisterDuplicate(t *testing.T) {
	uc, users := newAuthUseCase(t)
	users.EXPECT().GetByEmail(mock.Anything, "ann@example.com").Return(&domain.User{ID: "u1"}, "hash", nil)

	_, err := uc.Register(context.Background(), domain.Registration{Email: "ann@example.com", Password: "secret1", Name: "Ann"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, err := uc.Register(context.Background(), domain.Registration{Email: "ann@example.com", Password: "123", Name: "Ann"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuth_Login(t *testing.T) {
	uc, users := newAuthUseCase(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "u1", Email: "ann@example.com"}
	users.EXPECT().GetByEmail(mock.Anything, "ann@example.com").Return(user, string(hash), nil)
	users.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(nil, "", nil)

	res, err := uc.Login(context.Background(), domain.Credentials{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = uc.Login(context.Background(), domain.Credentials{Email: "ann@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), domain.Credentials{Email: "bob@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuth_Refresh(t *testing.T) {
	uc, users := newAuthUseCase(t)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "ann@example.com"}, nil)
	users.EXPECT().GetByID(mock.Anything, "gone").Return(nil, nil)

	token, err := uc.Refresh(context.Background(), "u1")
	require.NoError(t, err)
	id, err := uc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = uc.Refresh(context.Background(), "gone")
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}
