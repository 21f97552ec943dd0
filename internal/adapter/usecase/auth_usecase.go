package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ads-manager/internal/auth"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

const bcryptCost = 12

// AuthUseCase registers and logs in users and issues access tokens.
type AuthUseCase struct {
	users  port.UserRepository
	tokens *auth.TokenManager
	cost   int
}

func NewAuthUseCase(users port.UserRepository, tokens *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, cost: bcryptCost}
}

func (u *AuthUseCase) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	existing, _, err := u.users.GetByEmail(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := u.users.Create(ctx, reg.Email, strings.TrimSpace(reg.Name), string(hash))
	if err != nil {
		return nil, err
	}
	return u.result(user)
}

func (u *AuthUseCase) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	user, hash, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return u.result(user)
}

func (u *AuthUseCase) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	return orNotFound(user, err, "user")
}

func (u *AuthUseCase) Refresh(ctx context.Context, userID string) (string, error) {
	user, err := u.Profile(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.tokens.Issue(user.ID, user.Email)
}

func (u *AuthUseCase) Authenticate(token string) (string, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return "", errors.Join(domain.ErrAuthRequired, err)
	}
	return claims.Subject, nil
}

func (u *AuthUseCase) result(user *domain.User) (*domain.AuthResult, error) {
	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{User: *user, Token: token}, nil
}
