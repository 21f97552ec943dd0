package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// User is an account that owns campaigns.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials are the login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries the fields needed to create an account.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

func (r Registration) Validate() error {
	if r.Email == "" || r.Password == "" || strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: email, password, and name are required", ErrValidation)
	}
	if len(r.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, MinPasswordLength)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: please provide a valid email address", ErrValidation)
	}
	return nil
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
