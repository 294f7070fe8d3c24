// Package user defines the wallet's user identity and its domain errors.
package user

import (
	"errors"
	"time"

	"github.com/Elias-Manica/My-wallet-back/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrEmailTaken is returned on sign-up when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login when the email or password is wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUserNotFound is returned when a user id resolves to no record.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a bearer token maps to no active session.
	ErrSessionNotFound = errors.New("invalid token")

	// ErrInvalidName is returned when a display name has no letter or digit.
	ErrInvalidName = errors.New("name must contain at least one letter or number")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("email must be a valid email address")

	// ErrInvalidPassword is returned when a password has no letter or digit.
	ErrInvalidPassword = errors.New("password must contain at least one letter or number")
)

// User is a registered wallet owner. The password is stored only as a
// bcrypt hash; the plain text never leaves New.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}

// New validates the sign-up fields, hashes the password and returns a user
// ready to persist.
func New(name, email, password string) (*User, error) {
	if !utils.HasAlphanumeric(name) {
		return nil, ErrInvalidName
	}
	if !utils.IsEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !utils.HasAlphanumeric(password) {
		return nil, ErrInvalidPassword
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
		CreatedAt:      time.Now(),
	}, nil
}
