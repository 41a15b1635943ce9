package user

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// User is a directory record. HashedPassword is opaque to everything
// except the credentials package.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	ResetToken     string
	CreatedAt      time.Time
}

// Directory is the user record store. Implementations must treat email
// lookups case-insensitively and return ErrNotFound rather than nil
// records for missing entries.
type Directory interface {
	Create(ctx context.Context, email, hashedPassword string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByResetToken(ctx context.Context, token string) (*User, error)

	// SetResetToken stores a reset token on the user, replacing any
	// previous one. An empty token clears it.
	SetResetToken(ctx context.Context, userID, token string) error

	// UpdatePassword replaces the stored hash and clears the reset token.
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
}
