package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/Romeo509/alx-backend-user-data/internal/user"
	"github.com/Romeo509/alx-backend-user-data/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrInvalidResetToken  = errors.New("invalid reset token")
)

const resetTokenBytes = 32

// Service handles everything that touches a password: registration,
// login validation, and the reset-token flow. Sessions are not its
// business.
type Service struct {
	users user.Directory
}

func NewService(users user.Directory) *Service {
	return &Service{users: users}
}

// Register creates a user with a freshly hashed password.
func (s *Service) Register(
	ctx context.Context,
	email string,
	password string,
) (*user.User, error) {

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

// Authenticate validates an email/password pair and returns the user
// id. Unknown emails and wrong passwords are reported identically.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (string, error) {

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// hide whether the user exists or not
		return "", ErrInvalidCredentials
	}

	if !VerifyPassword(u.HashedPassword, password) {
		return "", ErrInvalidCredentials
	}

	return u.ID, nil
}

// ResetToken issues a single-use token for a password reset,
// replacing any previously issued one.
func (s *Service) ResetToken(ctx context.Context, email string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", user.ErrNotFound
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	token := utils.RandomString(resetTokenBytes)
	if err := s.users.SetResetToken(ctx, u.ID, token); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	return token, nil
}

// UpdatePassword consumes a reset token, stores the new password hash,
// and returns the affected user so callers can revoke their sessions.
func (s *Service) UpdatePassword(
	ctx context.Context,
	resetToken string,
	newPassword string,
) (*user.User, error) {

	u, err := s.users.GetByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, fmt.Errorf("lookup reset token: %w", err)
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}

	return u, nil
}
