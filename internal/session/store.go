package session

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable reports that the backing store could not be
// reached. It is never swallowed; callers decide how to surface it.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Session represents an authenticated client lifetime.
// It intentionally stores only identity pointers, not auth state.
type Session struct {
	SessionID string    `json:"session_id"` // unique session identifier
	UserID    string    `json:"user_id"`    // references the user directory
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"` // zero means the session never expires
}

// Expired reports whether the session has passed its expiry at the
// given instant. A session is valid right up to, but not at, the
// boundary.
func (s *Session) Expired(at time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !at.Before(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved.
// Implementations must be safe for concurrent use within a process.
type Store interface {
	Create(ctx context.Context, s Session) error

	// Get returns nil with no error when the session id is unknown.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Delete reports whether a removal actually occurred. Deleting an
	// absent id is not an error.
	Delete(ctx context.Context, sessionID string) (bool, error)

	// DeleteByUser removes every session belonging to the user and
	// returns how many were removed.
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
