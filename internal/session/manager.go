package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Romeo509/alx-backend-user-data/internal/user"
)

// ErrUnknownUser reports a session creation attempt for a user the
// directory does not know.
var ErrUnknownUser = errors.New("unknown user")

// Manager owns session lifecycle policy: id generation, expiry, and
// revocation. Stores stay dumb key-value maps; the Manager decides
// what a live session means.
type Manager struct {
	store Store
	users user.Directory
	ttl   time.Duration // 0 means sessions never expire
	now   func() time.Time
}

func NewManager(store Store, users user.Directory, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		users: users,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Create issues a fresh session for the user. It fails for an empty or
// unknown user id.
func (m *Manager) Create(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrUnknownUser
	}

	if _, err := m.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("verify user: %w", err)
	}

	now := m.now()
	s := Session{
		SessionID: GenerateID(),
		UserID:    userID,
		CreatedAt: now,
	}
	if m.ttl > 0 {
		s.ExpiresAt = now.Add(m.ttl)
	}

	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Resolve maps a session id to its user id. Unknown, malformed, and
// expired identifiers are all reported the same way: an empty user id
// with no error. Expiry is enforced lazily here, never by a sweeper,
// and never slides.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", nil
	}

	s, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}

	if s.Expired(m.now()) {
		// Best effort cleanup; the answer is "absent" regardless.
		_, _ = m.store.Delete(ctx, sessionID)
		return "", nil
	}

	return s.UserID, nil
}

// Destroy removes the session and reports whether anything was
// removed. Destroying an absent id is not an error.
func (m *Manager) Destroy(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	return m.store.Delete(ctx, sessionID)
}

// DestroyAllForUser revokes every session the user holds, e.g. after a
// password change.
func (m *Manager) DestroyAllForUser(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, nil
	}
	return m.store.DeleteByUser(ctx, userID)
}

// TTL returns the configured session duration; zero means sessions
// never expire.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
