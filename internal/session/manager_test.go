package session

import (
	"context"
	"testing"
	"time"

	"github.com/Romeo509/alx-backend-user-data/internal/user"
)

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, string) {
	t.Helper()

	users := user.NewMemoryDirectory()
	u, err := users.Create(context.Background(), "bob@example.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	return NewManager(NewMemoryStore(), users, ttl), u.ID
}

func TestManager_CreateAndResolve(t *testing.T) {
	m, userID := newTestManager(t, 0)
	ctx := context.Background()

	sess, err := m.Create(ctx, userID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sess.SessionID == "" {
		t.Error("expected session ID to be set")
	}
	if !sess.ExpiresAt.IsZero() {
		t.Error("expected no expiry for zero ttl")
	}

	got, err := m.Resolve(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != userID {
		t.Errorf("expected user %q, got %q", userID, got)
	}
}

func TestManager_CreateRejectsUnknownUser(t *testing.T) {
	m, _ := newTestManager(t, 0)
	ctx := context.Background()

	if _, err := m.Create(ctx, ""); err != ErrUnknownUser {
		t.Errorf("empty user id: expected ErrUnknownUser, got %v", err)
	}
	if _, err := m.Create(ctx, "no-such-user"); err != ErrUnknownUser {
		t.Errorf("unknown user id: expected ErrUnknownUser, got %v", err)
	}
}

func TestManager_SessionIDsAreUnique(t *testing.T) {
	m, userID := newTestManager(t, 0)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess, err := m.Create(ctx, userID)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[sess.SessionID] {
			t.Fatalf("session id %q issued twice", sess.SessionID)
		}
		seen[sess.SessionID] = true
	}
}

func TestManager_ResolveUnknown(t *testing.T) {
	m, _ := newTestManager(t, 0)

	for _, id := range []string{"", "nope", "not-a-uuid!!"} {
		got, err := m.Resolve(context.Background(), id)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", id, err)
		}
		if got != "" {
			t.Errorf("Resolve(%q): expected absent, got %q", id, got)
		}
	}
}

func TestManager_Expiry(t *testing.T) {
	const ttl = 60 * time.Second

	m, userID := newTestManager(t, ttl)
	ctx := context.Background()

	start := time.Now()
	m.now = func() time.Time { return start }

	sess, err := m.Create(ctx, userID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Valid right up to the boundary.
	m.now = func() time.Time { return start.Add(ttl - time.Nanosecond) }
	if got, _ := m.Resolve(ctx, sess.SessionID); got != userID {
		t.Errorf("just before expiry: expected %q, got %q", userID, got)
	}

	// Absent at the boundary and beyond.
	m.now = func() time.Time { return start.Add(ttl) }
	if got, _ := m.Resolve(ctx, sess.SessionID); got != "" {
		t.Errorf("at expiry: expected absent, got %q", got)
	}

	// Expired sessions are cleaned up lazily, so a later resolve with
	// an earlier clock must not resurrect them.
	m.now = func() time.Time { return start }
	if got, _ := m.Resolve(ctx, sess.SessionID); got != "" {
		t.Errorf("after lazy cleanup: expected absent, got %q", got)
	}
}

func TestManager_ZeroTTLNeverExpires(t *testing.T) {
	m, userID := newTestManager(t, 0)
	ctx := context.Background()

	sess, err := m.Create(ctx, userID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }
	if got, _ := m.Resolve(ctx, sess.SessionID); got != userID {
		t.Errorf("expected %q far in the future, got %q", userID, got)
	}
}

func TestManager_Destroy(t *testing.T) {
	m, userID := newTestManager(t, 0)
	ctx := context.Background()

	sess, err := m.Create(ctx, userID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	removed, err := m.Destroy(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if !removed {
		t.Error("expected first destroy to report a removal")
	}

	if got, _ := m.Resolve(ctx, sess.SessionID); got != "" {
		t.Errorf("after destroy: expected absent, got %q", got)
	}

	removed, err = m.Destroy(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("second Destroy failed: %v", err)
	}
	if removed {
		t.Error("expected second destroy to be a no-op")
	}
}

func TestManager_DestroyAllForUser(t *testing.T) {
	m, userID := newTestManager(t, 0)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		sess, err := m.Create(ctx, userID)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids = append(ids, sess.SessionID)
	}

	n, err := m.DestroyAllForUser(ctx, userID)
	if err != nil {
		t.Fatalf("DestroyAllForUser failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 sessions revoked, got %d", n)
	}

	for _, id := range ids {
		if got, _ := m.Resolve(ctx, id); got != "" {
			t.Errorf("session %q survived revocation", id)
		}
	}
}
