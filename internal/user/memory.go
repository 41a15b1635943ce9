package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryDirectory keeps user records in a process-local map. Intended
// for tests and single-instance deployments without a database.
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by user id
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{users: make(map[string]*User)}
}

func (d *MemoryDirectory) Create(ctx context.Context, email, hashedPassword string) (*User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrDuplicateEmail
		}
	}

	u := &User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now(),
	}
	d.users[u.ID] = u

	clone := *u
	return &clone, nil
}

func (d *MemoryDirectory) GetByID(ctx context.Context, id string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (d *MemoryDirectory) GetByEmail(ctx context.Context, email string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (d *MemoryDirectory) GetByResetToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.ResetToken == token {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (d *MemoryDirectory) SetResetToken(ctx context.Context, userID, token string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.ResetToken = token
	return nil
}

func (d *MemoryDirectory) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.HashedPassword = hashedPassword
	u.ResetToken = ""
	return nil
}
