package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore persists sessions as a whole-file JSON snapshot. The
// snapshot is reloaded before every read and rewritten on every
// mutation, so state survives restarts and the freshest state wins
// when the file is shared. Cross-process mutations are not locked;
// single-instance deployments only.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Create(ctx context.Context, s Session) error {
	if s.SessionID == "" || s.UserID == "" {
		return fmt.Errorf("session: missing session_id or user_id")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	sessions, err := f.load()
	if err != nil {
		return err
	}
	sessions[s.SessionID] = s
	return f.save(sessions)
}

func (f *FileStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sessions, err := f.load()
	if err != nil {
		return nil, err
	}
	s, ok := sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *FileStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sessions, err := f.load()
	if err != nil {
		return false, err
	}
	if _, ok := sessions[sessionID]; !ok {
		return false, nil
	}
	delete(sessions, sessionID)
	if err := f.save(sessions); err != nil {
		return false, err
	}
	return true, nil
}

func (f *FileStore) DeleteByUser(ctx context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sessions, err := f.load()
	if err != nil {
		return 0, err
	}
	removed := 0
	for id, s := range sessions {
		if s.UserID == userID {
			delete(sessions, id)
			removed++
		}
	}
	if removed > 0 {
		if err := f.save(sessions); err != nil {
			return 0, err
		}
	}
	return removed, nil
}

// load reads the full snapshot. A missing file is an empty store, any
// other failure is a store-unavailable error.
func (f *FileStore) load() (map[string]Session, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return make(map[string]Session), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	sessions := make(map[string]Session)
	if len(data) == 0 {
		return sessions, nil
	}
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("%w: corrupt snapshot: %v", ErrStoreUnavailable, err)
	}
	return sessions, nil
}

// save rewrites the snapshot wholesale.
func (f *FileStore) save(sessions map[string]Session) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("session: failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
