package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testSession(id, userID string) Session {
	return Session{
		SessionID: id,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}

func TestFileStore_CreateGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store := NewFileStore(path)
	ctx := context.Background()

	if err := store.Create(ctx, testSession("sid-1", "user-1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.UserID != "user-1" {
		t.Fatalf("expected user-1, got %+v", got)
	}

	removed, err := store.Delete(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Error("expected delete to report removal")
	}

	removed, err = store.Delete(ctx, "sid-1")
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if removed {
		t.Error("expected second delete to be a no-op")
	}
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	ctx := context.Background()

	if err := NewFileStore(path).Create(ctx, testSession("sid-1", "user-1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A fresh store instance sees the snapshot written by the first.
	got, err := NewFileStore(path).Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.UserID != "user-1" {
		t.Fatalf("expected persisted session, got %+v", got)
	}
}

func TestFileStore_ReloadsBeforeRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	ctx := context.Background()

	a := NewFileStore(path)
	b := NewFileStore(path)

	if err := a.Create(ctx, testSession("sid-1", "user-1")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// b has never seen sid-1 in memory; it must come from the file.
	got, err := b.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected b to see a's write")
	}

	if _, err := b.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err = a.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Error("expected a to see b's delete")
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "never-created.json"))

	got, err := store.Get(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected absent, got %+v", got)
	}
}

func TestFileStore_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(path).Get(context.Background(), "sid-1")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestFileStore_DeleteByUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store := NewFileStore(path)
	ctx := context.Background()

	for _, s := range []Session{
		testSession("sid-1", "user-1"),
		testSession("sid-2", "user-1"),
		testSession("sid-3", "user-2"),
	} {
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	n, err := store.DeleteByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("DeleteByUser failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 removals, got %d", n)
	}

	if got, _ := store.Get(ctx, "sid-3"); got == nil {
		t.Error("unrelated session was removed")
	}
}
