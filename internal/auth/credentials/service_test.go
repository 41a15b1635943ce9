package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/Romeo509/alx-backend-user-data/internal/user"
)

func newService() (*Service, user.Directory) {
	users := user.NewMemoryDirectory()
	return NewService(users), users
}

func TestService_RegisterAndAuthenticate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@b.com", "pw1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if u.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %q", u.Email)
	}
	if u.HashedPassword == "pw1" {
		t.Error("password stored in clear text")
	}

	userID, err := svc.Authenticate(ctx, "a@b.com", "pw1")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if userID != u.ID {
		t.Errorf("expected user %q, got %q", u.ID, userID)
	}
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "pw1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Register(ctx, "a@b.com", "other")
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}

	// Case differences do not make a new account.
	_, err = svc.Register(ctx, "A@B.COM", "other")
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered for case variant, got %v", err)
	}
}

func TestService_AuthenticateRejections(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "pw1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	if _, err := svc.Authenticate(ctx, "nobody@b.com", "pw1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_ResetFlow(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@b.com", "pw1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	token, err := svc.ResetToken(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("ResetToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	// A second request replaces the first token.
	token2, err := svc.ResetToken(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("second ResetToken failed: %v", err)
	}
	if token2 == token {
		t.Error("expected a fresh token per request")
	}
	if _, err := svc.UpdatePassword(ctx, token, "pw2"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("stale token: expected ErrInvalidResetToken, got %v", err)
	}

	updated, err := svc.UpdatePassword(ctx, token2, "pw2")
	if err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}
	if updated.ID != u.ID {
		t.Errorf("expected user %q, got %q", u.ID, updated.ID)
	}

	if _, err := svc.Authenticate(ctx, "a@b.com", "pw1"); err == nil {
		t.Error("old password still valid after update")
	}
	if _, err := svc.Authenticate(ctx, "a@b.com", "pw2"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	// The token is single use.
	if _, err := svc.UpdatePassword(ctx, token2, "pw3"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("consumed token: expected ErrInvalidResetToken, got %v", err)
	}
}

func TestService_ResetTokenUnknownEmail(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ResetToken(context.Background(), "nobody@b.com")
	if !errors.Is(err, user.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
