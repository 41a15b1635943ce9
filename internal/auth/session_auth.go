package auth

import (
	"fmt"
	"net/http"

	"github.com/Romeo509/alx-backend-user-data/internal/session"
	"github.com/Romeo509/alx-backend-user-data/internal/user"
)

// SessionAuth authenticates requests from an opaque session cookie.
// Volatile, expiring, and durable behavior all come from how the
// underlying session.Manager is configured; the decision logic here is
// identical for every variant.
type SessionAuth struct {
	sessions   *session.Manager
	users      user.Directory
	cookieName string
	excluded   []string
}

func NewSessionAuth(
	sessions *session.Manager,
	users user.Directory,
	cookieName string,
	excludedPaths []string,
) *SessionAuth {
	if cookieName == "" {
		cookieName = session.DefaultCookieName
	}
	return &SessionAuth{
		sessions:   sessions,
		users:      users,
		cookieName: cookieName,
		excluded:   excludedPaths,
	}
}

func (s *SessionAuth) RequireAuth(path string) bool {
	return RequiresAuth(path, s.excluded)
}

func (s *SessionAuth) Identify(r *http.Request) Outcome {
	if r == nil {
		return denied(ErrMalformedCredential)
	}

	if !s.RequireAuth(r.URL.Path) {
		return anonymous()
	}

	sessionID := s.SessionCookie(r)
	if sessionID == "" {
		return denied(ErrMalformedCredential)
	}

	userID, err := s.sessions.Resolve(r.Context(), sessionID)
	if err != nil {
		// Store failures surface as hard errors, never as a quiet 403.
		return denied(fmt.Errorf("resolve session: %w", err))
	}
	if userID == "" {
		// Expired and never-existed are deliberately indistinguishable.
		return denied(ErrUnknownSession)
	}

	u, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		if err == user.ErrNotFound {
			return denied(ErrUnknownIdentity)
		}
		return denied(fmt.Errorf("directory lookup: %w", err))
	}

	return authenticated(u.ID)
}

// SessionCookie returns the raw session id carried by the request, or
// empty when the cookie is absent.
func (s *SessionAuth) SessionCookie(r *http.Request) string {
	if r == nil {
		return ""
	}
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
