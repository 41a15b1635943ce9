package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Romeo509/alx-backend-user-data/internal/auth"
	"github.com/Romeo509/alx-backend-user-data/internal/logger"
	"github.com/Romeo509/alx-backend-user-data/internal/session"
)

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Gate runs one authentication decision per inbound request and either
// attaches the resolved identity to the request context or rejects the
// request. Which HTTP status a denial maps to is the gate's call, not
// the authenticator's.
type Gate struct {
	Auth         auth.Authenticator
	DeniedStatus int // 401 for credential schemes, 403 for session schemes
}

func NewGate(a auth.Authenticator, deniedStatus int) *Gate {
	if deniedStatus == 0 {
		deniedStatus = http.StatusUnauthorized
	}
	return &Gate{Auth: a, DeniedStatus: deniedStatus}
}

func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Excluded paths bypass every further check
		if !g.Auth.RequireAuth(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// 2. One decision per request
		outcome := g.Auth.Identify(r)

		switch outcome.State {
		case auth.StateAnonymous:
			next.ServeHTTP(w, r)

		case auth.StateAuthenticated:
			ctx := context.WithValue(r.Context(), userIDKey, outcome.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))

		default:
			// A dead backing store is an outage, not a bad credential.
			if errors.Is(outcome.Err, session.ErrStoreUnavailable) {
				logger.Error("session store unreachable", map[string]any{
					"path": r.URL.Path, "error": outcome.Err.Error(),
				})
				http.Error(w, "service unavailable", http.StatusInternalServerError)
				return
			}

			if outcome.Err != nil {
				logger.Warn("request denied", map[string]any{
					"path": r.URL.Path, "reason": outcome.Err.Error(),
				})
			}
			http.Error(w, http.StatusText(g.DeniedStatus), g.DeniedStatus)
		}
	})
}
