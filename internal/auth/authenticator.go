package auth

import (
	"errors"
	"net/http"
	"strings"
)

// Extraction failures. The authorization outcome collapses all of
// these to a denial, but the boundary keeps them apart for logging.
var (
	ErrMalformedCredential = errors.New("malformed credential")
	ErrUnknownIdentity     = errors.New("unknown identity")
	ErrInvalidSecret       = errors.New("invalid secret")
	ErrUnknownSession      = errors.New("unknown or expired session")
)

// State is the terminal outcome of one authentication decision.
type State int

const (
	// StateAnonymous allows the request through without an identity,
	// e.g. for excluded paths.
	StateAnonymous State = iota
	// StateAuthenticated carries a resolved user id.
	StateAuthenticated
	// StateDenied rejects the request.
	StateDenied
)

// Outcome is the result of identifying one request.
type Outcome struct {
	State  State
	UserID string
	Err    error // extraction detail, never exposed to clients
}

// Authenticator decides, once per inbound request, whether the request
// carries a usable identity. Implementations must be total: malformed
// input maps to a denial, never a panic.
type Authenticator interface {
	// RequireAuth reports whether the path is subject to
	// authentication at all.
	RequireAuth(path string) bool

	// Identify extracts and verifies credentials from the request.
	Identify(r *http.Request) Outcome
}

func anonymous() Outcome {
	return Outcome{State: StateAnonymous}
}

func authenticated(userID string) Outcome {
	return Outcome{State: StateAuthenticated, UserID: userID}
}

func denied(err error) Outcome {
	return Outcome{State: StateDenied, Err: err}
}

// RequiresAuth reports whether a path is covered by the excluded-path
// list. Entries and the path are compared after trailing-slash
// normalization; an entry ending in "*" matches by prefix.
func RequiresAuth(path string, excluded []string) bool {
	if path == "" {
		return true
	}
	if len(excluded) == 0 {
		return true
	}

	normalized := normalizePath(path)

	for _, entry := range excluded {
		entry = normalizePath(entry)
		if strings.HasSuffix(entry, "*") {
			if strings.HasPrefix(normalized, strings.TrimRight(entry, "*")) {
				return false
			}
		} else if normalized == entry {
			return false
		}
	}

	return true
}

func normalizePath(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimRight(path, "/")
}
