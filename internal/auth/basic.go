package auth

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/Romeo509/alx-backend-user-data/internal/auth/credentials"
	"github.com/Romeo509/alx-backend-user-data/internal/user"
)

const basicPrefix = "Basic "

// BasicAuth authenticates every request from an Authorization header
// carrying base64-encoded "email:password" credentials.
type BasicAuth struct {
	users    user.Directory
	excluded []string
}

func NewBasicAuth(users user.Directory, excludedPaths []string) *BasicAuth {
	return &BasicAuth{users: users, excluded: excludedPaths}
}

func (b *BasicAuth) RequireAuth(path string) bool {
	return RequiresAuth(path, b.excluded)
}

func (b *BasicAuth) Identify(r *http.Request) Outcome {
	if r == nil {
		return denied(ErrMalformedCredential)
	}

	if !b.RequireAuth(r.URL.Path) {
		return anonymous()
	}

	email, secret, err := DecodeBasicHeader(r.Header.Get("Authorization"))
	if err != nil {
		return denied(err)
	}

	u, err := b.users.GetByEmail(r.Context(), email)
	if err != nil {
		if err == user.ErrNotFound {
			return denied(ErrUnknownIdentity)
		}
		return denied(fmt.Errorf("directory lookup: %w", err))
	}

	if !credentials.VerifyPassword(u.HashedPassword, secret) {
		return denied(ErrInvalidSecret)
	}

	return authenticated(u.ID)
}

// DecodeBasicHeader extracts (identifier, secret) from a Basic
// Authorization header. The decoded payload is split on the last
// colon, so identifiers may themselves contain colons.
func DecodeBasicHeader(header string) (string, string, error) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", "", ErrMalformedCredential
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(basicPrefix):])
	if err != nil {
		return "", "", ErrMalformedCredential
	}

	idx := strings.LastIndex(string(decoded), ":")
	if idx < 0 {
		return "", "", ErrMalformedCredential
	}

	return string(decoded[:idx]), string(decoded[idx+1:]), nil
}
