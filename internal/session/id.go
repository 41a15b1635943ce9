package session

import (
	"github.com/google/uuid"
)

// GenerateID returns a fresh opaque session identifier. UUIDv4 gives
// 122 bits of entropy from crypto/rand; identifiers are never reused.
func GenerateID() string {
	return uuid.NewString()
}
