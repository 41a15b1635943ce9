package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Auth strategy selected at startup.
const (
	AuthModeBasic   = "basic"
	AuthModeSession = "session"
)

// Session store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

type Config struct {
	AppPort string

	AuthMode      string
	SessionStore  string
	SessionName   string        // cookie carrying the session id
	SessionTTL    time.Duration // 0 means sessions never expire
	SessionFile   string        // snapshot path for the file store
	ExcludedPaths []string      // paths that bypass authentication

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "5000"),

		AuthMode:     getenv("AUTH_MODE", AuthModeSession),
		SessionStore: getenv("SESSION_STORE", StoreMemory),
		SessionName:  getenv("SESSION_NAME", "session_id"),
		SessionTTL:   parseSeconds(os.Getenv("SESSION_DURATION")),
		SessionFile:  getenv("SESSION_FILE", ".db_sessions.json"),

		ExcludedPaths: splitPaths(getenv(
			"EXCLUDED_PATHS",
			"/,/health,/users,/sessions,/reset_password",
		)),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseSeconds converts a seconds count to a duration. Anything
// unparseable or negative collapses to zero, i.e. no expiration.
func parseSeconds(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
