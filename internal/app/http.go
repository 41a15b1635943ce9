package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Romeo509/alx-backend-user-data/internal/auth"
	"github.com/Romeo509/alx-backend-user-data/internal/auth/credentials"
	"github.com/Romeo509/alx-backend-user-data/internal/auth/handler"
	"github.com/Romeo509/alx-backend-user-data/internal/config"
	"github.com/Romeo509/alx-backend-user-data/internal/middleware"
	"github.com/Romeo509/alx-backend-user-data/internal/session"
	"github.com/Romeo509/alx-backend-user-data/internal/user"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	users, userCleanup, err := setupUsers(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store, storeCleanup, err := setupSessionStore(cfg)
	if err != nil {
		if userCleanup != nil {
			_ = userCleanup()
		}
		return nil, nil, err
	}

	sessions := session.NewManager(store, users, cfg.SessionTTL)
	credentialService := credentials.NewService(users)

	cookieOpts := session.CookieOptions{
		Name:     cfg.SessionName,
		SameSite: http.SameSiteLaxMode,
	}

	authenticator, deniedStatus, err := setupAuthenticator(cfg, sessions, users)
	if err != nil {
		return nil, nil, err
	}

	gate := middleware.NewGate(authenticator, deniedStatus)

	authHandler := handler.NewHandler(
		credentialService,
		sessions,
		users,
		cookieOpts,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// One auth decision per request; excluded paths pass straight through.
	router.Use(middleware.GinGate(gate))

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")

	api.GET("/me", func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.Status(http.StatusForbidden)
			return
		}
		c.JSON(200, gin.H{
			"user_id": userID,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	cleanup := func() error {
		var firstErr error
		for _, fn := range []func() error{storeCleanup, userCleanup} {
			if fn == nil {
				continue
			}
			if err := fn(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	return router, cleanup, nil
}

// setupUsers picks the user directory backend: Postgres when a DSN is
// configured, otherwise an in-process map.
func setupUsers(ctx context.Context, cfg config.Config) (user.Directory, func() error, error) {
	if cfg.DatabaseDSN == "" {
		return user.NewMemoryDirectory(), nil, nil
	}

	pg, err := setupPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}
	return user.NewPostgresDirectory(pg), pg.Close, nil
}

// setupSessionStore picks the session store variant. Expiration policy
// is not the store's concern; all variants share the Manager's.
func setupSessionStore(cfg config.Config) (session.Store, func() error, error) {
	switch cfg.SessionStore {
	case config.StoreMemory:
		return session.NewMemoryStore(), nil, nil

	case config.StoreFile:
		return session.NewFileStore(cfg.SessionFile), nil, nil

	case config.StoreRedis:
		client, err := setupRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return session.NewRedisStore(client.Client), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}

// setupAuthenticator selects the auth strategy and the HTTP status a
// denial maps to: missing/invalid credentials are a 401, a missing or
// dead session is a 403.
func setupAuthenticator(
	cfg config.Config,
	sessions *session.Manager,
	users user.Directory,
) (auth.Authenticator, int, error) {
	switch cfg.AuthMode {
	case config.AuthModeBasic:
		return auth.NewBasicAuth(users, cfg.ExcludedPaths), http.StatusUnauthorized, nil

	case config.AuthModeSession:
		return auth.NewSessionAuth(sessions, users, cfg.SessionName, cfg.ExcludedPaths),
			http.StatusForbidden, nil

	default:
		return nil, 0, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}
