package app

import (
	"context"
	"database/sql"

	"github.com/Romeo509/alx-backend-user-data/internal/db"
	"github.com/Romeo509/alx-backend-user-data/internal/logger"
	"github.com/Romeo509/alx-backend-user-data/internal/redis"

	_ "github.com/lib/pq"
)

// setupPostgres opens the user database and ensures the schema exists.
func setupPostgres(ctx context.Context, dsn string) (*db.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunUserMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	return &db.DB{DB: sqlDB}, nil
}

// setupRedis connects the session cache backend.
func setupRedis(addr, password string) (*redis.Client, error) {
	client, err := redis.New(addr, password)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return client, nil
}
