package db

import (
	"context"
	"database/sql"
)

// DB wraps the SQL handle so callers depend on this package rather
// than database/sql directly.
type DB struct {
	*sql.DB
}

const userMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    email text NOT NULL,
    hashed_password text NOT NULL,
    reset_token text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON users (LOWER(email));

CREATE UNIQUE INDEX IF NOT EXISTS users_reset_token_unique
ON users (reset_token)
WHERE reset_token IS NOT NULL;
`

func RunUserMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, userMigration)
	return err
}
