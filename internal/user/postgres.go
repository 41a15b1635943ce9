package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/Romeo509/alx-backend-user-data/internal/db"

	"github.com/google/uuid"
)

// PostgresDirectory stores user records in PostgreSQL.
type PostgresDirectory struct {
	db *db.DB
}

func NewPostgresDirectory(db *db.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) Create(ctx context.Context, email, hashedPassword string) (*User, error) {

	var exists bool
	err := d.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE LOWER(email) = LOWER($1)
		)
	`, email).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	var (
		id        uuid.UUID
		createdAt time.Time
	)
	err = d.db.QueryRowContext(ctx, `
		INSERT INTO users (email, hashed_password)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, email, hashedPassword).Scan(&id, &createdAt)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:             id.String(),
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      createdAt,
	}, nil
}

func (d *PostgresDirectory) GetByID(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	return d.getOne(ctx, `
		SELECT id, email, hashed_password, COALESCE(reset_token, ''), created_at
		FROM users
		WHERE id = $1
	`, id)
}

func (d *PostgresDirectory) GetByEmail(ctx context.Context, email string) (*User, error) {
	return d.getOne(ctx, `
		SELECT id, email, hashed_password, COALESCE(reset_token, ''), created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email)
}

func (d *PostgresDirectory) GetByResetToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	return d.getOne(ctx, `
		SELECT id, email, hashed_password, COALESCE(reset_token, ''), created_at
		FROM users
		WHERE reset_token = $1
	`, token)
}

func (d *PostgresDirectory) getOne(ctx context.Context, query string, arg any) (*User, error) {
	var (
		u  User
		id uuid.UUID
	)
	err := d.db.QueryRowContext(ctx, query, arg).Scan(
		&id,
		&u.Email,
		&u.HashedPassword,
		&u.ResetToken,
		&u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u.ID = id.String()
	return &u, nil
}

func (d *PostgresDirectory) SetResetToken(ctx context.Context, userID, token string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return ErrNotFound
	}
	res, err := d.db.ExecContext(ctx, `
		UPDATE users
		SET reset_token = NULLIF($2, ''), updated_at = NOW()
		WHERE id = $1
	`, userID, token)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (d *PostgresDirectory) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return ErrNotFound
	}
	res, err := d.db.ExecContext(ctx, `
		UPDATE users
		SET hashed_password = $2, reset_token = NULL, updated_at = NOW()
		WHERE id = $1
	`, userID, hashedPassword)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
