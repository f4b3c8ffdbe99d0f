package kv

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key   TEXT PRIMARY KEY,
	value BYTEA NOT NULL
);
`

// postgresStore implements Store on a PostgreSQL pool for deployments where
// the back office runs against a shared database instead of a local file.
type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed store on the given pool, creating
// the backing table if it does not exist. The pool remains owned by the
// caller; Close on the returned store does not close it.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (Store, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &postgresStore{pool: pool}, nil
}

// Get returns the value for key.
func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, "SELECT value FROM kv_entries WHERE key = $1", key).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set overwrites the value for key in a single statement.
func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		"INSERT INTO kv_entries (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (s *postgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM kv_entries WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close is a no-op: the pool is owned by the caller.
func (s *postgresStore) Close() error {
	return nil
}
