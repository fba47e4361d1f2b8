// Package db provides PostgreSQL persistence for sync-run history. The
// catalog core itself owns no durable state; storing sync outcomes is the
// CLI's job and lives here.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the sync history tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sync_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ,
			successful INT NOT NULL DEFAULT 0,
			failed INT NOT NULL DEFAULT 0,
			not_found INT NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS sync_run_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			run_id UUID NOT NULL REFERENCES sync_runs(id) ON DELETE CASCADE,
			position INT NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT '',
			success BOOLEAN NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_sync_run_items_run_id ON sync_run_items(run_id);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure sync schema: %w", err)
	}
	return nil
}
