package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/shelf-agent/internal/types"
)

// SyncRun is one persisted synchronization run.
type SyncRun struct {
	ID          uuid.UUID
	StartedAt   time.Time
	CompletedAt *time.Time
	Successful  int
	Failed      int
	NotFound    int
}

// CreateSyncRun creates a new sync run record and returns its ID.
func (db *DB) CreateSyncRun(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sync_runs DEFAULT VALUES RETURNING id`,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create sync run: %w", err)
	}
	return id, nil
}

// CompleteSyncRun records the final counts for a sync run.
func (db *DB) CompleteSyncRun(ctx context.Context, runID uuid.UUID, outcome *types.SyncOutcome) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sync_runs
		 SET completed_at = NOW(), successful = $1, failed = $2, not_found = $3
		 WHERE id = $4`,
		outcome.Successful, outcome.Failed, outcome.NotFound, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete sync run: %w", err)
	}
	return nil
}

// SaveSyncItems stores the per-item detail list for a run, preserving order.
func (db *DB) SaveSyncItems(ctx context.Context, runID uuid.UUID, items []types.SyncItemResult) error {
	for i, item := range items {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO sync_run_items (run_id, position, title, author, success, reason)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			runID, i, item.Title, item.Author, item.Success, item.Reason,
		)
		if err != nil {
			return fmt.Errorf("failed to save sync item %d: %w", i, err)
		}
	}
	return nil
}

// GetSyncRun fetches one sync run by ID.
func (db *DB) GetSyncRun(ctx context.Context, runID uuid.UUID) (*SyncRun, error) {
	var run SyncRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, started_at, completed_at, successful, failed, not_found
		 FROM sync_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.StartedAt, &run.CompletedAt, &run.Successful, &run.Failed, &run.NotFound)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync run: %w", err)
	}
	return &run, nil
}

// ListSyncItems returns the detail list for a run in original item order.
func (db *DB) ListSyncItems(ctx context.Context, runID uuid.UUID) ([]types.SyncItemResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, author, success, reason
		 FROM sync_run_items WHERE run_id = $1 ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync items: %w", err)
	}
	defer rows.Close()

	var items []types.SyncItemResult
	for rows.Next() {
		var item types.SyncItemResult
		if err := rows.Scan(&item.Title, &item.Author, &item.Success, &item.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan sync item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
