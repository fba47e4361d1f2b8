//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/shelf-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := Connect(context.Background(), url)
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(context.Background()))
	return db
}

func TestSyncRunRoundTrip_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()

	runID, err := db.CreateSyncRun(ctx)
	require.NoError(t, err)

	outcome := &types.SyncOutcome{
		Successful: 2,
		Failed:     1,
		NotFound:   1,
		Items: []types.SyncItemResult{
			{Title: "Deep Work", Author: "Cal Newport", Success: true},
			{Title: "The Martian", Author: "Andy Weir", Success: true},
			{Title: "Broken Book", Reason: "connection reset"},
			{Title: "Obscure Zine", Reason: "no catalog match"},
		},
	}
	require.NoError(t, db.SaveSyncItems(ctx, runID, outcome.Items))
	require.NoError(t, db.CompleteSyncRun(ctx, runID, outcome))

	run, err := db.GetSyncRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, 2, run.Successful)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 1, run.NotFound)
	assert.NotNil(t, run.CompletedAt)

	items, err := db.ListSyncItems(ctx, runID)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Deep Work", items[0].Title)
	assert.Equal(t, "Obscure Zine", items[3].Title)
}
