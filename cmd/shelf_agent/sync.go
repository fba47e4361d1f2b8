package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/shelf-agent/internal/db"
	"github.com/jonathan/shelf-agent/internal/ingestion"
	"github.com/jonathan/shelf-agent/internal/observability"
	"github.com/jonathan/shelf-agent/internal/syncer"
	"github.com/jonathan/shelf-agent/internal/types"
)

var syncCommand = &cobra.Command{
	Use:   "sync",
	Short: "Push a reading-list file into the remote catalog",
	Long: `Reads a JSON reading list, resolves each entry against the catalog's
full-text search, and shelves the matches one at a time with fixed pacing to
stay under the remote rate limit. One entry failing never aborts the batch.

When DATABASE_URL (or --db-url) is set, the run and its per-item outcomes are
recorded in PostgreSQL.`,
	RunE: runSyncCmd,
}

var (
	syncFile    string
	syncDBURL   string
	syncVerbose bool
)

func init() {
	syncCommand.Flags().StringVarP(&syncFile, "file", "f", "", "Path to reading list JSON file (required)")
	syncCommand.Flags().StringVar(&syncDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	syncCommand.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Print per-item progress")
	_ = syncCommand.MarkFlagRequired("file")

	rootCmd.AddCommand(syncCommand)
}

func runSyncCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	client, cfg, err := newCatalogClient()
	if err != nil {
		return err
	}

	items, err := ingestion.LoadReadingList(syncFile)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Reading list is empty; nothing to sync")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	opts := &syncer.Options{}
	if syncVerbose {
		opts.OnProgress = printer.PrintSyncProgress
	}

	outcome := client.NewSynchronizer(opts).Sync(ctx, items)
	printer.PrintSyncOutcome(outcome)

	if url := databaseURL(cfg.DatabaseURL); url != "" {
		if err := persistOutcome(ctx, url, outcome); err != nil {
			// history is best-effort; the sync itself already happened
			log.Printf("failed to persist sync history: %v", err)
		}
	}

	if outcome.Failed > 0 {
		return fmt.Errorf("%d of %d items failed to sync", outcome.Failed, outcome.Total())
	}
	return nil
}

// databaseURL prefers the --db-url flag over the environment.
func databaseURL(fromEnv string) string {
	if syncDBURL != "" {
		return syncDBURL
	}
	return fromEnv
}

// persistOutcome records the run and its detail list in PostgreSQL.
func persistOutcome(ctx context.Context, url string, outcome *types.SyncOutcome) error {
	store, err := db.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	runID, err := store.CreateSyncRun(ctx)
	if err != nil {
		return err
	}
	if err := store.SaveSyncItems(ctx, runID, outcome.Items); err != nil {
		return err
	}
	if err := store.CompleteSyncRun(ctx, runID, outcome); err != nil {
		return err
	}

	fmt.Printf("Sync history recorded as run %s\n", runID)
	return nil
}
