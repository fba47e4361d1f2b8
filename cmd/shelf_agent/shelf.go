package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/shelf-agent/internal/observability"
	"github.com/jonathan/shelf-agent/internal/syncer"
)

var shelfCommand = &cobra.Command{
	Use:   "shelf",
	Short: "Manage the user's shelf on the remote catalog",
}

var shelfAddCommand = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the shelf by catalog ID",
	RunE:  runShelfAddCmd,
}

var shelfRemoveCommand = &cobra.Command{
	Use:   "remove",
	Short: "Remove a book from the shelf by catalog ID",
	RunE:  runShelfRemoveCmd,
}

var shelfListCommand = &cobra.Command{
	Use:   "list",
	Short: "List shelf entries for one reading status",
	RunE:  runShelfListCmd,
}

var (
	shelfBookID   int
	shelfStatus   string
	shelfRating   float64
	shelfFinished string
	shelfLimit    int
)

func init() {
	shelfAddCommand.Flags().IntVarP(&shelfBookID, "book", "b", 0, "Catalog book ID (required)")
	shelfAddCommand.Flags().StringVarP(&shelfStatus, "status", "s", "finished", "Shelf status (want, reading, finished, dnf or a numeric code)")
	shelfAddCommand.Flags().Float64VarP(&shelfRating, "rating", "r", 0, "Rating on a 10-point scale (0 means unrated)")
	shelfAddCommand.Flags().StringVar(&shelfFinished, "finished", "", "Date finished (YYYY-MM-DD)")
	_ = shelfAddCommand.MarkFlagRequired("book")

	shelfRemoveCommand.Flags().IntVarP(&shelfBookID, "book", "b", 0, "Catalog book ID (required)")
	_ = shelfRemoveCommand.MarkFlagRequired("book")

	shelfListCommand.Flags().StringVarP(&shelfStatus, "status", "s", "finished", "Shelf status (want, reading, finished, dnf or a numeric code)")
	shelfListCommand.Flags().IntVarP(&shelfLimit, "limit", "l", 20, "Maximum entries to list")

	shelfCommand.AddCommand(shelfAddCommand)
	shelfCommand.AddCommand(shelfRemoveCommand)
	shelfCommand.AddCommand(shelfListCommand)
	rootCmd.AddCommand(shelfCommand)
}

func runShelfAddCmd(cmd *cobra.Command, _ []string) error {
	client, _, err := newCatalogClient()
	if err != nil {
		return err
	}

	status, err := parseStatus(shelfStatus)
	if err != nil {
		return err
	}

	rating := syncer.ConvertRating(shelfRating)
	finished := syncer.ParseFinishedDate(shelfFinished)
	if shelfFinished != "" && finished == nil {
		return fmt.Errorf("could not parse --finished date %q", shelfFinished)
	}

	if !client.AddToShelf(context.Background(), shelfBookID, status, rating, finished) {
		return fmt.Errorf("failed to add book %d to shelf", shelfBookID)
	}
	fmt.Printf("Added book %d to shelf\n", shelfBookID)
	return nil
}

func runShelfRemoveCmd(cmd *cobra.Command, _ []string) error {
	client, _, err := newCatalogClient()
	if err != nil {
		return err
	}

	if !client.RemoveFromShelf(context.Background(), shelfBookID) {
		return fmt.Errorf("failed to remove book %d from shelf", shelfBookID)
	}
	fmt.Printf("Removed book %d from shelf\n", shelfBookID)
	return nil
}

func runShelfListCmd(cmd *cobra.Command, _ []string) error {
	client, _, err := newCatalogClient()
	if err != nil {
		return err
	}

	status, err := parseStatus(shelfStatus)
	if err != nil {
		return err
	}

	entries, err := client.ListShelfByStatus(context.Background(), status, shelfLimit)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintShelf(entries)
	return nil
}
