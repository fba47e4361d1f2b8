package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/shelf-agent/internal/observability"
)

var detailsCommand = &cobra.Command{
	Use:   "details",
	Short: "Fetch the detailed catalog record for a book",
	RunE:  runDetailsCmd,
}

var (
	detailsTitle  string
	detailsAuthor string
)

func init() {
	detailsCommand.Flags().StringVarP(&detailsTitle, "title", "t", "", "Book title (required)")
	detailsCommand.Flags().StringVarP(&detailsAuthor, "author", "a", "", "Author name")
	_ = detailsCommand.MarkFlagRequired("title")

	rootCmd.AddCommand(detailsCommand)
}

func runDetailsCmd(cmd *cobra.Command, _ []string) error {
	client, _, err := newCatalogClient()
	if err != nil {
		return err
	}

	details, err := client.GetBookDetails(context.Background(), detailsTitle, detailsAuthor)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintBookDetails(details)
	return nil
}
