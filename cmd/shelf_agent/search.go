package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/shelf-agent/internal/observability"
)

var searchCommand = &cobra.Command{
	Use:   "search",
	Short: "Resolve a (title, author) pair to its best catalog match",
	RunE:  runSearchCmd,
}

var (
	searchTitle  string
	searchAuthor string
)

func init() {
	searchCommand.Flags().StringVarP(&searchTitle, "title", "t", "", "Book title (required)")
	searchCommand.Flags().StringVarP(&searchAuthor, "author", "a", "", "Author name")
	_ = searchCommand.MarkFlagRequired("title")

	rootCmd.AddCommand(searchCommand)
}

func runSearchCmd(cmd *cobra.Command, _ []string) error {
	client, _, err := newCatalogClient()
	if err != nil {
		return err
	}

	candidate, err := client.SearchBook(context.Background(), searchTitle, searchAuthor)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintCandidate(candidate)
	return nil
}
