// Package main provides the entry point for the shelf-agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shelf_agent",
	Short: "Catalog shelf client",
	Long:  "shelf_agent resolves books against a remote catalog, manages the user's shelf, and bulk-synchronizes locally-known reading lists despite noisy search results and aggressive rate limits.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
