// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/shelf-agent/internal/syncer"
	"github.com/jonathan/shelf-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs the resolved catalog candidate for a search.
func (p *Printer) PrintCandidate(candidate *types.SearchCandidate) {
	if candidate == nil {
		p.printBox("SEARCH RESULT", "No match found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog ID: %d\n", candidate.ID))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", candidate.Title))
	sb.WriteString(fmt.Sprintf("Author:     %s", candidate.Author()))
	if candidate.Popularity != nil {
		sb.WriteString(fmt.Sprintf("\nReaders:    %d", *candidate.Popularity))
	}

	p.printBox("SEARCH RESULT", sb.String())
}

// PrintBookDetails outputs the detailed catalog record.
func (p *Printer) PrintBookDetails(details *types.BookDetails) {
	if details == nil {
		p.printBox("BOOK DETAILS", "No match found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog ID: %d\n", details.ID))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", details.Title))
	sb.WriteString(fmt.Sprintf("Author:     %s\n", details.Author()))
	if details.ReleaseDate != nil {
		sb.WriteString(fmt.Sprintf("Released:   %s\n", details.ReleaseDate.Format("2006-01-02")))
	}
	if details.Pages != nil {
		sb.WriteString(fmt.Sprintf("Pages:      %d\n", *details.Pages))
	}
	if details.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(details.Description)
	}

	p.printBox("BOOK DETAILS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintShelf outputs shelf entries with their catalog IDs.
func (p *Printer) PrintShelf(entries []types.ShelfEntry) {
	if len(entries) == 0 {
		p.printBox("SHELF", "No entries")
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("%d  %s - %s\n", entry.CatalogID, entry.Title, entry.Author))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(entries)-maxItemsToShow))
	}

	p.printBox("SHELF", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSyncProgress outputs a one-line progress update during a sync run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSyncProgress(event syncer.ProgressEvent) {
	line := fmt.Sprintf("[%d/%d] %s", event.Index, event.Total, event.Title)
	if event.Author != "" {
		line += " by " + event.Author
	}
	line += ": " + event.Outcome
	if event.Reason != "" {
		line += " (" + event.Reason + ")"
	}
	fmt.Fprintln(p.out, line)
}

// PrintSyncOutcome outputs the aggregate result of a sync run.
func (p *Printer) PrintSyncOutcome(outcome *types.SyncOutcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Processed: %d\n", outcome.Total()))
	sb.WriteString(fmt.Sprintf("Synced:    %d\n", outcome.Successful))
	sb.WriteString(fmt.Sprintf("Not found: %d\n", outcome.NotFound))
	sb.WriteString(fmt.Sprintf("Failed:    %d", outcome.Failed))

	var failures []string
	for _, item := range outcome.Items {
		if !item.Success && item.Reason != "no catalog match" {
			failures = append(failures, fmt.Sprintf("  • %s: %s", item.Title, item.Reason))
		}
	}
	if len(failures) > 0 {
		sb.WriteString("\n\nFailures:\n")
		count := min(len(failures), maxItemsToShow)
		sb.WriteString(strings.Join(failures[:count], "\n"))
		if len(failures) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more", len(failures)-maxItemsToShow))
		}
	}

	p.printBox("SYNC SUMMARY", sb.String())
}
