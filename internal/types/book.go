// Package types provides type definitions for structured data used throughout the shelf-agent system.
package types

import "time"

// Shelf status codes as enumerated by the remote catalog service.
const (
	StatusWantToRead   = 1
	StatusReading      = 2
	StatusFinished     = 3
	StatusDidNotFinish = 5
)

// SearchCandidate represents a single raw search-result entry from the
// remote catalog, before any ranking is applied.
type SearchCandidate struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Contributors []string `json:"contributors"`
	// Popularity is the remote reader count when the search index reports
	// one; nil means unknown.
	Popularity *int `json:"popularity,omitempty"`
}

// Author returns the primary contributor name, or empty when none is known.
func (c *SearchCandidate) Author() string {
	if len(c.Contributors) == 0 {
		return ""
	}
	return c.Contributors[0]
}

// ScoredCandidate pairs a search candidate with its match score against a
// target (title, author) pair. The score is a pure function of the candidate
// and the target.
type ScoredCandidate struct {
	Candidate SearchCandidate `json:"candidate"`
	Score     float64         `json:"score"`
}

// BookDetails is the detailed catalog record for a resolved book. It is a
// superset of the search candidate fields.
type BookDetails struct {
	SearchCandidate
	Description string     `json:"description,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Pages       *int       `json:"pages,omitempty"`
	ImageURLs   []string   `json:"image_urls,omitempty"`
}

// ShelfEntry is one row of a user's shelf as returned by the remote service.
type ShelfEntry struct {
	CatalogID int    `json:"catalog_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
}

// ShelfRequest describes a single add-to-shelf mutation.
type ShelfRequest struct {
	CatalogID  int
	StatusCode int
	// Rating is on the remote 5-point scale (half points allowed); nil
	// omits the field.
	Rating *float64
	// FinishedAt is the date the book was finished; nil omits the field.
	FinishedAt *time.Time
}
