package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jonathan/shelf-agent/internal/types"
)

// searchEnvelope mirrors the search endpoint's response. The results field is
// the raw full-text index payload; its hit documents are only loosely typed,
// so parsing tolerates missing or oddly-typed fields.
type searchEnvelope struct {
	Search struct {
		Results json.RawMessage `json:"results"`
	} `json:"search"`
}

type searchResults struct {
	Hits []struct {
		Document searchDocument `json:"document"`
	} `json:"hits"`
}

type searchDocument struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	AuthorNames []string    `json:"author_names"`
	UsersCount  *int        `json:"users_count"`
}

// parseSearchCandidates converts a raw search response into candidates. Hits
// without a usable numeric id or a title are dropped rather than failing the
// whole response.
func parseSearchCandidates(data json.RawMessage) ([]types.SearchCandidate, error) {
	var envelope searchEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	if len(envelope.Search.Results) == 0 {
		return nil, nil
	}

	var results searchResults
	if err := json.Unmarshal(envelope.Search.Results, &results); err != nil {
		return nil, fmt.Errorf("failed to parse search results payload: %w", err)
	}

	candidates := make([]types.SearchCandidate, 0, len(results.Hits))
	for _, hit := range results.Hits {
		doc := hit.Document
		id, err := strconv.Atoi(doc.ID.String())
		if err != nil || doc.Title == "" {
			continue
		}
		candidates = append(candidates, types.SearchCandidate{
			ID:           id,
			Title:        doc.Title,
			Contributors: doc.AuthorNames,
			Popularity:   doc.UsersCount,
		})
	}
	return candidates, nil
}

// bookRecord mirrors one row of the books relation.
type bookRecord struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseDate string `json:"release_date"`
	Pages       *int   `json:"pages"`
	UsersCount  *int   `json:"users_count"`
	Image       *struct {
		URL string `json:"url"`
	} `json:"image"`
	Editions []struct {
		Image *struct {
			URL string `json:"url"`
		} `json:"image"`
	} `json:"editions"`
	Contributions []contribution `json:"contributions"`
}

type contribution struct {
	Author struct {
		Name string `json:"name"`
	} `json:"author"`
}

func contributorNames(contributions []contribution) []string {
	names := make([]string, 0, len(contributions))
	for _, c := range contributions {
		if c.Author.Name != "" {
			names = append(names, c.Author.Name)
		}
	}
	return names
}

// parseBookDetails converts a books query response into a detailed record.
// Returns nil when the book was not found.
func parseBookDetails(data json.RawMessage) (*types.BookDetails, error) {
	var envelope struct {
		Books []bookRecord `json:"books"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse book details response: %w", err)
	}
	if len(envelope.Books) == 0 {
		return nil, nil
	}

	record := envelope.Books[0]
	details := &types.BookDetails{
		SearchCandidate: types.SearchCandidate{
			ID:           record.ID,
			Title:        record.Title,
			Contributors: contributorNames(record.Contributions),
			Popularity:   record.UsersCount,
		},
		Description: record.Description,
		Pages:       record.Pages,
	}

	if record.ReleaseDate != "" {
		if released, err := time.Parse("2006-01-02", record.ReleaseDate); err == nil {
			details.ReleaseDate = &released
		}
	}

	if record.Image != nil && record.Image.URL != "" {
		details.ImageURLs = append(details.ImageURLs, record.Image.URL)
	}
	for _, edition := range record.Editions {
		if edition.Image != nil && edition.Image.URL != "" {
			details.ImageURLs = append(details.ImageURLs, edition.Image.URL)
		}
	}

	return details, nil
}

// parseShelfEntries converts a shelf query response into ordered entries.
func parseShelfEntries(data json.RawMessage) ([]types.ShelfEntry, error) {
	var envelope struct {
		UserBooks []struct {
			Book bookRecord `json:"book"`
		} `json:"user_books"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse shelf response: %w", err)
	}

	entries := make([]types.ShelfEntry, 0, len(envelope.UserBooks))
	for _, ub := range envelope.UserBooks {
		names := contributorNames(ub.Book.Contributions)
		author := ""
		if len(names) > 0 {
			author = names[0]
		}
		entries = append(entries, types.ShelfEntry{
			CatalogID: ub.Book.ID,
			Title:     ub.Book.Title,
			Author:    author,
		})
	}
	return entries, nil
}

// parseUserBookID extracts the user_book row id from a lookup response.
// Returns false when the book is not on the shelf.
func parseUserBookID(data json.RawMessage) (int, bool, error) {
	var envelope struct {
		UserBooks []struct {
			ID int `json:"id"`
		} `json:"user_books"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return 0, false, fmt.Errorf("failed to parse shelf lookup response: %w", err)
	}
	if len(envelope.UserBooks) == 0 {
		return 0, false, nil
	}
	return envelope.UserBooks[0].ID, true, nil
}
