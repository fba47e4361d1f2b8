// Package ingestion loads caller-supplied reading-list files for bulk
// synchronization.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/shelf-agent/internal/schemas"
	"github.com/jonathan/shelf-agent/internal/types"
	schemafiles "github.com/jonathan/shelf-agent/schemas"
)

// LoadReadingList reads a JSON reading-list file, validates it against the
// shipped schema and per-item rules, and returns the items in file order.
func LoadReadingList(path string) ([]types.ReadingListItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reading list %s: %w", path, err)
	}
	return ParseReadingList(data)
}

// ParseReadingList validates and decodes reading-list JSON content.
func ParseReadingList(data []byte) ([]types.ReadingListItem, error) {
	if err := schemas.ValidateJSONString(schemafiles.ReadingListSchema, string(data)); err != nil {
		return nil, fmt.Errorf("reading list rejected by schema: %w", err)
	}

	var items []types.ReadingListItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse reading list JSON: %w", err)
	}

	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, fmt.Errorf("reading list item %d invalid: %w", i+1, err)
		}
	}

	return items, nil
}
