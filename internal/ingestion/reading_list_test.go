package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/shelf-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadingList_Valid(t *testing.T) {
	data := []byte(`[
		{"title": "Deep Work", "author": "Cal Newport", "rating": 9, "finished_at": "2024-01-15"},
		{"title": "The Martian", "status_code": 2}
	]`)

	items, err := ParseReadingList(data)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Deep Work", items[0].Title)
	assert.Equal(t, 9.0, items[0].Rating)
	assert.Equal(t, types.StatusReading, items[1].StatusCode)
}

func TestParseReadingList_MissingTitleRejectedBySchema(t *testing.T) {
	_, err := ParseReadingList([]byte(`[{"author": "Nobody"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestParseReadingList_RatingOutOfRange(t *testing.T) {
	_, err := ParseReadingList([]byte(`[{"title": "Deep Work", "rating": 12}]`))
	require.Error(t, err)
}

func TestParseReadingList_UnknownFieldRejected(t *testing.T) {
	_, err := ParseReadingList([]byte(`[{"title": "Deep Work", "isbn": "123"}]`))
	require.Error(t, err)
}

func TestParseReadingList_NotAnArray(t *testing.T) {
	_, err := ParseReadingList([]byte(`{"title": "Deep Work"}`))
	require.Error(t, err)
}

func TestLoadReadingList_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title": "Deep Work"}]`), 0o644))

	items, err := LoadReadingList(path)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestLoadReadingList_MissingFile(t *testing.T) {
	_, err := LoadReadingList(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
