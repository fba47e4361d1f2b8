package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchCandidates_DropsUnusableHits(t *testing.T) {
	raw := json.RawMessage(`{"search":{"results":{"hits":[
		{"document":{"id":"1","title":"Deep Work","author_names":["Cal Newport"],"users_count":500}},
		{"document":{"id":"not-a-number","title":"Broken"}},
		{"document":{"id":"2","title":""}},
		{"document":{"id":"3","title":"Digital Minimalism","author_names":["Cal Newport"]}}
	]}}}`)

	candidates, err := parseSearchCandidates(raw)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, 1, candidates[0].ID)
	require.NotNil(t, candidates[0].Popularity)
	assert.Equal(t, 500, *candidates[0].Popularity)
	assert.Equal(t, 3, candidates[1].ID)
	assert.Nil(t, candidates[1].Popularity)
}

func TestParseSearchCandidates_NumericIDs(t *testing.T) {
	// some indexes report ids as bare numbers rather than strings
	raw := json.RawMessage(`{"search":{"results":{"hits":[
		{"document":{"id":9,"title":"The Martian","author_names":["Andy Weir"]}}
	]}}}`)

	candidates, err := parseSearchCandidates(raw)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 9, candidates[0].ID)
}

func TestParseSearchCandidates_MissingResults(t *testing.T) {
	candidates, err := parseSearchCandidates(json.RawMessage(`{"search":{}}`))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestParseBookDetails_NotFound(t *testing.T) {
	details, err := parseBookDetails(json.RawMessage(`{"books":[]}`))
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestParseBookDetails_BadReleaseDateTolerated(t *testing.T) {
	details, err := parseBookDetails(json.RawMessage(`{"books":[{
		"id":1,"title":"Deep Work","release_date":"sometime in 2016"
	}]}`))
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Nil(t, details.ReleaseDate)
}

func TestParseUserBookID(t *testing.T) {
	id, found, err := parseUserBookID(json.RawMessage(`{"user_books":[{"id":77}]}`))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 77, id)

	_, found, err = parseUserBookID(json.RawMessage(`{"user_books":[]}`))
	require.NoError(t, err)
	assert.False(t, found)
}
