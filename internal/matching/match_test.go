package matching

import (
	"testing"

	"github.com/jonathan/shelf-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBestMatch_EmptyCandidates(t *testing.T) {
	best := SelectBestMatch(nil, "Deep Work", "Cal Newport")
	assert.Nil(t, best)

	best = SelectBestMatch([]types.SearchCandidate{}, "Deep Work", "Cal Newport")
	assert.Nil(t, best)
}

func TestSelectBestMatch_ExactTitleBeatsStartsWithDespitePopularity(t *testing.T) {
	candidates := []types.SearchCandidate{
		{ID: 1, Title: "Deep Work", Contributors: []string{"Cal Newport"}, Popularity: intPtr(500)},
		{ID: 2, Title: "Deep Work: Rules for Focused Success", Contributors: []string{"Cal Newport"}, Popularity: intPtr(50000)},
	}

	best := SelectBestMatch(candidates, "Deep Work", "Cal Newport")
	require.NotNil(t, best)
	assert.Equal(t, 1, best.ID)
}

func TestSelectBestMatch_AuthorMatchOutranksTitleOnlyMatch(t *testing.T) {
	candidates := []types.SearchCandidate{
		{ID: 1, Title: "Deep Work", Contributors: []string{"Somebody Else"}, Popularity: intPtr(90000)},
		{ID: 2, Title: "Completely Different Title", Contributors: []string{"Cal Newport"}},
	}

	best := SelectBestMatch(candidates, "Deep Work", "Cal Newport")
	require.NotNil(t, best)
	assert.Equal(t, 2, best.ID)
}

func TestSelectBestMatch_CollectionPenalizedBelowSingleWork(t *testing.T) {
	candidates := []types.SearchCandidate{
		{ID: 1, Title: "The Dark Tower Complete Box Set", Contributors: []string{"Stephen King"}},
		{ID: 2, Title: "The Dark Tower", Contributors: []string{"Stephen King"}},
	}

	best := SelectBestMatch(candidates, "The Dark Tower", "Stephen King")
	require.NotNil(t, best)
	assert.Equal(t, 2, best.ID)
}

func TestSelectBestMatch_EqualScoresPreserveFirstSeenOrder(t *testing.T) {
	candidates := []types.SearchCandidate{
		{ID: 7, Title: "Deep Work", Contributors: []string{"Cal Newport"}},
		{ID: 8, Title: "Deep Work", Contributors: []string{"Cal Newport"}},
	}

	best := SelectBestMatch(candidates, "Deep Work", "Cal Newport")
	require.NotNil(t, best)
	assert.Equal(t, 7, best.ID)
}

func TestSelectBestMatch_Deterministic(t *testing.T) {
	candidates := []types.SearchCandidate{
		{ID: 1, Title: "Project Hail Mary", Contributors: []string{"Andy Weir"}, Popularity: intPtr(120000)},
		{ID: 2, Title: "Project Hail Mary: A Novel", Contributors: []string{"Andy Weir"}, Popularity: intPtr(80000)},
		{ID: 3, Title: "The Martian", Contributors: []string{"Andy Weir"}, Popularity: intPtr(300000)},
	}

	first := SelectBestMatch(candidates, "Project Hail Mary", "Andy Weir")
	require.NotNil(t, first)
	for i := 0; i < 20; i++ {
		again := SelectBestMatch(candidates, "Project Hail Mary", "Andy Weir")
		require.NotNil(t, again)
		assert.Equal(t, first.ID, again.ID)
	}
}

func TestScoreCandidates_SortedDescending(t *testing.T) {
	candidates := []types.SearchCandidate{
		{ID: 1, Title: "Unrelated", Contributors: []string{"Nobody"}},
		{ID: 2, Title: "Deep Work", Contributors: []string{"Cal Newport"}},
		{ID: 3, Title: "Deep Work: Rules for Focused Success", Contributors: []string{"Cal Newport"}},
	}

	scored := ScoreCandidates(candidates, "Deep Work", "Cal Newport")
	require.Len(t, scored, 3)
	assert.Equal(t, 2, scored[0].Candidate.ID)
	assert.Equal(t, 3, scored[1].Candidate.ID)
	assert.Equal(t, 1, scored[2].Candidate.ID)
	assert.GreaterOrEqual(t, scored[0].Score, scored[1].Score)
	assert.GreaterOrEqual(t, scored[1].Score, scored[2].Score)
}
