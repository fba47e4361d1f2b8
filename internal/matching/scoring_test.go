package matching

import (
	"testing"

	"github.com/jonathan/shelf-agent/internal/types"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestNormalize(t *testing.T) {
	assert.Equal(t, "deep work", normalize("Deep Work"))
	assert.Equal(t, "deep work", normalize("  Deep   Work!  "))
	assert.Equal(t, "j r r tolkien", normalize("J.R.R. Tolkien"))
	assert.Equal(t, "the hobbit 1", normalize("The Hobbit (#1)"))
	assert.Equal(t, "", normalize("...---"))
}

func TestComputeAuthorScore_ExactMatch(t *testing.T) {
	candidate := &types.SearchCandidate{Contributors: []string{"Cal Newport"}}
	assert.Equal(t, authorMatchScore, computeAuthorScore(candidate, "Cal Newport"))
}

func TestComputeAuthorScore_ContainedEitherWay(t *testing.T) {
	candidate := &types.SearchCandidate{Contributors: []string{"Dr. Cal Newport"}}
	assert.Equal(t, authorMatchScore, computeAuthorScore(candidate, "Cal Newport"))

	candidate = &types.SearchCandidate{Contributors: []string{"Newport"}}
	assert.Equal(t, authorMatchScore, computeAuthorScore(candidate, "Cal Newport"))
}

func TestComputeAuthorScore_EmptyTargetAlwaysMatches(t *testing.T) {
	candidate := &types.SearchCandidate{Contributors: []string{"Anyone"}}
	assert.Equal(t, authorMatchScore, computeAuthorScore(candidate, ""))
}

func TestComputeAuthorScore_Mismatch(t *testing.T) {
	candidate := &types.SearchCandidate{Contributors: []string{"Stephen King"}}
	assert.Equal(t, 0.0, computeAuthorScore(candidate, "Cal Newport"))
}

func TestComputeAuthorScore_SecondContributorMatches(t *testing.T) {
	candidate := &types.SearchCandidate{Contributors: []string{"Narrator Person", "Cal Newport"}}
	assert.Equal(t, authorMatchScore, computeAuthorScore(candidate, "Cal Newport"))
}

func TestComputeTitleScore_Tiers(t *testing.T) {
	assert.Equal(t, titleExactScore, computeTitleScore("Deep Work", "deep work"))
	assert.Equal(t, titleStartsWithScore, computeTitleScore("Deep Work: Rules for Focused Success", "Deep Work"))
	assert.Equal(t, titleContainsScore, computeTitleScore("Work", "Deep Work: Rules"))
	assert.Equal(t, 0.0, computeTitleScore("Atomic Habits", "Deep Work"))
}

func TestComputeCollectionPenalty(t *testing.T) {
	assert.Equal(t, -collectionPenalty, computeCollectionPenalty("The Complete Dark Tower Box Set", "The Dark Tower"))
	assert.Equal(t, 0.0, computeCollectionPenalty("The Dark Tower", "The Dark Tower"))
	// no penalty when the target itself asks for the collection
	assert.Equal(t, 0.0, computeCollectionPenalty("Dark Tower Box Set", "Dark Tower Box Set"))
}

func TestComputePopularityScore(t *testing.T) {
	unknown := &types.SearchCandidate{}
	assert.Equal(t, 0.0, computePopularityScore(unknown))

	popular := &types.SearchCandidate{Popularity: intPtr(99)}
	assert.InDelta(t, 10.0, computePopularityScore(popular), 0.001) // 5*log10(100)
}

func TestScoreCandidate_IsDeterministic(t *testing.T) {
	candidate := &types.SearchCandidate{
		Title:        "Deep Work",
		Contributors: []string{"Cal Newport"},
		Popularity:   intPtr(500),
	}

	first := scoreCandidate(candidate, "Deep Work", "Cal Newport")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scoreCandidate(candidate, "Deep Work", "Cal Newport"))
	}
}
