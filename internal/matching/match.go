package matching

import (
	"sort"

	"github.com/jonathan/shelf-agent/internal/types"
)

// ScoreCandidates scores every candidate against the target pair and returns
// them sorted by score, descending. The sort is stable: candidates with equal
// scores keep their original order, so results are reproducible.
func ScoreCandidates(candidates []types.SearchCandidate, targetTitle, targetAuthor string) []types.ScoredCandidate {
	scored := make([]types.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, types.ScoredCandidate{
			Candidate: candidate,
			Score:     scoreCandidate(&candidate, targetTitle, targetAuthor),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// SelectBestMatch returns the best-scoring candidate for the target pair, or
// nil when the candidate set is empty. A result is never synthesized: it is
// always one of the given candidates.
func SelectBestMatch(candidates []types.SearchCandidate, targetTitle, targetAuthor string) *types.SearchCandidate {
	scored := ScoreCandidates(candidates, targetTitle, targetAuthor)
	if len(scored) == 0 {
		return nil
	}
	best := scored[0].Candidate
	return &best
}
