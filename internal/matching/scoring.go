// Package matching disambiguates the correct catalog entry from noisy,
// multi-candidate search results using a deterministic weighted score.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/shelf-agent/internal/types"
)

// Scoring weights. The author weight is intentionally large enough that any
// author match outranks any title-only match: returning the wrong author is
// worse than an imperfect title.
const (
	authorMatchScore = 1000.0

	titleExactScore      = 100.0
	titleStartsWithScore = 75.0
	titleContainsScore   = 50.0

	collectionPenalty = 50.0

	popularityWeight = 5.0
)

// collectionKeywords flag candidate titles that look like multi-book
// bundles rather than the single work the caller asked for.
var collectionKeywords = []string{
	"collection",
	"box set",
	"boxed set",
	"bundle",
	"series",
	"complete set",
	"omnibus",
	"books set",
}

// punctuation stripped during normalization.
const punctuation = ".,/#!$%^&*;:{}=-_`~()"

// normalize lowercases, strips punctuation and collapses whitespace.
func normalize(s string) string {
	lowered := strings.ToLower(s)
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, lowered)
	return strings.Join(strings.Fields(stripped), " ")
}

// computeAuthorScore returns the binary author score. An empty target author
// always counts as a match; otherwise any contributor name containing or
// contained by the target author (after normalization) matches.
func computeAuthorScore(candidate *types.SearchCandidate, targetAuthor string) float64 {
	target := normalize(targetAuthor)
	if target == "" {
		return authorMatchScore
	}
	for _, name := range candidate.Contributors {
		contributor := normalize(name)
		if contributor == "" {
			continue
		}
		if strings.Contains(contributor, target) || strings.Contains(target, contributor) {
			return authorMatchScore
		}
	}
	return 0
}

// computeTitleScore returns the highest applicable title-closeness tier.
func computeTitleScore(candidateTitle, targetTitle string) float64 {
	candidate := normalize(candidateTitle)
	target := normalize(targetTitle)

	switch {
	case candidate == target:
		return titleExactScore
	case strings.HasPrefix(candidate, target):
		return titleStartsWithScore
	case strings.Contains(candidate, target) || strings.Contains(target, candidate):
		return titleContainsScore
	default:
		return 0
	}
}

// computeCollectionPenalty penalizes candidates that look like a collection
// when the target title does not.
func computeCollectionPenalty(candidateTitle, targetTitle string) float64 {
	candidate := normalize(candidateTitle)
	target := normalize(targetTitle)

	for _, keyword := range collectionKeywords {
		if strings.Contains(candidate, keyword) && !strings.Contains(target, keyword) {
			return -collectionPenalty
		}
	}
	return 0
}

// computePopularityScore returns the log-scaled popularity tiebreak. The log
// scale keeps it sub-dominant: it can separate otherwise-equal candidates but
// never outweighs a title-closeness tier for realistic reader counts.
func computePopularityScore(candidate *types.SearchCandidate) float64 {
	if candidate.Popularity == nil {
		return 0
	}
	return popularityWeight * math.Log10(float64(*candidate.Popularity)+1)
}

// scoreCandidate computes the total match score for one candidate. The score
// is a pure function of the candidate and the target pair.
func scoreCandidate(candidate *types.SearchCandidate, targetTitle, targetAuthor string) float64 {
	return computeAuthorScore(candidate, targetAuthor) +
		computeTitleScore(candidate.Title, targetTitle) +
		computeCollectionPenalty(candidate.Title, targetTitle) +
		computePopularityScore(candidate)
}
