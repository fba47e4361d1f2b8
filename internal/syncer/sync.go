// Package syncer pushes a list of locally-known read records into the remote
// catalog. Processing is strictly sequential with a fixed pause between
// items: the remote rate limit is aggressive and per-account, so there is
// nothing to gain from fanning out.
package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/shelf-agent/internal/types"
)

// DefaultPaceInterval is the fixed delay after every item, regardless of
// outcome.
const DefaultPaceInterval = 3 * time.Second

// Catalog is the slice of the catalog client the synchronizer needs.
type Catalog interface {
	SearchBook(ctx context.Context, title, author string) (*types.SearchCandidate, error)
	ShelveBook(ctx context.Context, req types.ShelfRequest) error
}

// ProgressEvent reports the outcome of one processed item.
type ProgressEvent struct {
	Index   int
	Total   int
	Title   string
	Author  string
	Outcome string
	Reason  string
}

// outcome categories for progress events and counting
const (
	outcomeSuccess  = "synced"
	outcomeNotFound = "not_found"
	outcomeFailed   = "failed"
)

// Options configures a Synchronizer.
type Options struct {
	// PaceInterval is the fixed delay after every item; zero uses the
	// default.
	PaceInterval time.Duration
	// Sleep is the pause function; nil means time.Sleep.
	Sleep func(time.Duration)
	// OnProgress, when set, is called after each item.
	OnProgress func(ProgressEvent)
}

// Synchronizer drives repeated search + mutation cycles against the catalog.
type Synchronizer struct {
	catalog    Catalog
	pace       time.Duration
	sleep      func(time.Duration)
	onProgress func(ProgressEvent)
}

// New creates a synchronizer for the given catalog.
func New(catalog Catalog, opts *Options) *Synchronizer {
	if opts == nil {
		opts = &Options{}
	}
	pace := opts.PaceInterval
	if pace == 0 {
		pace = DefaultPaceInterval
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Synchronizer{
		catalog:    catalog,
		pace:       pace,
		sleep:      sleep,
		onProgress: opts.OnProgress,
	}
}

// Sync processes every item in order and returns the aggregate outcome. A
// single item's failure never aborts the batch: whatever goes wrong for one
// item is recorded against that item and processing moves on.
func (s *Synchronizer) Sync(ctx context.Context, items []types.ReadingListItem) *types.SyncOutcome {
	outcome := &types.SyncOutcome{
		Items: make([]types.SyncItemResult, 0, len(items)),
	}

	for i, item := range items {
		result, category := s.syncItem(ctx, item)

		switch category {
		case outcomeSuccess:
			outcome.Successful++
		case outcomeNotFound:
			outcome.NotFound++
		default:
			outcome.Failed++
		}
		outcome.Items = append(outcome.Items, result)

		if s.onProgress != nil {
			s.onProgress(ProgressEvent{
				Index:   i + 1,
				Total:   len(items),
				Title:   item.Title,
				Author:  item.Author,
				Outcome: category,
				Reason:  result.Reason,
			})
		}

		// fixed pacing after every item, success or not
		s.sleep(s.pace)
	}

	return outcome
}

// syncItem resolves and shelves one item, converting any fault into a
// recorded result.
func (s *Synchronizer) syncItem(ctx context.Context, item types.ReadingListItem) (types.SyncItemResult, string) {
	result := types.SyncItemResult{Title: item.Title, Author: item.Author}

	candidate, err := s.catalog.SearchBook(ctx, item.Title, item.Author)
	if err != nil {
		result.Reason = fmt.Sprintf("search failed: %v", err)
		return result, outcomeFailed
	}
	if candidate == nil {
		result.Reason = "no catalog match"
		return result, outcomeNotFound
	}

	status := item.StatusCode
	if status == 0 {
		status = types.StatusFinished
	}

	req := types.ShelfRequest{
		CatalogID:  candidate.ID,
		StatusCode: status,
		Rating:     ConvertRating(item.Rating),
		FinishedAt: ParseFinishedDate(item.FinishedAt),
	}
	if err := s.catalog.ShelveBook(ctx, req); err != nil {
		result.Reason = err.Error()
		return result, outcomeFailed
	}

	result.Success = true
	return result, outcomeSuccess
}
