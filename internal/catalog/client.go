// Package catalog provides the resilient client for the remote book-catalog
// service: search-and-match resolution, detail lookups, shelf mutations with
// capability probing, and bulk reading-list synchronization.
package catalog

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/shelf-agent/internal/cache"
	"github.com/jonathan/shelf-agent/internal/capability"
	"github.com/jonathan/shelf-agent/internal/graphql"
	"github.com/jonathan/shelf-agent/internal/identity"
	"github.com/jonathan/shelf-agent/internal/matching"
	"github.com/jonathan/shelf-agent/internal/syncer"
	"github.com/jonathan/shelf-agent/internal/types"
)

const (
	// searchPageSize is how many raw hits one search request asks for.
	searchPageSize = 10

	// PrivacyField is the optional mutation field whose support varies by
	// account plan and is only discoverable by probing.
	PrivacyField = "privacy_setting_id"

	// privacyPublic is the value sent for the optional field when the
	// account supports it.
	privacyPublic = 1
)

// Config holds construction options for a Client.
type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration

	// Probe is the process-wide capability cell. Callers constructing
	// multiple clients should pass the same probe to each; nil creates a
	// fresh one for this client alone.
	Probe *capability.Probe

	// CacheTTL overrides the lookup cache TTL; zero uses the default.
	CacheTTL time.Duration

	// Sleep overrides the pause function used for retry backoff and sync
	// pacing. Tests inject a recorder here; nil means time.Sleep.
	Sleep func(time.Duration)

	// PaceInterval overrides the fixed delay between sync items; zero uses
	// the default.
	PaceInterval time.Duration
}

// Client is the composition root for catalog access. It owns a lookup cache
// and an identity extractor, and shares a capability probe with any sibling
// clients. It is safe for concurrent use.
type Client struct {
	gql      *graphql.Client
	cache    *cache.Cache
	identity *identity.Extractor
	probe    *capability.Probe
	group    singleflight.Group

	pace  time.Duration
	sleep func(time.Duration)
}

// New creates a catalog client from the given configuration.
func New(cfg Config) *Client {
	probe := cfg.Probe
	if probe == nil {
		probe = capability.NewProbe(PrivacyField)
	}
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = cache.DefaultTTL
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Client{
		gql: graphql.NewClient(cfg.Endpoint, cfg.Token, &graphql.Options{
			Timeout: cfg.Timeout,
			Sleep:   sleep,
		}),
		cache:    cache.NewWithTTL(ttl),
		identity: identity.NewExtractor(cfg.Token),
		probe:    probe,
		pace:     cfg.PaceInterval,
		sleep:    sleep,
	}
}

// SearchBook resolves a (title, author) pair to the best-matching catalog
// candidate, or nil when the search produced no usable candidates. Results
// are cached; duplicate in-flight lookups are collapsed.
func (c *Client) SearchBook(ctx context.Context, title, author string) (*types.SearchCandidate, error) {
	key := cache.Key("search", title, author)
	if cached, ok := c.cache.Get(key); ok {
		candidate := cached.(types.SearchCandidate)
		return &candidate, nil
	}

	found, err, _ := c.group.Do(key, func() (any, error) {
		candidate, err := c.searchBook(ctx, title, author)
		if err != nil {
			return nil, err
		}
		if candidate != nil {
			c.cache.Put(key, *candidate)
		}
		return candidate, nil
	})
	if err != nil {
		return nil, err
	}
	return found.(*types.SearchCandidate), nil
}

func (c *Client) searchBook(ctx context.Context, title, author string) (*types.SearchCandidate, error) {
	query := strings.TrimSpace(title + " " + author)
	data, err := c.gql.Execute(ctx, searchQuery, map[string]any{
		"query":   query,
		"perPage": searchPageSize,
	})
	if err != nil {
		return nil, err
	}

	candidates, err := parseSearchCandidates(data)
	if err != nil {
		return nil, err
	}
	return matching.SelectBestMatch(candidates, title, author), nil
}

// GetBookDetails resolves a (title, author) pair and fetches the detailed
// catalog record for the winning candidate. Returns nil when no candidate
// matched or the detail row has vanished.
func (c *Client) GetBookDetails(ctx context.Context, title, author string) (*types.BookDetails, error) {
	key := cache.Key("details", title, author)
	if cached, ok := c.cache.Get(key); ok {
		details := cached.(types.BookDetails)
		return &details, nil
	}

	found, err, _ := c.group.Do(key, func() (any, error) {
		candidate, err := c.SearchBook(ctx, title, author)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			return (*types.BookDetails)(nil), nil
		}

		data, err := c.gql.Execute(ctx, bookDetailsQuery, map[string]any{"id": candidate.ID})
		if err != nil {
			return nil, err
		}
		details, err := parseBookDetails(data)
		if err != nil {
			return nil, err
		}
		if details != nil {
			c.cache.Put(key, *details)
		}
		return details, nil
	})
	if err != nil {
		return nil, err
	}
	return found.(*types.BookDetails), nil
}

// GetUserIdentity returns the account identifier extracted from the bearer
// credential, and whether one is available. Absence is a valid terminal
// state, not an error.
func (c *Client) GetUserIdentity() (string, bool) {
	return c.identity.UserID()
}

// ListShelfByStatus returns the user's shelf entries for one status code,
// most recently updated first. When the extracted identity is missing or not
// UUID-shaped it returns an empty list without querying: filtering on a
// non-UUID identifier could surface another account's shelf.
func (c *Client) ListShelfByStatus(ctx context.Context, statusCode, limit int) ([]types.ShelfEntry, error) {
	userID, ok := c.GetUserIdentity()
	if !ok || !identity.IsUUID(userID) {
		log.Printf("shelf list skipped: no usable user identity in token")
		return []types.ShelfEntry{}, nil
	}

	data, err := c.gql.Execute(ctx, shelfByStatusQuery, map[string]any{
		"userId": userID,
		"status": statusCode,
		"limit":  limit,
	})
	if err != nil {
		return nil, err
	}
	return parseShelfEntries(data)
}

// ShelveBook adds a book to the user's shelf. The optional privacy field is
// included or omitted according to the shared capability probe; a rejection
// naming the field downgrades the mutation once and remembers the answer.
func (c *Client) ShelveBook(ctx context.Context, req types.ShelfRequest) error {
	return c.probe.Execute(func(includeField bool) error {
		object := map[string]any{
			"book_id":   req.CatalogID,
			"status_id": req.StatusCode,
		}
		if req.Rating != nil {
			object["rating"] = *req.Rating
		}
		if req.FinishedAt != nil {
			object["date_read"] = req.FinishedAt.Format("2006-01-02")
		}
		if includeField {
			object[PrivacyField] = privacyPublic
		}
		_, err := c.gql.Execute(ctx, addToShelfMutation, map[string]any{"object": object})
		return err
	})
}

// AddToShelf adds a book to the user's shelf and reports success. Failures
// are logged rather than returned so batch callers can keep going.
func (c *Client) AddToShelf(ctx context.Context, catalogID, statusCode int, rating *float64, finishedAt *time.Time) bool {
	err := c.ShelveBook(ctx, types.ShelfRequest{
		CatalogID:  catalogID,
		StatusCode: statusCode,
		Rating:     rating,
		FinishedAt: finishedAt,
	})
	if err != nil {
		log.Printf("add to shelf failed for book %d: %v", catalogID, err)
		return false
	}
	return true
}

// RemoveFromShelf removes a book from the user's shelf and reports success.
// A book that was never shelved counts as failure; details are logged.
func (c *Client) RemoveFromShelf(ctx context.Context, catalogID int) bool {
	data, err := c.gql.Execute(ctx, userBookForBookQuery, map[string]any{"bookId": catalogID})
	if err != nil {
		log.Printf("shelf lookup failed for book %d: %v", catalogID, err)
		return false
	}

	userBookID, found, err := parseUserBookID(data)
	if err != nil {
		log.Printf("shelf lookup failed for book %d: %v", catalogID, err)
		return false
	}
	if !found {
		log.Printf("remove from shelf skipped: book %d is not on the shelf", catalogID)
		return false
	}

	if _, err := c.gql.Execute(ctx, removeFromShelfMutation, map[string]any{"id": userBookID}); err != nil {
		log.Printf("remove from shelf failed for book %d: %v", catalogID, err)
		return false
	}
	return true
}

// SyncReadingList pushes locally-known read records into the remote catalog,
// strictly sequentially and with fixed pacing between items. Per-item faults
// are recorded in the outcome, never propagated.
func (c *Client) SyncReadingList(ctx context.Context, items []types.ReadingListItem) *types.SyncOutcome {
	return c.NewSynchronizer(nil).Sync(ctx, items)
}

// NewSynchronizer builds a bulk synchronizer backed by this client. Options
// may be nil; the client's pacing and sleep settings are applied as defaults.
func (c *Client) NewSynchronizer(opts *syncer.Options) *syncer.Synchronizer {
	if opts == nil {
		opts = &syncer.Options{}
	}
	if opts.PaceInterval == 0 {
		opts.PaceInterval = c.pace
	}
	if opts.Sleep == nil {
		opts.Sleep = c.sleep
	}
	return syncer.New(c, opts)
}
