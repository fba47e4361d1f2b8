package types

import "github.com/go-playground/validator/v10"

// ReadingListItem is one locally-known "read" record to be pushed into the
// remote catalog.
type ReadingListItem struct {
	Title  string `json:"title" validate:"required,min=1"`
	Author string `json:"author,omitempty"`
	// Rating is on the caller's 10-point scale (0 means unrated).
	Rating float64 `json:"rating,omitempty" validate:"gte=0,lte=10"`
	// FinishedAt is a caller-supplied date string; unparseable values are
	// tolerated and simply omitted from the mutation.
	FinishedAt string `json:"finished_at,omitempty"`
	StatusCode int    `json:"status_code,omitempty" validate:"omitempty,oneof=1 2 3 5"`
}

// Validate validates the ReadingListItem using the validator.
func (i *ReadingListItem) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}

// SyncItemResult records the outcome for a single synchronized item.
type SyncItemResult struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// SyncOutcome aggregates the results of a bulk synchronization run. Items
// appear in the same order as the input.
type SyncOutcome struct {
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	NotFound   int              `json:"not_found"`
	Items      []SyncItemResult `json:"items"`
}

// Total returns the number of items processed.
func (o *SyncOutcome) Total() int {
	return len(o.Items)
}
