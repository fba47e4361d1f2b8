package syncer

import (
	"math"
	"time"
)

// ConvertRating rescales a caller-supplied rating to the remote 5-point
// scale, preserving half-point granularity. Ratings of zero or below mean
// unrated and yield nil. Values at or below 5 are taken to already be on the
// 5-point scale and pass through unrescaled.
func ConvertRating(raw float64) *float64 {
	if raw <= 0 {
		return nil
	}

	scaled := raw
	if raw > 5 {
		scaled = raw / 2
	}

	rounded := math.Round(scaled*2) / 2
	if rounded > 5 {
		rounded = 5
	}
	if rounded < 0.5 {
		rounded = 0.5
	}
	return &rounded
}

// finishedDateLayouts are the accepted forms for caller-supplied dates.
var finishedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// ParseFinishedDate parses a caller-supplied date string. Unparseable input
// yields nil so the date field can simply be omitted from the mutation; a
// bad date never fails the whole item.
func ParseFinishedDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range finishedDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	return nil
}
