// Package logquery contains the pure business logic for log retrieval:
// filter construction over a user's exercise history and report assembly.
// This is part of the Functional Core - no I/O, only pure functions.
package logquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/fitlog/internal/core/exercise"
)

// Filter narrows an exercise query to one user's records, optionally
// bounded by an inclusive date range and capped to a result count.
// From/To hold persisted-form dates; empty means unbounded. Limit zero
// means unlimited.
type Filter struct {
	UserID string
	From   string
	To     string
	Limit  int
}

// BuildFilter composes a filter from raw query tokens.
//
// Range tokens are parsed strictly: an invalid from/to token fails the
// whole query instead of being passed through as a comparison bound.
// Likewise a limit token that is not a non-negative integer is rejected
// rather than coerced to "no limit". A limit of zero means unlimited.
func BuildFilter(userID, from, to, limit string) (Filter, error) {
	f := Filter{UserID: userID}

	if from != "" {
		d, err := exercise.ParseDate(from)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid from date: %w", err)
		}
		f.From = exercise.FormatStore(d)
	}

	if to != "" {
		d, err := exercise.ParseDate(to)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid to date: %w", err)
		}
		f.To = exercise.FormatStore(d)
	}

	if strings.TrimSpace(limit) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(limit))
		if err != nil {
			return Filter{}, fmt.Errorf("invalid limit %q", limit)
		}
		if n < 0 {
			return Filter{}, fmt.Errorf("limit must not be negative, got %d", n)
		}
		f.Limit = n
	}

	return f, nil
}
