// Package exercise contains the pure business logic for exercise records.
// This is part of the Functional Core - no I/O, only pure functions.
package exercise

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StoreLayout is the day-granularity form dates are persisted in.
// ISO ordering makes inclusive range comparisons lexicographic.
const StoreLayout = "2006-01-02"

// DisplayLayout is the calendar form dates take in receipts and reports.
const DisplayLayout = "Mon Jan 02 2006"

// dateLayouts are the accepted input forms for date tokens, tried in order.
var dateLayouts = []string{
	StoreLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	DisplayLayout,
	"Jan 02 2006",
}

// ParseDate parses a date token into a calendar date (day granularity, UTC).
// Returns an error for tokens that match none of the accepted layouts.
func ParseDate(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, fmt.Errorf("empty date token")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return Truncate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", token)
}

// NormalizeDate resolves a date token to a calendar date, falling back to
// now when the token is absent or unparsable. This is a total function: a
// typo in the token is indistinguishable from an absent one, and callers
// always get a usable date back.
func NormalizeDate(token string, now time.Time) time.Time {
	if t, err := ParseDate(token); err == nil {
		return t
	}
	return Truncate(now)
}

// Truncate drops the time-of-day component, keeping day granularity in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatStore renders a date in the persisted form.
func FormatStore(t time.Time) string {
	return t.Format(StoreLayout)
}

// FormatDisplay renders a date in the calendar form used in responses.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ParseStoreDate parses a date in the persisted form.
func ParseStoreDate(value string) (time.Time, error) {
	t, err := time.Parse(StoreLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored date %q: %w", value, err)
	}
	return t, nil
}

// ParseDuration parses a duration token (whole duration units). An empty
// token means no duration was supplied and yields zero. No range validation
// is applied; negative values pass through.
func ParseDuration(token string) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", token)
	}
	return n, nil
}
