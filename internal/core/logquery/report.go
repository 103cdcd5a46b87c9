package logquery

import (
	"time"

	"github.com/example/fitlog/internal/core/exercise"
)

// Entry is one matched exercise with its owner resolved, in store order.
type Entry struct {
	Username    string
	Description string
	Duration    int
	Date        time.Time
}

// Line is one rendered log entry.
type Line struct {
	Description string
	Duration    int
	Date        string // calendar form, e.g. "Wed Apr 03 2024"
}

// Report is the shaped result of a log query.
type Report struct {
	ID       string
	Username string
	Count    int
	Log      []Line
}

// AssembleReport folds matched entries into a report.
//
// The ID echoes the requested user ID verbatim. The username is taken from
// the first entry's resolved owner; the filter pins every entry to the same
// user, so any entry would do. Count always equals the number of entries
// handed in, which is the post-limit set, never the total match count.
// Entries must be non-empty; callers treat an empty match set as not found.
func AssembleReport(userID string, entries []Entry) Report {
	report := Report{
		ID:    userID,
		Count: len(entries),
		Log:   make([]Line, 0, len(entries)),
	}

	if len(entries) > 0 {
		report.Username = entries[0].Username
	}

	for _, e := range entries {
		report.Log = append(report.Log, Line{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        exercise.FormatDisplay(e.Date),
		})
	}

	return report
}
