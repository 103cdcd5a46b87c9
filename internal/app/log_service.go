package app

import (
	"context"
	"fmt"

	"github.com/example/fitlog/internal/apperr"
	"github.com/example/fitlog/internal/core/exercise"
	"github.com/example/fitlog/internal/core/logquery"
	"github.com/example/fitlog/internal/ports/primary"
	"github.com/example/fitlog/internal/ports/secondary"
)

// LogServiceImpl implements the LogService interface.
type LogServiceImpl struct {
	exerciseRepo secondary.ExerciseRepository
}

// NewLogService creates a new LogService with injected dependencies.
func NewLogService(exerciseRepo secondary.ExerciseRepository) *LogServiceImpl {
	return &LogServiceImpl{
		exerciseRepo: exerciseRepo,
	}
}

// QueryLog builds a filter from the query tokens, executes it against the
// store and folds the matches into a report.
//
// An empty match set is reported as not found. A missing user and an
// existing user with no matching exercises are indistinguishable here: the
// query never looks the user up independently, the owner's username comes
// from the first matched row's join.
func (s *LogServiceImpl) QueryLog(ctx context.Context, req primary.LogQueryRequest) (*primary.LogReport, error) {
	filter, err := logquery.BuildFilter(req.UserID, req.From, req.To, req.Limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeValidation, "invalid log query", err)
	}

	records, err := s.exerciseRepo.List(ctx, secondary.ExerciseFilters{
		UserID: filter.UserID,
		From:   filter.From,
		To:     filter.To,
		Limit:  filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}

	if len(records) == 0 {
		return nil, apperr.Newf(apperr.CodeNotFound, "no exercises found for user %s", req.UserID)
	}

	entries := make([]logquery.Entry, len(records))
	for i, r := range records {
		date, err := exercise.ParseStoreDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to read exercise %s: %w", r.ID, err)
		}
		entries[i] = logquery.Entry{
			Username:    r.Username,
			Description: r.Description,
			Duration:    r.Duration,
			Date:        date,
		}
	}

	report := logquery.AssembleReport(req.UserID, entries)

	out := &primary.LogReport{
		ID:       report.ID,
		Username: report.Username,
		Count:    report.Count,
		Log:      make([]primary.LogEntry, len(report.Log)),
	}
	for i, line := range report.Log {
		out.Log[i] = primary.LogEntry{
			Description: line.Description,
			Duration:    line.Duration,
			Date:        line.Date,
		}
	}
	return out, nil
}

// Ensure LogServiceImpl implements the interface
var _ primary.LogService = (*LogServiceImpl)(nil)
