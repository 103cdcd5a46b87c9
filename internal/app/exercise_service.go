package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/fitlog/internal/apperr"
	"github.com/example/fitlog/internal/core/exercise"
	"github.com/example/fitlog/internal/ports/primary"
	"github.com/example/fitlog/internal/ports/secondary"
)

// ExerciseServiceImpl implements the ExerciseService interface.
type ExerciseServiceImpl struct {
	userRepo     secondary.UserRepository
	exerciseRepo secondary.ExerciseRepository
	now          func() time.Time
}

// NewExerciseService creates a new ExerciseService with injected dependencies.
func NewExerciseService(userRepo secondary.UserRepository, exerciseRepo secondary.ExerciseRepository) *ExerciseServiceImpl {
	return &ExerciseServiceImpl{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
	}
}

// WithClock overrides the service clock. Used by tests to pin "now".
func (s *ExerciseServiceImpl) WithClock(now func() time.Time) *ExerciseServiceImpl {
	s.now = now
	return s
}

// RecordExercise creates an exercise attributed to an existing user.
//
// The date token is normalized with fallback: absent or unparsable tokens
// resolve to today. The receipt denormalizes the owner's identity so the
// caller needs no second lookup; its ID is the user's ID, not the
// exercise's.
func (s *ExerciseServiceImpl) RecordExercise(ctx context.Context, req primary.RecordExerciseRequest) (*primary.ExerciseReceipt, error) {
	owner, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	duration, err := exercise.ParseDuration(req.Duration)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeValidation, "invalid exercise", err)
	}

	date := exercise.NormalizeDate(req.Date, s.now())

	record := &secondary.ExerciseRecord{
		ID:          uuid.NewString(),
		UserID:      owner.ID,
		Description: req.Description,
		Duration:    duration,
		Date:        exercise.FormatStore(date),
	}

	if err := s.exerciseRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return &primary.ExerciseReceipt{
		ID:          owner.ID,
		Username:    owner.Username,
		Description: record.Description,
		Duration:    record.Duration,
		Date:        exercise.FormatDisplay(date),
	}, nil
}

// Ensure ExerciseServiceImpl implements the interface
var _ primary.ExerciseService = (*ExerciseServiceImpl)(nil)
