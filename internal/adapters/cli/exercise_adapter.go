package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/fitlog/internal/ports/primary"
)

// ExerciseAdapter is a thin adapter that translates CLI operations to
// ExerciseService calls.
type ExerciseAdapter struct {
	service primary.ExerciseService
	out     io.Writer
}

// NewExerciseAdapter creates a new ExerciseAdapter with the given service.
func NewExerciseAdapter(service primary.ExerciseService, out io.Writer) *ExerciseAdapter {
	return &ExerciseAdapter{
		service: service,
		out:     out,
	}
}

// Record creates an exercise for a user and prints the receipt.
func (a *ExerciseAdapter) Record(ctx context.Context, userID, description, duration, date string) error {
	receipt, err := a.service.RecordExercise(ctx, primary.RecordExerciseRequest{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Recorded exercise for %s (%s)\n", receipt.Username, receipt.ID)
	if receipt.Description != "" {
		fmt.Fprintf(a.out, "  Description: %s\n", receipt.Description)
	}
	fmt.Fprintf(a.out, "  Duration: %d\n", receipt.Duration)
	fmt.Fprintf(a.out, "  Date:     %s\n", receipt.Date)
	return nil
}
