package primary

import "context"

// ExerciseService defines the primary port for recording exercises.
type ExerciseService interface {
	// RecordExercise creates an exercise attributed to a user and returns
	// a denormalized receipt.
	RecordExercise(ctx context.Context, req RecordExerciseRequest) (*ExerciseReceipt, error)
}

// LogService defines the primary port for querying a user's exercise log.
type LogService interface {
	// QueryLog resolves the exercises matching the query and folds them
	// into a report.
	QueryLog(ctx context.Context, req LogQueryRequest) (*LogReport, error)
}

// RecordExerciseRequest contains the raw tokens for recording an exercise.
// Duration and Date arrive as client-supplied text; parsing policy lives in
// the service, not the adapter.
type RecordExerciseRequest struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// ExerciseReceipt combines the owning user's identity with the recorded
// exercise, so consumers need no second lookup. ID is the user's ID.
type ExerciseReceipt struct {
	ID          string
	Username    string
	Description string
	Duration    int
	Date        string // calendar form, e.g. "Wed Apr 03 2024"
}

// LogQueryRequest contains the raw tokens for a log query. From, To and
// Limit are optional; empty means unconstrained.
type LogQueryRequest struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// LogReport is the shaped result of a log query. Count equals len(Log).
type LogReport struct {
	ID       string
	Username string
	Count    int
	Log      []LogEntry
}

// LogEntry is one exercise in a log report.
type LogEntry struct {
	Description string
	Duration    int
	Date        string
}
