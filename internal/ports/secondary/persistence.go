// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives the record store.
package secondary

import "context"

// UserRepository defines the secondary port for user persistence.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *UserRecord) error

	// GetByID retrieves a user by its ID.
	GetByID(ctx context.Context, id string) (*UserRecord, error)

	// List retrieves all users in store order.
	List(ctx context.Context) ([]*UserRecord, error)
}

// ExerciseRepository defines the secondary port for exercise persistence.
type ExerciseRepository interface {
	// Create persists a new exercise.
	Create(ctx context.Context, exercise *ExerciseRecord) error

	// List retrieves exercises matching the given filters, with each
	// record's owning user resolved (Username populated from the join).
	List(ctx context.Context, filters ExerciseFilters) ([]*ExerciseRecord, error)
}

// UserRecord represents a user as stored in persistence.
type UserRecord struct {
	ID        string
	Username  string
	CreatedAt string
}

// ExerciseRecord represents an exercise as stored in persistence.
// Username is populated on reads that join the owning user; it is ignored
// on writes.
type ExerciseRecord struct {
	ID          string
	UserID      string
	Username    string
	Description string
	Duration    int
	Date        string // day granularity, YYYY-MM-DD
	CreatedAt   string
}

// ExerciseFilters contains filter options for querying exercises.
// From/To are inclusive day-granularity bounds in stored form; empty means
// unbounded. Limit zero means unlimited.
type ExerciseFilters struct {
	UserID string
	From   string
	To     string
	Limit  int
}
