package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/fitlog/internal/ports/secondary"
)

// ExerciseRepository implements secondary.ExerciseRepository with SQLite.
type ExerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository creates a new SQLite exercise repository.
func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// Create persists a new exercise.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *secondary.ExerciseRecord) error {
	var description sql.NullString
	if exercise.Description != "" {
		description = sql.NullString{String: exercise.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO exercises (id, user_id, description, duration, date) VALUES (?, ?, ?, ?, ?)",
		exercise.ID, exercise.UserID, description, exercise.Duration, exercise.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil
}

// List retrieves exercises matching the given filters, joining each row's
// owning user so Username is populated. Range bounds are inclusive; stored
// dates are ISO day strings, so the comparisons are plain text ordering.
// Rows come back in date order with insertion order breaking ties.
func (r *ExerciseRepository) List(ctx context.Context, filters secondary.ExerciseFilters) ([]*secondary.ExerciseRecord, error) {
	query := `SELECT e.id, e.user_id, u.username, e.description, e.duration, e.date, e.created_at
		FROM exercises e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = ?`
	args := []any{filters.UserID}

	if filters.From != "" {
		query += " AND e.date >= ?"
		args = append(args, filters.From)
	}

	if filters.To != "" {
		query += " AND e.date <= ?"
		args = append(args, filters.To)
	}

	query += " ORDER BY e.date ASC, e.created_at ASC, e.id ASC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*secondary.ExerciseRecord
	for rows.Next() {
		var (
			description sql.NullString
			createdAt   time.Time
		)

		record := &secondary.ExerciseRecord{}
		err := rows.Scan(&record.ID, &record.UserID, &record.Username, &description, &record.Duration, &record.Date, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}

		record.Description = description.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		exercises = append(exercises, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	return exercises, nil
}

// Ensure ExerciseRepository implements the interface
var _ secondary.ExerciseRepository = (*ExerciseRepository)(nil)
