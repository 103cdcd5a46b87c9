// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/fitlog/internal/apperr"
	"github.com/example/fitlog/internal/ports/secondary"
)

// UserRepository implements secondary.UserRepository with SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, user *secondary.UserRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, username) VALUES (?, ?)",
		user.ID, user.Username,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by its ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*secondary.UserRecord, error) {
	var createdAt time.Time

	record := &secondary.UserRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, created_at FROM users WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Username, &createdAt)

	if err == sql.ErrNoRows {
		return nil, apperr.Newf(apperr.CodeNotFound, "user %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// List retrieves all users in creation order.
func (r *UserRepository) List(ctx context.Context) ([]*secondary.UserRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, username, created_at FROM users ORDER BY created_at ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*secondary.UserRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.UserRecord{}
		if err := rows.Scan(&record.ID, &record.Username, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		users = append(users, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Ensure UserRepository implements the interface
var _ secondary.UserRepository = (*UserRepository)(nil)
