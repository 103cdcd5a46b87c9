// Package app implements the primary ports over the secondary ports.
// Services orchestrate the functional core and the record store.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/fitlog/internal/apperr"
	"github.com/example/fitlog/internal/core/user"
	"github.com/example/fitlog/internal/ports/primary"
	"github.com/example/fitlog/internal/ports/secondary"
)

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userRepo secondary.UserRepository
}

// NewUserService creates a new UserService with injected dependencies.
func NewUserService(userRepo secondary.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// CreateUser registers a new user. Usernames are free-form; duplicates are
// allowed by design.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req primary.CreateUserRequest) (*primary.User, error) {
	if guard := user.CanCreateUser(user.CreateUserContext{Username: req.Username}); !guard.Allowed {
		return nil, apperr.New(apperr.CodeValidation, guard.Reason)
	}

	record := &secondary.UserRecord{
		ID:       uuid.NewString(),
		Username: strings.TrimSpace(req.Username),
	}

	if err := s.userRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &primary.User{
		ID:       record.ID,
		Username: record.Username,
	}, nil
}

// ListUsers returns all users in store order.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*primary.User, error) {
	records, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*primary.User, len(records))
	for i, r := range records {
		users[i] = &primary.User{ID: r.ID, Username: r.Username}
	}
	return users, nil
}

// GetUser retrieves a user by ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID string) (*primary.User, error) {
	record, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &primary.User{ID: record.ID, Username: record.Username}, nil
}

// Ensure UserServiceImpl implements the interface
var _ primary.UserService = (*UserServiceImpl)(nil)
