// Package primary defines the primary ports (driving interfaces) for the
// application. Transport and CLI adapters depend on these interfaces only.
package primary

import "context"

// UserService defines the primary port for user operations.
type UserService interface {
	// CreateUser registers a new user.
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)

	// ListUsers returns all users in store order.
	ListUsers(ctx context.Context) ([]*User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*User, error)
}

// CreateUserRequest contains parameters for registering a user.
type CreateUserRequest struct {
	Username string
}

// User represents a user entity at the port boundary.
type User struct {
	ID       string
	Username string
}
