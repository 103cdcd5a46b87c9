// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/fitlog/internal/ports/primary"
)

// UserAdapter is a thin adapter that translates CLI operations to UserService calls.
// It depends only on the UserService interface, enabling easy testing with mocks.
type UserAdapter struct {
	service primary.UserService
	out     io.Writer
}

// NewUserAdapter creates a new UserAdapter with the given service.
func NewUserAdapter(service primary.UserService, out io.Writer) *UserAdapter {
	return &UserAdapter{
		service: service,
		out:     out,
	}
}

// Create registers a new user.
func (a *UserAdapter) Create(ctx context.Context, username string) error {
	user, err := a.service.CreateUser(ctx, primary.CreateUserRequest{
		Username: username,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created user %s: %s\n", user.ID, user.Username)
	return nil
}

// List lists all registered users.
func (a *UserAdapter) List(ctx context.Context) error {
	users, err := a.service.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-38s %s\n", "ID", "USERNAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────")
	for _, u := range users {
		fmt.Fprintf(a.out, "%-38s %s\n", u.ID, u.Username)
	}
	fmt.Fprintln(a.out)

	return nil
}
