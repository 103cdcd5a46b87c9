// Package user contains the pure business logic for user operations.
// Guards are pure functions that evaluate preconditions without side effects.
package user

import (
	"fmt"
	"strings"
)

// MaxUsernameLength bounds usernames; the store imposes no constraint itself.
const MaxUsernameLength = 128

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateUserContext provides context for user creation guards.
type CreateUserContext struct {
	Username string
}

// CanCreateUser evaluates whether a user can be created.
// Rules:
// - Username must be non-empty after trimming whitespace
// - Username must not exceed MaxUsernameLength
// Usernames are otherwise free-form; duplicates are allowed.
func CanCreateUser(ctx CreateUserContext) GuardResult {
	trimmed := strings.TrimSpace(ctx.Username)
	if trimmed == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "username must not be empty",
		}
	}

	if len(trimmed) > MaxUsernameLength {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("username exceeds %d characters", MaxUsernameLength),
		}
	}

	return GuardResult{Allowed: true}
}
