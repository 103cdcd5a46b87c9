package app

import (
	"context"

	"github.com/example/fitlog/internal/apperr"
	"github.com/example/fitlog/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockUserRepository implements secondary.UserRepository for testing.
type mockUserRepository struct {
	users     map[string]*secondary.UserRecord
	order     []string
	createErr error
	listErr   error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*secondary.UserRecord),
	}
}

func (m *mockUserRepository) Create(ctx context.Context, user *secondary.UserRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users[user.ID] = user
	m.order = append(m.order, user.ID)
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*secondary.UserRecord, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, apperr.Newf(apperr.CodeNotFound, "user %s not found", id)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*secondary.UserRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*secondary.UserRecord, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.users[id])
	}
	return result, nil
}

// mockExerciseRepository implements secondary.ExerciseRepository for testing.
// List applies the same filter semantics as the SQLite adapter: equality on
// user, inclusive date bounds, then limit.
type mockExerciseRepository struct {
	exercises []*secondary.ExerciseRecord
	usernames map[string]string // user_id -> username, for join resolution
	createErr error
	listErr   error
}

func newMockExerciseRepository() *mockExerciseRepository {
	return &mockExerciseRepository{
		usernames: make(map[string]string),
	}
}

func (m *mockExerciseRepository) Create(ctx context.Context, exercise *secondary.ExerciseRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.exercises = append(m.exercises, exercise)
	return nil
}

func (m *mockExerciseRepository) List(ctx context.Context, filters secondary.ExerciseFilters) ([]*secondary.ExerciseRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.ExerciseRecord
	for _, e := range m.exercises {
		if e.UserID != filters.UserID {
			continue
		}
		if filters.From != "" && e.Date < filters.From {
			continue
		}
		if filters.To != "" && e.Date > filters.To {
			continue
		}
		joined := *e
		joined.Username = m.usernames[e.UserID]
		result = append(result, &joined)
		if filters.Limit > 0 && len(result) == filters.Limit {
			break
		}
	}
	return result, nil
}
