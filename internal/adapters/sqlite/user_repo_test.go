package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/fitlog/internal/adapters/sqlite"
	"github.com/example/fitlog/internal/apperr"
	"github.com/example/fitlog/internal/ports/secondary"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewUserRepository(database)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.UserRecord{ID: "u-1", Username: "gretel"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ID != "u-1" || got.Username != "gretel" {
		t.Errorf("GetByID() = %+v, want id u-1, username gretel", got)
	}
	if got.CreatedAt == "" {
		t.Error("GetByID() CreatedAt is empty")
	}
}

func TestUserRepositoryGetMissing(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewUserRepository(database)

	_, err := repo.GetByID(context.Background(), "ghost")
	if err == nil {
		t.Fatal("GetByID() error = nil for missing user, want error")
	}
	if !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("GetByID() error = %v, want not found error", err)
	}
}

func TestUserRepositoryDuplicateUsernames(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewUserRepository(database)
	ctx := context.Background()

	// No uniqueness constraint on username
	if err := repo.Create(ctx, &secondary.UserRecord{ID: "u-1", Username: "gretel"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, &secondary.UserRecord{ID: "u-2", Username: "gretel"}); err != nil {
		t.Fatalf("Create() duplicate username error = %v", err)
	}
}

func TestUserRepositoryDuplicateID(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewUserRepository(database)
	ctx := context.Background()

	if err := repo.Create(ctx, &secondary.UserRecord{ID: "u-1", Username: "gretel"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, &secondary.UserRecord{ID: "u-1", Username: "hans"}); err == nil {
		t.Error("Create() error = nil for duplicate ID, want constraint violation")
	}
}

func TestUserRepositoryList(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewUserRepository(database)
	ctx := context.Background()

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 0 {
		t.Errorf("List() on empty store = %d users, want 0", len(users))
	}

	seedUser(t, database, "u-1", "alpha")
	seedUser(t, database, "u-2", "beta")

	users, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("List() = %d users, want 2", len(users))
	}
	if users[0].Username != "alpha" || users[1].Username != "beta" {
		t.Errorf("List() order = [%s, %s], want [alpha, beta]", users[0].Username, users[1].Username)
	}
}
