// Package wire provides dependency injection for the fitlog application.
// It creates singleton services with lazy initialization and owns the
// database handle for the process.
package wire

import (
	"io"
	"log"
	"net/http"
	"os"
	"sync"

	cliadapter "github.com/example/fitlog/internal/adapters/cli"
	"github.com/example/fitlog/internal/adapters/httpapi"
	"github.com/example/fitlog/internal/adapters/sqlite"
	"github.com/example/fitlog/internal/app"
	"github.com/example/fitlog/internal/config"
	"github.com/example/fitlog/internal/db"
	"github.com/example/fitlog/internal/ports/primary"
)

var (
	userService     primary.UserService
	exerciseService primary.ExerciseService
	logService      primary.LogService
	once            sync.Once
)

// UserService returns the singleton UserService instance.
func UserService() primary.UserService {
	once.Do(initServices)
	return userService
}

// ExerciseService returns the singleton ExerciseService instance.
func ExerciseService() primary.ExerciseService {
	once.Do(initServices)
	return exerciseService
}

// LogService returns the singleton LogService instance.
func LogService() primary.LogService {
	once.Do(initServices)
	return logService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	path := cfg.DBPath
	if path == "" {
		path, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve database path: %v", err)
		}
	}

	database, err := db.Open(path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with the injected DB handle
	userRepo := sqlite.NewUserRepository(database)
	exerciseRepo := sqlite.NewExerciseRepository(database)

	// Services (primary ports implementation)
	userService = app.NewUserService(userRepo)
	exerciseService = app.NewExerciseService(userRepo, exerciseRepo)
	logService = app.NewLogService(exerciseRepo)
}

// UserAdapter returns a new UserAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func UserAdapter() *cliadapter.UserAdapter {
	return UserAdapterWithOutput(os.Stdout)
}

// UserAdapterWithOutput returns a new UserAdapter writing to the given output.
func UserAdapterWithOutput(out io.Writer) *cliadapter.UserAdapter {
	once.Do(initServices)
	return cliadapter.NewUserAdapter(userService, out)
}

// ExerciseAdapter returns a new ExerciseAdapter writing to stdout.
func ExerciseAdapter() *cliadapter.ExerciseAdapter {
	return ExerciseAdapterWithOutput(os.Stdout)
}

// ExerciseAdapterWithOutput returns a new ExerciseAdapter writing to the given output.
func ExerciseAdapterWithOutput(out io.Writer) *cliadapter.ExerciseAdapter {
	once.Do(initServices)
	return cliadapter.NewExerciseAdapter(exerciseService, out)
}

// HTTPHandler returns the routed HTTP handler over the singleton services.
func HTTPHandler() http.Handler {
	once.Do(initServices)
	return httpapi.NewServer(userService, exerciseService, logService).Handler()
}
