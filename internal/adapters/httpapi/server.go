// Package httpapi is the HTTP/JSON transport adapter. It translates wire
// requests into primary-port calls and service errors into status codes;
// all decision logic lives behind the ports.
package httpapi

import (
	_ "embed"
	"net/http"

	"github.com/example/fitlog/internal/ports/primary"
)

//go:embed index.html
var indexHTML []byte

// Server bundles the primary-port services behind an http.Handler.
type Server struct {
	users     primary.UserService
	exercises primary.ExerciseService
	logs      primary.LogService
}

// NewServer creates a new Server over the given services.
func NewServer(users primary.UserService, exercises primary.ExerciseService, logs primary.LogService) *Server {
	return &Server{
		users:     users,
		exercises: exercises,
		logs:      logs,
	}
}

// Handler returns the routed handler. Each request runs on its own
// goroutine (net/http native); the services hold no shared mutable state.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/users", s.handleCreateUser)
	mux.HandleFunc("GET /api/users", s.handleListUsers)
	mux.HandleFunc("POST /api/users/{id}/exercises", s.handleRecordExercise)
	mux.HandleFunc("GET /api/users/{id}/logs", s.handleQueryLog)

	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
