package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/example/fitlog/internal/apperr"
	"github.com/example/fitlog/internal/ports/primary"
)

// Wire shapes. Field names mirror the original service's contract, user
// IDs travel as "_id".

type userJSON struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type receiptJSON struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logEntryJSON struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type reportJSON struct {
	ID       string         `json:"_id"`
	Username string         `json:"username"`
	Count    int            `json:"count"`
	Log      []logEntryJSON `json:"log"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r, "username")
	if !ok {
		return
	}

	user, err := s.users.CreateUser(r.Context(), primary.CreateUserRequest{
		Username: body["username"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userJSON{ID: user.ID, Username: user.Username})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]userJSON, len(users))
	for i, u := range users {
		out[i] = userJSON{ID: u.ID, Username: u.Username}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRecordExercise(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r, "description", "duration", "date")
	if !ok {
		return
	}

	receipt, err := s.exercises.RecordExercise(r.Context(), primary.RecordExerciseRequest{
		UserID:      r.PathValue("id"),
		Description: body["description"],
		Duration:    body["duration"],
		Date:        body["date"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, receiptJSON{
		ID:          receipt.ID,
		Username:    receipt.Username,
		Description: receipt.Description,
		Duration:    receipt.Duration,
		Date:        receipt.Date,
	})
}

func (s *Server) handleQueryLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	report, err := s.logs.QueryLog(r.Context(), primary.LogQueryRequest{
		UserID: r.PathValue("id"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	out := reportJSON{
		ID:       report.ID,
		Username: report.Username,
		Count:    report.Count,
		Log:      make([]logEntryJSON, len(report.Log)),
	}
	for i, e := range report.Log {
		out.Log[i] = logEntryJSON{Description: e.Description, Duration: e.Duration, Date: e.Date}
	}
	writeJSON(w, http.StatusOK, out)
}

// decodeBody reads the named fields from a JSON or form-encoded request
// body. On failure it writes a 400 and returns ok=false.
func decodeBody(w http.ResponseWriter, r *http.Request, fields ...string) (map[string]string, bool) {
	values := make(map[string]string, len(fields))

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			jsonError(w, "Invalid request body", http.StatusBadRequest)
			return nil, false
		}
		for _, f := range fields {
			switch v := raw[f].(type) {
			case string:
				values[f] = v
			case float64:
				// Numbers arrive untyped; re-encode them as the token form
				// the services parse.
				b, _ := json.Marshal(v)
				values[f] = string(b)
			}
		}
		return values, true
	}

	if err := r.ParseForm(); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	for _, f := range fields {
		values[f] = r.PostFormValue(f)
	}
	return values, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("httpapi: failed to encode response: %v", err)
	}
}

func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeError maps service errors onto the wire: not found is a client-visible
// 404, validation a 400, everything else a logged 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperr.Is(err, apperr.CodeNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case apperr.Is(err, apperr.CodeValidation):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("httpapi: internal error: %v", err)
		jsonError(w, "internal server error", http.StatusInternalServerError)
	}
}
