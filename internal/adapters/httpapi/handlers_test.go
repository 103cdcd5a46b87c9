package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/example/fitlog/internal/adapters/sqlite"
	"github.com/example/fitlog/internal/app"
	"github.com/example/fitlog/internal/db"
)

// newTestServer wires the real services over an in-memory store so handler
// tests exercise the full stack below the transport.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	database, err := db.OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	userRepo := sqlite.NewUserRepository(database)
	exerciseRepo := sqlite.NewExerciseRepository(database)

	server := NewServer(
		app.NewUserService(userRepo),
		app.NewExerciseService(userRepo, exerciseRepo),
		app.NewLogService(exerciseRepo),
	)
	return server.Handler()
}

func doJSON(t *testing.T, handler http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func doForm(t *testing.T, handler http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func createUser(t *testing.T, handler http.Handler, username string) string {
	t.Helper()
	rec := doForm(t, handler, "POST", "/api/users", url.Values{"username": {username}})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create user status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var user struct {
		ID string `json:"_id"`
	}
	decode(t, rec, &user)
	return user.ID
}

func TestCreateUserFormEncoded(t *testing.T) {
	handler := newTestServer(t)

	rec := doForm(t, handler, "POST", "/api/users", url.Values{"username": {"gretel"}})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var got struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
	}
	decode(t, rec, &got)
	if got.ID == "" {
		t.Error("_id missing in response")
	}
	if got.Username != "gretel" {
		t.Errorf("username = %q, want gretel", got.Username)
	}
}

func TestCreateUserJSON(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/api/users", `{"username":"hans"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestCreateUserMissingUsername(t *testing.T) {
	handler := newTestServer(t)

	rec := doForm(t, handler, "POST", "/api/users", url.Values{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var got struct {
		Error string `json:"error"`
	}
	decode(t, rec, &got)
	if got.Error == "" {
		t.Error("error body missing")
	}
}

func TestListUsers(t *testing.T) {
	handler := newTestServer(t)
	createUser(t, handler, "alpha")
	createUser(t, handler, "beta")

	rec := doJSON(t, handler, "GET", "/api/users", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
	}
	decode(t, rec, &got)
	if len(got) != 2 {
		t.Fatalf("len(users) = %d, want 2", len(got))
	}
}

func TestRecordExercise(t *testing.T) {
	handler := newTestServer(t)
	userID := createUser(t, handler, "gretel")

	rec := doForm(t, handler, "POST", "/api/users/"+userID+"/exercises", url.Values{
		"description": {"morning run"},
		"duration":    {"30"},
		"date":        {"2024-04-03"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		ID          string `json:"_id"`
		Username    string `json:"username"`
		Description string `json:"description"`
		Duration    int    `json:"duration"`
		Date        string `json:"date"`
	}
	decode(t, rec, &got)
	if got.ID != userID {
		t.Errorf("_id = %q, want the user's ID %q", got.ID, userID)
	}
	if got.Username != "gretel" || got.Description != "morning run" || got.Duration != 30 {
		t.Errorf("receipt = %+v, want denormalized owner + exercise fields", got)
	}
	if got.Date != "Wed Apr 03 2024" {
		t.Errorf("date = %q, want %q", got.Date, "Wed Apr 03 2024")
	}
}

func TestRecordExerciseJSONNumericDuration(t *testing.T) {
	handler := newTestServer(t)
	userID := createUser(t, handler, "gretel")

	rec := doJSON(t, handler, "POST", "/api/users/"+userID+"/exercises",
		`{"description":"swim","duration":45,"date":"2024-04-09"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Duration int `json:"duration"`
	}
	decode(t, rec, &got)
	if got.Duration != 45 {
		t.Errorf("duration = %d, want 45", got.Duration)
	}
}

func TestRecordExerciseUnknownUser(t *testing.T) {
	handler := newTestServer(t)

	rec := doForm(t, handler, "POST", "/api/users/ghost/exercises", url.Values{
		"description": {"run"},
		"duration":    {"10"},
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRecordExerciseBadDuration(t *testing.T) {
	handler := newTestServer(t)
	userID := createUser(t, handler, "gretel")

	rec := doForm(t, handler, "POST", "/api/users/"+userID+"/exercises", url.Values{
		"duration": {"half an hour"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestQueryLog(t *testing.T) {
	handler := newTestServer(t)
	userID := createUser(t, handler, "gretel")

	for _, e := range []url.Values{
		{"description": {"row"}, "duration": {"20"}, "date": {"2024-04-01"}},
		{"description": {"run"}, "duration": {"35"}, "date": {"2024-04-03"}},
		{"description": {"swim"}, "duration": {"45"}, "date": {"2024-04-09"}},
	} {
		rec := doForm(t, handler, "POST", "/api/users/"+userID+"/exercises", e)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed exercise status = %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, handler, "GET", "/api/users/"+userID+"/logs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
		Count    int    `json:"count"`
		Log      []struct {
			Description string `json:"description"`
			Duration    int    `json:"duration"`
			Date        string `json:"date"`
		} `json:"log"`
	}
	decode(t, rec, &got)
	if got.ID != userID || got.Username != "gretel" {
		t.Errorf("report identity = (%q, %q), want (%q, gretel)", got.ID, got.Username, userID)
	}
	if got.Count != 3 || len(got.Log) != 3 {
		t.Fatalf("count = %d, len(log) = %d, want 3 and 3", got.Count, len(got.Log))
	}

	// Range + limit composition
	rec = doJSON(t, handler, "GET", "/api/users/"+userID+"/logs?from=2024-04-02&limit=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	decode(t, rec, &got)
	if got.Count != 1 || len(got.Log) != 1 {
		t.Fatalf("count = %d, len(log) = %d, want 1 and 1", got.Count, len(got.Log))
	}
	if got.Log[0].Description != "run" {
		t.Errorf("log[0].description = %q, want run (first match after from)", got.Log[0].Description)
	}
}

func TestQueryLogEmptyIsNotFound(t *testing.T) {
	handler := newTestServer(t)
	userID := createUser(t, handler, "gretel")

	// Existing user, no exercises
	rec := doJSON(t, handler, "GET", "/api/users/"+userID+"/logs", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for empty log", rec.Code)
	}

	// Missing user looks the same
	rec = doJSON(t, handler, "GET", "/api/users/ghost/logs", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown user", rec.Code)
	}
}

func TestQueryLogBadTokens(t *testing.T) {
	handler := newTestServer(t)
	userID := createUser(t, handler, "gretel")

	for _, query := range []string{"?from=soonish", "?to=later", "?limit=many"} {
		rec := doJSON(t, handler, "GET", "/api/users/"+userID+"/logs"+query, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status for %q = %d, want 400", query, rec.Code)
		}
	}
}

func TestIndexPage(t *testing.T) {
	handler := newTestServer(t)

	rec := doJSON(t, handler, "GET", "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "FitLog") {
		t.Error("index page body missing service name")
	}
}
