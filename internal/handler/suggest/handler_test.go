package suggest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taskmind/backend/internal/model/profile"
	suggestservice "github.com/taskmind/backend/internal/service/suggest"
)

func setupRouter() http.Handler {
	engine := suggestservice.NewEngine(profile.NewMemoryStore(), nil, nil)

	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		New(engine).RegisterRoutes(api)
	})
	return r
}

func postJSON(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/suggestions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSuggestMissingUserID(t *testing.T) {
	rec := postJSON(t, setupRouter(), `{"count":5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "userId field is required" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestSuggestInvalidJSON(t *testing.T) {
	rec := postJSON(t, setupRouter(), `{broken`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSuggestCountOutOfRange(t *testing.T) {
	for _, body := range []string{`{"userId":"u1","count":-1}`, `{"userId":"u1","count":100}`} {
		rec := postJSON(t, setupRouter(), body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestSuggestDefaults(t *testing.T) {
	rec := postJSON(t, setupRouter(), `{"userId":"u1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Suggestions []struct {
			Text       string  `json:"text"`
			Category   string  `json:"category"`
			Reason     string  `json:"reason"`
			Confidence float64 `json:"confidence"`
		} `json:"suggestions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Suggestions) != suggestservice.DefaultCount {
		t.Fatalf("expected %d suggestions, got %d", suggestservice.DefaultCount, len(body.Suggestions))
	}
	for _, s := range body.Suggestions {
		if s.Text == "" || s.Reason == "" || s.Confidence <= 0 {
			t.Fatalf("incomplete suggestion: %+v", s)
		}
	}
}

func TestSuggestWithContext(t *testing.T) {
	rec := postJSON(t, setupRouter(), `{"userId":"u1","context":{"location":"home"},"count":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Suggestions []struct {
			Category string `json:"category"`
		} `json:"suggestions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	found := false
	for _, s := range body.Suggestions {
		if s.Category == "context" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a context suggestion in %+v", body.Suggestions)
	}
}
