package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taskmind/backend/internal/analysis/sentiment"
	"github.com/taskmind/backend/internal/embedding"
	"github.com/taskmind/backend/internal/model/intent"
	nlpservice "github.com/taskmind/backend/internal/service/nlp"
)

func setupRouter() http.Handler {
	model := embedding.Null{}
	analyzer := sentiment.NewAnalyzer(context.Background(), model)
	svc := nlpservice.NewService(model, analyzer, intent.Seed(), nil, nil)

	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		New(svc).RegisterRoutes(api)
	})
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeMissingText(t *testing.T) {
	rec := postJSON(t, setupRouter(), "/api/nlp/analyze", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "text field is required" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestAnalyzeInvalidJSON(t *testing.T) {
	rec := postJSON(t, setupRouter(), "/api/nlp/analyze", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeDegradedModel(t *testing.T) {
	rec := postJSON(t, setupRouter(), "/api/nlp/analyze", `{"text":"add task call John"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Tokens    []json.RawMessage `json:"tokens"`
		Sentiment string            `json:"sentiment"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Tokens == nil {
		t.Fatal("tokens must be an empty array, not null")
	}
	if body.Sentiment != "neutral" {
		t.Fatalf("expected neutral sentiment, got %q", body.Sentiment)
	}
}

func TestEntitiesResponseShape(t *testing.T) {
	rec := postJSON(t, setupRouter(), "/api/nlp/entities", `{"text":"meet John tomorrow"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := body["entities"]; !ok {
		t.Fatalf("expected entities key, got %v", body)
	}
}

func TestSentimentNeutralDefault(t *testing.T) {
	rec := postJSON(t, setupRouter(), "/api/nlp/sentiment", `{"text":"feeling great"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Sentiment string  `json:"sentiment"`
		Score     float64 `json:"score"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Sentiment != "neutral" || body.Score != 0 {
		t.Fatalf("expected neutral default, got %+v", body)
	}
}

func TestCommandUnresolved(t *testing.T) {
	rec := postJSON(t, setupRouter(), "/api/nlp/command", `{"text":"add task call John"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Intent   string          `json:"intent"`
		Action   string          `json:"action"`
		Entities json.RawMessage `json:"entities"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Intent != "unknown" || body.Action != "none" {
		t.Fatalf("expected unknown/none, got %+v", body)
	}
}
