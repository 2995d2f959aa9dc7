package nlp

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	nlpservice "github.com/taskmind/backend/internal/service/nlp"
	"github.com/taskmind/backend/pkg/utils"
)

// Handler exposes the text-analysis operations over HTTP. Input validation
// happens here; the core assumes validated strings and degrades gracefully on
// empty ones.
type Handler struct {
	nlpSvc *nlpservice.Service
}

// New creates the NLP handler.
func New(nlpSvc *nlpservice.Service) *Handler {
	return &Handler{nlpSvc: nlpSvc}
}

// RegisterRoutes registers the NLP routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/nlp/analyze", h.handleAnalyze)
	r.Post("/nlp/entities", h.handleEntities)
	r.Post("/nlp/sentiment", h.handleSentiment)
	r.Post("/nlp/insights", h.handleInsights)
	r.Post("/nlp/command", h.handleCommand)
}

type textRequest struct {
	Text string `json:"text"`
}

// readText decodes the request body and rejects missing text before the core
// is reached.
func readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return "", false
	}
	if strings.TrimSpace(req.Text) == "" {
		utils.RespondError(w, http.StatusBadRequest, "text field is required")
		return "", false
	}
	return req.Text, true
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.nlpSvc.AnalyzeText(r.Context(), text))
}

func (h *Handler) handleEntities(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	entities := h.nlpSvc.ExtractEntities(r.Context(), text)
	utils.RespondJSON(w, http.StatusOK, map[string]any{"entities": entities})
}

func (h *Handler) handleSentiment(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.nlpSvc.AnalyzeSentiment(r.Context(), text))
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.nlpSvc.Insights(r.Context(), text))
}

func (h *Handler) handleCommand(w http.ResponseWriter, r *http.Request) {
	text, ok := readText(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.nlpSvc.ParseCommand(r.Context(), text))
}
