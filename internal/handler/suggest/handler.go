package suggest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	suggestModel "github.com/taskmind/backend/internal/model/suggest"
	suggestservice "github.com/taskmind/backend/internal/service/suggest"
	"github.com/taskmind/backend/pkg/utils"
)

// Handler exposes personalized task suggestions over HTTP.
type Handler struct {
	engine *suggestservice.Engine
}

// New creates the suggestion handler.
func New(engine *suggestservice.Engine) *Handler {
	return &Handler{engine: engine}
}

// RegisterRoutes registers the suggestion routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/suggestions", h.handleSuggest)
}

type suggestRequest struct {
	UserID  string               `json:"userId"`
	Context suggestModel.Context `json:"context,omitempty"`
	Count   int                  `json:"count,omitempty"`
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId field is required")
		return
	}
	if req.Count == 0 {
		req.Count = suggestservice.DefaultCount
	}
	if req.Count < 0 || req.Count > 25 {
		utils.RespondError(w, http.StatusBadRequest, "count must be between 1 and 25")
		return
	}

	suggestions := h.engine.SuggestTasks(req.UserID, req.Context, req.Count)
	utils.RespondJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}
