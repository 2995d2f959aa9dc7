package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskmind/backend/internal/handler/assistant"
	nlpHandler "github.com/taskmind/backend/internal/handler/nlp"
	suggestHandler "github.com/taskmind/backend/internal/handler/suggest"
	middlewarePkg "github.com/taskmind/backend/internal/middleware"
	"github.com/taskmind/backend/internal/model/profile"
	nlpService "github.com/taskmind/backend/internal/service/nlp"
	suggestService "github.com/taskmind/backend/internal/service/suggest"
	"github.com/taskmind/backend/pkg/utils"
)

// Capabilities reports which optional pipeline pieces initialized, surfaced
// on the health endpoint.
type Capabilities struct {
	ModelAvailable bool `json:"modelAvailable"`
	IntentCount    int  `json:"intentCount"`
}

// NewRouter wires HTTP routes to core services.
func NewRouter(nlpSvc *nlpService.Service, engine *suggestService.Engine, profiles profile.Store, caps Capabilities) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		nlpHandler.New(nlpSvc).RegisterRoutes(api)
		suggestHandler.New(engine).RegisterRoutes(api)
		assistant.New(nlpSvc, engine, profiles).RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]any{
				"status":       "ok",
				"capabilities": caps,
			})
		})
	})

	return r
}
