// internal/api/router.go
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupDataRouter serves the authenticated diagnostic API.
func SetupDataRouter(h *APIHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/login", h.HandleLogin)
	r.Get("/health", h.HandleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/diagnose", h.Authenticate(h.HandleDiagnose))
		r.Get("/reports", h.Authenticate(h.HandleReports))
		r.Get("/thresholds", h.HandleThresholds)
	})

	return r
}

// SetupUIRouter serves the dashboard-facing websocket feed.
func SetupUIRouter(h *APIHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ws", h.HandleWebSocket)
	r.Get("/health", h.HandleHealth)

	return r
}
