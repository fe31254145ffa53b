package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the configd router with the full middleware chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.healthz)

	router.Route("/api", func(r chi.Router) {
		r.Get("/config", h.getConfig)
		r.Get("/theme", h.getTheme)
		r.Get("/lint", h.getLint)
	})

	return router
}
