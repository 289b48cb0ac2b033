package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Get("/", h.greeting)
	router.Get("/api/version", h.getServerVersion)

	// routes behind bearer token verification
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/user/upsert", h.upsertUser)
		r.Post("/api/user/sync", h.syncUserData)
		r.Get("/api/user/data", h.getUserData)
	})

	return router
}
