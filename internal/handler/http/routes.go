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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/user/{id}", h.getUser)
	})

	return router
}
