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
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// vault routes, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", h.listCategories)
			r.Post("/", h.createCategory)
			r.Put("/{categoryID}", h.updateCategory)
			r.Delete("/{categoryID}", h.deleteCategory)
		})

		r.Route("/api/credentials", func(r chi.Router) {
			r.Get("/", h.listCredentials)
			r.Post("/", h.createCredential)
			r.Get("/{credentialID}", h.getCredential)
			r.Put("/{credentialID}", h.updateCredential)
			r.Delete("/{credentialID}", h.deleteCredential)
		})
	})

	return router
}
