package http

import (
	"net/http"

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
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	// routes requiring a session cookie or a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/logout", h.logout)
		r.Get("/api/user/me", h.currentUser)
		r.Get("/api/invoices", h.getInvoice)
		r.Post("/api/invoices", h.saveInvoice)
	})

	// the web client is plain files served from the static directory
	if h.staticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(h.staticDir)))
	}

	return router
}
