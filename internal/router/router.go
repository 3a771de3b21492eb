package router

import (
	"github.com/go-chi/chi/v5"

	"visaportal/internal/auth"
	"visaportal/internal/handler"
	mw "visaportal/internal/middleware"
)

func New(
	jwtSecret string,
	formH *handler.FormHandler,
	appH *handler.ApplicationHandler,
	authH *handler.AuthHandler,
	adminH *handler.AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.RequestID)
	r.Use(mw.Logger)

	// Server-rendered portal
	r.Get("/", formH.Index)
	r.Post("/submit", formH.Submit)
	r.Get("/clear", formH.Clear)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", authH.Login)
		r.Post("/applications", appH.Create)
		r.Get("/applications/prefill", appH.Prefill)
		r.Post("/applications/clear", appH.Clear)

		// Operator routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))
			r.Get("/admin/receipts", adminH.Receipts)
			r.Get("/admin/status", adminH.Status)
		})
	})

	return r
}
