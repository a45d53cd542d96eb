package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Stefanlynn/zinraicreativesuite/internal/middleware"
	"github.com/Stefanlynn/zinraicreativesuite/internal/session"
	"github.com/Stefanlynn/zinraicreativesuite/internal/store"
)

// Routes assembles the /api surface. Mutating catalog routes, request
// reads and stats sit behind the session check; the catalog reads,
// download tracking and project submission stay public.
func Routes(st *store.Store, sessions *session.Registry) chi.Router {
	r := chi.NewRouter()

	content := NewContentHandler(st)
	requests := NewRequestsHandler(st)
	auth := NewAuthHandler(st, sessions)

	r.Get("/content", content.List)
	r.Get("/content/{id}", content.Get)
	r.Post("/content/{id}/download", content.Download)
	r.Post("/project-requests", requests.Create)

	// In-memory rate limiter: 5 login attempts per minute per IP
	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	r.With(loginLimiter.Limit).Post("/admin/login", auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))

		r.Post("/content", content.Create)
		r.Put("/content/{id}", content.Update)
		r.Patch("/content/{id}", content.Update)
		r.Delete("/content/{id}", content.Delete)

		r.Get("/project-requests", requests.List)
		r.Get("/project-requests/{id}", requests.Get)
		r.Patch("/project-requests/{id}", requests.Update)

		r.Get("/stats/downloads", content.DownloadStats)
		r.Post("/admin/logout", auth.Logout)
	})

	return r
}
