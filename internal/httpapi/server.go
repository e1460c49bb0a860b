// Package httpapi exposes the planning services over a JSON HTTP surface.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts all API routes and standard middleware.
func NewRouter(h *Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/plan", h.HandleGeneratePlan)
		r.Get("/degrees", h.HandleListDegrees)
		r.Get("/courses", h.HandleSearchCourses)

		r.Get("/history", h.HandleListHistory)
		r.Get("/history/{id}", h.HandleGetHistory)
		r.Delete("/history/{id}", h.HandleDeleteHistory)
	})

	return r
}
