package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all endpoints. Admin routes sit behind the auth middleware;
// health and metrics stay open for probes and scrapers.
func NewRouter(h *Handler, auth *AdminAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.HandleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Post("/admin/notifications/run", h.HandleRun)
		r.Get("/admin/notifications/digests/{userID}", h.HandleDigestPreview)
	})

	return r
}
