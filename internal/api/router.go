package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/Shortlist/internal/metrics"
	"github.com/MikeSquared-Agency/Shortlist/internal/rubric"
)

func NewRouter(svc *rubric.Service, m *metrics.Manager, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimit))
	if m != nil {
		r.Use(MetricsMiddleware(m))
	}

	categories := NewCategoriesHandler(svc)
	candidates := NewCandidatesHandler(svc)
	comparison := NewComparisonHandler(svc, m)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", categories.List)
		r.Post("/categories", categories.Create)
		r.Post("/categories/reset", categories.Reset)
		r.Put("/categories/{id}", categories.Update)
		r.Delete("/categories/{id}", categories.Delete)

		r.Get("/candidates", candidates.List)
		r.Post("/candidates", candidates.Create)
		r.Get("/candidates/{id}", candidates.Get)
		r.Put("/candidates/{id}", candidates.Update)
		r.Delete("/candidates/{id}", candidates.Delete)
		r.Get("/candidates/{id}/breakdown", candidates.Breakdown)

		r.Get("/comparison", comparison.Compare)
		r.Get("/rating-scale", comparison.RatingScale)
	})

	return r
}

func NewMetricsRouter(m *metrics.Manager) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", m.Handler())
	return r
}
