package api

import (
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Shortlist/internal/metrics"
	"github.com/MikeSquared-Agency/Shortlist/internal/rubric"
)

type ComparisonHandler struct {
	svc     *rubric.Service
	metrics *metrics.Manager
}

func NewComparisonHandler(svc *rubric.Service, m *metrics.Manager) *ComparisonHandler {
	return &ComparisonHandler{svc: svc, metrics: m}
}

// Compare returns every candidate ranked by total score with per-category
// breakdowns.
// GET /api/v1/comparison
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cmp, err := h.svc.Compare(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveComparison(time.Since(start))
	}
	writeJSON(w, http.StatusOK, cmp)
}

// RatingScale handles GET /api/v1/rating-scale
func (h *ComparisonHandler) RatingScale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.RatingScale())
}
