package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Shortlist/internal/rubric"
)

type CandidatesHandler struct {
	svc *rubric.Service
}

func NewCandidatesHandler(svc *rubric.Service) *CandidatesHandler {
	return &CandidatesHandler{svc: svc}
}

// List handles GET /api/v1/candidates
func (h *CandidatesHandler) List(w http.ResponseWriter, r *http.Request) {
	cands, err := h.svc.ListCandidates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cands)
}

// Get handles GET /api/v1/candidates/{id}
func (h *CandidatesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCandidate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create handles POST /api/v1/candidates
func (h *CandidatesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in rubric.CandidateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := h.svc.CreateCandidate(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles PUT /api/v1/candidates/{id}
func (h *CandidatesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var in rubric.CandidateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := h.svc.UpdateCandidate(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/v1/candidates/{id}
func (h *CandidatesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteCandidate(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Breakdown returns the scoring breakdown for one candidate.
// GET /api/v1/candidates/{id}/breakdown
func (h *CandidatesHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	b, err := h.svc.Explain(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
