package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Shortlist/internal/rubric"
)

type CategoriesHandler struct {
	svc *rubric.Service
}

func NewCategoriesHandler(svc *rubric.Service) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List handles GET /api/v1/categories
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// Create handles POST /api/v1/categories
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in rubric.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	cat, err := h.svc.CreateCategory(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

// Update handles PUT /api/v1/categories/{id}
func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var in rubric.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	cat, err := h.svc.UpdateCategory(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// Delete handles DELETE /api/v1/categories/{id}
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Reset handles POST /api/v1/categories/reset
func (h *CategoriesHandler) Reset(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ResetCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}
