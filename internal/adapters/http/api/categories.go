package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// CategoryDependencies defines the interface for category set operations.
type CategoryDependencies interface {
	AddCategory(ctx context.Context, name string) bool
	DeleteCategory(ctx context.Context, name string) bool
	HasCategory(ctx context.Context, name string) bool
	Categories(ctx context.Context) []string
}

// CategoriesHandler handles category set requests.
type CategoriesHandler struct {
	deps CategoryDependencies
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(deps CategoryDependencies) *CategoriesHandler {
	return &CategoriesHandler{deps: deps}
}

// categoryRequest carries the label for a category add.
type categoryRequest struct {
	Name string `json:"name"`
}

// HandleCategories handles GET and POST /categories requests.
func (h *CategoriesHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	const op = "api.categories"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Categories(r.Context()))
	case http.MethodPost:
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if !h.deps.AddCategory(r.Context(), req.Name) {
			// Empty after trim, or already present. Either way: no mutation.
			writeError(w, http.StatusConflict, "category_rejected", NewKind(op, ErrBadRequest))
			return
		}
		writeJSON(w, http.StatusCreated, okResponse{OK: true})
	default:
		http.NotFound(w, r)
	}
}

// HandleCategoryByLabel handles DELETE /categories/{label} requests.
func (h *CategoriesHandler) HandleCategoryByLabel(w http.ResponseWriter, r *http.Request) {
	const op = "api.category_delete"
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	label := strings.TrimPrefix(r.URL.Path, "/categories/")
	if label == "" || strings.Contains(label, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if !h.deps.DeleteCategory(r.Context(), label) {
		// Absent, or still referenced by at least one prize.
		writeError(w, http.StatusConflict, "category_in_use", NewKind(op, ErrBadRequest))
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
