package api

import (
	"context"
	"net/http"

	"github.com/okian/tombola/internal/domain/model"
)

// HistoryDependencies defines the interface for history queries.
type HistoryDependencies interface {
	History(ctx context.Context) []model.HistoryEntry
}

// HistoryHandler handles history requests.
type HistoryHandler struct {
	deps HistoryDependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleHistory handles GET /history requests, most recent draw first.
func (h *HistoryHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.History(r.Context()))
}

// ResetDependencies defines the interface for the global reset.
type ResetDependencies interface {
	ResetAll(ctx context.Context)
}

// ResetHandler handles global reset requests.
type ResetHandler struct {
	deps ResetDependencies
}

// NewResetHandler creates a new reset handler.
func NewResetHandler(deps ResetDependencies) *ResetHandler {
	return &ResetHandler{deps: deps}
}

// HandleReset handles POST /reset requests. This is the only way to clear
// history or restore the default categories.
func (h *ResetHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.ResetAll(r.Context())
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
