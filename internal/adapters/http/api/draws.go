package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/tombola/internal/domain/draw"
	"github.com/okian/tombola/internal/domain/model"
)

// DrawDependencies defines the interface for draw operations.
type DrawDependencies interface {
	ExecuteDraw(ctx context.Context, category string, groupSize int, onTick draw.OnTick) []model.DrawResult
	CanDraw(ctx context.Context, category string, groupSize int) bool
	IsDrawing(ctx context.Context) bool
	CurrentResults(ctx context.Context) []model.DrawResult
	ClearCurrentResults(ctx context.Context)
	HasCategory(ctx context.Context, name string) bool
}

// DrawsHandler handles draw requests.
type DrawsHandler struct {
	deps         DrawDependencies
	maxGroupSize int
}

// NewDrawsHandler creates a new draws handler.
func NewDrawsHandler(deps DrawDependencies, maxGroupSize int) *DrawsHandler {
	return &DrawsHandler{deps: deps, maxGroupSize: maxGroupSize}
}

// drawRequest mirrors the draw command parameters.
type drawRequest struct {
	Category  string `json:"category"`
	GroupSize int    `json:"group_size"`
}

func (d drawRequest) validate(maxGroupSize int) error {
	switch {
	case d.Category == "":
		return NewKind("api.draws", ErrBadRequest)
	case d.GroupSize < 1 || d.GroupSize > maxGroupSize:
		return NewKind("api.draws", ErrBadRequest)
	}
	return nil
}

// HandleExecute handles POST /draws requests. The request blocks for the
// cosmetic spin duration; the engine refuses overlapping draws, so a
// concurrent request gets 409 instead of a second spin.
func (h *DrawsHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	const op = "api.draws"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req drawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.maxGroupSize); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if !h.deps.HasCategory(r.Context(), req.Category) {
		writeError(w, http.StatusBadRequest, "unknown_category", NewKind(op, ErrBadRequest))
		return
	}

	results := h.deps.ExecuteDraw(r.Context(), req.Category, req.GroupSize, nil)
	if len(results) == 0 {
		// The engine treats both refusals as silent no-ops; distinguish
		// them here for the client.
		if h.deps.IsDrawing(r.Context()) {
			writeError(w, http.StatusConflict, "draw_in_flight", NewKind(op, ErrDrawInFlight))
			return
		}
		writeError(w, http.StatusUnprocessableEntity, "insufficient", NewKind(op, ErrDrawUnsatisfied))
		return
	}
	writeJSON(w, http.StatusOK, drawResponse{Results: results})
}

// HandleCurrent handles GET and DELETE /draws/current requests.
func (h *DrawsHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, drawResponse{Results: h.deps.CurrentResults(r.Context())})
	case http.MethodDelete:
		h.deps.ClearCurrentResults(r.Context())
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	default:
		http.NotFound(w, r)
	}
}
