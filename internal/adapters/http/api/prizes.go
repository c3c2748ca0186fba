package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/tombola/internal/domain/model"
)

// PrizeDependencies defines the interface for prize catalog operations.
type PrizeDependencies interface {
	AddPrize(ctx context.Context, name, category string) model.Prize
	AddPrizesBulk(ctx context.Context, seeds []model.PrizeSeed) int
	UpdatePrize(ctx context.Context, id, name, category string)
	DeletePrize(ctx context.Context, id string)
	Prizes(ctx context.Context) []model.Prize
	PrizesInCategory(ctx context.Context, category string, availableOnly bool) []model.Prize
	HasCategory(ctx context.Context, name string) bool
}

// PrizesHandler handles prize catalog requests.
type PrizesHandler struct {
	deps PrizeDependencies
}

// NewPrizesHandler creates a new prizes handler.
func NewPrizesHandler(deps PrizeDependencies) *PrizesHandler {
	return &PrizesHandler{deps: deps}
}

// prizeRequest carries prize fields for add and update commands.
type prizeRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (p prizeRequest) validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return NewKind("api.prizes", ErrBadRequest)
	case strings.TrimSpace(p.Category) == "":
		return NewKind("api.prizes", ErrBadRequest)
	}
	return nil
}

// HandlePrizes handles GET and POST /prizes requests. GET accepts
// ?category= and ?available=true filters.
func (h *PrizesHandler) HandlePrizes(w http.ResponseWriter, r *http.Request) {
	const op = "api.prizes"
	switch r.Method {
	case http.MethodGet:
		category := r.URL.Query().Get("category")
		if category == "" {
			writeJSON(w, http.StatusOK, h.deps.Prizes(r.Context()))
			return
		}
		availableOnly := r.URL.Query().Get("available") == "true"
		writeJSON(w, http.StatusOK, h.deps.PrizesInCategory(r.Context(), category, availableOnly))
	case http.MethodPost:
		var req prizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		// The engine stores whatever label it is handed; category
		// existence is this boundary's responsibility.
		if !h.deps.HasCategory(r.Context(), req.Category) {
			writeError(w, http.StatusBadRequest, "unknown_category", NewKind(op, ErrBadRequest))
			return
		}
		writeJSON(w, http.StatusCreated, h.deps.AddPrize(r.Context(), req.Name, req.Category))
	default:
		http.NotFound(w, r)
	}
}

// HandleBulk handles POST /prizes/bulk requests.
func (h *PrizesHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	const op = "api.prizes_bulk"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var seeds []model.PrizeSeed
	if err := json.NewDecoder(r.Body).Decode(&seeds); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	// Filter malformed rows here; the catalog assumes clean input.
	kept := seeds[:0]
	for _, s := range seeds {
		if strings.TrimSpace(s.Name) == "" || !h.deps.HasCategory(r.Context(), s.Category) {
			continue
		}
		kept = append(kept, s)
	}
	created := h.deps.AddPrizesBulk(r.Context(), kept)
	writeJSON(w, http.StatusCreated, countResponse{Count: created})
}

// HandlePrizeByID handles PUT and DELETE /prizes/{id} requests.
func (h *PrizesHandler) HandlePrizeByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.prize"
	id := strings.TrimPrefix(r.URL.Path, "/prizes/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req prizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if !h.deps.HasCategory(r.Context(), req.Category) {
			writeError(w, http.StatusBadRequest, "unknown_category", NewKind(op, ErrBadRequest))
			return
		}
		// Unknown ids are a silent no-op in the engine; the boundary
		// acknowledges either way.
		h.deps.UpdatePrize(r.Context(), id, req.Name, req.Category)
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	case http.MethodDelete:
		h.deps.DeletePrize(r.Context(), id)
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	default:
		http.NotFound(w, r)
	}
}
