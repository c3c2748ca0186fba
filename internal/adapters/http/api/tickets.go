package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TicketDependencies defines the interface for ticket registry operations.
type TicketDependencies interface {
	AddTickets(ctx context.Context, ids []string) int
	AddTicketRange(ctx context.Context, start, end int) (int, error)
	RemoveTickets(ctx context.Context, ids []string) int
	ClearTickets(ctx context.Context)
	Tickets(ctx context.Context) []string
}

// TicketsHandler handles ticket registry requests.
type TicketsHandler struct {
	deps TicketDependencies
}

// NewTicketsHandler creates a new tickets handler.
func NewTicketsHandler(deps TicketDependencies) *TicketsHandler {
	return &TicketsHandler{deps: deps}
}

// ticketsRequest carries ticket identifiers for add and remove commands.
type ticketsRequest struct {
	Numbers []string `json:"numbers"`
}

func (t ticketsRequest) validate() error {
	if len(t.Numbers) == 0 {
		return NewKind("api.tickets", ErrBadRequest)
	}
	for _, n := range t.Numbers {
		if strings.TrimSpace(n) == "" {
			return NewKind("api.tickets", ErrBadRequest)
		}
	}
	return nil
}

// rangeRequest carries the bounds for a consecutive ticket range.
type rangeRequest struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// HandleTickets handles GET, POST and DELETE /tickets requests.
func (h *TicketsHandler) HandleTickets(w http.ResponseWriter, r *http.Request) {
	const op = "api.tickets"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Tickets(r.Context()))
	case http.MethodPost:
		var req ticketsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		added := h.deps.AddTickets(r.Context(), req.Numbers)
		writeJSON(w, http.StatusCreated, countResponse{Count: added})
	case http.MethodDelete:
		h.deps.ClearTickets(r.Context())
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	default:
		http.NotFound(w, r)
	}
}

// HandleAddRange handles POST /tickets/range requests.
func (h *TicketsHandler) HandleAddRange(w http.ResponseWriter, r *http.Request) {
	const op = "api.tickets_range"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req rangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	added, err := h.deps.AddTicketRange(r.Context(), req.Start, req.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_range", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusCreated, countResponse{Count: added})
}

// HandleRemove handles POST /tickets/remove requests.
func (h *TicketsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	const op = "api.tickets_remove"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req ticketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	removed := h.deps.RemoveTickets(r.Context(), req.Numbers)
	writeJSON(w, http.StatusOK, countResponse{Count: removed})
}
