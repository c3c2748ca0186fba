package api

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/tombola/internal/domain/model"
)

// OwnerDependencies defines the interface for owner directory operations.
type OwnerDependencies interface {
	AddOwner(ctx context.Context, name string, ticketNumbers []string) model.Owner
	AddOwnersBulk(ctx context.Context, seeds []model.OwnerSeed) int
	UpdateOwner(ctx context.Context, id, name string, ticketNumbers []string)
	DeleteOwner(ctx context.Context, id string)
	ClearOwners(ctx context.Context)
	Owners(ctx context.Context) []model.Owner
	FindOwnerByTicket(ctx context.Context, ticket string) (model.Owner, bool)
	SeedTicketsFromOwners(ctx context.Context) int
}

// OwnersHandler handles owner directory requests.
type OwnersHandler struct {
	deps OwnerDependencies
}

// NewOwnersHandler creates a new owners handler.
func NewOwnersHandler(deps OwnerDependencies) *OwnersHandler {
	return &OwnersHandler{deps: deps}
}

// ownerRequest carries owner fields for add and update commands.
type ownerRequest struct {
	Name          string   `json:"name"`
	TicketNumbers []string `json:"ticket_numbers"`
}

func (o ownerRequest) validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return NewKind("api.owners", ErrBadRequest)
	}
	return nil
}

// HandleOwners handles GET, POST and DELETE /owners requests.
func (h *OwnersHandler) HandleOwners(w http.ResponseWriter, r *http.Request) {
	const op = "api.owners"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Owners(r.Context()))
	case http.MethodPost:
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeJSON(w, http.StatusCreated, h.deps.AddOwner(r.Context(), req.Name, req.TicketNumbers))
	case http.MethodDelete:
		h.deps.ClearOwners(r.Context())
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	default:
		http.NotFound(w, r)
	}
}

// HandleBulk handles POST /owners/bulk requests. Rows arrive already
// decoded; malformed ones are filtered here before reaching the engine.
func (h *OwnersHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	const op = "api.owners_bulk"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var seeds []model.OwnerSeed
	if err := json.NewDecoder(r.Body).Decode(&seeds); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	kept := seeds[:0]
	for _, s := range seeds {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		kept = append(kept, s)
	}
	created := h.deps.AddOwnersBulk(r.Context(), kept)
	writeJSON(w, http.StatusCreated, countResponse{Count: created})
}

// HandleTemplate handles GET /owners/template requests. It renders the
// directory as the two-column import/export table: a `name,tickets` header
// with the ticket list comma-joined inside one quoted field. An empty
// directory yields a single sample row to fill in.
func (h *OwnersHandler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="owners.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"name", "tickets"})
	all := h.deps.Owners(r.Context())
	if len(all) == 0 {
		_ = cw.Write([]string{"John Doe", "1,2,3"})
	}
	for _, o := range all {
		_ = cw.Write([]string{o.Name, strings.Join(o.TicketNumbers, ",")})
	}
	cw.Flush()
}

// HandleByTicket handles GET /owners/by-ticket/{ticket} requests.
func (h *OwnersHandler) HandleByTicket(w http.ResponseWriter, r *http.Request) {
	const op = "api.owners_by_ticket"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ticket := strings.TrimPrefix(r.URL.Path, "/owners/by-ticket/")
	if ticket == "" || strings.Contains(ticket, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	owner, ok := h.deps.FindOwnerByTicket(r.Context(), ticket)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

// HandleSeedTickets handles POST /owners/seed-tickets requests: it
// registers every ticket held by any owner.
func (h *OwnersHandler) HandleSeedTickets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	added := h.deps.SeedTicketsFromOwners(r.Context())
	writeJSON(w, http.StatusCreated, countResponse{Count: added})
}

// HandleOwnerByID handles PUT and DELETE /owners/{id} requests.
func (h *OwnersHandler) HandleOwnerByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.owner"
	id := strings.TrimPrefix(r.URL.Path, "/owners/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		h.deps.UpdateOwner(r.Context(), id, req.Name, req.TicketNumbers)
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	case http.MethodDelete:
		h.deps.DeleteOwner(r.Context(), id)
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	default:
		http.NotFound(w, r)
	}
}
