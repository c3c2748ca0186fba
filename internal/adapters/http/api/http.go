// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/tombola/internal/domain/draw"
	"github.com/okian/tombola/internal/domain/model"
)

// Dependencies bundles the raffle command surface required by the HTTP
// handlers. Using an interface bundle keeps the handler layer loosely
// coupled to the service implementation.
type Dependencies interface {
	TicketDependencies
	CategoryDependencies
	PrizeDependencies
	OwnerDependencies
	DrawDependencies
	HistoryDependencies
	ResetDependencies
}

// DrawCallback re-exports the engine's cosmetic tick callback type.
type DrawCallback = draw.OnTick

// Server wires HTTP routes for the raffle API.
type Server struct {
	ticketsHandler    *TicketsHandler
	categoriesHandler *CategoriesHandler
	prizesHandler     *PrizesHandler
	ownersHandler     *OwnersHandler
	drawsHandler      *DrawsHandler
	historyHandler    *HistoryHandler
	resetHandler      *ResetHandler
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxGroupSize int) *Server {
	return &Server{
		ticketsHandler:    NewTicketsHandler(deps),
		categoriesHandler: NewCategoriesHandler(deps),
		prizesHandler:     NewPrizesHandler(deps),
		ownersHandler:     NewOwnersHandler(deps),
		drawsHandler:      NewDrawsHandler(deps, maxGroupSize),
		historyHandler:    NewHistoryHandler(deps),
		resetHandler:      NewResetHandler(deps),
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/tickets", MetricsMiddleware(s.ticketsHandler.HandleTickets, "tickets"))
	mux.HandleFunc("/tickets/range", MetricsMiddleware(s.ticketsHandler.HandleAddRange, "tickets_range"))
	mux.HandleFunc("/tickets/remove", MetricsMiddleware(s.ticketsHandler.HandleRemove, "tickets_remove"))

	mux.HandleFunc("/categories", MetricsMiddleware(s.categoriesHandler.HandleCategories, "categories"))
	mux.HandleFunc("/categories/", MetricsMiddleware(s.categoriesHandler.HandleCategoryByLabel, "category"))

	mux.HandleFunc("/prizes", MetricsMiddleware(s.prizesHandler.HandlePrizes, "prizes"))
	mux.HandleFunc("/prizes/bulk", MetricsMiddleware(s.prizesHandler.HandleBulk, "prizes_bulk"))
	mux.HandleFunc("/prizes/", MetricsMiddleware(s.prizesHandler.HandlePrizeByID, "prize"))

	mux.HandleFunc("/owners", MetricsMiddleware(s.ownersHandler.HandleOwners, "owners"))
	mux.HandleFunc("/owners/bulk", MetricsMiddleware(s.ownersHandler.HandleBulk, "owners_bulk"))
	mux.HandleFunc("/owners/template", MetricsMiddleware(s.ownersHandler.HandleTemplate, "owners_template"))
	mux.HandleFunc("/owners/by-ticket/", MetricsMiddleware(s.ownersHandler.HandleByTicket, "owners_by_ticket"))
	mux.HandleFunc("/owners/seed-tickets", MetricsMiddleware(s.ownersHandler.HandleSeedTickets, "owners_seed_tickets"))
	mux.HandleFunc("/owners/", MetricsMiddleware(s.ownersHandler.HandleOwnerByID, "owner"))

	mux.HandleFunc("/draws", MetricsMiddleware(s.drawsHandler.HandleExecute, "draws"))
	mux.HandleFunc("/draws/current", MetricsMiddleware(s.drawsHandler.HandleCurrent, "draws_current"))

	mux.HandleFunc("/history", MetricsMiddleware(s.historyHandler.HandleHistory, "history"))
	mux.HandleFunc("/reset", MetricsMiddleware(s.resetHandler.HandleReset, "reset"))
}

// countResponse acknowledges bulk-style commands.
type countResponse struct {
	Count int `json:"count"`
}

// okResponse acknowledges boolean-style commands.
type okResponse struct {
	OK bool `json:"ok"`
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// drawResponse carries the results of one committed draw.
type drawResponse struct {
	Results []model.DrawResult `json:"results"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
