// Package simulate drives a running tombola service over HTTP: it seeds
// raffle state, executes draws, and verifies the engine's bookkeeping end
// to end.
package simulate

import (
	"time"

	"github.com/okian/tombola/internal/domain/model"
)

// Config holds configuration for one simulation run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumTickets int           // Number of tickets to seed
	NumOwners  int           // Number of owners to seed
	NumDraws   int           // Number of draws to execute
	GroupSize  int           // Winners per draw
	Category   string        // Prize category used for all draws
	Timeout    time.Duration // HTTP request timeout
	Verbose    bool          // Enable verbose logging
}

// drawResponse mirrors the body of POST /draws.
type drawResponse struct {
	Results []model.DrawResult `json:"results"`
}

// countResponse mirrors the count acknowledgements of bulk commands.
type countResponse struct {
	Count int `json:"count"`
}

// Stats holds simulation statistics.
type Stats struct {
	TicketsSeeded  int
	PrizesSeeded   int
	OwnersSeeded   int
	DrawsExecuted  int
	DrawsFailed    int
	WinnersDrawn   int
	TicketsLeft    int
	HistoryEntries int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
