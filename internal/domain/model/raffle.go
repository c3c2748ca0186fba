// Package model contains domain entities passed between layers.
package model

import "time"

// Prize is an item awarded to a winning ticket, scoped to one category.
// Assigned and AssignedTo are set together, exactly once, by a successful
// draw; a full reset is the only way back.
type Prize struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Assigned   bool   `json:"assigned"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

// Owner maps a person to the ticket numbers they hold. The directory is a
// lookup aid only; ticket numbers may reference tickets that were never
// registered for the draw.
type Owner struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	TicketNumbers []string `json:"ticket_numbers"`
}

// DrawResult records one winning ticket of a single draw. Prize is a
// snapshot taken after assignment, not a live reference into the catalog.
type DrawResult struct {
	ID           string    `json:"id"`
	TicketNumber string    `json:"ticket_number"`
	Prize        Prize     `json:"prize"`
	Category     string    `json:"category"`
	DrawnAt      time.Time `json:"drawn_at"`
}

// HistoryEntry is an immutable record of one completed draw.
type HistoryEntry struct {
	ID        string       `json:"id"`
	Results   []DrawResult `json:"results"`
	Category  string       `json:"category"`
	GroupSize int          `json:"group_size"`
	DrawnAt   time.Time    `json:"drawn_at"`
}

// PrizeSeed is the bulk-import shape for prizes. Rows are assumed to be
// validated and non-empty before they reach the engine.
type PrizeSeed struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// OwnerSeed is the bulk-import shape for owners.
type OwnerSeed struct {
	Name          string   `json:"name"`
	TicketNumbers []string `json:"ticket_numbers"`
}

// Clone returns a deep copy of the entry so stored history cannot be
// mutated through returned slices.
func (e HistoryEntry) Clone() HistoryEntry {
	out := e
	out.Results = make([]DrawResult, len(e.Results))
	copy(out.Results, e.Results)
	return out
}

// Clone returns a copy of the owner with its own ticket slice.
func (o Owner) Clone() Owner {
	out := o
	out.TicketNumbers = make([]string, len(o.TicketNumbers))
	copy(out.TicketNumbers, o.TicketNumbers)
	return out
}
