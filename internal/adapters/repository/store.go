// Package repository defines the draw history store interface and errors.
package repository

import (
	"context"

	"github.com/okian/tombola/internal/domain/model"
)

// Store provides access to the append-only draw history ledger. Entries are
// never mutated or reordered after insertion; iteration is most-recent-first.
type Store interface {
	// Prepend inserts a completed draw at the head of the ledger.
	Prepend(ctx context.Context, entry model.HistoryEntry)

	// All returns the full ledger, most recent first.
	All(ctx context.Context) []model.HistoryEntry

	// Latest returns the most recent entry, or ErrEmptyHistory when the
	// ledger holds none.
	Latest(ctx context.Context) (model.HistoryEntry, error)

	// Len returns the number of recorded draws.
	Len(ctx context.Context) int

	// Clear empties the ledger. Only a full raffle reset calls this.
	Clear(ctx context.Context)
}
