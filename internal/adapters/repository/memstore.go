package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/tombola/internal/domain/model"
	"github.com/okian/tombola/pkg/metrics"
)

// MemStore implements Store with an in-memory slice guarded by an RWMutex.
// Stored entries are deep copies, so neither the caller's slices nor the
// returned ones can reach into the ledger.
type MemStore struct {
	mu      sync.RWMutex
	entries []model.HistoryEntry
	maxSize int
}

// NewMemStore creates a new in-memory history store with configuration
// options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepend inserts a completed draw at the head of the ledger.
func (s *MemStore) Prepend(ctx context.Context, entry model.HistoryEntry) {
	start := time.Now()

	s.mu.Lock()
	s.entries = append([]model.HistoryEntry{entry.Clone()}, s.entries...)
	if s.maxSize > 0 && len(s.entries) > s.maxSize {
		s.entries = s.entries[:s.maxSize]
	}
	size := len(s.entries)
	s.mu.Unlock()

	metrics.RecordHistoryPrependLatency(float64(time.Since(start).Milliseconds()))
	metrics.UpdateHistoryEntries(size)
}

// All returns the full ledger, most recent first.
func (s *MemStore) All(ctx context.Context) []model.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.HistoryEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Latest returns the most recent entry, or ErrEmptyHistory when the ledger
// holds none.
func (s *MemStore) Latest(ctx context.Context) (model.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return model.HistoryEntry{}, ErrEmptyHistory
	}
	return s.entries[0].Clone(), nil
}

// Len returns the number of recorded draws.
func (s *MemStore) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear empties the ledger.
func (s *MemStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	metrics.UpdateHistoryEntries(0)
}
