// Package service provides the raffle state controller that implements
// the dependencies required by the HTTP API.
//
// The controller owns every raffle collection behind one mutex: all
// mutating commands are serialized, and multi-collection decisions such as
// category deletion or draw preconditions happen inside a single critical
// section. The draw is the only command spanning a non-trivial duration;
// its cosmetic phase runs outside the lock so read-only queries stay
// responsive, and the drawing flag keeps a second draw from being admitted
// meanwhile.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/tombola/internal/adapters/repository"
	"github.com/okian/tombola/internal/domain/categories"
	"github.com/okian/tombola/internal/domain/draw"
	"github.com/okian/tombola/internal/domain/model"
	"github.com/okian/tombola/internal/domain/owners"
	"github.com/okian/tombola/internal/domain/prizes"
	"github.com/okian/tombola/internal/domain/tickets"
	"github.com/okian/tombola/pkg/logger"
	"github.com/okian/tombola/pkg/metrics"
)

// Service implements the raffle command surface.
type Service struct {
	mu sync.RWMutex

	// Core components
	tickets   *tickets.Registry
	cats      *categories.Set
	catalog   *prizes.Catalog
	directory *owners.Directory
	history   repository.Store
	spinner   *draw.Spinner

	// Draw state
	current []model.DrawResult
	drawing bool

	// Configuration
	spinDuration      time.Duration
	spinInterval      time.Duration
	maxHistory        int
	defaultCategories []string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSpinDuration sets the total cosmetic phase duration. Zero disables
// the phase and makes draws commit immediately.
func WithSpinDuration(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.spinDuration = d
		}
	}
}

// WithSpinInterval sets the cosmetic tick width.
func WithSpinInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.spinInterval = d
		}
	}
}

// WithMaxHistory caps the history ledger length. Zero means unbounded.
func WithMaxHistory(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxHistory = n
		}
	}
}

// WithDefaultCategories sets the category labels restored by a full reset.
func WithDefaultCategories(labels []string) Option {
	return func(s *Service) {
		if len(labels) > 0 {
			s.defaultCategories = labels
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		spinDuration: 3 * time.Second,
		spinInterval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.tickets = tickets.NewRegistry()
	s.cats = categories.NewSet(s.defaultCategories...)
	s.catalog = prizes.NewCatalog()
	s.directory = owners.NewDirectory()
	s.history = repository.NewMemStore(repository.WithMaxSize(s.maxHistory))
	s.spinner = draw.NewSpinner(
		draw.WithDuration(s.spinDuration),
		draw.WithInterval(s.spinInterval),
	)

	s.started = true
	s.logger.Info(ctx, "raffle service started",
		logger.Duration("spinDuration", s.spinDuration),
		logger.Duration("spinInterval", s.spinInterval),
		logger.Any("defaultCategories", s.cats.All()),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "raffle service stopped")
}

// --- tickets ---

// AddTickets registers the given ticket identifiers and returns how many
// were newly added. Duplicates are silently deduplicated.
func (s *Service) AddTickets(ctx context.Context, ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := s.tickets.Add(ids...)
	s.updateGauges()
	return added
}

// AddTicketRange registers consecutive integer tickets from start to end
// inclusive. Returns tickets.ErrInvalidRange when end < start.
func (s *Service) AddTicketRange(ctx context.Context, start, end int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.tickets.AddRange(start, end)
	if err != nil {
		return 0, err
	}
	s.updateGauges()
	return added, nil
}

// RemoveTickets deletes the given identifiers if present.
func (s *Service) RemoveTickets(ctx context.Context, ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.tickets.Remove(ids...)
	s.updateGauges()
	return removed
}

// ClearTickets empties the registry.
func (s *Service) ClearTickets(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets.Clear()
	s.updateGauges()
}

// Tickets returns the registered identifiers in first-appearance order.
func (s *Service) Tickets(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tickets.All()
}

// TicketCount returns the number of registered tickets.
func (s *Service) TicketCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tickets.Len()
}

// --- categories ---

// AddCategory adds a normalized category label. Returns false when the
// label is empty after trimming or already present.
func (s *Service) AddCategory(ctx context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cats.Add(name)
}

// DeleteCategory removes a category label. Returns false, without
// mutation, while any prize still references the category.
func (s *Service) DeleteCategory(ctx context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	label := categories.Normalize(name)
	if s.catalog.AnyInCategory(label) {
		return false
	}
	return s.cats.Delete(label)
}

// HasCategory reports whether the normalized label exists.
func (s *Service) HasCategory(ctx context.Context, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cats.Has(name)
}

// Categories returns the labels in insertion order.
func (s *Service) Categories(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cats.All()
}

// --- prizes ---

// AddPrize creates an unassigned prize in the given category. Category
// existence is validated at the boundary, not re-checked here.
func (s *Service) AddPrize(ctx context.Context, name, category string) model.Prize {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.catalog.Add(name, categories.Normalize(category))
	s.updateGauges()
	return p
}

// AddPrizesBulk creates one prize per seed and returns the count created.
func (s *Service) AddPrizesBulk(ctx context.Context, seeds []model.PrizeSeed) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range seeds {
		seeds[i].Category = categories.Normalize(seeds[i].Category)
	}
	n := s.catalog.AddBulk(seeds)
	s.updateGauges()
	return n
}

// UpdatePrize replaces name and category on the matching prize; silent
// no-op when the id is unknown.
func (s *Service) UpdatePrize(ctx context.Context, id, name, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.Update(id, name, categories.Normalize(category))
}

// DeletePrize removes the prize by id if present.
func (s *Service) DeletePrize(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.Delete(id)
	s.updateGauges()
}

// Prizes returns every prize in insertion order.
func (s *Service) Prizes(ctx context.Context) []model.Prize {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.All()
}

// PrizesInCategory returns the prizes in the category, optionally only the
// unassigned ones.
func (s *Service) PrizesInCategory(ctx context.Context, category string, availableOnly bool) []model.Prize {
	s.mu.RLock()
	defer s.mu.RUnlock()

	label := categories.Normalize(category)
	if availableOnly {
		return s.catalog.AvailableInCategory(label)
	}
	return s.catalog.AllInCategory(label)
}

// --- owners ---

// AddOwner creates an owner with a fresh id and returns it.
func (s *Service) AddOwner(ctx context.Context, name string, ticketNumbers []string) model.Owner {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.directory.Add(name, ticketNumbers)
	s.updateGauges()
	return o
}

// AddOwnersBulk creates one owner per seed and returns the count created.
func (s *Service) AddOwnersBulk(ctx context.Context, seeds []model.OwnerSeed) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.directory.AddBulk(seeds)
	s.updateGauges()
	return n
}

// UpdateOwner fully replaces name and ticket list on the matching owner;
// silent no-op when the id is unknown.
func (s *Service) UpdateOwner(ctx context.Context, id, name string, ticketNumbers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directory.Update(id, name, ticketNumbers)
}

// DeleteOwner removes the owner by id if present.
func (s *Service) DeleteOwner(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory.Delete(id)
	s.updateGauges()
}

// ClearOwners empties the directory.
func (s *Service) ClearOwners(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory.Clear()
	s.updateGauges()
}

// Owners returns every owner in insertion order.
func (s *Service) Owners(ctx context.Context) []model.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directory.All()
}

// FindOwnerByTicket returns the first owner holding the given ticket.
func (s *Service) FindOwnerByTicket(ctx context.Context, ticket string) (model.Owner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directory.FindByTicket(ticket)
}

// OwnerTickets returns the deduplicated union of all owners' tickets.
func (s *Service) OwnerTickets(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.directory.AllTickets()
}

// SeedTicketsFromOwners registers every ticket held by any owner and
// returns how many were newly added.
func (s *Service) SeedTicketsFromOwners(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := s.tickets.Add(s.directory.AllTickets()...)
	s.updateGauges()
	return added
}

// --- draw ---

// ExecuteDraw selects groupSize winning tickets in the given category and
// assigns the category's available prizes pairwise.
//
// The call is a silent no-op, returning an empty result with no state
// change, when a draw is already in flight, groupSize is not positive, or
// tickets or available prizes are insufficient. Callers are expected to
// have disabled the action through the same predicate.
//
// onTick, when non-nil, observes a random display sample of the live pool
// on every cosmetic tick. Cancelling ctx skips the remaining cosmetic time;
// a draw that passed preconditions still commits.
func (s *Service) ExecuteDraw(ctx context.Context, category string, groupSize int, onTick draw.OnTick) []model.DrawResult {
	label := categories.Normalize(category)

	s.mu.Lock()
	if s.drawing {
		s.mu.Unlock()
		metrics.RecordDrawBusy()
		s.logger.Warn(ctx, "draw refused, another draw in flight", logger.String("category", label))
		return nil
	}
	if !s.drawable(label, groupSize) {
		s.mu.Unlock()
		metrics.RecordDrawRejected()
		s.logger.Info(ctx, "draw rejected, insufficient tickets or prizes",
			logger.String("category", label),
			logger.Int("groupSize", groupSize),
		)
		return nil
	}
	s.drawing = true
	s.mu.Unlock()

	start := time.Now()
	s.spinner.Run(ctx, func() []string {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.tickets.All()
	}, groupSize, func(subset []string) {
		metrics.RecordSpinTick()
		if onTick != nil {
			onTick(subset)
		}
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.drawing = false }()

	// State may have shifted during the cosmetic phase; a draw that no
	// longer satisfies its preconditions commits nothing.
	if !s.drawable(label, groupSize) {
		metrics.RecordDrawRejected()
		s.logger.Warn(ctx, "draw invalidated during cosmetic phase", logger.String("category", label))
		return nil
	}

	available := s.catalog.AvailableInCategory(label)
	selected, err := draw.Pick(s.tickets.All(), groupSize)
	if err != nil {
		s.logger.Error(ctx, "winner selection failed", logger.Error(err))
		return nil
	}

	now := time.Now()
	results := make([]model.DrawResult, 0, groupSize)
	for i, ticket := range selected {
		s.tickets.Remove(ticket)
		s.catalog.Assign(available[i].ID, ticket)
		prize, _ := s.catalog.Get(available[i].ID)
		results = append(results, model.DrawResult{
			ID:           uuid.NewString(),
			TicketNumber: ticket,
			Prize:        prize,
			Category:     label,
			DrawnAt:      now,
		})
	}

	s.current = append([]model.DrawResult(nil), results...)
	s.history.Prepend(ctx, model.HistoryEntry{
		ID:        uuid.NewString(),
		Results:   results,
		Category:  label,
		GroupSize: groupSize,
		DrawnAt:   now,
	})

	s.updateGauges()
	metrics.RecordDrawExecuted()
	metrics.RecordWinners(len(results))
	metrics.RecordDrawDuration(float64(time.Since(start).Milliseconds()))
	s.logger.Info(ctx, "draw committed",
		logger.String("category", label),
		logger.Int("winners", len(results)),
		logger.Duration("took", time.Since(start)),
	)
	return results
}

// drawable checks the draw preconditions. Callers hold s.mu.
func (s *Service) drawable(label string, groupSize int) bool {
	if groupSize < 1 {
		return false
	}
	if s.tickets.Len() < groupSize {
		return false
	}
	return len(s.catalog.AvailableInCategory(label)) >= groupSize
}

// CanDraw reports whether a draw with the given parameters would execute
// right now. This is the predicate the presentation layer uses to disable
// the action.
func (s *Service) CanDraw(ctx context.Context, category string, groupSize int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.drawing && s.drawable(categories.Normalize(category), groupSize)
}

// IsDrawing reports whether a draw is currently in flight.
func (s *Service) IsDrawing(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drawing
}

// CurrentResults returns the result snapshot of the last committed draw.
func (s *Service) CurrentResults(ctx context.Context) []model.DrawResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.DrawResult(nil), s.current...)
}

// ClearCurrentResults empties the current-result snapshot only; history is
// untouched.
func (s *Service) ClearCurrentResults(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// --- history ---

// History returns the draw ledger, most recent first.
func (s *Service) History(ctx context.Context) []model.HistoryEntry {
	return s.history.All(ctx)
}

// --- reset ---

// ResetAll clears tickets, prizes, owners, current results, history and
// the drawing flag, and restores the default categories. This is the only
// way to clear history; it is one critical section and cannot be partially
// applied.
func (s *Service) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets.Clear()
	s.catalog.Clear()
	s.directory.Clear()
	s.cats.Reset()
	s.current = nil
	s.drawing = false
	s.history.Clear(ctx)

	s.updateGauges()
	s.logger.Info(ctx, "raffle state reset")
}

// --- observability ---

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
		"drawing": s.drawing,
	}
	if s.started {
		stats["tickets"] = s.tickets.Len()
		stats["categories"] = s.cats.Len()
		stats["prizes"] = s.catalog.Len()
		stats["prizesAvailable"] = s.catalog.AvailableCount()
		stats["owners"] = s.directory.Len()
		stats["historyEntries"] = s.history.Len(ctx)
		stats["currentResults"] = len(s.current)
	}
	return stats
}

// updateGauges refreshes the inventory gauges. Callers hold s.mu.
func (s *Service) updateGauges() {
	metrics.UpdateTicketsAvailable(s.tickets.Len())
	metrics.UpdatePrizesTotal(s.catalog.Len())
	metrics.UpdatePrizesAvailable(s.catalog.AvailableCount())
	metrics.UpdateOwnersTotal(s.directory.Len())
}
