package draw

import (
	"context"
	"time"
)

// Default spin configuration constants.
const (
	defaultSpinDuration = 3 * time.Second
	defaultSpinInterval = 100 * time.Millisecond
)

// OnTick receives a display-only ticket subset on every cosmetic tick.
// The callback's return value, if any, is never consumed.
type OnTick func(ticketSubset []string)

// Spinner runs the cosmetic phase of a draw: a fixed duration divided into
// fixed-width ticks, each surfacing a random sample of the live pool. The
// phase never touches persisted state and is skipped entirely when the
// duration is zero.
type Spinner struct {
	duration time.Duration
	interval time.Duration
}

// NewSpinner creates a spinner with configuration options.
func NewSpinner(opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		duration: defaultSpinDuration,
		interval: defaultSpinInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run fires onTick with a fresh sample of poolFn's result every tick until
// the configured duration elapses. Cancelling ctx ends the cosmetic phase
// early; the caller commits its outcome either way.
func (s *Spinner) Run(ctx context.Context, poolFn func() []string, size int, onTick OnTick) {
	if s.duration <= 0 || onTick == nil {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	deadline := time.NewTimer(s.duration)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-ticker.C:
			onTick(Sample(poolFn(), size))
		}
	}
}
