package draw

import "time"

// SpinnerOption applies a configuration option to the Spinner.
type SpinnerOption func(*Spinner)

// WithDuration sets the total cosmetic phase duration. Zero disables the
// phase; negative values are ignored.
func WithDuration(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d >= 0 {
			s.duration = d
		}
	}
}

// WithInterval sets the tick width.
func WithInterval(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}
