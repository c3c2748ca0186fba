// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - All loading functions accept context.Context as the first parameter.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SpinDurationMS is the total cosmetic spin phase length per draw.
	// Zero disables the phase.
	SpinDurationMS int `koanf:"spin_duration_ms"`

	// SpinIntervalMS is the width of one cosmetic tick.
	SpinIntervalMS int `koanf:"spin_interval_ms"`

	// MaxGroupSize caps the winner count accepted per draw request at the
	// HTTP boundary. The engine itself accepts any positive integer.
	MaxGroupSize int `koanf:"max_group_size"`

	// DefaultCategories are the labels seeded at start and restored by a
	// full reset.
	DefaultCategories []string `koanf:"default_categories"`

	// MaxHistory caps the history ledger length. Zero means unbounded.
	MaxHistory int `koanf:"max_history"`
}

// New creates a Config populated with defaults. The context parameter
// keeps the project-wide convention and is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		SpinDurationMS:    3000,
		SpinIntervalMS:    100,
		MaxGroupSize:      5,
		DefaultCategories: []string{"A", "B", "C"},
		MaxHistory:        0,
	}
}
