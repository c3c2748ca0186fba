package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if TOMBOLA_CONFIG is set
//  3. env (prefix TOMBOLA_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("TOMBOLA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TOMBOLA_ADDR, TOMBOLA_SPIN_DURATION_MS, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("TOMBOLA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "tombola_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.SpinDurationMS < 0:
		return fmt.Errorf("%w: spin_duration_ms must not be negative", ErrInvalidConfig)
	case c.SpinIntervalMS <= 0:
		return fmt.Errorf("%w: spin_interval_ms must be positive", ErrInvalidConfig)
	case c.MaxGroupSize < 1:
		return fmt.Errorf("%w: max_group_size must be at least 1", ErrInvalidConfig)
	case c.MaxHistory < 0:
		return fmt.Errorf("%w: max_history must not be negative", ErrInvalidConfig)
	}
	return nil
}
