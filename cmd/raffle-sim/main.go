package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/tombola/internal/simulate"
	"github.com/okian/tombola/pkg/logger"
)

// Default configuration constants.
const (
	defaultTickets = 100
	defaultOwners  = 10
	defaultDraws   = 5
	defaultGroup   = 3
	defaultTimeout = 30 * time.Second
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		tickets  = flag.Int("tickets", defaultTickets, "Number of tickets to seed")
		owners   = flag.Int("owners", defaultOwners, "Number of owners to seed")
		draws    = flag.Int("draws", defaultDraws, "Number of draws to execute")
		group    = flag.Int("group", defaultGroup, "Winners per draw")
		category = flag.String("category", "A", "Prize category used for all draws")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Log every winner")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		simulate.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := &simulate.Config{
		BaseURL:    *baseURL,
		NumTickets: *tickets,
		NumOwners:  *owners,
		NumDraws:   *draws,
		GroupSize:  *group,
		Category:   *category,
		Timeout:    *timeout,
		Verbose:    *verbose,
	}

	ctx := context.Background()
	if err := simulate.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "simulation failed", logger.Error(err))
		os.Exit(1)
	}
}
