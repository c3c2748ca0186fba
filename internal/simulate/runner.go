package simulate

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/tombola/internal/domain/model"
	"github.com/okian/tombola/pkg/logger"
)

// Run executes the complete simulation: reset, seed, draw, verify.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting tombola simulation",
		logger.String("baseURL", config.BaseURL),
		logger.Int("tickets", config.NumTickets),
		logger.Int("owners", config.NumOwners),
		logger.Int("draws", config.NumDraws),
		logger.Int("groupSize", config.GroupSize),
		logger.String("category", config.Category),
	)

	c := newClient(config.BaseURL, config.Timeout)

	if err := checkServiceHealth(ctx, c); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	if _, err := c.postJSON(ctx, "/reset", nil, nil); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	if err := seedState(ctx, c, config, stats); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	winners, err := runDraws(ctx, c, config, stats)
	if err != nil {
		return fmt.Errorf("draw execution failed: %w", err)
	}

	if err := verifyResults(ctx, c, config, winners, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
	return nil
}

// checkServiceHealth probes /stats before doing anything destructive.
func checkServiceHealth(ctx context.Context, c *client) error {
	var stats map[string]any
	if _, err := c.getJSON(ctx, "/stats", &stats); err != nil {
		return err
	}
	if started, ok := stats["started"].(bool); !ok || !started {
		return fmt.Errorf("service reports not started")
	}
	return nil
}

// seedState populates tickets, the draw category, prizes and owners.
func seedState(ctx context.Context, c *client, config *Config, stats *Stats) error {
	var seeded countResponse
	if _, err := c.postJSON(ctx, "/tickets/range", map[string]int{"start": 1, "end": config.NumTickets}, &seeded); err != nil {
		return err
	}
	stats.TicketsSeeded = seeded.Count

	// The category may already exist (409 on duplicates is fine).
	if code, err := c.postJSON(ctx, "/categories", map[string]string{"name": config.Category}, nil); err != nil && code != http.StatusConflict {
		return err
	}

	prizes := make([]model.PrizeSeed, 0, config.NumDraws*config.GroupSize)
	for i := range config.NumDraws * config.GroupSize {
		prizes = append(prizes, model.PrizeSeed{
			Name:     fmt.Sprintf("prize-%03d", i+1),
			Category: config.Category,
		})
	}
	var created countResponse
	if _, err := c.postJSON(ctx, "/prizes/bulk", prizes, &created); err != nil {
		return err
	}
	stats.PrizesSeeded = created.Count

	if config.NumOwners > 0 {
		ownerSeeds := make([]model.OwnerSeed, 0, config.NumOwners)
		for i := range config.NumOwners {
			// Spread the seeded ticket numbers over the owners round-robin.
			var nums []string
			for t := i + 1; t <= config.NumTickets; t += config.NumOwners {
				nums = append(nums, fmt.Sprintf("%d", t))
			}
			ownerSeeds = append(ownerSeeds, model.OwnerSeed{
				Name:          fmt.Sprintf("owner-%03d", i+1),
				TicketNumbers: nums,
			})
		}
		var owners countResponse
		if _, err := c.postJSON(ctx, "/owners/bulk", ownerSeeds, &owners); err != nil {
			return err
		}
		stats.OwnersSeeded = owners.Count
	}
	return nil
}

// runDraws executes the configured number of draws and collects every
// winning ticket.
func runDraws(ctx context.Context, c *client, config *Config, stats *Stats) ([]model.DrawResult, error) {
	log := logger.Get()
	var winners []model.DrawResult

	for i := range config.NumDraws {
		var resp drawResponse
		body := map[string]any{"category": config.Category, "group_size": config.GroupSize}
		if _, err := c.postJSON(ctx, "/draws", body, &resp); err != nil {
			stats.DrawsFailed++
			log.Warn(ctx, "draw failed", logger.Int("draw", i+1), logger.Error(err))
			continue
		}
		stats.DrawsExecuted++
		stats.WinnersDrawn += len(resp.Results)
		winners = append(winners, resp.Results...)
		if config.Verbose {
			for _, res := range resp.Results {
				log.Info(ctx, "winner",
					logger.Int("draw", i+1),
					logger.String("ticket", res.TicketNumber),
					logger.String("prize", res.Prize.Name),
				)
			}
		}
	}
	return winners, nil
}

// displayFinalStats summarizes the run.
func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "simulation finished",
		logger.Int("ticketsSeeded", stats.TicketsSeeded),
		logger.Int("prizesSeeded", stats.PrizesSeeded),
		logger.Int("ownersSeeded", stats.OwnersSeeded),
		logger.Int("drawsExecuted", stats.DrawsExecuted),
		logger.Int("drawsFailed", stats.DrawsFailed),
		logger.Int("winnersDrawn", stats.WinnersDrawn),
		logger.Int("ticketsLeft", stats.TicketsLeft),
		logger.Int("historyEntries", stats.HistoryEntries),
		logger.Duration("took", stats.Duration),
	)
}
