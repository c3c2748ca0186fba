package simulate

import (
	"context"
	"fmt"

	"github.com/okian/tombola/internal/domain/model"
	"github.com/okian/tombola/pkg/logger"
)

// verifyResults cross-checks the engine's bookkeeping after all draws.
func verifyResults(ctx context.Context, c *client, config *Config, winners []model.DrawResult, stats *Stats) error {
	log := logger.Get()

	var remaining []string
	if _, err := c.getJSON(ctx, "/tickets", &remaining); err != nil {
		return err
	}
	stats.TicketsLeft = len(remaining)

	var history []model.HistoryEntry
	if _, err := c.getJSON(ctx, "/history", &history); err != nil {
		return err
	}
	stats.HistoryEntries = len(history)

	// No ticket wins twice across draws.
	seen := make(map[string]struct{}, len(winners))
	for _, wr := range winners {
		if _, dup := seen[wr.TicketNumber]; dup {
			return fmt.Errorf("ticket %s won more than once", wr.TicketNumber)
		}
		seen[wr.TicketNumber] = struct{}{}
	}

	// Winning tickets left the registry.
	left := make(map[string]struct{}, len(remaining))
	for _, t := range remaining {
		left[t] = struct{}{}
	}
	for _, wr := range winners {
		if _, still := left[wr.TicketNumber]; still {
			return fmt.Errorf("winning ticket %s still registered", wr.TicketNumber)
		}
	}

	// Every result carries its assigned prize.
	for _, wr := range winners {
		if !wr.Prize.Assigned || wr.Prize.AssignedTo != wr.TicketNumber {
			return fmt.Errorf("prize %s not assigned to winning ticket %s", wr.Prize.ID, wr.TicketNumber)
		}
	}

	// One history entry per committed draw, most recent first.
	if len(history) != stats.DrawsExecuted {
		return fmt.Errorf("history has %d entries, expected %d", len(history), stats.DrawsExecuted)
	}
	if len(history) > 0 && len(winners) > 0 {
		latest := history[0]
		lastWinner := winners[len(winners)-1]
		found := false
		for _, res := range latest.Results {
			if res.TicketNumber == lastWinner.TicketNumber {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("latest history entry does not contain the last draw's winners")
		}
	}

	// Ticket arithmetic: seeded minus winners equals remaining.
	if stats.TicketsSeeded-stats.WinnersDrawn != stats.TicketsLeft {
		return fmt.Errorf("ticket count mismatch: seeded %d, winners %d, left %d",
			stats.TicketsSeeded, stats.WinnersDrawn, stats.TicketsLeft)
	}

	log.Info(ctx, "verification passed",
		logger.Int("winners", len(winners)),
		logger.Int("historyEntries", len(history)),
	)
	return nil
}
