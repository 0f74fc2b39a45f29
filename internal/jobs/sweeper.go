// Package jobs holds the scheduled background work of the back office.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
)

type StaleFinder interface {
	Stale(ctx context.Context, olderThan time.Duration) ([]domain.OnboardingSnapshot, error)
}

type StaleGauge interface {
	StaleSnapshots(n int)
}

// StaleOnboardingSweeper reports onboarding flows that nobody touched for a
// while, one onboarding.stalled event per restaurant.
type StaleOnboardingSweeper struct {
	finder     StaleFinder
	publisher  events.Publisher
	gauge      StaleGauge
	staleAfter time.Duration
	timeout    time.Duration
}

func NewStaleOnboardingSweeper(finder StaleFinder, publisher events.Publisher, gauge StaleGauge, staleAfter time.Duration) *StaleOnboardingSweeper {
	return &StaleOnboardingSweeper{
		finder:     finder,
		publisher:  publisher,
		gauge:      gauge,
		staleAfter: staleAfter,
		timeout:    time.Minute,
	}
}

// Sweep runs one pass and returns how many stale flows it reported.
func (s *StaleOnboardingSweeper) Sweep(ctx context.Context) (int, error) {
	stale, err := s.finder.Stale(ctx, s.staleAfter)
	if err != nil {
		return 0, fmt.Errorf("s.finder.Stale -> %w", err)
	}
	s.gauge.StaleSnapshots(len(stale))

	published := 0
	for _, snapshot := range stale {
		e := events.New(events.EntityOnboarding, events.ActionStalled, snapshot.RestaurantID, map[string]interface{}{
			"current_step":    snapshot.CurrentStep.String(),
			"completed_steps": len(snapshot.CompletedSteps),
			"updated_at":      snapshot.UpdatedAt,
		})
		if err := s.publisher.Publish(ctx, e); err != nil {
			zap.L().Warn("failed to publish stalled onboarding",
				zap.Uint("restaurant_id", snapshot.RestaurantID), zap.Error(err))
			continue
		}
		published++
	}

	return published, nil
}

func (s *StaleOnboardingSweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.Sweep(ctx)
	if err != nil {
		zap.L().Error("stale onboarding sweep failed", zap.Error(err))
		return
	}
	zap.L().Info("stale onboarding sweep done", zap.Int("stalled", n), zap.Duration("stale_after", s.staleAfter))
}

// Schedule registers the sweep on c with a standard 5 field cron expression.
func (s *StaleOnboardingSweeper) Schedule(c *cron.Cron, expr string) (cron.EntryID, error) {
	id, err := c.AddFunc(expr, s.run)
	if err != nil {
		return 0, fmt.Errorf("c.AddFunc -> %w", err)
	}

	return id, nil
}
