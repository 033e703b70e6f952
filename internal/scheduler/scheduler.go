package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type settlementReverifier interface {
	ReverifyUnsettled(ctx context.Context, minAge time.Duration) (int, error)
}

// Scheduler periodically retries settlement for bookings whose payment
// session never concluded, e.g. because the gateway was unreachable
// when the client verified. It never expires or cancels a reservation.
type Scheduler struct {
	settlements settlementReverifier
	interval    time.Duration
	minAge      time.Duration
	logger      logger.Logger
}

func New(
	settlements settlementReverifier,
	interval time.Duration,
	minAge time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		settlements: settlements,
		interval:    interval,
		minAge:      minAge,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("settlement scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("min_age", s.minAge),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("settlement scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	settled, err := s.settlements.ReverifyUnsettled(ctx, s.minAge)
	if err != nil {
		s.logger.Error("failed to reverify unsettled bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	if settled > 0 {
		s.logger.Info("unsettled bookings resolved",
			logger.Int("count", settled),
		)
	}
}
