package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/clubpulse/service-membership/internal/application"
)

// ExpirySweeper runs the expiry sweep on a fixed interval so memberships do
// not stay active past their subscription end for longer than one period.
type ExpirySweeper struct {
	lifecycle *application.MembershipService
	interval  time.Duration
	logger    *zap.Logger
}

// NewExpirySweeper creates an ExpirySweeper.
func NewExpirySweeper(lifecycle *application.MembershipService, interval time.Duration, logger *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		lifecycle: lifecycle,
		interval:  interval,
		logger:    logger,
	}
}

// Run sweeps on every tick until the context is cancelled. Sweep failures
// are logged and the loop keeps going; the next tick retries naturally.
func (s *ExpirySweeper) Run(ctx context.Context) {
	s.logger.Info("expiry sweeper started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			if err := s.lifecycle.DeactivateExpired(ctx); err != nil {
				s.logger.Error("expiry sweep finished with failures", zap.Error(err))
			}
		}
	}
}
