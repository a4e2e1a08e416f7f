package sweeper

import (
	"context"
	"time"

	"gem-auction/internal/clock"
	"gem-auction/internal/models"
	"gem-auction/utils"
)

// Resolver is the slice of the auction service the sweeper drives.
type Resolver interface {
	ResolveAllExpired(asOf time.Time) ([]models.Resolution, error)
}

// Sweeper periodically finalizes auctions whose countdown has elapsed. It is
// one of two resolution triggers; the other is the on-demand check invoked
// when a client observes the countdown reach zero. Both paths are idempotent
// per listing, so overlap is harmless.
type Sweeper struct {
	resolver Resolver
	clk      clock.Clock
	interval time.Duration
}

// New creates a Sweeper running every interval.
func New(resolver Resolver, clk clock.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{
		resolver: resolver,
		clk:      clk,
		interval: interval,
	}
}

// Run sweeps until ctx is cancelled. A failed sweep is logged and retried on
// the next tick; sweeps never block bid submissions, which acquire only
// their own listing's lock.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	resolutions, err := s.resolver.ResolveAllExpired(s.clk.Now())
	if err != nil {
		utils.Error("expiry sweep failed", map[string]any{"error": err.Error()})
		return
	}
	if len(resolutions) > 0 {
		utils.Info("expiry sweep finalized auctions", map[string]any{"count": len(resolutions)})
	}
}
