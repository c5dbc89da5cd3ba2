package workflow

import (
	"context"
	"log"
	"time"

	"github.com/wpc/servicesync/internal/common/clock"
)

const (
	// DefaultSweepInterval is how often the reclaimer runs
	DefaultSweepInterval = time.Hour

	// DefaultMaxSessionAge is how old an ACTIVE session may grow before the
	// reclaimer cancels it
	DefaultMaxSessionAge = 24 * time.Hour
)

// StaleSweeper is the slice of the workflow service the reclaimer drives
type StaleSweeper interface {
	SweepStaleSessions(ctx context.Context, input *SweepStaleSessionsInput) (*SweepStaleSessionsOutput, error)
}

// ReclaimerConfig holds configuration for the stale-session reclaimer
type ReclaimerConfig struct {
	// Sweeper performs the actual sweep
	Sweeper StaleSweeper

	// Clock provides the current time
	Clock clock.Clock

	// Interval is how often to sweep; zero selects the default
	Interval time.Duration

	// MaxAge is the session age threshold; zero selects the default
	MaxAge time.Duration
}

// Reclaimer periodically cancels sessions abandoned mid-workflow
type Reclaimer struct {
	sweeper  StaleSweeper
	clock    clock.Clock
	interval time.Duration
	maxAge   time.Duration
}

// NewReclaimer creates a new stale-session reclaimer
func NewReclaimer(cfg *ReclaimerConfig) (*Reclaimer, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sweeper == nil {
		return nil, ErrNilSweeper
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxSessionAge
	}

	return &Reclaimer{
		sweeper:  cfg.Sweeper,
		clock:    cfg.Clock,
		interval: interval,
		maxAge:   maxAge,
	}, nil
}

// Run sweeps on the configured interval until the context is cancelled
func (r *Reclaimer) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep runs a single stale-session sweep
func (r *Reclaimer) Sweep(ctx context.Context) {
	cutoff := r.clock.Now().Add(-r.maxAge)

	out, err := r.sweeper.SweepStaleSessions(ctx, &SweepStaleSessionsInput{
		Cutoff: cutoff,
	})
	if err != nil {
		log.Printf("Stale session sweep failed: %v", err)
		return
	}

	if out.CancelledCount > 0 {
		log.Printf("Stale session sweep cancelled %d sessions", out.CancelledCount)
	}
}
