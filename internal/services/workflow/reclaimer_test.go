package workflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpc/servicesync/internal/common/clock"
)

// recordingSweeper captures the cutoffs the reclaimer asks for
type recordingSweeper struct {
	mu      sync.Mutex
	cutoffs []time.Time
}

func (r *recordingSweeper) SweepStaleSessions(_ context.Context, input *SweepStaleSessionsInput) (*SweepStaleSessionsOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cutoffs = append(r.cutoffs, input.Cutoff)
	return &SweepStaleSessionsOutput{}, nil
}

func (r *recordingSweeper) calls() []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Time(nil), r.cutoffs...)
}

// fixedClock always reports the same instant
type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time {
	return f.now
}

func TestNewReclaimerValidation(t *testing.T) {
	_, err := NewReclaimer(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = NewReclaimer(&ReclaimerConfig{})
	assert.ErrorIs(t, err, ErrNilSweeper)

	_, err = NewReclaimer(&ReclaimerConfig{Sweeper: &recordingSweeper{}})
	assert.ErrorIs(t, err, ErrNilClock)
}

func TestNewReclaimerDefaults(t *testing.T) {
	r, err := NewReclaimer(&ReclaimerConfig{
		Sweeper: &recordingSweeper{},
		Clock:   &clock.DefaultClock{},
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultSweepInterval, r.interval)
	assert.Equal(t, DefaultMaxSessionAge, r.maxAge)
}

func TestSweepComputesCutoff(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sweeper := &recordingSweeper{}

	r, err := NewReclaimer(&ReclaimerConfig{
		Sweeper: sweeper,
		Clock:   &fixedClock{now: now},
		MaxAge:  24 * time.Hour,
	})
	require.NoError(t, err)

	r.Sweep(context.Background())

	calls := sweeper.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, now.Add(-24*time.Hour), calls[0])
}

func TestRunSweepsUntilCancelled(t *testing.T) {
	sweeper := &recordingSweeper{}

	r, err := NewReclaimer(&ReclaimerConfig{
		Sweeper:  sweeper,
		Clock:    &clock.DefaultClock{},
		Interval: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return len(sweeper.calls()) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
