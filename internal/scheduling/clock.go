// Package scheduling owns time for background loops so that batch pacing and
// periodic sweeps can be driven deterministically in tests.
package scheduling

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source used by the campaign batcher and schedulers.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until Stop is called.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

var wall = clockwork.NewRealClock()

// RealClock is the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return wall.Now() }

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	return sleep(ctx, wall, d)
}

func (RealClock) NewTicker(d time.Duration) Ticker {
	return ticker{t: wall.NewTicker(d)}
}

func sleep(ctx context.Context, c clockwork.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := c.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type ticker struct {
	t clockwork.Ticker
}

func (t ticker) C() <-chan time.Time { return t.t.Chan() }

func (t ticker) Stop() { t.t.Stop() }
