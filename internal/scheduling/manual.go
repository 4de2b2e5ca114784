package scheduling

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// ManualClock is a Clock whose time only moves when Advance or Sleep is called.
// Sleep returns immediately after moving the clock forward and records the
// requested duration. Like time.Ticker, a slow receiver drops ticks.
type ManualClock struct {
	fake   *clockwork.FakeClock
	mu     sync.Mutex
	sleeps []time.Duration
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{fake: clockwork.NewFakeClockAt(start)}
}

func (m *ManualClock) Now() time.Time { return m.fake.Now() }

func (m *ManualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.mu.Unlock()
	m.fake.Advance(d)
	return nil
}

// Sleeps returns the durations passed to Sleep, in call order.
func (m *ManualClock) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

func (m *ManualClock) NewTicker(d time.Duration) Ticker {
	return ticker{t: m.fake.NewTicker(d)}
}

// Advance moves the clock forward and fires every ticker whose deadline passed.
func (m *ManualClock) Advance(d time.Duration) {
	m.fake.Advance(d)
}

// BlockUntilTickers waits until exactly n tickers are running.
func (m *ManualClock) BlockUntilTickers(ctx context.Context, n int) error {
	return m.fake.BlockUntilContext(ctx, n)
}
