package runner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingClampsAtZero(t *testing.T) {
	budget := 16 * time.Millisecond

	assert.Equal(t, 11*time.Millisecond, Remaining(budget, 5*time.Millisecond))
	assert.Equal(t, time.Duration(0), Remaining(budget, budget))
	assert.Equal(t, time.Duration(0), Remaining(budget, 40*time.Millisecond))
}

// fakeClock advances only when a step tells it to.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) bool {
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	c.mu.Unlock()
	return ctx.Err() == nil
}

func TestRunSleepsRemainderOfBudget(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	costs := []time.Duration{5 * time.Millisecond, 30 * time.Millisecond, 0}
	i := 0

	r := New(func() error {
		clock.Advance(costs[i%len(costs)])
		i++
		return nil
	}, WithTickRate(50), WithMaxTicks(4), WithClock(clock.Now, clock.Sleep))

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 20*time.Millisecond, r.Interval())
	assert.Equal(t, []time.Duration{15 * time.Millisecond, 0, 20 * time.Millisecond}, clock.sleeps)
	assert.Equal(t, Stats{Ticks: 4}, r.Stats())
}

func TestRunRecoversPanics(t *testing.T) {
	var errs []error
	n := 0

	r := New(func() error {
		n++
		if n == 2 {
			panic("boom")
		}
		return nil
	}, WithMaxTicks(5), Unthrottled(), WithErrorHandler(func(err error) {
		errs = append(errs, err)
	}))

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 5, n, "loop continues after a failed tick")
	assert.Equal(t, Stats{Ticks: 5, Failures: 1}, r.Stats())
	require.Len(t, errs, 1)

	var te *TickError
	require.True(t, errors.As(errs[0], &te))
	assert.Equal(t, uint64(2), te.Tick)
	assert.Equal(t, "boom", te.Value)
	assert.NotEmpty(t, te.Stack)
	assert.Contains(t, te.Error(), "tick 2 panicked")
}

func TestRunCountsStepErrors(t *testing.T) {
	sentinel := errors.New("bad state")
	var got error

	r := New(func() error { return sentinel }, WithMaxTicks(3), Unthrottled(),
		WithErrorHandler(func(err error) { got = err }))

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, uint64(3), r.Stats().Failures)
	assert.ErrorIs(t, got, sentinel)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := New(func() error { return nil }, Unthrottled())
	var ticks uint64
	r.step = func() error {
		ticks++
		if ticks == 3 {
			cancel()
		}
		return nil
	}

	require.NoError(t, r.Run(ctx))
	assert.Equal(t, uint64(3), r.Stats().Ticks)
}

func TestRunRealClockCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := New(func() error { return nil }, WithTickRate(100))
	start := time.Now()
	require.NoError(t, r.Run(ctx))

	assert.Less(t, time.Since(start), time.Second)
	assert.Positive(t, r.Stats().Ticks)
}

func TestWithTickRateDefaults(t *testing.T) {
	r := New(nil, WithTickRate(0))
	assert.Equal(t, time.Second/DefaultTickRate, r.Interval())
}
