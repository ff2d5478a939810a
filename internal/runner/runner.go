// Package runner drives a simulation at a fixed tick rate.
//
// The loop is best effort: each tick it measures how long the step took
// and sleeps for whatever is left of the tick budget, never a negative
// duration. It does not catch up on missed ticks. A step that panics or
// returns an error is logged and the loop carries on with the next tick.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTickRate is the simulation rate in ticks per second.
const DefaultTickRate = 60

// TickError is a panic recovered from a step.
type TickError struct {
	Tick  uint64
	Value any
	Stack []byte
}

func (e *TickError) Error() string {
	return fmt.Sprintf("runner: tick %d panicked: %v", e.Tick, e.Value)
}

// Stats counts what the loop has done so far.
type Stats struct {
	Ticks    uint64
	Failures uint64
}

// Option configures a Runner.
type Option func(*Runner)

// WithTickRate sets ticks per second. Non-positive rates fall back to the default.
func WithTickRate(rate int) Option {
	return func(r *Runner) {
		if rate <= 0 {
			rate = DefaultTickRate
		}
		r.interval = time.Second / time.Duration(rate)
	}
}

// WithLogger sets the logger used for tick failures.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithErrorHandler registers a callback for every failed tick.
func WithErrorHandler(fn func(error)) Option {
	return func(r *Runner) {
		r.onError = fn
	}
}

// WithMaxTicks stops the loop after n ticks. Zero means no limit.
func WithMaxTicks(n uint64) Option {
	return func(r *Runner) {
		r.maxTicks = n
	}
}

// Unthrottled disables sleeping between ticks, for headless runs.
func Unthrottled() Option {
	return func(r *Runner) {
		r.sleep = func(ctx context.Context, _ time.Duration) bool {
			return ctx.Err() == nil
		}
	}
}

// WithClock replaces the wall clock and the sleeper, for tests.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) bool) Option {
	return func(r *Runner) {
		r.now = now
		r.sleep = sleep
	}
}

// Runner calls a step function once per tick.
type Runner struct {
	step     func() error
	interval time.Duration
	maxTicks uint64
	logger   *log.Logger
	onError  func(error)
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) bool

	ticks    atomic.Uint64
	failures atomic.Uint64
}

// New creates a runner for step.
func New(step func() error, opts ...Option) *Runner {
	r := &Runner{
		step:     step,
		interval: time.Second / DefaultTickRate,
		logger:   log.New(io.Discard),
		now:      time.Now,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Interval returns the tick budget.
func (r *Runner) Interval() time.Duration {
	return r.interval
}

// Run blocks until ctx is cancelled or the tick limit is reached.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("runner started", "interval", r.interval)
	for {
		if err := ctx.Err(); err != nil {
			r.logger.Debug("runner stopped", "ticks", r.ticks.Load(), "failures", r.failures.Load())
			return nil
		}

		start := r.now()
		if err := r.tick(); err != nil {
			r.failures.Add(1)
			var te *TickError
			if errors.As(err, &te) {
				r.logger.Error("tick panicked", "tick", te.Tick, "value", te.Value, "stack", string(te.Stack))
			} else {
				r.logger.Error("tick failed", "err", err)
			}
			if r.onError != nil {
				r.onError(err)
			}
		}

		if r.maxTicks > 0 && r.ticks.Load() >= r.maxTicks {
			return nil
		}

		if !r.sleep(ctx, Remaining(r.interval, r.now().Sub(start))) {
			return nil
		}
	}
}

// tick runs one step, converting a panic into a TickError.
func (r *Runner) tick() (err error) {
	n := r.ticks.Add(1)
	defer func() {
		if v := recover(); v != nil {
			err = &TickError{Tick: n, Value: v, Stack: debug.Stack()}
		}
	}()
	if stepErr := r.step(); stepErr != nil {
		return fmt.Errorf("runner: tick %d: %w", n, stepErr)
	}
	return nil
}

// Stats returns the tick and failure counters. Safe for concurrent use.
func (r *Runner) Stats() Stats {
	return Stats{Ticks: r.ticks.Load(), Failures: r.failures.Load()}
}

// Remaining is the part of the budget not used by elapsed, clamped at zero.
func Remaining(budget, elapsed time.Duration) time.Duration {
	if d := budget - elapsed; d > 0 {
		return d
	}
	return 0
}

// sleepContext waits for d or until ctx is done, and reports whether the
// loop should continue.
func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
