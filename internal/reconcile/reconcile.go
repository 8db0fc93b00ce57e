// Package reconcile provides bounded condition polling.
//
// [WaitUntil] repeatedly evaluates a condition against fresh observations
// until it holds or a deadline elapses. It decouples what to wait for from
// how to wait, and takes an injectable clock so tests run deterministically
// without sleeping.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimedOut indicates the condition did not hold within the wait budget.
// Callers typically degrade this to a warning: the durable effects of the
// operation being verified have already happened.
var ErrTimedOut = errors.New("timed out waiting for condition")

// Condition observes current state and reports whether it matches the
// desired predicate. Implementations must query fresh state on every call;
// caching across polls risks acting on stale data. A returned error does
// not stop polling.
type Condition func(ctx context.Context) (bool, error)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
	// After returns a channel that fires once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Config holds polling configuration.
type Config struct {
	Interval time.Duration
	MaxWait  time.Duration
	Clock    Clock
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// WithInterval sets the delay between condition evaluations.
func WithInterval(d time.Duration) Option {
	return func(c *Config) { c.Interval = d }
}

// WithMaxWait sets the total wait budget.
func WithMaxWait(d time.Duration) Option {
	return func(c *Config) { c.MaxWait = d }
}

// WithClock substitutes the clock (useful for testing).
func WithClock(clk Clock) Option {
	return func(c *Config) { c.Clock = clk }
}

// WaitUntil polls cond until it returns true, the wait budget is spent, or
// the context is cancelled. It sleeps Interval between evaluations and
// never busy-spins. Condition errors are remembered but tolerated: the
// next poll observes fresh state. On timeout the last condition error, if
// any, is attached to ErrTimedOut for diagnosis.
func WaitUntil(ctx context.Context, cond Condition, opts ...Option) error {
	cfg := &Config{
		Interval: 15 * time.Second,
		MaxWait:  30 * time.Minute,
		Clock:    realClock{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	deadline := cfg.Clock.Now().Add(cfg.MaxWait)
	var lastErr error

	for {
		ok, err := cond(ctx)
		if ok {
			return nil
		}
		lastErr = err

		if !cfg.Clock.Now().Add(cfg.Interval).Before(deadline) {
			if lastErr != nil {
				return fmt.Errorf("%w (last observation error: %v)", ErrTimedOut, lastErr)
			}
			return ErrTimedOut
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait cancelled: %w", ctx.Err())
		case <-cfg.Clock.After(cfg.Interval):
		}
	}
}
