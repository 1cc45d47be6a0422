// Package waiter polls a shrinking set of resources until each reaches a
// target state or the attempt budget runs out.
package waiter

import (
	"context"
	"errors"
	"time"

	"github.com/yairfalse/nightshift/telemetry"
	"github.com/yairfalse/nightshift/types"
)

// Defaults give a ceiling of about ten minutes.
const (
	DefaultMaxAttempts = 40
	DefaultInterval    = 15 * time.Second
)

// QueryFunc returns the current state of each id it knows about.
// Ids missing from the result stay pending.
type QueryFunc func(ctx context.Context, ids []string) (map[string]string, error)

// Predicate reports whether a state is the target state.
type Predicate func(state string) bool

// StateIs matches one exact state.
func StateIs(want string) Predicate {
	return func(state string) bool { return state == want }
}

// SleepFunc suspends for d or until ctx ends.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Waiter runs the poll loop. The zero value uses the defaults.
type Waiter struct {
	MaxAttempts int
	Interval    time.Duration
	Sleep       SleepFunc
	Logger      *telemetry.Logger
	Telemetry   *telemetry.Provider
}

// New creates a waiter with the given budget.
func New(maxAttempts int, interval time.Duration, logger *telemetry.Logger, tel *telemetry.Provider) *Waiter {
	return &Waiter{
		MaxAttempts: maxAttempts,
		Interval:    interval,
		Logger:      logger,
		Telemetry:   tel,
	}
}

// Until polls targets with one batched query per tick and drops every id
// whose state satisfies ready. It returns nil as soon as nothing is
// pending and a *types.TimeoutError after MaxAttempts ticks otherwise.
// A failed query aborts the wait with a *types.DiscoveryError.
func (w *Waiter) Until(ctx context.Context, targets *types.IDSet, query QueryFunc, ready Predicate) error {
	pending := types.NewIDSet(targets.Items()...)
	if pending.Len() == 0 {
		return nil
	}

	ctx, span := w.Telemetry.StartSpan(ctx, "nightshift.wait")
	defer span.End()

	maxAttempts := w.maxAttempts()
	logger := w.logger()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		states, err := query(ctx, pending.Items())
		if err != nil {
			span.RecordError(err)
			return asDiscovery(err)
		}

		for id, state := range states {
			if pending.Has(id) && ready(state) {
				pending.Remove(id)
			}
		}

		telemetry.RecordWaitTickEvent(span, attempt, pending.Len())
		logger.WithContext(ctx).Debug().
			Int("attempt", attempt).
			Int("pending", pending.Len()).
			Msg("wait tick")

		if pending.Len() == 0 {
			return nil
		}
		if attempt == maxAttempts {
			break
		}

		if err := w.sleep(ctx); err != nil {
			return err
		}
	}

	err := &types.TimeoutError{Attempts: maxAttempts, Remaining: pending.Items()}
	span.RecordError(err)
	return err
}

func (w *Waiter) sleep(ctx context.Context) error {
	if w.Sleep != nil {
		return w.Sleep(ctx, w.interval())
	}
	return Sleep(ctx, w.interval())
}

func (w *Waiter) maxAttempts() int {
	if w.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return w.MaxAttempts
}

func (w *Waiter) interval() time.Duration {
	if w.Interval <= 0 {
		return DefaultInterval
	}
	return w.Interval
}

func (w *Waiter) logger() *telemetry.Logger {
	if w.Logger == nil {
		return telemetry.NopLogger()
	}
	return w.Logger
}

// Sleep blocks for d without holding anything but a timer, and returns
// early with ctx.Err() when ctx ends.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func asDiscovery(err error) error {
	var discErr *types.DiscoveryError
	if errors.As(err, &discErr) {
		return err
	}
	return &types.DiscoveryError{Op: "query state", Err: err}
}
