// Package remote models the round trip to a backend that does not
// exist yet. Call sites depend on the Operation interface, so a real
// API client or a failure-injecting double can replace the simulated
// one without touching handlers.
package remote

import (
	"context"
	"time"
)

// Operation is a single remote call with a success or failure outcome.
type Operation interface {
	Do(ctx context.Context) error
}

// FixedDelay completes after a fixed simulated latency. Err, when set,
// is returned as the outcome.
type FixedDelay struct {
	Delay time.Duration
	Err   error
}

func (f FixedDelay) Do(ctx context.Context) error {
	if f.Delay > 0 {
		t := time.NewTimer(f.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.Err
}

// Func adapts a function to an Operation, for test doubles.
type Func func(ctx context.Context) error

func (f Func) Do(ctx context.Context) error { return f(ctx) }
