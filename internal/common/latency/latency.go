// Package latency models apparent network delay as an injectable
// strategy, keeping the core deterministic and fast under test.
package latency

import (
	"context"
	"time"
)

// Strategy pauses before a mutation is applied. Wait returns the
// context's error if the caller gives up during the pause; no state has
// been touched at that point.
type Strategy interface {
	Wait(ctx context.Context) error
}

// Fixed returns a strategy sleeping for d on every call. A non-positive
// d never sleeps.
func Fixed(d time.Duration) Strategy {
	return fixed{d: d}
}

// None is a no-op strategy for tests.
func None() Strategy {
	return fixed{}
}

type fixed struct {
	d time.Duration
}

func (f fixed) Wait(ctx context.Context) error {
	if f.d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(f.d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
