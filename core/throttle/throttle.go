// Package throttle spaces outbound calls to a rate-limited remote service.
package throttle

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Throttle enforces a minimum interval between calls. Time spent idle since
// the previous call counts toward the interval.
//
// It is a token bucket of size one whose initial token is drained, so the
// very first Wait also blocks for a full interval.
type Throttle struct {
	limiter *rate.Limiter
}

// New creates a throttle. A non-positive interval never waits.
func New(interval time.Duration) *Throttle {
	if interval <= 0 {
		return &Throttle{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	limiter.Allow()
	return &Throttle{limiter: limiter}
}

// Wait blocks until the next call is allowed or ctx is done. A wait that
// cannot finish before the ctx deadline fails at once with
// context.DeadlineExceeded.
func (t *Throttle) Wait(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("throttle wait: %w", ctxErr)
		}
		if _, ok := ctx.Deadline(); ok {
			return fmt.Errorf("throttle wait: %w", context.DeadlineExceeded)
		}
		return fmt.Errorf("throttle wait: %w", err)
	}
	return nil
}
