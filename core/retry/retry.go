package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy describes how an operation is retried.
type Policy struct {
	// MaxAttempts caps the total number of attempts. Zero retries forever.
	MaxAttempts uint

	// InitialBackoff is the wait before the first retry.
	InitialBackoff time.Duration

	// Multiplier grows the wait between retries. Values <= 1 keep it fixed.
	Multiplier float64

	// MaxBackoff caps the wait. Zero means InitialBackoff.
	MaxBackoff time.Duration

	// OnRetry is called after each failed attempt that will be retried,
	// with the 1-based attempt number, its error and the upcoming wait.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// Permanent wraps err so Do returns it without further attempts.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs op until it succeeds, returns a Permanent error, exhausts
// MaxAttempts, or ctx is done.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0
	opts := []backoff.RetryOption{
		backoff.WithBackOff(p.backOff()),
		// Elapsed time is bounded by ctx only
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			attempt++
			if p.OnRetry != nil {
				p.OnRetry(attempt, err, wait)
			}
		}),
	}
	if p.MaxAttempts > 0 {
		opts = append(opts, backoff.WithMaxTries(p.MaxAttempts))
	}

	return backoff.Retry(ctx, func() (T, error) {
		return op(ctx)
	}, opts...)
}

func (p Policy) backOff() backoff.BackOff {
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	maxBackoff := p.MaxBackoff
	if maxBackoff < p.InitialBackoff {
		maxBackoff = p.InitialBackoff
	}
	if multiplier == 1 {
		return backoff.NewConstantBackOff(p.InitialBackoff)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialBackoff
	b.Multiplier = multiplier
	b.MaxInterval = maxBackoff
	b.RandomizationFactor = 0
	return b
}
