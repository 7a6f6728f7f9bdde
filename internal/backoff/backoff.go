// Package backoff retries calls that fail transiently, waiting exponentially
// longer between attempts.
package backoff

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Policy bounds the attempts and the wait between them.
type Policy struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// Classifier decides whether a failed attempt is worth repeating. A positive
// wait replaces the computed delay, e.g. for a server supplied Retry-After.
type Classifier func(err error) (retry bool, wait time.Duration)

// Delay is the wait before attempt+1, with ±20% jitter.
func (p Policy) Delay(attempt int) time.Duration {
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	wait := float64(p.InitialWait) * math.Pow(mult, float64(attempt))
	if p.MaxWait > 0 && wait > float64(p.MaxWait) {
		wait = float64(p.MaxWait)
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(wait, 0))
}

// Retry calls fn until it succeeds, classify rejects the error, the attempts
// run out or ctx is done. Context errors are never retried. The last error
// is returned as is.
func Retry[T any](ctx context.Context, p Policy, classify Classifier, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(p.MaxAttempts, 1)

	var lastErr error
	for attempt := range attempts {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return zero, err
		}
		retry, wait := classify(err)
		if !retry || attempt == attempts-1 {
			break
		}
		if wait <= 0 {
			wait = p.Delay(attempt)
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return zero, ctx.Err()
		case <-t.C:
		}
	}
	return zero, lastErr
}
