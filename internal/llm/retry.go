package llm

import (
	"context"
	"errors"
	"time"

	"github.com/nrqlkit/nrqltutor/internal/backoff"
)

// Retrying repeats rate limits and outages. An unusable answer is asked for
// once more. Truncated answers and rejected requests are returned at once.
type Retrying struct {
	inner  Provider
	policy backoff.Policy
}

func WithRetry(p Provider, policy backoff.Policy) Provider {
	return &Retrying{inner: p, policy: policy}
}

func (r *Retrying) Name() string  { return r.inner.Name() }
func (r *Retrying) Model() string { return r.inner.Model() }

func (r *Retrying) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	reasked := false
	classify := func(err error) (bool, time.Duration) {
		if errors.Is(err, ErrTruncated) {
			return false, 0
		}
		var out *ErrOutput
		if errors.As(err, &out) {
			if reasked {
				return false, 0
			}
			reasked = true
			return true, 0
		}
		var rl *ErrRateLimit
		if errors.As(err, &rl) {
			return true, rl.RetryAfter
		}
		var down *ErrUnavailable
		return errors.As(err, &down), 0
	}
	return backoff.Retry(ctx, r.policy, classify, func(ctx context.Context) (*Completion, error) {
		return r.inner.Complete(ctx, p)
	})
}
