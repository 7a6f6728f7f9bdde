package nerdgraph

import (
	"context"
	"errors"
	"time"

	"github.com/nrqlkit/nrqltutor/internal/backoff"
)

// RetryQuerier retries rate limits and outages. Every other failure, such
// as a query error, bad credentials or a 4xx status, fails immediately.
type RetryQuerier struct {
	inner  Querier
	policy backoff.Policy
}

func WithRetry(q Querier, p backoff.Policy) Querier {
	return &RetryQuerier{inner: q, policy: p}
}

func (r *RetryQuerier) Query(ctx context.Context, accountID int, nrql string) (*Result, error) {
	return backoff.Retry(ctx, r.policy, classify, func(ctx context.Context) (*Result, error) {
		return r.inner.Query(ctx, accountID, nrql)
	})
}

func (r *RetryQuerier) Engine() string {
	return r.inner.Engine()
}

// classify retries only rate limits and outages. Anything else, including
// 4xx statuses the client does not map, is returned at once.
func classify(err error) (bool, time.Duration) {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true, rl.RetryAfter
	}
	var down *ErrUnavailable
	return errors.As(err, &down), 0
}
