package nerdgraph

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nrqlkit/nrqltutor/internal/backoff"
)

// replay answers queries with a fixed sequence of outcomes. Once the
// sequence runs out every call reports the endpoint unavailable.
type replay struct {
	mu    sync.Mutex
	errs  []error
	res   *Result
	calls int
}

func failing(errs ...error) *replay { return &replay{errs: errs} }

func (r *replay) Query(context.Context, int, string) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.calls <= len(r.errs) {
		if err := r.errs[r.calls-1]; err != nil {
			return nil, err
		}
		if r.res != nil {
			return r.res, nil
		}
		return oneRow(), nil
	}
	return nil, &ErrUnavailable{}
}

func (r *replay) Engine() string { return "replay" }

func fastPolicy() backoff.Policy {
	return backoff.Policy{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 10 * time.Millisecond, Multiplier: 2}
}

func oneRow() *Result {
	return &Result{Series: []Series{{Data: []map[string]any{{"count": 1.0}}}}}
}

func TestRetry(t *testing.T) {
	down := &ErrUnavailable{Err: errors.New("down")}
	tests := []struct {
		name    string
		errs    []error
		calls   int
		wantErr func(error) bool
	}{
		{"first attempt", []error{nil}, 1, nil},
		{"transient then success", []error{down, nil}, 2, nil},
		{"attempts exhausted", []error{down, down, down, nil}, 3, func(err error) bool {
			var u *ErrUnavailable
			return errors.As(err, &u)
		}},
		{"query error is final", []error{&ErrQuery{Messages: []string{"NRQL Syntax Error"}}, nil}, 1, func(err error) bool {
			var q *ErrQuery
			return errors.As(err, &q)
		}},
		{"unauthorized is final", []error{ErrUnauthorized, nil}, 1, func(err error) bool {
			return errors.Is(err, ErrUnauthorized)
		}},
		{"unclassified error is final", []error{errors.New("unexpected status 404"), nil}, 1, func(err error) bool {
			return err != nil && err.Error() == "unexpected status 404"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)
			r := failing(tt.errs...)

			res, err := WithRetry(r, fastPolicy()).Query(context.Background(), 1, "SELECT count(*) FROM Log")

			assert.Equal(t, tt.calls, r.calls)
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1.0, res.First()["count"])
		})
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)
	p := fastPolicy()
	p.InitialWait, p.MaxWait = time.Hour, time.Hour
	q := WithRetry(failing(&ErrUnavailable{}, nil), p)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := q.Query(ctx, 1, "q")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	p := fastPolicy()
	p.InitialWait = time.Hour
	q := WithRetry(failing(&ErrRateLimit{RetryAfter: 5 * time.Millisecond, Err: errors.New("429")}, nil), p)

	start := time.Now()
	_, err := q.Query(context.Background(), 1, "q")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetry_EngineDelegates(t *testing.T) {
	assert.Equal(t, "replay", WithRetry(failing(), fastPolicy()).Engine())
}

func TestRetry_ClientBadRequestNotRepeated(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	})

	_, err := WithRetry(c, fastPolicy()).Query(context.Background(), 1, "SELECT count(*) FROM Log")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 400")
	assert.Equal(t, int32(1), calls.Load())
}
