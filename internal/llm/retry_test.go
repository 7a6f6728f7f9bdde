package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nrqlkit/nrqltutor/internal/backoff"
)

func fastPolicy() backoff.Policy {
	return backoff.Policy{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestRetrying(t *testing.T) {
	down := &ErrUnavailable{Err: errors.New("503")}
	bad := &ErrOutput{Err: errors.New("not json")}

	tests := []struct {
		name    string
		replies []Reply
		calls   int
		wantErr bool
	}{
		{"first try", []Reply{{Body: `"ok"`}}, 1, false},
		{"outage then success", []Reply{{Err: down}, {Err: down}, {Body: `"ok"`}}, 3, false},
		{"outage every time", []Reply{{Err: down}, {Err: down}, {Err: down}}, 3, true},
		{"truncation is final", []Reply{{Err: ErrTruncated}, {Body: `"ok"`}}, 1, true},
		{"bad output asked again once", []Reply{{Err: bad}, {Body: `"ok"`}}, 2, false},
		{"bad output twice", []Reply{{Err: bad}, {Err: bad}, {Body: `"ok"`}}, 2, true},
		{"rejected is final", []Reply{{Err: &ErrRejected{Status: 400, Err: errors.New("bad model")}}, {Body: `"ok"`}}, 1, true},
		{"unclassified is final", []Reply{{Err: errors.New("boom")}, {Body: `"ok"`}}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScripted(tt.replies...)
			_, err := WithRetry(s, fastPolicy()).Complete(context.Background(), Prompt{User: "q"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, s.Prompts(), tt.calls)
		})
	}
}

func TestRetrying_RateLimitWaitsRetryAfter(t *testing.T) {
	s := NewScripted(
		Reply{Err: &ErrRateLimit{RetryAfter: 30 * time.Millisecond}},
		Reply{Body: `"ok"`},
	)
	start := time.Now()
	_, err := WithRetry(s, fastPolicy()).Complete(context.Background(), Prompt{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRetrying_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewScripted(Reply{Err: &ErrRateLimit{RetryAfter: time.Hour}})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := WithRetry(s, fastPolicy()).Complete(ctx, Prompt{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, s.Prompts(), 1)
}

func TestRetrying_Delegates(t *testing.T) {
	p := WithRetry(NewScripted(), fastPolicy())
	assert.Equal(t, "mock", p.Name())
	assert.Equal(t, "scripted", p.Model())
}
