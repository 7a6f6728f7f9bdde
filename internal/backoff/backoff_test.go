package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var fast = Policy{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}

func always(error) (bool, time.Duration) { return true, 0 }

func TestRetry_FirstAttempt(t *testing.T) {
	calls := 0
	v, err := Retry(context.Background(), fast, always, func(context.Context) (int, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	calls := 0
	v, err := Retry(context.Background(), fast, always, func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("flaky")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustedReturnsLastError(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fast, always, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("down " + string(rune('0'+calls)))
	})
	assert.EqualError(t, err, "down 3")
	assert.Equal(t, 3, calls)
}

func TestRetry_ClassifierStops(t *testing.T) {
	fatal := errors.New("fatal")
	calls := 0
	_, err := Retry(context.Background(), fast, func(err error) (bool, time.Duration) {
		return !errors.Is(err, fatal), 0
	}, func(context.Context) (int, error) {
		calls++
		return 0, fatal
	})
	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextErrorNotRetried(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fast, always, func(context.Context) (int, error) {
		calls++
		return 0, context.Canceled
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetry_CancelledWhileWaiting(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	slow := Policy{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 2}

	_, err := Retry(ctx, slow, always, func(context.Context) (int, error) {
		return 0, errors.New("down")
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetry_ClassifierWaitOverrides(t *testing.T) {
	slow := Policy{MaxAttempts: 2, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 2}
	start := time.Now()
	calls := 0
	_, err := Retry(context.Background(), slow, func(error) (bool, time.Duration) {
		return true, time.Millisecond
	}, func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("limited")
		}
		return 1, nil
	})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	calls := 0
	_, _ = Retry(context.Background(), Policy{}, always, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("x")
	})
	assert.Equal(t, 1, calls)
}

func TestPolicy_Delay(t *testing.T) {
	p := Policy{InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}
	for range 20 {
		d0 := p.Delay(0)
		assert.GreaterOrEqual(t, d0, 80*time.Millisecond)
		assert.LessOrEqual(t, d0, 120*time.Millisecond)

		capped := p.Delay(5)
		assert.LessOrEqual(t, capped, 360*time.Millisecond)
		assert.GreaterOrEqual(t, capped, 240*time.Millisecond)
	}
}
