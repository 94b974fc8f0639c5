package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		JitterFraction: 0,
		ShouldRetry:    func(error) bool { return true },
	}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := Do(context.Background(), fastConfig(3), func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := Do(context.Background(), fastConfig(3), func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, eris.New("flaky")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := Do(context.Background(), fastConfig(3), func(context.Context) (int, error) {
		calls++
		return 0, eris.New("still down")
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	t.Parallel()

	cfg := fastConfig(5)
	cfg.ShouldRetry = func(error) bool { return false }

	calls := 0
	_, err := Do(context.Background(), cfg, func(context.Context) (int, error) {
		calls++
		return 0, eris.New("permanent")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := Do(ctx, fastConfig(5), func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, eris.New("flaky")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoZeroConfigMeansSingleAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := Do(context.Background(), RetryConfig{}, func(context.Context) (int, error) {
		calls++
		return 0, eris.New("down")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoOnRetryCallback(t *testing.T) {
	t.Parallel()

	var attempts []int
	cfg := fastConfig(3)
	cfg.OnRetry = func(attempt int, err error) {
		attempts = append(attempts, attempt)
		assert.Error(t, err)
	}

	calls := 0
	_, _ = Do(context.Background(), cfg, func(context.Context) (int, error) {
		calls++
		return 0, eris.New("flaky")
	})
	assert.Equal(t, []int{1, 2}, attempts)
}

func TestComputeBackoffGrowsAndCaps(t *testing.T) {
	t.Parallel()

	cfg := applyDefaults(RetryConfig{
		MaxAttempts:    10,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     time.Second,
		Multiplier:     2.0,
		JitterFraction: 0,
	})

	assert.Equal(t, 100*time.Millisecond, computeBackoff(0, cfg))
	assert.Equal(t, 200*time.Millisecond, computeBackoff(1, cfg))
	assert.Equal(t, 400*time.Millisecond, computeBackoff(2, cfg))
	assert.Equal(t, time.Second, computeBackoff(5, cfg))
}
