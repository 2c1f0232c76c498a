package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flakyStep(failures int, finalOut string) (Runnable, *int) {
	attempts := new(int)
	step := Func("flaky", func(context.Context, any) (any, error) {
		*attempts++
		if *attempts <= failures {
			return nil, errors.New("transient")
		}
		return finalOut, nil
	})
	return step, attempts
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	step, attempts := flakyStep(2, "done")

	out, err := Retry(step, WithInitialInterval(1)).Invoke(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, "done", out)
	assert.Equal(t, 3, *attempts)
}

func TestRetry_Exhausted(t *testing.T) {
	step, attempts := flakyStep(100, "never")

	_, err := Retry(step, WithMaxRetries(2), WithInitialInterval(1)).Invoke(t.Context(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry exhausted")
	assert.Equal(t, 3, *attempts, "initial attempt plus two retries")
}

func TestRetry_PermanentError(t *testing.T) {
	bad := errors.New("bad request")
	attempts := 0
	step := Func("perm", func(context.Context, any) (any, error) {
		attempts++
		return nil, bad
	})

	_, err := Retry(step,
		WithMaxRetries(5),
		WithInitialInterval(1),
		WithRetryIf(func(err error) bool { return !errors.Is(err, bad) }),
	).Invoke(t.Context(), nil)

	require.ErrorIs(t, err, bad)
	assert.Equal(t, 1, attempts, "non-retryable errors fail on the first attempt")
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	step := Func("cancel-then-fail", func(context.Context, any) (any, error) {
		cancel()
		return nil, errors.New("transient")
	})

	_, err := Retry(step, WithMaxRetries(10)).Invoke(ctx, nil)
	assert.Error(t, err)
}
