package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failStep(name string, err error) Runnable {
	return Func(name, func(context.Context, any) (any, error) { return nil, err })
}

func TestFallbacks_PrimarySucceeds(t *testing.T) {
	var altRan bool
	alt := Func("alt", func(context.Context, any) (any, error) {
		altRan = true
		return "alt", nil
	})

	out, err := Fallbacks(constStep("primary", "primary"), alt).Invoke(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, "primary", out)
	assert.False(t, altRan)
}

func TestFallbacks_UsesAlternate(t *testing.T) {
	out, err := Fallbacks(
		failStep("primary", errors.New("down")),
		constStep("alt", "rescued"),
	).Invoke(t.Context(), nil)

	require.NoError(t, err)
	assert.Equal(t, "rescued", out)
}

func TestFallbacks_AllFail(t *testing.T) {
	errA := errors.New("a down")
	errB := errors.New("b down")

	_, err := Fallbacks(failStep("a", errA), failStep("b", errB)).Invoke(t.Context(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Contains(t, err.Error(), "all fallbacks failed")
}
