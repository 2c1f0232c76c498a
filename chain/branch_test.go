package chain

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constStep(name, out string) Runnable {
	return Func(name, func(context.Context, any) (any, error) { return out, nil })
}

func TestBranch(t *testing.T) {
	router := Branch([]Case{
		{
			When: func(_ context.Context, input any) bool {
				return strings.Contains(input.(string), "math")
			},
			Then: constStep("math", "math expert"),
		},
		{
			When: func(_ context.Context, input any) bool {
				return strings.Contains(input.(string), "history")
			},
			Then: constStep("history", "history expert"),
		},
	}, constStep("general", "generalist"))

	tests := []struct {
		input string
		want  string
	}{
		{"a math question", "math expert"},
		{"a history question", "history expert"},
		{"anything else", "generalist"},
	}

	for _, tt := range tests {
		out, err := router.Invoke(t.Context(), tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}
}

func TestBranch_NilFallbackPassesThrough(t *testing.T) {
	router := Branch([]Case{
		{
			When: func(context.Context, any) bool { return false },
			Then: constStep("never", "unreachable"),
		},
	}, nil)

	out, err := router.Invoke(t.Context(), "original")
	require.NoError(t, err)
	assert.Equal(t, "original", out)
}
