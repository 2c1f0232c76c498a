package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aschepis/chainkit/chain"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  chain.Values
	}{
		{
			"bare object",
			`{"name": "ada", "age": 36}`,
			chain.Values{"name": "ada", "age": float64(36)},
		},
		{
			"fenced with language tag",
			"```json\n{\"ok\": true}\n```",
			chain.Values{"ok": true},
		},
		{
			"fenced without tag",
			"```\n{\"ok\": true}\n```",
			chain.Values{"ok": true},
		},
		{
			"object inside prose",
			"Here is the result: {\"ok\": true} as requested.",
			chain.Values{"ok": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := JSON().Invoke(t.Context(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestJSON_Invalid(t *testing.T) {
	_, err := JSON().Invoke(t.Context(), "not json at all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}
