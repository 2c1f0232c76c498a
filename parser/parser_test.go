package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aschepis/chainkit/llm"
)

func TestTextOf(t *testing.T) {
	text, err := TextOf("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", text)

	text, err = TextOf(&llm.Response{Text: "from response"})
	require.NoError(t, err)
	assert.Equal(t, "from response", text)

	text, err = TextOf(llm.AssistantMessage("from message"))
	require.NoError(t, err)
	assert.Equal(t, "from message", text)

	_, err = TextOf(42)
	assert.Error(t, err)

	_, err = TextOf((*llm.Response)(nil))
	assert.Error(t, err)
}

func TestStr(t *testing.T) {
	out, err := Str().Invoke(t.Context(), &llm.Response{Text: "  hello\n"})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}
