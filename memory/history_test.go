package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aschepis/chainkit/llm"
)

func TestBuffer(t *testing.T) {
	buf := NewBuffer()
	ctx := t.Context()

	require.NoError(t, AddExchange(ctx, buf, "hi", "hello"))
	require.NoError(t, buf.Add(ctx, llm.UserMessage("how are you?")))

	messages, err := buf.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, llm.RoleUser, messages[0].Role)
	assert.Equal(t, llm.RoleAssistant, messages[1].Role)
	assert.Equal(t, "how are you?", messages[2].Text)
}

func TestBuffer_Clear(t *testing.T) {
	buf := NewBuffer()
	ctx := t.Context()

	require.NoError(t, buf.Add(ctx, llm.UserMessage("hi")))
	require.NoError(t, buf.Clear(ctx))

	messages, err := buf.Messages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestBuffer_MessagesIsACopy(t *testing.T) {
	buf := NewBuffer()
	ctx := t.Context()
	require.NoError(t, buf.Add(ctx, llm.UserMessage("hi")))

	messages, err := buf.Messages(ctx)
	require.NoError(t, err)
	messages[0].Text = "mutated"

	fresh, err := buf.Messages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hi", fresh[0].Text)
}

func TestWindow(t *testing.T) {
	buf := NewBuffer()
	ctx := t.Context()
	window := NewWindow(buf, 2)

	require.NoError(t, AddExchange(ctx, window, "first", "one"))
	require.NoError(t, AddExchange(ctx, window, "second", "two"))

	messages, err := window.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Text)
	assert.Equal(t, "two", messages[1].Text)

	// The underlying history still holds everything.
	all, err := buf.Messages(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestWindow_SmallerThanSize(t *testing.T) {
	window := NewWindow(NewBuffer(), 10)
	ctx := t.Context()

	require.NoError(t, window.Add(ctx, llm.UserMessage("only one")))

	messages, err := window.Messages(ctx)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}
