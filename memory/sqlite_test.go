package memory

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aschepis/chainkit/llm"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_AppendAndReplay(t *testing.T) {
	store := testStore(t)
	ctx := t.Context()
	history := store.History("session-1")

	require.NoError(t, AddExchange(ctx, history, "what is Go?", "a programming language"))
	require.NoError(t, history.Add(ctx, llm.UserMessage("who made it?")))

	messages, err := history.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, llm.RoleUser, messages[0].Role)
	assert.Equal(t, "what is Go?", messages[0].Text)
	assert.Equal(t, llm.RoleAssistant, messages[1].Role)
	assert.Equal(t, "who made it?", messages[2].Text)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := testStore(t)
	ctx := t.Context()

	require.NoError(t, store.History("a").Add(ctx, llm.UserMessage("for a")))
	require.NoError(t, store.History("b").Add(ctx, llm.UserMessage("for b")))

	messages, err := store.History("a").Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "for a", messages[0].Text)

	sessions, err := store.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sessions)
}

func TestStore_Clear(t *testing.T) {
	store := testStore(t)
	ctx := t.Context()

	require.NoError(t, store.History("a").Add(ctx, llm.UserMessage("keep")))
	require.NoError(t, store.History("b").Add(ctx, llm.UserMessage("drop")))
	require.NoError(t, store.History("b").Clear(ctx))

	remaining, err := store.History("a").Messages(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	cleared, err := store.History("b").Messages(ctx)
	require.NoError(t, err)
	assert.Empty(t, cleared)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := t.Context()

	first, err := OpenStore(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, AddExchange(ctx, first.History("s"), "remember me", "noted"))
	require.NoError(t, first.Close())

	second, err := OpenStore(path, zerolog.Nop())
	require.NoError(t, err)
	defer second.Close()

	messages, err := second.History("s").Messages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "remember me", messages[0].Text)
	assert.Equal(t, llm.RoleAssistant, messages[1].Role)
}

func TestStore_EmptySession(t *testing.T) {
	store := testStore(t)

	messages, err := store.History("nobody").Messages(t.Context())
	require.NoError(t, err)
	assert.Empty(t, messages)
}
