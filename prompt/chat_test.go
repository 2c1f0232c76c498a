package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aschepis/chainkit/chain"
	"github.com/aschepis/chainkit/llm"
)

func TestChatTemplate_Format(t *testing.T) {
	ct := MustChat(
		System("You are a {style} assistant."),
		Human("{question}"),
	)

	messages, err := ct.Format(chain.Values{"style": "helpful", "question": "why is the sky blue?"})
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, "You are a helpful assistant.", messages[0].Text)
	assert.Equal(t, llm.RoleUser, messages[1].Role)
	assert.Equal(t, "why is the sky blue?", messages[1].Text)
}

func TestChatTemplate_History(t *testing.T) {
	ct := MustChat(
		System("Stay in character."),
		History("history"),
		Human("{question}"),
	)

	history := []llm.Message{
		llm.UserMessage("what is your name?"),
		llm.AssistantMessage("I am the ship computer."),
	}

	messages, err := ct.Format(chain.Values{"history": history, "question": "and your mission?"})
	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.Equal(t, llm.RoleUser, messages[1].Role)
	assert.Equal(t, llm.RoleAssistant, messages[2].Role)
	assert.Equal(t, "and your mission?", messages[3].Text)
}

func TestChatTemplate_EmptyHistory(t *testing.T) {
	ct := MustChat(History("history"), Human("{q}"))

	messages, err := ct.Format(chain.Values{"q": "hi"})
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestChatTemplate_BadHistoryType(t *testing.T) {
	ct := MustChat(History("history"), Human("{q}"))

	_, err := ct.Format(chain.Values{"history": 42, "q": "hi"})
	assert.Error(t, err)
}

func TestChatTemplate_InputVariables(t *testing.T) {
	ct := MustChat(
		System("Be {style}."),
		History("history"),
		Human("{question} in {style}"),
	)

	assert.Equal(t, []string{"style", "history", "question"}, ct.InputVariables())
}

func TestChatTemplate_AITurn(t *testing.T) {
	ct := MustChat(
		Human("2+2?"),
		AI("4"),
		Human("{followup}"),
	)

	messages, err := ct.Format(chain.Values{"followup": "and 3+3?"})
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, llm.RoleAssistant, messages[1].Role)
}

func TestNewChat_Validation(t *testing.T) {
	_, err := NewChat()
	assert.Error(t, err)

	_, err = NewChat(History(""))
	assert.Error(t, err)
}
