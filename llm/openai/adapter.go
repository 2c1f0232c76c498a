package openai

import (
	"github.com/aschepis/chainkit/llm"
	openai "github.com/sashabaranov/go-openai"
)

// ToChatMessages converts neutral messages to the OpenAI chat format.
func ToChatMessages(msgs []llm.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, ToChatMessage(msg))
	}
	return result
}

// ToChatMessage converts a single neutral message to the OpenAI chat format.
func ToChatMessage(msg llm.Message) openai.ChatCompletionMessage {
	var role string
	switch msg.Role {
	case llm.RoleUser:
		role = openai.ChatMessageRoleUser
	case llm.RoleAssistant:
		role = openai.ChatMessageRoleAssistant
	case llm.RoleSystem:
		role = openai.ChatMessageRoleSystem
	default:
		role = openai.ChatMessageRoleUser
	}
	return openai.ChatCompletionMessage{Role: role, Content: msg.Text}
}

// FromFinishReason maps an OpenAI finish reason to the neutral stop reason.
func FromFinishReason(reason openai.FinishReason) string {
	switch reason {
	case openai.FinishReasonLength:
		return "max_tokens"
	case openai.FinishReasonStop:
		return "stop"
	case openai.FinishReasonContentFilter:
		return "content_filter"
	default:
		return "stop"
	}
}
