package anthropic

import (
	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/aschepis/chainkit/llm"
)

// ToMessageParams converts neutral messages to Anthropic message params.
// System messages are not valid in the Anthropic messages array; callers put
// the system prompt in Request.System, so any stray system message is sent as
// a user message rather than dropped.
func ToMessageParams(msgs []llm.Message) []anthropic.MessageParam {
	result := make([]anthropic.MessageParam, 0, len(msgs))
	for _, msg := range msgs {
		block := anthropic.NewTextBlock(msg.Text)
		switch msg.Role {
		case llm.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(block))
		default:
			result = append(result, anthropic.NewUserMessage(block))
		}
	}
	return result
}

// FromContent flattens an Anthropic content union list into response text.
func FromContent(content []anthropic.ContentBlockUnion) string {
	var text string
	for _, blockUnion := range content {
		if block, ok := blockUnion.AsAny().(anthropic.TextBlock); ok {
			text += block.Text
		}
	}
	return text
}
