package ollama

import (
	"github.com/aschepis/chainkit/llm"
	"github.com/ollama/ollama/api"
)

// ToAPIMessages converts neutral messages to the Ollama chat format.
func ToAPIMessages(msgs []llm.Message) []api.Message {
	result := make([]api.Message, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, api.Message{Role: string(msg.Role), Content: msg.Text})
	}
	return result
}
