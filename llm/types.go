package llm

import (
	"encoding/json"
	"strings"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single conversation turn: a role and its text.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// UserMessage creates a user message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text}
}

// SystemMessage creates a system message.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Text: text}
}

// ToJSON marshals a message for debugging and logging.
func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// Request is a complete, provider-neutral model request.
type Request struct {
	Model       string
	Messages    []Message
	System      string
	MaxTokens   int64
	Temperature *float64 // optional sampling override
	JSONMode    bool     // ask the provider for a JSON object response when supported

	requestID string // set by logging middleware to correlate log lines
}

// Response is a complete, provider-neutral model response.
type Response struct {
	Text       string
	Usage      *Usage
	StopReason string
}

// Usage reports token consumption for a response.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// StreamEventType classifies streaming events.
type StreamEventType string

const (
	StreamEventStart StreamEventType = "start"
	StreamEventDelta StreamEventType = "delta"
	StreamEventStop  StreamEventType = "stop"
)

// StreamEvent is a single event in a streaming response. Delta events carry a
// text fragment; the stop event may carry final usage.
type StreamEvent struct {
	Type  StreamEventType
	Text  string
	Usage *Usage
	Done  bool
}

// CollectText drains a stream and concatenates its delta text. It closes the
// stream before returning.
func CollectText(s Stream) (string, error) {
	defer s.Close()

	var sb strings.Builder
	for s.Next() {
		event := s.Event()
		if event != nil && event.Type == StreamEventDelta {
			sb.WriteString(event.Text)
		}
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
