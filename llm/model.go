package llm

import (
	"context"
	"fmt"

	"github.com/aschepis/chainkit/chain"
)

// ChatModel binds a Client to a model name and sampling parameters, turning
// it into a pipeline step. It accepts a string, a Message, or a []Message as
// input and produces a *Response.
type ChatModel struct {
	client      Client
	model       string
	system      string
	temperature *float64
	maxTokens   int64
	jsonMode    bool
}

// ModelOption configures a ChatModel.
type ModelOption func(*ChatModel)

// WithModel sets the model name sent to the provider.
func WithModel(model string) ModelOption {
	return func(m *ChatModel) { m.model = model }
}

// WithSystem sets the system prompt for every request.
func WithSystem(system string) ModelOption {
	return func(m *ChatModel) { m.system = system }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) ModelOption {
	return func(m *ChatModel) { m.temperature = &t }
}

// WithMaxTokens caps the response length.
func WithMaxTokens(n int64) ModelOption {
	return func(m *ChatModel) { m.maxTokens = n }
}

// WithJSONMode asks the provider for a JSON object response. Providers
// without native JSON mode ignore it; pair it with format instructions in
// the prompt.
func WithJSONMode() ModelOption {
	return func(m *ChatModel) { m.jsonMode = true }
}

// NewChatModel creates a ChatModel over client.
func NewChatModel(client Client, opts ...ModelOption) *ChatModel {
	m := &ChatModel{client: client, maxTokens: 1024}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// With returns a copy of the model with additional options applied. The
// receiver is not modified, so one configured model can be rebound per
// pipeline.
func (m *ChatModel) With(opts ...ModelOption) *ChatModel {
	clone := *m
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Name implements chain.Runnable.
func (m *ChatModel) Name() string {
	if m.model == "" {
		return "chat"
	}
	return "chat(" + m.model + ")"
}

// buildRequest coerces a pipeline input into a Request.
func (m *ChatModel) buildRequest(input any) (*Request, error) {
	var messages []Message
	switch v := input.(type) {
	case string:
		messages = []Message{UserMessage(v)}
	case Message:
		messages = []Message{v}
	case []Message:
		messages = v
	default:
		return nil, fmt.Errorf("chat model: unsupported input type %T", input)
	}

	return &Request{
		Model:       m.model,
		Messages:    messages,
		System:      m.system,
		MaxTokens:   m.maxTokens,
		Temperature: m.temperature,
		JSONMode:    m.jsonMode,
	}, nil
}

// Invoke implements chain.Runnable. The output is a *Response; follow the
// model with a parser to extract text or structured data.
func (m *ChatModel) Invoke(ctx context.Context, input any) (any, error) {
	req, err := m.buildRequest(input)
	if err != nil {
		return nil, err
	}
	return m.client.Complete(ctx, req)
}

// Stream implements chain.Streamer, yielding response text incrementally.
func (m *ChatModel) Stream(ctx context.Context, input any) (chain.Stream, error) {
	req, err := m.buildRequest(input)
	if err != nil {
		return nil, err
	}

	events, err := m.client.Stream(ctx, req)
	if err != nil {
		return nil, err
	}

	buf := chain.NewStreamBuffer()
	go func() {
		defer events.Close()
		for events.Next() {
			event := events.Event()
			if event != nil && event.Type == StreamEventDelta && event.Text != "" {
				buf.Push(event.Text)
			}
		}
		if err := events.Err(); err != nil {
			buf.Fail(err)
			return
		}
		buf.Done()
	}()
	return buf, nil
}

// Generate is a convenience wrapper: one user prompt in, response text out.
func (m *ChatModel) Generate(ctx context.Context, promptText string) (string, error) {
	resp, err := m.GenerateMessages(ctx, []Message{UserMessage(promptText)})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// GenerateMessages sends a full message history and returns the response.
func (m *ChatModel) GenerateMessages(ctx context.Context, messages []Message) (*Response, error) {
	req, err := m.buildRequest(messages)
	if err != nil {
		return nil, err
	}
	return m.client.Complete(ctx, req)
}

var (
	_ chain.Runnable = (*ChatModel)(nil)
	_ chain.Streamer = (*ChatModel)(nil)
)
