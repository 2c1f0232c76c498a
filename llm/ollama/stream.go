package ollama

import (
	"context"
	"sync"

	"github.com/aschepis/chainkit/llm"
	"github.com/ollama/ollama/api"
)

// stream implements llm.Stream over Ollama's callback-driven chat API. The
// callback pushes events from a goroutine; consumers block on a condition
// variable until events arrive.
type stream struct {
	ctx     context.Context
	client  *api.Client
	req     *api.ChatRequest
	mu      sync.Mutex
	cond    *sync.Cond
	events  []*llm.StreamEvent
	current int
	err     error
	done    bool
	started bool
}

func newStream(ctx context.Context, client *api.Client, req *api.ChatRequest) *stream {
	s := &stream{ctx: ctx, client: client, req: req, current: -1}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Next implements llm.Stream.
func (s *stream) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.started = true
		go s.pump()
	}

	s.current++
	for s.current >= len(s.events) && !s.done {
		s.cond.Wait()
	}
	// Buffered events drain before a producer error is surfaced via Err.
	return s.current < len(s.events)
}

// Event implements llm.Stream.
func (s *stream) Event() *llm.StreamEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current < 0 || s.current >= len(s.events) {
		return nil
	}
	return s.events[s.current]
}

// Err implements llm.Stream.
func (s *stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close implements llm.Stream.
func (s *stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = true
	s.cond.Broadcast()
	return nil
}

// emit appends an event and wakes blocked readers.
func (s *stream) emit(event *llm.StreamEvent) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.cond.Broadcast()
	s.mu.Unlock()
}

// pump runs the chat request, translating callback responses into events.
func (s *stream) pump() {
	s.emit(&llm.StreamEvent{Type: llm.StreamEventStart})

	err := s.client.Chat(s.ctx, s.req, func(resp api.ChatResponse) error {
		if resp.Message.Content != "" {
			s.emit(&llm.StreamEvent{Type: llm.StreamEventDelta, Text: resp.Message.Content})
		}
		if resp.Done {
			usage := &llm.Usage{}
			if resp.PromptEvalCount > 0 {
				usage.InputTokens = int64(resp.PromptEvalCount)
			}
			if resp.EvalCount > 0 {
				usage.OutputTokens = int64(resp.EvalCount)
			}
			s.emit(&llm.StreamEvent{Type: llm.StreamEventStop, Usage: usage, Done: true})
		}
		return nil
	})

	s.mu.Lock()
	if err != nil && s.err == nil {
		s.err = llm.NewProviderError("ollama stream error", err)
	}
	s.done = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

var _ llm.Stream = (*stream)(nil)
