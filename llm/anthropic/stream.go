package anthropic

import (
	"sync"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/aschepis/chainkit/llm"
)

// stream adapts the SDK's SSE stream to the llm.Stream interface. The SDK
// stream is consumed in a goroutine; consumers are woken through a condition
// variable as events arrive.
type stream struct {
	mu      sync.Mutex
	cond    *sync.Cond
	sse     *ssestream.Stream[anthropic.MessageStreamEventUnion]
	events  []*llm.StreamEvent
	current int
	err     error
	done    bool
	started bool
}

func newStream(sse *ssestream.Stream[anthropic.MessageStreamEventUnion]) *stream {
	s := &stream{sse: sse, current: -1}
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
	if s.sse != nil {
		return s.sse.Close()
	}
	return nil
}

// emit appends an event and wakes blocked readers. Callers must not hold the
// lock.
func (s *stream) emit(event *llm.StreamEvent) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.cond.Broadcast()
	s.mu.Unlock()
}

// pump consumes the SDK stream and translates events.
func (s *stream) pump() {
	s.emit(&llm.StreamEvent{Type: llm.StreamEventStart})

	var usage *llm.Usage

	for s.sse.Next() {
		event := s.sse.Current()

		switch evt := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			if delta, ok := evt.Delta.AsAny().(anthropic.TextDelta); ok && delta.Text != "" {
				s.emit(&llm.StreamEvent{Type: llm.StreamEventDelta, Text: delta.Text})
			}

		case anthropic.MessageDeltaEvent:
			usage = &llm.Usage{
				InputTokens:  evt.Usage.InputTokens,
				OutputTokens: evt.Usage.OutputTokens,
			}

		case anthropic.MessageStopEvent:
			s.emit(&llm.StreamEvent{Type: llm.StreamEventStop, Usage: usage, Done: true})
			s.mu.Lock()
			s.done = true
			s.cond.Broadcast()
			s.mu.Unlock()
			return
		}
	}

	s.mu.Lock()
	if err := s.sse.Err(); err != nil && s.err == nil {
		s.err = llm.NewProviderError("Anthropic stream error", err)
	}
	s.done = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

var _ llm.Stream = (*stream)(nil)
