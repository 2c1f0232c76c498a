package openai

import (
	"errors"
	"io"
	"sync"

	"github.com/aschepis/chainkit/llm"
	openai "github.com/sashabaranov/go-openai"
)

// chatStream is the part of openai.ChatCompletionStream the adapter reads.
type chatStream interface {
	Recv() (openai.ChatCompletionStreamResponse, error)
	Close() error
}

// stream adapts the SDK's streaming response to the llm.Stream interface.
// Events are read lazily from the underlying stream on each Next call. The
// mutex is released around Recv so Close and Err stay responsive while a read
// is in flight; closing aborts the response body, which unblocks Recv.
type stream struct {
	mu      sync.Mutex
	stream  chatStream
	event   *llm.StreamEvent
	err     error
	done    bool
	started bool
}

func newStream(s chatStream) *stream {
	return &stream{stream: s}
}

// Next implements llm.Stream.
func (s *stream) Next() bool {
	s.mu.Lock()
	if s.err != nil || s.done {
		s.mu.Unlock()
		return false
	}

	if !s.started {
		s.started = true
		s.event = &llm.StreamEvent{Type: llm.StreamEventStart}
		s.mu.Unlock()
		return true
	}

	recv := s.stream
	s.mu.Unlock()

	for {
		response, err := recv.Recv()

		s.mu.Lock()
		if s.done {
			s.mu.Unlock()
			return false
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				s.event = &llm.StreamEvent{Type: llm.StreamEventStop, Done: true}
				s.done = true
				s.mu.Unlock()
				return true
			}
			s.err = convertError(err)
			s.mu.Unlock()
			return false
		}

		if len(response.Choices) == 0 {
			s.mu.Unlock()
			continue
		}
		choice := response.Choices[0]

		if choice.FinishReason != "" {
			event := &llm.StreamEvent{Type: llm.StreamEventStop, Done: true}
			if response.Usage != nil && response.Usage.TotalTokens > 0 {
				event.Usage = &llm.Usage{
					InputTokens:  int64(response.Usage.PromptTokens),
					OutputTokens: int64(response.Usage.CompletionTokens),
				}
			}
			s.event = event
			s.done = true
			s.mu.Unlock()
			return true
		}

		if choice.Delta.Content != "" {
			s.event = &llm.StreamEvent{
				Type: llm.StreamEventDelta,
				Text: choice.Delta.Content,
			}
			s.mu.Unlock()
			return true
		}
		s.mu.Unlock()
	}
}

// Event implements llm.Stream.
func (s *stream) Event() *llm.StreamEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.event
}

// Err implements llm.Stream.
func (s *stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close implements llm.Stream. It aborts any in-flight Recv.
func (s *stream) Close() error {
	s.mu.Lock()
	s.done = true
	underlying := s.stream
	s.mu.Unlock()

	if underlying != nil {
		return underlying.Close()
	}
	return nil
}

var _ llm.Stream = (*stream)(nil)
