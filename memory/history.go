package memory

import (
	"context"
	"sync"

	"github.com/aschepis/chainkit/llm"
)

// History records exchanged messages and replays them for the next prompt.
type History interface {
	// Messages returns the recorded messages in exchange order.
	Messages(ctx context.Context) ([]llm.Message, error)
	// Add appends one message.
	Add(ctx context.Context, msg llm.Message) error
	// Clear removes all recorded messages.
	Clear(ctx context.Context) error
}

// AddExchange records one user turn and the assistant's reply.
func AddExchange(ctx context.Context, h History, userText, assistantText string) error {
	if err := h.Add(ctx, llm.UserMessage(userText)); err != nil {
		return err
	}
	return h.Add(ctx, llm.AssistantMessage(assistantText))
}

// Buffer is an unbounded in-memory History. Safe for concurrent use.
type Buffer struct {
	mu       sync.Mutex
	messages []llm.Message
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// Messages implements History.
func (b *Buffer) Messages(_ context.Context) ([]llm.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]llm.Message, len(b.messages))
	copy(out, b.messages)
	return out, nil
}

// Add implements History.
func (b *Buffer) Add(_ context.Context, msg llm.Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msg)
	return nil
}

// Clear implements History.
func (b *Buffer) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = nil
	return nil
}

// Window caps the messages replayed from an underlying History to the most
// recent size entries. Writes pass through untouched.
type Window struct {
	inner History
	size  int
}

// NewWindow wraps inner so Messages returns at most size entries.
func NewWindow(inner History, size int) *Window {
	return &Window{inner: inner, size: size}
}

// Messages implements History.
func (w *Window) Messages(ctx context.Context) ([]llm.Message, error) {
	all, err := w.inner.Messages(ctx)
	if err != nil {
		return nil, err
	}
	if w.size <= 0 || len(all) <= w.size {
		return all, nil
	}
	return all[len(all)-w.size:], nil
}

// Add implements History.
func (w *Window) Add(ctx context.Context, msg llm.Message) error {
	return w.inner.Add(ctx, msg)
}

// Clear implements History.
func (w *Window) Clear(ctx context.Context) error {
	return w.inner.Clear(ctx)
}

var (
	_ History = (*Buffer)(nil)
	_ History = (*Window)(nil)
)
