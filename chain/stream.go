package chain

import (
	"context"
	"fmt"
	"sync"
)

// Stream is a pull-based iterator over incremental text output. The caller
// should read until Next returns false, then check Err.
type Stream interface {
	// Next advances to the next chunk. Returns false when the stream is
	// complete or an error occurred.
	Next() bool

	// Chunk returns the current text chunk. Only valid after Next returned
	// true.
	Chunk() string

	// Err returns any error that occurred during streaming.
	Err() error

	// Close releases resources held by the stream.
	Close() error
}

// Streamer is implemented by Runnables that can produce output incrementally
// (chat models, sequences ending in one).
type Streamer interface {
	Runnable
	Stream(ctx context.Context, input any) (Stream, error)
}

// StreamText streams r if it supports streaming, otherwise invokes it once
// and yields the result as a single chunk.
func StreamText(ctx context.Context, r Runnable, input any) (Stream, error) {
	if s, ok := r.(Streamer); ok {
		return s.Stream(ctx, input)
	}
	out, err := r.Invoke(ctx, input)
	if err != nil {
		return nil, err
	}
	return StreamOnce(textOf(out)), nil
}

// textOf renders a step output as text for streaming fallback.
func textOf(out any) string {
	if s, ok := out.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", out)
}

// onceStream yields a single pre-computed chunk.
type onceStream struct {
	chunk   string
	yielded bool
}

// StreamOnce returns a Stream that yields text as one chunk.
func StreamOnce(text string) Stream {
	return &onceStream{chunk: text}
}

func (s *onceStream) Next() bool {
	if s.yielded {
		return false
	}
	s.yielded = true
	return true
}

func (s *onceStream) Chunk() string { return s.chunk }
func (s *onceStream) Err() error    { return nil }
func (s *onceStream) Close() error  { return nil }

// StreamBuffer is a push-side adapter for producers that emit chunks from a
// goroutine or callback (the Ollama API style). The producer calls Push/Fail/
// Done; the consumer reads through the Stream interface. Next blocks until a
// chunk is available or the stream finishes.
type StreamBuffer struct {
	mu      sync.Mutex
	cond    *sync.Cond
	chunks  []string
	current int
	err     error
	done    bool
}

// NewStreamBuffer creates an empty StreamBuffer.
func NewStreamBuffer() *StreamBuffer {
	b := &StreamBuffer{current: -1}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Push appends a chunk and wakes any blocked reader.
func (b *StreamBuffer) Push(chunk string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	b.chunks = append(b.chunks, chunk)
	b.cond.Broadcast()
}

// Fail records a producer error and terminates the stream.
func (b *StreamBuffer) Fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err == nil {
		b.err = err
	}
	b.done = true
	b.cond.Broadcast()
}

// Done marks the stream as complete.
func (b *StreamBuffer) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.done = true
	b.cond.Broadcast()
}

// Next implements Stream.
func (b *StreamBuffer) Next() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current++
	for b.current >= len(b.chunks) && !b.done {
		b.cond.Wait()
	}
	// Buffered chunks drain before a producer error is surfaced via Err.
	return b.current < len(b.chunks)
}

// Chunk implements Stream.
func (b *StreamBuffer) Chunk() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current < 0 || b.current >= len(b.chunks) {
		return ""
	}
	return b.chunks[b.current]
}

// Err implements Stream.
func (b *StreamBuffer) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Close implements Stream. It stops accepting chunks and unblocks readers.
func (b *StreamBuffer) Close() error {
	b.Done()
	return nil
}

var _ Stream = (*StreamBuffer)(nil)
