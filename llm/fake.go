package llm

import (
	"context"
	"strings"
	"sync"
)

// FakeClient is a scripted in-memory Client for tests and offline demo runs.
// It replays canned responses in order, cycling when exhausted, and records
// every request it receives.
type FakeClient struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     int
	requests  []*Request
}

// NewFakeClient creates a FakeClient that replays the given responses.
func NewFakeClient(responses ...string) *FakeClient {
	if len(responses) == 0 {
		responses = []string{"fake response"}
	}
	return &FakeClient{responses: responses}
}

// FailWith queues errors to be returned before any scripted responses.
func (f *FakeClient) FailWith(errs ...error) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, errs...)
	return f
}

// Calls returns how many requests the client has served.
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Requests returns the recorded requests in arrival order.
func (f *FakeClient) Requests() []*Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// next records the request and pops the next scripted error or response.
func (f *FakeClient) next(req *Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	f.calls++

	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return "", err
	}
	return f.responses[(f.calls-1)%len(f.responses)], nil
}

// Complete implements Client.
func (f *FakeClient) Complete(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := f.next(req)
	if err != nil {
		return nil, err
	}

	var inputTokens int64
	for _, m := range req.Messages {
		inputTokens += int64(len(strings.Fields(m.Text)))
	}
	return &Response{
		Text:       text,
		Usage:      &Usage{InputTokens: inputTokens, OutputTokens: int64(len(strings.Fields(text)))},
		StopReason: "stop",
	}, nil
}

// Stream implements Client, emitting the scripted response word by word.
func (f *FakeClient) Stream(ctx context.Context, req *Request) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := f.next(req)
	if err != nil {
		return nil, err
	}

	words := strings.SplitAfter(text, " ")
	events := make([]*StreamEvent, 0, len(words)+2)
	events = append(events, &StreamEvent{Type: StreamEventStart})
	for _, w := range words {
		events = append(events, &StreamEvent{Type: StreamEventDelta, Text: w})
	}
	events = append(events, &StreamEvent{Type: StreamEventStop, Done: true})
	return &fakeStream{events: events, current: -1}, nil
}

// fakeStream replays pre-built events.
type fakeStream struct {
	events  []*StreamEvent
	current int
}

func (s *fakeStream) Next() bool {
	s.current++
	return s.current < len(s.events)
}

func (s *fakeStream) Event() *StreamEvent {
	if s.current < 0 || s.current >= len(s.events) {
		return nil
	}
	return s.events[s.current]
}

func (s *fakeStream) Err() error   { return nil }
func (s *fakeStream) Close() error { return nil }

var _ Client = (*FakeClient)(nil)
