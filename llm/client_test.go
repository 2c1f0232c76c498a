package llm

import (
	"context"
	"errors"
	"testing"
)

// recordingMiddleware captures hook invocations in order.
type recordingMiddleware struct {
	name    string
	events  *[]string
	swallow bool
}

func (m *recordingMiddleware) BeforeRequest(ctx context.Context, req *Request) (*Request, error) {
	*m.events = append(*m.events, m.name+":before")
	return req, nil
}

func (m *recordingMiddleware) AfterResponse(ctx context.Context, req *Request, resp *Response) (*Response, error) {
	*m.events = append(*m.events, m.name+":after")
	return resp, nil
}

func (m *recordingMiddleware) OnError(ctx context.Context, req *Request, err error) error {
	*m.events = append(*m.events, m.name+":error")
	if m.swallow {
		return nil
	}
	return err
}

func TestWrapWithMiddleware_HookOrder(t *testing.T) {
	var events []string
	client := WrapWithMiddleware(NewFakeClient("ok"),
		&recordingMiddleware{name: "outer", events: &events},
		&recordingMiddleware{name: "inner", events: &events},
	)

	resp, err := client.Complete(t.Context(), &Request{Model: "fake", Messages: []Message{UserMessage("hi")}})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("expected scripted response, got %q", resp.Text)
	}

	// Before hooks run in order, after hooks in reverse.
	expected := []string{"outer:before", "inner:before", "inner:after", "outer:after"}
	if len(events) != len(expected) {
		t.Fatalf("expected %d events, got %v", len(expected), events)
	}
	for i, e := range expected {
		if events[i] != e {
			t.Errorf("event %d: expected %q, got %q", i, e, events[i])
		}
	}
}

func TestWrapWithMiddleware_OnError(t *testing.T) {
	var events []string
	failure := errors.New("upstream down")
	client := WrapWithMiddleware(
		NewFakeClient("unused").FailWith(failure),
		&recordingMiddleware{name: "mw", events: &events},
	)

	_, err := client.Complete(t.Context(), &Request{Model: "fake", Messages: []Message{UserMessage("hi")}})
	if !errors.Is(err, failure) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	expected := []string{"mw:before", "mw:error"}
	if len(events) != len(expected) || events[0] != expected[0] || events[1] != expected[1] {
		t.Errorf("expected events %v, got %v", expected, events)
	}
}

func TestWrapWithMiddleware_ErrorSwallowed(t *testing.T) {
	var events []string
	client := WrapWithMiddleware(
		NewFakeClient("unused").FailWith(errors.New("transient")),
		&recordingMiddleware{name: "mw", events: &events, swallow: true},
	)

	resp, err := client.Complete(t.Context(), &Request{Model: "fake", Messages: []Message{UserMessage("hi")}})
	if err != nil {
		t.Fatalf("expected swallowed error, got %v", err)
	}
	if resp != nil {
		t.Error("swallowed errors yield no response")
	}
}

func TestMiddlewareFunc(t *testing.T) {
	var saw string
	mw := MiddlewareFunc{
		BeforeRequestFunc: func(ctx context.Context, req *Request) (*Request, error) {
			saw = req.Model
			return req, nil
		},
	}

	client := WrapWithMiddleware(NewFakeClient("ok"), mw)
	if _, err := client.Complete(t.Context(), &Request{Model: "fake-model", Messages: []Message{UserMessage("hi")}}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if saw != "fake-model" {
		t.Errorf("Before hook did not see the request, got %q", saw)
	}
}
