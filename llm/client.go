package llm

import (
	"context"
)

// Client is the provider-neutral interface for hosted model APIs.
// Implementations handle provider-specific request/response translation.
type Client interface {
	// Complete sends a request and returns the whole response.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Stream sends a request and returns a stream of events. The caller
	// should read until Next returns false and then check Err.
	Stream(ctx context.Context, req *Request) (Stream, error)
}

// Stream is a pull-based iterator over streaming response events.
type Stream interface {
	// Next advances to the next event. Returns false when the stream is
	// complete or an error occurred.
	Next() bool

	// Event returns the current event. Only valid after Next returned true.
	Event() *StreamEvent

	// Err returns any error that occurred during streaming.
	Err() error

	// Close closes the stream and releases resources.
	Close() error
}

// Middleware decorates Client calls with cross-cutting behavior such as
// logging or accounting.
type Middleware interface {
	// BeforeRequest runs before the API call. It may replace the request or
	// abort the call by returning an error.
	BeforeRequest(ctx context.Context, req *Request) (*Request, error)

	// AfterResponse runs after a successful non-streaming call.
	AfterResponse(ctx context.Context, req *Request, resp *Response) (*Response, error)

	// OnError runs when a call fails. Returning nil swallows the error.
	OnError(ctx context.Context, req *Request, err error) error
}

// MiddlewareFunc implements Middleware from optional function fields.
type MiddlewareFunc struct {
	BeforeRequestFunc func(ctx context.Context, req *Request) (*Request, error)
	AfterResponseFunc func(ctx context.Context, req *Request, resp *Response) (*Response, error)
	OnErrorFunc       func(ctx context.Context, req *Request, err error) error
}

// BeforeRequest calls BeforeRequestFunc if set.
func (f MiddlewareFunc) BeforeRequest(ctx context.Context, req *Request) (*Request, error) {
	if f.BeforeRequestFunc != nil {
		return f.BeforeRequestFunc(ctx, req)
	}
	return req, nil
}

// AfterResponse calls AfterResponseFunc if set.
func (f MiddlewareFunc) AfterResponse(ctx context.Context, req *Request, resp *Response) (*Response, error) {
	if f.AfterResponseFunc != nil {
		return f.AfterResponseFunc(ctx, req, resp)
	}
	return resp, nil
}

// OnError calls OnErrorFunc if set.
func (f MiddlewareFunc) OnError(ctx context.Context, req *Request, err error) error {
	if f.OnErrorFunc != nil {
		return f.OnErrorFunc(ctx, req, err)
	}
	return err
}

// WrapWithMiddleware wraps a Client so every call passes through the given
// middleware. BeforeRequest hooks run in order, AfterResponse hooks in
// reverse order.
func WrapWithMiddleware(client Client, middleware ...Middleware) Client {
	if len(middleware) == 0 {
		return client
	}
	return &clientWithMiddleware{client: client, middleware: middleware}
}

type clientWithMiddleware struct {
	client     Client
	middleware []Middleware
}

func (c *clientWithMiddleware) before(ctx context.Context, req *Request) (*Request, error) {
	var err error
	for _, mw := range c.middleware {
		req, err = mw.BeforeRequest(ctx, req)
		if err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (c *clientWithMiddleware) onError(ctx context.Context, req *Request, err error) error {
	for _, mw := range c.middleware {
		err = mw.OnError(ctx, req, err)
		if err == nil {
			break
		}
	}
	return err
}

// Complete implements Client.
func (c *clientWithMiddleware) Complete(ctx context.Context, req *Request) (*Response, error) {
	req, err := c.before(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Complete(ctx, req)
	if err != nil {
		return nil, c.onError(ctx, req, err)
	}

	for i := len(c.middleware) - 1; i >= 0; i-- {
		resp, err = c.middleware[i].AfterResponse(ctx, req, resp)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// Stream implements Client. Streaming calls run the BeforeRequest and OnError
// hooks; AfterResponse does not apply to streams.
func (c *clientWithMiddleware) Stream(ctx context.Context, req *Request) (Stream, error) {
	req, err := c.before(ctx, req)
	if err != nil {
		return nil, err
	}

	stream, err := c.client.Stream(ctx, req)
	if err != nil {
		return nil, c.onError(ctx, req, err)
	}
	return stream, nil
}

var _ Client = (*clientWithMiddleware)(nil)
