package llm

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// loggingMiddleware logs every model call with a request id, timing, and
// token usage.
type loggingMiddleware struct {
	logger zerolog.Logger

	mu     sync.Mutex
	starts map[string]time.Time
}

// NewLoggingMiddleware returns middleware that logs requests and responses
// through logger. Each request gets a uuid so its log lines correlate.
func NewLoggingMiddleware(logger zerolog.Logger) Middleware {
	return &loggingMiddleware{
		logger: logger.With().Str("component", "llm").Logger(),
		starts: make(map[string]time.Time),
	}
}

// BeforeRequest implements Middleware.
func (l *loggingMiddleware) BeforeRequest(ctx context.Context, req *Request) (*Request, error) {
	id := uuid.NewString()

	l.mu.Lock()
	l.starts[id] = time.Now()
	l.mu.Unlock()

	l.logger.Debug().
		Str("request_id", id).
		Str("model", req.Model).
		Int("messages", len(req.Messages)).
		Bool("json_mode", req.JSONMode).
		Msg("Model request")

	clone := *req
	clone.requestID = id
	return &clone, nil
}

// AfterResponse implements Middleware.
func (l *loggingMiddleware) AfterResponse(ctx context.Context, req *Request, resp *Response) (*Response, error) {
	event := l.logger.Debug().
		Str("request_id", req.requestID).
		Str("model", req.Model).
		Str("stop_reason", resp.StopReason)
	if start, ok := l.takeStart(req.requestID); ok {
		event = event.Dur("elapsed", time.Since(start))
	}
	if resp.Usage != nil {
		event = event.
			Int64("input_tokens", resp.Usage.InputTokens).
			Int64("output_tokens", resp.Usage.OutputTokens)
	}
	event.Msg("Model response")
	return resp, nil
}

// OnError implements Middleware.
func (l *loggingMiddleware) OnError(ctx context.Context, req *Request, err error) error {
	l.takeStart(req.requestID)
	l.logger.Warn().
		Str("request_id", req.requestID).
		Str("model", req.Model).
		Err(err).
		Msg("Model request failed")
	return err
}

func (l *loggingMiddleware) takeStart(id string) (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	start, ok := l.starts[id]
	if ok {
		delete(l.starts, id)
	}
	return start, ok
}
