package chain

import (
	"context"
	"fmt"
)

// Values is the dict-shaped payload passed between steps that operate on
// named fields (Parallel, Assign, Pick). It is a plain map so callers can
// build it with ordinary literals.
type Values = map[string]any

// Runnable is the unit of composition. Implementations must be safe for
// concurrent use: Parallel and Batch invoke the same Runnable from multiple
// goroutines.
type Runnable interface {
	// Name identifies the step in logs and error messages.
	Name() string

	// Invoke executes the step with the given input and returns its output.
	Invoke(ctx context.Context, input any) (any, error)
}

// funcRunnable wraps an ordinary function as a Runnable.
type funcRunnable struct {
	name string
	fn   func(ctx context.Context, input any) (any, error)
}

// Func wraps fn as a named Runnable step. It is the escape hatch for custom
// logic between library-provided steps.
func Func(name string, fn func(ctx context.Context, input any) (any, error)) Runnable {
	return &funcRunnable{name: name, fn: fn}
}

func (f *funcRunnable) Name() string { return f.name }

func (f *funcRunnable) Invoke(ctx context.Context, input any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := f.fn(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.name, err)
	}
	return out, nil
}

// passthrough returns its input unchanged.
type passthrough struct{}

// Passthrough returns a Runnable that echoes its input. It is used inside
// Parallel and Assign to keep the original payload alongside computed fields.
func Passthrough() Runnable { return passthrough{} }

func (passthrough) Name() string { return "passthrough" }

func (passthrough) Invoke(_ context.Context, input any) (any, error) {
	return input, nil
}

// AsValues coerces a step input into Values. Steps with dict-shaped contracts
// (Assign, Pick) use it to reject inputs of the wrong shape early.
func AsValues(input any) (Values, error) {
	switch v := input.(type) {
	case Values:
		return v, nil
	case nil:
		return Values{}, nil
	default:
		return nil, fmt.Errorf("expected map input, got %T", input)
	}
}
