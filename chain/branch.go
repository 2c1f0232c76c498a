package chain

import (
	"context"
	"strings"
)

// Predicate decides whether a branch case applies to an input.
type Predicate func(ctx context.Context, input any) bool

// Case pairs a predicate with the Runnable to execute when it matches.
type Case struct {
	When Predicate
	Then Runnable
}

// branch routes an input to the first matching case.
type branch struct {
	cases    []Case
	fallback Runnable
}

// Branch returns a Runnable that evaluates cases in order and invokes the
// first one whose predicate matches. When nothing matches, fallback runs; a
// nil fallback passes the input through unchanged.
func Branch(cases []Case, fallback Runnable) Runnable {
	if fallback == nil {
		fallback = Passthrough()
	}
	return &branch{cases: cases, fallback: fallback}
}

func (b *branch) Name() string {
	names := make([]string, len(b.cases))
	for i, c := range b.cases {
		names[i] = c.Then.Name()
	}
	return "branch[" + strings.Join(names, ",") + " else " + b.fallback.Name() + "]"
}

func (b *branch) Invoke(ctx context.Context, input any) (any, error) {
	for _, c := range b.cases {
		if c.When(ctx, input) {
			return c.Then.Invoke(ctx, input)
		}
	}
	return b.fallback.Invoke(ctx, input)
}
