package chain

import (
	"context"
	"fmt"
	"strings"
)

// Sequence runs steps in order, feeding each step's output to the next. It is
// the pipe-operator analog: Seq(prompt, model, parser).
type Sequence struct {
	steps []Runnable
}

// Seq composes steps into a Sequence. Nested sequences are flattened so
// Seq(Seq(a, b), c) behaves exactly like Seq(a, b, c).
func Seq(steps ...Runnable) *Sequence {
	flat := make([]Runnable, 0, len(steps))
	for _, s := range steps {
		if inner, ok := s.(*Sequence); ok {
			flat = append(flat, inner.steps...)
			continue
		}
		flat = append(flat, s)
	}
	return &Sequence{steps: flat}
}

// Then returns a new Sequence with next appended. It allows fluent
// composition: chain.Seq(a).Then(b).Then(c).
func (s *Sequence) Then(next Runnable) *Sequence {
	steps := make([]Runnable, 0, len(s.steps)+1)
	steps = append(steps, s.steps...)
	return Seq(append(steps, next)...)
}

// Steps returns the flattened steps, for inspection and debugging.
func (s *Sequence) Steps() []Runnable { return s.steps }

// Name implements Runnable.
func (s *Sequence) Name() string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = step.Name()
	}
	return "seq[" + strings.Join(names, " | ") + "]"
}

// Invoke implements Runnable. The first failing step aborts the sequence and
// its error is returned unchanged (steps wrap their own errors).
func (s *Sequence) Invoke(ctx context.Context, input any) (any, error) {
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("empty sequence")
	}
	current := input
	for _, step := range s.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := step.Invoke(ctx, current)
		if err != nil {
			return nil, err
		}
		current = out
	}
	return current, nil
}

// Stream implements Streamer. All steps but the last run synchronously; the
// final step streams if it can, otherwise its output is yielded as a single
// chunk.
func (s *Sequence) Stream(ctx context.Context, input any) (Stream, error) {
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("empty sequence")
	}
	current := input
	for _, step := range s.steps[:len(s.steps)-1] {
		out, err := step.Invoke(ctx, current)
		if err != nil {
			return nil, err
		}
		current = out
	}
	return StreamText(ctx, s.steps[len(s.steps)-1], current)
}

var (
	_ Runnable = (*Sequence)(nil)
	_ Streamer = (*Sequence)(nil)
)
