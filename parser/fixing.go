package parser

import (
	"context"
	"fmt"

	"github.com/aschepis/chainkit/chain"
	"github.com/aschepis/chainkit/llm"
)

// DefaultFixAttempts bounds model-assisted repair rounds.
const DefaultFixAttempts = 2

// fixing retries a failed parse by asking a model to repair the output.
type fixing struct {
	inner    chain.Runnable
	model    *llm.ChatModel
	attempts int
}

// Fixing wraps a parser so that when parsing fails, the model is asked to
// rewrite the bad output and the parse is retried, up to attempts repair
// rounds. An attempts value of zero or less uses DefaultFixAttempts.
func Fixing(inner chain.Runnable, model *llm.ChatModel, attempts int) chain.Runnable {
	if attempts <= 0 {
		attempts = DefaultFixAttempts
	}
	return &fixing{inner: inner, model: model, attempts: attempts}
}

func (f *fixing) Name() string {
	return "fixing[" + f.inner.Name() + "]"
}

func (f *fixing) Invoke(ctx context.Context, input any) (any, error) {
	out, err := f.inner.Invoke(ctx, input)
	if err == nil {
		return out, nil
	}

	text, textErr := TextOf(input)
	if textErr != nil {
		return nil, err
	}

	instructions := ""
	if instructed, ok := f.inner.(Instructed); ok {
		instructions = instructed.FormatInstructions()
	}

	for attempt := 0; attempt < f.attempts; attempt++ {
		repaired, repairErr := f.model.Generate(ctx, repairPrompt(text, instructions, err))
		if repairErr != nil {
			return nil, fmt.Errorf("repair attempt %d: %w", attempt+1, repairErr)
		}

		out, err = f.inner.Invoke(ctx, repaired)
		if err == nil {
			return out, nil
		}
		text = repaired
	}
	return nil, fmt.Errorf("output unparseable after %d repair attempts: %w", f.attempts, err)
}

func repairPrompt(badOutput, instructions string, parseErr error) string {
	p := "The following output could not be parsed:\n\n" + badOutput +
		"\n\nError: " + parseErr.Error() + "\n\n"
	if instructions != "" {
		p += instructions + "\n\n"
	}
	return p + "Rewrite the output so it parses. Respond with the corrected output only."
}
