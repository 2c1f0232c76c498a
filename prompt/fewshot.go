package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/aschepis/chainkit/chain"
)

// FewShot renders a prefix, a list of formatted examples and a suffix.
// ExampleTemplate formats each example map; Suffix receives the caller's
// input variables.
type FewShot struct {
	Prefix          string
	Examples        []chain.Values
	ExampleTemplate *Template
	Suffix          *Template
	Separator       string
}

// Format renders the full few-shot prompt.
func (f *FewShot) Format(values chain.Values) (string, error) {
	if f.ExampleTemplate == nil {
		return "", fmt.Errorf("few-shot prompt needs an example template")
	}
	if f.Suffix == nil {
		return "", fmt.Errorf("few-shot prompt needs a suffix template")
	}

	sep := f.Separator
	if sep == "" {
		sep = "\n\n"
	}

	parts := make([]string, 0, len(f.Examples)+2)
	if f.Prefix != "" {
		parts = append(parts, f.Prefix)
	}
	for i, example := range f.Examples {
		rendered, err := f.ExampleTemplate.Format(example)
		if err != nil {
			return "", fmt.Errorf("example %d: %w", i, err)
		}
		parts = append(parts, rendered)
	}

	suffix, err := f.Suffix.Format(values)
	if err != nil {
		return "", err
	}
	parts = append(parts, suffix)

	return strings.Join(parts, sep), nil
}

// Name implements chain.Runnable.
func (f *FewShot) Name() string {
	return fmt.Sprintf("few_shot[%d examples]", len(f.Examples))
}

// Invoke implements chain.Runnable.
func (f *FewShot) Invoke(_ context.Context, input any) (any, error) {
	values, err := chain.AsValues(input)
	if err != nil {
		return nil, fmt.Errorf("few-shot prompt: %w", err)
	}
	return f.Format(values)
}

var _ chain.Runnable = (*FewShot)(nil)
