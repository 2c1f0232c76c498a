package parser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/aschepis/chainkit/chain"
)

// list splits model output into items.
type list struct {
	separator string
}

// List returns a parser that splits output on the separator (default comma)
// and trims each item. Empty items are dropped.
func List(separator string) chain.Runnable {
	if separator == "" {
		separator = ","
	}
	return &list{separator: separator}
}

func (l *list) Name() string { return "list_parser" }

// FormatInstructions tells the model how to delimit items.
func (l *list) FormatInstructions() string {
	return fmt.Sprintf(
		"Respond with a %q separated list of values, and nothing else.", l.separator)
}

func (l *list) Invoke(_ context.Context, input any) (any, error) {
	text, err := TextOf(input)
	if err != nil {
		return nil, err
	}

	items := lo.FilterMap(strings.Split(text, l.separator), func(item string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(item)
		return trimmed, trimmed != ""
	})
	return items, nil
}

// boolean maps yes/no style output to a bool.
type boolean struct{}

// Boolean returns a parser that reads a yes/no answer.
func Boolean() chain.Runnable { return boolean{} }

func (boolean) Name() string { return "boolean_parser" }

// FormatInstructions constrains the model to a one-word answer.
func (boolean) FormatInstructions() string {
	return "Answer with exactly one word: YES or NO."
}

func (boolean) Invoke(_ context.Context, input any) (any, error) {
	text, err := TextOf(input)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.Trim(strings.TrimSpace(text), ".!")) {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false":
		return false, nil
	default:
		return nil, fmt.Errorf("expected a yes/no answer, got %q", text)
	}
}

// datetime parses a timestamp from model output.
type datetime struct {
	layout string
}

// Datetime returns a parser that reads a timestamp in the given layout;
// an empty layout means RFC 3339.
func Datetime(layout string) chain.Runnable {
	if layout == "" {
		layout = time.RFC3339
	}
	return &datetime{layout: layout}
}

func (d *datetime) Name() string { return "datetime_parser" }

// FormatInstructions names the expected layout by example.
func (d *datetime) FormatInstructions() string {
	return fmt.Sprintf(
		"Respond with a single datetime in the format %q, and nothing else.", d.layout)
}

func (d *datetime) Invoke(_ context.Context, input any) (any, error) {
	text, err := TextOf(input)
	if err != nil {
		return nil, err
	}

	ts, err := time.Parse(d.layout, strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("invalid datetime in model output: %w", err)
	}
	return ts, nil
}
