package parser

import (
	"context"
	"strings"

	"github.com/aschepis/chainkit/chain"
)

// str extracts trimmed text from model output.
type str struct{}

// Str returns a parser that yields the model's text, whitespace-trimmed.
func Str() chain.Runnable { return str{} }

func (str) Name() string { return "str_parser" }

func (str) Invoke(_ context.Context, input any) (any, error) {
	text, err := TextOf(input)
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(text), nil
}
