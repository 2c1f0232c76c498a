package parser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/aschepis/chainkit/chain"
)

// Typed parses JSON model output into a struct of type T. Format instructions
// carry the JSON schema derived from T, so struct tags and jsonschema tags
// shape what the model is asked to emit.
type Typed[T any] struct {
	name string
}

// NewTyped builds a typed parser for T. The name appears in step names and
// error messages.
func NewTyped[T any](name string) *Typed[T] {
	if name == "" {
		name = "typed"
	}
	return &Typed[T]{name: name}
}

// Name implements chain.Runnable.
func (p *Typed[T]) Name() string {
	return "typed_parser[" + p.name + "]"
}

// FormatInstructions renders the JSON schema for T as a prompt fragment.
func (p *Typed[T]) FormatInstructions() string {
	var zero T
	reflector := jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	schema := reflector.Reflect(&zero)

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		// Reflection of a plain struct does not fail in practice.
		return "Respond with a JSON object, and nothing else."
	}
	return fmt.Sprintf(
		"Respond with a JSON object, and nothing else, matching this JSON schema:\n%s\n", data)
}

// Parse decodes text into a value of type T.
func (p *Typed[T]) Parse(text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(stripFences(text)), &out); err != nil {
		return out, fmt.Errorf("invalid %s JSON in model output: %w", p.name, err)
	}
	return out, nil
}

// Invoke implements chain.Runnable.
func (p *Typed[T]) Invoke(_ context.Context, input any) (any, error) {
	text, err := TextOf(input)
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

var _ chain.Runnable = (*Typed[struct{}])(nil)
var _ Instructed = (*Typed[struct{}])(nil)
