package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/aschepis/chainkit/chain"
)

// Field describes one expected key in a structured response.
type Field struct {
	Name        string
	Type        string // "string", "number", "boolean", "array", "object"
	Description string
	Required    bool
}

// ResponseSchema declares the shape a model should emit.
type ResponseSchema struct {
	Fields []Field
}

// structured parses JSON output against a declared schema.
type structured struct {
	schema ResponseSchema
}

// Structured returns a parser that decodes JSON output and checks the
// declared required fields are present.
func Structured(schema ResponseSchema) interface {
	chain.Runnable
	Instructed
} {
	return &structured{schema: schema}
}

// Instructed is implemented by parsers that can tell the model what shape to
// emit.
type Instructed interface {
	FormatInstructions() string
}

func (s *structured) Name() string {
	names := make([]string, len(s.schema.Fields))
	for i, f := range s.schema.Fields {
		names[i] = f.Name
	}
	return "structured_parser[" + strings.Join(names, ",") + "]"
}

// FormatInstructions renders a prompt fragment describing the schema.
func (s *structured) FormatInstructions() string {
	var b strings.Builder
	b.WriteString("Respond with a JSON object, and nothing else, using these keys:\n")
	for _, f := range s.schema.Fields {
		typ := f.Type
		if typ == "" {
			typ = "string"
		}
		b.WriteString(fmt.Sprintf("  %q (%s)", f.Name, typ))
		if f.Description != "" {
			b.WriteString(": " + f.Description)
		}
		if !f.Required {
			b.WriteString(" [optional]")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *structured) Invoke(_ context.Context, input any) (any, error) {
	text, err := TextOf(input)
	if err != nil {
		return nil, err
	}

	var out chain.Values
	if err := json.Unmarshal([]byte(stripFences(text)), &out); err != nil {
		return nil, fmt.Errorf("invalid JSON in model output: %w", err)
	}

	var missing []string
	for _, f := range s.schema.Fields {
		if !f.Required {
			continue
		}
		if _, ok := out[f.Name]; !ok {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("model output missing required fields: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
