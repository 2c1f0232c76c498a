package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name    string   `json:"name" jsonschema:"description=Full name"`
	Age     int      `json:"age"`
	Hobbies []string `json:"hobbies,omitempty"`
}

func TestTyped_Parse(t *testing.T) {
	p := NewTyped[person]("person")

	out, err := p.Invoke(t.Context(), `{"name": "Ada Lovelace", "age": 36, "hobbies": ["math"]}`)
	require.NoError(t, err)

	got, ok := out.(person)
	require.True(t, ok, "expected a person, got %T", out)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, 36, got.Age)
	assert.Equal(t, []string{"math"}, got.Hobbies)
}

func TestTyped_Fenced(t *testing.T) {
	p := NewTyped[person]("person")

	got, err := p.Parse("```json\n{\"name\": \"Grace\", \"age\": 85}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Name)
}

func TestTyped_Invalid(t *testing.T) {
	p := NewTyped[person]("person")
	_, err := p.Parse("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "person")
}

func TestTyped_FormatInstructions(t *testing.T) {
	text := NewTyped[person]("person").FormatInstructions()

	assert.Contains(t, text, "JSON schema")
	assert.Contains(t, text, `"name"`)
	assert.Contains(t, text, `"age"`)
	assert.Contains(t, text, "Full name")
}

func TestTyped_DefaultName(t *testing.T) {
	assert.Equal(t, "typed_parser[typed]", NewTyped[person]("").Name())
}
