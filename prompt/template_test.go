package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aschepis/chainkit/chain"
)

func TestTemplate_Format(t *testing.T) {
	tmpl := MustTemplate("Tell me a {adjective} joke about {topic}.")

	out, err := tmpl.Format(chain.Values{"adjective": "funny", "topic": "chickens"})
	require.NoError(t, err)
	assert.Equal(t, "Tell me a funny joke about chickens.", out)
}

func TestTemplate_Variables(t *testing.T) {
	tmpl := MustTemplate("{a} and {b} and {a} again")
	assert.Equal(t, []string{"a", "b"}, tmpl.Variables())
}

func TestTemplate_MissingVariable(t *testing.T) {
	tmpl := MustTemplate("hello {name}")
	_, err := tmpl.Format(chain.Values{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestTemplate_IgnoresUnreferencedValues(t *testing.T) {
	tmpl := MustTemplate("Hello {name}")

	// Pipelines hand every step the full Values map; fields meant for other
	// steps must not break formatting.
	out, err := tmpl.Format(chain.Values{"name": "Ada", "topic": "for a later step"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada", out)
}

func TestTemplate_NonStringValue(t *testing.T) {
	tmpl := MustTemplate("count: {n}")
	out, err := tmpl.Format(chain.Values{"n": 3})
	require.NoError(t, err)
	assert.Equal(t, "count: 3", out)
}

func TestTemplate_Partial(t *testing.T) {
	tmpl := MustTemplate("{greeting}, {name}!")
	partial := tmpl.Partial(chain.Values{"greeting": "hello"})

	assert.Equal(t, []string{"name"}, partial.InputVariables())

	out, err := partial.Format(chain.Values{"name": "ada"})
	require.NoError(t, err)
	assert.Equal(t, "hello, ada!", out)

	// The original template is unchanged.
	assert.Equal(t, []string{"greeting", "name"}, tmpl.InputVariables())
}

func TestTemplate_PartialOverride(t *testing.T) {
	tmpl := MustTemplate("{x}").Partial(chain.Values{"x": "default"})

	out, err := tmpl.Format(chain.Values{"x": "override"})
	require.NoError(t, err)
	assert.Equal(t, "override", out)
}

func TestTemplate_EmptyText(t *testing.T) {
	_, err := New("   ")
	assert.Error(t, err)
}

func TestTemplate_Invoke(t *testing.T) {
	tmpl := MustTemplate("hi {name}")

	out, err := tmpl.Invoke(t.Context(), chain.Values{"name": "ada"})
	require.NoError(t, err)
	assert.Equal(t, "hi ada", out)

	_, err = tmpl.Invoke(t.Context(), "not a map")
	assert.Error(t, err)
}
