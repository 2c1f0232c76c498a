package prompt

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/aschepis/chainkit/chain"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Template is a string template with {var} placeholders. The zero value is
// not usable; construct with New or MustTemplate.
type Template struct {
	text      string
	variables []string
	partials  chain.Values
}

// New parses text and records its placeholder variables.
func New(text string) (*Template, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("prompt template is empty")
	}

	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	vars := lo.Uniq(lo.Map(matches, func(m []string, _ int) string { return m[1] }))
	sort.Strings(vars)

	return &Template{text: text, variables: vars}, nil
}

// MustTemplate is New but panics on error. Intended for package-level
// template literals.
func MustTemplate(text string) *Template {
	t, err := New(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Variables returns the placeholder names in sorted order, including any
// already satisfied by partials.
func (t *Template) Variables() []string {
	return append([]string(nil), t.variables...)
}

// InputVariables returns the placeholders still required at format time.
func (t *Template) InputVariables() []string {
	return lo.Filter(t.variables, func(v string, _ int) bool {
		_, ok := t.partials[v]
		return !ok
	})
}

// Partial returns a copy of the template with some variables pre-filled.
func (t *Template) Partial(values chain.Values) *Template {
	merged := make(chain.Values, len(t.partials)+len(values))
	for k, v := range t.partials {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	return &Template{text: t.text, variables: t.variables, partials: merged}
}

// Format renders the template. Every input variable must be present either in
// values or in the template's partials; a missing variable is an error. Keys
// in values that the template never references are ignored, so a shared
// Values map can flow through a pipeline where each template consumes only
// its own fields.
func (t *Template) Format(values chain.Values) (string, error) {
	out := t.text
	for _, name := range t.variables {
		v, ok := values[name]
		if !ok {
			v, ok = t.partials[name]
		}
		if !ok {
			return "", fmt.Errorf("prompt variable %q missing", name)
		}
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprintf("%v", v))
	}
	return out, nil
}

// Name implements chain.Runnable.
func (t *Template) Name() string {
	return "prompt[" + strings.Join(t.variables, ",") + "]"
}

// Invoke implements chain.Runnable, rendering the template to a string.
func (t *Template) Invoke(_ context.Context, input any) (any, error) {
	values, err := chain.AsValues(input)
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return t.Format(values)
}

var _ chain.Runnable = (*Template)(nil)
