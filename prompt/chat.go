package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/aschepis/chainkit/chain"
	"github.com/aschepis/chainkit/llm"
)

// entry is one slot in a ChatTemplate: either a templated message for a fixed
// role, or a placeholder that splices history messages in.
type entry struct {
	role        llm.Role
	template    *Template
	placeholder string
}

// ChatTemplate renders an ordered list of chat messages. Build it with the
// System, Human, AI and History options.
type ChatTemplate struct {
	entries []entry
}

// ChatOption adds one entry to a ChatTemplate.
type ChatOption func(*ChatTemplate) error

// System adds a system message rendered from text.
func System(text string) ChatOption {
	return roleEntry(llm.RoleSystem, text)
}

// Human adds a user message rendered from text.
func Human(text string) ChatOption {
	return roleEntry(llm.RoleUser, text)
}

// AI adds an assistant message rendered from text.
func AI(text string) ChatOption {
	return roleEntry(llm.RoleAssistant, text)
}

// History adds a placeholder that splices the []llm.Message stored under the
// given input variable into the conversation. A missing or nil variable
// splices nothing.
func History(variable string) ChatOption {
	return func(ct *ChatTemplate) error {
		if variable == "" {
			return fmt.Errorf("history placeholder needs a variable name")
		}
		ct.entries = append(ct.entries, entry{placeholder: variable})
		return nil
	}
}

func roleEntry(role llm.Role, text string) ChatOption {
	return func(ct *ChatTemplate) error {
		tmpl, err := New(text)
		if err != nil {
			return fmt.Errorf("%s message: %w", role, err)
		}
		ct.entries = append(ct.entries, entry{role: role, template: tmpl})
		return nil
	}
}

// NewChat builds a ChatTemplate from ordered message options.
func NewChat(opts ...ChatOption) (*ChatTemplate, error) {
	if len(opts) == 0 {
		return nil, fmt.Errorf("chat template needs at least one message")
	}
	ct := &ChatTemplate{}
	for _, opt := range opts {
		if err := opt(ct); err != nil {
			return nil, err
		}
	}
	return ct, nil
}

// MustChat is NewChat but panics on error.
func MustChat(opts ...ChatOption) *ChatTemplate {
	ct, err := NewChat(opts...)
	if err != nil {
		panic(err)
	}
	return ct
}

// InputVariables returns the variables required at format time, history
// placeholders included, in entry order without duplicates.
func (ct *ChatTemplate) InputVariables() []string {
	seen := map[string]struct{}{}
	var vars []string
	add := func(v string) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			vars = append(vars, v)
		}
	}
	for _, e := range ct.entries {
		if e.placeholder != "" {
			add(e.placeholder)
			continue
		}
		for _, v := range e.template.InputVariables() {
			add(v)
		}
	}
	return vars
}

// Format renders the message list.
func (ct *ChatTemplate) Format(values chain.Values) ([]llm.Message, error) {
	messages := make([]llm.Message, 0, len(ct.entries))
	for _, e := range ct.entries {
		if e.placeholder != "" {
			history, err := historyMessages(values[e.placeholder])
			if err != nil {
				return nil, fmt.Errorf("history %q: %w", e.placeholder, err)
			}
			messages = append(messages, history...)
			continue
		}

		text, err := e.template.Format(values)
		if err != nil {
			return nil, err
		}
		messages = append(messages, llm.Message{Role: e.role, Text: text})
	}
	return messages, nil
}

// historyMessages coerces a history variable into messages.
func historyMessages(v any) ([]llm.Message, error) {
	switch h := v.(type) {
	case nil:
		return nil, nil
	case []llm.Message:
		return h, nil
	case llm.Message:
		return []llm.Message{h}, nil
	default:
		return nil, fmt.Errorf("unsupported history type %T", v)
	}
}

// Name implements chain.Runnable.
func (ct *ChatTemplate) Name() string {
	return "chat_prompt[" + strings.Join(ct.InputVariables(), ",") + "]"
}

// Invoke implements chain.Runnable, rendering the messages.
func (ct *ChatTemplate) Invoke(_ context.Context, input any) (any, error) {
	values, err := chain.AsValues(input)
	if err != nil {
		return nil, fmt.Errorf("chat prompt: %w", err)
	}
	return ct.Format(values)
}

var _ chain.Runnable = (*ChatTemplate)(nil)
