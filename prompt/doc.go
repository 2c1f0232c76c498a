// Package prompt builds model inputs from templates.
//
// # Core Concepts
//
// 1. Template renders a single string from named variables using {var}
// placeholders. Templates declare their input variables up front so missing
// values fail loudly at format time rather than silently rendering holes.
//
// 2. ChatTemplate renders a full message list. Each entry templates one
// message role; a history placeholder splices previously exchanged messages
// into the middle of the conversation.
//
// 3. FewShot renders a preamble, a set of formatted examples, and a suffix,
// which is the usual shape for in-context learning prompts.
//
// All three implement the chain step interface, so they compose directly with
// models and parsers.
//
// Usage Example
//
//	tmpl := prompt.MustTemplate("Tell me a {adjective} joke about {topic}.")
//	text, err := tmpl.Format(chain.Values{
//		"adjective": "funny",
//		"topic":     "chickens",
//	})
package prompt
