// Package llm provides a provider-neutral abstraction for hosted Large
// Language Model APIs.
//
// The pipelines in this repository only ever exchange text, so the types
// here are deliberately small: a Message has a role and text, a Request
// carries messages plus sampling parameters, and a Response carries the
// generated text and token usage.
//
// # Core Concepts
//
//  1. Client: Complete() for whole responses, Stream() for incremental ones.
//     Provider adapters (llm/openai, llm/anthropic, llm/ollama) implement it
//     and translate provider errors into the neutral Error type.
//
//  2. ChatModel: a Client bound to a model name and sampling parameters. It
//     implements chain.Runnable, so it slots directly into pipelines between
//     a prompt template and an output parser.
//
//  3. Middleware: cross-cutting request decoration (logging, custom retries)
//     via WrapWithMiddleware, without touching provider adapters.
//
//  4. Errors: the Error type classifies provider failures (rate limits,
//     invalid requests, network) and marks which ones are retryable.
//
// Usage Example
//
//	client, _ := openai.New(apiKey, "", "gpt-4o-mini", "")
//	model := llm.NewChatModel(client, llm.WithModel("gpt-4o-mini"), llm.WithTemperature(0.7))
//	resp, err := model.Generate(ctx, "Write a haiku about Go")
package llm
