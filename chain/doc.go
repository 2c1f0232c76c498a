// Package chain provides small composition primitives for building LLM
// pipelines out of individually invocable steps.
//
// Everything composable implements the Runnable interface: a named step that
// takes an input and produces an output. Steps are combined with Seq
// (sequential pipelines), Parallel (concurrent fan-out), Assign/Pick
// (dict-shaped data flow), and Branch (predicate routing). Cross-cutting
// execution concerns are layered on with Retry, Fallbacks, and Batch.
//
// # Core Concepts
//
//  1. Runnable: anything with Invoke(ctx, input) (output, error). Prompt
//     templates, chat models, and output parsers all implement it, so a full
//     prompt -> model -> parser pipeline is just Seq(tmpl, model, parser).
//
//  2. Values: map[string]any flowing between dict-shaped steps. Parallel and
//     Assign produce Values; Pick selects a subset of one.
//
//  3. Streaming: steps that can produce output incrementally implement the
//     optional Streamer interface. Seq streams through its final step; for
//     everything else StreamOnce adapts a plain Invoke into a one-chunk
//     stream.
//
// Usage Example
//
//	pipeline := chain.Seq(tmpl, model, parser.Str{})
//	out, err := pipeline.Invoke(ctx, chain.Values{"topic": "go"})
package chain
