// Package parser turns raw model output into structured Go values.
//
// # Core Concepts
//
// 1. Every parser implements the chain step interface, so a parser is just
// the last step of a sequence: prompt | model | parser.
//
// 2. Parsers accept either a *llm.Response or a plain string, so they work
// directly on model output without an adapter step in between.
//
// 3. Parsers that expect a specific output shape expose FormatInstructions,
// a text block to embed in the prompt telling the model what to emit.
//
// 4. Fixing wraps another parser and asks a model to repair output that
// failed to parse, bounded by an attempt budget.
package parser
