// Package memory stores conversation history between model calls.
//
// # Core Concepts
//
// 1. History is the read/append interface chains use to carry prior turns
// into the next prompt.
//
// 2. Buffer keeps every message in process memory; Window keeps only the most
// recent turns, which bounds prompt growth in long conversations.
//
// 3. Store persists history in SQLite, one session per session ID, so
// conversations survive process restarts. Schema changes ship as embedded
// migrations and are applied on open.
package memory
