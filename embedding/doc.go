// Package embedding turns text into vectors and compares them.
//
// An Embedder produces one vector per input text. Provider adapters cover the
// OpenAI and Ollama embedding endpoints; CosineSimilarity and Nearest do the
// usual vector math for small in-memory similarity searches, which is all the
// demos need.
package embedding
