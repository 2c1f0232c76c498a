package embedding

import (
	"context"
	"fmt"
	"math"
)

// Embedder produces one vector per input text, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// CosineSimilarity returns the cosine of the angle between two vectors,
// in [-1, 1]. Vectors must have the same length and a zero vector yields 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Match is one scored candidate from Nearest.
type Match struct {
	Index int
	Text  string
	Score float64
}

// Nearest embeds the query and candidates and returns candidates ordered by
// descending cosine similarity to the query.
func Nearest(ctx context.Context, embedder Embedder, query string, candidates []string) ([]Match, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	vectors, err := embedder.Embed(ctx, append([]string{query}, candidates...))
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(candidates)+1 {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(candidates)+1)
	}

	queryVec := vectors[0]
	matches := make([]Match, len(candidates))
	for i, text := range candidates {
		score, err := CosineSimilarity(queryVec, vectors[i+1])
		if err != nil {
			return nil, err
		}
		matches[i] = Match{Index: i, Text: text, Score: score}
	}

	// Insertion sort keeps ties in input order.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Score > matches[j-1].Score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
	return matches, nil
}
