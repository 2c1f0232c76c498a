package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// FakeEmbedder deterministically hashes words into small vectors so demos and
// tests run without a provider. Texts sharing words get similar vectors.
type FakeEmbedder struct {
	Dimensions int
}

// NewFake creates a FakeEmbedder with the given dimensionality (default 64).
func NewFake(dimensions int) *FakeEmbedder {
	if dimensions <= 0 {
		dimensions = 64
	}
	return &FakeEmbedder{Dimensions: dimensions}
}

// Embed implements Embedder.
func (f *FakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = f.vector(text)
	}
	return vectors, nil
}

func (f *FakeEmbedder) vector(text string) []float32 {
	vec := make([]float32, f.Dimensions)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'")
		if word == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[int(h.Sum32())%f.Dimensions]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec
}

var _ Embedder = (*FakeEmbedder)(nil)
