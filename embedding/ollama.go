package embedding

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/aschepis/chainkit/llm"
)

// DefaultOllamaModel is used when no embedding model is configured.
const DefaultOllamaModel = "nomic-embed-text"

// OllamaEmbedder calls a local Ollama server's embed endpoint.
type OllamaEmbedder struct {
	client *api.Client
	model  string
}

// NewOllama creates an Ollama embedder. An empty host falls back to the
// OLLAMA_HOST environment or the local default.
func NewOllama(host, model string) (*OllamaEmbedder, error) {
	if model == "" {
		model = DefaultOllamaModel
	}

	var client *api.Client
	if host == "" {
		c, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, llm.NewProviderError("ollama client setup failed", err)
		}
		client = c
	} else {
		if !strings.Contains(host, "://") {
			host = "http://" + host
		}
		base, err := url.Parse(host)
		if err != nil {
			return nil, llm.NewInvalidRequestError("invalid ollama host", err)
		}
		client = api.NewClient(base, http.DefaultClient)
	}
	return &OllamaEmbedder{client: client, model: model}, nil
}

// Embed implements Embedder.
func (e *OllamaEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: texts,
	})
	if err != nil {
		return nil, llm.NewProviderError("ollama embed request failed", err)
	}
	return resp.Embeddings, nil
}

var _ Embedder = (*OllamaEmbedder)(nil)
