package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/aschepis/chainkit/embedding"
	"github.com/aschepis/chainkit/llm"
	llmanthropic "github.com/aschepis/chainkit/llm/anthropic"
	llmollama "github.com/aschepis/chainkit/llm/ollama"
	llmopenai "github.com/aschepis/chainkit/llm/openai"
)

// OfflineEnv switches client construction to a scripted fake when set, so
// every example runs without provider credentials.
const OfflineEnv = "CHAINKIT_OFFLINE"

// Offline reports whether fake clients should be used instead of providers.
func Offline() bool {
	v := os.Getenv(OfflineEnv)
	return v != "" && v != "0" && v != "false"
}

// providerConfig flattens the YAML config into registry settings.
func (c *Config) providerConfig() *llm.ProviderConfig {
	return &llm.ProviderConfig{
		AnthropicAPIKey: c.Anthropic.APIKey,
		AnthropicModel:  c.Anthropic.Model,
		OllamaHost:      c.Ollama.Host,
		OllamaModel:     c.Ollama.Model,
		OpenAIAPIKey:    c.OpenAI.APIKey,
		OpenAIBaseURL:   c.OpenAI.BaseURL,
		OpenAIModel:     c.OpenAI.Model,
		OpenAIOrg:       c.OpenAI.Organization,
	}
}

// BuildClient resolves the first available provider and constructs its
// client, wrapped with request logging. Preferences may be nil, which uses
// the configured provider order.
func BuildClient(cfg *Config, logger zerolog.Logger, preferences ...llm.Preference) (llm.Client, string, error) {
	if Offline() {
		logger.Info().Msg("Offline mode, using scripted fake client")
		return llm.WrapWithMiddleware(llm.NewFakeClient(), llm.NewLoggingMiddleware(logger)), "fake-model", nil
	}

	registry := llm.NewProviderRegistry(cfg.providerConfig(), cfg.Providers)
	key, err := registry.Resolve(preferences)
	if err != nil {
		return nil, "", err
	}

	var client llm.Client
	switch key.Provider {
	case llm.ProviderAnthropic:
		client, err = llmanthropic.New(key.APIKey, key.Model)
	case llm.ProviderOpenAI:
		client, err = llmopenai.New(key.APIKey, key.BaseURL, key.Model, key.Organization)
	case llm.ProviderOllama:
		client, err = llmollama.New(key.Host, key.Model)
	default:
		return nil, "", fmt.Errorf("unsupported provider %q", key.Provider)
	}
	if err != nil {
		return nil, "", fmt.Errorf("build %s client: %w", key.Provider, err)
	}

	logger.Info().
		Str("provider", key.Provider).
		Str("model", key.Model).
		Msg("Resolved model provider")

	return llm.WrapWithMiddleware(client, llm.NewLoggingMiddleware(logger)), key.Model, nil
}

// BuildModel builds a ChatModel on top of BuildClient, applying the
// configured request defaults.
func BuildModel(cfg *Config, logger zerolog.Logger, opts ...llm.ModelOption) (*llm.ChatModel, error) {
	client, model, err := BuildClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	base := []llm.ModelOption{llm.WithModel(model)}
	if cfg.Defaults.System != "" {
		base = append(base, llm.WithSystem(cfg.Defaults.System))
	}
	if cfg.Defaults.Temperature != nil {
		base = append(base, llm.WithTemperature(*cfg.Defaults.Temperature))
	}
	if cfg.Defaults.MaxTokens > 0 {
		base = append(base, llm.WithMaxTokens(cfg.Defaults.MaxTokens))
	}
	return llm.NewChatModel(client, append(base, opts...)...), nil
}

// BuildEmbedder constructs an embedder for the first enabled provider that
// supports embeddings. Offline mode returns a deterministic fake.
func BuildEmbedder(cfg *Config, logger zerolog.Logger) (embedding.Embedder, error) {
	if Offline() {
		logger.Info().Msg("Offline mode, using fake embedder")
		return embedding.NewFake(0), nil
	}

	registry := llm.NewProviderRegistry(cfg.providerConfig(), cfg.Providers)
	for _, provider := range cfg.Providers {
		if !registry.IsProviderConfigured(provider) {
			continue
		}
		switch provider {
		case llm.ProviderOpenAI:
			apiKey := cfg.OpenAI.APIKey
			if apiKey == "" {
				apiKey = os.Getenv("OPENAI_API_KEY")
			}
			return embedding.NewOpenAI(apiKey, cfg.OpenAI.BaseURL, cfg.OpenAI.EmbeddingModel), nil
		case llm.ProviderOllama:
			return embedding.NewOllama(cfg.Ollama.Host, cfg.Ollama.EmbeddingModel)
		}
	}
	return nil, fmt.Errorf("no embedding provider available")
}
