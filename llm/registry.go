package llm

import (
	"fmt"
	"os"
	"sync"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
)

// Preference is a single provider/model preference. Callers list preferences
// in order and the registry picks the first one that is enabled and
// configured.
type Preference struct {
	Provider    string
	Model       string
	Temperature *float64
}

// ClientKey uniquely identifies a resolved client configuration. The config
// package turns a ClientKey into a concrete provider client.
type ClientKey struct {
	Provider     string
	Model        string
	APIKey       string // credential-based providers
	Host         string // ollama
	BaseURL      string // openai-compatible endpoints
	Organization string // openai
}

// ProviderConfig holds the raw provider settings the registry resolves from.
type ProviderConfig struct {
	AnthropicAPIKey string
	AnthropicModel  string
	OllamaHost      string
	OllamaModel     string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	OpenAIOrg       string
}

// ProviderRegistry selects a provider and resolves its credentials from
// config and environment variables.
type ProviderRegistry struct {
	mu      sync.RWMutex
	enabled map[string]bool
	config  *ProviderConfig
}

// NewProviderRegistry creates a registry over the given config with the given
// providers enabled.
func NewProviderRegistry(cfg *ProviderConfig, enabledProviders []string) *ProviderRegistry {
	enabled := make(map[string]bool, len(enabledProviders))
	for _, p := range enabledProviders {
		enabled[p] = true
	}
	return &ProviderRegistry{enabled: enabled, config: cfg}
}

// IsProviderEnabled reports whether provider is in the enabled set.
func (r *ProviderRegistry) IsProviderEnabled(provider string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[provider]
}

// IsProviderConfigured reports whether provider has the credentials it needs.
func (r *ProviderRegistry) IsProviderConfigured(provider string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isConfiguredLocked(provider)
}

// Resolve returns a ClientKey for the first preference whose provider is
// enabled and configured. With no preferences it falls back to the first
// enabled, configured provider with its default model.
func (r *ProviderRegistry) Resolve(preferences []Preference) (*ClientKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(preferences) > 0 {
		var attempted []string
		for _, pref := range preferences {
			attempted = append(attempted, pref.Provider)
			if !r.enabled[pref.Provider] || !r.isConfiguredLocked(pref.Provider) {
				continue
			}
			key, err := r.resolveKeyLocked(pref.Provider, pref.Model)
			if err != nil {
				continue
			}
			return key, nil
		}
		return nil, fmt.Errorf("no available provider from preferences %v", attempted)
	}

	for _, provider := range []string{ProviderOpenAI, ProviderAnthropic, ProviderOllama} {
		if !r.enabled[provider] || !r.isConfiguredLocked(provider) {
			continue
		}
		return r.resolveKeyLocked(provider, "")
	}
	return nil, fmt.Errorf("no enabled provider is configured")
}

// isConfiguredLocked must be called with r.mu held.
func (r *ProviderRegistry) isConfiguredLocked(provider string) bool {
	switch provider {
	case ProviderAnthropic:
		return r.anthropicAPIKey() != ""
	case ProviderOllama:
		// Ollama needs no credentials; the host has a default.
		return true
	case ProviderOpenAI:
		return r.openAIAPIKey() != ""
	default:
		return false
	}
}

// resolveKeyLocked must be called with r.mu held.
func (r *ProviderRegistry) resolveKeyLocked(provider, modelOverride string) (*ClientKey, error) {
	key := &ClientKey{Provider: provider, Model: modelOverride}

	switch provider {
	case ProviderAnthropic:
		apiKey := r.anthropicAPIKey()
		if apiKey == "" {
			return nil, fmt.Errorf("anthropic API key not configured")
		}
		key.APIKey = apiKey
		if key.Model == "" {
			key.Model = r.config.AnthropicModel
		}
		if key.Model == "" {
			key.Model = "claude-haiku-4-5"
		}

	case ProviderOllama:
		host := r.config.OllamaHost
		if host == "" {
			host = os.Getenv("OLLAMA_HOST")
		}
		if host == "" {
			host = "http://localhost:11434"
		}
		key.Host = host
		if key.Model == "" {
			key.Model = r.config.OllamaModel
		}
		if key.Model == "" {
			key.Model = os.Getenv("OLLAMA_MODEL")
		}
		if key.Model == "" {
			return nil, fmt.Errorf("ollama model not specified and no default configured")
		}

	case ProviderOpenAI:
		apiKey := r.openAIAPIKey()
		if apiKey == "" {
			return nil, fmt.Errorf("openai API key not configured")
		}
		key.APIKey = apiKey
		key.BaseURL = r.config.OpenAIBaseURL
		if key.BaseURL == "" {
			key.BaseURL = os.Getenv("OPENAI_BASE_URL")
		}
		key.Organization = r.config.OpenAIOrg
		if key.Model == "" {
			key.Model = r.config.OpenAIModel
		}
		if key.Model == "" {
			key.Model = "gpt-4o-mini"
		}

	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}

	return key, nil
}

func (r *ProviderRegistry) anthropicAPIKey() string {
	if r.config.AnthropicAPIKey != "" {
		return r.config.AnthropicAPIKey
	}
	return os.Getenv("ANTHROPIC_API_KEY")
}

func (r *ProviderRegistry) openAIAPIKey() string {
	if r.config.OpenAIAPIKey != "" {
		return r.config.OpenAIAPIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}
