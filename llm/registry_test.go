package llm

import (
	"testing"
)

func TestProviderRegistry_IsProviderEnabled(t *testing.T) {
	registry := NewProviderRegistry(&ProviderConfig{}, []string{ProviderAnthropic, ProviderOllama})

	if !registry.IsProviderEnabled(ProviderAnthropic) {
		t.Error("anthropic should be enabled")
	}
	if !registry.IsProviderEnabled(ProviderOllama) {
		t.Error("ollama should be enabled")
	}
	if registry.IsProviderEnabled(ProviderOpenAI) {
		t.Error("openai should not be enabled")
	}
}

func TestProviderRegistry_IsProviderConfigured(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	registry := NewProviderRegistry(&ProviderConfig{}, []string{ProviderAnthropic})
	if registry.IsProviderConfigured(ProviderAnthropic) {
		t.Error("anthropic should not be configured without API key")
	}

	registry = NewProviderRegistry(&ProviderConfig{AnthropicAPIKey: "test-key"}, []string{ProviderAnthropic})
	if !registry.IsProviderConfigured(ProviderAnthropic) {
		t.Error("anthropic should be configured with API key")
	}

	// Ollama needs no credentials.
	registry = NewProviderRegistry(&ProviderConfig{}, []string{ProviderOllama})
	if !registry.IsProviderConfigured(ProviderOllama) {
		t.Error("ollama should always be configured")
	}
}

func TestProviderRegistry_ConfiguredFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	registry := NewProviderRegistry(&ProviderConfig{}, []string{ProviderOpenAI})
	if !registry.IsProviderConfigured(ProviderOpenAI) {
		t.Error("openai should pick up the key from the environment")
	}

	key, err := registry.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if key.APIKey != "env-key" {
		t.Errorf("expected env API key, got %q", key.APIKey)
	}
}

func TestProviderRegistry_ResolveWithPreferences(t *testing.T) {
	registry := NewProviderRegistry(&ProviderConfig{
		AnthropicAPIKey: "test-key",
		OllamaModel:     "mistral",
	}, []string{ProviderAnthropic, ProviderOllama})

	key, err := registry.Resolve([]Preference{
		{Provider: ProviderAnthropic, Model: "claude-sonnet-4-20250514"},
		{Provider: ProviderOllama, Model: "mistral"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if key.Provider != ProviderAnthropic {
		t.Errorf("expected provider anthropic, got %q", key.Provider)
	}
	if key.Model != "claude-sonnet-4-20250514" {
		t.Errorf("expected preferred model, got %q", key.Model)
	}
}

func TestProviderRegistry_ResolveSkipsUnavailable(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	// openai is preferred but has no key; anthropic should win.
	registry := NewProviderRegistry(&ProviderConfig{AnthropicAPIKey: "test-key"}, []string{ProviderOpenAI, ProviderAnthropic})

	key, err := registry.Resolve([]Preference{
		{Provider: ProviderOpenAI},
		{Provider: ProviderAnthropic},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if key.Provider != ProviderAnthropic {
		t.Errorf("expected fallback to anthropic, got %q", key.Provider)
	}
	if key.Model == "" {
		t.Error("expected a default model to be filled in")
	}
}

func TestProviderRegistry_ResolveNoneAvailable(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	registry := NewProviderRegistry(&ProviderConfig{}, []string{ProviderAnthropic})
	if _, err := registry.Resolve([]Preference{{Provider: ProviderAnthropic}}); err == nil {
		t.Error("expected an error when no provider is available")
	}
}
