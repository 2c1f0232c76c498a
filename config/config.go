package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AnthropicConfig represents configuration for the Anthropic provider.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key,omitempty"` // Anthropic API key
	Model  string `yaml:"model,omitempty"`   // Default model name
}

// OllamaConfig represents configuration for the Ollama provider.
type OllamaConfig struct {
	Host           string `yaml:"host,omitempty"`            // Ollama host (default: "http://localhost:11434")
	Model          string `yaml:"model,omitempty"`           // Default model name
	EmbeddingModel string `yaml:"embedding_model,omitempty"` // Default embedding model name
}

// OpenAIConfig represents configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey         string `yaml:"api_key,omitempty"`         // OpenAI API key
	BaseURL        string `yaml:"base_url,omitempty"`        // Custom base URL (default: official API)
	Model          string `yaml:"model,omitempty"`           // Default model name
	EmbeddingModel string `yaml:"embedding_model,omitempty"` // Default embedding model name
	Organization   string `yaml:"organization,omitempty"`    // Organization ID
}

// DefaultsConfig holds request defaults applied to every model call unless
// the call overrides them.
type DefaultsConfig struct {
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   int64    `yaml:"max_tokens,omitempty"`
	System      string   `yaml:"system,omitempty"`
}

// Config is the full application configuration.
type Config struct {
	// Providers lists the enabled providers in preference order.
	Providers []string `yaml:"providers,omitempty"`

	Anthropic AnthropicConfig `yaml:"anthropic,omitempty"`
	Ollama    OllamaConfig    `yaml:"ollama,omitempty"`
	OpenAI    OpenAIConfig    `yaml:"openai,omitempty"`

	Defaults DefaultsConfig `yaml:"defaults,omitempty"`

	// HistoryPath is the SQLite file used for persisted conversation
	// history. Empty means in-memory only.
	HistoryPath string `yaml:"history_path,omitempty"`
}

// GetConfigPath returns the config file path. Can be overridden via the
// CHAINKIT_CONFIG environment variable.
func GetConfigPath() string {
	if envPath := os.Getenv("CHAINKIT_CONFIG"); envPath != "" {
		return expandPath(envPath)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.chainkit/config.yaml"
	}
	return filepath.Join(homeDir, ".chainkit", "config.yaml")
}

// LoadEnv loads a .env file from the working directory when present.
// A missing file is not an error; real environment variables win.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the config file at path, merged over built-in defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	expandedPath := expandPath(path)
	data, err := os.ReadFile(expandedPath) //#nosec 304 -- intentional file read for config
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config from %q: %w", expandedPath, err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := mergo.Merge(&cfg, fileConfig, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	expandedPath := expandPath(path)

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Providers: []string{"openai", "anthropic", "ollama"},
		Ollama: OllamaConfig{
			Host:  "http://localhost:11434",
			Model: "llama3.2:3b",
		},
		OpenAI: OpenAIConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku-4-5",
		},
		Defaults: DefaultsConfig{
			MaxTokens: 1024,
		},
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
