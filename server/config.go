package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
)

// Config is the chat server configuration. Values resolve in order: built-in
// defaults, then the optional TOML file, then the environment. The API key
// comes from the environment only; it never lives in the file and never
// appears in logs.
type Config struct {
	// Address to listen on (e.g., ":8080")
	ListenAddr string `toml:"listen_addr"`

	// Base URL of the completions provider
	OpenAIBaseURL string `toml:"openai_base_url"`

	// APIKey authenticates against the provider. Environment only.
	APIKey string `toml:"-"`

	// Model serves both conversation flows.
	Model string `toml:"model"`

	// FallbackModel is what the health check tries when Model fails.
	// Empty disables the fallback attempt.
	FallbackModel string `toml:"fallback_model"`

	// MaxTokens caps the length of every generated reply.
	MaxTokens int `toml:"max_tokens"`

	// RequestTimeoutSeconds bounds a single upstream call.
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`

	// DBPath is the path to the SQLite usage ledger.
	// Empty keeps the ledger in memory.
	DBPath string `toml:"db_path"`

	// ExtraLegalTerms extends the built-in practice-area vocabulary.
	ExtraLegalTerms []string `toml:"extra_legal_terms"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ListenAddr:            ":8080",
		OpenAIBaseURL:         openai.DefaultBaseURL,
		Model:                 "gpt-4o-search-preview",
		FallbackModel:         "gpt-4o-mini-search-preview",
		MaxTokens:             1500,
		RequestTimeoutSeconds: 90,
	}
}

// LoadConfig resolves the configuration. An empty path means no file.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	config.APIKey = os.Getenv("OPENAI_API_KEY")

	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		config.OpenAIBaseURL = v
	}
	if v := os.Getenv("ATTORNEYBOT_LISTEN_ADDR"); v != "" {
		config.ListenAddr = v
	}
	if v := os.Getenv("ATTORNEYBOT_MODEL"); v != "" {
		config.Model = v
	}
	if v := os.Getenv("ATTORNEYBOT_DB"); v != "" {
		config.DBPath = v
	}
	if v := os.Getenv("ATTORNEYBOT_MAX_TOKENS"); v != "" {
		maxTokens, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATTORNEYBOT_MAX_TOKENS %q: %w", v, err)
		}
		config.MaxTokens = maxTokens
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.OpenAIBaseURL == "" {
		return fmt.Errorf("openai_base_url must not be empty")
	}
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive")
	}
	return nil
}

// RequestTimeout returns the per-call timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
