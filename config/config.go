package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration, read once at startup.
type Config struct {
	Port        string
	DatabaseURL string

	LLMProvider   string // "openai" (any OpenAI-compatible endpoint) or "anthropic"
	LLMAPIKey     string
	LLMBaseURL    string
	LLMModel      string
	LLMTimeout    time.Duration
	LLMMaxRetries int
	LLMMaxTokens  int

	// Embeddings use an OpenAI-compatible endpoint regardless of the chat
	// provider; the key defaults to LLM_API_KEY.
	EmbeddingsAPIKey string

	PineconeAPIKey    string
	PineconeIndexName string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	timeoutSeconds, err := getEnvInt("LLM_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	maxRetries, err := getEnvInt("LLM_MAX_RETRIES", 2)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	maxTokens, err := getEnvInt("LLM_MAX_TOKENS", 1024)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DB_URL", ""),
		LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
		LLMAPIKey:         getEnv("LLM_API_KEY", ""),
		LLMBaseURL:        getEnv("LLM_BASE_URL", "https://api.deepseek.com/v1"),
		LLMModel:          getEnv("LLM_MODEL", "deepseek-chat"),
		LLMTimeout:        time.Duration(timeoutSeconds) * time.Second,
		LLMMaxRetries:     maxRetries,
		LLMMaxTokens:      maxTokens,
		PineconeAPIKey:    getEnv("PINECONE_API_KEY", ""),
		PineconeIndexName: getEnv("PINECONE_INDEX_NAME", "safetypath-resources-index"),
	}

	cfg.EmbeddingsAPIKey = getEnv("EMBEDDINGS_API_KEY", cfg.LLMAPIKey)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration consistency. The LLM API key is checked in
// main rather than here so tests can construct partial configs.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.LLMProvider != "openai" && c.LLMProvider != "anthropic" {
		return fmt.Errorf("LLM_PROVIDER must be \"openai\" or \"anthropic\", got %q", c.LLMProvider)
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT_SECONDS must be > 0")
	}
	if c.LLMMaxRetries < 0 {
		return fmt.Errorf("LLM_MAX_RETRIES must be >= 0")
	}
	if c.LLMMaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}
