package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_URL", "LLM_PROVIDER", "LLM_API_KEY", "LLM_BASE_URL",
		"LLM_MODEL", "LLM_TIMEOUT_SECONDS", "LLM_MAX_RETRIES", "LLM_MAX_TOKENS",
		"EMBEDDINGS_API_KEY", "PINECONE_API_KEY", "PINECONE_INDEX_NAME",
	} {
		// t.Setenv registers the restore; the variable itself must be absent
		// for the default to apply.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LLMProvider != "openai" {
		t.Errorf("expected default provider openai, got %q", cfg.LLMProvider)
	}
	if cfg.LLMBaseURL != "https://api.deepseek.com/v1" {
		t.Errorf("unexpected default base URL %q", cfg.LLMBaseURL)
	}
	if cfg.LLMModel != "deepseek-chat" {
		t.Errorf("unexpected default model %q", cfg.LLMModel)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.LLMTimeout)
	}
	if cfg.LLMMaxRetries != 2 {
		t.Errorf("expected 2 retries, got %d", cfg.LLMMaxRetries)
	}
}

func TestLoadOverridesAndEmbeddingsFallback(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_API_KEY", "key-123")
	t.Setenv("LLM_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLMProvider != "anthropic" {
		t.Errorf("expected anthropic, got %q", cfg.LLMProvider)
	}
	if cfg.LLMTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.LLMTimeout)
	}
	if cfg.EmbeddingsAPIKey != "key-123" {
		t.Errorf("embeddings key should fall back to the LLM key, got %q", cfg.EmbeddingsAPIKey)
	}

	t.Setenv("EMBEDDINGS_API_KEY", "emb-456")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EmbeddingsAPIKey != "emb-456" {
		t.Errorf("explicit embeddings key should win, got %q", cfg.EmbeddingsAPIKey)
	}
}

func TestLoadRejectsUnparseableIntegers(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"LLM_TIMEOUT_SECONDS", "abc"},
		{"LLM_MAX_RETRIES", "two"},
		{"LLM_MAX_TOKENS", "1k"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected an error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:          "8080",
			LLMProvider:   "openai",
			LLMTimeout:    30 * time.Second,
			LLMMaxRetries: 2,
			LLMMaxTokens:  1024,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"anthropic provider", func(c *Config) { c.LLMProvider = "anthropic" }, false},
		{"bad provider", func(c *Config) { c.LLMProvider = "bard" }, true},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"zero timeout", func(c *Config) { c.LLMTimeout = 0 }, true},
		{"negative retries", func(c *Config) { c.LLMMaxRetries = -1 }, true},
		{"zero max tokens", func(c *Config) { c.LLMMaxTokens = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
