package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		LogLevel: "info",
		OCR:      OCRConfig{Languages: []string{"kor", "eng"}},
		Keywords: KeywordConfig{MaxFeatures: 10},
		LLM: LLMConfig{
			BaseURL:     "https://api.openai.com",
			Model:       "gpt-3.5-turbo",
			MaxTokens:   500,
			Temperature: 0.7,
			MaxAttempts: 3,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:   "empty log level allowed",
			mutate: func(c *Config) { c.LogLevel = "" },
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: "invalid log_level",
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Extract.Workers = -1 },
			wantErr: "extract.workers",
		},
		{
			name:    "negative max features",
			mutate:  func(c *Config) { c.Keywords.MaxFeatures = -5 },
			wantErr: "keywords.max_features",
		},
		{
			name:    "zero attempts",
			mutate:  func(c *Config) { c.LLM.MaxAttempts = 0 },
			wantErr: "llm.max_attempts",
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.LLM.Temperature = 2.5 },
			wantErr: "llm.temperature",
		},
		{
			name:    "zero max tokens",
			mutate:  func(c *Config) { c.LLM.MaxTokens = 0 },
			wantErr: "llm.max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
