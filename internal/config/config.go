// Package config defines the application configuration and its loading
// from files, environment variables and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config is the complete configuration for the summary application. It is
// loaded once at startup and treated as immutable for the process lifetime.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Extraction settings
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract" json:"extract"`

	// OCR settings
	OCR OCRConfig `mapstructure:"ocr" yaml:"ocr" json:"ocr"`

	// Keyword analysis settings
	Keywords KeywordConfig `mapstructure:"keywords" yaml:"keywords" json:"keywords"`

	// Remote summarization settings
	LLM LLMConfig `mapstructure:"llm" yaml:"llm" json:"llm"`
}

// ExtractConfig contains PDF extraction settings.
type ExtractConfig struct {
	// Workers bounds the per-page image extraction pool (0 = NumCPU).
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`
	// SaveDir, when set, receives extracted images as files.
	SaveDir string `mapstructure:"save_dir" yaml:"save_dir" json:"save_dir"`
}

// OCRConfig contains recognition settings.
type OCRConfig struct {
	// Languages passed to the recognizer, in preference order.
	Languages []string `mapstructure:"languages" yaml:"languages" json:"languages"`
}

// KeywordConfig contains keyword-analysis settings.
type KeywordConfig struct {
	MaxFeatures int `mapstructure:"max_features" yaml:"max_features" json:"max_features"`
}

// LLMConfig contains the remote summarization service settings.
type LLMConfig struct {
	BaseURL     string        `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
	APIKey      string        `mapstructure:"api_key" yaml:"api_key" json:"-"`
	Model       string        `mapstructure:"model" yaml:"model" json:"model"`
	MaxTokens   int           `mapstructure:"max_tokens" yaml:"max_tokens" json:"max_tokens"`
	Temperature float64       `mapstructure:"temperature" yaml:"temperature" json:"temperature"`
	MaxAttempts int           `mapstructure:"max_attempts" yaml:"max_attempts" json:"max_attempts"`
	RetryDelay  time.Duration `mapstructure:"retry_delay" yaml:"retry_delay" json:"retry_delay"`
	// Timeout is the overall deadline across all attempts (0 = none).
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Extract.Workers < 0 {
		return fmt.Errorf("extract.workers must not be negative, got %d", c.Extract.Workers)
	}
	if c.Keywords.MaxFeatures < 0 {
		return fmt.Errorf("keywords.max_features must not be negative, got %d", c.Keywords.MaxFeatures)
	}
	if c.LLM.MaxAttempts < 1 {
		return fmt.Errorf("llm.max_attempts must be at least 1, got %d", c.LLM.MaxAttempts)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be in [0, 2], got %v", c.LLM.Temperature)
	}
	if c.LLM.MaxTokens < 1 {
		return fmt.Errorf("llm.max_tokens must be at least 1, got %d", c.LLM.MaxTokens)
	}
	return nil
}
