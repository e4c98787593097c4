// Package config provides configuration management for hfsearch.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingEndpoint          = errors.New("hub.endpoint is required")
	ErrInvalidDefaultLimit      = errors.New("search.default_limit must be at least 1")
	ErrInvalidMaxLimit          = errors.New("search.max_limit must be at least search.default_limit")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrInvalidExportFormat      = errors.New("export.format must be one of: csv, txt, json")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// TokenEnvVar is the environment variable consulted when hub.token is unset.
const TokenEnvVar = "HF_TOKEN"

// Config represents the complete hfsearch configuration.
type Config struct {
	Hub     HubConfig     `yaml:"hub"`
	Search  SearchConfig  `yaml:"search"`
	Retry   RetryPolicy   `yaml:"retry"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// HubConfig contains hub API connection settings.
type HubConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Token     string `yaml:"token"`
	UserAgent string `yaml:"user_agent"`
}

// SearchConfig contains search request defaults.
type SearchConfig struct {
	DefaultLimit int  `yaml:"default_limit"`
	MaxLimit     int  `yaml:"max_limit"`
	FullTags     bool `yaml:"full_tags"`
}

// RetryPolicy defines retry behavior for hub requests.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// ExportConfig defines export output behavior.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is provided.
// The hub token falls back to the HF_TOKEN environment variable.
func DefaultConfig() *Config {
	return &Config{
		Hub: HubConfig{
			Endpoint:  "https://huggingface.co",
			Token:     os.Getenv(TokenEnvVar),
			UserAgent: "hfsearch/1.0",
		},
		Search: SearchConfig{
			DefaultLimit: 10,
			MaxLimit:     1000,
		},
		Retry: RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        30,
		},
		Export: ExportConfig{
			Dir:    ".",
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file, layered over defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// A token in the file wins over the environment; an empty file value
	// keeps the environment fallback applied by DefaultConfig.
	if cfg.Hub.Token == "" {
		cfg.Hub.Token = os.Getenv(TokenEnvVar)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Hub.Endpoint == "" {
		return ErrMissingEndpoint
	}

	if c.Search.DefaultLimit < 1 {
		return ErrInvalidDefaultLimit
	}

	if c.Search.MaxLimit < c.Search.DefaultLimit {
		return ErrInvalidMaxLimit
	}

	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	switch c.Export.Format {
	case "csv", "txt", "json":
	default:
		return ErrInvalidExportFormat
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Endpoint: %s, DefaultLimit: %d, MaxAttempts: %d}",
		c.Hub.Endpoint,
		c.Search.DefaultLimit,
		c.Retry.MaxAttempts,
	)
}
