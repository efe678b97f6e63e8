package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Output formats understood by the command-line tool.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputTOML = "toml"
)

// Config holds all command-line tool configuration.
type Config struct {
	Convert ConvertConfig
	Logging LogConfig
}

// ConvertConfig holds conversion defaults.
type ConvertConfig struct {
	Decimals int    `envconfig:"UNITCONV_DECIMALS" default:"2"`
	Output   string `envconfig:"UNITCONV_OUTPUT" default:"text"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Decimals: 2,
			Output:   OutputText,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	if err := ValidateOutput(c.Convert.Output); err != nil {
		return err
	}
	return nil
}

// ValidateOutput reports whether format is a known output format.
func ValidateOutput(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputYAML, OutputTOML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json, yaml or toml)", format)
}
