// Package config provides 12-factor configuration for the unitconv command.
//
// Configuration is loaded from environment variables with sensible defaults.
// Command-line flags override environment variables.
//
// Configuration Sections:
//   - Convert: default decimal places and output format
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("rounding to %d places\n", cfg.Convert.Decimals)
//
// Environment Variables:
//   - UNITCONV_DECIMALS, UNITCONV_OUTPUT
//   - LOG_LEVEL, LOG_DEV
package config
