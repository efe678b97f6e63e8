// Package logging builds the uber/zap loggers used by the command-line tool.
//
// Two modes:
//   - Production: JSON lines for machine parsing
//   - Development: colored console output for humans
//
// Output always goes to stderr; stdout is reserved for conversion results.
// The conversion library itself never logs.
//
// Example Usage:
//
//	logger := logging.NewOrNop(logging.Config{Level: "debug", Development: true})
//	logger.Debug("converted", zap.String("domain", "length"))
package logging
