// Command unitconv converts values between units from the command line.
//
// Usage:
//
//	unitconv length 1 km m
//	unitconv temperature --decimals 1 -- -40 C F
//	unitconv mass -o json 2 lb kg
//	unitconv units volume
//	unitconv tools -o yaml
//
// Environment Variables:
//   - UNITCONV_DECIMALS: default decimal places (default: 2)
//   - UNITCONV_OUTPUT: text, json, yaml or toml (default: text)
//   - LOG_LEVEL, LOG_DEV: logging on stderr
package main
