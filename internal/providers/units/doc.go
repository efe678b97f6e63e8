// Package units exposes unit conversion as a tool provider.
//
// Tools:
//   - units.length: convert between m, km, cm, mm, µm, nm, mi, yd, ft, in
//   - units.mass: convert between kg, g, mg, t, lb, oz
//   - units.volume: convert between l, ml, gal, cup, oz, m³
//   - units.temperature: convert between C, F, K, R
//   - units.list: list the unit symbols of a domain
//
// Conversion tools take "value", "from", "to" and an optional "decimals"
// (default 2). Bad input never produces a Go error: it is reported as a
// failed Result so callers can surface the message directly, the same way
// every provider in this repository behaves.
//
// Every execution is counted in unitconv_conversions_total by domain and
// outcome when a Metrics collector is attached.
//
// Example Usage:
//
//	provider := units.NewProvider(units.WithLogger(log))
//	result, err := provider.Execute(ctx, "units.length", map[string]interface{}{
//		"value": 1.0, "from": "km", "to": "m",
//	}, nil)
package units
