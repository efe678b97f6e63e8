// Package units converts numeric values between units of measurement.
//
// Four independent domains are supported:
//   - length: m, km, cm, mm, µm, nm, mi, yd, ft, in (base: meter)
//   - mass: kg, g, mg, t, lb, oz (base: gram)
//   - volume: l, ml, gal, cup, oz, m³ (base: litre)
//   - temperature: C, F, K, R (Celsius, Fahrenheit, Kelvin, Réaumur)
//
// Length, mass and volume are linear: every symbol maps to a factor relative
// to the domain base unit and a conversion is value*factor[from]/factor[to].
// Temperature is affine, so it uses a table of per-pair formulas instead.
//
// Results are rounded half away from zero to the requested number of decimal
// places. Every function is pure and safe for concurrent use.
//
// Example Usage:
//
//	meters, err := units.ConvertLength(1, "km", "m", units.DefaultDecimalPlaces)
//	if errors.Is(err, units.ErrUnsupportedUnit) {
//		// bad symbol supplied by the caller
//	}
package units
