package units

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultDecimalPlaces is the precision used when a caller has no preference.
const DefaultDecimalPlaces = 2

// Round rounds x half away from zero to the given number of decimal places.
// A negative count rounds to tens, hundreds and so on.
func Round(x float64, decimalPlaces int) float64 {
	return scalar.Round(x, decimalPlaces)
}

// validateValue rejects NaN and infinities.
func validateValue(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrInvalidInput
	}
	return nil
}

// roundResult rounds a converted value. A finite input can still overflow
// once scaled, which is reported as invalid input rather than returned as Inf.
func roundResult(x float64, decimalPlaces int) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: result out of range", ErrInvalidInput)
	}
	return Round(x, decimalPlaces), nil
}
