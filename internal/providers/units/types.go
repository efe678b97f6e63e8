package units

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/unitconv/internal/types"
	conv "github.com/GriffinCanCode/unitconv/internal/units"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts a float64 param. A present but non-numeric value
// yields conv.ErrInvalidInput.
func GetNumber(params map[string]interface{}, key string) (float64, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return 0, fmt.Errorf("%s parameter required", key)
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, conv.ErrInvalidInput
	}
}

// GetString extracts a non-empty string param
func GetString(params map[string]interface{}, key string) (string, error) {
	val, ok := params[key].(string)
	if !ok || val == "" {
		return "", fmt.Errorf("%s parameter required", key)
	}
	return val, nil
}

// maxDecimals bounds the decimals param; float64 carries no more than this.
const maxDecimals = 300

// GetDecimals extracts the optional integer "decimals" param
func GetDecimals(params map[string]interface{}, fallback int) (int, error) {
	if _, ok := params["decimals"]; !ok {
		return fallback, nil
	}

	d, err := GetNumber(params, "decimals")
	if err != nil {
		return 0, fmt.Errorf("decimals must be a number")
	}
	if d != math.Trunc(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("decimals must be an integer, got %v", d)
	}
	if math.Abs(d) > maxDecimals {
		return 0, fmt.Errorf("decimals must be between -%d and %d, got %v", maxDecimals, maxDecimals, d)
	}
	return int(d), nil
}
