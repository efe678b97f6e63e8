package units

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure kinds. Both are caller mistakes.
var (
	ErrInvalidInput    = errors.New("the value provided is not numerical")
	ErrUnsupportedUnit = errors.New("unsupported unit")
)

// Side identifies which end of a conversion a unit symbol belongs to.
type Side string

const (
	SideSource      Side = "source"
	SideDestination Side = "destination"
)

// UnsupportedUnitError reports a symbol that is not part of a domain.
type UnsupportedUnitError struct {
	Side   Side
	Symbol string
	Domain Domain
}

func (e *UnsupportedUnitError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s unit %s is not supported for %s", e.Side, e.Symbol, e.Domain)
}

// Is lets errors.Is(err, ErrUnsupportedUnit) match any UnsupportedUnitError.
func (e *UnsupportedUnitError) Is(target error) bool {
	return target == ErrUnsupportedUnit
}

// IsInputError reports whether err was caused by bad caller input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrUnsupportedUnit)
}

func unsupported(side Side, symbol string, d Domain) error {
	return &UnsupportedUnitError{Side: side, Symbol: symbol, Domain: d}
}
