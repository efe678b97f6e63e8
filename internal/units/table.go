package units

import (
	"errors"
	"fmt"
	"sort"
)

// Table maps a unit symbol to how many base units one of it is worth.
type Table map[string]float64

var (
	// Base unit: meter.
	lengthTable = Table{
		"m":  1,
		"km": 1000,
		"cm": 0.01,
		"mm": 0.001,
		"µm": 1e-6,
		"nm": 1e-9,
		"mi": 1609.344,
		"yd": 0.9144,
		"ft": 0.3048,
		"in": 0.0254,
	}

	// Base unit: gram.
	massTable = Table{
		"kg": 1000,
		"g":  1,
		"mg": 0.001,
		"t":  1000000,
		"lb": 453.59237,
		"oz": 28.3495231,
	}

	// Base unit: litre. oz here is a fluid ounce and unrelated to massTable's.
	volumeTable = Table{
		"l":   1,
		"ml":  0.001,
		"gal": 4.546,
		"cup": 0.237,
		"oz":  0.028,
		"m³":  1.000,
	}
)

// linearTables holds the tables of every linear domain.
var linearTables = map[Domain]Table{
	Length: lengthTable,
	Mass:   massTable,
	Volume: volumeTable,
}

func init() {
	for d, t := range linearTables {
		if err := t.Validate(); err != nil {
			panic(fmt.Sprintf("units: %s table: %v", d, err))
		}
	}
}

// TableFor returns a copy of the factor table of a linear domain.
// Temperature has no factor table and reports ok=false.
func TableFor(d Domain) (Table, bool) {
	t, ok := linearTables[d]
	if !ok {
		return nil, false
	}
	out := make(Table, len(t))
	for sym, f := range t {
		out[sym] = f
	}
	return out, true
}

// Symbols returns the sorted unit symbols of a domain.
func Symbols(d Domain) []string {
	if d == Temperature {
		syms := make([]string, 0, len(temperatureScales))
		for _, s := range temperatureScales {
			syms = append(syms, string(s))
		}
		sort.Strings(syms)
		return syms
	}

	t := linearTables[d]
	syms := make([]string, 0, len(t))
	for sym := range t {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// Validate checks that every factor is finite and strictly positive and that
// at least one symbol carries the base factor 1.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("unit table is empty")
	}

	for sym, f := range t {
		if sym == "" {
			return errors.New("unit table contains an empty symbol")
		}
		if validateValue(f) != nil || f <= 0 {
			return fmt.Errorf("unit %s has invalid factor %v", sym, f)
		}
	}
	if len(t.BaseUnits()) == 0 {
		return errors.New("unit table has no base unit")
	}
	return nil
}

// BaseUnits returns the sorted symbols whose factor is exactly 1.
func (t Table) BaseUnits() []string {
	var syms []string
	for sym, f := range t {
		if f == 1 {
			syms = append(syms, sym)
		}
	}
	sort.Strings(syms)
	return syms
}
