package units

// Request describes a single conversion.
type Request struct {
	Domain        Domain
	Value         float64
	From          string
	To            string
	DecimalPlaces int
}

// NewRequest builds a Request rounded to DefaultDecimalPlaces.
func NewRequest(d Domain, value float64, from, to string) Request {
	return Request{
		Domain:        d,
		Value:         value,
		From:          from,
		To:            to,
		DecimalPlaces: DefaultDecimalPlaces,
	}
}

// Convert runs req against the converter of its domain.
func Convert(req Request) (float64, error) {
	switch req.Domain {
	case Length:
		return ConvertLength(req.Value, req.From, req.To, req.DecimalPlaces)
	case Mass:
		return ConvertMass(req.Value, req.From, req.To, req.DecimalPlaces)
	case Volume:
		return ConvertVolume(req.Value, req.From, req.To, req.DecimalPlaces)
	case Temperature:
		return ConvertTemperature(req.Value, req.From, req.To, req.DecimalPlaces)
	}
	return 0, unknownDomain(string(req.Domain))
}

// ConvertLength converts value between length units (base: meter).
func ConvertLength(value float64, from, to string, decimalPlaces int) (float64, error) {
	return convertLinear(Length, lengthTable, value, from, to, decimalPlaces)
}

// ConvertMass converts value between mass units (base: gram).
func ConvertMass(value float64, from, to string, decimalPlaces int) (float64, error) {
	return convertLinear(Mass, massTable, value, from, to, decimalPlaces)
}

// ConvertVolume converts value between volume units (base: litre).
func ConvertVolume(value float64, from, to string, decimalPlaces int) (float64, error) {
	return convertLinear(Volume, volumeTable, value, from, to, decimalPlaces)
}

// convertLinear goes through the base unit: value*factor[from]/factor[to].
// The value is validated first, then the source symbol, then the target.
func convertLinear(d Domain, table Table, value float64, from, to string, decimalPlaces int) (float64, error) {
	if err := validateValue(value); err != nil {
		return 0, err
	}

	fromFactor, ok := table[from]
	if !ok {
		return 0, unsupported(SideSource, from, d)
	}
	toFactor, ok := table[to]
	if !ok {
		return 0, unsupported(SideDestination, to, d)
	}

	base := value * fromFactor
	return roundResult(base/toFactor, decimalPlaces)
}
