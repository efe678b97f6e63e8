package units

// Scale is a temperature scale symbol.
type Scale string

const (
	Celsius    Scale = "C"
	Fahrenheit Scale = "F"
	Kelvin     Scale = "K"
	Reaumur    Scale = "R"
)

var temperatureScales = []Scale{Celsius, Fahrenheit, Kelvin, Reaumur}

type scalePair struct {
	from, to Scale
}

// temperatureFormulas covers every ordered pair of scales, identities
// included. The arithmetic order of each formula is significant for
// floating-point results and must not be rearranged.
var temperatureFormulas = map[scalePair]func(float64) float64{
	{Celsius, Celsius}:    func(v float64) float64 { return v },
	{Celsius, Fahrenheit}: func(v float64) float64 { return v*1.8 + 32 },
	{Celsius, Kelvin}:     func(v float64) float64 { return v + 273.15 },
	{Celsius, Reaumur}:    func(v float64) float64 { return v * 0.8 },

	{Fahrenheit, Celsius}:    func(v float64) float64 { return (v - 32) * (5.0 / 9) },
	{Fahrenheit, Fahrenheit}: func(v float64) float64 { return v },
	{Fahrenheit, Kelvin}:     func(v float64) float64 { return (v-32)*(5.0/9) + 273.15 },
	{Fahrenheit, Reaumur}:    func(v float64) float64 { return (v - 32) * (4.0 / 9) },

	{Kelvin, Celsius}:    func(v float64) float64 { return v - 273.15 },
	{Kelvin, Fahrenheit}: func(v float64) float64 { return (v-273.15)*1.8 + 32 },
	{Kelvin, Kelvin}:     func(v float64) float64 { return v },
	{Kelvin, Reaumur}:    func(v float64) float64 { return (v - 273.15) * 4 / 5 },

	{Reaumur, Celsius}:    func(v float64) float64 { return v * 1.25 },
	{Reaumur, Fahrenheit}: func(v float64) float64 { return v*2.25 + 32 },
	{Reaumur, Kelvin}:     func(v float64) float64 { return v*1.25 + 273.15 },
	{Reaumur, Reaumur}:    func(v float64) float64 { return v },
}

func parseScale(symbol string) (Scale, bool) {
	for _, s := range temperatureScales {
		if string(s) == symbol {
			return s, true
		}
	}
	return "", false
}

// ConvertTemperature converts value between Celsius (C), Fahrenheit (F),
// Kelvin (K) and Réaumur (R).
func ConvertTemperature(value float64, from, to string, decimalPlaces int) (float64, error) {
	if err := validateValue(value); err != nil {
		return 0, err
	}

	src, ok := parseScale(from)
	if !ok {
		return 0, unsupported(SideSource, from, Temperature)
	}
	dst, ok := parseScale(to)
	if !ok {
		return 0, unsupported(SideDestination, to, Temperature)
	}

	formula, ok := temperatureFormulas[scalePair{src, dst}]
	if !ok {
		// unreachable while the table stays total over temperatureScales
		return 0, unsupported(SideDestination, to, Temperature)
	}
	return roundResult(formula(value), decimalPlaces)
}
