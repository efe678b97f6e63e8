package units

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	conv "github.com/GriffinCanCode/unitconv/internal/units"
)

// Outcome labels
const (
	OutcomeOK              = "ok"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeUnsupportedUnit = "unsupported_unit"
	OutcomeBadRequest      = "bad_request"
)

// Metrics holds the provider's Prometheus collectors
type Metrics struct {
	Conversions *prometheus.CounterVec
}

// NewMetrics registers the provider collectors on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unitconv_conversions_total",
				Help: "Total number of unit conversions by domain and outcome",
			},
			[]string{"domain", "outcome"},
		),
	}
}

// Observe counts one conversion attempt. Safe on a nil receiver.
func (m *Metrics) Observe(domain conv.Domain, err error) {
	if m == nil {
		return
	}
	m.Conversions.WithLabelValues(string(domain), outcome(err)).Inc()
}

// outcome maps a conversion error to its label. Errors outside the two
// input kinds, such as a missing parameter, count as bad_request.
func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case !conv.IsInputError(err):
		return OutcomeBadRequest
	case errors.Is(err, conv.ErrUnsupportedUnit):
		return OutcomeUnsupportedUnit
	default:
		return OutcomeInvalidInput
	}
}
