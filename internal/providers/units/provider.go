package units

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/unitconv/internal/types"
	conv "github.com/GriffinCanCode/unitconv/internal/units"
)

// Provider implements unit conversion tools
type Provider struct {
	conversions *ConversionsOps
}

// Option configures a Provider
type Option func(*UnitOps)

// WithLogger sets the logger used for debug tracing (default: no-op)
func WithLogger(log *zap.Logger) Option {
	return func(o *UnitOps) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMetrics attaches a Prometheus collector
func WithMetrics(m *Metrics) Option {
	return func(o *UnitOps) {
		o.metrics = m
	}
}

// WithDefaultDecimals sets the precision used when a call omits "decimals"
func WithDefaultDecimals(decimals int) Option {
	return func(o *UnitOps) {
		o.decimals = decimals
	}
}

// NewProvider creates a unit conversion provider
func NewProvider(opts ...Option) *Provider {
	ops := &UnitOps{
		log:      zap.NewNop(),
		decimals: conv.DefaultDecimalPlaces,
	}
	for _, opt := range opts {
		opt(ops)
	}

	return &Provider{
		conversions: &ConversionsOps{UnitOps: ops},
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	capabilities := make([]string, 0, len(conv.Domains()))
	for _, d := range conv.Domains() {
		capabilities = append(capabilities, string(d))
	}

	return types.Service{
		ID:           "units",
		Name:         "Unit Conversion Service",
		Description:  "Convert values between units of length, mass, volume and temperature",
		Category:     types.CategoryUnits,
		Capabilities: capabilities,
		Tools:        p.conversions.GetTools(),
	}
}

// Execute routes a tool call to its handler
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params == nil {
		params = map[string]interface{}{}
	}

	p.conversions.log.Debug("execute", zap.String("tool", toolID))

	switch toolID {
	case "units.length":
		return p.conversions.Length(ctx, params, appCtx)
	case "units.mass":
		return p.conversions.Mass(ctx, params, appCtx)
	case "units.volume":
		return p.conversions.Volume(ctx, params, appCtx)
	case "units.temperature":
		return p.conversions.Temperature(ctx, params, appCtx)
	case "units.list":
		return p.conversions.List(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// ToolID maps a domain to its conversion tool ID
func ToolID(d conv.Domain) string {
	return "units." + string(d)
}
