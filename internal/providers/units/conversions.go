package units

import (
	"context"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/unitconv/internal/types"
	conv "github.com/GriffinCanCode/unitconv/internal/units"
)

// UnitOps carries the collaborators shared by the tool handlers
type UnitOps struct {
	log      *zap.Logger
	metrics  *Metrics
	decimals int
}

// ConversionsOps handles unit conversions
type ConversionsOps struct {
	*UnitOps
}

var conversionParams = []types.Parameter{
	{Name: "value", Type: "number", Description: "Value to convert", Required: true},
	{Name: "from", Type: "string", Description: "Source unit symbol", Required: true},
	{Name: "to", Type: "string", Description: "Target unit symbol", Required: true},
	{Name: "decimals", Type: "number", Description: "Decimal places in the result (default: 2)", Required: false},
}

// GetTools returns conversion tool definitions
func (c *ConversionsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "units.length",
			Name:        "Convert Length",
			Description: "Convert length between m, km, cm, mm, µm, nm, mi, yd, ft, in",
			Parameters:  conversionParams,
			Returns:     "number",
		},
		{
			ID:          "units.mass",
			Name:        "Convert Mass",
			Description: "Convert mass between kg, g, mg, t, lb, oz",
			Parameters:  conversionParams,
			Returns:     "number",
		},
		{
			ID:          "units.volume",
			Name:        "Convert Volume",
			Description: "Convert volume between l, ml, gal, cup, oz, m³",
			Parameters:  conversionParams,
			Returns:     "number",
		},
		{
			ID:          "units.temperature",
			Name:        "Convert Temperature",
			Description: "Convert temperature between Celsius (C), Fahrenheit (F), Kelvin (K) and Réaumur (R)",
			Parameters:  conversionParams,
			Returns:     "number",
		},
		{
			ID:          "units.list",
			Name:        "List Units",
			Description: "List the unit symbols of a domain and, for linear domains, their factors to the base unit",
			Parameters: []types.Parameter{
				{Name: "domain", Type: "string", Description: "length, mass, volume or temperature", Required: true},
			},
			Returns: "array",
		},
	}
}

// Length converts between length units
func (c *ConversionsOps) Length(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.convert(ctx, conv.Length, params, appCtx)
}

// Mass converts between mass units
func (c *ConversionsOps) Mass(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.convert(ctx, conv.Mass, params, appCtx)
}

// Volume converts between volume units
func (c *ConversionsOps) Volume(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.convert(ctx, conv.Volume, params, appCtx)
}

// Temperature converts between temperature scales
func (c *ConversionsOps) Temperature(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.convert(ctx, conv.Temperature, params, appCtx)
}

// List returns the unit symbols of a domain
func (c *ConversionsOps) List(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, err := GetString(params, "domain")
	if err != nil {
		return Failure(err.Error())
	}
	domain, err := conv.ParseDomain(name)
	if err != nil {
		return Failure(err.Error())
	}

	data := map[string]interface{}{
		"domain": string(domain),
		"units":  conv.Symbols(domain),
	}
	if factors, ok := conv.TableFor(domain); ok {
		data["factors"] = map[string]float64(factors)
	}
	return Success(data)
}

func (c *ConversionsOps) convert(ctx context.Context, domain conv.Domain, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	fields := logFields(domain, appCtx)

	req, err := c.request(domain, params)
	var result float64
	if err == nil {
		result, err = conv.Convert(req)
	}
	c.metrics.Observe(domain, err)

	if err != nil {
		c.log.Debug("conversion rejected", append(fields, zap.Error(err))...)
		return Failure(err.Error())
	}

	c.log.Debug("converted", append(fields,
		zap.Float64("value", req.Value),
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Float64("result", result))...)

	return Success(map[string]interface{}{
		"result":   result,
		"domain":   string(domain),
		"value":    req.Value,
		"from":     req.From,
		"to":       req.To,
		"decimals": req.DecimalPlaces,
	})
}

// request builds a conv.Request from raw tool params
func (c *ConversionsOps) request(domain conv.Domain, params map[string]interface{}) (conv.Request, error) {
	value, err := GetNumber(params, "value")
	if err != nil {
		return conv.Request{}, err
	}
	from, err := GetString(params, "from")
	if err != nil {
		return conv.Request{}, err
	}
	to, err := GetString(params, "to")
	if err != nil {
		return conv.Request{}, err
	}
	decimals, err := GetDecimals(params, c.decimals)
	if err != nil {
		return conv.Request{}, err
	}

	return conv.Request{
		Domain:        domain,
		Value:         value,
		From:          from,
		To:            to,
		DecimalPlaces: decimals,
	}, nil
}

func logFields(domain conv.Domain, appCtx *types.Context) []zap.Field {
	fields := []zap.Field{zap.String("domain", string(domain))}
	if appCtx == nil {
		return fields
	}
	if appCtx.Caller != nil {
		fields = append(fields, zap.String("caller", *appCtx.Caller))
	}
	if appCtx.RequestID != nil {
		fields = append(fields, zap.String("request_id", *appCtx.RequestID))
	}
	return fields
}
