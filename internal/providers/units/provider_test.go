package units

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/unitconv/internal/testutil"
	"github.com/GriffinCanCode/unitconv/internal/types"
	conv "github.com/GriffinCanCode/unitconv/internal/units"
)

func newTestProvider(t *testing.T, opts ...Option) (*Provider, *Metrics) {
	t.Helper()
	metrics := NewMetrics(prometheus.NewRegistry())
	return NewProvider(append([]Option{WithMetrics(metrics)}, opts...)...), metrics
}

func TestDefinition(t *testing.T) {
	provider, _ := newTestProvider(t)
	def := provider.Definition()

	assert.Equal(t, "units", def.ID)
	assert.Equal(t, types.CategoryUnits, def.Category)
	assert.Equal(t, []string{"length", "mass", "volume", "temperature"}, def.Capabilities)

	toolIDs := make(map[string]bool)
	for _, tool := range def.Tools {
		toolIDs[tool.ID] = true
	}
	assert.Len(t, toolIDs, 5)
	for _, id := range []string{"units.length", "units.mass", "units.volume", "units.temperature", "units.list"} {
		assert.True(t, toolIDs[id], id)
	}
}

func TestExecuteConversions(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		toolID string
		params map[string]interface{}
		want   float64
	}{
		{"length", "units.length", map[string]interface{}{"value": 1.0, "from": "km", "to": "m"}, 1000},
		{"length with int", "units.length", map[string]interface{}{"value": 3, "from": "ft", "to": "in"}, 36},
		{"length whole", "units.length", map[string]interface{}{"value": 1.0, "from": "mi", "to": "m", "decimals": 0}, 1609},
		{"mass", "units.mass", map[string]interface{}{"value": 1.0, "from": "kg", "to": "g"}, 1000},
		{"volume", "units.volume", map[string]interface{}{"value": 1.0, "from": "gal", "to": "l"}, 4.55},
		{"temperature", "units.temperature", map[string]interface{}{"value": int64(100), "from": "C", "to": "K"}, 373.15},
		{"temperature float32", "units.temperature", map[string]interface{}{"value": float32(0), "from": "C", "to": "F"}, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := provider.Execute(ctx, tt.toolID, tt.params, nil)
			require.NoError(t, err)
			testutil.AssertNumber(t, result, "result", tt.want, 1e-9)
		})
	}
}

func TestExecuteResultData(t *testing.T) {
	provider, _ := newTestProvider(t)

	result, err := provider.Execute(context.Background(), "units.mass", map[string]interface{}{
		"value": 2.0, "from": "t", "to": "kg", "decimals": 1,
	}, nil)
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)

	assert.Equal(t, "mass", result.Data["domain"])
	assert.Equal(t, 2.0, result.Data["value"])
	assert.Equal(t, "t", result.Data["from"])
	assert.Equal(t, "kg", result.Data["to"])
	assert.Equal(t, 1, result.Data["decimals"])
	assert.Equal(t, 2000.0, result.Data["result"])
}

func TestExecuteFailures(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		toolID  string
		params  map[string]interface{}
		wantErr string
	}{
		{"non-numeric value", "units.length", map[string]interface{}{"value": "abc", "from": "m", "to": "km"}, "the value provided is not numerical"},
		{"bool value", "units.mass", map[string]interface{}{"value": true, "from": "g", "to": "kg"}, "the value provided is not numerical"},
		{"missing value", "units.length", map[string]interface{}{"from": "m", "to": "km"}, "value parameter required"},
		{"missing from", "units.length", map[string]interface{}{"value": 1.0, "to": "km"}, "from parameter required"},
		{"missing to", "units.volume", map[string]interface{}{"value": 1.0, "from": "l"}, "to parameter required"},
		{"unsupported source", "units.length", map[string]interface{}{"value": 1.0, "from": "xx", "to": "m"}, "source unit xx is not supported for length"},
		{"unsupported destination", "units.length", map[string]interface{}{"value": 1.0, "from": "m", "to": "xx"}, "destination unit xx is not supported for length"},
		{"cross domain", "units.temperature", map[string]interface{}{"value": 1.0, "from": "C", "to": "kg"}, "destination unit kg is not supported for temperature"},
		{"fractional decimals", "units.length", map[string]interface{}{"value": 1.0, "from": "m", "to": "km", "decimals": 1.5}, "decimals must be an integer, got 1.5"},
		{"decimals too large", "units.length", map[string]interface{}{"value": 1.0, "from": "m", "to": "km", "decimals": 1e20}, "decimals must be between -300 and 300, got 1e+20"},
		{"decimals too small", "units.length", map[string]interface{}{"value": 1.0, "from": "m", "to": "km", "decimals": -301}, "decimals must be between -300 and 300, got -301"},
		{"result overflow", "units.mass", map[string]interface{}{"value": 1e308, "from": "t", "to": "mg"}, "the value provided is not numerical: result out of range"},
		{"string decimals", "units.length", map[string]interface{}{"value": 1.0, "from": "m", "to": "km", "decimals": "2"}, "decimals must be a number"},
		{"unknown tool", "units.speed", map[string]interface{}{}, "unknown tool: units.speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := provider.Execute(ctx, tt.toolID, tt.params, nil)
			require.NoError(t, err)
			testutil.AssertFailure(t, result, tt.wantErr)
		})
	}
}

func TestExecuteList(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	result, err := provider.Execute(ctx, "units.list", map[string]interface{}{"domain": "temperature"}, nil)
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)
	assert.Equal(t, []string{"C", "F", "K", "R"}, result.Data["units"])
	assert.NotContains(t, result.Data, "factors")

	result, err = provider.Execute(ctx, "units.list", map[string]interface{}{"domain": "length"}, nil)
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)
	factors, ok := result.Data["factors"].(map[string]float64)
	require.True(t, ok)
	assert.Equal(t, 1.0, factors["m"])
	assert.Equal(t, 1609.344, factors["mi"])
	assert.Len(t, factors, len(result.Data["units"].([]string)))

	result, err = provider.Execute(ctx, "units.list", map[string]interface{}{"domain": "speed"}, nil)
	require.NoError(t, err)
	testutil.AssertFailure(t, result, `unknown domain "speed"`)

	result, err = provider.Execute(ctx, "units.list", nil, nil)
	require.NoError(t, err)
	testutil.AssertFailure(t, result, "domain parameter required")
}

func TestExecuteCancelledContext(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := provider.Execute(ctx, "units.length", map[string]interface{}{"value": 1.0, "from": "km", "to": "m"}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestDefaultDecimals(t *testing.T) {
	provider, _ := newTestProvider(t, WithDefaultDecimals(4))

	result, err := provider.Execute(context.Background(), "units.length", map[string]interface{}{
		"value": 1.0, "from": "mi", "to": "m",
	}, nil)
	require.NoError(t, err)
	testutil.AssertNumber(t, result, "result", 1609.344, 1e-9)
	assert.Equal(t, 4, result.Data["decimals"])
}

func TestMetrics(t *testing.T) {
	provider, metrics := newTestProvider(t)
	ctx := context.Background()

	calls := []struct {
		toolID string
		params map[string]interface{}
	}{
		{"units.length", map[string]interface{}{"value": 1.0, "from": "km", "to": "m"}},
		{"units.length", map[string]interface{}{"value": 2.0, "from": "m", "to": "cm"}},
		{"units.length", map[string]interface{}{"value": 1.0, "from": "xx", "to": "m"}},
		{"units.mass", map[string]interface{}{"value": "heavy", "from": "kg", "to": "g"}},
		{"units.volume", map[string]interface{}{"value": 1.0, "to": "ml"}},
		{"units.volume", map[string]interface{}{"from": "l", "to": "ml"}},
	}
	for _, c := range calls {
		_, err := provider.Execute(ctx, c.toolID, c.params, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.Conversions.WithLabelValues("length", OutcomeOK)))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.Conversions.WithLabelValues("length", OutcomeUnsupportedUnit)))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.Conversions.WithLabelValues("mass", OutcomeInvalidInput)))
	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.Conversions.WithLabelValues("volume", OutcomeBadRequest)))
	assert.Equal(t, 4, promtest.CollectAndCount(metrics.Conversions))
}

func TestNilMetricsIsSafe(t *testing.T) {
	provider := NewProvider()

	result, err := provider.Execute(context.Background(), "units.volume", map[string]interface{}{
		"value": 1.0, "from": "l", "to": "ml",
	}, nil)
	require.NoError(t, err)
	testutil.AssertNumber(t, result, "result", 1000, 1e-9)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	provider, _ := newTestProvider(t, WithLogger(zap.New(core)))

	caller, requestID := "cli", "req-1"
	appCtx := &types.Context{Caller: &caller, RequestID: &requestID}

	_, err := provider.Execute(context.Background(), "units.length", map[string]interface{}{
		"value": 1.0, "from": "xx", "to": "m",
	}, appCtx)
	require.NoError(t, err)

	rejected := logs.FilterMessage("conversion rejected").All()
	require.Len(t, rejected, 1)
	fields := rejected[0].ContextMap()
	assert.Equal(t, "length", fields["domain"])
	assert.Equal(t, "cli", fields["caller"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "source unit xx is not supported for length", fields["error"])
}

func TestToolID(t *testing.T) {
	provider, _ := newTestProvider(t)
	toolIDs := make(map[string]bool)
	for _, tool := range provider.Definition().Tools {
		toolIDs[tool.ID] = true
	}

	for _, d := range conv.Domains() {
		assert.True(t, toolIDs[ToolID(d)], d)
	}
	assert.Equal(t, "units.temperature", ToolID(conv.Temperature))
}
