package cli

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/GriffinCanCode/unitconv/internal/infrastructure/config"
)

// render writes v in the requested format. Text output uses fmt's %v, so
// values implementing fmt.Stringer control their own text form.
func render(w io.Writer, format string, v interface{}) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case config.OutputJSON:
		data, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case config.OutputYAML:
		data, err = yaml.Marshal(v)
	case config.OutputTOML:
		data, err = toml.Marshal(v)
	default:
		data = []byte(fmt.Sprintf("%v\n", v))
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}

// writeMetrics dumps every collector of reg in Prometheus text format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	if reg == nil {
		return nil
	}
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
