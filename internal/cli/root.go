package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/unitconv/internal/infrastructure/config"
	"github.com/GriffinCanCode/unitconv/internal/infrastructure/logging"
	"github.com/GriffinCanCode/unitconv/internal/providers/units"
	"github.com/GriffinCanCode/unitconv/internal/types"
	conv "github.com/GriffinCanCode/unitconv/internal/units"
)

// Execute runs the unitconv command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd(config.LoadOrDefault())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the resolved flags shared by every subcommand.
type options struct {
	cfg      *config.Config
	output   string
	decimals int
	debug    bool
	metrics  bool

	log      *zap.Logger
	registry *prometheus.Registry
	provider *units.Provider
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{cfg: cfg}

	cmd := &cobra.Command{
		Use:           "unitconv",
		Short:         "Convert values between units of length, mass, volume and temperature",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
			if opts.metrics {
				return writeMetrics(cmd.ErrOrStderr(), opts.registry)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", cfg.Convert.Output, "output format: text, json, yaml or toml")
	cmd.PersistentFlags().IntVarP(&opts.decimals, "decimals", "d", cfg.Convert.Decimals, "decimal places in the result")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&opts.metrics, "metrics", false, "print conversion counters on stderr after the command")

	for _, d := range conv.Domains() {
		cmd.AddCommand(convertCmd(opts, d))
	}
	cmd.AddCommand(unitsCmd(opts))
	cmd.AddCommand(toolsCmd(opts))
	return cmd
}

func (o *options) setup(cmd *cobra.Command) error {
	if err := config.ValidateOutput(o.output); err != nil {
		return err
	}

	o.log = logging.NewOrNop(logConfig(o.cfg.Logging, o.debug))

	o.registry = prometheus.NewRegistry()
	o.provider = units.NewProvider(
		units.WithLogger(o.log),
		units.WithMetrics(units.NewMetrics(o.registry)),
		units.WithDefaultDecimals(o.decimals),
	)
	return nil
}

// logConfig layers the environment settings and --debug over the logging defaults.
func logConfig(cfg config.LogConfig, debug bool) logging.Config {
	logCfg := logging.DefaultConfig()
	if cfg.Level != "" {
		logCfg.Level = cfg.Level
	}
	logCfg.Development = cfg.Development
	if debug {
		logCfg.Level = "debug"
	}
	return logCfg
}

// execute calls a provider tool and turns a failed Result into an error.
func (o *options) execute(cmd *cobra.Command, toolID string, params map[string]interface{}) (*types.Result, error) {
	caller, requestID := "cli", uuid.NewString()
	appCtx := &types.Context{Caller: &caller, RequestID: &requestID}

	result, err := o.provider.Execute(cmd.Context(), toolID, params, appCtx)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("%s", result.ErrorMessage())
	}
	return result, nil
}
