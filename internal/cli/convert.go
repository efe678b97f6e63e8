package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/unitconv/internal/infrastructure/config"
	"github.com/GriffinCanCode/unitconv/internal/providers/units"
	conv "github.com/GriffinCanCode/unitconv/internal/units"
)

// conversion is the rendered outcome of one conversion.
type conversion struct {
	Domain   string  `json:"domain" yaml:"domain" toml:"domain"`
	Value    float64 `json:"value" yaml:"value" toml:"value"`
	From     string  `json:"from" yaml:"from" toml:"from"`
	To       string  `json:"to" yaml:"to" toml:"to"`
	Decimals int     `json:"decimals" yaml:"decimals" toml:"decimals"`
	Result   float64 `json:"result" yaml:"result" toml:"result"`
}

func (c conversion) String() string {
	places := c.Decimals
	if places < 0 {
		places = 0
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(c.Result, 'f', places, 64), c.To)
}

// unitList is the rendered symbol list of a domain.
type unitList struct {
	Domain  string             `json:"domain" yaml:"domain" toml:"domain"`
	Units   []string           `json:"units" yaml:"units" toml:"units"`
	Factors map[string]float64 `json:"factors,omitempty" yaml:"factors,omitempty" toml:"factors,omitempty"`
}

func (u unitList) String() string {
	return strings.Join(u.Units, "\n")
}

func convertCmd(opts *options, d conv.Domain) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <value> <from> <to>", d),
		Short: fmt.Sprintf("Convert a %s value (%s)", d, strings.Join(conv.Symbols(d), ", ")),
		Example: fmt.Sprintf("  unitconv %s 1 %s %s\n  unitconv %s --decimals 4 -- -3.5 %s %s",
			d, conv.Symbols(d)[0], conv.Symbols(d)[1], d, conv.Symbols(d)[1], conv.Symbols(d)[0]),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{
				"value":    parseValue(args[0]),
				"from":     args[1],
				"to":       args[2],
				"decimals": opts.decimals,
			}

			result, err := opts.execute(cmd, units.ToolID(d), params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, conversion{
				Domain:   string(d),
				Value:    result.Data["value"].(float64),
				From:     args[1],
				To:       args[2],
				Decimals: result.Data["decimals"].(int),
				Result:   result.Data["result"].(float64),
			})
		},
	}
}

func unitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "units <domain>",
		Short:     "List the unit symbols of a domain",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"length", "mass", "volume", "temperature"},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.execute(cmd, "units.list", map[string]interface{}{"domain": args[0]})
			if err != nil {
				return err
			}

			list := unitList{
				Domain: result.Data["domain"].(string),
				Units:  result.Data["units"].([]string),
			}
			if factors, ok := result.Data["factors"].(map[string]float64); ok {
				list.Factors = factors
			}
			return render(cmd.OutOrStdout(), opts.output, list)
		},
	}
}

func toolsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Describe the conversion tools exposed by the provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := opts.provider.Definition()
			if opts.output == config.OutputText {
				var b strings.Builder
				for _, tool := range def.Tools {
					fmt.Fprintf(&b, "%-18s %s\n", tool.ID, tool.Description)
				}
				_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, def)
		},
	}
}

// parseValue returns a float64 when s is numeric and s itself otherwise, so
// the provider reports non-numeric input with its usual message.
func parseValue(s string) interface{} {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	return v
}
