package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/semprobe/pkg/analysis"
	"github.com/edp1096/semprobe/pkg/deck"
)

type sweepOptions struct {
	field  string
	values []string
	ratio  string
	totals bool
}

func newSweepCmd(opts *rootOptions) *cobra.Command {
	so := &sweepOptions{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare contributions while one instrument parameter varies",
		Long: `Evaluate the probe model for several values of one instrument parameter,
holding the others at the deck values. Prints the share of the --ratio term
(or the total diameter with --totals) per angle and the optimum per value.

Values use deck units (A, m, eV) and accept factor suffixes.

Examples:
  semprobe sweep --preset current
  semprobe sweep --preset energy
  semprobe sweep --field cs --values 10m,50m,100m --ratio spherical
  semprobe sweep --field probe_current --values 1p,10p,100p --totals`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, opts, so)
		},
	}

	cmd.Flags().StringVarP(&so.field, "field", "f", "", "parameter to vary: brightness, probe_current, cc, cs, beam_energy, energy_spread")
	cmd.Flags().StringSliceVar(&so.values, "values", nil, "values of the varying parameter (e.g. 1p,10p,100p)")
	cmd.Flags().StringVarP(&so.ratio, "ratio", "r", "", "term whose share is reported: brightness, diffraction, chromatic, spherical")
	cmd.Flags().BoolVar(&so.totals, "totals", false, "report total diameters instead of a ratio")

	return cmd
}

func runSweep(cmd *cobra.Command, opts *rootOptions, so *sweepOptions) error {
	d, err := opts.loadDeck("current")
	if err != nil {
		return err
	}

	if so.field != "" {
		s := &deck.Sweep{Field: so.field, Ratio: so.ratio}
		for _, raw := range so.values {
			v, err := deck.ParseValue(raw)
			if err != nil {
				return fmt.Errorf("--values: %w", err)
			}
			s.Values = append(s.Values, deck.Value(v))
		}
		d.Sweep = s
	} else if d.Sweep != nil && so.ratio != "" {
		d.Sweep.Ratio = so.ratio
	}
	if d.Sweep == nil {
		return fmt.Errorf("deck %q has no sweep section; use --field and --values", d.Title)
	}
	if so.totals {
		d.Sweep.Ratio = ""
	}

	spec, err := d.Sweep.Spec()
	if err != nil {
		return err
	}
	params, err := d.Parameters()
	if err != nil {
		return err
	}
	angles, err := d.AngleSweep()
	if err != nil {
		return err
	}

	sweepOpts := []analysis.SweepOption{
		analysis.WithWorkers(opts.workers),
		analysis.WithLogger(opts.logger),
	}
	if spec.HasRatio {
		sweepOpts = append(sweepOpts, analysis.WithRatio(spec.RatioOf))
	}

	ps := analysis.NewParamSweep(params, spec.Field, spec.Values, angles, sweepOpts...)
	opts.logger.Debug("starting", "analysis", ps.String())
	if err := ps.Execute(); err != nil {
		return err
	}

	printHeader(cmd, d)
	printSweep(cmd.OutOrStdout(), ps.Result(), opts.stride())
	return nil
}

// ratioLabel names the reported quantity of a sweep result.
func ratioLabel(res *analysis.SweepResult) string {
	if res.HasRatio {
		return fmt.Sprintf("%s share of total (%%)", res.RatioOf)
	}
	return "total probe diameter"
}

func entryValues(res *analysis.SweepResult, e analysis.SweepEntry) []float64 {
	if res.HasRatio {
		return e.Ratio
	}
	return e.Curves.Total
}
