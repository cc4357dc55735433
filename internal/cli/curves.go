package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/semprobe/pkg/analysis"
	"github.com/edp1096/semprobe/pkg/deck"
	"github.com/edp1096/semprobe/pkg/optics"
)

func newCurvesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "Print probe-diameter contributions over the angle sweep",
		Long: `Print the brightness, diffraction, chromatic and spherical contributions
and their quadrature total for every --step-th angle, followed by the optimum.

Examples:
  semprobe curves
  semprobe curves --deck column.yaml --step 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, d, err := runProbeSize(opts)
			if err != nil {
				return err
			}

			printHeader(cmd, d)
			printCurves(cmd.OutOrStdout(), ps.Angles(), ps.Curves(), opts.stride())
			printOptimum(cmd.OutOrStdout(), ps.Optimum(), ps.RefinedOptimum())
			return nil
		},
	}
}

func newOptimumCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "optimum",
		Short: "Print the convergence angle with the smallest probe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, d, err := runProbeSize(opts)
			if err != nil {
				return err
			}

			printHeader(cmd, d)
			printOptimum(cmd.OutOrStdout(), ps.Optimum(), ps.RefinedOptimum())
			return nil
		},
	}
}

func runProbeSize(opts *rootOptions) (*analysis.ProbeSize, deck.Deck, error) {
	d, err := opts.loadDeck("probe")
	if err != nil {
		return nil, deck.Deck{}, err
	}

	params, err := d.Parameters()
	if err != nil {
		return nil, deck.Deck{}, err
	}
	angles, err := d.AngleSweep()
	if err != nil {
		return nil, deck.Deck{}, err
	}

	ps := analysis.NewProbeSize(params, angles)
	if err := ps.Execute(); err != nil {
		return nil, deck.Deck{}, fmt.Errorf("probe size analysis: %w", err)
	}

	opt := ps.RefinedOptimum()
	opts.logger.Info("probe size computed",
		"points", len(angles),
		"optimum_mrad", opt.Angle*1e3,
		"optimum_m", opt.Diameter,
		"wavelength_m", optics.Wavelength(params.BeamEnergy()))

	return ps, d, nil
}
