// Package cli provides the command-line interface for semprobe.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/edp1096/semprobe/internal/config"
	"github.com/edp1096/semprobe/pkg/deck"
)

// Version is set at build time.
var Version = "0.1.0"

type rootOptions struct {
	verbose  bool
	deckFile string
	preset   string
	workers  int
	step     int

	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
}

// NewRootCommand builds the semprobe command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "semprobe",
		Short: "SEM probe diameter and aberration contributions",
		Long: `semprobe models the diameter of an electron probe focused by an SEM
probe-forming lens as a function of the semi-convergence angle, split into
brightness, diffraction, chromatic and spherical contributions.

Instrument settings come from a YAML deck (--deck), a built-in preset
(--preset probe|current|spread|energy) or the 20 keV / 100 pA default.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.cfg = config.Load()

			level := opts.cfg.LogLevel
			if opts.verbose {
				level = slog.LevelDebug
			}
			var logger *slog.Logger
			logger, opts.closeLog = config.SetupLogger(opts.cfg, level)
			opts.logger = logger.With("command", cmd.Name())

			if opts.workers == 0 {
				opts.workers = opts.cfg.Workers
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.closeLog != nil {
				return opts.closeLog()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVarP(&opts.deckFile, "deck", "d", "", "instrument deck (YAML)")
	cmd.PersistentFlags().StringVarP(&opts.preset, "preset", "p", "", "built-in deck: probe, current, spread, energy")
	cmd.PersistentFlags().IntVarP(&opts.workers, "workers", "w", 0, "concurrent sweep entries (0 = all CPUs)")
	cmd.PersistentFlags().IntVar(&opts.step, "step", 10, "print every n-th angle")

	cmd.AddCommand(newCurvesCmd(opts))
	cmd.AddCommand(newOptimumCmd(opts))
	cmd.AddCommand(newSweepCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadDeck resolves the deck from --preset, --deck, SEMPROBE_DECK, then
// fallback, in that order.
func (o *rootOptions) loadDeck(fallback string) (deck.Deck, error) {
	switch {
	case o.preset != "":
		return deck.Preset(o.preset)
	case o.deckFile != "":
		return deck.Load(o.deckFile)
	case o.cfg.DeckFile != "":
		return deck.Load(o.cfg.DeckFile)
	}
	return deck.Preset(fallback)
}

func (o *rootOptions) stride() int {
	if o.step < 1 {
		return 1
	}
	return o.step
}

func printHeader(cmd *cobra.Command, d deck.Deck) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", d.Title)
}
