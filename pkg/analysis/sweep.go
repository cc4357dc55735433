package analysis

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edp1096/semprobe/pkg/optics"
)

// SweepError identifies the sweep entry that aborted a sweep.
type SweepError struct {
	Field optics.FieldKind
	Value float64
	Index int
	Err   error
}

func (e *SweepError) Error() string {
	return fmt.Sprintf("sweep %s=%g (entry %d): %v", e.Field, e.Value, e.Index, e.Err)
}

func (e *SweepError) Unwrap() error {
	return e.Err
}

// SweepEntry is the result for one value of the varying field.
type SweepEntry struct {
	Value   float64
	Params  optics.InstrumentParameters
	Curves  *optics.CurveSet
	Ratio   optics.Ratio // nil unless a ratio term was requested
	Optimum Optimum
}

// SweepResult keeps entries in the order the values were given.
type SweepResult struct {
	Field    optics.FieldKind
	Angles   optics.AngleSweep
	RatioOf  optics.TermKind
	HasRatio bool
	Entries  []SweepEntry
}

// Keys returns the swept values in input order.
func (r *SweepResult) Keys() []float64 {
	keys := make([]float64, len(r.Entries))
	for i, e := range r.Entries {
		keys[i] = e.Value
	}
	return keys
}

// Get looks up the entry for value.
func (r *SweepResult) Get(value float64) (SweepEntry, bool) {
	for _, e := range r.Entries {
		if e.Value == value {
			return e, true
		}
	}
	return SweepEntry{}, false
}

type sweepConfig struct {
	ratioOf  optics.TermKind
	hasRatio bool
	workers  int
	logger   *slog.Logger
}

// SweepOption configures Sweep.
type SweepOption func(*sweepConfig)

// WithRatio reduces every entry to the contribution ratio of term.
func WithRatio(term optics.TermKind) SweepOption {
	return func(c *sweepConfig) {
		c.ratioOf = term
		c.hasRatio = true
	}
}

// WithWorkers bounds the number of entries computed concurrently.
// Zero or less means GOMAXPROCS.
func WithWorkers(n int) SweepOption {
	return func(c *sweepConfig) {
		c.workers = n
	}
}

func WithLogger(logger *slog.Logger) SweepOption {
	return func(c *sweepConfig) {
		c.logger = logger
	}
}

// Sweep evaluates the aberration model once per value of field, holding the
// other parameters of base fixed. Entries are independent and computed
// concurrently; the result preserves the order of values. The first failing
// entry (by position) aborts the sweep and is reported as a *SweepError.
func Sweep(base optics.InstrumentParameters, field optics.FieldKind, values []float64, angles optics.AngleSweep, opts ...SweepOption) (*SweepResult, error) {
	cfg := sweepConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values to sweep for %s", optics.ErrInvalidInput, field)
	}

	seen := make(map[float64]int, len(values))
	params := make([]optics.InstrumentParameters, len(values))
	for i, v := range values {
		if j, dup := seen[v]; dup {
			return nil, &SweepError{Field: field, Value: v, Index: i,
				Err: fmt.Errorf("%w: duplicate of entry %d", optics.ErrInvalidInput, j)}
		}
		seen[v] = i

		p, err := base.With(field, v)
		if err != nil {
			return nil, &SweepError{Field: field, Value: v, Index: i, Err: err}
		}
		params[i] = p
	}

	result := &SweepResult{
		Field:    field,
		Angles:   angles,
		RatioOf:  cfg.ratioOf,
		HasRatio: cfg.hasRatio,
		Entries:  make([]SweepEntry, len(values)),
	}
	errs := make([]error, len(values))

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := range values {
		g.Go(func() error {
			entryStart := time.Now()
			entry, err := computeEntry(params[i], values[i], angles, cfg)
			if err != nil {
				errs[i] = &SweepError{Field: field, Value: values[i], Index: i, Err: err}
				return errs[i]
			}
			result.Entries[i] = entry
			cfg.logger.Debug("sweep entry computed",
				"field", field.String(),
				"value", values[i],
				"optimum_mrad", entry.Optimum.Angle*1e3,
				"elapsed", time.Since(entryStart))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return nil, e
			}
		}
		return nil, err
	}

	cfg.logger.Info("sweep completed",
		"field", field.String(),
		"entries", len(values),
		"points", len(angles),
		"elapsed", time.Since(start))

	return result, nil
}

func computeEntry(p optics.InstrumentParameters, value float64, angles optics.AngleSweep, cfg sweepConfig) (SweepEntry, error) {
	curves, err := optics.ComputeCurves(p, angles)
	if err != nil {
		return SweepEntry{}, err
	}

	opt, err := FindOptimum(curves, angles)
	if err != nil {
		return SweepEntry{}, err
	}

	entry := SweepEntry{
		Value:   value,
		Params:  p,
		Curves:  curves,
		Optimum: opt,
	}

	if cfg.hasRatio {
		entry.Ratio, err = optics.ContributionRatio(curves, cfg.ratioOf)
		if err != nil {
			return SweepEntry{}, err
		}
	}

	return entry, nil
}
