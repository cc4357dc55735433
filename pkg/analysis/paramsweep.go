package analysis

import (
	"fmt"
	"strconv"

	"github.com/edp1096/semprobe/pkg/optics"
)

// ParamSweep runs Sweep and exposes one named vector per swept value:
// RATIO(<value>) when a ratio term is set, D_TOTAL(<value>) otherwise.
type ParamSweep struct {
	BaseAnalysis
	base   optics.InstrumentParameters
	field  optics.FieldKind
	values []float64
	angles optics.AngleSweep
	opts   []SweepOption
	result *SweepResult
}

func NewParamSweep(base optics.InstrumentParameters, field optics.FieldKind, values []float64, angles optics.AngleSweep, opts ...SweepOption) *ParamSweep {
	return &ParamSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		base:         base,
		field:        field,
		values:       values,
		angles:       angles,
		opts:         opts,
	}
}

func (s *ParamSweep) Execute() error {
	var err error

	s.result, err = Sweep(s.base, s.field, s.values, s.angles, s.opts...)
	if err != nil {
		return err
	}

	s.StoreResult(ALPHA_MRAD, s.angles.Mrad())
	for _, e := range s.result.Entries {
		label := strconv.FormatFloat(e.Value, 'g', -1, 64)
		if s.result.HasRatio {
			s.StoreResult(termResultName("RATIO", label), e.Ratio)
		} else {
			s.StoreResult(termResultName(D_TOTAL, label), e.Curves.Total)
		}
		s.StoreResult(termResultName(OPTIMUM, label), []float64{e.Optimum.Angle * 1e3, e.Optimum.Diameter})
	}

	return nil
}

func (s *ParamSweep) Result() *SweepResult { return s.result }

func (s *ParamSweep) String() string {
	return fmt.Sprintf("sweep %s over %d values", s.field, len(s.values))
}
