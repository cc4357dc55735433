package analysis

import (
	"fmt"

	"github.com/edp1096/semprobe/pkg/optics"
)

// ProbeSize computes the probe-diameter contributions of one instrument
// setting and locates the optimum convergence angle.
type ProbeSize struct {
	BaseAnalysis
	params  optics.InstrumentParameters
	angles  optics.AngleSweep
	curves  *optics.CurveSet
	optimum Optimum
	refined Optimum
}

func NewProbeSize(params optics.InstrumentParameters, angles optics.AngleSweep) *ProbeSize {
	return &ProbeSize{
		BaseAnalysis: *NewBaseAnalysis(),
		params:       params,
		angles:       angles,
	}
}

func (ps *ProbeSize) Execute() error {
	var err error

	ps.curves, err = optics.ComputeCurves(ps.params, ps.angles)
	if err != nil {
		return fmt.Errorf("computing curves: %w", err)
	}

	ps.optimum, err = FindOptimum(ps.curves, ps.angles)
	if err != nil {
		return fmt.Errorf("locating optimum: %w", err)
	}

	ps.refined, err = RefineOptimum(ps.curves, ps.angles)
	if err != nil {
		return fmt.Errorf("refining optimum: %w", err)
	}

	ps.StoreResult(ALPHA_MRAD, ps.angles.Mrad())
	ps.StoreResult(D_BRIGHTNESS, ps.curves.Brightness)
	ps.StoreResult(D_DIFFRACTION, ps.curves.Diffraction)
	ps.StoreResult(D_CHROMATIC, ps.curves.Chromatic)
	ps.StoreResult(D_SPHERICAL, ps.curves.Spherical)
	ps.StoreResult(D_TOTAL, ps.curves.Total)
	ps.StoreResult(OPTIMUM, []float64{ps.optimum.Angle * 1e3, ps.optimum.Diameter})
	ps.StoreResult(OPTIMUM_FIT, []float64{ps.refined.Angle * 1e3, ps.refined.Diameter})

	return nil
}

func (ps *ProbeSize) Curves() *optics.CurveSet { return ps.curves }

func (ps *ProbeSize) Angles() optics.AngleSweep { return ps.angles }

// Optimum returns the sampled optimum.
func (ps *ProbeSize) Optimum() Optimum { return ps.optimum }

// RefinedOptimum returns the sub-sample optimum from the parabola fit.
func (ps *ProbeSize) RefinedOptimum() Optimum { return ps.refined }
