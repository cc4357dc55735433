package optics

import (
	"fmt"
	"math"

	"github.com/edp1096/semprobe/internal/consts"
)

// Probe diameter prefactors.
const (
	brightnessFactor  = 0.63
	diffractionFactor = 1.22
	sphericalFactor   = 0.5
)

// CurveSet holds the probe-diameter contributions for one parameter set,
// index-aligned with the angle sweep they were computed on. Diameters in m.
type CurveSet struct {
	Brightness  []float64
	Diffraction []float64
	Chromatic   []float64
	Spherical   []float64
	Total       []float64
}

func (c *CurveSet) Len() int { return len(c.Total) }

// Term returns the diameter sequence of one contribution.
func (c *CurveSet) Term(t TermKind) []float64 {
	switch t {
	case TermBrightness:
		return c.Brightness
	case TermDiffraction:
		return c.Diffraction
	case TermChromatic:
		return c.Chromatic
	case TermSpherical:
		return c.Spherical
	}
	return nil
}

// Wavelength returns the relativistically corrected electron wavelength (m)
// for a beam energy in J.
func Wavelength(beamEnergy float64) float64 {
	m := consts.ELECTRON_MASS
	c := consts.LIGHT_SPEED
	return consts.PLANCK / math.Sqrt(2*m*beamEnergy*(1+beamEnergy/(2*m*c*c)))
}

// ComputeCurves evaluates the four aberration diameters and their quadrature
// sum at every angle. Nothing is returned unless every angle is valid.
func ComputeCurves(p InstrumentParameters, angles AngleSweep) (*CurveSet, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := angles.checkRange(); err != nil {
		return nil, err
	}

	n := len(angles)
	cs := &CurveSet{
		Brightness:  make([]float64, n),
		Diffraction: make([]float64, n),
		Chromatic:   make([]float64, n),
		Spherical:   make([]float64, n),
		Total:       make([]float64, n),
	}

	lambda := Wavelength(p.beamEnergy)
	source := brightnessFactor * math.Sqrt(p.probeCurrent/p.beta)
	spread := p.energySpread / p.beamEnergy

	for i, alpha := range angles {
		di := source / alpha
		dd := diffractionFactor * lambda / math.Sin(alpha)
		dc := p.cc * alpha * spread
		ds := sphericalFactor * p.cs * alpha * alpha * alpha
		total := math.Sqrt(di*di + dd*dd + dc*dc + ds*ds)

		if math.IsInf(total, 0) || math.IsNaN(total) {
			return nil, fmt.Errorf("%w: non-finite diameter at angle %g rad (index %d)", ErrInvalidInput, alpha, i)
		}

		cs.Brightness[i] = di
		cs.Diffraction[i] = dd
		cs.Chromatic[i] = dc
		cs.Spherical[i] = ds
		cs.Total[i] = total
	}

	return cs, nil
}
