package optics

import (
	"fmt"
	"math"
	"strings"
)

// FieldKind selects one field of InstrumentParameters.
type FieldKind int

const (
	FieldBrightness FieldKind = iota
	FieldProbeCurrent
	FieldCc
	FieldCs
	FieldBeamEnergy
	FieldEnergySpread
)

var fieldNames = [...]string{
	FieldBrightness:   "brightness",
	FieldProbeCurrent: "probe_current",
	FieldCc:           "cc",
	FieldCs:           "cs",
	FieldBeamEnergy:   "beam_energy",
	FieldEnergySpread: "energy_spread",
}

func (f FieldKind) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("FieldKind(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseFieldKind accepts the names returned by FieldKind.String plus a few
// short aliases (ip, de, e).
func ParseFieldKind(s string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brightness", "beta":
		return FieldBrightness, nil
	case "probe_current", "current", "ip":
		return FieldProbeCurrent, nil
	case "cc":
		return FieldCc, nil
	case "cs":
		return FieldCs, nil
	case "beam_energy", "energy", "e":
		return FieldBeamEnergy, nil
	case "energy_spread", "spread", "de":
		return FieldEnergySpread, nil
	}
	return 0, fmt.Errorf("unknown parameter field: %q", s)
}

// InstrumentParameters is an immutable, validated set of probe-forming
// conditions. All values are SI.
type InstrumentParameters struct {
	beta         float64 // Brightness
	probeCurrent float64 // Probe current (A)
	cc           float64 // Chromatic aberration coefficient (m)
	cs           float64 // Spherical aberration coefficient (m)
	beamEnergy   float64 // Beam energy (J)
	energySpread float64 // Energy spread (J)
}

// NewInstrumentParameters validates and returns a parameter set.
func NewInstrumentParameters(beta, probeCurrent, cc, cs, beamEnergy, energySpread float64) (InstrumentParameters, error) {
	p := InstrumentParameters{
		beta:         beta,
		probeCurrent: probeCurrent,
		cc:           cc,
		cs:           cs,
		beamEnergy:   beamEnergy,
		energySpread: energySpread,
	}
	if err := p.validate(); err != nil {
		return InstrumentParameters{}, err
	}
	return p, nil
}

func (p InstrumentParameters) validate() error {
	positive := []FieldKind{FieldBrightness, FieldCc, FieldCs, FieldBeamEnergy}
	for _, f := range positive {
		v := p.Get(f)
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidParameters, f, v)
		}
	}

	nonNegative := []FieldKind{FieldProbeCurrent, FieldEnergySpread}
	for _, f := range nonNegative {
		v := p.Get(f)
		if !(v >= 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be non-negative and finite, got %g", ErrInvalidParameters, f, v)
		}
	}
	return nil
}

func (p InstrumentParameters) Beta() float64         { return p.beta }
func (p InstrumentParameters) ProbeCurrent() float64 { return p.probeCurrent }
func (p InstrumentParameters) Cc() float64           { return p.cc }
func (p InstrumentParameters) Cs() float64           { return p.cs }
func (p InstrumentParameters) BeamEnergy() float64   { return p.beamEnergy }
func (p InstrumentParameters) EnergySpread() float64 { return p.energySpread }

// Get returns the value of field f.
func (p InstrumentParameters) Get(f FieldKind) float64 {
	switch f {
	case FieldBrightness:
		return p.beta
	case FieldProbeCurrent:
		return p.probeCurrent
	case FieldCc:
		return p.cc
	case FieldCs:
		return p.cs
	case FieldBeamEnergy:
		return p.beamEnergy
	case FieldEnergySpread:
		return p.energySpread
	}
	return math.NaN()
}

// With returns a copy of p with field f set to value. The copy is validated
// like a freshly constructed parameter set.
func (p InstrumentParameters) With(f FieldKind, value float64) (InstrumentParameters, error) {
	switch f {
	case FieldBrightness:
		p.beta = value
	case FieldProbeCurrent:
		p.probeCurrent = value
	case FieldCc:
		p.cc = value
	case FieldCs:
		p.cs = value
	case FieldBeamEnergy:
		p.beamEnergy = value
	case FieldEnergySpread:
		p.energySpread = value
	default:
		return InstrumentParameters{}, fmt.Errorf("%w: unknown field %s", ErrInvalidParameters, f)
	}

	if err := p.validate(); err != nil {
		return InstrumentParameters{}, err
	}
	return p, nil
}
