package deck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edp1096/semprobe/internal/consts"
	"github.com/edp1096/semprobe/pkg/optics"
)

// Deck describes one probe-size analysis. Currents are in A, aberration
// coefficients in m, energies in eV and angles in mrad; any number may use a
// factor suffix (100p, 25m, 20k).
type Deck struct {
	Title      string     `yaml:"title"`
	Instrument Instrument `yaml:"instrument"`
	Angles     Angles     `yaml:"angles"`
	Sweep      *Sweep     `yaml:"sweep,omitempty"`
}

type Instrument struct {
	Brightness   Value `yaml:"brightness"`
	ProbeCurrent Value `yaml:"probe_current"` // A
	Cc           Value `yaml:"cc"`            // m
	Cs           Value `yaml:"cs"`            // m
	BeamEnergy   Value `yaml:"beam_energy"`   // eV
	EnergySpread Value `yaml:"energy_spread"` // eV
}

type Angles struct {
	StartMrad Value `yaml:"start_mrad"`
	StopMrad  Value `yaml:"stop_mrad"`
	Points    int   `yaml:"points"`
}

// Sweep varies one instrument field. Values use the same units as the
// matching Instrument field.
type Sweep struct {
	Field  string  `yaml:"field"`
	Values []Value `yaml:"values"`
	Ratio  string  `yaml:"ratio,omitempty"`
}

// Default returns the 20 keV, 100 pA reference column over 1-30 mrad.
func Default() Deck {
	return Deck{
		Title: "SEM probe size contributions",
		Instrument: Instrument{
			Brightness:   8e8,
			ProbeCurrent: 100e-12,
			Cc:           25e-3,
			Cs:           50e-3,
			BeamEnergy:   20e3,
			EnergySpread: 1,
		},
		Angles: Angles{
			StartMrad: 1,
			StopMrad:  30,
			Points:    200,
		},
	}
}

// Parse decodes a YAML deck. Fields missing from data keep their Default
// values.
func Parse(data []byte) (Deck, error) {
	d := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Deck{}, fmt.Errorf("parsing deck: %w", err)
	}

	if _, err := d.Parameters(); err != nil {
		return Deck{}, err
	}
	if _, err := d.AngleSweep(); err != nil {
		return Deck{}, err
	}
	if d.Sweep != nil {
		if _, err := d.Sweep.Spec(); err != nil {
			return Deck{}, err
		}
	}

	return d, nil
}

func Load(path string) (Deck, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("reading deck file: %w", err)
	}

	d, err := Parse(content)
	if err != nil {
		return Deck{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d Deck) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Parameters converts the instrument section to SI.
func (d Deck) Parameters() (optics.InstrumentParameters, error) {
	in := d.Instrument
	return optics.NewInstrumentParameters(
		float64(in.Brightness),
		float64(in.ProbeCurrent),
		float64(in.Cc),
		float64(in.Cs),
		float64(in.BeamEnergy)*consts.EV,
		float64(in.EnergySpread)*consts.EV,
	)
}

func (d Deck) AngleSweep() (optics.AngleSweep, error) {
	return optics.LinearSweepMrad(float64(d.Angles.StartMrad), float64(d.Angles.StopMrad), d.Angles.Points)
}

// SweepSpec is a parsed Sweep with values converted to SI.
type SweepSpec struct {
	Field    optics.FieldKind
	Values   []float64 // SI
	RatioOf  optics.TermKind
	HasRatio bool
}

func (s *Sweep) Spec() (SweepSpec, error) {
	field, err := optics.ParseFieldKind(s.Field)
	if err != nil {
		return SweepSpec{}, fmt.Errorf("sweep: %w", err)
	}
	if len(s.Values) == 0 {
		return SweepSpec{}, fmt.Errorf("sweep: no values for %s", field)
	}

	spec := SweepSpec{Field: field, Values: make([]float64, len(s.Values))}
	for i, v := range s.Values {
		spec.Values[i] = ToSI(field, float64(v))
	}

	if s.Ratio != "" {
		spec.RatioOf, err = optics.ParseTermKind(s.Ratio)
		if err != nil {
			return SweepSpec{}, fmt.Errorf("sweep: %w", err)
		}
		spec.HasRatio = true
	}

	return spec, nil
}

// ToSI converts a deck value of field to SI units.
func ToSI(field optics.FieldKind, v float64) float64 {
	switch field {
	case optics.FieldBeamEnergy, optics.FieldEnergySpread:
		return v * consts.EV
	}
	return v
}

// FromSI is the inverse of ToSI.
func FromSI(field optics.FieldKind, v float64) float64 {
	switch field {
	case optics.FieldBeamEnergy, optics.FieldEnergySpread:
		return v / consts.EV
	}
	return v
}
