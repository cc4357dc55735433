package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edp1096/semprobe/internal/consts"
	"github.com/edp1096/semprobe/pkg/optics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeck = `
title: 5 kV low-current column
instrument:
  brightness: 8e8
  probe_current: 10pA
  cc: 25mm
  cs: 50m
  beam_energy: 5keV
  energy_spread: 0.5
angles:
  start_mrad: 2
  stop_mrad: 20
  points: 50
sweep:
  field: energy_spread
  values: [10m, 100m, 1]
  ratio: chromatic
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	require.NoError(t, err)

	assert.Equal(t, "5 kV low-current column", d.Title)

	p, err := d.Parameters()
	require.NoError(t, err)
	assert.InEpsilon(t, 8e8, p.Beta(), 1e-12)
	assert.InEpsilon(t, 10e-12, p.ProbeCurrent(), 1e-12)
	assert.InEpsilon(t, 25e-3, p.Cc(), 1e-12)
	assert.InEpsilon(t, 50e-3, p.Cs(), 1e-12)
	assert.InEpsilon(t, 5e3*consts.EV, p.BeamEnergy(), 1e-12)
	assert.InEpsilon(t, 0.5*consts.EV, p.EnergySpread(), 1e-12)

	angles, err := d.AngleSweep()
	require.NoError(t, err)
	require.Len(t, angles, 50)
	assert.InDelta(t, 2e-3, angles[0], 1e-15)
	assert.InDelta(t, 20e-3, angles[49], 1e-15)

	require.NotNil(t, d.Sweep)
	spec, err := d.Sweep.Spec()
	require.NoError(t, err)
	assert.Equal(t, optics.FieldEnergySpread, spec.Field)
	assert.True(t, spec.HasRatio)
	assert.Equal(t, optics.TermChromatic, spec.RatioOf)
	require.Len(t, spec.Values, 3)
	assert.InEpsilon(t, 0.01*consts.EV, spec.Values[0], 1e-12)
	assert.InEpsilon(t, 0.1*consts.EV, spec.Values[1], 1e-12)
	assert.InEpsilon(t, 1*consts.EV, spec.Values[2], 1e-12)
}

func TestParse_PartialDeckKeepsDefaults(t *testing.T) {
	d, err := Parse([]byte("instrument:\n  probe_current: 1p\n"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, Value(1e-12), d.Instrument.ProbeCurrent)
	assert.Equal(t, def.Instrument.Cs, d.Instrument.Cs)
	assert.Equal(t, def.Angles, d.Angles)
	assert.Nil(t, d.Sweep)
}

func TestParse_Empty(t *testing.T) {
	d, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), d)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad number", data: "instrument:\n  cc: lots\n"},
		{name: "number as list", data: "instrument:\n  cc: [1, 2]\n"},
		{name: "unknown key", data: "instrument:\n  voltage: 3\n"},
		{name: "unsupported factor", data: "instrument:\n  brightness: 8M\n"},
		{name: "trailing garbage", data: "instrument:\n  cs: 50mx\n"},
		{name: "negative beam energy", data: "instrument:\n  beam_energy: -20k\n"},
		{name: "zero points", data: "angles:\n  points: 0\n"},
		{name: "unknown sweep field", data: "sweep:\n  field: voltage\n  values: [1]\n"},
		{name: "empty sweep", data: "sweep:\n  field: cs\n"},
		{name: "unknown ratio", data: "sweep:\n  field: cs\n  values: [1m]\n  ratio: coma\n"},
		{name: "broken yaml", data: "instrument: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_InvalidParametersWrapSentinel(t *testing.T) {
	_, err := Parse([]byte("instrument:\n  brightness: 0\n"))
	assert.ErrorIs(t, err, optics.ErrInvalidParameters)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDeck), 0644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, d.Angles.Points)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	orig, err := Preset("energy")
	require.NoError(t, err)

	data, err := orig.Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name   string
		field  optics.FieldKind
		values []float64
		ratio  optics.TermKind
	}{
		{name: "current", field: optics.FieldProbeCurrent, values: []float64{1e-12, 10e-12, 100e-12}, ratio: optics.TermBrightness},
		{name: "spread", field: optics.FieldEnergySpread, values: []float64{0.01 * consts.EV, 0.1 * consts.EV, 1 * consts.EV}, ratio: optics.TermChromatic},
		{name: "energy", field: optics.FieldBeamEnergy, values: []float64{1 * consts.KEV, 10 * consts.KEV, 20 * consts.KEV}, ratio: optics.TermChromatic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Preset(tt.name)
			require.NoError(t, err)
			require.NotNil(t, d.Sweep)

			spec, err := d.Sweep.Spec()
			require.NoError(t, err)
			assert.Equal(t, tt.field, spec.Field)
			assert.Equal(t, tt.ratio, spec.RatioOf)
			require.Len(t, spec.Values, len(tt.values))
			for i := range tt.values {
				assert.InEpsilon(t, tt.values[i], spec.Values[i], 1e-12)
			}
		})
	}

	probe, err := Preset("probe")
	require.NoError(t, err)
	assert.Nil(t, probe.Sweep)

	_, err = Preset("coma")
	assert.Error(t, err)
}

func TestUnitConversion(t *testing.T) {
	assert.InEpsilon(t, 5*consts.EV, ToSI(optics.FieldBeamEnergy, 5), 1e-12)
	assert.Equal(t, 5.0, ToSI(optics.FieldCs, 5))
	assert.InEpsilon(t, 20e3, FromSI(optics.FieldBeamEnergy, ToSI(optics.FieldBeamEnergy, 20e3)), 1e-12)
	assert.Equal(t, 1e-12, FromSI(optics.FieldProbeCurrent, 1e-12))
}
