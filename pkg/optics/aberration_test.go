package optics_test

import (
	"math"
	"testing"

	"github.com/edp1096/semprobe/internal/consts"
	"github.com/edp1096/semprobe/pkg/optics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavelength(t *testing.T) {
	assert.InEpsilon(t, 8.598280019347443e-12, optics.Wavelength(20*consts.KEV), 1e-12)

	// Higher energy, shorter wavelength.
	assert.Less(t, optics.Wavelength(20*consts.KEV), optics.Wavelength(10*consts.KEV))
	assert.Less(t, optics.Wavelength(10*consts.KEV), optics.Wavelength(1*consts.KEV))
}

func TestComputeCurves_TermsAtOneMilliradian(t *testing.T) {
	curves, err := optics.ComputeCurves(defaultParams(t), optics.AngleSweep{1e-3})
	require.NoError(t, err)
	require.Equal(t, 1, curves.Len())

	assert.InEpsilon(t, 2.2273863607376246e-07, curves.Brightness[0], 1e-9)
	assert.InEpsilon(t, 1.0489903371921024e-08, curves.Diffraction[0], 1e-9)
	assert.InEpsilon(t, 1.25e-09, curves.Chromatic[0], 1e-9)
	assert.InEpsilon(t, 2.5e-11, curves.Spherical[0], 1e-9)

	want := math.Sqrt(
		curves.Brightness[0]*curves.Brightness[0] +
			curves.Diffraction[0]*curves.Diffraction[0] +
			curves.Chromatic[0]*curves.Chromatic[0] +
			curves.Spherical[0]*curves.Spherical[0])
	assert.Equal(t, want, curves.Total[0])
}

func TestComputeCurves_TotalDominatesEachTerm(t *testing.T) {
	base := defaultParams(t)
	angles := optics.AngleSweep{1e-6, 1e-4, 1e-3, 8e-3, 3e-2, 0.5, 1.5, 3.1}

	variants := []struct {
		field optics.FieldKind
		value float64
	}{
		{optics.FieldProbeCurrent, 1e-12},
		{optics.FieldProbeCurrent, 0},
		{optics.FieldEnergySpread, 0},
		{optics.FieldEnergySpread, 10 * consts.EV},
		{optics.FieldBeamEnergy, 1 * consts.KEV},
		{optics.FieldBeamEnergy, 300 * consts.KEV},
		{optics.FieldCs, 1},
	}

	for _, v := range variants {
		p, err := base.With(v.field, v.value)
		require.NoError(t, err)

		curves, err := optics.ComputeCurves(p, angles)
		require.NoError(t, err)
		require.Equal(t, len(angles), curves.Len())

		for i := range angles {
			for _, term := range optics.Terms {
				d := curves.Term(term)[i]
				assert.GreaterOrEqual(t, d, 0.0)
				assert.False(t, math.IsInf(d, 0) || math.IsNaN(d))
				assert.GreaterOrEqual(t, curves.Total[i], d, "%s=%g term %s at %g rad", v.field, v.value, term, angles[i])
			}
		}
	}
}

func TestComputeCurves_Monotonicity(t *testing.T) {
	base := defaultParams(t)
	angles := defaultAngles(t)

	tests := []struct {
		field optics.FieldKind
		low   float64
		high  float64
		term  optics.TermKind
	}{
		{optics.FieldProbeCurrent, 10e-12, 100e-12, optics.TermBrightness},
		{optics.FieldCs, 10e-3, 50e-3, optics.TermSpherical},
		{optics.FieldEnergySpread, 0.1 * consts.EV, 1 * consts.EV, optics.TermChromatic},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			lowP, err := base.With(tt.field, tt.low)
			require.NoError(t, err)
			highP, err := base.With(tt.field, tt.high)
			require.NoError(t, err)

			low, err := optics.ComputeCurves(lowP, angles)
			require.NoError(t, err)
			high, err := optics.ComputeCurves(highP, angles)
			require.NoError(t, err)

			for i := range angles {
				assert.Greater(t, high.Term(tt.term)[i], low.Term(tt.term)[i], "index %d", i)
			}
		})
	}
}

func TestComputeCurves_WavelengthFollowsBeamEnergy(t *testing.T) {
	base := defaultParams(t)
	angles := optics.AngleSweep{5e-3}

	p1, err := base.With(optics.FieldBeamEnergy, 1*consts.KEV)
	require.NoError(t, err)

	c20, err := optics.ComputeCurves(base, angles)
	require.NoError(t, err)
	c1, err := optics.ComputeCurves(p1, angles)
	require.NoError(t, err)

	ratio := c1.Diffraction[0] / c20.Diffraction[0]
	assert.InEpsilon(t, optics.Wavelength(1*consts.KEV)/optics.Wavelength(20*consts.KEV), ratio, 1e-12)
}

func TestComputeCurves_InvalidAngles(t *testing.T) {
	p := defaultParams(t)

	tests := []struct {
		name   string
		angles optics.AngleSweep
	}{
		{name: "zero", angles: optics.AngleSweep{0, 1e-3}},
		{name: "pi", angles: optics.AngleSweep{1e-3, math.Pi}},
		{name: "negative", angles: optics.AngleSweep{-1e-3}},
		{name: "beyond pi", angles: optics.AngleSweep{4}},
		{name: "NaN", angles: optics.AngleSweep{math.NaN()}},
		{name: "empty", angles: optics.AngleSweep{}},
		{name: "overflowing brightness term", angles: optics.AngleSweep{math.SmallestNonzeroFloat64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curves, err := optics.ComputeCurves(p, tt.angles)
			assert.ErrorIs(t, err, optics.ErrInvalidInput)
			assert.Nil(t, curves)
		})
	}
}

func TestComputeCurves_ZeroValueParameters(t *testing.T) {
	_, err := optics.ComputeCurves(optics.InstrumentParameters{}, optics.AngleSweep{1e-3})
	assert.ErrorIs(t, err, optics.ErrInvalidParameters)
}
