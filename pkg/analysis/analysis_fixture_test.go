package analysis_test

import (
	"testing"

	"github.com/edp1096/semprobe/internal/consts"
	"github.com/edp1096/semprobe/pkg/optics"
	"github.com/stretchr/testify/require"
)

func defaultParams(t *testing.T) optics.InstrumentParameters {
	t.Helper()
	p, err := optics.NewInstrumentParameters(8e8, 100e-12, 25e-3, 50e-3, 20*consts.KEV, 1*consts.EV)
	require.NoError(t, err)
	return p
}

func defaultAngles(t *testing.T) optics.AngleSweep {
	t.Helper()
	angles, err := optics.LinearSweepMrad(1, 30, 200)
	require.NoError(t, err)
	return angles
}

// curvesWithTotal builds a curve set whose total is exactly total.
func curvesWithTotal(total []float64) *optics.CurveSet {
	zeros := make([]float64, len(total))
	return &optics.CurveSet{
		Brightness:  total,
		Diffraction: zeros,
		Chromatic:   zeros,
		Spherical:   zeros,
		Total:       total,
	}
}
