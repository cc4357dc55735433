package optics_test

import (
	"testing"

	"github.com/edp1096/semprobe/internal/consts"
	"github.com/edp1096/semprobe/pkg/optics"
	"github.com/stretchr/testify/require"
)

// defaultParams is the 20 keV, 100 pA reference column.
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
