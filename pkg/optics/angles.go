package optics

import (
	"fmt"
	"math"

	"github.com/edp1096/semprobe/internal/consts"
)

// AngleSweep is an ordered set of semi-convergence angles in radians.
type AngleSweep []float64

// NewAngleSweep copies angles and checks that every angle lies in (0, pi)
// and that the sequence is strictly increasing.
func NewAngleSweep(angles []float64) (AngleSweep, error) {
	s := make(AngleSweep, len(angles))
	copy(s, angles)

	if err := s.checkRange(); err != nil {
		return nil, err
	}
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return nil, fmt.Errorf("%w: angles must be strictly increasing (index %d: %g after %g)", ErrInvalidInput, i, s[i], s[i-1])
		}
	}
	return s, nil
}

// LinearSweepMrad returns points angles spaced linearly from startMrad to
// stopMrad inclusive, converted to radians.
func LinearSweepMrad(startMrad, stopMrad float64, points int) (AngleSweep, error) {
	if points < 1 {
		return nil, fmt.Errorf("%w: angle sweep needs at least one point, got %d", ErrInvalidInput, points)
	}

	mrad := make([]float64, points)
	if points == 1 {
		mrad[0] = startMrad
	} else {
		step := (stopMrad - startMrad) / float64(points-1)
		for i := range mrad {
			mrad[i] = startMrad + float64(i)*step
		}
		mrad[points-1] = stopMrad
	}

	rad := make([]float64, points)
	for i, v := range mrad {
		rad[i] = v * consts.MILLI
	}
	return NewAngleSweep(rad)
}

// Mrad returns the angles in milliradians.
func (s AngleSweep) Mrad() []float64 {
	out := make([]float64, len(s))
	for i, a := range s {
		out[i] = a / consts.MILLI
	}
	return out
}

func (s AngleSweep) checkRange() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty angle sweep", ErrInvalidInput)
	}
	for i, a := range s {
		if !(a > 0 && a < math.Pi) {
			return fmt.Errorf("%w: angle %g rad at index %d is outside (0, pi)", ErrInvalidInput, a, i)
		}
	}
	return nil
}
