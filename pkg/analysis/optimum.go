package analysis

import (
	"fmt"

	"github.com/edp1096/semprobe/pkg/matrix"
	"github.com/edp1096/semprobe/pkg/optics"
)

// Half-width of the neighbourhood fitted by RefineOptimum.
const refineHalfWindow = 2

// Optimum is the operating point with the smallest total probe diameter.
type Optimum struct {
	Index    int     // index into the angle sweep of the smallest sampled total
	Angle    float64 // rad
	Diameter float64 // m
	Refined  bool    // Angle and Diameter come from the parabola fit
}

// FindOptimum returns the sampled angle with the smallest total diameter.
// Ties resolve to the lowest index.
func FindOptimum(curves *optics.CurveSet, angles optics.AngleSweep) (Optimum, error) {
	if curves == nil || curves.Len() == 0 {
		return Optimum{}, fmt.Errorf("%w: empty curve set", optics.ErrInvalidInput)
	}
	if curves.Len() != len(angles) {
		return Optimum{}, fmt.Errorf("%w: curve set has %d points, angle sweep has %d", optics.ErrInvalidInput, curves.Len(), len(angles))
	}

	idx := 0
	for i, d := range curves.Total {
		if d < curves.Total[idx] {
			idx = i
		}
	}

	return Optimum{
		Index:    idx,
		Angle:    angles[idx],
		Diameter: curves.Total[idx],
	}, nil
}

// RefineOptimum fits a least-squares parabola to the total diameter around the
// sampled minimum and returns its vertex. The sampled optimum is returned
// unrefined when the minimum sits on the sweep boundary, the fit is singular
// or it has no interior minimum.
func RefineOptimum(curves *optics.CurveSet, angles optics.AngleSweep) (Optimum, error) {
	opt, err := FindOptimum(curves, angles)
	if err != nil {
		return Optimum{}, err
	}

	n := len(angles)
	if opt.Index == 0 || opt.Index == n-1 {
		return opt, nil
	}

	lo := max(opt.Index-refineHalfWindow, 0)
	hi := min(opt.Index+refineHalfWindow, n-1)

	// Local coordinates keep the normal equations well conditioned.
	origin := angles[opt.Index]
	scale := (angles[hi] - angles[lo]) / float64(hi-lo)
	yScale := opt.Diameter

	var sx [5]float64 // sums of x^0..x^4
	var sy [3]float64 // sums of x^0..x^2 * y
	for i := lo; i <= hi; i++ {
		x := (angles[i] - origin) / scale
		y := curves.Total[i] / yScale
		p := 1.0
		for k := 0; k < 5; k++ {
			sx[k] += p
			if k < 3 {
				sy[k] += p * y
			}
			p *= x
		}
	}

	a := [][]float64{
		{sx[0], sx[1], sx[2]},
		{sx[1], sx[2], sx[3]},
		{sx[2], sx[3], sx[4]},
	}
	coef, err := matrix.SolveDense(a, sy[:])
	if err != nil {
		return opt, nil
	}

	c0, c1, c2 := coef[0], coef[1], coef[2]
	if !(c2 > 0) {
		return opt, nil
	}

	xv := -c1 / (2 * c2)
	xlo := (angles[lo] - origin) / scale
	xhi := (angles[hi] - origin) / scale
	if xv < xlo || xv > xhi {
		return opt, nil
	}

	yv := c0 + c1*xv + c2*xv*xv
	if !(yv > 0) {
		return opt, nil
	}

	return Optimum{
		Index:    opt.Index,
		Angle:    origin + xv*scale,
		Diameter: yv * yScale,
		Refined:  true,
	}, nil
}
