package optics

import (
	"fmt"
	"strings"
)

// TermKind identifies one of the four probe-diameter contributions.
type TermKind int

const (
	TermBrightness TermKind = iota
	TermDiffraction
	TermChromatic
	TermSpherical
)

// Terms lists every contribution in presentation order.
var Terms = []TermKind{TermBrightness, TermDiffraction, TermChromatic, TermSpherical}

var termNames = [...]string{
	TermBrightness:  "brightness",
	TermDiffraction: "diffraction",
	TermChromatic:   "chromatic",
	TermSpherical:   "spherical",
}

func (t TermKind) String() string {
	if t < 0 || int(t) >= len(termNames) {
		return fmt.Sprintf("TermKind(%d)", int(t))
	}
	return termNames[t]
}

func ParseTermKind(s string) (TermKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range termNames {
		if name == n || (len(name) == 1 && name[0] == n[0]) {
			return TermKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown aberration term: %q", s)
}

// Ratio is the percentage share of one term in the total diameter, per angle.
type Ratio []float64

// ContributionRatio returns 100 * (term / total) for every angle of curves.
func ContributionRatio(curves *CurveSet, term TermKind) (Ratio, error) {
	if curves == nil {
		return nil, fmt.Errorf("%w: nil curve set", ErrInvalidInput)
	}
	values := curves.Term(term)
	if values == nil {
		return nil, fmt.Errorf("%w: unknown term %s", ErrInvalidInput, term)
	}
	if len(values) != len(curves.Total) {
		return nil, fmt.Errorf("%w: %s has %d points, total has %d", ErrInvalidInput, term, len(values), len(curves.Total))
	}

	ratio := make(Ratio, len(values))
	for i, v := range values {
		if curves.Total[i] == 0 {
			return nil, fmt.Errorf("%w: total diameter is zero at index %d", ErrDivisionByZero, i)
		}
		ratio[i] = 100 * (v / curves.Total[i])
	}
	return ratio, nil
}
