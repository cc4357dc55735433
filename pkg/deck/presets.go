package deck

import (
	"fmt"
	"strings"
)

// PresetNames lists the built-in analyses in display order.
var PresetNames = []string{"probe", "current", "spread", "energy"}

// Preset returns a built-in deck:
//
//	probe    contributions and optimum at the reference column
//	current  brightness share for Ip = 1, 10, 100 pA
//	spread   chromatic share for dE = 0.01, 0.1, 1 eV
//	energy   chromatic share for E = 1, 10, 20 keV
func Preset(name string) (Deck, error) {
	d := Default()

	switch strings.ToLower(name) {
	case "probe":
		d.Title = "SEM probe size contributions"
	case "current":
		d.Title = "Probe current contribution to total"
		d.Sweep = &Sweep{Field: "probe_current", Values: []Value{1e-12, 10e-12, 100e-12}, Ratio: "brightness"}
	case "spread":
		d.Title = "Chromatic aberration contribution to total"
		d.Sweep = &Sweep{Field: "energy_spread", Values: []Value{0.01, 0.1, 1}, Ratio: "chromatic"}
	case "energy":
		d.Title = "Chromatic aberration contribution vs beam energy"
		d.Sweep = &Sweep{Field: "beam_energy", Values: []Value{1e3, 10e3, 20e3}, Ratio: "chromatic"}
	default:
		return Deck{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames, ", "))
	}

	return d, nil
}
