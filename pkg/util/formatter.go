package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/edp1096/semprobe/internal/consts"
	"github.com/edp1096/semprobe/pkg/optics"
)

// FormatValueFactor formats value with a metric prefix, rounded to three
// decimals. 3.2152e-8, "m" -> "32.152 nm"
func FormatValueFactor(value float64, unit string) string {
	scaled, prefix := humanize.ComputeSI(value)
	num := strconv.FormatFloat(scaled, 'f', 3, 64)
	num = strings.TrimRight(strings.TrimRight(num, "0"), ".")
	if num == "-0" {
		num = "0"
	}
	return num + " " + prefix + unit
}

func FormatDiameter(d float64) string {
	return FormatValueFactor(d, "m")
}

func FormatAngle(rad float64) string {
	return fmt.Sprintf("%.2f mrad", rad/consts.MILLI)
}

func FormatPercent(value float64) string {
	return fmt.Sprintf("%5.1f %%", value) // " 86.3 %"
}

// FormatFieldValue formats an SI parameter value in the unit it is usually
// quoted in (energies in eV).
func FormatFieldValue(field optics.FieldKind, value float64) string {
	switch field {
	case optics.FieldProbeCurrent:
		return FormatValueFactor(value, "A")
	case optics.FieldCc, optics.FieldCs:
		return FormatValueFactor(value, "m")
	case optics.FieldBeamEnergy, optics.FieldEnergySpread:
		return FormatValueFactor(value/consts.EV, "eV")
	}
	return fmt.Sprintf("%g", value)
}
