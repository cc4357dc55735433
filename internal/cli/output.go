package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/edp1096/semprobe/pkg/analysis"
	"github.com/edp1096/semprobe/pkg/optics"
	"github.com/edp1096/semprobe/pkg/util"
)

func printCurves(w io.Writer, angles optics.AngleSweep, curves *optics.CurveSet, stride int) {
	fmt.Fprintf(w, "\nProbe diameter contributions (%d angles):\n", len(angles))
	fmt.Fprintf(w, "%-12s", "Alpha")
	for _, term := range optics.Terms {
		fmt.Fprintf(w, "%-14s", titleCase(term.String()))
	}
	fmt.Fprintf(w, "%-14s\n", "Total")
	fmt.Fprintln(w, strings.Repeat("-", 12+14*5))

	for i := 0; i < len(angles); i += stride {
		fmt.Fprintf(w, "%-12s", util.FormatAngle(angles[i]))
		for _, term := range optics.Terms {
			fmt.Fprintf(w, "%-14s", util.FormatDiameter(curves.Term(term)[i]))
		}
		fmt.Fprintf(w, "%-14s\n", util.FormatDiameter(curves.Total[i]))
	}
}

func printOptimum(w io.Writer, sampled, fitted analysis.Optimum) {
	fmt.Fprintf(w, "\nMinimum at alpha = %s, d = %s\n", util.FormatAngle(sampled.Angle), util.FormatDiameter(sampled.Diameter))
	if fitted.Refined {
		fmt.Fprintf(w, "Fitted minimum at alpha = %s, d = %s\n", util.FormatAngle(fitted.Angle), util.FormatDiameter(fitted.Diameter))
	}
}

func printSweep(w io.Writer, res *analysis.SweepResult, stride int) {
	fmt.Fprintf(w, "\nSweep %s: %s\n", res.Field, ratioLabel(res))

	fmt.Fprintf(w, "%-12s", "Alpha")
	for _, e := range res.Entries {
		fmt.Fprintf(w, "%-14s", util.FormatFieldValue(res.Field, e.Value))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 12+14*len(res.Entries)))

	for i := 0; i < len(res.Angles); i += stride {
		fmt.Fprintf(w, "%-12s", util.FormatAngle(res.Angles[i]))
		for _, e := range res.Entries {
			v := entryValues(res, e)[i]
			if res.HasRatio {
				fmt.Fprintf(w, "%-14s", util.FormatPercent(v))
			} else {
				fmt.Fprintf(w, "%-14s", util.FormatDiameter(v))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nOptimum per value:")
	for _, e := range res.Entries {
		fmt.Fprintf(w, "  %s=%-10s alpha = %s, d = %s\n",
			res.Field, util.FormatFieldValue(res.Field, e.Value),
			util.FormatAngle(e.Optimum.Angle), util.FormatDiameter(e.Optimum.Diameter))
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
