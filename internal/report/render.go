// Package report renders validation results for the terminal. Rendering
// consumes the structured report values only; evaluator logic never
// formats its own output.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/plasmakit/tokaval/internal/checks"
	"github.com/plasmakit/tokaval/internal/mhd"
	"github.com/plasmakit/tokaval/internal/plasma"
)

// Equilibrium renders the parameter block that precedes the mode table.
func Equilibrium(eq plasma.Equilibrium) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("PLASMA EQUILIBRIUM") + "\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  R = %.2f m\ta = %.2f m\tB = %.1f T\n",
		eq.MajorRadius, eq.MinorRadius, eq.Field)
	fmt.Fprintf(w, "  beta = %.2f%%\tIp = %.1f MA\tH = %.1f\n",
		eq.Beta*100, eq.CurrentMA(), eq.Enhancement)
	fmt.Fprintf(w, "  q0 = %.2f\tq95 = %.2f\tkappa = %.2f, delta = %.2f\n",
		eq.Q0, eq.Q95, eq.Elongation, eq.Triangularity)
	w.Flush()
	return b.String()
}

// MHD renders the stability report: one row per mode, the disruption
// probability, and the overall banner.
func MHD(rep mhd.Report) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("MHD STABILITY") + "\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  MODE\tSTATUS\tVALUE\tTHRESHOLD\tMARGIN")
	for _, res := range rep.Results {
		fmt.Fprintf(w, "  %s\t%s\t%.4g\t%.4g\t%+.4g\n",
			res.Mode.Title(), verdictLabel(res.Verdict), res.Value, res.Threshold, res.Margin())
	}
	w.Flush()

	b.WriteString("\n")
	fmt.Fprintf(&b, "  disruption probability: %s\n",
		MetricValue.Render(fmt.Sprintf("%.2e", rep.DisruptionProbability)))
	b.WriteString("\n")

	if rep.Stable {
		b.WriteString(Banner("ALL MHD MODES STABLE: DISRUPTION-FREE OPERATION", true))
	} else {
		b.WriteString(Banner("UNSTABLE MODES PRESENT: DESIGN NOT FEASIBLE", false))
	}
	b.WriteString("\n")
	return b.String()
}

// Checks renders an engineering or ignition check table with its banner.
func Checks(title, passText, failText string, cs []checks.Check) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title) + "\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CHECK\tSTATUS\tRESULT")
	for _, c := range cs {
		status := StatusPass.Render("✓ PASS")
		if !c.Pass {
			status = StatusFail.Render("✗ FAIL")
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Name, status, c.Detail)
	}
	w.Flush()

	b.WriteString("\n")
	if checks.AllPass(cs) {
		b.WriteString(Banner(passText, true))
	} else {
		b.WriteString(Banner(failText, false))
	}
	b.WriteString("\n")
	return b.String()
}

// Scan plots the ballooning stability margin across the radial scan and
// lists the per-sample values.
func Scan(samples []mhd.Sample, height int) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("BALLOONING RADIAL SCAN") + "\n\n")

	margins := make([]float64, len(samples))
	for i, s := range samples {
		margins[i] = s.Margin()
	}
	b.WriteString(asciigraph.Plot(margins,
		asciigraph.Height(height),
		asciigraph.Caption("stability margin (alpha_crit - alpha) vs radius"),
	))
	b.WriteString("\n\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  r\tq(r)\talpha\talpha_crit\tstable")
	for _, s := range samples {
		stable := StatusPass.Render("✓")
		if !s.Stable {
			stable = StatusFail.Render("✗")
		}
		fmt.Fprintf(w, "  %.3f\t%.3f\t%.4f\t%.4f\t%s\n", s.R, s.Q, s.Alpha, s.AlphaCrit, stable)
	}
	w.Flush()
	return b.String()
}

func verdictLabel(v mhd.Verdict) string {
	switch v {
	case mhd.Stable:
		return StatusPass.Render("✓ STABLE")
	case mhd.Unstable:
		return StatusFail.Render("✗ UNSTABLE")
	default:
		return StatusSkip.Render("– N/A")
	}
}
