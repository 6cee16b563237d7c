package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Verdict classifies a footprint against the reference average.
type Verdict string

// Verdicts for the total-footprint comparison.
const (
	VerdictLower   Verdict = "lower"
	VerdictHigher  Verdict = "higher"
	VerdictAverage Verdict = "average"
)

// Verdict returns the comparison verdict for the report's total footprint.
func (r Report) Verdict() Verdict {
	diff := r.Comparison["total"].DifferencePercent
	switch {
	case diff < 0:
		return VerdictLower
	case diff > 0:
		return VerdictHigher
	default:
		return VerdictAverage
	}
}

// num renders a float the way the original tool's reports did: shortest
// representation, but whole values keep one decimal ("270.0", not "270").
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Text renders the report as the multi-line plain-text format.
func (r Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "ENVIRONMENTAL IMPACT REPORT - %s\n", strings.ToUpper(r.TimePeriod))
	fmt.Fprintf(&b, "Generated on %s\n\n", r.GeneratedAt.Format("January 2, 2006"))

	b.WriteString("YOUR CARBON FOOTPRINT SUMMARY:\n")
	fmt.Fprintf(&b, "- Transportation: %s kg CO2e\n", num(r.Footprint.Transportation))
	fmt.Fprintf(&b, "- Home Energy: %s kg CO2e\n", num(r.Footprint.Energy))
	fmt.Fprintf(&b, "- Food Choices: %s kg CO2e\n", num(r.Footprint.Food))
	fmt.Fprintf(&b, "- Purchases: %s kg CO2e\n", num(r.Footprint.Purchases))
	fmt.Fprintf(&b, "- TOTAL: %s kg CO2e\n\n", num(r.Footprint.Total))

	diff := r.Comparison["total"].DifferencePercent
	b.WriteString("COMPARISON TO AVERAGE:\n")
	switch r.Verdict() {
	case VerdictLower:
		fmt.Fprintf(&b, "Your footprint is %s%% LOWER than average. Great job!\n\n", num(math.Abs(diff)))
	case VerdictHigher:
		fmt.Fprintf(&b, "Your footprint is %s%% HIGHER than average. There's room for improvement.\n\n", num(diff))
	default:
		b.WriteString("Your footprint is about AVERAGE.\n\n")
	}

	b.WriteString("PERSONALIZED IMPROVEMENT TIPS:\n")
	for i, tip := range r.ImprovementTips {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
	}

	return b.String()
}
