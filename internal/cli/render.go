package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgreen/ecotrack/internal/carbon"
	"github.com/rgreen/ecotrack/internal/report"
	"github.com/rgreen/ecotrack/internal/tracker"
)

// Rendering styles shared by the read commands.
var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Width(16)
	totalStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderTop(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// summaryLabels maps category keys to their display names.
var summaryLabels = map[string]string{
	tracker.CategoryTransportation: "Transportation",
	tracker.CategoryEnergy:         "Home Energy",
	tracker.CategoryFood:           "Food Choices",
	tracker.CategoryPurchases:      "Purchases",
}

// renderSummary renders the footprint summary as an aligned table.
func renderSummary(summary tracker.Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Carbon footprint, last %s", summary.Period)))
	b.WriteString("\n")

	byCategory := summary.ByCategory()
	for _, cat := range tracker.Categories() {
		b.WriteString(labelStyle.Render(summaryLabels[cat]))
		b.WriteString(carbon.FormatKgCO2e(byCategory[cat]))
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(
		labelStyle.Render("TOTAL") + carbon.FormatKgCO2e(summary.Total)))
	b.WriteString("\n")

	return b.String()
}

// renderComparison renders the user-vs-average table of a report.
func renderComparison(rep report.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Compared to average"))
	b.WriteString("\n")

	for _, cat := range tracker.Categories() {
		c, ok := rep.Comparison[cat]
		if !ok {
			continue
		}
		b.WriteString(labelStyle.Render(summaryLabels[cat]))
		b.WriteString(fmt.Sprintf("%s vs %s (%+.1f%%)\n",
			carbon.FormatKg(c.User), carbon.FormatKg(c.Average), c.DifferencePercent))
	}

	if total, ok := rep.Comparison["total"]; ok {
		b.WriteString(labelStyle.Render("TOTAL"))
		b.WriteString(fmt.Sprintf("%s vs %s (%+.1f%%)\n",
			carbon.FormatKg(total.User), carbon.FormatKg(total.Average), total.DifferencePercent))
	}

	return b.String()
}
