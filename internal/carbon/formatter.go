package carbon

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
var printer = message.NewPrinter(language.English)

// FormatKg formats an emissions value with thousand separators and two
// decimals, e.g. FormatKg(2784.5) returns "2,784.50".
func FormatKg(v float64) string {
	rounded := Round2(v)

	intPart, fracPart := math.Modf(math.Abs(rounded))
	frac := fmt.Sprintf("%.2f", fracPart)

	sign := ""
	if rounded < 0 {
		sign = "-"
	}

	// frac is "0.xx"; keep only the digits after the point.
	return sign + printer.Sprintf("%d", int64(intPart)) + strings.TrimPrefix(frac, "0")
}

// FormatKgCO2e formats an emissions value with its unit suffix,
// e.g. "2,784.50 kg CO2e".
func FormatKgCO2e(v float64) string {
	return FormatKg(v) + " kg CO2e"
}
