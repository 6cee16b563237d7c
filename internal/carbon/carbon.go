// Package carbon converts user-reported activities into estimated
// carbon-dioxide-equivalent emissions.
//
// Every calculator is a pure function over a static emission-factor table:
// no I/O, no clock, no state. Quantities go in, kg CO2e comes out, rounded
// to two decimals. Persistence and windowing live in the tracker package.
package carbon

import (
	"maps"
	"math"
	"slices"
)

// precision is the scale factor for two-decimal rounding.
const precision = 100

// Round2 rounds an emissions value to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*precision) / precision
}

// sortedKeys returns the keys of a factor table in stable order, for use in
// user-facing guidance messages.
func sortedKeys(m map[string]float64) []string {
	return slices.Sorted(maps.Keys(m))
}
