package tracker

import (
	"fmt"
	"time"

	"github.com/rgreen/ecotrack/internal/carbon"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownPeriod indicates a time period outside week/month/year. It is a
// user-input error, never a fault.
const ErrUnknownPeriod = constError("unsupported time period")

// periodDays maps the recognized period keywords to their window length.
var periodDays = map[string]int{
	"week":  7,
	"month": 30,
	"year":  365,
}

// Periods returns the recognized time period keywords.
func Periods() []string {
	return []string{"week", "month", "year"}
}

// Summary is the aggregated footprint over one time window. It is derived
// state: recomputed on every request, never persisted.
type Summary struct {
	Period         string  `json:"period"`
	Transportation float64 `json:"transportation"`
	Energy         float64 `json:"energy"`
	Food           float64 `json:"food"`
	Purchases      float64 `json:"purchases"`
	Total          float64 `json:"total"`
}

// ByCategory returns the per-category values keyed by category name.
func (s Summary) ByCategory() map[string]float64 {
	return map[string]float64{
		CategoryTransportation: s.Transportation,
		CategoryEnergy:         s.Energy,
		CategoryFood:           s.Food,
		CategoryPurchases:      s.Purchases,
	}
}

// Summary aggregates emissions for the window ending at the tracker's
// current clock reading. period must be "week", "month" or "year"; anything
// else returns ErrUnknownPeriod. Entries timestamped exactly at the window
// start are included. All values are rounded to two decimals, and Total is
// the rounded sum of the unrounded category sums.
func (t *Tracker) Summary(period string) (Summary, error) {
	days, ok := periodDays[period]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q, use one of %v", ErrUnknownPeriod, period, Periods())
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	start := t.now().Add(-time.Duration(days) * 24 * time.Hour)
	inWindow := func(ts Timestamp) bool { return !ts.Before(start) }

	var summary Summary
	summary.Period = period

	for _, entry := range t.records.Transportation {
		if inWindow(entry.Date) {
			summary.Transportation += entry.Emissions
		}
	}
	for _, entry := range t.records.Energy {
		if inWindow(entry.Date) {
			summary.Energy += entry.Emissions
		}
	}
	for _, entry := range t.records.Food {
		if inWindow(entry.Date) {
			summary.Food += entry.TotalEmissions
		}
	}
	for _, entry := range t.records.Purchases {
		if inWindow(entry.Date) {
			summary.Purchases += entry.Emissions
		}
	}

	total := summary.Transportation + summary.Energy + summary.Food + summary.Purchases

	summary.Transportation = carbon.Round2(summary.Transportation)
	summary.Energy = carbon.Round2(summary.Energy)
	summary.Food = carbon.Round2(summary.Food)
	summary.Purchases = carbon.Round2(summary.Purchases)
	summary.Total = carbon.Round2(total)

	return summary, nil
}
