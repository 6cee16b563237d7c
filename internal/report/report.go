// Package report composes footprint summaries, reference-average comparisons
// and improvement tips into environmental impact reports.
package report

import (
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rgreen/ecotrack/internal/advice"
	"github.com/rgreen/ecotrack/internal/tracker"
)

// reportTipCount is the number of improvement tips in a full report.
const reportTipCount = 5

// averageFootprints holds per-period reference averages in kg CO2e for each
// tracked category. The figures are illustrative national averages, not
// measured data.
var averageFootprints = map[string]map[string]float64{
	"week": {
		tracker.CategoryTransportation: 23,
		tracker.CategoryEnergy:         58,
		tracker.CategoryFood:           35,
		tracker.CategoryPurchases:      18,
	},
	"month": {
		tracker.CategoryTransportation: 92,
		tracker.CategoryEnergy:         232,
		tracker.CategoryFood:           140,
		tracker.CategoryPurchases:      72,
	},
	"year": {
		tracker.CategoryTransportation: 1104,
		tracker.CategoryEnergy:         2784,
		tracker.CategoryFood:           1680,
		tracker.CategoryPurchases:      864,
	},
}

// CategoryComparison relates one category of the user's footprint to the
// reference average.
type CategoryComparison struct {
	// User is the user's aggregated emissions in kg CO2e.
	User float64 `json:"user"`

	// Average is the reference average for the period.
	Average float64 `json:"average"`

	// DifferencePercent is (user-average)/average*100 rounded to one
	// decimal, or 0 when the average is 0.
	DifferencePercent float64 `json:"difference_percent"`
}

// Report is the structured environmental impact report.
type Report struct {
	// ID identifies this report instance.
	ID string `json:"id"`

	// TimePeriod is the requested window keyword.
	TimePeriod string `json:"time_period"`

	// Footprint is the aggregated summary for the period.
	Footprint tracker.Summary `json:"carbon_footprint"`

	// Comparison holds per-category comparisons plus a "total" key.
	Comparison map[string]CategoryComparison `json:"comparison"`

	// ImprovementTips are up to five personalized tips.
	ImprovementTips []string `json:"improvement_tips"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// Reporter generates reports for one tracker.
type Reporter struct {
	tracker *tracker.Tracker
	advisor *advice.Advisor
	now     func() time.Time
	entropy io.Reader
}

// Option customizes a Reporter.
type Option func(*Reporter)

// WithClock injects the time source used for the generation timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) { r.now = now }
}

// WithEntropy injects the entropy source for report IDs.
func WithEntropy(entropy io.Reader) Option {
	return func(r *Reporter) { r.entropy = entropy }
}

// New creates a Reporter over tr, drawing tips from adv.
func New(tr *tracker.Tracker, adv *advice.Advisor, opts ...Option) *Reporter {
	r := &Reporter{
		tracker: tr,
		advisor: adv,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.entropy == nil {
		seed := uint64(r.now().UnixNano())
		r.entropy = ulid.Monotonic(rand.NewChaCha8(chachaSeed(seed)), 0)
	}
	return r
}

// chachaSeed expands a 64-bit seed into the 32-byte seed ChaCha8 wants.
func chachaSeed(seed uint64) [32]byte {
	var out [32]byte
	for i := range 4 {
		v := seed + uint64(i)
		for j := range 8 {
			out[i*8+j] = byte(v >> (8 * j))
		}
	}
	return out
}

// Generate builds the report for period. Tips are ranked against the
// current-month footprint regardless of the requested period, mirroring how
// tip personalization works everywhere else.
//
// An unrecognized period returns tracker.ErrUnknownPeriod untouched.
func (r *Reporter) Generate(period string) (Report, error) {
	summary, err := r.tracker.Summary(period)
	if err != nil {
		return Report{}, err
	}

	monthly, err := r.tracker.Summary("month")
	if err != nil {
		return Report{}, err
	}

	tips, err := r.advisor.Tips(monthly.ByCategory(), "", reportTipCount)
	if err != nil {
		return Report{}, err
	}

	now := r.now()
	return Report{
		ID:              ulid.MustNew(ulid.Timestamp(now), r.entropy).String(),
		TimePeriod:      period,
		Footprint:       summary,
		Comparison:      compare(summary),
		ImprovementTips: tips,
		GeneratedAt:     now,
	}, nil
}

// compare builds the per-category and total comparisons against the
// reference averages for the summary's period.
func compare(summary tracker.Summary) map[string]CategoryComparison {
	averages := averageFootprints[summary.Period]
	byCategory := summary.ByCategory()

	comparison := make(map[string]CategoryComparison, len(averages)+1)
	var avgTotal float64
	for cat, avg := range averages {
		comparison[cat] = newComparison(byCategory[cat], avg)
		avgTotal += avg
	}
	comparison["total"] = newComparison(summary.Total, avgTotal)

	return comparison
}

// newComparison computes the percent difference, rounded to one decimal and
// guarded against a zero average.
func newComparison(user, average float64) CategoryComparison {
	c := CategoryComparison{User: user, Average: average}
	if average > 0 {
		c.DifferencePercent = math.Round((user-average)/average*1000) / 10
	}
	return c
}
