package report

import (
	"context"
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgreen/ecotrack/internal/advice"
	"github.com/rgreen/ecotrack/internal/carbon"
	"github.com/rgreen/ecotrack/internal/store"
	"github.com/rgreen/ecotrack/internal/tracker"
)

// newReporter builds a reporter over a fresh tracker with a pinned clock and
// seeded randomness.
func newReporter(t *testing.T, now time.Time) (*tracker.Tracker, *Reporter) {
	t.Helper()

	tr := tracker.New(context.Background(), "user123", store.NewFileStore(t.TempDir()),
		tracker.WithClock(func() time.Time { return now }))
	adv := advice.New(advice.WithRand(rand.New(rand.NewPCG(11, 0))))

	return tr, New(tr, adv, WithClock(func() time.Time { return now }))
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tr, rep := newReporter(t, now)

	_, err := tr.TrackTransportation(ctx, "car", 100, 1) // 19.2
	require.NoError(t, err)
	_, err = tr.TrackEnergy(ctx, "electricity", 100, "kWh") // 23.3
	require.NoError(t, err)

	got, err := rep.Generate("week")
	require.NoError(t, err)

	assert.Equal(t, "week", got.TimePeriod)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, now, got.GeneratedAt)
	assert.Len(t, got.ImprovementTips, 5)

	// Transportation: user 19.2 vs average 23 -> -16.5%.
	transport := got.Comparison[tracker.CategoryTransportation]
	assert.InDelta(t, 19.2, transport.User, 0.001)
	assert.InDelta(t, 23, transport.Average, 0.001)
	assert.InDelta(t, -16.5, transport.DifferencePercent, 0.001)

	// Total average is the sum of the category averages.
	total := got.Comparison["total"]
	assert.InDelta(t, 134, total.Average, 0.001) // 23+58+35+18
	assert.InDelta(t, 42.5, total.User, 0.001)
	assert.Equal(t, VerdictLower, got.Verdict())
}

func TestGenerateUnknownPeriod(t *testing.T) {
	_, rep := newReporter(t, time.Now())

	_, err := rep.Generate("decade")
	assert.ErrorIs(t, err, tracker.ErrUnknownPeriod)
}

func TestComparisonZeroAverageGuard(t *testing.T) {
	c := newComparison(10, 0)
	assert.Zero(t, c.DifferencePercent)
}

func TestDifferencePercentRounding(t *testing.T) {
	// (50 - 35) / 35 * 100 = 42.857... -> 42.9
	c := newComparison(50, 35)
	assert.InDelta(t, 42.9, c.DifferencePercent, 0.001)
}

func TestTextRendering(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tr, rep := newReporter(t, now)

	_, err := tr.TrackFood(ctx, []carbon.FoodItem{{Type: "beef", Amount: 10}}) // 270
	require.NoError(t, err)

	got, err := rep.Generate("week")
	require.NoError(t, err)
	text := got.Text()

	assert.Contains(t, text, "ENVIRONMENTAL IMPACT REPORT - WEEK")
	assert.Contains(t, text, "Generated on August 29, 2026")
	// Whole values render with one decimal, as the original tool printed
	// rounded floats.
	assert.Contains(t, text, "- Food Choices: 270.0 kg CO2e")
	assert.Contains(t, text, "- TOTAL: 270.0 kg CO2e")
	assert.Contains(t, text, "- Transportation: 0.0 kg CO2e")
	// 270 vs 134 average -> 101.5% higher.
	assert.Contains(t, text, "Your footprint is 101.5% HIGHER than average.")
	// Five numbered tips.
	numbered := regexp.MustCompile(`(?m)^\d+\. `)
	assert.Len(t, numbered.FindAllString(text, -1), 5)
}

func TestVerdictAboutAverage(t *testing.T) {
	r := Report{Comparison: map[string]CategoryComparison{"total": {}}}
	assert.Equal(t, VerdictAverage, r.Verdict())
}
