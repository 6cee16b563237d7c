package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgreen/ecotrack/internal/carbon"
	"github.com/rgreen/ecotrack/internal/store"
)

// brokenStore fails every operation, for degradation tests.
type brokenStore struct{}

func (brokenStore) Read(context.Context, string, string) ([]byte, error) {
	return nil, assert.AnError
}
func (brokenStore) Write(context.Context, string, string, []byte) error { return assert.AnError }
func (brokenStore) Close() error                                        { return nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewStartsFromDefaults(t *testing.T) {
	ctx := context.Background()
	tr := New(ctx, "user123", store.NewFileStore(t.TempDir()))

	records := tr.Records()
	assert.Empty(t, records.Transportation)
	assert.Empty(t, records.Energy)
	assert.Empty(t, records.Food)
	assert.Empty(t, records.Purchases)

	prefs := tr.Preferences()
	assert.Equal(t, "omnivore", prefs.DietType)
	assert.Equal(t, "apartment", prefs.HomeType)
	assert.Equal(t, "car", prefs.TransportationPrimary)
	assert.Empty(t, prefs.Interests)
}

func TestTrackingConfirmationsAndPersistence(t *testing.T) {
	ctx := context.Background()
	bs := store.NewFileStore(t.TempDir())
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	tr := New(ctx, "user123", bs, WithClock(fixedClock(now)))

	res, err := tr.TrackTransportation(ctx, "car", 15.5, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tracked 15.5 km via car with carbon impact of 2.98 kg CO2e", res.Message)
	assert.True(t, res.Persisted)

	res, err = tr.TrackEnergy(ctx, "electricity", 120, "kWh")
	require.NoError(t, err)
	assert.Equal(t, "Tracked 120 kWh of electricity with carbon impact of 27.96 kg CO2e", res.Message)

	res, err = tr.TrackFood(ctx, []carbon.FoodItem{
		{Type: "vegetables", Amount: 1.2, Local: true, Organic: true},
		{Type: "chicken", Amount: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "Tracked 2 food items with total carbon impact of 5.18 kg CO2e", res.Message)

	res, err = tr.TrackPurchase(ctx, "electronics", "Smartphone", 800, false)
	require.NoError(t, err)
	assert.Equal(t, "Tracked purchase: Smartphone with estimated carbon impact of 560 kg CO2e", res.Message)

	// A fresh tracker over the same store must reproduce the identical
	// record set: same fields, same order.
	reloaded := New(ctx, "user123", bs, WithClock(fixedClock(now)))
	assert.Equal(t, tr.Records(), reloaded.Records())
}

func TestTrackEnergyConvertsTherms(t *testing.T) {
	ctx := context.Background()
	tr := New(ctx, "user123", store.NewFileStore(t.TempDir()))

	_, err := tr.TrackEnergy(ctx, "natural_gas", 10, "therms")
	require.NoError(t, err)

	records := tr.Records()
	require.Len(t, records.Energy, 1)
	assert.Equal(t, "kWh", records.Energy[0].Unit)
	assert.InDelta(t, 293.001, records.Energy[0].Amount, 0.001)
	assert.InDelta(t, 53.03, records.Energy[0].Emissions, 0.001)
}

func TestUserInputErrorsRecordNothing(t *testing.T) {
	ctx := context.Background()
	tr := New(ctx, "user123", store.NewFileStore(t.TempDir()))

	_, err := tr.TrackTransportation(ctx, "teleport", 10, 1)
	require.ErrorIs(t, err, carbon.ErrUnknownMode)

	_, err = tr.TrackEnergy(ctx, "electricity", 10, "joules")
	require.ErrorIs(t, err, carbon.ErrUnsupportedUnit)

	_, err = tr.TrackFood(ctx, []carbon.FoodItem{
		{Type: "vegetables", Amount: 1.2},
		{Type: "beef", Amount: -5},
	})
	require.ErrorIs(t, err, carbon.ErrNegativeQuantity)

	records := tr.Records()
	assert.Empty(t, records.Transportation)
	assert.Empty(t, records.Energy)
	assert.Empty(t, records.Food)
}

func TestStorageFailuresDegrade(t *testing.T) {
	ctx := context.Background()
	tr := New(ctx, "user123", brokenStore{})

	// Load degraded to defaults rather than failing.
	assert.Equal(t, "omnivore", tr.Preferences().DietType)

	// Tracking still works; the failed write is reported, not raised.
	res, err := tr.TrackTransportation(ctx, "bus", 10, 1)
	require.NoError(t, err)
	assert.False(t, res.Persisted)
	assert.Len(t, tr.Records().Transportation, 1)
}

func TestCorruptDocumentDegradesToDefaults(t *testing.T) {
	ctx := context.Background()
	bs := store.NewFileStore(t.TempDir())
	require.NoError(t, bs.Write(ctx, "user123", "carbon_footprint.json", []byte("not json")))

	tr := New(ctx, "user123", bs)
	assert.Empty(t, tr.Records().Transportation)
}

func TestSetPreferencesMergesRecognizedKeys(t *testing.T) {
	ctx := context.Background()
	bs := store.NewFileStore(t.TempDir())
	tr := New(ctx, "user123", bs)

	ok := tr.SetPreferences(ctx, map[string]any{
		"diet_type": "vegetarian",
		"interests": []string{"cycling", "gardening"},
		"shoe_size": 43, // unrecognized, ignored
	})
	assert.True(t, ok)

	prefs := tr.Preferences()
	assert.Equal(t, "vegetarian", prefs.DietType)
	assert.Equal(t, []string{"cycling", "gardening"}, prefs.Interests)
	assert.Equal(t, "apartment", prefs.HomeType)

	// Survives reload.
	reloaded := New(ctx, "user123", bs)
	assert.Equal(t, prefs, reloaded.Preferences())
}

func TestLoadsZonelessTimestampsFromOriginalTool(t *testing.T) {
	ctx := context.Background()
	bs := store.NewFileStore(t.TempDir())

	doc := `{"transportation":[{"date":"2026-08-27T09:30:00.123456","mode":"car",` +
		`"distance":10,"passengers":1,"emissions":1.92}],"energy":[],"food":[],"purchases":[]}`
	require.NoError(t, bs.Write(ctx, "user123", "carbon_footprint.json", []byte(doc)))

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	tr := New(ctx, "user123", bs, WithClock(fixedClock(now)))

	summary, err := tr.Summary("week")
	require.NoError(t, err)
	assert.InDelta(t, 1.92, summary.Transportation, 0.001)
}
