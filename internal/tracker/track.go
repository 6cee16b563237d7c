package tracker

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rgreen/ecotrack/internal/carbon"
)

// TrackResult is the outcome of a tracking operation.
type TrackResult struct {
	// Message is the human-readable confirmation.
	Message string

	// Emissions is the recorded impact in kg CO2e. For food this is the
	// batch total.
	Emissions float64

	// Persisted reports whether the write-through to storage succeeded.
	// False means the entry exists in memory but not on disk.
	Persisted bool
}

// num renders a quantity the way it was entered, without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TrackTransportation records one trip and persists the updated log.
//
// Returns a user-input error (carbon.ErrUnknownMode, ErrNegativeQuantity)
// without recording anything; storage failures only clear Persisted.
func (t *Tracker) TrackTransportation(ctx context.Context, mode string, distanceKm float64, passengers int) (TrackResult, error) {
	emissions, err := carbon.Transportation(mode, distanceKm, passengers)
	if err != nil {
		return TrackResult{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.records.Transportation = append(t.records.Transportation, TransportEntry{
		Date:       NewTimestamp(t.now()),
		Mode:       mode,
		Distance:   distanceKm,
		Passengers: passengers,
		Emissions:  emissions,
	})

	return TrackResult{
		Message: fmt.Sprintf("Tracked %s km via %s with carbon impact of %s kg CO2e",
			num(distanceKm), mode, num(emissions)),
		Emissions: emissions,
		Persisted: t.saveBlob(ctx, footprintBlob, t.records),
	}, nil
}

// TrackEnergy records home energy consumption and persists the updated log.
// Therms of natural gas are converted to kWh before recording, so the entry
// always carries kWh.
func (t *Tracker) TrackEnergy(ctx context.Context, energyType string, amount float64, unit string) (TrackResult, error) {
	usage, err := carbon.Energy(energyType, amount, unit)
	if err != nil {
		return TrackResult{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.records.Energy = append(t.records.Energy, EnergyEntry{
		Date:      NewTimestamp(t.now()),
		Type:      energyType,
		Amount:    usage.AmountKWh,
		Unit:      "kWh",
		Emissions: usage.Emissions,
	})

	return TrackResult{
		Message: fmt.Sprintf("Tracked %s kWh of %s with carbon impact of %s kg CO2e",
			num(usage.AmountKWh), energyType, num(usage.Emissions)),
		Emissions: usage.Emissions,
		Persisted: t.saveBlob(ctx, footprintBlob, t.records),
	}, nil
}

// TrackFood records a batch of food items as one composite entry. Items with
// an unrecognized type are dropped silently; an all-unknown batch still
// records an entry with zero emissions. A negative amount anywhere in the
// batch returns carbon.ErrNegativeQuantity and records nothing.
func (t *Tracker) TrackFood(ctx context.Context, items []carbon.FoodItem) (TrackResult, error) {
	usage, err := carbon.Food(items)
	if err != nil {
		return TrackResult{}, err
	}

	tracked := make([]FoodEntryItem, 0, len(usage.Items))
	for _, item := range usage.Items {
		tracked = append(tracked, FoodEntryItem{
			Type:      item.Type,
			Amount:    item.Amount,
			Local:     item.Local,
			Organic:   item.Organic,
			Emissions: item.Emissions,
		})
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.records.Food = append(t.records.Food, FoodEntry{
		Date:           NewTimestamp(t.now()),
		Items:          tracked,
		TotalEmissions: usage.Total,
	})

	return TrackResult{
		Message: fmt.Sprintf("Tracked %d food items with total carbon impact of %s kg CO2e",
			len(tracked), num(usage.Total)),
		Emissions: usage.Total,
		Persisted: t.saveBlob(ctx, footprintBlob, t.records),
	}, nil
}

// TrackPurchase records a purchase and persists the updated log. The stored
// category is the normalized one, including the silent household fallback.
func (t *Tracker) TrackPurchase(ctx context.Context, category, description string, price float64, ecoFriendly bool) (TrackResult, error) {
	usage, err := carbon.Purchase(category, price, ecoFriendly)
	if err != nil {
		return TrackResult{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.records.Purchases = append(t.records.Purchases, PurchaseEntry{
		Date:        NewTimestamp(t.now()),
		Category:    usage.Category,
		Description: description,
		Price:       price,
		EcoFriendly: ecoFriendly,
		Emissions:   usage.Emissions,
	})

	return TrackResult{
		Message: fmt.Sprintf("Tracked purchase: %s with estimated carbon impact of %s kg CO2e",
			description, num(usage.Emissions)),
		Emissions: usage.Emissions,
		Persisted: t.saveBlob(ctx, footprintBlob, t.records),
	}, nil
}
