package advice

import (
	"fmt"
	"slices"

	"github.com/rgreen/ecotrack/internal/tracker"
)

// ecoTips is the static tip database, one pool per tracked category.
var ecoTips = map[string][]string{
	tracker.CategoryTransportation: {
		"Consider carpooling to reduce emissions",
		"Try using public transportation once a week",
		"Combine errands to reduce total driving distance",
		"Consider an electric vehicle for your next car purchase",
		"Keep your tires properly inflated to improve fuel efficiency",
	},
	tracker.CategoryEnergy: {
		"Switch to LED light bulbs to reduce energy consumption",
		"Unplug electronics when not in use to avoid phantom energy",
		"Use a smart thermostat to optimize heating and cooling",
		"Air dry clothes instead of using a dryer when possible",
		"Consider adding insulation to your home to reduce energy needs",
	},
	tracker.CategoryFood: {
		"Try incorporating one meatless meal per week",
		"Buy local produce to reduce transportation emissions",
		"Plan meals to reduce food waste",
		"Compost food scraps instead of sending to landfill",
		"Choose seasonal fruits and vegetables",
	},
	tracker.CategoryPurchases: {
		"Consider secondhand items before buying new",
		"Look for products with minimal packaging",
		"Invest in quality items that last longer",
		"Repair items when possible instead of replacing",
		"Choose products made from recycled materials",
	},
}

// TipCategories returns the categories tips exist for, in reporting order.
func TipCategories() []string {
	return tracker.Categories()
}

// Tips selects up to count tips, weighted toward the categories where
// emissions currently contributes most.
//
// emissions is the user's current per-category footprint (typically the
// month summary). category optionally restricts selection to one pool; an
// unrecognized filter returns ErrUnknownCategory. Selection first draws one
// random tip per allowed category in descending-emissions order, then fills
// the remaining slots with uniform draws, skipping exact duplicates. The
// fill loop is bounded, so when the allowed pool holds fewer than count
// distinct tips the result is simply shorter.
func (a *Advisor) Tips(emissions map[string]float64, category string, count int) ([]string, error) {
	allowed, err := allowedCategories(category)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, max(count, 0))

	// Priority pass: highest-emission categories first.
	for _, cat := range rankByEmissions(emissions) {
		if len(selected) >= count {
			break
		}
		if !slices.Contains(allowed, cat) {
			continue
		}
		pool := ecoTips[cat]
		selected = append(selected, pool[a.rng.IntN(len(pool))])
	}

	// Fill pass: uniform draws over the allowed pools, no exact duplicates.
	for attempts := 0; len(selected) < count && attempts < maxFillAttempts; attempts++ {
		pool := ecoTips[allowed[a.rng.IntN(len(allowed))]]
		tip := pool[a.rng.IntN(len(pool))]
		if !slices.Contains(selected, tip) {
			selected = append(selected, tip)
		}
	}

	return selected, nil
}

// allowedCategories resolves an optional category filter to the pools tips
// may be drawn from.
func allowedCategories(category string) ([]string, error) {
	if category == "" {
		return TipCategories(), nil
	}
	if _, ok := ecoTips[category]; !ok {
		return nil, fmt.Errorf("%w: %q (recognized: %v)", ErrUnknownCategory, category, TipCategories())
	}
	return []string{category}, nil
}

// rankByEmissions orders the tracked categories by emissions descending.
// Ties keep the canonical reporting order so ranking is deterministic.
func rankByEmissions(emissions map[string]float64) []string {
	ranked := tracker.Categories()
	slices.SortStableFunc(ranked, func(x, y string) int {
		switch {
		case emissions[x] > emissions[y]:
			return -1
		case emissions[x] < emissions[y]:
			return 1
		default:
			return 0
		}
	})
	return ranked
}
