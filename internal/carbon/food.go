package carbon

import "fmt"

// FoodItem describes one food item for calculation.
type FoodItem struct {
	// Type is the food category, e.g. "vegetables" or "beef".
	Type string

	// Amount is the quantity in kg.
	Amount float64

	// Local marks locally sourced food (20% reduction).
	Local bool

	// Organic marks organically grown food (10% reduction).
	Organic bool
}

// FoodItemUsage is a single tracked item with its calculated emissions.
type FoodItemUsage struct {
	FoodItem

	// Emissions is the item impact in kg CO2e, rounded to two decimals.
	Emissions float64
}

// FoodUsage is the aggregate result of a food calculation.
type FoodUsage struct {
	// Items holds the recognized items in input order. Items with an
	// unrecognized type are excluded.
	Items []FoodItemUsage

	// Total is the sum of the item emissions, rounded to two decimals.
	Total float64
}

// Food calculates emissions for a batch of food items.
//
// Per item: factor(type) × amount, then ×LocalFoodModifier if local and
// ×OrganicFoodModifier if organic. The two modifiers are independent and
// multiplicative. Items with an unrecognized type are skipped silently: they
// contribute nothing and do not appear in the result. An all-unknown batch
// yields an empty usage with zero total.
//
// Amounts must be non-negative; any negative amount rejects the whole batch
// with ErrNegativeQuantity, including on items whose type is unrecognized.
func Food(items []FoodItem) (FoodUsage, error) {
	var usage FoodUsage
	var total float64

	for _, item := range items {
		if item.Amount < 0 {
			return FoodUsage{}, fmt.Errorf("%w: %s amount %f kg", ErrNegativeQuantity, item.Type, item.Amount)
		}

		factor, ok := foodFactors[item.Type]
		if !ok {
			continue
		}

		emissions := factor * item.Amount
		if item.Local {
			emissions *= LocalFoodModifier
		}
		if item.Organic {
			emissions *= OrganicFoodModifier
		}

		total += emissions
		usage.Items = append(usage.Items, FoodItemUsage{
			FoodItem:  item,
			Emissions: Round2(emissions),
		})
	}

	usage.Total = Round2(total)
	return usage, nil
}
