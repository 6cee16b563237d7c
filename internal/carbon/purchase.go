package carbon

import (
	"fmt"
	"strings"
)

// PurchaseUsage is the normalized result of a purchase calculation.
type PurchaseUsage struct {
	// Category is the lowercased category the factor was taken from. It may
	// differ from the input when the fallback applied.
	Category string

	// Emissions is the estimated impact in kg CO2e, rounded to two decimals.
	Emissions float64
}

// Purchase calculates spend-based emissions for a purchase.
//
// The category is lowercased; a category outside the recognized set falls
// back silently to DefaultPurchaseCategory rather than erroring. Eco-friendly
// purchases get EcoFriendlyModifier applied after the factor.
//
// Returns ErrNegativeQuantity for a negative price.
func Purchase(category string, price float64, ecoFriendly bool) (PurchaseUsage, error) {
	if price < 0 {
		return PurchaseUsage{}, fmt.Errorf("%w: price %f", ErrNegativeQuantity, price)
	}

	category = strings.ToLower(category)
	factor, ok := purchaseFactors[category]
	if !ok {
		category = DefaultPurchaseCategory
		factor = purchaseFactors[category]
	}

	emissions := factor * price
	if ecoFriendly {
		emissions *= EcoFriendlyModifier
	}

	return PurchaseUsage{
		Category:  category,
		Emissions: Round2(emissions),
	}, nil
}
