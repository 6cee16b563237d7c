package carbon

// Transportation emission factors in kg CO2e per km.
//
// Bus, train and plane factors are already per passenger; the car factor is
// per vehicle and is divided by occupancy at calculation time. Bicycle and
// walking are zero by definition.
var transportFactors = map[string]float64{
	"car":     0.192,
	"bus":     0.105,
	"train":   0.041,
	"bicycle": 0,
	"walk":    0,
	"plane":   0.255,
}

// Home energy emission factors in kg CO2e per kWh.
// Electricity uses the US grid average. Renewable carries small lifecycle
// emissions rather than zero.
var energyFactors = map[string]float64{
	"electricity": 0.233,
	"natural_gas": 0.181,
	"heating_oil": 0.249,
	"propane":     0.215,
	"renewable":   0.015,
}

// Food emission factors in kg CO2e per kg of food.
var foodFactors = map[string]float64{
	"beef":       27.0,
	"lamb":       39.2,
	"pork":       12.1,
	"chicken":    6.9,
	"fish":       6.1,
	"eggs":       4.8,
	"rice":       2.7,
	"milk":       1.9,
	"cheese":     13.5,
	"vegetables": 2.0,
	"fruits":     1.1,
	"beans":      2.0,
	"nuts":       2.3,
}

// Purchase emission factors in kg CO2e per currency unit spent.
// These are rough spend-based estimates, not lifecycle assessments.
var purchaseFactors = map[string]float64{
	"clothing":    0.5,
	"electronics": 0.7,
	"furniture":   0.8,
	"household":   0.4,
	"hobby":       0.3,
}

// Modifier and conversion constants.
const (
	// LocalFoodModifier is the multiplier applied to locally sourced food.
	LocalFoodModifier = 0.8

	// OrganicFoodModifier is the multiplier applied to organically grown food.
	OrganicFoodModifier = 0.9

	// EcoFriendlyModifier is the multiplier applied to eco-friendly purchases.
	EcoFriendlyModifier = 0.7

	// ThermsToKWh converts US therms of natural gas to kilowatt-hours.
	ThermsToKWh = 29.3001

	// DefaultPurchaseCategory absorbs purchases in unlisted categories.
	DefaultPurchaseCategory = "household"
)

// TransportModes returns the recognized transportation modes.
func TransportModes() []string {
	return sortedKeys(transportFactors)
}

// EnergyTypes returns the recognized home energy types.
func EnergyTypes() []string {
	return sortedKeys(energyFactors)
}

// FoodTypes returns the recognized food types.
func FoodTypes() []string {
	return sortedKeys(foodFactors)
}

// PurchaseCategories returns the recognized purchase categories.
func PurchaseCategories() []string {
	return sortedKeys(purchaseFactors)
}
