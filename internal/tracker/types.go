// Package tracker owns the per-user activity record set: loading it from the
// blob store, appending entries with write-through persistence, aggregating
// emissions over time windows and maintaining user preferences.
package tracker

// Blob names under the per-user key space. The documents and their field
// layout are shared with pre-existing data directories, so the JSON tags
// below must not change.
const (
	footprintBlob   = "carbon_footprint.json"
	preferencesBlob = "preferences.json"
)

// Tracked category names, in the canonical reporting order.
const (
	CategoryTransportation = "transportation"
	CategoryEnergy         = "energy"
	CategoryFood           = "food"
	CategoryPurchases      = "purchases"
)

// Categories lists the tracked categories in reporting order.
func Categories() []string {
	return []string{CategoryTransportation, CategoryEnergy, CategoryFood, CategoryPurchases}
}

// TransportEntry is one recorded trip.
type TransportEntry struct {
	Date       Timestamp `json:"date"`
	Mode       string    `json:"mode"`
	Distance   float64   `json:"distance"`
	Passengers int       `json:"passengers"`
	Emissions  float64   `json:"emissions"`
}

// EnergyEntry is one recorded slice of home energy consumption. Amount is
// always stored in kWh; therms are converted before the entry is built.
type EnergyEntry struct {
	Date      Timestamp `json:"date"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Unit      string    `json:"unit"`
	Emissions float64   `json:"emissions"`
}

// FoodEntryItem is one recognized food item inside a composite food entry.
type FoodEntryItem struct {
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Local     bool    `json:"local"`
	Organic   bool    `json:"organic"`
	Emissions float64 `json:"emissions"`
}

// FoodEntry is one recorded batch of food items. A single tracking call
// produces a single composite entry; the per-item breakdown lives in Items
// and the batch impact in TotalEmissions.
type FoodEntry struct {
	Date           Timestamp       `json:"date"`
	Items          []FoodEntryItem `json:"items"`
	TotalEmissions float64         `json:"total_emissions"`
}

// PurchaseEntry is one recorded purchase.
type PurchaseEntry struct {
	Date        Timestamp `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	EcoFriendly bool      `json:"eco_friendly"`
	Emissions   float64   `json:"emissions"`
}

// RecordSet holds the four append-only category logs of one user. Entries
// are immutable once recorded; identity is append order. There are no
// update or delete operations.
type RecordSet struct {
	Transportation []TransportEntry `json:"transportation"`
	Energy         []EnergyEntry    `json:"energy"`
	Food           []FoodEntry      `json:"food"`
	Purchases      []PurchaseEntry  `json:"purchases"`
}

// newRecordSet returns the default empty record set. Slices are non-nil so
// absent categories serialize as [] rather than null, matching pre-existing
// documents.
func newRecordSet() RecordSet {
	return RecordSet{
		Transportation: []TransportEntry{},
		Energy:         []EnergyEntry{},
		Food:           []FoodEntry{},
		Purchases:      []PurchaseEntry{},
	}
}

// normalize replaces nil category slices with empty ones after decoding a
// document that omitted some categories.
func (r *RecordSet) normalize() {
	if r.Transportation == nil {
		r.Transportation = []TransportEntry{}
	}
	if r.Energy == nil {
		r.Energy = []EnergyEntry{}
	}
	if r.Food == nil {
		r.Food = []FoodEntry{}
	}
	if r.Purchases == nil {
		r.Purchases = []PurchaseEntry{}
	}
}
