package advice

import "fmt"

// Product is one sustainable product recommendation.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Product catalog buckets.
const (
	BucketHome     = "home"
	BucketKitchen  = "kitchen"
	BucketPersonal = "personal"
)

// sustainableProducts is the static recommendation catalog.
var sustainableProducts = map[string][]Product{
	BucketHome: {
		{Name: "Smart thermostat", Description: "Reduces energy usage by 10-15%"},
		{Name: "Low-flow showerhead", Description: "Reduces water usage while maintaining pressure"},
		{Name: "Wool dryer balls", Description: "Reduces drying time and eliminates need for dryer sheets"},
	},
	BucketKitchen: {
		{Name: "Beeswax food wraps", Description: "Reusable alternative to plastic wrap"},
		{Name: "Silicone food storage bags", Description: "Durable alternative to disposable plastic bags"},
		{Name: "Compost bin", Description: "Convenient way to collect food scraps for composting"},
	},
	BucketPersonal: {
		{Name: "Bamboo toothbrush", Description: "Biodegradable alternative to plastic toothbrushes"},
		{Name: "Shampoo bar", Description: "Zero-waste alternative to bottled shampoo"},
		{Name: "Reusable water bottle", Description: "Reduces plastic waste from disposable bottles"},
	},
}

// ProductBuckets returns the catalog buckets in a stable order.
func ProductBuckets() []string {
	return []string{BucketHome, BucketKitchen, BucketPersonal}
}

// Products recommends up to count products. category optionally restricts
// selection to a single catalog bucket; an unrecognized bucket returns
// ErrUnknownCategory. Each bucket is shuffled before drawing, so repeated
// calls vary unless the randomness source is pinned.
func (a *Advisor) Products(category string, count int) ([]Product, error) {
	buckets := ProductBuckets()
	if category != "" {
		if _, ok := sustainableProducts[category]; !ok {
			return nil, fmt.Errorf("%w: %q (recognized: %v)", ErrUnknownCategory, category, ProductBuckets())
		}
		buckets = []string{category}
	}

	recommendations := make([]Product, 0, max(count, 0))
	for _, bucket := range buckets {
		if len(recommendations) >= count {
			break
		}

		pool := append([]Product{}, sustainableProducts[bucket]...)
		a.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})

		recommendations = append(recommendations, pool[:min(count-len(recommendations), len(pool))]...)
	}

	return recommendations, nil
}
