package advice

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgreen/ecotrack/internal/tracker"
)

func seeded(seed uint64) *Advisor {
	return New(WithRand(rand.New(rand.NewPCG(seed, 0))))
}

// poolFor returns the category whose tip pool contains tip, or "".
func poolFor(tip string) string {
	for cat, pool := range ecoTips {
		if slices.Contains(pool, tip) {
			return cat
		}
	}
	return ""
}

func TestTipsPrioritizeHighEmissionCategories(t *testing.T) {
	emissions := map[string]float64{
		tracker.CategoryTransportation: 5,
		tracker.CategoryEnergy:         200,
		tracker.CategoryFood:           80,
		tracker.CategoryPurchases:      1,
	}

	tips, err := seeded(1).Tips(emissions, "", 2)
	require.NoError(t, err)
	require.Len(t, tips, 2)

	// The first two tips come from the two highest-emission categories.
	assert.Equal(t, tracker.CategoryEnergy, poolFor(tips[0]))
	assert.Equal(t, tracker.CategoryFood, poolFor(tips[1]))
}

func TestTipsRespectCategoryFilter(t *testing.T) {
	emissions := map[string]float64{tracker.CategoryEnergy: 100}

	tips, err := seeded(7).Tips(emissions, tracker.CategoryFood, 3)
	require.NoError(t, err)
	require.Len(t, tips, 3)

	for _, tip := range tips {
		assert.Equal(t, tracker.CategoryFood, poolFor(tip))
	}
}

func TestTipsNeverExceedCountAndHaveNoDuplicates(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		tips, err := seeded(seed).Tips(nil, "", 5)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(tips), 5)

		seen := map[string]bool{}
		for _, tip := range tips {
			assert.False(t, seen[tip], "duplicate tip %q (seed %d)", tip, seed)
			seen[tip] = true
		}
	}
}

func TestTipsTerminateWhenPoolExhausted(t *testing.T) {
	// One category holds 5 distinct tips; asking for 50 must return at most
	// 5 and must not loop forever.
	tips, err := seeded(3).Tips(nil, tracker.CategoryEnergy, 50)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(tips), len(ecoTips[tracker.CategoryEnergy]))
}

func TestTipsUnknownCategory(t *testing.T) {
	_, err := seeded(0).Tips(nil, "aviation", 3)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestTipsDeterministicWithSeededSource(t *testing.T) {
	emissions := map[string]float64{tracker.CategoryFood: 10}

	first, err := seeded(42).Tips(emissions, "", 4)
	require.NoError(t, err)
	second, err := seeded(42).Tips(emissions, "", 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProducts(t *testing.T) {
	t.Run("bounded by count", func(t *testing.T) {
		products, err := seeded(1).Products("", 3)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("filter restricts to one bucket", func(t *testing.T) {
		products, err := seeded(2).Products(BucketKitchen, 2)
		require.NoError(t, err)
		require.Len(t, products, 2)

		for _, p := range products {
			assert.True(t, slices.Contains(sustainableProducts[BucketKitchen], p), "%v", p)
		}
	})

	t.Run("count beyond catalog returns everything once", func(t *testing.T) {
		products, err := seeded(3).Products(BucketHome, 99)
		require.NoError(t, err)
		assert.Len(t, products, len(sustainableProducts[BucketHome]))
	})

	t.Run("unknown bucket rejected", func(t *testing.T) {
		_, err := seeded(0).Products("garage", 3)
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})
}
