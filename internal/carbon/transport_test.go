package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportation(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		distance   float64
		passengers int
		want       float64
		wantErr    error
	}{
		{
			name:       "car solo trip",
			mode:       "car",
			distance:   15.5,
			passengers: 1,
			want:       2.98, // 0.192 * 15.5 = 2.976
		},
		{
			name:       "car pooling splits emissions",
			mode:       "car",
			distance:   100,
			passengers: 4,
			want:       4.8, // 0.192 * 100 / 4
		},
		{
			name:       "car with zero passengers clamps to one",
			mode:       "car",
			distance:   100,
			passengers: 0,
			want:       19.2,
		},
		{
			name:       "bus ignores passenger count",
			mode:       "bus",
			distance:   10,
			passengers: 30,
			want:       1.05,
		},
		{
			name:       "train per person",
			mode:       "train",
			distance:   200,
			passengers: 1,
			want:       8.2,
		},
		{
			name:       "plane per person",
			mode:       "plane",
			distance:   1000,
			passengers: 2,
			want:       255,
		},
		{
			name:       "bicycle is zero emission",
			mode:       "bicycle",
			distance:   42,
			passengers: 1,
			want:       0,
		},
		{
			name:       "walking is zero emission",
			mode:       "walk",
			distance:   3.2,
			passengers: 1,
			want:       0,
		},
		{
			name:       "unknown mode rejected",
			mode:       "teleport",
			distance:   10,
			passengers: 1,
			wantErr:    ErrUnknownMode,
		},
		{
			name:       "negative distance rejected",
			mode:       "car",
			distance:   -5,
			passengers: 1,
			wantErr:    ErrNegativeQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transportation(tt.mode, tt.distance, tt.passengers)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestTransportationCarPoolFormula(t *testing.T) {
	// For all valid car entries: emissions = round(0.192 * D / P, 2).
	for _, p := range []int{1, 2, 3, 5, 8} {
		got, err := Transportation("car", 250, p)
		require.NoError(t, err)
		assert.InDelta(t, Round2(0.192*250/float64(p)), got, 0.0001, "passengers=%d", p)
	}
}
