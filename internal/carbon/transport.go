package carbon

import "fmt"

// Transportation calculates emissions for a single trip.
//
// Mode must be one of the recognized transportation modes; distance is in km
// and must be non-negative. Passenger count only matters for "car", where the
// per-vehicle factor is split across max(1, passengers) occupants. Bus, train
// and plane factors are already per person and ignore the passenger count.
//
// Returns ErrUnknownMode for an unrecognized mode and ErrNegativeQuantity for
// a negative distance. The result is rounded to two decimals.
func Transportation(mode string, distanceKm float64, passengers int) (float64, error) {
	factor, ok := transportFactors[mode]
	if !ok {
		return 0, fmt.Errorf("%w: %q (recognized: %v)", ErrUnknownMode, mode, TransportModes())
	}

	if distanceKm < 0 {
		return 0, fmt.Errorf("%w: distance %f km", ErrNegativeQuantity, distanceKm)
	}

	emissions := factor * distanceKm
	if mode == "car" {
		emissions /= float64(max(1, passengers))
	}

	return Round2(emissions), nil
}
