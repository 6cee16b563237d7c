package carbon

import "fmt"

// EnergyUsage is the normalized result of an energy calculation.
type EnergyUsage struct {
	// AmountKWh is the consumption converted to kilowatt-hours.
	AmountKWh float64

	// Emissions is the estimated impact in kg CO2e, rounded to two decimals.
	Emissions float64
}

// Energy calculates emissions for home energy consumption.
//
// Supported units are "kWh" for every energy type, plus "therms" for
// natural_gas (converted via ThermsToKWh before the factor is applied).
// Any other unit returns ErrUnsupportedUnit with conversion guidance.
//
// Returns ErrUnknownEnergyType for an unrecognized type and
// ErrNegativeQuantity for a negative amount.
func Energy(energyType string, amount float64, unit string) (EnergyUsage, error) {
	factor, ok := energyFactors[energyType]
	if !ok {
		return EnergyUsage{}, fmt.Errorf("%w: %q (recognized: %v)",
			ErrUnknownEnergyType, energyType, EnergyTypes())
	}

	if amount < 0 {
		return EnergyUsage{}, fmt.Errorf("%w: amount %f %s", ErrNegativeQuantity, amount, unit)
	}

	if unit == "therms" && energyType == "natural_gas" {
		amount *= ThermsToKWh
		unit = "kWh"
	}

	if unit != "kWh" {
		return EnergyUsage{}, fmt.Errorf("%w: %q, please convert to kWh first", ErrUnsupportedUnit, unit)
	}

	return EnergyUsage{
		AmountKWh: amount,
		Emissions: Round2(factor * amount),
	}, nil
}
