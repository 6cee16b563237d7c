package carbon

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error values returned by the calculators. All of them describe bad user
// input, never an environment fault, and can be compared with errors.Is().
var (
	// ErrUnknownMode indicates an unrecognized transportation mode.
	ErrUnknownMode = constError("unknown transportation mode")

	// ErrUnknownEnergyType indicates an unrecognized home energy type.
	ErrUnknownEnergyType = constError("unknown energy type")

	// ErrUnsupportedUnit indicates an energy unit the calculator cannot
	// convert to kWh.
	ErrUnsupportedUnit = constError("unsupported energy unit")

	// ErrNegativeQuantity indicates a negative distance, amount or price.
	// Activity quantities cannot be negative.
	ErrNegativeQuantity = constError("negative activity quantity")
)
