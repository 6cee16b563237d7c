// Package advice selects eco tips and sustainable product recommendations.
//
// Tip selection is weighted toward the user's highest-emission categories;
// product recommendations are uniform draws from a static catalog. All
// randomness flows through an injectable source so tests are deterministic.
package advice

import (
	"math/rand/v2"
	"time"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownCategory indicates a tip or product category filter outside the
// recognized set. It is a user-input error, never a fault.
const ErrUnknownCategory = constError("unknown advice category")

// maxFillAttempts bounds the random fill loop in tip selection. Once the
// distinct tip universe is exhausted the draw can only repeat, so selection
// returns short instead of spinning.
const maxFillAttempts = 64

// Advisor hands out tips and product recommendations.
type Advisor struct {
	rng *rand.Rand
}

// Option customizes an Advisor.
type Option func(*Advisor)

// WithRand injects the randomness source. Tests use a seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(a *Advisor) { a.rng = rng }
}

// New creates an Advisor with a time-seeded randomness source unless one is
// injected.
func New(opts ...Option) *Advisor {
	a := &Advisor{}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return a
}
