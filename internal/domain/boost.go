package domain

import (
	"math/rand/v2"
)

// BoostRange is the bounded random increment applied to a popularity
// counter on each click/like. The magnitude models a plausible burst of
// activity rather than a fixed +1; the range is configurable because the
// product may retune it.
type BoostRange struct {
	Min int64
	Max int64
}

// DefaultBoostRange matches the historical 1-9 inclusive behavior.
func DefaultBoostRange() BoostRange {
	return BoostRange{Min: 1, Max: 9}
}

// Normalize forces the range into a sane, strictly positive shape.
// An increment must never be zero or negative.
func (b *BoostRange) Normalize() {
	if b.Min < 1 {
		b.Min = 1
	}
	if b.Max < b.Min {
		b.Max = b.Min
	}
}

// Amount draws a uniform increment from [Min, Max] inclusive.
func (b BoostRange) Amount() int64 {
	b.Normalize()

	return b.Min + rand.Int64N(b.Max-b.Min+1)
}
