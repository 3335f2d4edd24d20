package engine

import "math/rand/v2"

// Rand is the random source used for texture selection and radius jitter.
// *rand.Rand satisfies it; tests may supply a scripted source.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a deterministic PCG-backed source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
