package life

import "math/rand/v2"

// NewRNG creates a deterministic RNG from the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
