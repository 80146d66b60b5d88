package config

import (
	"hash/maphash"
	"math/rand/v2"
)

// NewRand returns a generator seeded with seed, or with a random seed
// when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
