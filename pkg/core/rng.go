package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value. It is the coin flip used when a free
// 2x2 block is filled.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Reseed restarts the stream from seed, as if freshly constructed. Sweep
// workers reuse one RNG across seeds this way.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}
