package core

import "time"

//go:generate go tool mockgen -source=rand.go -destination=mocks/mock_rand.go -package=mocks

// Rand is the injectable random source used by spawning and effects.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// SimpleRNG is a small pseudo-random number generator.
// Uses a 64-bit LCG; quality is plenty for spawn jitter.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
// A zero seed is replaced with the current time.
func NewSimpleRNG(seed int64) *SimpleRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// State returns the internal generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are far better distributed than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [lo, hi).
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
