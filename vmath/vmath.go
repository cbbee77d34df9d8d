package vmath

import "math"

// --- Scalars ---

// Clamp restricts v to [lo, hi]
// lo is applied first, so an inverted range resolves to hi
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Signum returns -1 for negative values and 1 otherwise, including +0
func Signum(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Not safe for concurrent use; one instance per system
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
