package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Ascending generates n strictly ascending positions. The first position is
// start, consecutive positions are separated by step on average, and jitter
// perturbs every gap. Gaps that would collapse to zero or below fall back to
// the mean step, so the result is ascending for any jitter.
func (r *RNG) Ascending(n int, start, step, jitter float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	cur := start
	for i := range out {
		out[i] = cur
		delta := step + (r.rand.Float64()*2-1)*jitter
		if delta <= 0 {
			delta = step
		}
		cur += delta
	}
	return out
}

// Jittered returns a copy of x with every position shifted by a uniform
// offset in [-amp, amp). Order is preserved only when amp is small relative
// to the spacing of x; callers pick amp accordingly.
func (r *RNG) Jittered(x []float64, amp float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v + (r.rand.Float64()*2-1)*amp
	}
	return out
}

// Thin returns a copy of x with each element independently dropped with
// probability p. Relative order is preserved.
func (r *RNG) Thin(x []float64, p float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, 0, len(x))
	for _, v := range x {
		if r.rand.Float64() < p {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Intensities generates n non-negative intensity values where each value is
// independently replaced by NaN with probability gaps.
func (r *RNG) Intensities(n int, gaps float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		if r.rand.Float64() < gaps {
			out[i] = math.NaN()
			continue
		}
		out[i] = r.rand.Float64() * 1000
	}
	return out
}
