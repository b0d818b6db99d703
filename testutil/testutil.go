package testutil

import (
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

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Positions returns the sorted positions of [0, n) chosen independently with
// probability density.
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) Positions(n int, density float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []int
	for p := range n {
		if r.rand.Float64() < density {
			out = append(out, p)
		}
	}
	return out
}

// Mask returns an n-element mask whose entries are true with probability density.
func (r *RNG) Mask(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	mask := make([]bool, n)
	for i := range mask {
		mask[i] = r.rand.Float64() < density
	}
	return mask
}

// Clusters returns an n-element mask holding count runs of set entries, each
// at most maxRun long, at random offsets. Runs may overlap.
func (r *RNG) Clusters(n, count, maxRun int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	mask := make([]bool, n)
	for range count {
		start := r.rand.Intn(n)
		length := 1 + r.rand.Intn(maxRun)
		for p := start; p < n && p < start+length; p++ {
			mask[p] = true
		}
	}
	return mask
}
