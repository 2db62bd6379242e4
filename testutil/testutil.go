package testutil

import (
	"cmp"
	"math/rand"
	"slices"
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

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Ints returns a slice of n random values in [0, maxVal).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := make([]int, n)
	for i := range s {
		s[i] = r.rand.Intn(maxVal)
	}
	return s
}

// IntsWithDuplicates returns a slice of n values drawn from only
// distinct different values, guaranteeing heavy duplication.
func (r *RNG) IntsWithDuplicates(n, distinct int) []int {
	return r.Ints(n, distinct)
}

// Ascending returns [0, 1, ..., n-1], an adversarial input for
// randomized selection.
func Ascending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Descending returns [n, n-1, ..., 1].
func Descending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = n - i
	}
	return s
}

// KthBySort returns the value at 1-based sorted rank k by fully
// sorting a copy. Ground truth for selection tests; k must be valid.
func KthBySort[T cmp.Ordered](values []T, k int) T {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted[k-1]
}
