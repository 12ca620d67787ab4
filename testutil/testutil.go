package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/alignstat/align"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// ScoreIn returns a pseudo-random raw score in [minVal, maxVal).
func (r *RNG) ScoreIn(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Scores fills dst with pseudo-random raw scores in [minVal, maxVal).
// Locks only once per call (preferred over calling ScoreIn in a loop).
func (r *RNG) Scores(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*(maxVal-minVal)
	}
}

// Result returns a pseudo-random alignment hit with a score in
// [minScore, maxScore) and a query length in [1, maxQueryLen].
func (r *RNG) Result(minScore, maxScore float64, maxQueryLen int) align.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return align.Result{
		Score:    minScore + r.rand.Float64()*(maxScore-minScore),
		QueryLen: 1 + r.rand.Intn(maxQueryLen),
	}
}

// Results returns num pseudo-random alignment hits.
func (r *RNG) Results(num int, minScore, maxScore float64, maxQueryLen int) []align.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	hits := make([]align.Result, num)
	for i := range hits {
		hits[i] = align.Result{
			Score:    minScore + r.rand.Float64()*(maxScore-minScore),
			QueryLen: 1 + r.rand.Intn(maxQueryLen),
		}
	}
	return hits
}
