package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/kmedians/model"
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

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns, as an int, a non-negative pseudo-random number in [0,n).
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

// NormFloat64 returns a normally distributed float64 with mean 0 and standard deviation 1.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// UniformPoints generates points named p0..p{num-1} with coordinates in [0, 1).
func (r *RNG) UniformPoints(num, dimensions int) []*model.Point {
	return points(num, dimensions, func(int) float64 {
		return r.Float64()
	})
}

// IntegerPoints generates points whose coordinates are integers in [0, maxVal).
// Small maxVal values produce many ties per dimension.
func (r *RNG) IntegerPoints(num, dimensions, maxVal int) []*model.Point {
	return points(num, dimensions, func(int) float64 {
		return float64(r.Intn(maxVal))
	})
}

// GaussianPoints generates points scattered around center with the given
// standard deviation.
func (r *RNG) GaussianPoints(num int, center []float64, spread float64) []*model.Point {
	return points(num, len(center), func(d int) float64 {
		return center[d] + r.NormFloat64()*spread
	})
}

// points builds num points named p0..p{num-1}, calling next once per coordinate.
func points(num, dimensions int, next func(d int) float64) []*model.Point {
	pts := make([]*model.Point, num)
	coords := make([]float64, dimensions)

	for i := range num {
		for d := range coords {
			coords[d] = next(d)
		}
		pts[i] = model.NewPoint(fmt.Sprintf("p%d", i), coords...)
	}

	return pts
}
