// Package testutil provides testing utilities for kmedians.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating point sets.
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, 3)         // coordinates in [0, 1)
//	ties := rng.IntegerPoints(100, 3, 5)     // coordinates in {0..4}, many ties
//	blob := rng.GaussianPoints(100, []float64{10, 10}, 0.5)
package testutil
