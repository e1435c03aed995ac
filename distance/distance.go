package distance

import (
	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the L2 distance between two vectors.
// Panics if the vectors differ in length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared L2 distance between two vectors
// without taking a square root.
// Panics if the vectors differ in length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)
	return floats.Dot(diff, diff)
}

// Equal reports whether a and b have the same length and identical values.
// NaN values at the same position compare equal.
func Equal(a, b []float64) bool {
	return floats.Same(a, b)
}
