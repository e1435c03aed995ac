// Package distance provides coordinate-vector distance calculations.
//
// All functions operate on []float64 and are backed by gonum's floats package.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	sq := distance.SquaredEuclidean(a, b)
//	same := distance.Equal(a, b)
package distance
