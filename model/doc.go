// Package model defines the point type consumed by clusters.
//
// A Point is a named coordinate vector. Clusters hold non-owning references
// (*Point) to points created by the caller; two references are the same member
// only if they point to the same Point.
//
//	a := model.NewPoint("a", 1, 2)
//	d := a.DistanceTo([]float64{2, 3}) // sqrt(2)
package model
