package model

import (
	"fmt"
	"slices"

	"github.com/hupe1980/kmedians/distance"
)

// Point is a named, fixed-dimension coordinate vector.
type Point struct {
	name        string
	coordinates []float64
}

// NewPoint creates a point with the given name and coordinates.
// The coordinates are copied.
func NewPoint(name string, coordinates ...float64) *Point {
	return &Point{
		name:        name,
		coordinates: slices.Clone(coordinates),
	}
}

// Name returns the point's name.
func (p *Point) Name() string { return p.name }

// Coordinates returns the point's coordinate vector.
// The returned slice must not be modified.
func (p *Point) Coordinates() []float64 { return p.coordinates }

// Dimension returns the number of coordinates.
func (p *Point) Dimension() int { return len(p.coordinates) }

// SetCoordinates replaces the coordinate vector with a copy of coordinates.
func (p *Point) SetCoordinates(coordinates []float64) {
	p.coordinates = slices.Clone(coordinates)
}

// DistanceTo returns the Euclidean distance from p to the given coordinates.
// Panics if the dimensionality differs.
func (p *Point) DistanceTo(coordinates []float64) float64 {
	return distance.Euclidean(p.coordinates, coordinates)
}

// Clone returns a deep copy of p.
func (p *Point) Clone() *Point {
	return NewPoint(p.name, p.coordinates...)
}

// String returns a string representation of the Point.
func (p *Point) String() string {
	return fmt.Sprintf("%s%v", p.name, p.coordinates)
}
