package kmedians

import (
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/kmedians/distance"
	"github.com/hupe1980/kmedians/internal/median"
	"github.com/hupe1980/kmedians/model"
	"gonum.org/v1/gonum/floats"
)

// Cluster is a group of member points and their coordinate-wise median centroid.
//
// Membership changes do not move the centroid; call Recompute afterwards.
// A Cluster is not safe for concurrent use.
type Cluster[ID comparable] struct {
	id       ID
	centroid *model.Point
	points   []*model.Point

	logger  *Logger
	metrics MetricsCollector
}

// New creates a cluster seeded with a single point and computes its centroid.
func New[ID comparable](id ID, seed *model.Point, optFns ...Option) (*Cluster[ID], error) {
	if seed == nil {
		return nil, ErrNilPoint
	}

	o := applyOptions(optFns)

	label := fmt.Sprint(id)
	name := o.centroidName
	if name == "" {
		name = label + "_center"
	}

	c := &Cluster[ID]{
		id:       id,
		centroid: model.NewPoint(name),
		points:   []*model.Point{seed},
		logger:   o.logger.WithCluster(label),
		metrics:  o.metricsCollector,
	}

	if _, err := c.Recompute(); err != nil {
		return nil, err
	}

	return c, nil
}

// ID returns the cluster identifier.
func (c *Cluster[ID]) ID() ID { return c.id }

// Centroid returns a copy of the centroid coordinates as of the last Recompute.
func (c *Cluster[ID]) Centroid() []float64 {
	return slices.Clone(c.centroid.Coordinates())
}

// CentroidName returns the name of the centroid point.
func (c *Cluster[ID]) CentroidName() string { return c.centroid.Name() }

// NumPoints returns the number of members.
func (c *Cluster[ID]) NumPoints() int { return len(c.points) }

// Points returns the current members. The slice is a copy; the points are not.
func (c *Cluster[ID]) Points() []*model.Point {
	return slices.Clone(c.points)
}

// Recompute sets the centroid to the coordinate-wise median of the members
// and reports whether any coordinate changed.
//
// An empty cluster returns ErrEmptyCluster and members of differing
// dimensionality return *ErrDimensionMismatch. In both cases the centroid
// is left untouched.
func (c *Cluster[ID]) Recompute() (bool, error) {
	start := time.Now()

	changed, err := c.recompute()

	c.metrics.RecordRecompute(time.Since(start), changed, err)
	c.logger.LogRecompute(len(c.points), changed, err)

	return changed, err
}

func (c *Cluster[ID]) recompute() (bool, error) {
	if len(c.points) == 0 {
		return false, ErrEmptyCluster
	}

	vectors := make([][]float64, len(c.points))
	for i, p := range c.points {
		vectors[i] = p.Coordinates()
	}

	coords, err := median.Coordinatewise(vectors)
	if err != nil {
		return false, c.translateError(err)
	}

	changed := !distance.Equal(c.centroid.Coordinates(), coords)
	c.centroid.SetCoordinates(coords)

	return changed, nil
}

// AddPoint appends p to the members. Duplicates are allowed; nil is ignored.
func (c *Cluster[ID]) AddPoint(p *model.Point) {
	if p == nil {
		return
	}

	c.points = append(c.points, p)
	c.metrics.RecordAdd()
}

// RemovePoint removes one occurrence of p, compared by reference.
// Returns ErrUnknownPoint if p is not a member.
func (c *Cluster[ID]) RemovePoint(p *model.Point) error {
	i := -1
	if p != nil {
		i = slices.Index(c.points, p)
	}

	var err error
	if i < 0 {
		err = fmt.Errorf("%w: point %s, cluster %v", ErrUnknownPoint, pointName(p), c.id)
	} else {
		c.points = slices.Delete(c.points, i, i+1)
	}

	c.metrics.RecordRemove(err)
	c.logger.LogRemove(pointName(p), len(c.points), err)

	return err
}

// Clear removes all members. The centroid keeps its last value.
func (c *Cluster[ID]) Clear() {
	n := len(c.points)

	clear(c.points)
	c.points = c.points[:0]

	c.metrics.RecordClear(n)
	c.logger.Debug("cluster cleared", "removed", n)
}

// Loss returns the sum of distances from the centroid to each member.
func (c *Cluster[ID]) Loss() (float64, error) {
	d, err := c.distances(func(_, coords []float64) float64 {
		return c.centroid.DistanceTo(coords)
	})
	if err != nil {
		return 0, err
	}
	return floats.Sum(d), nil
}

// SSE returns the sum of squared distances from the centroid to each member.
func (c *Cluster[ID]) SSE() (float64, error) {
	d, err := c.distances(distance.SquaredEuclidean)
	if err != nil {
		return 0, err
	}
	return floats.Sum(d), nil
}

// distances applies fn to the centroid and every member's coordinates.
func (c *Cluster[ID]) distances(fn func(center, coords []float64) float64) ([]float64, error) {
	center := c.centroid.Coordinates()
	d := make([]float64, len(c.points))

	for i, p := range c.points {
		if p.Dimension() != len(center) {
			return nil, &ErrDimensionMismatch{Point: p.Name(), Expected: len(center), Actual: p.Dimension()}
		}
		d[i] = fn(center, p.Coordinates())
	}

	return d, nil
}

func pointName(p *model.Point) string {
	if p == nil {
		return "<nil>"
	}
	return p.Name()
}
