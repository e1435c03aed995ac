package promcollector

import (
	"errors"
	"time"

	"github.com/hupe1980/kmedians"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kmedians"

// Collector implements kmedians.MetricsCollector with Prometheus metrics.
type Collector struct {
	recomputes        *prometheus.CounterVec
	recomputeDuration prometheus.Histogram
	added             prometheus.Counter
	removed           *prometheus.CounterVec
	cleared           prometheus.Counter
}

var _ kmedians.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
// Metrics already registered by another Collector on the same registry are reused.
func New(reg prometheus.Registerer) (*Collector, error) {
	recomputes, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "centroid_recomputes_total",
		Help:      "Centroid recomputations by outcome (changed, unchanged, empty, error)",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "centroid_recompute_duration_seconds",
		Help:      "Duration of centroid recomputations",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	}))
	if err != nil {
		return nil, err
	}

	added, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "points_added_total",
		Help:      "Points added to clusters",
	}))
	if err != nil {
		return nil, err
	}

	removed, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "point_removals_total",
		Help:      "Point removal attempts by outcome (removed, unknown)",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	cleared, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "points_cleared_total",
		Help:      "Points dropped by clearing clusters",
	}))
	if err != nil {
		return nil, err
	}

	return &Collector{
		recomputes:        recomputes,
		recomputeDuration: duration,
		added:             added,
		removed:           removed,
		cleared:           cleared,
	}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var e prometheus.AlreadyRegisteredError
		if errors.As(err, &e) {
			if existing, ok := e.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}

// RecordRecompute implements kmedians.MetricsCollector.
func (c *Collector) RecordRecompute(duration time.Duration, changed bool, err error) {
	c.recomputeDuration.Observe(duration.Seconds())
	c.recomputes.WithLabelValues(recomputeOutcome(changed, err)).Inc()
}

// RecordAdd implements kmedians.MetricsCollector.
func (c *Collector) RecordAdd() {
	c.added.Inc()
}

// RecordRemove implements kmedians.MetricsCollector.
func (c *Collector) RecordRemove(err error) {
	outcome := "removed"
	if err != nil {
		outcome = "unknown"
	}
	c.removed.WithLabelValues(outcome).Inc()
}

// RecordClear implements kmedians.MetricsCollector.
func (c *Collector) RecordClear(removed int) {
	c.cleared.Add(float64(removed))
}

func recomputeOutcome(changed bool, err error) string {
	switch {
	case errors.Is(err, kmedians.ErrEmptyCluster):
		return "empty"
	case err != nil:
		return "error"
	case changed:
		return "changed"
	default:
		return "unchanged"
	}
}
