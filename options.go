package kmedians

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	centroidName     string
}

// Option configures Cluster construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for cluster operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmedians.BasicMetricsCollector{}
//	c, _ := kmedians.New("a", p, kmedians.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Recomputes: %d, changed: %d\n", stats.RecomputeCount, stats.RecomputeChanged)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for diagnostics.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmedians.NewJSONLogger(slog.LevelInfo)
//	c, _ := kmedians.New("a", p, kmedians.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithCentroidName overrides the centroid point's name.
// Defaults to "<id>_center".
func WithCentroidName(name string) Option {
	return func(o *options) {
		o.centroidName = name
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
