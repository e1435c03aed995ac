// Package promcollector exports cluster operation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := promcollector.New(reg)
//	c, _ := kmedians.New("a", p, kmedians.WithMetricsCollector(mc))
package promcollector
