// Package metrics defines the cache metrics export abstraction and its
// Prometheus and OpenTelemetry implementations.
package metrics

import (
	"time"
)

// Exporter defines the interface for cache metrics exporters
// This abstraction allows supporting multiple observability systems
type Exporter interface {
	// ExportStats exports a snapshot of the cache statistics
	ExportStats(stats Stats, labels Labels) error

	// Close shuts down the exporter and flushes any pending metrics
	Close() error
}

// Labels represents key-value pairs for metric labels/tags
type Labels map[string]string

// Stats defines the cache statistics that can be exported
// This allows the metrics package to work with any recorder implementation
type Stats interface {
	Hits() int64
	Misses() int64
	Evictions() int64
	HitRate() float64
	MissRate() float64
	AverageLatency() time.Duration
	LatencyPercentile(p float64) time.Duration
}

// MetricNames defines standard metric names used across exporters
type MetricNames struct {
	CacheHits           string
	CacheMisses         string
	CacheEvictions      string
	CacheHitRate        string
	CacheMissRate       string
	CacheAverageLatency string
	CacheP95Latency     string
	CacheP99Latency     string
}

// DefaultMetricNames returns the default metric names with proper namespacing
func DefaultMetricNames() MetricNames {
	return MetricNames{
		CacheHits:           "cacherine_hits_total",
		CacheMisses:         "cacherine_misses_total",
		CacheEvictions:      "cacherine_evictions_total",
		CacheHitRate:        "cacherine_hit_rate",
		CacheMissRate:       "cacherine_miss_rate",
		CacheAverageLatency: "cacherine_latency_avg_seconds",
		CacheP95Latency:     "cacherine_latency_p95_seconds",
		CacheP99Latency:     "cacherine_latency_p99_seconds",
	}
}

// Config holds configuration for metrics exporters
type Config struct {
	// Labels are default labels applied to all metrics
	Labels Labels

	// MetricNames allows customizing metric names
	MetricNames MetricNames
}

// NewDefaultConfig creates a default metrics configuration
func NewDefaultConfig() *Config {
	return &Config{
		Labels:      make(Labels),
		MetricNames: DefaultMetricNames(),
	}
}

// WithLabels adds default labels to all metrics
func (c *Config) WithLabels(labels Labels) *Config {
	for k, v := range labels {
		c.Labels[k] = v
	}
	return c
}

// MultiExporter allows using multiple exporters simultaneously
type MultiExporter struct {
	exporters []Exporter
}

// NewMultiExporter creates an exporter that writes to multiple backends
func NewMultiExporter(exporters ...Exporter) *MultiExporter {
	return &MultiExporter{
		exporters: exporters,
	}
}

// ExportStats exports to all configured exporters
func (m *MultiExporter) ExportStats(stats Stats, labels Labels) error {
	for _, exporter := range m.exporters {
		if err := exporter.ExportStats(stats, labels); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all configured exporters
func (m *MultiExporter) Close() error {
	for _, exporter := range m.exporters {
		if err := exporter.Close(); err != nil {
			return err
		}
	}
	return nil
}

// NoOpExporter provides a no-op implementation for when metrics are disabled
type NoOpExporter struct{}

// NewNoOpExporter creates a no-op exporter
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

// ExportStats does nothing
func (n *NoOpExporter) ExportStats(Stats, Labels) error { return nil }

// Close does nothing
func (n *NoOpExporter) Close() error { return nil }

// Ensure interfaces are implemented
var (
	_ Exporter = (*MultiExporter)(nil)
	_ Exporter = (*NoOpExporter)(nil)
)
