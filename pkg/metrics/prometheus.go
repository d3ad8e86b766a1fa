package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusExporter implements the Exporter interface for Prometheus metrics.
// Stats arrive as cumulative snapshots, so every metric is published as a
// gauge set to the snapshot value; publishing the totals through counters
// would double-count on each export.
type PrometheusExporter struct {
	config   *Config
	registry prometheus.Registerer

	hits           *prometheus.GaugeVec
	misses         *prometheus.GaugeVec
	evictions      *prometheus.GaugeVec
	hitRate        *prometheus.GaugeVec
	missRate       *prometheus.GaugeVec
	averageLatency *prometheus.GaugeVec
	p95Latency     *prometheus.GaugeVec
	p99Latency     *prometheus.GaugeVec
}

// PrometheusConfig holds Prometheus-specific configuration
type PrometheusConfig struct {
	// Registry is the Prometheus registry to use (optional, uses default if nil)
	Registry prometheus.Registerer

	// DefaultLabels are applied to all metrics
	DefaultLabels prometheus.Labels
}

// NewPrometheusExporter creates a new Prometheus metrics exporter
func NewPrometheusExporter(config *Config, promConfig *PrometheusConfig) (*PrometheusExporter, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	if promConfig == nil {
		promConfig = &PrometheusConfig{}
	}

	registry := promConfig.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	defaultLabels := make(prometheus.Labels)
	for k, v := range promConfig.DefaultLabels {
		defaultLabels[k] = v
	}
	for k, v := range config.Labels {
		defaultLabels[k] = v
	}

	exporter := &PrometheusExporter{
		config:   config,
		registry: registry,
	}

	if err := exporter.createStandardMetrics(defaultLabels); err != nil {
		return nil, fmt.Errorf("failed to create standard metrics: %w", err)
	}

	return exporter, nil
}

// createStandardMetrics creates all the standard cache metrics
func (p *PrometheusExporter) createStandardMetrics(defaultLabels prometheus.Labels) error {
	baseLabels := []string{"cache_name"}
	names := p.config.MetricNames

	specs := []struct {
		target **prometheus.GaugeVec
		name   string
		help   string
	}{
		{&p.hits, names.CacheHits, "Total number of cache hits"},
		{&p.misses, names.CacheMisses, "Total number of cache misses"},
		{&p.evictions, names.CacheEvictions, "Total number of cache evictions"},
		{&p.hitRate, names.CacheHitRate, "Cache hit rate as a ratio (0-1)"},
		{&p.missRate, names.CacheMissRate, "Cache miss rate as a ratio (0-1)"},
		{&p.averageLatency, names.CacheAverageLatency, "Mean cache hit latency in seconds"},
		{&p.p95Latency, names.CacheP95Latency, "95th percentile cache hit latency in seconds"},
		{&p.p99Latency, names.CacheP99Latency, "99th percentile cache hit latency in seconds"},
	}

	for _, spec := range specs {
		gauge, err := p.createGaugeVec(spec.name, spec.help, baseLabels, defaultLabels)
		if err != nil {
			return err
		}
		*spec.target = gauge
	}

	return nil
}

// ExportStats exports a cache statistics snapshot to Prometheus
func (p *PrometheusExporter) ExportStats(stats Stats, labels Labels) error {
	baseLabels := prometheus.Labels{"cache_name": "default"}
	if cacheName, exists := labels["cache_name"]; exists {
		baseLabels["cache_name"] = cacheName
	}

	p.hits.With(baseLabels).Set(float64(stats.Hits()))
	p.misses.With(baseLabels).Set(float64(stats.Misses()))
	p.evictions.With(baseLabels).Set(float64(stats.Evictions()))
	p.hitRate.With(baseLabels).Set(stats.HitRate())
	p.missRate.With(baseLabels).Set(stats.MissRate())
	p.averageLatency.With(baseLabels).Set(stats.AverageLatency().Seconds())
	p.p95Latency.With(baseLabels).Set(stats.LatencyPercentile(95).Seconds())
	p.p99Latency.With(baseLabels).Set(stats.LatencyPercentile(99).Seconds())

	return nil
}

// Close shuts down the exporter
func (p *PrometheusExporter) Close() error {
	// Prometheus metrics don't need explicit cleanup
	return nil
}

func (p *PrometheusExporter) createGaugeVec(name, help string, labelNames []string, defaultLabels prometheus.Labels) (*prometheus.GaugeVec, error) {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        name,
			Help:        help,
			ConstLabels: defaultLabels,
		},
		labelNames,
	)

	if err := p.registry.Register(gauge); err != nil {
		// Reuse the collector when it has already been registered, e.g.
		// when two exporters share a registry
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to register gauge %s: %w", name, err)
	}

	return gauge, nil
}

var _ Exporter = (*PrometheusExporter)(nil)
