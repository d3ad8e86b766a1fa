package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OpenTelemetryExporter implements the Exporter interface for
// OpenTelemetry metrics. Snapshots are recorded through gauge
// instruments on the caller-supplied meter.
type OpenTelemetryExporter struct {
	config *Config
	meter  metric.Meter
	ctx    context.Context
	attrs  []attribute.KeyValue

	hitsGauge       metric.Int64Gauge
	missesGauge     metric.Int64Gauge
	evictionsGauge  metric.Int64Gauge
	hitRateGauge    metric.Float64Gauge
	missRateGauge   metric.Float64Gauge
	avgLatencyGauge metric.Float64Gauge
	p95LatencyGauge metric.Float64Gauge
	p99LatencyGauge metric.Float64Gauge
}

// OpenTelemetryConfig holds OpenTelemetry-specific configuration
type OpenTelemetryConfig struct {
	// Meter is the OpenTelemetry meter to use
	Meter metric.Meter

	// Context is the context to use for metric operations
	Context context.Context

	// DefaultAttributes are applied to all metrics
	DefaultAttributes []attribute.KeyValue
}

// NewOpenTelemetryExporter creates a new OpenTelemetry metrics exporter
func NewOpenTelemetryExporter(config *Config, otelConfig *OpenTelemetryConfig) (*OpenTelemetryExporter, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	if otelConfig == nil {
		return nil, fmt.Errorf("OpenTelemetry configuration is required")
	}

	if otelConfig.Meter == nil {
		return nil, fmt.Errorf("OpenTelemetry meter is required")
	}

	ctx := otelConfig.Context
	if ctx == nil {
		ctx = context.Background()
	}

	exporter := &OpenTelemetryExporter{
		config: config,
		meter:  otelConfig.Meter,
		ctx:    ctx,
		attrs:  otelConfig.DefaultAttributes,
	}

	if err := exporter.createStandardMetrics(); err != nil {
		return nil, fmt.Errorf("failed to create standard metrics: %w", err)
	}

	return exporter, nil
}

// createStandardMetrics creates all the standard cache metric instruments
func (o *OpenTelemetryExporter) createStandardMetrics() error {
	var err error
	names := o.config.MetricNames

	if o.hitsGauge, err = o.meter.Int64Gauge(names.CacheHits,
		metric.WithDescription("Total number of cache hits"),
		metric.WithUnit("1")); err != nil {
		return fmt.Errorf("failed to create hits gauge: %w", err)
	}

	if o.missesGauge, err = o.meter.Int64Gauge(names.CacheMisses,
		metric.WithDescription("Total number of cache misses"),
		metric.WithUnit("1")); err != nil {
		return fmt.Errorf("failed to create misses gauge: %w", err)
	}

	if o.evictionsGauge, err = o.meter.Int64Gauge(names.CacheEvictions,
		metric.WithDescription("Total number of cache evictions"),
		metric.WithUnit("1")); err != nil {
		return fmt.Errorf("failed to create evictions gauge: %w", err)
	}

	if o.hitRateGauge, err = o.meter.Float64Gauge(names.CacheHitRate,
		metric.WithDescription("Cache hit rate as a ratio (0-1)"),
		metric.WithUnit("1")); err != nil {
		return fmt.Errorf("failed to create hit rate gauge: %w", err)
	}

	if o.missRateGauge, err = o.meter.Float64Gauge(names.CacheMissRate,
		metric.WithDescription("Cache miss rate as a ratio (0-1)"),
		metric.WithUnit("1")); err != nil {
		return fmt.Errorf("failed to create miss rate gauge: %w", err)
	}

	if o.avgLatencyGauge, err = o.meter.Float64Gauge(names.CacheAverageLatency,
		metric.WithDescription("Mean cache hit latency"),
		metric.WithUnit("s")); err != nil {
		return fmt.Errorf("failed to create average latency gauge: %w", err)
	}

	if o.p95LatencyGauge, err = o.meter.Float64Gauge(names.CacheP95Latency,
		metric.WithDescription("95th percentile cache hit latency"),
		metric.WithUnit("s")); err != nil {
		return fmt.Errorf("failed to create p95 latency gauge: %w", err)
	}

	if o.p99LatencyGauge, err = o.meter.Float64Gauge(names.CacheP99Latency,
		metric.WithDescription("99th percentile cache hit latency"),
		metric.WithUnit("s")); err != nil {
		return fmt.Errorf("failed to create p99 latency gauge: %w", err)
	}

	return nil
}

// ExportStats exports a cache statistics snapshot through the meter
func (o *OpenTelemetryExporter) ExportStats(stats Stats, labels Labels) error {
	opt := metric.WithAttributes(o.attributes(labels)...)

	o.hitsGauge.Record(o.ctx, stats.Hits(), opt)
	o.missesGauge.Record(o.ctx, stats.Misses(), opt)
	o.evictionsGauge.Record(o.ctx, stats.Evictions(), opt)
	o.hitRateGauge.Record(o.ctx, stats.HitRate(), opt)
	o.missRateGauge.Record(o.ctx, stats.MissRate(), opt)
	o.avgLatencyGauge.Record(o.ctx, stats.AverageLatency().Seconds(), opt)
	o.p95LatencyGauge.Record(o.ctx, stats.LatencyPercentile(95).Seconds(), opt)
	o.p99LatencyGauge.Record(o.ctx, stats.LatencyPercentile(99).Seconds(), opt)

	return nil
}

// Close shuts down the exporter
func (o *OpenTelemetryExporter) Close() error {
	// Meter lifecycle is owned by the caller's MeterProvider
	return nil
}

func (o *OpenTelemetryExporter) attributes(labels Labels) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(o.attrs)+len(labels))
	attrs = append(attrs, o.attrs...)
	for k, v := range labels {
		attrs = append(attrs, attribute.String(k, v))
	}
	return attrs
}

var _ Exporter = (*OpenTelemetryExporter)(nil)
