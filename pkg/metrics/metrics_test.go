package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// stubStats is a fixed statistics snapshot for exporter tests.
type stubStats struct {
	hits      int64
	misses    int64
	evictions int64
}

func (s stubStats) Hits() int64      { return s.hits }
func (s stubStats) Misses() int64    { return s.misses }
func (s stubStats) Evictions() int64 { return s.evictions }

func (s stubStats) HitRate() float64 {
	total := s.hits + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.hits) / float64(total)
}

func (s stubStats) MissRate() float64 {
	total := s.hits + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.misses) / float64(total)
}

func (s stubStats) AverageLatency() time.Duration { return 15 * time.Millisecond }

func (s stubStats) LatencyPercentile(float64) time.Duration { return 40 * time.Millisecond }

func TestNoOpExporter(t *testing.T) {
	exporter := NewNoOpExporter()

	if err := exporter.ExportStats(stubStats{}, nil); err != nil {
		t.Fatalf("ExportStats failed: %v", err)
	}
	if err := exporter.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

// failingExporter always errors, for MultiExporter propagation tests.
type failingExporter struct{}

func (failingExporter) ExportStats(Stats, Labels) error { return errors.New("export failed") }
func (failingExporter) Close() error                    { return errors.New("close failed") }

func TestMultiExporter(t *testing.T) {
	t.Run("fans out", func(t *testing.T) {
		multi := NewMultiExporter(NewNoOpExporter(), NewNoOpExporter())
		if err := multi.ExportStats(stubStats{hits: 1}, nil); err != nil {
			t.Fatalf("ExportStats failed: %v", err)
		}
		if err := multi.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	})

	t.Run("propagates errors", func(t *testing.T) {
		multi := NewMultiExporter(NewNoOpExporter(), failingExporter{})
		if err := multi.ExportStats(stubStats{}, nil); err == nil {
			t.Fatal("Expected export error to propagate")
		}
		if err := multi.Close(); err == nil {
			t.Fatal("Expected close error to propagate")
		}
	})
}

func TestPrometheusExporter(t *testing.T) {
	registry := prometheus.NewRegistry()
	exporter, err := NewPrometheusExporter(nil, &PrometheusConfig{Registry: registry})
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	stats := stubStats{hits: 3, misses: 1, evictions: 2}
	if err := exporter.ExportStats(stats, Labels{"cache_name": "test"}); err != nil {
		t.Fatalf("ExportStats failed: %v", err)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	values := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			values[family.GetName()] = metric.GetGauge().GetValue()
		}
	}

	checks := map[string]float64{
		"cacherine_hits_total":          3,
		"cacherine_misses_total":        1,
		"cacherine_evictions_total":     2,
		"cacherine_hit_rate":            0.75,
		"cacherine_miss_rate":           0.25,
		"cacherine_latency_avg_seconds": 0.015,
		"cacherine_latency_p95_seconds": 0.04,
	}
	for name, expected := range checks {
		if got, ok := values[name]; !ok {
			t.Errorf("Expected metric %s to be gathered", name)
		} else if got != expected {
			t.Errorf("Expected %s = %v, got %v", name, expected, got)
		}
	}
}

func TestPrometheusExporterSharedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()

	if _, err := NewPrometheusExporter(nil, &PrometheusConfig{Registry: registry}); err != nil {
		t.Fatalf("Failed to create first exporter: %v", err)
	}
	// A second exporter on the same registry reuses the collectors
	if _, err := NewPrometheusExporter(nil, &PrometheusConfig{Registry: registry}); err != nil {
		t.Fatalf("Failed to create second exporter on shared registry: %v", err)
	}
}

func TestDefaultMetricNames(t *testing.T) {
	names := DefaultMetricNames()
	if names.CacheHits != "cacherine_hits_total" {
		t.Errorf("Unexpected hits metric name: %s", names.CacheHits)
	}
	if names.CacheP99Latency != "cacherine_latency_p99_seconds" {
		t.Errorf("Unexpected p99 metric name: %s", names.CacheP99Latency)
	}
}

func TestOpenTelemetryExporterRequiresMeter(t *testing.T) {
	if _, err := NewOpenTelemetryExporter(nil, nil); err == nil {
		t.Fatal("Expected error without OpenTelemetry configuration")
	}
	if _, err := NewOpenTelemetryExporter(nil, &OpenTelemetryConfig{}); err == nil {
		t.Fatal("Expected error without a meter")
	}
}
