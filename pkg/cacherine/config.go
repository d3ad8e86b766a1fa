package cacherine

import (
	"time"

	"github.com/yordgenome03/cacherine/internal/eviction"
	"github.com/yordgenome03/cacherine/pkg/metrics"
)

// Re-exported policy types so callers don't need to import the internal
// eviction package.
const (
	// PolicyFIFO evicts the longest-resident entry
	PolicyFIFO = eviction.FIFO

	// PolicyEphemeralFIFO is FIFO with one-shot reads
	PolicyEphemeralFIFO = eviction.EphemeralFIFO

	// PolicyLRU evicts the least recently used entry
	PolicyLRU = eviction.LRU

	// PolicyMRU evicts the most recently used entry
	PolicyMRU = eviction.MRU

	// PolicyLFU evicts the least frequently used entry
	PolicyLFU = eviction.LFU
)

// PolicyType identifies an eviction policy.
type PolicyType = eviction.Type

// MetricsConfig holds metrics exporter configuration
type MetricsConfig struct {
	// Exporter is the metrics exporter to use
	Exporter metrics.Exporter

	// Enabled determines whether metrics export is enabled
	Enabled bool

	// CacheName is the name label applied to all metrics for this cache instance
	CacheName string

	// ReportingInterval determines how often to export stats automatically
	// Set to 0 to disable automatic reporting
	ReportingInterval time.Duration

	// Labels are additional labels applied to all metrics
	Labels metrics.Labels
}

// Config defines the configuration options for a Cache instance
type Config struct {
	// Policy determines which eviction policy to use
	// Default: PolicyLRU
	Policy PolicyType

	// Capacity sets the maximum number of entries in the cache.
	// Must be positive.
	// Default: 1000
	Capacity int

	// Hooks defines event callbacks for cache operations
	Hooks *Hooks

	// Logger receives cache lifecycle and alerting logs
	// If nil, logging is disabled
	Logger Logger

	// Alerts holds threshold alerting configuration
	// Only used by monitored caches; if nil, alerting is disabled
	Alerts *AlertConfig

	// Metrics holds metrics exporter configuration
	// Only used by monitored caches; if nil, no metrics are exported
	Metrics *MetricsConfig
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Policy:   PolicyLRU,
		Capacity: 1000,
		Hooks:    &Hooks{},
	}
}

// WithPolicy sets the eviction policy
func (c *Config) WithPolicy(policy PolicyType) *Config {
	c.Policy = policy
	return c
}

// WithCapacity sets the maximum number of cache entries
func (c *Config) WithCapacity(capacity int) *Config {
	c.Capacity = capacity
	return c
}

// WithHooks sets the event hooks for cache operations
func (c *Config) WithHooks(hooks *Hooks) *Config {
	c.Hooks = hooks
	return c
}

// WithLogger sets the cache logger
func (c *Config) WithLogger(logger Logger) *Config {
	c.Logger = logger
	return c
}

// WithAlerts sets the threshold alerting configuration
func (c *Config) WithAlerts(alerts *AlertConfig) *Config {
	c.Alerts = alerts
	return c
}

// WithMetrics sets the metrics exporter configuration
func (c *Config) WithMetrics(metricsConfig *MetricsConfig) *Config {
	c.Metrics = metricsConfig
	return c
}

// WithMetricsExporter configures metrics export with the given exporter
func (c *Config) WithMetricsExporter(exporter metrics.Exporter, cacheName string) *Config {
	c.Metrics = &MetricsConfig{
		Exporter:          exporter,
		Enabled:           true,
		CacheName:         cacheName,
		ReportingInterval: 30 * time.Second,
		Labels:            make(metrics.Labels),
	}
	return c
}
