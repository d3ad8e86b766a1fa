package cacherine

import (
	"sync"
	"time"

	"github.com/yordgenome03/cacherine/pkg/metrics"
)

// MonitoredCache composes a Cache with a Metrics recorder and an
// AlertManager. Get calls are timed and classified as hit or miss;
// evictions reach the recorder through the cache's OnEvict hook.
// Set, Clear and Keys pass through without metrics side effects.
type MonitoredCache struct {
	cache   *Cache
	metrics *Metrics
	alerts  *AlertManager

	metricsExporter metrics.Exporter
	metricsLabels   metrics.Labels
	metricsInterval time.Duration
	metricsStop     chan struct{}
	closeOnce       sync.Once
	wg              sync.WaitGroup
}

// NewMonitored creates a monitored cache with the given policy,
// capacity, and alert configuration. Monitoring starts immediately;
// call Close to tear the timers down.
func NewMonitored(policy PolicyType, capacity int, alertConfig *AlertConfig) (*MonitoredCache, error) {
	return NewMonitoredWithConfig(
		NewDefaultConfig().WithPolicy(policy).WithCapacity(capacity).WithAlerts(alertConfig))
}

// NewMonitoredWithConfig creates a monitored cache from the given
// configuration
func NewMonitoredWithConfig(config *Config) (*MonitoredCache, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	cache, err := NewWithConfig(config)
	if err != nil {
		return nil, err
	}

	recorder := NewMetrics()
	cache.hooks.AddOnEvict(func(string) {
		recorder.RecordEviction()
	})

	mc := &MonitoredCache{
		cache:   cache,
		metrics: recorder,
	}

	if config.Alerts != nil {
		mc.alerts = NewAlertManager(recorder, config.Alerts, cache.logger)
		mc.alerts.Start()
	}

	mc.initializeExport(config)

	return mc, nil
}

// Get retrieves a value, recording the elapsed time as a hit latency or
// counting a miss. The result is returned unchanged.
func (mc *MonitoredCache) Get(key string) (any, bool) {
	start := time.Now()
	value, found := mc.cache.Get(key)
	elapsed := time.Since(start)

	if found {
		mc.metrics.RecordHit(elapsed)
	} else {
		mc.metrics.RecordMiss()
	}

	return value, found
}

// Set stores a value in the wrapped cache
func (mc *MonitoredCache) Set(key string, value any) {
	mc.cache.Set(key, value)
}

// Clear removes all entries from the wrapped cache
func (mc *MonitoredCache) Clear() {
	mc.cache.Clear()
}

// Keys returns a snapshot of the current keys in entry-store order
func (mc *MonitoredCache) Keys() []string {
	return mc.cache.Keys()
}

// Len returns the current number of entries
func (mc *MonitoredCache) Len() int {
	return mc.cache.Len()
}

// Capacity returns the maximum number of entries
func (mc *MonitoredCache) Capacity() int {
	return mc.cache.Capacity()
}

// Metrics returns the accumulated cache metrics
func (mc *MonitoredCache) Metrics() *Metrics {
	return mc.metrics
}

// String renders the current key-value snapshot
func (mc *MonitoredCache) String() string {
	return mc.cache.String()
}

// Close stops the alert and export timers and closes the exporter.
// The cache itself remains usable afterwards, unmonitored.
func (mc *MonitoredCache) Close() error {
	var err error
	mc.closeOnce.Do(func() {
		if mc.alerts != nil {
			mc.alerts.Stop()
		}
		if mc.metricsStop != nil {
			close(mc.metricsStop)
			mc.wg.Wait()
		}
		if mc.metricsExporter != nil {
			err = mc.metricsExporter.Close()
		}
	})
	return err
}

// initializeExport sets up periodic stats export if configured
func (mc *MonitoredCache) initializeExport(config *Config) {
	if config.Metrics == nil || !config.Metrics.Enabled || config.Metrics.Exporter == nil {
		return
	}

	mc.metricsExporter = config.Metrics.Exporter
	mc.metricsInterval = config.Metrics.ReportingInterval

	mc.metricsLabels = make(metrics.Labels)
	if config.Metrics.CacheName != "" {
		mc.metricsLabels["cache_name"] = config.Metrics.CacheName
	} else {
		mc.metricsLabels["cache_name"] = "default"
	}
	for k, v := range config.Metrics.Labels {
		mc.metricsLabels[k] = v
	}

	if mc.metricsInterval > 0 {
		mc.metricsStop = make(chan struct{})
		mc.wg.Add(1)
		go mc.exportLoop()
	}
}

// exportLoop periodically pushes the current stats to the exporter
func (mc *MonitoredCache) exportLoop() {
	defer mc.wg.Done()

	ticker := time.NewTicker(mc.metricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.exportCurrentStats()
		case <-mc.metricsStop:
			// Final export before shutting down
			mc.exportCurrentStats()
			return
		}
	}
}

func (mc *MonitoredCache) exportCurrentStats() {
	if err := mc.metricsExporter.ExportStats(mc.metrics, mc.metricsLabels); err != nil {
		mc.cache.logger.Warn("stats export failed", F("error", err))
	}
}
