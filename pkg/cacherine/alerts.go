package cacherine

import (
	"fmt"
	"sync"
	"time"
)

// Alert threshold defaults.
const (
	defaultHitRateThreshold            = 0.5
	defaultMissRateThreshold           = 0.5
	defaultP95LatencyThreshold         = 200 * time.Millisecond
	defaultP99LatencyThreshold         = 300 * time.Millisecond
	defaultAverageLatencyThreshold     = 100 * time.Millisecond
	defaultEvictionsPerMinuteThreshold = 1000
	defaultCheckInterval               = time.Minute
)

// NotifyFunc receives a human-readable alert message naming the metric,
// its observed value, and the configured threshold.
type NotifyFunc func(message string)

// AlertConfig holds threshold alerting configuration. It is read-only
// after construction; all fields except Notify have defaults.
type AlertConfig struct {
	// Notify is invoked once per violated threshold on every check
	Notify NotifyFunc

	// HitRateThreshold is the floor below which the hit rate alerts
	// Default: 0.5
	HitRateThreshold float64

	// MissRateThreshold is the ceiling above which the miss rate alerts
	// Default: 0.5
	MissRateThreshold float64

	// P95LatencyThreshold is the ceiling for 95th percentile hit latency
	// Default: 200ms
	P95LatencyThreshold time.Duration

	// P99LatencyThreshold is the ceiling for 99th percentile hit latency
	// Default: 300ms
	P99LatencyThreshold time.Duration

	// AverageLatencyThreshold is the ceiling for mean hit latency
	// Default: 100ms
	AverageLatencyThreshold time.Duration

	// EvictionsPerMinuteThreshold is the ceiling for the windowed
	// eviction rate
	// Default: 1000
	EvictionsPerMinuteThreshold float64

	// CheckInterval is the period between threshold evaluations, and the
	// window used for the eviction rate
	// Default: 1 minute
	CheckInterval time.Duration
}

// NewAlertConfig returns an AlertConfig with default thresholds and the
// given notification callback
func NewAlertConfig(notify NotifyFunc) *AlertConfig {
	return &AlertConfig{
		Notify:                      notify,
		HitRateThreshold:            defaultHitRateThreshold,
		MissRateThreshold:           defaultMissRateThreshold,
		P95LatencyThreshold:         defaultP95LatencyThreshold,
		P99LatencyThreshold:         defaultP99LatencyThreshold,
		AverageLatencyThreshold:     defaultAverageLatencyThreshold,
		EvictionsPerMinuteThreshold: defaultEvictionsPerMinuteThreshold,
		CheckInterval:               defaultCheckInterval,
	}
}

// WithHitRateThreshold sets the hit rate floor
func (c *AlertConfig) WithHitRateThreshold(threshold float64) *AlertConfig {
	c.HitRateThreshold = threshold
	return c
}

// WithMissRateThreshold sets the miss rate ceiling
func (c *AlertConfig) WithMissRateThreshold(threshold float64) *AlertConfig {
	c.MissRateThreshold = threshold
	return c
}

// WithP95LatencyThreshold sets the p95 latency ceiling
func (c *AlertConfig) WithP95LatencyThreshold(threshold time.Duration) *AlertConfig {
	c.P95LatencyThreshold = threshold
	return c
}

// WithP99LatencyThreshold sets the p99 latency ceiling
func (c *AlertConfig) WithP99LatencyThreshold(threshold time.Duration) *AlertConfig {
	c.P99LatencyThreshold = threshold
	return c
}

// WithAverageLatencyThreshold sets the average latency ceiling
func (c *AlertConfig) WithAverageLatencyThreshold(threshold time.Duration) *AlertConfig {
	c.AverageLatencyThreshold = threshold
	return c
}

// WithEvictionsPerMinuteThreshold sets the eviction rate ceiling
func (c *AlertConfig) WithEvictionsPerMinuteThreshold(threshold float64) *AlertConfig {
	c.EvictionsPerMinuteThreshold = threshold
	return c
}

// WithCheckInterval sets the period between threshold evaluations
func (c *AlertConfig) WithCheckInterval(interval time.Duration) *AlertConfig {
	c.CheckInterval = interval
	return c
}

// AlertManager periodically compares a Metrics snapshot against the
// configured thresholds and invokes the notification callback once per
// violation. It accumulates nothing itself.
type AlertManager struct {
	metrics *Metrics
	config  *AlertConfig
	logger  Logger

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewAlertManager binds a metrics recorder to an alert configuration.
// The manager is idle until Start is called.
func NewAlertManager(metrics *Metrics, config *AlertConfig, logger Logger) *AlertManager {
	if config == nil {
		config = NewAlertConfig(nil)
	}
	if logger == nil {
		logger = NewNoOpLogger()
	}
	return &AlertManager{
		metrics: metrics,
		config:  config,
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Start arms the recurring check timer. Monitoring continues until Stop.
func (a *AlertManager) Start() {
	a.wg.Add(1)
	go a.run()
}

// Stop tears down the check timer and waits for the loop to exit.
// It is safe to call more than once.
func (a *AlertManager) Stop() {
	a.stopOnce.Do(func() {
		close(a.stop)
	})
	a.wg.Wait()
}

func (a *AlertManager) run() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.check()
		case <-a.stop:
			return
		}
	}
}

// check evaluates all six thresholds against a fresh snapshot. Each
// violation produces its own notification.
func (a *AlertManager) check() {
	stats := a.metrics.RecentStats(a.config.CheckInterval)

	if stats.HitRate < a.config.HitRateThreshold {
		a.notify(fmt.Sprintf("Low hit rate: %.2f (threshold: %.2f)",
			stats.HitRate, a.config.HitRateThreshold))
	}
	if stats.MissRate > a.config.MissRateThreshold {
		a.notify(fmt.Sprintf("High miss rate: %.2f (threshold: %.2f)",
			stats.MissRate, a.config.MissRateThreshold))
	}
	if stats.P95Latency > a.config.P95LatencyThreshold {
		a.notify(fmt.Sprintf("High p95 latency: %v (threshold: %v)",
			stats.P95Latency, a.config.P95LatencyThreshold))
	}
	if stats.P99Latency > a.config.P99LatencyThreshold {
		a.notify(fmt.Sprintf("High p99 latency: %v (threshold: %v)",
			stats.P99Latency, a.config.P99LatencyThreshold))
	}
	if stats.AverageLatency > a.config.AverageLatencyThreshold {
		a.notify(fmt.Sprintf("High average latency: %v (threshold: %v)",
			stats.AverageLatency, a.config.AverageLatencyThreshold))
	}
	if stats.EvictionsPerMinute > a.config.EvictionsPerMinuteThreshold {
		a.notify(fmt.Sprintf("High eviction rate: %.1f/min (threshold: %.1f/min)",
			stats.EvictionsPerMinute, a.config.EvictionsPerMinuteThreshold))
	}
}

// notify invokes the callback, recovering from a panicking callback so
// one bad notification cannot kill the check loop.
func (a *AlertManager) notify(message string) {
	if a.config.Notify == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("alert callback panicked", F("panic", r), F("message", message))
		}
	}()
	a.config.Notify(message)
}
