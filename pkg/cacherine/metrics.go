package cacherine

import (
	"slices"
	"sync"
	"time"
)

// Metrics accumulates cache performance observations: hit and miss
// counters, one latency sample per hit, and a timestamp per eviction.
// All methods are safe for concurrent use; each is individually
// serialized by the Metrics' own mutex, independent of the cache lock.
//
// The latency and eviction sequences grow until Reset; callers that run
// for a long time decide their own reset cadence.
type Metrics struct {
	mu        sync.Mutex
	hits      int64
	misses    int64
	latencies []time.Duration
	evictions []time.Time
}

// RecentStats is a point-in-time snapshot of the accumulated metrics.
// The rates and latency figures cover the entire retained history; only
// EvictionsPerMinute is computed over the requested window.
type RecentStats struct {
	HitRate            float64
	MissRate           float64
	AverageLatency     time.Duration
	P95Latency         time.Duration
	P99Latency         time.Duration
	EvictionsPerMinute float64
}

// NewMetrics creates an empty metrics recorder
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordHit records a cache hit and its observed latency
func (m *Metrics) RecordHit(latency time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
	m.latencies = append(m.latencies, latency)
}

// RecordMiss records a cache miss
func (m *Metrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

// RecordEviction records an eviction at the current wall-clock time
func (m *Metrics) RecordEviction() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictions = append(m.evictions, time.Now())
}

// Hits returns the number of cache hits
func (m *Metrics) Hits() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}

// Misses returns the number of cache misses
func (m *Metrics) Misses() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}

// Evictions returns the number of recorded evictions
func (m *Metrics) Evictions() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.evictions))
}

// Total returns the total number of cache requests (hits + misses)
func (m *Metrics) Total() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits + m.misses
}

// HitRate returns the ratio of hits to total requests, 0 when there have
// been no requests
func (m *Metrics) HitRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hitRateLocked()
}

// MissRate returns the ratio of misses to total requests, 0 when there
// have been no requests
func (m *Metrics) MissRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.missRateLocked()
}

// AverageLatency returns the mean of all recorded hit latencies,
// truncated to the underlying time unit; 0 when no samples exist
func (m *Metrics) AverageLatency() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.averageLatencyLocked()
}

// LatencyPercentile returns the p-th percentile of all recorded hit
// latencies; 0 when no samples exist. With an even sample count, p=50
// averages the two central samples.
func (m *Metrics) LatencyPercentile(p float64) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return percentile(m.latencies, p)
}

// RecentStats returns a consistent snapshot of the accumulated metrics.
// Rates and latencies are computed over the full retained history; the
// eviction rate counts only evictions inside the given window, scaled
// to a per-minute figure.
func (m *Metrics) RecentStats(window time.Duration) RecentStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return RecentStats{
		HitRate:            m.hitRateLocked(),
		MissRate:           m.missRateLocked(),
		AverageLatency:     m.averageLatencyLocked(),
		P95Latency:         percentile(m.latencies, 95),
		P99Latency:         percentile(m.latencies, 99),
		EvictionsPerMinute: m.evictionsPerMinuteLocked(window),
	}
}

// Reset zeroes all counters and clears both sample sequences
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits = 0
	m.misses = 0
	m.latencies = nil
	m.evictions = nil
}

func (m *Metrics) hitRateLocked() float64 {
	total := m.hits + m.misses
	if total == 0 {
		return 0
	}
	return float64(m.hits) / float64(total)
}

func (m *Metrics) missRateLocked() float64 {
	total := m.hits + m.misses
	if total == 0 {
		return 0
	}
	return float64(m.misses) / float64(total)
}

func (m *Metrics) averageLatencyLocked() time.Duration {
	if len(m.latencies) == 0 {
		return 0
	}
	var sum time.Duration
	for _, latency := range m.latencies {
		sum += latency
	}
	return sum / time.Duration(len(m.latencies))
}

func (m *Metrics) evictionsPerMinuteLocked(window time.Duration) float64 {
	if window <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-window)
	recent := 0
	for _, ts := range m.evictions {
		if ts.After(cutoff) {
			recent++
		}
	}
	return float64(recent) * float64(time.Minute) / float64(window)
}

// percentile sorts a copy of the samples ascending and picks the value
// at index floor((n-1)*p/100).
func percentile(samples []time.Duration, p float64) time.Duration {
	n := len(samples)
	if n == 0 {
		return 0
	}

	sorted := make([]time.Duration, n)
	copy(sorted, samples)
	slices.Sort(sorted)

	// The median over an even sample count is the mean of the two
	// central samples.
	if p == 50 && n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}

	idx := int(float64(n-1) * p / 100)
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return sorted[idx]
}
