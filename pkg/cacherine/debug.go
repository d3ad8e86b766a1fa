package cacherine

import (
	"encoding/json"
	"net/http"
)

// DebugResponse represents the JSON response structure for debug endpoints
type DebugResponse struct {
	Stats *DebugStats `json:"stats"`
	Keys  []string    `json:"keys,omitempty"`
}

// DebugStats represents cache metrics in the debug response
type DebugStats struct {
	Hits           int64   `json:"hits"`
	Misses         int64   `json:"misses"`
	Total          int64   `json:"total"`
	Evictions      int64   `json:"evictions"`
	HitRate        float64 `json:"hitRate"`
	MissRate       float64 `json:"missRate"`
	AverageLatency string  `json:"averageLatency"`
	P95Latency     string  `json:"p95Latency"`
	P99Latency     string  `json:"p99Latency"`
	KeyCount       int     `json:"keyCount"`
	Capacity       int     `json:"capacity"`
}

// DebugHandler returns an HTTP handler that exposes cache metrics.
// The handler supports the following endpoints:
//   - GET /stats - Returns only cache statistics (no keys)
//   - GET /keys - Returns statistics and all cache keys
//   - GET / - Returns statistics and all cache keys (same as /keys)
func (mc *MonitoredCache) DebugHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := &DebugResponse{Stats: mc.debugStats()}
		if r.URL.Path != "/stats" {
			response.Keys = mc.Keys()
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	})
}

func (mc *MonitoredCache) debugStats() *DebugStats {
	return &DebugStats{
		Hits:           mc.metrics.Hits(),
		Misses:         mc.metrics.Misses(),
		Total:          mc.metrics.Total(),
		Evictions:      mc.metrics.Evictions(),
		HitRate:        mc.metrics.HitRate(),
		MissRate:       mc.metrics.MissRate(),
		AverageLatency: mc.metrics.AverageLatency().String(),
		P95Latency:     mc.metrics.LatencyPercentile(95).String(),
		P99Latency:     mc.metrics.LatencyPercentile(99).String(),
		KeyCount:       mc.Len(),
		Capacity:       mc.Capacity(),
	}
}
