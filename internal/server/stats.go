package server

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/mvasanth/voxhound/internal/detect"
)

// DetectionStats collects detection latency samples and outcome counters for
// the /stats endpoint. It maintains a bounded ring buffer of recent
// end-to-end detection latencies from which percentiles are computed on
// demand. All counters reset on restart.
//
// Thread-safe for concurrent use.
type DetectionStats struct {
	mu sync.Mutex

	latency latencyRing

	human  int64
	ai     int64
	errors int64

	started time.Time
}

// NewDetectionStats creates a DetectionStats with the given window size
// (maximum number of latency samples retained).
func NewDetectionStats(windowSize int) *DetectionStats {
	if windowSize <= 0 {
		windowSize = 512
	}
	return &DetectionStats{
		latency: newLatencyRing(windowSize),
		started: time.Now(),
	}
}

// RecordDetection records a completed detection and its end-to-end latency.
func (ds *DetectionStats) RecordDetection(label detect.Label, d time.Duration) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.latency.add(d)
	if label == detect.LabelAIGenerated {
		ds.ai++
	} else {
		ds.human++
	}
}

// RecordError increments the rejected-request counter.
func (ds *DetectionStats) RecordError() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.errors++
}

// LatencySummary holds nearest-rank latency percentiles over the retained
// window, in milliseconds.
type LatencySummary struct {
	P50Ms float64 `json:"p50_ms"`
	P90Ms float64 `json:"p90_ms"`
	P99Ms float64 `json:"p99_ms"`
	MaxMs float64 `json:"max_ms"`
}

// StatsSnapshot is a point-in-time view of the detection counters, served as
// the /stats response body.
type StatsSnapshot struct {
	UptimeSeconds   float64        `json:"uptime_seconds"`
	TotalDetections int64          `json:"total_detections"`
	Human           int64          `json:"human"`
	AIGenerated     int64          `json:"ai_generated"`
	Errors          int64          `json:"errors"`
	Latency         LatencySummary `json:"latency"`
}

// Snapshot returns a point-in-time view of all detection statistics.
func (ds *DetectionStats) Snapshot() StatsSnapshot {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	return StatsSnapshot{
		UptimeSeconds:   time.Since(ds.started).Seconds(),
		TotalDetections: ds.human + ds.ai,
		Human:           ds.human,
		AIGenerated:     ds.ai,
		Errors:          ds.errors,
		Latency:         ds.latency.summary(),
	}
}

// latencyRing is a bounded ring buffer of duration samples.
type latencyRing struct {
	data []time.Duration
	size int
	pos  int
	full bool
}

func newLatencyRing(size int) latencyRing {
	return latencyRing{
		data: make([]time.Duration, size),
		size: size,
	}
}

func (lr *latencyRing) add(d time.Duration) {
	lr.data[lr.pos] = d
	lr.pos++
	if lr.pos >= lr.size {
		lr.pos = 0
		lr.full = true
	}
}

func (lr *latencyRing) summary() LatencySummary {
	n := lr.pos
	if lr.full {
		n = lr.size
	}
	if n == 0 {
		return LatencySummary{}
	}

	// Copy and sort the valid samples.
	sorted := make([]time.Duration, n)
	if lr.full {
		copy(sorted, lr.data)
	} else {
		copy(sorted, lr.data[:n])
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return LatencySummary{
		P50Ms: millis(percentile(sorted, 0.50)),
		P90Ms: millis(percentile(sorted, 0.90)),
		P99Ms: millis(percentile(sorted, 0.99)),
		MaxMs: millis(sorted[n-1]),
	}
}

// percentile returns the value at the given percentile (0.0-1.0) from a
// sorted slice of durations using nearest-rank.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
