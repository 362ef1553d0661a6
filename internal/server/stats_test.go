package server

import (
	"testing"
	"time"

	"github.com/mvasanth/voxhound/internal/detect"
)

func TestNewDetectionStats_DefaultWindowSize(t *testing.T) {
	t.Parallel()

	ds := NewDetectionStats(0)
	// Should use the default window size, not panic.
	ds.RecordDetection(detect.LabelHuman, 10*time.Millisecond)

	snap := ds.Snapshot()
	if snap.Latency.P50Ms != 10 {
		t.Errorf("P50Ms = %v, want 10", snap.Latency.P50Ms)
	}
}

func TestDetectionStats_RecordAndSnapshot(t *testing.T) {
	t.Parallel()

	ds := NewDetectionStats(100)

	// 99 human detections at 1..99ms plus one AI detection at 100ms.
	for i := 1; i <= 99; i++ {
		ds.RecordDetection(detect.LabelHuman, time.Duration(i)*time.Millisecond)
	}
	ds.RecordDetection(detect.LabelAIGenerated, 100*time.Millisecond)
	ds.RecordError()
	ds.RecordError()

	snap := ds.Snapshot()

	if snap.Human != 99 {
		t.Errorf("Human = %d, want 99", snap.Human)
	}
	if snap.AIGenerated != 1 {
		t.Errorf("AIGenerated = %d, want 1", snap.AIGenerated)
	}
	if snap.TotalDetections != 100 {
		t.Errorf("TotalDetections = %d, want 100", snap.TotalDetections)
	}
	if snap.Errors != 2 {
		t.Errorf("Errors = %d, want 2", snap.Errors)
	}
	if snap.UptimeSeconds < 0 {
		t.Errorf("UptimeSeconds = %v, want >= 0", snap.UptimeSeconds)
	}

	// 100 samples from 1ms to 100ms, nearest-rank.
	if snap.Latency.P50Ms != 50 {
		t.Errorf("P50Ms = %v, want 50", snap.Latency.P50Ms)
	}
	if snap.Latency.P90Ms != 90 {
		t.Errorf("P90Ms = %v, want 90", snap.Latency.P90Ms)
	}
	if snap.Latency.P99Ms != 99 {
		t.Errorf("P99Ms = %v, want 99", snap.Latency.P99Ms)
	}
	if snap.Latency.MaxMs != 100 {
		t.Errorf("MaxMs = %v, want 100", snap.Latency.MaxMs)
	}
}

func TestDetectionStats_EmptySnapshot(t *testing.T) {
	t.Parallel()

	ds := NewDetectionStats(10)
	snap := ds.Snapshot()

	if snap.Latency != (LatencySummary{}) {
		t.Errorf("empty Latency = %+v, want zero", snap.Latency)
	}
	if snap.TotalDetections != 0 || snap.Errors != 0 {
		t.Errorf("empty counters = %+v, want zero", snap)
	}
}

func TestDetectionStats_RingBufferWrap(t *testing.T) {
	t.Parallel()

	// Small buffer to force wrap-around.
	ds := NewDetectionStats(3)

	ds.RecordDetection(detect.LabelHuman, 10*time.Millisecond)
	ds.RecordDetection(detect.LabelHuman, 20*time.Millisecond)
	ds.RecordDetection(detect.LabelHuman, 30*time.Millisecond)
	// Wrap around: overwrites the first entry.
	ds.RecordDetection(detect.LabelHuman, 40*time.Millisecond)

	snap := ds.Snapshot()
	// Buffer now contains [40, 20, 30]; sorted [20, 30, 40].
	// P50 of 3 elements: ceil(0.5 * 3) - 1 = 1 => index 1 => 30ms.
	if snap.Latency.P50Ms != 30 {
		t.Errorf("P50Ms after wrap = %v, want 30", snap.Latency.P50Ms)
	}
	// The counters keep counting past the window.
	if snap.Human != 4 {
		t.Errorf("Human = %d, want 4", snap.Human)
	}
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sorted []time.Duration
		p      float64
		want   time.Duration
	}{
		{"empty", nil, 0.5, 0},
		{"single element p50", []time.Duration{100 * time.Millisecond}, 0.5, 100 * time.Millisecond},
		{"single element p99", []time.Duration{100 * time.Millisecond}, 0.99, 100 * time.Millisecond},
		{"two elements p50", []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, 0.5, 10 * time.Millisecond},
		{"two elements p99", []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, 0.99, 20 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := percentile(tt.sorted, tt.p)
			if got != tt.want {
				t.Errorf("percentile(%v, %.2f) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}
