package audio_test

import (
	"math"
	"testing"

	"github.com/mvasanth/voxhound/pkg/audio"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMixToMono_Stereo(t *testing.T) {
	// Two stereo frames: (0.5, -0.5) and (0.25, 0.75).
	in := []float64{0.5, -0.5, 0.25, 0.75}
	got := audio.MixToMono(in, 2)
	want := []float64{0, 0.5}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMixToMono_MonoPassthrough(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	got := audio.MixToMono(in, 1)
	// Same slice — pointer equality check.
	if &got[0] != &in[0] {
		t.Error("expected same slice (zero allocation) for mono input")
	}
}

func TestMixToMono_IncompleteFrame(t *testing.T) {
	// 5 samples of stereo = 2 complete frames + 1 dangling sample.
	in := []float64{0.5, -0.5, 0.25, 0.75, 0.9}
	got := audio.MixToMono(in, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(got))
	}
}

func TestResample_SameRate(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3}
	got := audio.Resample(in, 16000, 16000)
	if &got[0] != &in[0] {
		t.Error("expected same slice for matching rates")
	}
}

func TestResample_Upsample(t *testing.T) {
	// 2 samples at 16kHz → 6 samples at 48kHz (3x).
	in := []float64{0.1, 0.4}
	got := audio.Resample(in, 16000, 48000)
	if len(got) != 6 {
		t.Fatalf("expected 6 samples, got %d", len(got))
	}
	if !almostEqual(got[0], 0.1, 1e-12) {
		t.Errorf("first sample: got %v, want 0.1", got[0])
	}
	// Last output sample should be close to the last source sample.
	last := got[len(got)-1]
	if last < 0.3 || last > 0.45 {
		t.Errorf("last sample: got %v, want close to 0.4", last)
	}
	// Interior samples must be monotonically interpolated for a ramp.
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Errorf("sample %d: interpolated ramp not monotonic: %v < %v", i, got[i], got[i-1])
		}
	}
}

func TestResample_Downsample(t *testing.T) {
	// 6 samples at 48kHz → 2 samples at 16kHz (1/3x).
	in := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	got := audio.Resample(in, 48000, 16000)
	if len(got) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(got))
	}
}

func TestResample_BadRates(t *testing.T) {
	in := []float64{0.1, 0.2}
	for _, tc := range []struct {
		name             string
		srcRate, dstRate int
	}{
		{"zero src", 0, 48000},
		{"zero dst", 48000, 0},
		{"negative src", -1, 48000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := audio.Resample(in, tc.srcRate, tc.dstRate)
			if len(got) != len(in) {
				t.Errorf("expected unchanged output, got len %d", len(got))
			}
		})
	}
}

func TestClipDuration(t *testing.T) {
	clip := &audio.Clip{Samples: make([]float64, 16000), SampleRate: 16000}
	if got := clip.Duration().Seconds(); !almostEqual(got, 1.0, 1e-9) {
		t.Errorf("duration: got %vs, want 1s", got)
	}
	empty := &audio.Clip{}
	if empty.Duration() != 0 {
		t.Errorf("zero-rate clip should have zero duration, got %v", empty.Duration())
	}
}
