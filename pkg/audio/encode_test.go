package audio_test

import (
	"math"
	"testing"

	"github.com/mvasanth/voxhound/pkg/audio"
)

func TestEncodeWAV_RoundTrip(t *testing.T) {
	samples := make([]float64, 200)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/float64(audio.AnalysisSampleRate))
	}

	clip, err := audio.Decode(audio.EncodeWAV(samples, audio.AnalysisSampleRate))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if clip.SampleRate != audio.AnalysisSampleRate {
		t.Errorf("SampleRate = %d, want %d", clip.SampleRate, audio.AnalysisSampleRate)
	}
	if len(clip.Samples) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(clip.Samples), len(samples))
	}
	for i := range samples {
		if !almostEqual(clip.Samples[i], samples[i], 1e-3) {
			t.Fatalf("sample %d = %v, want %v", i, clip.Samples[i], samples[i])
		}
	}
}

func TestEncodeWAV_ClampsOutOfRange(t *testing.T) {
	clip, err := audio.Decode(audio.EncodeWAV([]float64{2.0, -3.0}, 8000))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(clip.Samples) != 2 {
		t.Fatalf("decoded %d samples, want 2", len(clip.Samples))
	}
	if clip.Samples[0] < 0.99 || clip.Samples[0] > 1.0 {
		t.Errorf("clamped positive sample = %v, want ~1.0", clip.Samples[0])
	}
	if clip.Samples[1] > -0.99 || clip.Samples[1] < -1.0 {
		t.Errorf("clamped negative sample = %v, want ~-1.0", clip.Samples[1])
	}
}
