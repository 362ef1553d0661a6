package feature

import (
	"context"
	"fmt"
	"math"

	"github.com/mvasanth/voxhound/pkg/audio"
)

// selftestClip returns an in-memory WAV of a 440 Hz tone with a slow
// amplitude wobble, half a second at the analysis rate.
func selftestClip() []byte {
	n := audio.AnalysisSampleRate / 2
	samples := make([]float64, n)
	for i := range samples {
		ti := float64(i) / audio.AnalysisSampleRate
		amp := 0.5 + 0.2*math.Sin(2*math.Pi*3*ti)
		samples[i] = amp * math.Sin(2*math.Pi*440*ti)
	}
	return audio.EncodeWAV(samples, audio.AnalysisSampleRate)
}

// SelfTest runs the built-in clip through decode and extraction and reports
// an error if any computed statistic is unusable. Wired into the readiness
// endpoint.
func (e *Extractor) SelfTest(ctx context.Context) error {
	fs, err := e.Extract(ctx, selftestClip())
	if err != nil {
		return fmt.Errorf("self test: %w", err)
	}
	for name, v := range fs.Fields() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("self test: %s = %v", name, v)
		}
	}
	if fs.RMSMean <= 0 {
		return fmt.Errorf("self test: rms_mean = %v, want > 0", fs.RMSMean)
	}
	return nil
}
