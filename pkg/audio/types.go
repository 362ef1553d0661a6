package audio

import "time"

// AnalysisSampleRate is the sample rate every clip is normalized to before
// feature analysis. All downstream spectral math assumes this rate.
const AnalysisSampleRate = 16000

// Clip is a fully decoded audio clip. Samples are mono float64 PCM
// normalized to [-1, 1]; channel interleaving is already resolved by the
// decoder, so Samples[i] is simply the i-th point in time.
type Clip struct {
	// Samples holds mono PCM, one float64 per sample point.
	Samples []float64

	// SampleRate in Hz as decoded from the container (e.g. 44100 for CD-rate
	// WAV, 48000 for most Opus/Vorbis rips).
	SampleRate int
}

// Duration returns the clip length derived from the sample count.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / float64(c.SampleRate) * float64(time.Second))
}
