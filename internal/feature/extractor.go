package feature

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/mvasanth/voxhound/internal/dsp"
	"github.com/mvasanth/voxhound/pkg/audio"
)

const (
	mfccCoefficients = 13
	rolloffPercent   = 0.85
)

// Option configures an [Extractor].
type Option func(*Extractor)

// WithMaxConcurrent caps how many extractions may run at once across all
// callers. n <= 0 leaves extraction unlimited.
func WithMaxConcurrent(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// Extractor computes [FeatureSet] values from encoded audio. It is stateless
// apart from the optional concurrency limit and safe for concurrent use.
type Extractor struct {
	sem *semaphore.Weighted
}

// New creates an [Extractor].
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract decodes data (WAV, MP3, OGG, or FLAC), resamples to the analysis
// rate, and computes the full [FeatureSet]. When a concurrency limit is
// configured, ctx bounds the wait for an extraction slot; the numeric
// analysis itself runs to completion once started.
func (e *Extractor) Extract(ctx context.Context, data []byte) (FeatureSet, error) {
	if e.sem != nil {
		if err := e.sem.Acquire(ctx, 1); err != nil {
			return FeatureSet{}, fmt.Errorf("extract features: %w", err)
		}
		defer e.sem.Release(1)
	}

	samples, err := audio.DecodeMono16k(data)
	if err != nil {
		return FeatureSet{}, fmt.Errorf("extract features: %w", err)
	}

	return FromSamples(samples), nil
}

// FromSamples computes the summary statistics for mono samples at
// [audio.AnalysisSampleRate]. Samples must be non-empty; the edge padding of
// the framing guarantees at least one frame per descriptor.
func FromSamples(samples []float64) FeatureSet {
	const sr = audio.AnalysisSampleRate

	var fs FeatureSet

	mfcc := dsp.MFCC(samples, sr, mfccCoefficients)
	fs.MFCCMean = dsp.MatrixMean(mfcc)
	fs.MFCCStd = dsp.MatrixStd(mfcc)

	zcr := dsp.ZeroCrossingRate(samples)
	fs.ZCRMean = dsp.Mean(zcr)
	fs.ZCRStd = dsp.Std(zcr)

	spec := dsp.Spectrogram(samples)

	centroid := dsp.SpectralCentroid(spec, sr)
	fs.SpectralCentroidMean = dsp.Mean(centroid)
	fs.SpectralCentroidStd = dsp.Std(centroid)

	rolloff := dsp.SpectralRolloff(spec, sr, rolloffPercent)
	fs.SpectralRolloffMean = dsp.Mean(rolloff)
	fs.SpectralRolloffStd = dsp.Std(rolloff)

	chroma := dsp.Chroma(squared(spec), sr)
	fs.ChromaMean = dsp.MatrixMean(chroma)
	fs.ChromaStd = dsp.MatrixStd(chroma)

	contrast := dsp.SpectralContrast(spec, sr)
	fs.SpectralContrastMean = dsp.MatrixMean(contrast)
	fs.SpectralContrastStd = dsp.MatrixStd(contrast)

	tempogram := dsp.Tempogram(samples, sr)
	fs.TempogramMean = dsp.MatrixMean(tempogram)

	rms := dsp.RMSEnergy(samples)
	fs.RMSMean = dsp.Mean(rms)
	fs.RMSStd = dsp.Std(rms)

	return fs
}

// squared returns a copy of the magnitude spectrogram with every bin squared.
func squared(spec [][]float64) [][]float64 {
	out := make([][]float64, len(spec))
	for t, row := range spec {
		p := make([]float64, len(row))
		for i, v := range row {
			p[i] = v * v
		}
		out[t] = p
	}
	return out
}
