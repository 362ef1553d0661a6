// Package feature turns encoded audio into the summary statistics the voice
// classifier consumes. Extraction decodes the container, resamples to the
// analysis rate, and aggregates each frame-level descriptor into a mean and
// a population standard deviation over all frames.
package feature

// FeatureSet holds the aggregate acoustic statistics of one clip. All values
// are unitless except the spectral centroid and rolloff statistics, which
// are in Hz, and the MFCC statistics, which are in dB-domain cepstral units.
type FeatureSet struct {
	// Mel-frequency cepstral coefficients (13 per frame).
	MFCCMean float64
	MFCCStd  float64

	// Zero-crossing rate per frame, in crossings per sample.
	ZCRMean float64
	ZCRStd  float64

	// Spectral centroid per frame, Hz.
	SpectralCentroidMean float64
	SpectralCentroidStd  float64

	// 85% spectral rolloff per frame, Hz.
	SpectralRolloffMean float64
	SpectralRolloffStd  float64

	// Chroma energy across the 12 pitch classes.
	ChromaMean float64
	ChromaStd  float64

	// Peak-to-valley spectral contrast across 7 subbands, dB.
	SpectralContrastMean float64
	SpectralContrastStd  float64

	// Local autocorrelation tempogram (mean only).
	TempogramMean float64

	// Root-mean-square energy per frame.
	RMSMean float64
	RMSStd  float64
}

// Fields returns the statistics keyed by their canonical snake_case names,
// as used in logs and diagnostics.
func (f FeatureSet) Fields() map[string]float64 {
	return map[string]float64{
		"mfcc_mean":              f.MFCCMean,
		"mfcc_std":               f.MFCCStd,
		"zcr_mean":               f.ZCRMean,
		"zcr_std":                f.ZCRStd,
		"spectral_centroid_mean": f.SpectralCentroidMean,
		"spectral_centroid_std":  f.SpectralCentroidStd,
		"spectral_rolloff_mean":  f.SpectralRolloffMean,
		"spectral_rolloff_std":   f.SpectralRolloffStd,
		"chroma_mean":            f.ChromaMean,
		"chroma_std":             f.ChromaStd,
		"spectral_contrast_mean": f.SpectralContrastMean,
		"spectral_contrast_std":  f.SpectralContrastStd,
		"tempogram_mean":         f.TempogramMean,
		"rms_mean":               f.RMSMean,
		"rms_std":                f.RMSStd,
	}
}
