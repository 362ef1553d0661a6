package dsp

import "math"

// MFCC computes the first nCoeffs mel-frequency cepstral coefficients per
// frame: an orthonormal DCT-II over the 128-band log-power mel spectrum.
// Only the leading nCoeffs basis rows are projected, so the transform is a
// direct O(nCoeffs * nMels) product per frame.
func MFCC(samples []float64, sampleRate, nCoeffs int) [][]float64 {
	logMel := LogMelSpectrogram(samples, sampleRate, defaultMelBands)
	nMels := defaultMelBands

	// DCT-II basis with orthonormal scaling.
	basis := make([][]float64, nCoeffs)
	for k := range nCoeffs {
		row := make([]float64, nMels)
		scale := math.Sqrt(2.0 / float64(nMels))
		if k == 0 {
			scale = math.Sqrt(1.0 / float64(nMels))
		}
		for n := range nMels {
			row[n] = scale * math.Cos(math.Pi*(float64(n)+0.5)*float64(k)/float64(nMels))
		}
		basis[k] = row
	}

	mfcc := make([][]float64, len(logMel))
	for t, frame := range logMel {
		row := make([]float64, nCoeffs)
		for k := range nCoeffs {
			var sum float64
			for n := range nMels {
				sum += basis[k][n] * frame[n]
			}
			row[k] = sum
		}
		mfcc[t] = row
	}
	return mfcc
}
