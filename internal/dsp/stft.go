// Package dsp implements the frame-based spectral analysis the voice
// classifier's features are built on: STFT, mel/MFCC, chroma, spectral
// shape statistics, onset strength, and tempogram.
//
// All transforms share the same framing convention: frame length 2048, hop
// 512, periodic Hann window, centered frames (the signal is padded by half
// a frame on both sides so frame t is centered on sample t*hop). For a
// signal of N samples every per-frame feature has 1 + N/512 frames.
package dsp

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Framing parameters shared by all features.
const (
	FrameLength = 2048
	HopLength   = 512
)

// hannWindow returns the periodic Hann window of length n.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}

// padConstant returns x zero-padded by pad samples on both sides.
func padConstant(x []float64, pad int) []float64 {
	out := make([]float64, len(x)+2*pad)
	copy(out[pad:], x)
	return out
}

// padEdge returns x padded by pad samples on both sides, replicating the
// boundary values. Empty input pads with zeros.
func padEdge(x []float64, pad int) []float64 {
	out := make([]float64, len(x)+2*pad)
	if len(x) == 0 {
		return out
	}
	for i := range pad {
		out[i] = x[0]
		out[len(out)-1-i] = x[len(x)-1]
	}
	copy(out[pad:], x)
	return out
}

// numFrames returns the frame count for a padded signal of length n.
func numFrames(n int) int {
	if n < FrameLength {
		return 0
	}
	return 1 + (n-FrameLength)/HopLength
}

// Spectrogram computes the magnitude spectrogram of samples: one row per
// frame, FrameLength/2+1 bins per row. Frames are centered and the signal
// is zero-padded at the edges.
func Spectrogram(samples []float64) [][]float64 {
	padded := padConstant(samples, FrameLength/2)
	win := hannWindow(FrameLength)
	fft := fourier.NewFFT(FrameLength)

	frames := numFrames(len(padded))
	spec := make([][]float64, frames)
	buf := make([]float64, FrameLength)
	coeffs := make([]complex128, FrameLength/2+1)

	for t := range frames {
		start := t * HopLength
		for i := range buf {
			buf[i] = padded[start+i] * win[i]
		}
		coeffs = fft.Coefficients(coeffs, buf)
		row := make([]float64, len(coeffs))
		for i, c := range coeffs {
			row[i] = cmplx.Abs(c)
		}
		spec[t] = row
	}
	return spec
}

// PowerSpectrogram computes the power spectrogram (squared magnitudes).
func PowerSpectrogram(samples []float64) [][]float64 {
	spec := Spectrogram(samples)
	for _, row := range spec {
		for i, v := range row {
			row[i] = v * v
		}
	}
	return spec
}

// binFrequency returns the center frequency in Hz of FFT bin i for the
// shared frame length.
func binFrequency(i, sampleRate int) float64 {
	return float64(i) * float64(sampleRate) / float64(FrameLength)
}
