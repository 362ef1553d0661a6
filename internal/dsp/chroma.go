package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Chroma analysis constants. Pitch classes are referenced to A440 with a
// fixed tuning; the Gaussian octave weighting is centered five octaves up
// with a two-octave width, matching the usual chroma filterbank shape.
const (
	chromaBins        = 12
	chromaRefHz       = 440.0 / 16.0 // A440 folded down four octaves
	chromaCenterOct   = 5.0
	chromaOctaveWidth = 2.0
)

// ChromaFilterbank maps FFT bins onto the twelve pitch classes with
// Gaussian bumps around each class center, L2-normalized per FFT bin and
// octave-weighted. Rows are pitch classes (C first), columns FFT bins.
func ChromaFilterbank(sampleRate int) [][]float64 {
	nBins := FrameLength/2 + 1

	// Fractional pitch-class position of every FFT bin. Bin 0 (DC) has no
	// pitch; it gets a synthetic position 1.5 octaves below bin 1.
	positions := make([]float64, nBins)
	for i := 1; i < nBins; i++ {
		positions[i] = chromaBins * math.Log2(binFrequency(i, sampleRate)/chromaRefHz)
	}
	positions[0] = positions[1] - 1.5*chromaBins

	// Per-bin Gaussian width: the distance to the next bin's position, at
	// least one pitch class.
	widths := make([]float64, nBins)
	for i := range nBins {
		if i+1 < nBins {
			widths[i] = math.Max(positions[i+1]-positions[i], 1.0)
		} else {
			widths[i] = 1.0
		}
	}

	fb := make([][]float64, chromaBins)
	for c := range fb {
		fb[c] = make([]float64, nBins)
	}
	for i := range nBins {
		var norm float64
		col := make([]float64, chromaBins)
		for c := range chromaBins {
			// Distance from this bin's pitch position to class c, folded to
			// the nearest half-octave.
			d := math.Mod(positions[i]-float64(c)+chromaBins/2+10*chromaBins, chromaBins) - chromaBins/2
			w := math.Exp(-0.5 * math.Pow(2*d/widths[i], 2))
			col[c] = w
			norm += w * w
		}
		norm = math.Sqrt(norm)
		octWeight := math.Exp(-0.5 * math.Pow((positions[i]/chromaBins-chromaCenterOct)/chromaOctaveWidth, 2))
		for c := range chromaBins {
			// Rotate so row 0 is pitch class C rather than A.
			fb[(c+chromaBins-3)%chromaBins][i] = col[c] / norm * octWeight
		}
	}
	return fb
}

// Chroma computes the pitch-class energy distribution per frame from the
// power spectrogram, max-normalized per frame so values lie in [0, 1].
// Silent frames stay all-zero.
func Chroma(powerSpec [][]float64, sampleRate int) [][]float64 {
	fb := ChromaFilterbank(sampleRate)

	out := make([][]float64, len(powerSpec))
	for t, frame := range powerSpec {
		row := make([]float64, chromaBins)
		for c := range chromaBins {
			row[c] = floats.Dot(fb[c], frame)
		}
		if m := floats.Max(row); m > 0 {
			floats.Scale(1/m, row)
		}
		out[t] = row
	}
	return out
}
