package dsp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Spectral contrast parameters: six octave sub-bands starting at 200 Hz,
// peak/valley taken as the mean of the top/bottom 2% of bins per band.
const (
	contrastFMin     = 200.0
	contrastBands    = 6
	contrastQuantile = 0.02
)

// SpectralCentroid returns the magnitude-weighted mean frequency per frame.
// Frames with no energy yield 0 rather than NaN.
func SpectralCentroid(spec [][]float64, sampleRate int) []float64 {
	out := make([]float64, len(spec))
	for t, frame := range spec {
		total := floats.Sum(frame)
		if total <= 0 {
			continue
		}
		var weighted float64
		for i, v := range frame {
			weighted += binFrequency(i, sampleRate) * v
		}
		out[t] = weighted / total
	}
	return out
}

// SpectralRolloff returns, per frame, the lowest frequency below which
// rollPercent of the frame's total magnitude is contained.
func SpectralRolloff(spec [][]float64, sampleRate int, rollPercent float64) []float64 {
	out := make([]float64, len(spec))
	for t, frame := range spec {
		threshold := rollPercent * floats.Sum(frame)
		var cum float64
		for i, v := range frame {
			cum += v
			if cum >= threshold {
				out[t] = binFrequency(i, sampleRate)
				break
			}
		}
	}
	return out
}

// SpectralContrast returns per-frame peak-to-valley contrast in dB for
// contrastBands+1 octave sub-bands. Row t holds the contrast of frame t
// across all bands.
func SpectralContrast(spec [][]float64, sampleRate int) [][]float64 {
	if len(spec) == 0 {
		return nil
	}
	nBins := len(spec[0])

	// Band edges: 0, 200, 400, ... doubling per band. The final band runs
	// to whatever the spectrum covers.
	edges := make([]float64, contrastBands+2)
	for i := 1; i < len(edges); i++ {
		edges[i] = contrastFMin * math.Pow(2, float64(i-1))
	}

	// Resolve each band to a bin range once; bands share their boundary bin
	// with the next band, which is dropped from all but the last.
	type binRange struct{ lo, hi int } // inclusive
	ranges := make([]binRange, contrastBands+1)
	for k := range ranges {
		lo, hi := -1, -1
		for i := range nBins {
			f := binFrequency(i, sampleRate)
			if f >= edges[k] && f <= edges[k+1] {
				if lo == -1 {
					lo = i
				}
				hi = i
			}
		}
		if lo == -1 {
			// Degenerate band (possible only at very low sample rates).
			lo, hi = 0, 0
		}
		if k > 0 && lo > 0 {
			lo--
		}
		if k == contrastBands {
			hi = nBins - 1
		} else if hi > lo {
			hi--
		}
		ranges[k] = binRange{lo, hi}
	}

	out := make([][]float64, len(spec))
	var scratch []float64
	for t, frame := range spec {
		row := make([]float64, contrastBands+1)
		for k, r := range ranges {
			scratch = append(scratch[:0], frame[r.lo:r.hi+1]...)
			sort.Float64s(scratch)
			n := max(1, int(math.Round(contrastQuantile*float64(len(scratch)))))
			var valley, peak float64
			for i := range n {
				valley += scratch[i]
				peak += scratch[len(scratch)-1-i]
			}
			valley /= float64(n)
			peak /= float64(n)
			row[k] = 10*math.Log10(math.Max(peak, logPowerFloor)) -
				10*math.Log10(math.Max(valley, logPowerFloor))
		}
		out[t] = row
	}
	return out
}
