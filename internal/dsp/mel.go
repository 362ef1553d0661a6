package dsp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Log-compression floor and dynamic-range clamp for log-power spectra.
const (
	logPowerFloor   = 1e-10
	logPowerTopDB   = 80.0
	defaultMelBands = 128
)

// Slaney mel scale: linear below 1 kHz, logarithmic above.
const (
	melLinearStep = 200.0 / 3.0
	melLogMin     = 1000.0
	melLogMinMel  = melLogMin / melLinearStep
)

var melLogStep = math.Log(6.4) / 27.0

func hzToMel(hz float64) float64 {
	if hz < melLogMin {
		return hz / melLinearStep
	}
	return melLogMinMel + math.Log(hz/melLogMin)/melLogStep
}

func melToHz(mel float64) float64 {
	if mel < melLogMinMel {
		return mel * melLinearStep
	}
	return melLogMin * math.Exp(melLogStep*(mel-melLogMinMel))
}

// MelFilterbank builds nMels triangular filters spanning 0 Hz to Nyquist on
// the Slaney mel scale, area-normalized (each triangle scaled by 2 divided
// by its bandwidth). Rows are filters, columns are FFT bins.
func MelFilterbank(sampleRate, nMels int) [][]float64 {
	nBins := FrameLength/2 + 1
	fMax := float64(sampleRate) / 2

	// nMels+2 band edge frequencies, evenly spaced in mel.
	edges := make([]float64, nMels+2)
	melMax := hzToMel(fMax)
	for i := range edges {
		edges[i] = melToHz(melMax * float64(i) / float64(nMels+1))
	}

	fb := make([][]float64, nMels)
	for m := range nMels {
		row := make([]float64, nBins)
		lower, center, upper := edges[m], edges[m+1], edges[m+2]
		enorm := 2.0 / (upper - lower)
		for i := range nBins {
			f := binFrequency(i, sampleRate)
			var w float64
			switch {
			case f <= lower || f >= upper:
				w = 0
			case f <= center:
				w = (f - lower) / (center - lower)
			default:
				w = (upper - f) / (upper - center)
			}
			row[i] = w * enorm
		}
		fb[m] = row
	}
	return fb
}

// MelSpectrogram computes the mel-scale power spectrogram: one row per
// frame, nMels bins per row.
func MelSpectrogram(samples []float64, sampleRate, nMels int) [][]float64 {
	power := PowerSpectrogram(samples)
	fb := MelFilterbank(sampleRate, nMels)

	mel := make([][]float64, len(power))
	for t, frame := range power {
		row := make([]float64, nMels)
		for m := range nMels {
			row[m] = floats.Dot(fb[m], frame)
		}
		mel[t] = row
	}
	return mel
}

// PowerToDB converts a power matrix to decibels in place:
// 10*log10(max(p, floor)), then clamped to 80 dB below the matrix maximum.
func PowerToDB(power [][]float64) [][]float64 {
	maxDB := math.Inf(-1)
	for _, row := range power {
		for i, v := range row {
			db := 10 * math.Log10(math.Max(v, logPowerFloor))
			row[i] = db
			if db > maxDB {
				maxDB = db
			}
		}
	}
	floorDB := maxDB - logPowerTopDB
	for _, row := range power {
		for i, v := range row {
			if v < floorDB {
				row[i] = floorDB
			}
		}
	}
	return power
}

// LogMelSpectrogram is the dB-scaled mel power spectrogram.
func LogMelSpectrogram(samples []float64, sampleRate, nMels int) [][]float64 {
	return PowerToDB(MelSpectrogram(samples, sampleRate, nMels))
}
