package dsp

import "gonum.org/v1/gonum/floats"

// tempogramWindow is the autocorrelation window in onset frames (~12 s of
// envelope at the shared hop size).
const tempogramWindow = 384

// OnsetStrength computes the spectral-flux onset envelope: per frame, the
// mean positive difference of the log-power mel spectrum against the
// previous frame. The first frame has no predecessor and is 0.
func OnsetStrength(samples []float64, sampleRate int) []float64 {
	logMel := LogMelSpectrogram(samples, sampleRate, defaultMelBands)
	env := make([]float64, len(logMel))
	for t := 1; t < len(logMel); t++ {
		var sum float64
		for m, v := range logMel[t] {
			if d := v - logMel[t-1][m]; d > 0 {
				sum += d
			}
		}
		env[t] = sum / float64(defaultMelBands)
	}
	return env
}

// Tempogram computes the local autocorrelation of the onset envelope: one
// row per envelope position (hop 1 over a linear-ramp-padded envelope),
// tempogramWindow lags per row, max-normalized per row so lag 0 is 1 for
// any frame with energy. Silent frames stay all-zero.
func Tempogram(samples []float64, sampleRate int) [][]float64 {
	env := OnsetStrength(samples, sampleRate)
	padded := padLinearRamp(env, tempogramWindow/2)
	win := hannWindow(tempogramWindow)

	frames := len(padded) - tempogramWindow + 1
	if frames <= 0 {
		return nil
	}
	out := make([][]float64, frames)
	windowed := make([]float64, tempogramWindow)
	for t := range frames {
		for i := range windowed {
			windowed[i] = padded[t+i] * win[i]
		}
		row := make([]float64, tempogramWindow)
		for lag := range tempogramWindow {
			var sum float64
			for i := 0; i+lag < tempogramWindow; i++ {
				sum += windowed[i] * windowed[i+lag]
			}
			row[lag] = sum
		}
		if m := floats.Max(row); m > 0 {
			floats.Scale(1/m, row)
		}
		out[t] = row
	}
	return out
}

// padLinearRamp pads x on both sides with pad samples ramping linearly
// between zero and the boundary value.
func padLinearRamp(x []float64, pad int) []float64 {
	out := make([]float64, len(x)+2*pad)
	if len(x) == 0 {
		return out
	}
	for i := range pad {
		out[i] = x[0] * float64(i) / float64(pad)
		out[len(out)-1-i] = x[len(x)-1] * float64(i) / float64(pad)
	}
	copy(out[pad:], x)
	return out
}
