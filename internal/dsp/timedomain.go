package dsp

import "math"

// zcrThreshold treats near-zero samples as exactly zero when counting sign
// changes, so quantization noise around silence does not register as
// crossings.
const zcrThreshold = 1e-10

// ZeroCrossingRate returns the fraction of sign changes per frame. Frames
// are centered with edge-replicated padding; zero samples count as
// positive, so digital silence has rate 0.
func ZeroCrossingRate(samples []float64) []float64 {
	padded := padEdge(samples, FrameLength/2)
	frames := numFrames(len(padded))
	out := make([]float64, frames)
	for t := range frames {
		start := t * HopLength
		var crossings int
		prev := signPositive(padded[start])
		for i := 1; i < FrameLength; i++ {
			cur := signPositive(padded[start+i])
			if cur != prev {
				crossings++
			}
			prev = cur
		}
		out[t] = float64(crossings) / float64(FrameLength-1)
	}
	return out
}

func signPositive(v float64) bool {
	if math.Abs(v) <= zcrThreshold {
		return true
	}
	return v > 0
}

// RMSEnergy returns the root-mean-square amplitude per frame. Frames are
// centered with zero padding.
func RMSEnergy(samples []float64) []float64 {
	padded := padConstant(samples, FrameLength/2)
	frames := numFrames(len(padded))
	out := make([]float64, frames)
	for t := range frames {
		start := t * HopLength
		var sum float64
		for i := range FrameLength {
			v := padded[start+i]
			sum += v * v
		}
		out[t] = math.Sqrt(sum / FrameLength)
	}
	return out
}
