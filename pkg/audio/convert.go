package audio

import "encoding/binary"

// MixToMono averages interleaved multi-channel samples into a mono signal.
// For channels <= 1 the input is returned unchanged (zero allocation).
// Trailing samples of an incomplete final frame are dropped.
func MixToMono(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}
	frames := len(samples) / channels
	out := make([]float64, frames)
	for i := range frames {
		var sum float64
		for c := range channels {
			sum += samples[i*channels+c]
		}
		out[i] = sum / float64(channels)
	}
	return out
}

// Resample converts mono samples from srcRate to dstRate using linear
// interpolation. If srcRate == dstRate, or either rate is non-positive, the
// input is returned unchanged.
func Resample(samples []float64, srcRate, dstRate int) []float64 {
	if srcRate <= 0 || dstRate <= 0 {
		return samples
	}
	if srcRate == dstRate || len(samples) < 2 {
		return samples
	}
	dstSamples := int(int64(len(samples)) * int64(dstRate) / int64(srcRate))
	if dstSamples == 0 {
		return nil
	}

	out := make([]float64, dstSamples)
	ratio := float64(srcRate) / float64(dstRate)

	for i := range dstSamples {
		srcPos := float64(i) * ratio
		srcIdx := int(srcPos)
		frac := srcPos - float64(srcIdx)

		s0 := samples[srcIdx]
		s1 := s0
		if srcIdx+1 < len(samples) {
			s1 = samples[srcIdx+1]
		}

		out[i] = s0*(1-frac) + s1*frac
	}
	return out
}

// pcmBytesToFloat64 converts little-endian int16 PCM bytes to float64
// samples in [-1, 1). A trailing odd byte is ignored.
func pcmBytesToFloat64(pcm []byte) []float64 {
	n := len(pcm) / 2
	out := make([]float64, n)
	for i := range n {
		s := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		out[i] = float64(s) / 32768.0
	}
	return out
}

// intSampleToFloat64 scales an integer PCM sample at the given bit depth to
// [-1, 1]. 8-bit WAV PCM is unsigned (0..255), everything else is signed.
func intSampleToFloat64(v int, bitDepth int) float64 {
	if bitDepth == 8 {
		return (float64(v) - 128.0) / 128.0
	}
	if bitDepth <= 0 {
		bitDepth = 16
	}
	return float64(v) / float64(int64(1)<<(bitDepth-1))
}
