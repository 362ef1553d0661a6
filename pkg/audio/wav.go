package audio

import (
	"bytes"
	"fmt"

	"github.com/go-audio/wav"
)

// wavFormatPCM is the fmt-chunk audio format tag for uncompressed PCM.
const wavFormatPCM = 1

// decodeWAV decodes a RIFF/WAVE payload. Only integer PCM encodings are
// accepted; compressed or float WAV variants fail with a descriptive error.
func decodeWAV(data []byte) (*Clip, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("audio: decode wav: invalid or truncated RIFF/WAVE header")
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("audio: decode wav: unsupported encoding %d (only PCM is supported)", dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: decode wav: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 || buf.Format == nil {
		return nil, fmt.Errorf("audio: decode wav: %w", ErrEmptyAudio)
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = int(dec.BitDepth)
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = intSampleToFloat64(v, depth)
	}

	return &Clip{
		Samples:    MixToMono(samples, buf.Format.NumChannels),
		SampleRate: buf.Format.SampleRate,
	}, nil
}
