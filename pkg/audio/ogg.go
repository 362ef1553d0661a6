package audio

import (
	"bytes"
	"fmt"

	"github.com/jfreymuth/oggvorbis"
)

// decodeOgg decodes an Ogg Vorbis payload. Ogg streams carrying other codecs
// (Opus, Theora) are rejected by the Vorbis header check.
func decodeOgg(data []byte) (*Clip, error) {
	raw, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode ogg: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("audio: decode ogg: %w", ErrEmptyAudio)
	}

	samples := make([]float64, len(raw))
	for i, s := range raw {
		samples[i] = float64(s)
	}

	return &Clip{
		Samples:    MixToMono(samples, format.Channels),
		SampleRate: format.SampleRate,
	}, nil
}
