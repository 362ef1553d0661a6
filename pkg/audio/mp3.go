package audio

import (
	"bytes"
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3 decodes an MPEG audio payload. The decoder always emits
// little-endian int16 stereo at the stream's native rate, upmixing mono
// sources itself, so the output is unconditionally mixed back down.
func decodeMP3(data []byte) (*Clip, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode mp3: %w", err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audio: decode mp3: %w", err)
	}
	if len(pcm) < 4 {
		return nil, fmt.Errorf("audio: decode mp3: %w", ErrEmptyAudio)
	}

	return &Clip{
		Samples:    MixToMono(pcmBytesToFloat64(pcm), 2),
		SampleRate: dec.SampleRate(),
	}, nil
}
