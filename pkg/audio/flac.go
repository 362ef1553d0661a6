package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// decodeFLAC decodes a FLAC payload frame by frame, downmixing channels as
// it goes so a long clip never holds both interleaved and mono copies.
func decodeFLAC(data []byte) (*Clip, error) {
	stream, err := flac.New(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode flac: %w", err)
	}

	info := stream.Info
	if info == nil || info.SampleRate == 0 {
		return nil, fmt.Errorf("audio: decode flac: missing stream info")
	}
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	var mono []float64
	if info.NSamples > 0 {
		mono = make([]float64, 0, info.NSamples)
	}
	for {
		fr, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("audio: decode flac: %w", err)
		}
		if len(fr.Subframes) == 0 {
			continue
		}
		n := len(fr.Subframes[0].Samples)
		channels := float64(len(fr.Subframes))
		for i := range n {
			var sum float64
			for _, sub := range fr.Subframes {
				sum += float64(sub.Samples[i])
			}
			mono = append(mono, sum/channels/scale)
		}
	}
	if len(mono) == 0 {
		return nil, fmt.Errorf("audio: decode flac: %w", ErrEmptyAudio)
	}

	return &Clip{
		Samples:    mono,
		SampleRate: int(info.SampleRate),
	}, nil
}
