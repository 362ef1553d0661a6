// Package audio decodes compressed audio clips into normalized mono PCM.
//
// Supported containers: WAV (PCM), MP3, Ogg Vorbis, and FLAC. The container
// is detected from magic bytes, never from file names or content-type hints,
// since clips arrive as anonymous base64 payloads.
package audio

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when the payload does not start with a
// recognized container signature.
var ErrUnsupportedFormat = errors.New("unrecognized audio container (supported: WAV, MP3, OGG, FLAC)")

// ErrEmptyAudio is returned when a container decodes to zero samples.
var ErrEmptyAudio = errors.New("audio contains no samples")

type containerFormat int

const (
	formatUnknown containerFormat = iota
	formatWAV
	formatMP3
	formatOgg
	formatFLAC
)

// Decode sniffs the container format of data and decodes it into a mono
// Clip at the container's native sample rate.
func Decode(data []byte) (*Clip, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("audio: %w", ErrEmptyAudio)
	}
	switch sniffFormat(data) {
	case formatWAV:
		return decodeWAV(data)
	case formatMP3:
		return decodeMP3(data)
	case formatOgg:
		return decodeOgg(data)
	case formatFLAC:
		return decodeFLAC(data)
	default:
		return nil, fmt.Errorf("audio: %w", ErrUnsupportedFormat)
	}
}

// DecodeMono16k decodes data and resamples it to AnalysisSampleRate. This is
// the single entry point the feature extractor uses.
func DecodeMono16k(data []byte) ([]float64, error) {
	clip, err := Decode(data)
	if err != nil {
		return nil, err
	}
	out := Resample(clip.Samples, clip.SampleRate, AnalysisSampleRate)
	if len(out) == 0 {
		return nil, fmt.Errorf("audio: %w", ErrEmptyAudio)
	}
	return out, nil
}

// sniffFormat identifies the container from its leading magic bytes.
func sniffFormat(data []byte) containerFormat {
	if len(data) < 4 {
		return formatUnknown
	}
	switch {
	case string(data[:4]) == "RIFF" && len(data) >= 12 && string(data[8:12]) == "WAVE":
		return formatWAV
	case string(data[:4]) == "OggS":
		return formatOgg
	case string(data[:4]) == "fLaC":
		return formatFLAC
	case string(data[:3]) == "ID3":
		return formatMP3
	case data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// Raw MPEG audio frame sync (11 set bits).
		return formatMP3
	default:
		return formatUnknown
	}
}
