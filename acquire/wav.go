package acquire

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// BufferSource replays decoded PCM audio one analysis frame at a time. It is
// the host-side stand-in for a hardware acquisition source: each Populate
// call delivers the next frame of normalized samples and advances the read
// position.
type BufferSource struct {
	samples    []int
	norm       float32
	channels   int
	offset     int
	sampleRate int
}

// NewBufferSource wraps an already decoded PCM buffer. Multi-channel audio is
// reduced to its first channel. bitDepth determines full-scale normalization;
// zero or negative values default to 16.
func NewBufferSource(buf *audio.IntBuffer, bitDepth int) (*BufferSource, error) {
	if buf == nil || len(buf.Data) == 0 {
		return nil, fmt.Errorf("acquire: empty PCM buffer")
	}

	if bitDepth <= 0 {
		bitDepth = 16
	}

	channels := 1
	sampleRate := 0
	if buf.Format != nil {
		if buf.Format.NumChannels > 1 {
			channels = buf.Format.NumChannels
		}
		sampleRate = buf.Format.SampleRate
	}

	return &BufferSource{
		samples:    buf.Data,
		norm:       1 / float32(int64(1)<<(bitDepth-1)),
		channels:   channels,
		sampleRate: sampleRate,
	}, nil
}

// NewWAVSource decodes the WAV file at path into memory and returns a source
// replaying it frame by frame.
func NewWAVSource(path string) (*BufferSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("acquire: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("acquire: not a valid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("acquire: decode %s: %w", path, err)
	}

	return NewBufferSource(buf, int(dec.BitDepth))
}

// SampleRate returns the source sample rate in Hz, or 0 when unknown.
func (s *BufferSource) SampleRate() int { return s.sampleRate }

// Remaining returns how many full frames of the given length are left.
func (s *BufferSource) Remaining(frameLen int) int {
	if frameLen <= 0 {
		return 0
	}

	return (len(s.samples) - s.offset) / (frameLen * s.channels)
}

// Populate fills dst with the next frame of normalized samples in [-1, 1).
// It returns io.EOF once the buffer is exhausted.
func (s *BufferSource) Populate(dst []float32) error {
	need := len(dst) * s.channels
	if s.offset+need > len(s.samples) {
		return io.EOF
	}

	if s.channels == 1 {
		CopyIntToFloat(dst, s.samples[s.offset:s.offset+need])
	} else {
		for i := range dst {
			dst[i] = float32(s.samples[s.offset+i*s.channels])
		}
	}

	for i := range dst {
		dst[i] *= s.norm
	}

	s.offset += need

	return nil
}

// Rewind restarts replay from the first sample.
func (s *BufferSource) Rewind() {
	s.offset = 0
}
