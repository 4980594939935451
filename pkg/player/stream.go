package player

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/sinshu/go-meltysynth/meltysynth"
)

// pcmStream implements io.Reader over a running sequencer. It renders
// stereo float32 samples on demand and converts them to interleaved
// 16-bit little-endian PCM, reporting io.EOF once the piece is over.
type pcmStream struct {
	seq      *meltysynth.MidiFileSequencer
	total    int64
	rendered int64
	mu       sync.Mutex
}

// Read implements io.Reader.
func (s *pcmStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rendered >= s.total {
		return 0, io.EOF
	}

	// 16-bit stereo: 4 bytes per sample frame
	samples := int64(len(p) / 4)
	if samples == 0 {
		return 0, nil
	}
	if remaining := s.total - s.rendered; samples > remaining {
		samples = remaining
	}

	left := make([]float32, samples)
	right := make([]float32, samples)
	s.seq.Render(left, right)
	s.rendered += samples

	for i := range left {
		l := int16(clamp(left[i], -1, 1) * 32767)
		r := int16(clamp(right[i], -1, 1) * 32767)
		binary.LittleEndian.PutUint16(p[i*4:], uint16(l))
		binary.LittleEndian.PutUint16(p[i*4+2:], uint16(r))
	}

	return int(samples) * 4, nil
}

// clamp restricts a value to the range [min, max].
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
