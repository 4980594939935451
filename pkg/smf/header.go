package smf

import "encoding/binary"

var headerMagic = []byte("MThd")

// headerChunkLen is the fixed data length of the MThd chunk.
const headerChunkLen = 6

// maxTracks caps the track count at one track per MIDI channel. The SMF
// standard allows more; this library does not.
const maxTracks = 15

// Header is the fixed 14-byte chunk that opens every SMF file:
// file format, track count and time resolution.
type Header struct {
	format  uint16
	ntracks uint16
	ppqn    uint16
}

// NewHeader validates and builds a header. format must be 0, 1 or 2,
// a format-0 file must declare exactly one track, and the track count
// must stay below one track per channel.
func NewHeader(format, ntracks, ppqn uint16) (*Header, error) {
	if format > 2 {
		return nil, newError(WrongFileFormat, "file format must be 0, 1 or 2", format)
	}
	if format == 0 && ntracks != 1 {
		return nil, newError(WrongTrackCount, "format 0 has exactly one track", ntracks)
	}
	if ntracks >= maxTracks {
		return nil, newError(WrongTrackCount, "too many tracks (one per channel)", ntracks)
	}
	return &Header{format: format, ntracks: ntracks, ppqn: ppqn}, nil
}

// Format returns the SMF file format: 0, 1 or 2.
func (h *Header) Format() uint16 { return h.format }

// NTracks returns the declared track count.
func (h *Header) NTracks() uint16 { return h.ntracks }

// TicksPerQuarterNote returns the time resolution.
func (h *Header) TicksPerQuarterNote() uint16 { return h.ppqn }

// Serialize returns the 14-byte MThd chunk.
func (h *Header) Serialize() []byte {
	buf := make([]byte, 0, 14)
	buf = append(buf, headerMagic...)
	buf = binary.BigEndian.AppendUint32(buf, headerChunkLen)
	buf = binary.BigEndian.AppendUint16(buf, h.format)
	buf = binary.BigEndian.AppendUint16(buf, h.ntracks)
	return binary.BigEndian.AppendUint16(buf, h.ppqn)
}
