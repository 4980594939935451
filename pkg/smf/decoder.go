package smf

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

// Decode reads one complete Standard MIDI File from r and reconstructs
// it as a File. Decoding is all-or-nothing: any structural or
// validation failure aborts the whole operation and no partial result
// is returned. If r is also an io.Closer it is closed before Decode
// returns, on success and on every failure path alike.
func Decode(r io.Reader) (f *File, err error) {
	if c, ok := r.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); cerr != nil && err == nil {
				f = nil
				err = newError(MalformedStream, "closing input", cerr)
			}
		}()
	}
	d := &decoder{r: bufio.NewReader(r)}
	return d.decodeFile()
}

// DecodeBytes decodes an in-memory SMF byte stream.
func DecodeBytes(data []byte) (*File, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens and decodes the SMF file at path. The file handle is
// released by Decode.
func DecodeFile(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return Decode(fp)
}

// decoder is the sequential decode state machine. prev remembers the
// last decoded event of the current track for running-status
// reconstruction.
type decoder struct {
	r    *bufio.Reader
	prev Event
}

func (d *decoder) decodeFile() (*File, error) {
	header, err := d.decodeHeader()
	if err != nil {
		return nil, err
	}
	tracks := make([]*Track, 0, header.NTracks())
	for i := uint16(0); i < header.NTracks(); i++ {
		track, err := d.decodeTrack()
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return NewFile(header, tracks)
}

func (d *decoder) decodeHeader() (*Header, error) {
	var prologue [8]byte
	if _, err := io.ReadFull(d.r, prologue[:]); err != nil {
		return nil, newError(MalformedStream, "header chunk truncated", err)
	}
	if !bytes.Equal(prologue[:4], headerMagic) {
		return nil, newError(MalformedStream, "missing MThd magic", prologue[:4])
	}
	var body [6]byte
	if _, err := io.ReadFull(d.r, body[:]); err != nil {
		return nil, newError(MalformedStream, "header chunk truncated", err)
	}
	format := binary.BigEndian.Uint16(body[0:2])
	ntracks := binary.BigEndian.Uint16(body[2:4])
	ppqn := binary.BigEndian.Uint16(body[4:6])
	return NewHeader(format, ntracks, ppqn)
}

func (d *decoder) decodeTrack() (*Track, error) {
	var prologue [8]byte
	if _, err := io.ReadFull(d.r, prologue[:]); err != nil {
		return nil, newError(MalformedStream, "track chunk truncated", err)
	}
	if !bytes.Equal(prologue[:4], trackMagic) {
		return nil, newError(MalformedStream, "missing MTrk magic", prologue[:4])
	}
	// running status never spans a chunk boundary
	d.prev = nil
	var events []Event
	for {
		event, err := d.decodeEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
		d.prev = event
		if meta, ok := event.(*MetaEvent); ok && meta.IsEndOfTrack() {
			break
		}
	}
	return NewTrack(events, true)
}

// decodeEvent reads one event: the delta time, then a candidate status
// byte. A candidate with the high bit clear after a channel-voice event
// is really the first data byte of a running-status event; it is pushed
// back and the previous wire status is reused.
func (d *decoder) decodeEvent() (Event, error) {
	delta, err := ReadVarLen(d.r)
	if err != nil {
		return nil, err
	}
	status, err := d.r.ReadByte()
	if err != nil {
		return nil, newError(MalformedStream, "status byte truncated", err)
	}
	if prev, ok := d.prev.(*ChannelVoiceEvent); ok && status < 0x80 {
		if err := d.r.UnreadByte(); err != nil {
			return nil, newError(MalformedStream, "pushback failed", err)
		}
		data, err := d.readData(payloadLen(prev.BaseStatus()))
		if err != nil {
			return nil, err
		}
		return NewChannelVoiceEvent(delta, prev.BaseStatus(), prev.Channel(), data)
	}
	switch status {
	case MetaStatus:
		eventType, err := d.r.ReadByte()
		if err != nil {
			return nil, newError(MalformedStream, "meta event type truncated", err)
		}
		data, err := d.readPrefixedData()
		if err != nil {
			return nil, err
		}
		return NewMetaEvent(delta, eventType, data)
	case SysExStart, SysExEscape:
		data, err := d.readPrefixedData()
		if err != nil {
			return nil, err
		}
		return NewSysExEvent(delta, status, data)
	default:
		channel := status & 0x0F
		base := status &^ 0x0F
		data, err := d.readData(payloadLen(base))
		if err != nil {
			return nil, err
		}
		return NewChannelVoiceEvent(delta, base, channel, data)
	}
}

func (d *decoder) readData(n int) ([]byte, error) {
	data := make([]byte, n)
	if _, err := io.ReadFull(d.r, data); err != nil {
		return nil, newError(MalformedStream, "event data truncated", err)
	}
	return data, nil
}

func (d *decoder) readPrefixedData() ([]byte, error) {
	length, err := ReadVarLen(d.r)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	return d.readData(int(length))
}
