package smf

import "encoding/binary"

var trackMagic = []byte("MTrk")

// Track is an ordered, non-empty sequence of events. The event byte
// stream, with or without running-status compression, is fixed at
// construction so the chunk length never has to be recomputed.
type Track struct {
	events        []Event
	runningStatus bool
	payload       []byte
}

// NewTrack validates and builds a track. With runningStatus enabled,
// consecutive channel-voice events sharing a wire status are written
// without repeating the status byte.
func NewTrack(events []Event, runningStatus bool) (*Track, error) {
	if len(events) == 0 {
		return nil, newError(EmptyEventList, "track needs at least one event", nil)
	}
	t := &Track{runningStatus: runningStatus}
	t.events = append(t.events, events...)
	if runningStatus {
		t.payload = serializeRunningStatus(t.events)
	} else {
		for _, e := range t.events {
			t.payload = append(t.payload, e.Serialize()...)
		}
	}
	return t, nil
}

// serializeRunningStatus writes the first event verbatim, then elides
// the status byte of every channel-voice event whose wire status equals
// that of the event immediately before it. The accumulator is updated
// after every event, so elision never reaches across an intervening
// SysEx or meta event.
func serializeRunningStatus(events []Event) []byte {
	buf := events[0].Serialize()
	current := events[0].Status()
	for _, e := range events[1:] {
		cv, ok := e.(*ChannelVoiceEvent)
		if ok && cv.Status() == current && current < 0xF0 {
			buf = append(buf, EncodeVarLen(cv.delta)...)
			buf = append(buf, cv.data...)
		} else {
			buf = append(buf, e.Serialize()...)
		}
		current = e.Status()
	}
	return buf
}

// Events returns a copy of the event list.
func (t *Track) Events() []Event { return append([]Event(nil), t.events...) }

// RunningStatus reports whether the track was built with running-status
// compression.
func (t *Track) RunningStatus() bool { return t.runningStatus }

// SerializedLength returns the byte length of the event stream, i.e.
// the value of the chunk length field.
func (t *Track) SerializedLength() uint32 { return uint32(len(t.payload)) }

// Serialize returns the full track chunk: "MTrk", the big-endian 32-bit
// length, then the event byte stream.
func (t *Track) Serialize() []byte {
	buf := make([]byte, 0, 8+len(t.payload))
	buf = append(buf, trackMagic...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(t.payload)))
	return append(buf, t.payload...)
}
