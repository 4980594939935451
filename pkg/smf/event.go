package smf

// Event is anything that can sit on a track: a channel-voice message, a
// system-exclusive message, or a meta event. Every event knows its delta
// time, its wire status byte, its exact serialized form and a
// human-readable label for its type.
type Event interface {
	// DeltaTime returns the ticks elapsed since the previous event in
	// the same track.
	DeltaTime() uint32
	// Status returns the wire status byte.
	Status() uint8
	// Serialize returns the exact bytes of the event as written to a
	// track chunk, delta time included.
	Serialize() []byte
	// TypeLabel returns the human-readable name of the event type.
	TypeLabel() string
}

func validDeltaTime(delta uint32) error {
	if delta > MaxVarLen {
		return newError(WrongDeltaTime, "delta time exceeds the variable-length range", delta)
	}
	return nil
}

// ChannelVoiceEvent is a channel-scoped message such as Note on or
// Control change. The wire status is the family ORed with the channel.
type ChannelVoiceEvent struct {
	delta   uint32
	base    uint8
	channel uint8
	data    []byte
}

// NewChannelVoiceEvent validates and builds a channel-voice event.
// base must be one of the seven status families, channel must be 0-15,
// and data must have the length the family implies (one byte for
// Program change and Channel pressure, two otherwise) with every byte
// at most 127.
func NewChannelVoiceEvent(delta uint32, base, channel uint8, data []byte) (*ChannelVoiceEvent, error) {
	if err := validDeltaTime(delta); err != nil {
		return nil, err
	}
	if channel > 15 {
		return nil, newError(WrongChannel, "channel number must be 0-15", channel)
	}
	if _, ok := channelVoiceLabels[base]; !ok {
		return nil, newError(WrongStatus, "unknown channel-voice status", base)
	}
	if len(data) != payloadLen(base) {
		return nil, newError(WrongDataLength, "data not corresponding to event type", data)
	}
	for _, b := range data {
		if b > 127 {
			return nil, newError(WrongDataValue, "data byte must be 0-127", b)
		}
	}
	e := &ChannelVoiceEvent{delta: delta, base: base, channel: channel}
	e.data = append(e.data, data...)
	return e, nil
}

// DeltaTime implements Event.
func (e *ChannelVoiceEvent) DeltaTime() uint32 { return e.delta }

// Status returns the wire status byte: family ORed with channel.
func (e *ChannelVoiceEvent) Status() uint8 { return e.base | e.channel }

// BaseStatus returns the status family without the channel bits.
func (e *ChannelVoiceEvent) BaseStatus() uint8 { return e.base }

// Channel returns the channel number, 0-15.
func (e *ChannelVoiceEvent) Channel() uint8 { return e.channel }

// Data returns a copy of the data bytes.
func (e *ChannelVoiceEvent) Data() []byte { return append([]byte(nil), e.data...) }

// Serialize implements Event.
func (e *ChannelVoiceEvent) Serialize() []byte {
	buf := EncodeVarLen(e.delta)
	buf = append(buf, e.Status())
	return append(buf, e.data...)
}

// TypeLabel implements Event.
func (e *ChannelVoiceEvent) TypeLabel() string { return channelVoiceLabels[e.base] }

// SysExEvent is a system-exclusive message: status 0xF0 for a complete
// message or 0xF7 for an escape sequence, followed by a length-prefixed
// payload of arbitrary bytes.
type SysExEvent struct {
	delta  uint32
	status uint8
	data   []byte
}

// NewSysExEvent validates and builds a system-exclusive event.
func NewSysExEvent(delta uint32, status uint8, data []byte) (*SysExEvent, error) {
	if err := validDeltaTime(delta); err != nil {
		return nil, err
	}
	if _, ok := sysExLabels[status]; !ok {
		return nil, newError(WrongStatus, "SysEx status must be 0xF0 or 0xF7", status)
	}
	if len(data) > MaxVarLen {
		return nil, newError(WrongDataLength, "SysEx payload exceeds the variable-length range", len(data))
	}
	e := &SysExEvent{delta: delta, status: status}
	e.data = append(e.data, data...)
	return e, nil
}

// DeltaTime implements Event.
func (e *SysExEvent) DeltaTime() uint32 { return e.delta }

// Status implements Event.
func (e *SysExEvent) Status() uint8 { return e.status }

// Data returns a copy of the payload bytes.
func (e *SysExEvent) Data() []byte { return append([]byte(nil), e.data...) }

// Serialize implements Event.
func (e *SysExEvent) Serialize() []byte {
	buf := EncodeVarLen(e.delta)
	buf = append(buf, e.status)
	buf = append(buf, EncodeVarLen(uint32(len(e.data)))...)
	return append(buf, e.data...)
}

// TypeLabel implements Event.
func (e *SysExEvent) TypeLabel() string { return sysExLabels[e.status] }

// MetaEvent is an SMF-only event carrying non-sound metadata. The wire
// status is always 0xFF, followed by the event type byte and a
// length-prefixed payload.
type MetaEvent struct {
	delta     uint32
	eventType uint8
	data      []byte
}

// NewMetaEvent validates and builds a meta event. eventType must be one
// of the recognized meta types.
func NewMetaEvent(delta uint32, eventType uint8, data []byte) (*MetaEvent, error) {
	if err := validDeltaTime(delta); err != nil {
		return nil, err
	}
	if _, ok := metaLabels[eventType]; !ok {
		return nil, newError(WrongStatus, "unknown meta event type", eventType)
	}
	if len(data) > MaxVarLen {
		return nil, newError(WrongDataLength, "meta payload exceeds the variable-length range", len(data))
	}
	e := &MetaEvent{delta: delta, eventType: eventType}
	e.data = append(e.data, data...)
	return e, nil
}

// EndOfTrack builds the track-termination sentinel: a meta event of type
// 0x2F with an empty payload.
func EndOfTrack(delta uint32) (*MetaEvent, error) {
	return NewMetaEvent(delta, MetaEndOfTrack, nil)
}

// DeltaTime implements Event.
func (e *MetaEvent) DeltaTime() uint32 { return e.delta }

// Status implements Event. Meta events always report 0xFF.
func (e *MetaEvent) Status() uint8 { return MetaStatus }

// EventType returns the meta type byte.
func (e *MetaEvent) EventType() uint8 { return e.eventType }

// Data returns a copy of the payload bytes.
func (e *MetaEvent) Data() []byte { return append([]byte(nil), e.data...) }

// IsEndOfTrack reports whether this is the End of Track sentinel.
func (e *MetaEvent) IsEndOfTrack() bool { return e.eventType == MetaEndOfTrack }

// Serialize implements Event.
func (e *MetaEvent) Serialize() []byte {
	buf := EncodeVarLen(e.delta)
	buf = append(buf, MetaStatus, e.eventType)
	buf = append(buf, EncodeVarLen(uint32(len(e.data)))...)
	return append(buf, e.data...)
}

// TypeLabel implements Event.
func (e *MetaEvent) TypeLabel() string { return metaLabels[e.eventType] }
