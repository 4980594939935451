package smf

// Channel-voice status families. The wire status of a channel-voice
// event is the family ORed with the channel number.
const (
	NoteOff         uint8 = 0x80
	NoteOn          uint8 = 0x90
	KeyPressure     uint8 = 0xA0
	ControlChange   uint8 = 0xB0
	ProgramChange   uint8 = 0xC0
	ChannelPressure uint8 = 0xD0
	PitchWheel      uint8 = 0xE0
)

// System-exclusive and meta status bytes.
const (
	SysExStart  uint8 = 0xF0
	SysExEscape uint8 = 0xF7
	MetaStatus  uint8 = 0xFF
)

// Meta event types.
const (
	MetaSequenceNumber    uint8 = 0x00
	MetaText              uint8 = 0x01
	MetaCopyright         uint8 = 0x02
	MetaTrackName         uint8 = 0x03
	MetaInstrumentName    uint8 = 0x04
	MetaLyric             uint8 = 0x05
	MetaMarker            uint8 = 0x06
	MetaCuePoint          uint8 = 0x07
	MetaProgramName       uint8 = 0x08
	MetaDeviceName        uint8 = 0x09
	MetaChannelPrefix     uint8 = 0x20
	MetaPort              uint8 = 0x21
	MetaEndOfTrack        uint8 = 0x2F
	MetaTempo             uint8 = 0x51
	MetaSMPTEOffset       uint8 = 0x54
	MetaTimeSignature     uint8 = 0x58
	MetaKeySignature      uint8 = 0x59
	MetaSequencerSpecific uint8 = 0x7F
)

// Static label tables, built once. Lookup doubles as the membership
// check in the event constructors.
var channelVoiceLabels = map[uint8]string{
	NoteOff:         "Note off",
	NoteOn:          "Note on",
	KeyPressure:     "Key pressure",
	ControlChange:   "Control change",
	ProgramChange:   "Program change",
	ChannelPressure: "Channel pressure",
	PitchWheel:      "Pitch wheel change",
}

var sysExLabels = map[uint8]string{
	SysExStart:  "Single (complete) SysEx message",
	SysExEscape: "Escape sequence",
}

var metaLabels = map[uint8]string{
	MetaSequenceNumber:    "Sequence Number",
	MetaText:              "Text",
	MetaCopyright:         "Copyright",
	MetaTrackName:         "Sequence / Track Name",
	MetaInstrumentName:    "Instrument Name",
	MetaLyric:             "Lyric",
	MetaMarker:            "Marker",
	MetaCuePoint:          "Cue Point",
	MetaProgramName:       "Program Name",
	MetaDeviceName:        "Device Name",
	MetaChannelPrefix:     "MIDI Channel Prefix",
	MetaPort:              "MIDI Port",
	MetaEndOfTrack:        "End of Track",
	MetaTempo:             "Tempo",
	MetaSMPTEOffset:       "SMPTE Offset",
	MetaTimeSignature:     "Time Signature",
	MetaKeySignature:      "Key Signature",
	MetaSequencerSpecific: "Sequencer Specific Event",
}

// payloadLen returns the data-byte count implied by a channel-voice
// status family: one byte for Program change and Channel pressure, two
// for everything else.
func payloadLen(base uint8) int {
	if base == ProgramChange || base == ChannelPressure {
		return 1
	}
	return 2
}
