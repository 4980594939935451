package smf

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// textMetaTypes marks the meta events whose payload is text. SMF
// declares no encoding for them; Japanese karaoke files in particular
// carry Shift-JIS.
var textMetaTypes = map[uint8]bool{
	MetaText:           true,
	MetaCopyright:      true,
	MetaTrackName:      true,
	MetaInstrumentName: true,
	MetaLyric:          true,
	MetaMarker:         true,
	MetaCuePoint:       true,
	MetaProgramName:    true,
	MetaDeviceName:     true,
}

// IsText reports whether the meta event carries a text payload.
func (e *MetaEvent) IsText() bool { return textMetaTypes[e.eventType] }

// Text returns the payload of a text-class meta event as a UTF-8
// string. A payload that is not valid UTF-8 is reinterpreted as
// Shift-JIS; if that fails too, the raw bytes are returned as-is.
// Calling Text on a non-text meta event is a WrongStatus error.
func (e *MetaEvent) Text() (string, error) {
	if !e.IsText() {
		return "", newError(WrongStatus, "meta event carries no text", e.eventType)
	}
	if utf8.Valid(e.data) {
		return string(e.data), nil
	}
	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(e.data)
	if err != nil {
		return string(e.data), nil
	}
	return string(decoded), nil
}
