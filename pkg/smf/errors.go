// Package smf encodes and decodes the Standard MIDI File binary format:
// a 14-byte header chunk followed by one or more track chunks of
// delta-time-tagged events. All values are validated at construction
// time, so an invalid header, event, track or file is never observable.
package smf

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the class of a validation or stream failure.
type ErrorKind string

const (
	WrongFileFormat ErrorKind = "WRONG_FILE_FORMAT"
	WrongTrackCount ErrorKind = "WRONG_TRACK_COUNT"
	WrongDeltaTime  ErrorKind = "WRONG_DELTA_TIME"
	WrongChannel    ErrorKind = "WRONG_CHANNEL"
	WrongStatus     ErrorKind = "WRONG_STATUS"
	WrongDataLength ErrorKind = "WRONG_DATA_LENGTH"
	WrongDataValue  ErrorKind = "WRONG_DATA_VALUE"
	EmptyEventList  ErrorKind = "EMPTY_EVENT_LIST"
	EmptyHeader     ErrorKind = "EMPTY_HEADER"
	EmptyTrackList  ErrorKind = "EMPTY_TRACK_LIST"
	MalformedStream ErrorKind = "MALFORMED_STREAM"
)

// Error is a validation or decode error. It carries the offending value
// so callers can report what was rejected, not just why.
type Error struct {
	Kind    ErrorKind
	Message string
	Value   any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Value)
}

func newError(kind ErrorKind, message string, value any) *Error {
	return &Error{Kind: kind, Message: message, Value: value}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
