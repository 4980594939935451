// Package notes maps note names such as "C4" or "A#3" to MIDI key
// numbers and back. Names follow a zero-based octave scheme: key 0 is
// "C0", key 127 is "G10".
package notes

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownNote is returned when a name does not map to a MIDI key.
var ErrUnknownNote = errors.New("unknown note name")

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// keyByName covers all 128 MIDI keys, built once.
var keyByName = func() map[string]uint8 {
	table := make(map[string]uint8, 128)
	for i := 0; i < 128; i++ {
		table[Name(uint8(i))] = uint8(i)
	}
	return table
}()

// Key returns the MIDI key number for a note name.
func Key(name string) (uint8, error) {
	key, ok := keyByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNote, name)
	}
	return key, nil
}

// Name returns the note name for a MIDI key number. Keys above 127 do
// not exist; their names are not in the lookup table.
func Name(key uint8) string {
	return names[key%12] + strconv.Itoa(int(key/12))
}
