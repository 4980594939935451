// Package player builds playable Standard MIDI Files from note names
// and renders them through a software synthesizer.
package player

import (
	"fmt"
	"os"
	"strings"

	"github.com/SupremaLex/MIDI-lib/pkg/notes"
	"github.com/SupremaLex/MIDI-lib/pkg/smf"
)

// noteGate is the delta time between a chord's note-ons and its
// note-offs, in ticks.
const noteGate = 127

// Sequence is an ordered list of chords to be played one after the
// other. Each chord is a set of MIDI keys struck together.
type Sequence struct {
	chords        [][]uint8
	ppqn          uint16
	runningStatus bool
}

// NewSequence parses chord strings into a sequence. Each string is one
// chord: note names separated by commas, e.g. "C4,E4,G4".
func NewSequence(chords []string, ppqn uint16, runningStatus bool) (*Sequence, error) {
	s := &Sequence{ppqn: ppqn, runningStatus: runningStatus}
	for _, chord := range chords {
		var keys []uint8
		for _, name := range strings.Split(chord, ",") {
			key, err := notes.Key(strings.TrimSpace(name))
			if err != nil {
				return nil, fmt.Errorf("chord %q: %w", chord, err)
			}
			keys = append(keys, key)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("chord %q: no notes", chord)
		}
		s.chords = append(s.chords, keys)
	}
	if len(s.chords) == 0 {
		return nil, fmt.Errorf("sequence has no chords")
	}
	return s, nil
}

// File builds the sequence into a single-track format-0 SMF file. Every
// note is struck at velocity 127 on channel 0 and released after a
// fixed gate time; note-offs are Note on events with velocity 0, which
// keeps the whole track on one running status.
func (s *Sequence) File() (*smf.File, error) {
	keySig, err := smf.NewMetaEvent(0, smf.MetaKeySignature, []byte{0, 0})
	if err != nil {
		return nil, err
	}
	events := []smf.Event{keySig}

	for _, chord := range s.chords {
		for _, key := range chord {
			on, err := smf.NewChannelVoiceEvent(0, smf.NoteOn, 0, []byte{key, 127})
			if err != nil {
				return nil, err
			}
			events = append(events, on)
		}
		delta := uint32(noteGate)
		for _, key := range chord {
			off, err := smf.NewChannelVoiceEvent(delta, smf.NoteOn, 0, []byte{key, 0})
			if err != nil {
				return nil, err
			}
			events = append(events, off)
			delta = 0
		}
	}

	eot, err := smf.EndOfTrack(0)
	if err != nil {
		return nil, err
	}
	events = append(events, eot)

	track, err := smf.NewTrack(events, s.runningStatus)
	if err != nil {
		return nil, err
	}
	header, err := smf.NewHeader(0, 1, s.ppqn)
	if err != nil {
		return nil, err
	}
	return smf.NewFile(header, []*smf.Track{track})
}

// WriteFile serializes the sequence and writes it to path.
func (s *Sequence) WriteFile(path string) error {
	f, err := s.File()
	if err != nil {
		return err
	}
	return os.WriteFile(path, f.Serialize(), 0o644)
}
