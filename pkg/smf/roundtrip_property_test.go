package smf_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/SupremaLex/MIDI-lib/pkg/smf"
)

var statusFamilies = []uint8{
	smf.NoteOff, smf.NoteOn, smf.KeyPressure, smf.ControlChange,
	smf.ProgramChange, smf.ChannelPressure, smf.PitchWheel,
}

var metaTypes = []uint8{
	smf.MetaText, smf.MetaTrackName, smf.MetaLyric, smf.MetaMarker,
	smf.MetaTempo, smf.MetaTimeSignature, smf.MetaKeySignature,
}

// randomEvents builds a track body of random channel-voice, SysEx and
// meta events, terminated by End of Track.
func randomEvents(t *testing.T, rng *rand.Rand, n int) []smf.Event {
	t.Helper()
	events := make([]smf.Event, 0, n+1)
	for i := 0; i < n; i++ {
		delta := rng.Uint32() % (smf.MaxVarLen + 1)
		var event smf.Event
		var err error
		switch rng.Intn(4) {
		case 0:
			data := make([]byte, rng.Intn(8))
			rng.Read(data)
			status := smf.SysExStart
			if rng.Intn(2) == 0 {
				status = smf.SysExEscape
			}
			event, err = smf.NewSysExEvent(delta, status, data)
		case 1:
			data := make([]byte, rng.Intn(8))
			rng.Read(data)
			event, err = smf.NewMetaEvent(delta, metaTypes[rng.Intn(len(metaTypes))], data)
		default:
			base := statusFamilies[rng.Intn(len(statusFamilies))]
			var data []byte
			if base == smf.ProgramChange || base == smf.ChannelPressure {
				data = []byte{uint8(rng.Intn(128))}
			} else {
				data = []byte{uint8(rng.Intn(128)), uint8(rng.Intn(128))}
			}
			event, err = smf.NewChannelVoiceEvent(delta, base, uint8(rng.Intn(16)), data)
		}
		if err != nil {
			t.Fatalf("building random event: %v", err)
		}
		events = append(events, event)
	}
	eot, err := smf.EndOfTrack(uint32(rng.Intn(128)))
	if err != nil {
		t.Fatalf("building end of track: %v", err)
	}
	return append(events, eot)
}

// TestContainerRoundTripProperty checks that decoding a serialized file
// reproduces the header fields and the full event tuple list of every
// track, in both running-status and verbatim modes.
func TestContainerRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("decode inverts serialize", prop.ForAll(
		func(seed int64, ntracks int, eventsPerTrack int, runningStatus bool) bool {
			rng := rand.New(rand.NewSource(seed))

			tracks := make([]*smf.Track, 0, ntracks)
			for i := 0; i < ntracks; i++ {
				track, err := smf.NewTrack(randomEvents(t, rng, eventsPerTrack), runningStatus)
				if err != nil {
					t.Logf("NewTrack failed: %v", err)
					return false
				}
				tracks = append(tracks, track)
			}
			header, err := smf.NewHeader(1, uint16(ntracks), 480)
			if err != nil {
				t.Logf("NewHeader failed: %v", err)
				return false
			}
			file, err := smf.NewFile(header, tracks)
			if err != nil {
				t.Logf("NewFile failed: %v", err)
				return false
			}

			decoded, err := smf.DecodeBytes(file.Serialize())
			if err != nil {
				t.Logf("decode failed: %v", err)
				return false
			}

			if decoded.Header().Format() != 1 ||
				decoded.Header().NTracks() != uint16(ntracks) ||
				decoded.Header().TicksPerQuarterNote() != 480 {
				return false
			}
			decodedTracks := decoded.Tracks()
			if len(decodedTracks) != ntracks {
				return false
			}
			for i, track := range tracks {
				if !sameEventTuples(track.Events(), decodedTracks[i].Events()) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 5),
		gen.IntRange(0, 20),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func sameEventTuples(want, got []smf.Event) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i].DeltaTime() != got[i].DeltaTime() ||
			want[i].Status() != got[i].Status() ||
			!bytes.Equal(want[i].Serialize(), got[i].Serialize()) {
			return false
		}
	}
	return true
}
