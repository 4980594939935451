package smf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SupremaLex/MIDI-lib/pkg/smf"
)

func mustChannelVoice(t *testing.T, delta uint32, base, channel uint8, data []byte) *smf.ChannelVoiceEvent {
	t.Helper()
	e, err := smf.NewChannelVoiceEvent(delta, base, channel, data)
	require.NoError(t, err)
	return e
}

func mustEndOfTrack(t *testing.T) *smf.MetaEvent {
	t.Helper()
	e, err := smf.EndOfTrack(0)
	require.NoError(t, err)
	return e
}

func TestNewTrackEmpty(t *testing.T) {
	_, err := smf.NewTrack(nil, true)
	require.Error(t, err)
	assert.True(t, smf.IsKind(err, smf.EmptyEventList))
}

func TestTrackRunningStatusElision(t *testing.T) {
	events := []smf.Event{
		mustChannelVoice(t, 0, smf.NoteOn, 0, []byte{60, 127}),
		mustChannelVoice(t, 127, smf.NoteOn, 0, []byte{60, 0}),
		mustEndOfTrack(t),
	}

	compressed, err := smf.NewTrack(events, true)
	require.NoError(t, err)
	verbatim, err := smf.NewTrack(events, false)
	require.NoError(t, err)

	// second event drops its status byte under running status
	assert.Equal(t, []byte{
		'M', 'T', 'r', 'k', 0, 0, 0, 11,
		0x00, 0x90, 60, 127,
		0x7F, 60, 0,
		0x00, 0xFF, 0x2F, 0x00,
	}, compressed.Serialize())

	assert.Equal(t, []byte{
		'M', 'T', 'r', 'k', 0, 0, 0, 12,
		0x00, 0x90, 60, 127,
		0x7F, 0x90, 60, 0,
		0x00, 0xFF, 0x2F, 0x00,
	}, verbatim.Serialize())

	assert.Equal(t, uint32(11), compressed.SerializedLength())
	assert.Equal(t, uint32(12), verbatim.SerializedLength())
	assert.True(t, compressed.RunningStatus())
	assert.False(t, verbatim.RunningStatus())
}

func TestTrackRunningStatusDifferentChannels(t *testing.T) {
	events := []smf.Event{
		mustChannelVoice(t, 0, smf.NoteOn, 0, []byte{60, 127}),
		mustChannelVoice(t, 0, smf.NoteOn, 1, []byte{60, 127}),
		mustEndOfTrack(t),
	}

	track, err := smf.NewTrack(events, true)
	require.NoError(t, err)

	// different wire statuses: both status bytes present
	assert.Equal(t, []byte{
		'M', 'T', 'r', 'k', 0, 0, 0, 12,
		0x00, 0x90, 60, 127,
		0x00, 0x91, 60, 127,
		0x00, 0xFF, 0x2F, 0x00,
	}, track.Serialize())
}

func TestTrackRunningStatusBrokenByMeta(t *testing.T) {
	marker, err := smf.NewMetaEvent(0, smf.MetaMarker, []byte("a"))
	require.NoError(t, err)

	events := []smf.Event{
		mustChannelVoice(t, 0, smf.NoteOn, 0, []byte{60, 127}),
		marker,
		mustChannelVoice(t, 0, smf.NoteOn, 0, []byte{60, 0}),
		mustEndOfTrack(t),
	}

	track, err := smf.NewTrack(events, true)
	require.NoError(t, err)

	// the meta event resets the accumulator, so the third event keeps
	// its status byte
	assert.Equal(t, []byte{
		'M', 'T', 'r', 'k', 0, 0, 0, 17,
		0x00, 0x90, 60, 127,
		0x00, 0xFF, 0x06, 0x01, 'a',
		0x00, 0x90, 60, 0,
		0x00, 0xFF, 0x2F, 0x00,
	}, track.Serialize())
}

func TestTrackRunningStatusConsecutiveRuns(t *testing.T) {
	events := []smf.Event{
		mustChannelVoice(t, 0, smf.NoteOn, 0, []byte{60, 127}),
		mustChannelVoice(t, 1, smf.NoteOn, 0, []byte{62, 127}),
		mustChannelVoice(t, 1, smf.NoteOff, 0, []byte{60, 0}),
		mustChannelVoice(t, 0, smf.NoteOff, 0, []byte{62, 0}),
		mustEndOfTrack(t),
	}

	track, err := smf.NewTrack(events, true)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x00, 0x90, 60, 127,
		0x01, 62, 127, // elided: same status as previous
		0x01, 0x80, 60, 0, // new status
		0x00, 62, 0, // elided again
		0x00, 0xFF, 0x2F, 0x00,
	}, track.Serialize()[8:])
}

func TestTrackEventsAreCopied(t *testing.T) {
	events := []smf.Event{mustEndOfTrack(t)}
	track, err := smf.NewTrack(events, true)
	require.NoError(t, err)

	events[0] = nil
	got := track.Events()
	require.Len(t, got, 1)
	assert.NotNil(t, got[0])
}
