package notes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SupremaLex/MIDI-lib/pkg/notes"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		key  uint8
	}{
		{"C0", 0},
		{"C#0", 1},
		{"B0", 11},
		{"C4", 48},
		{"A4", 57},
		{"G10", 127},
	}
	for _, tt := range tests {
		key, err := notes.Key(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.key, key, tt.name)
	}
}

func TestKeyUnknown(t *testing.T) {
	for _, name := range []string{"H4", "C", "C11", "c4", ""} {
		_, err := notes.Key(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, notes.ErrUnknownNote), name)
	}
}

func TestNameRoundTrip(t *testing.T) {
	for key := 0; key < 128; key++ {
		name := notes.Name(uint8(key))
		got, err := notes.Key(name)
		require.NoError(t, err, name)
		assert.Equal(t, uint8(key), got, name)
	}
}
