package smf_test

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/SupremaLex/MIDI-lib/pkg/smf"
)

// TestVarLenRoundTripProperty checks that for every representable
// value, decode inverts encode, the encoding is 1 to 4 bytes, and only
// the last byte has the continuation bit clear.
func TestVarLenRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("decode inverts encode", prop.ForAll(
		func(n uint32) bool {
			encoded := smf.EncodeVarLen(n)
			decoded, err := smf.ReadVarLen(bytes.NewReader(encoded))
			return err == nil && decoded == n
		},
		gen.UInt32Range(0, smf.MaxVarLen),
	))

	properties.Property("encoding is 1 to 4 bytes with correct continuation bits", prop.ForAll(
		func(n uint32) bool {
			encoded := smf.EncodeVarLen(n)
			if len(encoded) < 1 || len(encoded) > 4 {
				return false
			}
			for _, b := range encoded[:len(encoded)-1] {
				if b&0x80 == 0 {
					return false
				}
			}
			return encoded[len(encoded)-1]&0x80 == 0
		},
		gen.UInt32Range(0, smf.MaxVarLen),
	))

	properties.TestingRun(t)
}
