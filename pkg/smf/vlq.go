package smf

import "io"

// MaxVarLen is the largest value a variable-length quantity can carry:
// 4 bytes of 7 payload bits each. Delta times and chunk-internal lengths
// above this cannot round-trip and are rejected at construction.
const MaxVarLen = 0x0FFFFFFF

// EncodeVarLen converts n to the SMF variable-length quantity form:
// 7-bit groups, most significant group first, continuation bit 0x80 set
// on every byte except the last. The result is 1 to 4 bytes; 0 encodes
// as a single zero byte.
func EncodeVarLen(n uint32) []byte {
	buf := []byte{byte(n & 0x7F)}
	n >>= 7
	for n > 0 {
		buf = append(buf, byte(n&0x7F)|0x80)
		n >>= 7
	}
	// groups were collected least significant first
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// ReadVarLen reads a variable-length quantity from r. A quantity that is
// still continued after 4 bytes, or one cut short by the end of the
// stream, is a MalformedStream error.
func ReadVarLen(r io.ByteReader) (uint32, error) {
	var value uint32
	for i := 0; i < 4; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, newError(MalformedStream, "variable-length quantity truncated", err)
		}
		value = value<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return value, nil
		}
	}
	return 0, newError(MalformedStream, "variable-length quantity longer than 4 bytes", value)
}
