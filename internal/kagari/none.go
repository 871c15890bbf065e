package kagari

import "encoding/binary"

// EncodeNone writes coeffs as raw little-endian int16 values, with no run-
// length or entropy coding. It backs the container's "None" compression
// tag, the dump path described in spec.md §4.7 for when compression is
// disabled outright.
func EncodeNone(coeffs []int16) []byte {
	out := make([]byte, len(coeffs)*2)
	for i, v := range coeffs {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
	}
	return out
}

// DecodeNone is the inverse of EncodeNone.
func DecodeNone(data []byte) []int16 {
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return out
}

// EncodeNone32 is EncodeNone for the 32-bit coefficient path used when the
// image depth exceeds 8 bits.
func EncodeNone32(coeffs []int32) []byte {
	out := make([]byte, len(coeffs)*4)
	for i, v := range coeffs {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
	}
	return out
}

// DecodeNone32 is the inverse of EncodeNone32.
func DecodeNone32(data []byte) []int32 {
	out := make([]int32, len(data)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}
