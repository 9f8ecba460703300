// Package bitops provides the handful of bit-level primitives the LC-3
// instruction engine leans on: sign extension of narrow immediate/offset
// fields, and big-endian byte concatenation, the word format of a program
// image.
package bitops

import "github.com/lc3vm/lc3vm/internal/lc3err"

// SignExtend treats the low bitCount bits of value as a two's-complement
// integer and returns its representation in a full 16-bit word. bitCount
// must be in 1..16; 0 is not a meaningful field width and is rejected.
func SignExtend(value uint16, bitCount uint16) (uint16, error) {
	if bitCount == 0 || bitCount > 16 {
		return 0, lc3err.New(lc3err.Overflow, "sign extend with bit count %d", bitCount)
	}
	if bitCount == 16 {
		return value, nil
	}
	signBit := (value >> (bitCount - 1)) & 1
	if signBit == 1 {
		value |= 0xFFFF << bitCount
	}
	return value, nil
}

// ConcatenateBytes composes two bytes, hi first, into a big-endian word.
func ConcatenateBytes(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
