package encoding

import "math"

// PackedSize returns the number of bytes needed to hold valueCount packed
// values of bitsPerValue bits each, rounded up to whole bytes.
func PackedSize(valueCount int, bitsPerValue uint8) int {
	bits := uint64(valueCount) * uint64(bitsPerValue)
	return int((bits + 7) / 8)
}

// PutValue packs a signed 64-bit value into dst at bit position pos, counted
// from byte offset. The value occupies width bits: width-1 magnitude bits
// LSB-first, then one sign bit (1 = negative).
//
// dst must be zero-filled in the target range, since packing only sets bits.
//
// Returns:
//   - uint64: The bit position advanced past the packed value
func PutValue(dst []byte, offset int, pos uint64, value int64, width uint8) uint64 {
	mag, negative := signMagnitude(value)

	magBits := int(width) - 1
	for range magBits {
		if mag&1 != 0 {
			setBit(dst, offset, pos)
		}
		mag >>= 1
		pos++
	}

	if negative {
		setBit(dst, offset, pos)
	}

	return pos + 1
}

// GetValue unpacks a signed 64-bit value of width bits from src at bit
// position pos, counted from byte offset. It is the exact inverse of
// PutValue, with one saturating edge case: a negative magnitude too large
// for the positive int64 range decodes as math.MinInt64.
//
// Returns:
//   - int64: The unpacked value
//   - uint64: The bit position advanced past the value
func GetValue(src []byte, offset int, pos uint64, width uint8) (int64, uint64) {
	var mag uint64

	magBits := int(width) - 1
	for i := range magBits {
		if getBit(src, offset, pos) {
			mag |= 1 << i
		}
		pos++
	}

	negative := getBit(src, offset, pos)
	pos++

	if negative {
		if mag > math.MaxInt64 {
			return math.MinInt64, pos
		}

		return -int64(mag), pos
	}

	return int64(mag), pos
}

// signMagnitude splits a signed value into magnitude and sign. Negative
// values are negated through -(v+1)+1 so that math.MinInt64, whose direct
// negation overflows, still yields its correct magnitude of 2^63.
func signMagnitude(v int64) (uint64, bool) {
	if v >= 0 {
		return uint64(v), false
	}

	return uint64(-(v+1)) + 1, true
}

// Bit i (0-based, cursor order) lives in byte offset+i/8 at bit i%8, LSB-first.

func setBit(buf []byte, offset int, pos uint64) {
	buf[uint64(offset)+pos/8] |= 1 << (pos % 8)
}

func getBit(buf []byte, offset int, pos uint64) bool {
	return buf[uint64(offset)+pos/8]&(1<<(pos%8)) != 0
}
