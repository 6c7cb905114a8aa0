package section

import "math"

const (
	// Version is the payload format version written by this library.
	Version uint8 = 1

	// HeaderSize is the fixed payload header size in bytes.
	HeaderSize = 15

	// MaxValueCount is the maximum number of values a payload can record.
	// The header stores the count as a signed 32-bit integer.
	MaxValueCount = math.MaxInt32

	// MinBitsPerValue and MaxBitsPerValue bound the uniform per-value bit
	// width. One bit is the sign-only degenerate case; 64 bits covers the
	// full magnitude range of int64 plus the sign bit.
	MinBitsPerValue uint8 = 1
	MaxBitsPerValue uint8 = 64
)

// Byte offsets of the header fields within the payload.
const (
	VersionOffset      = 0  // version: uint8
	FlagsOffset        = 1  // flags: uint8, reserved
	BitsPerValueOffset = 2  // bitsPerValue: uint8
	ValueCountOffset   = 3  // valueCount: int32, little-endian
	ScaleOffset        = 7  // scale: int64, little-endian
	PackedDataOffset   = 15 // first byte of the packed bitstream
)
