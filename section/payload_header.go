// Package section defines the fixed binary header that prefixes every
// non-empty loq payload.
//
// The header is a self-describing 15-byte little-endian record:
//
//	| offset | size | field        |
//	|--------|------|--------------|
//	| 0      | 1    | version      |
//	| 1      | 1    | flags        |
//	| 2      | 1    | bitsPerValue |
//	| 3      | 4    | valueCount   |
//	| 7      | 8    | scale        |
//
// The header is written once at compress time and treated as read-only
// afterwards. The flags byte is reserved and must round-trip unchanged.
package section

import (
	"unsafe"

	"github.com/arloliu/loq/endian"
	"github.com/arloliu/loq/errs"
)

// PayloadHeader describes how to interpret the packed bitstream that follows
// it in a compressed payload.
type PayloadHeader struct {
	// Version is the payload format version, currently 1.
	Version uint8 // byte offset 0
	// Flags is reserved for future use and round-trips unchanged.
	Flags uint8 // byte offset 1
	// BitsPerValue is the uniform bit width of every packed value,
	// magnitude bits plus one sign bit, in [1, 64].
	BitsPerValue uint8 // byte offset 2
	// ValueCount is the number of values in the packed bitstream.
	ValueCount int32 // byte offset 3-6
	// Scale is the integer multiplier applied before rounding, round(1/tolerance).
	Scale int64 // byte offset 7-14
}

// NewPayloadHeader creates a header for a payload with the given per-value
// bit width, value count, and scale.
func NewPayloadHeader(bitsPerValue uint8, valueCount int32, scale int64) *PayloadHeader {
	return &PayloadHeader{
		Version:      Version,
		BitsPerValue: bitsPerValue,
		ValueCount:   valueCount,
		Scale:        scale,
	}
}

// Bytes serializes the header into a fresh HeaderSize-byte slice in
// little-endian field order.
func (h *PayloadHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.CopyTo(b)

	return b
}

// CopyTo serializes the header into dst.
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize when dst is smaller than HeaderSize
func (h *PayloadHeader) CopyTo(dst []byte) error {
	if len(dst) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	dst[VersionOffset] = h.Version
	dst[FlagsOffset] = h.Flags
	dst[BitsPerValueOffset] = h.BitsPerValue
	// Counts and scales are stored as-is in binary; bitwise conversion avoids
	// overflow warnings for negative values.
	engine.PutUint32(dst[ValueCountOffset:ScaleOffset], *(*uint32)(unsafe.Pointer(&h.ValueCount)))
	engine.PutUint64(dst[ScaleOffset:PackedDataOffset], *(*uint64)(unsafe.Pointer(&h.Scale)))

	return nil
}

// Parse decodes the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (needs at least HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize when data is shorter than HeaderSize.
//     On error the receiver is left unmodified; a truncated buffer never
//     yields a partially parsed header.
func (h *PayloadHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Version = data[VersionOffset]
	h.Flags = data[FlagsOffset]
	h.BitsPerValue = data[BitsPerValueOffset]

	countUint := engine.Uint32(data[ValueCountOffset:ScaleOffset])
	h.ValueCount = *(*int32)(unsafe.Pointer(&countUint))

	scaleUint := engine.Uint64(data[ScaleOffset:PackedDataOffset])
	h.Scale = *(*int64)(unsafe.Pointer(&scaleUint))

	return nil
}

// ParsePayloadHeader parses a PayloadHeader from the beginning of data.
//
// Returns:
//   - PayloadHeader: Decoded header struct
//   - error: errs.ErrInvalidHeaderSize when data is shorter than HeaderSize
func ParsePayloadHeader(data []byte) (PayloadHeader, error) {
	var h PayloadHeader
	if err := h.Parse(data); err != nil {
		return PayloadHeader{}, err
	}

	return h, nil
}
