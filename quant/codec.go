// Package quant implements the lossy quantization codec: it converts arrays
// of IEEE floating-point values into compact, self-describing binary payloads
// and reconstructs approximations within a caller-chosen tolerance.
//
// Compression multiplies every element by an integer scale derived from the
// tolerance, rounds to the nearest integer, clamps to the int64 range through
// a double-precision intermediate, and packs the result at a uniform bit
// width derived from the array's own largest magnitude. Decompression
// reverses the pipeline, dividing each unpacked integer by the scale recorded
// in the payload header.
//
// The numeric work runs in vector lanes of hwy.MaxLanes[float64]() with a
// masked tail that executes the same kernels, so the remainder path is
// bit-for-bit identical to the batched path and results never depend on the
// lane width of the host.
//
// The codec is stateless: every call is a pure function of its inputs plus
// the buffer it allocates, so concurrent calls on independent buffers are
// safe without synchronization.
package quant

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/arloliu/loq/encoding"
	"github.com/arloliu/loq/errs"
	"github.com/arloliu/loq/section"
)

// Value constrains the floating-point kinds the codec accepts.
type Value = encoding.Value

// Clamp bounds for the double-precision intermediate before integer
// truncation. clampHi is the largest float64 strictly below 2^63; using
// MaxInt64 directly would round up to 2^63 and overflow the conversion.
const (
	clampLo = float64(math.MinInt64)
	clampHi = 9223372036854774784.0
)

// Compress converts values into a self-describing binary payload whose
// decompressed form differs from the input by at most tolerance per element.
//
// The payload is a 15-byte little-endian header followed by
// PackedSize(len(values), bitsPerValue) bytes of tightly packed quantized
// values. Compressing the same array with the same tolerance always yields a
// byte-identical payload.
//
// Parameters:
//   - values: Input array; an empty or nil slice yields an empty payload
//   - tolerance: Maximum acceptable absolute reconstruction error, > 0
//
// Returns:
//   - []byte: The compressed payload
//   - error: errs.ErrInvalidTolerance, errs.ErrScaleOverflow,
//     errs.ErrTooManyValues, errs.ErrNonFiniteValue, or
//     errs.ErrInvalidBitWidth
func Compress[T Value](values []T, tolerance float64) ([]byte, error) {
	scale, err := Scale(tolerance)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return []byte{}, nil
	}

	if len(values) > section.MaxValueCount {
		return nil, fmt.Errorf("%w: %d values", errs.ErrTooManyValues, len(values))
	}

	maxAbs, err := encoding.MaxAbs(values)
	if err != nil {
		return nil, err
	}

	width, err := encoding.DeriveBitWidth(maxAbs, scale)
	if err != nil {
		return nil, err
	}

	// The packed bitstream requires a zero-filled destination; make provides one.
	buf := make([]byte, section.HeaderSize+encoding.PackedSize(len(values), width))

	header := section.NewPayloadHeader(width, int32(len(values)), scale)
	if err := header.CopyTo(buf); err != nil {
		return nil, err
	}

	quantizePack(values, scale, width, buf)

	return buf, nil
}

// Decompress reconstructs the array encoded in payload, relying entirely on
// the self-describing header. An empty payload yields an empty array.
func Decompress[T Value](payload []byte) ([]T, error) {
	return decompress[T](payload, -1, 0)
}

// DecompressCount is Decompress with a caller-supplied expected element
// count, cross-checked against the payload header. It lets a caller pin the
// codec to a previously agreed contract.
func DecompressCount[T Value](payload []byte, expectedCount int) ([]T, error) {
	return decompress[T](payload, expectedCount, 0)
}

// DecompressChecked is DecompressCount with an additional tolerance
// cross-check: the scale derived from tolerance must match the scale recorded
// in the payload header.
func DecompressChecked[T Value](payload []byte, expectedCount int, tolerance float64) ([]T, error) {
	if tolerance <= 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return nil, errs.ErrInvalidTolerance
	}

	return decompress[T](payload, expectedCount, tolerance)
}

// Scale derives the integer scale round(1/tolerance) for a tolerance.
//
// Returns:
//   - int64: The scale, >= 1
//   - error: errs.ErrInvalidTolerance when tolerance is not a positive finite
//     number or is too coarse to produce a scale of at least 1;
//     errs.ErrScaleOverflow when the scale does not fit in int64
func Scale(tolerance float64) (int64, error) {
	if tolerance <= 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return 0, errs.ErrInvalidTolerance
	}

	s := math.Round(1 / tolerance)
	if s >= 9223372036854775808.0 { // 2^63
		return 0, errs.ErrScaleOverflow
	}

	if s < 1 {
		return 0, errs.ErrInvalidTolerance
	}

	return int64(s), nil
}

// PayloadSize returns the exact payload length in bytes for a value count and
// per-value bit width: header size plus packed bytes, or 0 for an empty array.
func PayloadSize(valueCount int, bitsPerValue uint8) int {
	if valueCount == 0 {
		return 0
	}

	return section.HeaderSize + encoding.PackedSize(valueCount, bitsPerValue)
}

// ReadHeader parses and validates the header of a non-empty payload without
// decoding the bitstream.
//
// Returns:
//   - section.PayloadHeader: The validated header
//   - error: errs.ErrInvalidHeaderSize, errs.ErrUnsupportedVersion,
//     errs.ErrInvalidBitWidth, errs.ErrInvalidValueCount, or
//     errs.ErrInvalidScale
func ReadHeader(payload []byte) (section.PayloadHeader, error) {
	header, err := section.ParsePayloadHeader(payload)
	if err != nil {
		return section.PayloadHeader{}, err
	}

	if header.Version != section.Version {
		return section.PayloadHeader{}, fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, header.Version)
	}

	if header.BitsPerValue < section.MinBitsPerValue || header.BitsPerValue > section.MaxBitsPerValue {
		return section.PayloadHeader{}, fmt.Errorf("%w: %d bits", errs.ErrInvalidBitWidth, header.BitsPerValue)
	}

	if header.ValueCount < 0 {
		return section.PayloadHeader{}, errs.ErrInvalidValueCount
	}

	if header.Scale < 1 {
		return section.PayloadHeader{}, errs.ErrInvalidScale
	}

	return header, nil
}

// decompress is the single algorithm behind all three Decompress variants.
// expectedCount < 0 and tolerance == 0 mean "not supplied".
func decompress[T Value](payload []byte, expectedCount int, tolerance float64) ([]T, error) {
	if len(payload) == 0 {
		if expectedCount > 0 {
			return nil, errs.ErrValueCountMismatch
		}

		return []T{}, nil
	}

	header, err := ReadHeader(payload)
	if err != nil {
		return nil, err
	}

	count := int(header.ValueCount)

	if expectedCount >= 0 && count != expectedCount {
		return nil, fmt.Errorf("%w: header has %d, caller expects %d",
			errs.ErrValueCountMismatch, count, expectedCount)
	}

	if tolerance > 0 {
		scale, err := Scale(tolerance)
		if err != nil {
			return nil, err
		}

		if scale != header.Scale {
			return nil, fmt.Errorf("%w: header has %d, tolerance derives %d",
				errs.ErrScaleMismatch, header.Scale, scale)
		}
	}

	if len(payload) < section.HeaderSize+encoding.PackedSize(count, header.BitsPerValue) {
		return nil, errs.ErrPayloadTruncated
	}

	return unpackDequantize[T](payload, count, header.BitsPerValue, header.Scale), nil
}

// quantizePack runs the scale-round-clamp-pack pipeline over every element.
// The arithmetic is staged through float64 lanes regardless of T so that both
// input widths share one code path; the bit cursor advances in strict array
// order.
func quantizePack[T Value](values []T, scale int64, width uint8, dst []byte) {
	lanes := hwy.MaxLanes[float64]()
	staging := make([]float64, lanes)
	quantized := make([]float64, lanes)

	scaleVec := hwy.Set(float64(scale))
	loVec := hwy.Set(clampLo)
	hiVec := hwy.Set(clampHi)

	pack := func(chunk []float64, pos uint64) uint64 {
		for _, q := range chunk {
			pos = encoding.PutValue(dst, section.PackedDataOffset, pos, int64(q), width)
		}

		return pos
	}

	var pos uint64

	hwy.ProcessWithTail[float64](len(values),
		func(offset int) {
			widen(values[offset:offset+lanes], staging)
			v := hwy.Load(staging)
			q := hwy.Clamp(hwy.Round(hwy.Mul(v, scaleVec)), loVec, hiVec)
			hwy.Store(q, quantized)
			pos = pack(quantized, pos)
		},
		func(offset, count int) {
			widen(values[offset:offset+count], staging[:count])
			mask := hwy.TailMask[float64](count)
			v := hwy.MaskLoad(mask, staging[:count])
			q := hwy.Clamp(hwy.Round(hwy.Mul(v, scaleVec)), loVec, hiVec)
			hwy.MaskStore(mask, q, quantized)
			pos = pack(quantized[:count], pos)
		},
	)
}

// unpackDequantize mirrors quantizePack: serial bit reads feed float64 lanes
// that divide by the recorded scale, then narrow back to T in array order.
func unpackDequantize[T Value](payload []byte, count int, width uint8, scale int64) []T {
	out := make([]T, count)

	lanes := hwy.MaxLanes[float64]()
	staging := make([]float64, lanes)
	restored := make([]float64, lanes)

	scaleVec := hwy.Set(float64(scale))

	var pos uint64

	unpack := func(n int) {
		for i := range n {
			var q int64
			q, pos = encoding.GetValue(payload, section.PackedDataOffset, pos, width)
			staging[i] = float64(q)
		}
	}

	hwy.ProcessWithTail[float64](count,
		func(offset int) {
			unpack(lanes)
			v := hwy.Div(hwy.Load(staging), scaleVec)
			hwy.Store(v, restored)
			narrow(restored, out[offset:offset+lanes])
		},
		func(offset, tail int) {
			unpack(tail)
			mask := hwy.TailMask[float64](tail)
			v := hwy.Div(hwy.MaskLoad(mask, staging[:tail]), scaleVec)
			hwy.MaskStore(mask, v, restored)
			narrow(restored[:tail], out[offset:offset+tail])
		},
	)

	return out
}

func widen[T Value](src []T, dst []float64) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

func narrow[T Value](src []float64, dst []T) {
	for i, v := range src {
		dst[i] = T(v)
	}
}
