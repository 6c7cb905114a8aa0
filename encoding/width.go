package encoding

import (
	"math"
	"math/bits"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/arloliu/loq/errs"
)

// Value constrains the floating-point kinds the codec accepts.
type Value interface {
	~float32 | ~float64
}

// maxMagnitude is 2^63 as a float64. A scaled magnitude at or above it needs
// more than 63 magnitude bits and cannot be packed.
const maxMagnitude = 9223372036854775808.0

// MaxAbs scans values once and returns the largest absolute value.
//
// The scan runs in vector lanes of hwy.MaxLanes[T]() with a masked tail, so
// the result does not depend on the lane width of the host.
//
// NaN and infinities have no defined quantization behavior and are rejected
// with errs.ErrNonFiniteValue. An empty slice yields 0.
func MaxAbs[T Value](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, nil
	}

	var (
		maxAbs    T
		nonFinite bool
	)

	reduce := func(v hwy.Vec[T]) {
		if !hwy.IsFinite(v).AllTrue() {
			nonFinite = true
			return
		}

		if m := hwy.ReduceMax(hwy.Abs(v)); m > maxAbs {
			maxAbs = m
		}
	}

	hwy.ProcessWithTail[T](len(values),
		func(offset int) {
			reduce(hwy.Load(values[offset:]))
		},
		func(offset, count int) {
			// Inactive lanes load as zero, which is neutral for both the
			// finite check and the absolute maximum.
			mask := hwy.TailMask[T](count)
			reduce(hwy.MaskLoad(mask, values[offset:offset+count]))
		},
	)

	if nonFinite {
		return 0, errs.ErrNonFiniteValue
	}

	return float64(maxAbs), nil
}

// DeriveBitWidth computes the uniform per-value bit width (magnitude bits
// plus one sign bit) needed to pack every value of an array whose largest
// absolute value is maxAbs, once multiplied by scale.
//
// The width is fixed for the whole array, so a single large-magnitude outlier
// inflates the per-value cost of every element. That is a deliberate
// simplicity/compactness trade-off: one header field describes the entire
// bitstream.
//
// A zero maximum magnitude packs as a bare sign bit (width 1).
//
// Returns:
//   - uint8: Bit width in [1, 64]
//   - error: errs.ErrInvalidBitWidth when the scaled magnitude needs more
//     than 63 magnitude bits
func DeriveBitWidth(maxAbs float64, scale int64) (uint8, error) {
	m := math.Ceil(maxAbs * float64(scale))
	if m <= 0 {
		return 1, nil
	}

	if m >= maxMagnitude {
		return 0, errs.ErrInvalidBitWidth
	}

	// bits.Len64(m) equals ceil(log2(m+1)) for m >= 1.
	width := bits.Len64(uint64(m)) + 1
	if width > 64 {
		return 0, errs.ErrInvalidBitWidth
	}

	return uint8(width), nil
}
