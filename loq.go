// Package loq provides a lossy, self-describing binary codec for arrays of
// IEEE floating-point values.
//
// Each array is quantized to integers using a scale derived from a decimal
// tolerance, packed at the minimum uniform bit width the data itself needs,
// and prefixed with a fixed 15-byte header carrying everything required to
// decode it: format version, bits per value, value count, and scale.
//
// # Core Features
//
//   - Caller-chosen decimal tolerance via a closed precision enumeration
//   - Bit width derived from the array's own magnitude, one header per payload
//   - Sub-byte sign-magnitude bit packing, LSB-first
//   - Vector-lane batch processing with a bit-for-bit identical scalar tail
//   - Deterministic output: same array and precision, same bytes
//
// # Basic Usage
//
// Compressing and decompressing an array:
//
//	import "github.com/arloliu/loq"
//
//	values := []float64{1.2354878, -4.6659936, 7.3111189}
//
//	payload, err := loq.Compress(values, format.Precision4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	restored, err := loq.Decompress[float64](payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// each restored[i] is within 1e-4 of values[i]
//
// Pinning decompression to an agreed contract:
//
//	restored, err := loq.DecompressChecked[float64](payload, 3, format.Precision4)
//
// # Package Structure
//
// This package provides convenient top-level wrappers that pair the quant
// codec with the format precision table. For direct tolerances or header
// inspection, use the quant package; for disk and Base64 persistence, use
// persist.
package loq

import (
	"github.com/arloliu/loq/format"
	"github.com/arloliu/loq/quant"
)

// Value constrains the floating-point kinds the codec accepts.
type Value = quant.Value

// Compress converts values into a self-describing payload whose decompressed
// form differs from the input by at most the precision level's tolerance.
//
// An empty array compresses to an empty payload.
func Compress[T Value](values []T, precision format.Precision) ([]byte, error) {
	return quant.Compress(values, precision.Tolerance())
}

// Decompress reconstructs the array encoded in payload using only the
// payload's own header. An empty payload yields an empty array.
func Decompress[T Value](payload []byte) ([]T, error) {
	return quant.Decompress[T](payload)
}

// DecompressCount is Decompress with the expected element count cross-checked
// against the payload header.
func DecompressCount[T Value](payload []byte, expectedCount int) ([]T, error) {
	return quant.DecompressCount[T](payload, expectedCount)
}

// DecompressChecked is DecompressCount with the precision level additionally
// cross-checked against the scale recorded in the payload header.
func DecompressChecked[T Value](payload []byte, expectedCount int, precision format.Precision) ([]T, error) {
	return quant.DecompressChecked[T](payload, expectedCount, precision.Tolerance())
}
