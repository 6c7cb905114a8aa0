// Package errs defines the sentinel errors returned by the loq codec and its
// helper packages.
//
// All errors are plain sentinel values created with errors.New, so callers can
// classify failures with errors.Is even when the codec wraps them with
// additional context via fmt.Errorf and %w.
//
// The errors fall into five categories:
//
//   - Invalid argument: ErrInvalidTolerance, ErrTooManyValues,
//     ErrValueCountMismatch, ErrScaleMismatch
//   - Range/overflow: ErrScaleOverflow, ErrInvalidBitWidth
//   - Format/version: ErrUnsupportedVersion
//   - Corruption/truncation: ErrInvalidHeaderSize, ErrPayloadTruncated,
//     ErrInvalidValueCount, ErrInvalidScale
//   - Unsupported input: ErrNonFiniteValue
package errs

import "errors"

var (
	// ErrInvalidTolerance is returned when the requested tolerance is zero,
	// negative, or not a finite number.
	ErrInvalidTolerance = errors.New("tolerance must be a positive finite number")

	// ErrTooManyValues is returned when the input array length exceeds the
	// signed 32-bit value count the payload header can record.
	ErrTooManyValues = errors.New("value count exceeds header capacity")

	// ErrValueCountMismatch is returned when a caller-supplied expected count
	// does not match the value count recorded in the payload header.
	ErrValueCountMismatch = errors.New("expected value count does not match payload header")

	// ErrScaleMismatch is returned when a caller-supplied tolerance derives a
	// scale different from the one recorded in the payload header.
	ErrScaleMismatch = errors.New("expected scale does not match payload header")

	// ErrScaleOverflow is returned when round(1/tolerance) does not fit in a
	// signed 64-bit integer.
	ErrScaleOverflow = errors.New("scale overflows int64")

	// ErrInvalidBitWidth is returned when the derived or recorded bits-per-value
	// falls outside the valid [1, 64] range.
	ErrInvalidBitWidth = errors.New("bits per value outside [1, 64]")

	// ErrUnsupportedVersion is returned when the payload header carries a
	// format version this library does not understand.
	ErrUnsupportedVersion = errors.New("unsupported payload version")

	// ErrInvalidHeaderSize is returned when a buffer is too small to contain a
	// complete payload header.
	ErrInvalidHeaderSize = errors.New("buffer smaller than payload header")

	// ErrPayloadTruncated is returned when a payload is shorter than the packed
	// length its own header declares.
	ErrPayloadTruncated = errors.New("payload shorter than header declares")

	// ErrInvalidValueCount is returned when the payload header records a
	// negative value count.
	ErrInvalidValueCount = errors.New("negative value count in payload header")

	// ErrInvalidScale is returned when the payload header records a
	// non-positive scale.
	ErrInvalidScale = errors.New("non-positive scale in payload header")

	// ErrNonFiniteValue is returned when the input array contains NaN or an
	// infinity. Quantization of non-finite values is intentionally unsupported.
	ErrNonFiniteValue = errors.New("input contains NaN or infinite value")
)
