// Package utf converts between Unicode scalars and their UTF-8, UTF-16 and
// UTF-32 encodings.
//
// Single-scalar decoders report failure by returning ReplacementChar with a
// size of 0, so a caller can detect "nothing consumed" without a separate
// error value. Batch conversions return the number of units written and
// read together with a ConvError, leaving both cursors at the exact point of
// failure so the caller can grow the output and retry, or report the
// offending input.
package utf

import "errors"

// ReplacementChar is U+FFFD, returned by decoders on malformed input.
const ReplacementChar = '\uFFFD'

// Sentinel errors for ConvError values.
var (
	// ErrNotEnoughSpace indicates the output buffer filled before the input
	// was consumed.
	ErrNotEnoughSpace = errors.New("utf: not enough space in output buffer")

	// ErrInvalidInput indicates the input holds a malformed sequence or a
	// value outside the Unicode scalar range.
	ErrInvalidInput = errors.New("utf: invalid input")
)

// ConvError is the outcome of a batch conversion.
type ConvError uint8

const (
	// NoError means the whole input was converted.
	NoError ConvError = iota
	// NotEnoughSpace means the output buffer is too small for the next
	// code point.
	NotEnoughSpace
	// InvalidInput means the next code point of the input is malformed.
	InvalidInput
)

// String returns a human-readable name.
func (e ConvError) String() string {
	switch e {
	case NoError:
		return "no error"
	case NotEnoughSpace:
		return "not enough space"
	case InvalidInput:
		return "invalid input"
	}
	return "unknown conversion error"
}

// Err returns the sentinel error for e, or nil for NoError.
func (e ConvError) Err() error {
	switch e {
	case NoError:
		return nil
	case NotEnoughSpace:
		return ErrNotEnoughSpace
	}
	return ErrInvalidInput
}
