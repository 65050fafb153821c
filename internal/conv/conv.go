// Package conv provides checked integer conversions for code units.
//
// These functions perform bounds checking before narrowing a rune into a
// fixed-width unit. They panic on overflow since this indicates a
// programming error (a caller passing an unvalidated scalar).
package conv

import "math"

// RuneToUint16 converts a rune known to fit one UTF-16 unit.
// Panics if r < 0 or r > math.MaxUint16.
func RuneToUint16(r rune) uint16 {
	if r < 0 || r > math.MaxUint16 {
		panic("integer overflow: rune value out of uint16 range")
	}
	return uint16(r)
}

// RuneToUint32 converts a non-negative rune to a UTF-32 unit value.
// Panics if r < 0.
func RuneToUint32(r rune) uint32 {
	if r < 0 {
		panic("integer overflow: negative rune")
	}
	return uint32(r)
}
