// Package coretext measures, indexes and iterates Unicode text stored in
// caller-owned unit buffers.
//
// A buffer is a slice of code units of one encoding: []unit.ASCII,
// []unit.Char8 (UTF-8), []unit.Char16LE, []unit.Char16BE, []unit.Char32LE or
// []unit.Char32BE. Its logical end is the first zero unit, or the end of the
// slice when it holds none. No function here allocates or writes to the
// buffer.
//
// Basic usage:
//
//	buf := unit.Units8[unit.Char8]([]byte("10μ¼"))
//
//	info := coretext.Len(buf)             // {Scalars: 4, Units: 6}
//	third := coretext.IndexFront(buf, 2)  // 'μ'
//	last := coretext.IndexBack(buf, 0)    // '¼'
//
// Length scans run on the simd package's kernels, which pick the widest
// block loop the CPU supports on first use.
//
// Random access into variable-width text is linear. A container that
// indexes the same text repeatedly can keep the Middle returned by
// CountAndMiddle and pass it to IndexFrontCached or IndexBackCached, which
// walk from whichever of the start, the middle or the end is nearest.
package coretext

import (
	"github.com/coregx/coretext/simd"
	"github.com/coregx/coretext/unit"
)

// LenInfo holds the code point count and unit count of a buffer.
type LenInfo = simd.LenInfo

// UnitLen returns the number of units before the logical end of buf.
func UnitLen[T unit.Unit](buf []T) int {
	switch s := any(buf).(type) {
	case []unit.ASCII:
		return simd.UnitLen8(unit.Raw8(s))
	case []unit.Char8:
		return simd.UnitLen8(unit.Raw8(s))
	case []unit.Char16LE:
		return simd.UnitLen16(unit.Raw16(s))
	case []unit.Char16BE:
		return simd.UnitLen16(unit.Raw16(s))
	case []unit.Char32LE:
		return simd.UnitLen32(unit.Raw32(s))
	case []unit.Char32BE:
		return simd.UnitLen32(unit.Raw32(s))
	}
	panic("unreachable")
}

// Len returns the code point count and unit count of buf in one scan.
// For ASCII and UTF-32 both are the unit length.
//
// Every unit that does not continue an earlier one counts as a code point,
// so an unpaired lead surrogate or an invalid UTF-8 lead byte counts as one.
func Len[T unit.Unit](buf []T) LenInfo {
	switch s := any(buf).(type) {
	case []unit.Char8:
		return simd.Len8(unit.Raw8(s))
	case []unit.Char16LE:
		return simd.Len16LE(unit.Raw16(s))
	case []unit.Char16BE:
		return simd.Len16BE(unit.Raw16(s))
	}
	n := UnitLen(buf)
	return LenInfo{Scalars: n, Units: n}
}

// StrLen returns the number of code points before the logical end of buf.
func StrLen[T unit.Unit](buf []T) int {
	return Len(buf).Scalars
}

// CountLen returns the number of code points in the first units units of
// buf. Zero units are counted like any other; there is no terminator.
func CountLen[T unit.Unit](buf []T, units int) int {
	switch s := any(buf[:units]).(type) {
	case []unit.Char8:
		return simd.Count8(unit.Raw8(s))
	case []unit.Char16LE:
		return simd.Count16LE(unit.Raw16(s))
	case []unit.Char16BE:
		return simd.Count16BE(unit.Raw16(s))
	}
	return units
}
