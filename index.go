package coretext

import (
	"github.com/coregx/coretext/unit"
	"github.com/coregx/coretext/utf"
)

// decodeAt decodes the code point starting at buf[off]. A malformed
// sequence yields (utf.ReplacementChar, 0).
func decodeAt[T unit.Unit](buf []T, off int) (rune, int) {
	switch s := any(buf).(type) {
	case []unit.Char8:
		return utf.DecodeUTF8(unit.Raw8(s[off:]))
	case []unit.Char16LE:
		return utf.DecodeUTF16Strict(s[off:])
	case []unit.Char16BE:
		return utf.DecodeUTF16Strict(s[off:])
	}
	return rune(buf[off].Value()), 1
}

// next returns the offset of the code point after the one at off, as told
// by the lead unit. It never passes end.
func next[T unit.Unit](buf []T, off, end int) int {
	return min(off+buf[off].SequenceLength(), end)
}

// prev returns the offset of the code point before off: one unit back,
// then back over continuation units.
func prev[T unit.Unit](buf []T, off int) int {
	off--
	for off > 0 && buf[off].IsTrail() {
		off--
	}
	return off
}

func fixedWidth[T unit.Unit]() bool {
	return !unit.EncodingOf[T]().IsVariable()
}

// OffsetFront returns the unit offset of code point n, counting from 0 at
// the start of buf.
func OffsetFront[T unit.Unit](buf []T, n int) int {
	if fixedWidth[T]() {
		return n
	}
	end := len(buf)
	off := 0
	for ; n > 0; n-- {
		off = next(buf, off, end)
	}
	return off
}

// OffsetBack returns the unit offset of code point n counting backward from
// end: n = 0 is the code point that ends at end.
func OffsetBack[T unit.Unit](buf []T, end, n int) int {
	if fixedWidth[T]() {
		return end - n - 1
	}
	off := end
	for ; n >= 0; n-- {
		off = prev(buf, off)
	}
	return off
}

// IndexFront returns code point n of buf, counting from 0. Indexing past the
// logical end is a programming error.
func IndexFront[T unit.Unit](buf []T, n int) rune {
	r, _ := decodeAt(buf, OffsetFront(buf, n))
	return r
}

// IndexBack returns code point n of buf counting from the logical end:
// IndexBack(buf, 0) is the last code point.
func IndexBack[T unit.Unit](buf []T, n int) rune {
	r, _ := decodeAt(buf, OffsetBack(buf, UnitLen(buf), n))
	return r
}
