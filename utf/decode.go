package utf

import (
	"github.com/coregx/coretext/simd"
	"github.com/coregx/coretext/unit"
)

// DecodeUTF8 decodes the sequence at the start of p.
//
// The sequence length comes from the lead byte alone; continuation bytes
// are masked, not checked. A byte that cannot start a sequence, or a
// sequence cut short by the end of p, yields (ReplacementChar, 0).
// An empty p also yields (ReplacementChar, 0).
func DecodeUTF8(p []byte) (r rune, size int) {
	if len(p) == 0 {
		return ReplacementChar, 0
	}
	b0 := p[0]
	n, ok := unit.LeadLength8(b0)
	if !ok || len(p) < n {
		return ReplacementChar, 0
	}
	switch n {
	case 1:
		return rune(b0), 1
	case 2:
		return rune(b0&0x1F)<<6 | rune(p[1]&0x3F), 2
	case 3:
		return rune(b0&0x0F)<<12 | rune(p[1]&0x3F)<<6 | rune(p[2]&0x3F), 3
	}
	return rune(b0&0x07)<<18 | rune(p[1]&0x3F)<<12 | rune(p[2]&0x3F)<<6 | rune(p[3]&0x3F), 4
}

// decodeUTF8Strict decodes one well-formed sequence: continuation bytes are
// checked, and overlong forms, surrogates and values above 0x10FFFF are
// rejected. On failure size is 0 and short reports whether p ends inside a
// sequence that could still become valid.
func decodeUTF8Strict(p []byte) (r rune, size int, short bool) {
	if len(p) == 0 {
		return ReplacementChar, 0, true
	}
	b0 := p[0]
	n, ok := unit.LeadLength8(b0)
	if !ok {
		return ReplacementChar, 0, false
	}
	if n == 1 {
		return rune(b0), 1, false
	}
	// Bounds on the second byte rule out overlong forms, surrogates and
	// values above 0x10FFFF.
	lo, hi := byte(0x80), byte(0xBF)
	switch {
	case b0 < 0xC2:
		return ReplacementChar, 0, false
	case b0 == 0xE0:
		lo = 0xA0
	case b0 == 0xED:
		hi = 0x9F
	case b0 == 0xF0:
		lo = 0x90
	case b0 == 0xF4:
		hi = 0x8F
	case b0 > 0xF4:
		return ReplacementChar, 0, false
	}
	for i := 1; i < n; i++ {
		if i >= len(p) {
			return ReplacementChar, 0, true
		}
		b := p[i]
		if i == 1 && (b < lo || b > hi) || i > 1 && !unit.IsTrail8(b) {
			return ReplacementChar, 0, false
		}
	}
	r, _ = DecodeUTF8(p[:n])
	return r, n, false
}

// FullUTF8 reports whether p begins with a complete sequence or with bytes
// that are already known to be invalid. It is false only when more input
// could complete a valid sequence.
func FullUTF8(p []byte) bool {
	_, size, short := decodeUTF8Strict(p)
	return size > 0 || !short
}

// ValidUTF8 reports whether p is entirely well-formed UTF-8.
func ValidUTF8(p []byte) bool {
	if simd.IsASCII(p) {
		return true
	}
	for len(p) > 0 {
		_, size, _ := decodeUTF8Strict(p)
		if size == 0 {
			return false
		}
		p = p[size:]
	}
	return true
}

// Unit16 is the set of UTF-16 unit types.
type Unit16 interface {
	unit.Unit
	unit.Char16LE | unit.Char16BE
	AsHost() uint16
}

// Unit32 is the set of UTF-32 unit types.
type Unit32 interface {
	unit.Unit
	unit.Char32LE | unit.Char32BE
	AsHost() uint32
}

// Wide is the set of UTF-16 and UTF-32 unit types.
type Wide interface {
	unit.Unit
	unit.Char16LE | unit.Char16BE | unit.Char32LE | unit.Char32BE
}

// DecodeUTF16 decodes the code point at the start of p.
//
// A lead surrogate followed by a trail surrogate is combined (size 2).
// Anything else, including an unpaired surrogate, is returned as is with
// size 1. An empty p yields (ReplacementChar, 0).
func DecodeUTF16[T Unit16](p []T) (r rune, size int) {
	if len(p) == 0 {
		return ReplacementChar, 0
	}
	first := p[0].AsHost()
	if unit.IsLeadSurrogate(first) && len(p) > 1 {
		if second := p[1].AsHost(); unit.IsTrailSurrogate(second) {
			return SurrogateToScalar(first, second), 2
		}
	}
	return rune(first), 1
}

// DecodeUTF16Strict is DecodeUTF16 except that a lead surrogate not
// followed by a trail surrogate yields (ReplacementChar, 0).
func DecodeUTF16Strict[T Unit16](p []T) (r rune, size int) {
	if len(p) == 0 {
		return ReplacementChar, 0
	}
	first := p[0].AsHost()
	if unit.IsLeadSurrogate(first) {
		if len(p) > 1 {
			if second := p[1].AsHost(); unit.IsTrailSurrogate(second) {
				return SurrogateToScalar(first, second), 2
			}
		}
		return ReplacementChar, 0
	}
	return rune(first), 1
}
