package utf

import (
	"github.com/coregx/coretext/internal/conv"
	"github.com/coregx/coretext/simd"
	"github.com/coregx/coretext/unit"
)

// ToUTF8 converts src, in any supported encoding, to UTF-8.
//
// ASCII input is copied; a byte above 0x7F is InvalidInput. UTF-8 input is
// validated and copied. UTF-16 surrogate pairs are combined and an unpaired
// surrogate is InvalidInput. UTF-32 values above 0x10FFFF are InvalidInput.
// The cursors follow ScalarsToUTF8: on error they mark the first unconverted
// code point.
func ToUTF8[T unit.Unit](dst []byte, src []T) (nDst, nSrc int, err ConvError) {
	switch s := any(src).(type) {
	case []unit.ASCII:
		return asciiToUTF8(dst, unit.Raw8(s))
	case []unit.Char8:
		return utf8ToUTF8(dst, unit.Raw8(s))
	case []unit.Char16LE:
		return utf16ToUTF8(dst, s)
	case []unit.Char16BE:
		return utf16ToUTF8(dst, s)
	case []unit.Char32LE:
		return utf32ToUTF8(dst, s)
	case []unit.Char32BE:
		return utf32ToUTF8(dst, s)
	}
	panic("unreachable")
}

func asciiToUTF8(dst, src []byte) (int, int, ConvError) {
	n := min(len(src), len(dst))
	if bad := simd.FirstNonASCII(src[:n]); bad >= 0 {
		copy(dst, src[:bad])
		return bad, bad, InvalidInput
	}
	copy(dst, src[:n])
	if n < len(src) {
		return n, n, NotEnoughSpace
	}
	return n, n, NoError
}

func utf8ToUTF8(dst, src []byte) (nDst, nSrc int, err ConvError) {
	for nSrc < len(src) {
		// Copy ASCII runs without decoding.
		if src[nSrc] < 0x80 {
			run := simd.FirstNonASCII(src[nSrc:])
			if run < 0 {
				run = len(src) - nSrc
			}
			k := copy(dst[nDst:], src[nSrc:nSrc+run])
			nDst += k
			nSrc += k
			if k < run {
				return nDst, nSrc, NotEnoughSpace
			}
			continue
		}
		_, size, _ := decodeUTF8Strict(src[nSrc:])
		if size == 0 {
			return nDst, nSrc, InvalidInput
		}
		if len(dst)-nDst < size {
			return nDst, nSrc, NotEnoughSpace
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, NoError
}

func utf16ToUTF8[T Unit16](dst []byte, src []T) (nDst, nSrc int, err ConvError) {
	for nSrc < len(src) {
		u := src[nSrc].AsHost()
		r, size := rune(u), 1
		switch {
		case unit.IsLeadSurrogate(u):
			if nSrc+1 >= len(src) || !unit.IsTrailSurrogate(src[nSrc+1].AsHost()) {
				return nDst, nSrc, InvalidInput
			}
			r, size = SurrogateToScalar(u, src[nSrc+1].AsHost()), 2
		case unit.IsTrailSurrogate(u):
			return nDst, nSrc, InvalidInput
		}
		n := LenUTF8(r)
		if len(dst)-nDst < n {
			return nDst, nSrc, NotEnoughSpace
		}
		putUTF8(dst[nDst:], r, n)
		nDst += n
		nSrc += size
	}
	return nDst, nSrc, NoError
}

func utf32ToUTF8[T Unit32](dst []byte, src []T) (nDst, nSrc int, err ConvError) {
	for nSrc < len(src) {
		v := src[nSrc].AsHost()
		if v > unit.MaxScalar {
			return nDst, nSrc, InvalidInput
		}
		r := rune(v)
		n := LenUTF8(r)
		if len(dst)-nDst < n {
			return nDst, nSrc, NotEnoughSpace
		}
		putUTF8(dst[nDst:], r, n)
		nDst += n
		nSrc++
	}
	return nDst, nSrc, NoError
}

// FromUTF8 converts well-formed UTF-8 to UTF-16 or UTF-32 in the byte order
// of T. Malformed UTF-8 (including overlong forms and encoded surrogates) is
// InvalidInput; a code point that needs more units than remain in dst is
// NotEnoughSpace.
func FromUTF8[T Wide](dst []T, src []byte) (nDst, nSrc int, err ConvError) {
	wide := unit.EncodingOf[T]().UnitSize() == 4
	var pair [2]uint16
	for nSrc < len(src) {
		r, size, _ := decodeUTF8Strict(src[nSrc:])
		if size == 0 {
			return nDst, nSrc, InvalidInput
		}
		if wide {
			if nDst >= len(dst) {
				return nDst, nSrc, NotEnoughSpace
			}
			dst[nDst] = unit.Make[T](conv.RuneToUint32(r))
			nDst++
		} else {
			n := EncodeUTF16(pair[:], r)
			if len(dst)-nDst < n {
				return nDst, nSrc, NotEnoughSpace
			}
			for _, u := range pair[:n] {
				dst[nDst] = unit.Make[T](uint32(u))
				nDst++
			}
		}
		nSrc += size
	}
	return nDst, nSrc, NoError
}
