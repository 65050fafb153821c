package utf

import (
	"github.com/coregx/coretext/internal/conv"
	"github.com/coregx/coretext/unit"
)

// LenUTF8 returns the number of bytes needed to encode r, or 0 if r is not
// in the scalar range.
func LenUTF8(r rune) int {
	switch {
	case r < 0:
		return 0
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	case r <= unit.MaxScalar:
		return 4
	}
	return 0
}

// EncodeUTF8 writes the UTF-8 encoding of r to dst and returns the number of
// bytes written. It returns 0 if r is out of range or dst is too short.
func EncodeUTF8(dst []byte, r rune) int {
	n := LenUTF8(r)
	if n == 0 || len(dst) < n {
		return 0
	}
	putUTF8(dst, r, n)
	return n
}

// putUTF8 writes the n-byte encoding of r. dst must hold n bytes.
func putUTF8(dst []byte, r rune, n int) {
	switch n {
	case 1:
		dst[0] = byte(r)
	case 2:
		_ = dst[1]
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r)&0x3F
	case 3:
		_ = dst[2]
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte(r>>6)&0x3F
		dst[2] = 0x80 | byte(r)&0x3F
	default:
		_ = dst[3]
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte(r>>12)&0x3F
		dst[2] = 0x80 | byte(r>>6)&0x3F
		dst[3] = 0x80 | byte(r)&0x3F
	}
}

// EncodeUTF16 writes r to dst as one unit below 0x10000 or as a lead/trail
// surrogate pair otherwise, in host order. It returns the number of units
// written, or 0 if r is out of range or dst is too short.
func EncodeUTF16(dst []uint16, r rune) int {
	switch {
	case !ValidScalar(r):
		return 0
	case r < 0x10000:
		if len(dst) < 1 {
			return 0
		}
		dst[0] = conv.RuneToUint16(r)
		return 1
	case len(dst) < 2:
		return 0
	}
	dst[0] = conv.RuneToUint16(unit.LeadOffset + r>>10)
	dst[1] = conv.RuneToUint16(unit.TrailSurrogateMin + r&0x3FF)
	return 2
}

// ScalarsToUTF8 encodes src into dst.
//
// It stops at the first scalar outside [0, 0x10FFFF] with InvalidInput, or
// at the first scalar that does not fit the remaining space with
// NotEnoughSpace. nSrc is the index of that scalar and nDst the number of
// bytes written before it.
func ScalarsToUTF8(dst []byte, src []rune) (nDst, nSrc int, err ConvError) {
	for nSrc < len(src) {
		r := src[nSrc]
		n := LenUTF8(r)
		if n == 0 {
			return nDst, nSrc, InvalidInput
		}
		if len(dst)-nDst < n {
			return nDst, nSrc, NotEnoughSpace
		}
		putUTF8(dst[nDst:], r, n)
		nDst += n
		nSrc++
	}
	return nDst, nSrc, NoError
}
