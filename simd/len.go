package simd

import (
	"math/bits"
	"unsafe"
)

// LenInfo is the result of a combined scan: the number of code points and
// the number of units before the terminator.
type LenInfo struct {
	Scalars int
	Units   int
}

func isTrail8(b byte) bool { return b&0xC0 == 0x80 }

func isTrail16(u uint16) bool { return u&0xFC00 == 0xDC00 }

func isTrail16Swapped(u uint16) bool { return u&0x00FC == 0x00DC }

// len8Scalar counts the bytes that are not UTF-8 continuation bytes, up to
// the first zero byte or the end of p.
func len8Scalar(p []byte) LenInfo {
	return len8From(p, 0, 0)
}

func len8From(p []byte, i, scalars int) LenInfo {
	for ; i < len(p); i++ {
		b := p[i]
		if b == 0 {
			break
		}
		if !isTrail8(b) {
			scalars++
		}
	}
	return LenInfo{Scalars: scalars, Units: i}
}

// len8Blocks is the block form of len8Scalar. A block containing a zero
// byte is left to the scalar loop, which also handles the partial tail.
func len8Blocks(p []byte, block int) LenInfo {
	n := len(p)
	if n == 0 {
		return LenInfo{}
	}
	base := unsafe.Pointer(unsafe.SliceData(p))
	head := min(alignPrefix(base, block), n)
	scalars := 0
	for i := 0; i < head; i++ {
		b := p[i]
		if b == 0 {
			return LenInfo{Scalars: scalars, Units: i}
		}
		if !isTrail8(b) {
			scalars++
		}
	}
	i := head
blocks:
	for ; i+block <= n; i += block {
		trails := 0
		for w := 0; w < block; w += 8 {
			v := word(base, i+w)
			if zeroLanes8(v) != 0 {
				break blocks
			}
			trails += bits.OnesCount64(trailLanes8(v))
		}
		scalars += block - trails
	}
	return len8From(p, i, scalars)
}

// len16Scalar counts the units of p that are not trail surrogates. With
// swapped set, units are read in the opposite byte order of the host.
func len16Scalar(p []uint16, swapped bool) LenInfo {
	return len16From(p, 0, 0, swapped)
}

func len16From(p []uint16, i, scalars int, swapped bool) LenInfo {
	trail := isTrail16
	if swapped {
		trail = isTrail16Swapped
	}
	for ; i < len(p); i++ {
		u := p[i]
		if u == 0 {
			break
		}
		if !trail(u) {
			scalars++
		}
	}
	return LenInfo{Scalars: scalars, Units: i}
}

func len16Blocks(p []uint16, block int, swapped bool) LenInfo {
	n := len(p)
	if n == 0 {
		return LenInfo{}
	}
	mask, pattern := trailMask16, trailBits16
	trail := isTrail16
	if swapped {
		mask, pattern = trailMask16Swapped, trailBits16Swapped
		trail = isTrail16Swapped
	}
	base := unsafe.Pointer(unsafe.SliceData(p))
	head := min(alignPrefix(base, block)/2, n)
	scalars := 0
	for i := 0; i < head; i++ {
		u := p[i]
		if u == 0 {
			return LenInfo{Scalars: scalars, Units: i}
		}
		if !trail(u) {
			scalars++
		}
	}
	per := block / 2
	i := head
blocks:
	for ; i+per <= n; i += per {
		trails := 0
		for w := 0; w < block; w += 8 {
			v := word(base, 2*i+w)
			if zeroLanes16(v) != 0 {
				break blocks
			}
			trails += bits.OnesCount64(trailLanes16(v, mask, pattern))
		}
		scalars += per - trails
	}
	return len16From(p, i, scalars, swapped)
}
