package simd

import (
	"math/bits"
	"unsafe"
)

// count8Scalar counts the code points in all of p. Zero bytes are ordinary
// units here.
func count8Scalar(p []byte) int {
	n := 0
	for _, b := range p {
		if !isTrail8(b) {
			n++
		}
	}
	return n
}

func count8Blocks(p []byte, block int) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	base := unsafe.Pointer(unsafe.SliceData(p))
	i := min(alignPrefix(base, block), n)
	count := count8Scalar(p[:i])
	for ; i+block <= n; i += block {
		trails := 0
		for w := 0; w < block; w += 8 {
			trails += bits.OnesCount64(trailLanes8(word(base, i+w)))
		}
		count += block - trails
	}
	return count + count8Scalar(p[i:])
}

func count16Scalar(p []uint16, swapped bool) int {
	trail := isTrail16
	if swapped {
		trail = isTrail16Swapped
	}
	n := 0
	for _, u := range p {
		if !trail(u) {
			n++
		}
	}
	return n
}

func count16Blocks(p []uint16, block int, swapped bool) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	mask, pattern := trailMask16, trailBits16
	if swapped {
		mask, pattern = trailMask16Swapped, trailBits16Swapped
	}
	base := unsafe.Pointer(unsafe.SliceData(p))
	i := min(alignPrefix(base, block)/2, n)
	count := count16Scalar(p[:i], swapped)
	per := block / 2
	for ; i+per <= n; i += per {
		trails := 0
		for w := 0; w < block; w += 8 {
			trails += bits.OnesCount64(trailLanes16(word(base, 2*i+w), mask, pattern))
		}
		count += per - trails
	}
	return count + count16Scalar(p[i:], swapped)
}
