package simd

import (
	"math/bits"
	"unsafe"

	"github.com/coregx/coretext/endian"
)

// Lane constants. lo* keeps every bit of a lane except its top bit, hi*
// keeps only the top bit.
const (
	lo8  = uint64(0x7F7F7F7F7F7F7F7F)
	hi8  = uint64(0x8080808080808080)
	lo16 = uint64(0x7FFF7FFF7FFF7FFF)
	hi16 = uint64(0x8000800080008000)
	lo32 = uint64(0x7FFFFFFF7FFFFFFF)
	hi32 = uint64(0x8000000080000000)
)

// Continuation-unit patterns. A UTF-8 byte is a continuation when
// b&0xC0 == 0x80; a UTF-16 unit is a trail surrogate when u&0xFC00 == 0xDC00.
// The swapped patterns match units stored in the opposite byte order.
const (
	trailMask8         = uint64(0xC0C0C0C0C0C0C0C0)
	trailBits8         = uint64(0x8080808080808080)
	trailMask16        = uint64(0xFC00FC00FC00FC00)
	trailBits16        = uint64(0xDC00DC00DC00DC00)
	trailMask16Swapped = uint64(0x00FC00FC00FC00FC)
	trailBits16Swapped = uint64(0x00DC00DC00DC00DC)
)

// zeroLanes8 returns a mask with the top bit set in exactly those byte lanes
// of v that are zero. Unlike the (v-lo)&^v&hi shortcut the result has no
// false positives above the first zero lane, so it can be popcounted.
func zeroLanes8(v uint64) uint64 {
	return ^(((v & lo8) + lo8) | v) & hi8
}

// zeroLanes16 is zeroLanes8 for 16-bit lanes.
func zeroLanes16(v uint64) uint64 {
	return ^(((v & lo16) + lo16) | v) & hi16
}

// zeroLanes32 is zeroLanes8 for 32-bit lanes.
func zeroLanes32(v uint64) uint64 {
	return ^(((v & lo32) + lo32) | v) & hi32
}

// trailLanes8 marks the UTF-8 continuation bytes of v.
func trailLanes8(v uint64) uint64 {
	return zeroLanes8((v & trailMask8) ^ trailBits8)
}

// trailLanes16 marks the trail surrogates of v using the given pattern pair.
func trailLanes16(v, mask, pattern uint64) uint64 {
	return zeroLanes16((v & mask) ^ pattern)
}

// firstLane returns the memory index of the lowest-addressed marked lane in
// m, a non-zero mask produced by one of the zeroLanes functions.
func firstLane(m uint64, laneBits int) int {
	if endian.Native == endian.Little {
		return bits.TrailingZeros64(m) / laneBits
	}
	return bits.LeadingZeros64(m) / laneBits
}

// word loads the 8 bytes at base+off. off must keep the load inside the
// slice that base points into and be 8-byte aligned relative to memory.
func word(base unsafe.Pointer, off int) uint64 {
	return *(*uint64)(unsafe.Add(base, off))
}

// alignPrefix returns how many bytes separate base from the next multiple
// of block, a power of two.
func alignPrefix(base unsafe.Pointer, block int) int {
	return int(-uintptr(base) & uintptr(block-1))
}
