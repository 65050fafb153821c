package simd

import "unsafe"

// unitLen8Scalar returns the index of the first zero byte, or len(p).
func unitLen8Scalar(p []byte) int {
	for i, b := range p {
		if b == 0 {
			return i
		}
	}
	return len(p)
}

func unitLen16Scalar(p []uint16) int {
	for i, u := range p {
		if u == 0 {
			return i
		}
	}
	return len(p)
}

func unitLen32Scalar(p []uint32) int {
	for i, u := range p {
		if u == 0 {
			return i
		}
	}
	return len(p)
}

// unitLen8Blocks scans aligned blocks of the given byte width. The bytes
// before the first aligned address are checked one at a time; inside a
// block each 8-byte word is tested for a zero lane and the first hit is
// located exactly.
func unitLen8Blocks(p []byte, block int) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	base := unsafe.Pointer(unsafe.SliceData(p))
	i := min(alignPrefix(base, block), n)
	for j := 0; j < i; j++ {
		if p[j] == 0 {
			return j
		}
	}
	for ; i+block <= n; i += block {
		for w := 0; w < block; w += 8 {
			if m := zeroLanes8(word(base, i+w)); m != 0 {
				return i + w + firstLane(m, 8)
			}
		}
	}
	for ; i < n; i++ {
		if p[i] == 0 {
			return i
		}
	}
	return n
}

// unitLen16Blocks is unitLen8Blocks for 16-bit units. Offsets inside the
// block loop are in bytes; i counts units.
func unitLen16Blocks(p []uint16, block int) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	base := unsafe.Pointer(unsafe.SliceData(p))
	i := min(alignPrefix(base, block)/2, n)
	for j := 0; j < i; j++ {
		if p[j] == 0 {
			return j
		}
	}
	per := block / 2
	for ; i+per <= n; i += per {
		for w := 0; w < block; w += 8 {
			if m := zeroLanes16(word(base, 2*i+w)); m != 0 {
				return i + w/2 + firstLane(m, 16)
			}
		}
	}
	for ; i < n; i++ {
		if p[i] == 0 {
			return i
		}
	}
	return n
}

// unitLen32Blocks is unitLen8Blocks for 32-bit units.
func unitLen32Blocks(p []uint32, block int) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	base := unsafe.Pointer(unsafe.SliceData(p))
	i := min(alignPrefix(base, block)/4, n)
	for j := 0; j < i; j++ {
		if p[j] == 0 {
			return j
		}
	}
	per := block / 4
	for ; i+per <= n; i += per {
		for w := 0; w < block; w += 8 {
			if m := zeroLanes32(word(base, 4*i+w)); m != 0 {
				return i + w/4 + firstLane(m, 32)
			}
		}
	}
	for ; i < n; i++ {
		if p[i] == 0 {
			return i
		}
	}
	return n
}
