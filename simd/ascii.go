package simd

import "unsafe"

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
//
// Bytes are checked one at a time up to the first 8-byte aligned address,
// then a word at a time: a word is all ASCII when word&0x8080808080808080
// is zero.
//
// Example:
//
//	if simd.IsASCII(data) {
//	    // every byte is a complete code point
//	}
func IsASCII(data []byte) bool {
	return FirstNonASCII(data) < 0
}

// FirstNonASCII returns the index of the first non-ASCII byte, or -1 if all
// bytes are ASCII.
func FirstNonASCII(data []byte) int {
	n := len(data)
	if n == 0 {
		return -1
	}
	base := unsafe.Pointer(unsafe.SliceData(data))
	i := min(alignPrefix(base, 8), n)
	for j := 0; j < i; j++ {
		if data[j] >= 0x80 {
			return j
		}
	}
	for ; i+8 <= n; i += 8 {
		if m := word(base, i) & hi8; m != 0 {
			return i + firstLane(m, 8)
		}
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return i
		}
	}
	return -1
}
