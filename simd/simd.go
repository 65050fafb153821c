// Package simd provides the scanning kernels behind coretext: terminator
// search, code-point counting and range counting over raw UTF-8, UTF-16 and
// UTF-32 unit slices.
//
// Each operation has a scalar reference and a family of block kernels that
// test 64-bit words lane by lane (SWAR). The kernels differ in the aligned
// block width they consume per iteration, which is matched to the widest
// vector register the CPU reports through golang.org/x/sys/cpu. The choice is
// made once per operation, on first use, and cached for the life of the
// process.
//
// A code point is counted for every unit that is not a continuation unit
// (UTF-8 bytes 0x80-0xBF, UTF-16 trail surrogates). All tiers agree on every
// input, including malformed input.
//
// Slices passed to the 16-bit and 32-bit functions hold units in memory
// order: the LE and BE variants describe how the bytes are stored, not the
// host order.
package simd

// UnitLen8 returns the number of bytes before the first zero byte, or len(p)
// if there is none.
func UnitLen8(p []byte) int {
	return unitLen8Slot.get()(p)
}

// UnitLen16 returns the number of units before the first zero unit.
// Byte order does not matter for a zero test.
func UnitLen16(p []uint16) int {
	return unitLen16Slot.get()(p)
}

// UnitLen32 returns the number of units before the first zero unit.
func UnitLen32(p []uint32) int {
	return unitLen32Slot.get()(p)
}

// Len8 scans UTF-8 up to the first zero byte and returns both the code point
// count and the byte count.
//
// Example:
//
//	info := simd.Len8([]byte("10μ¼\x00tail"))
//	// info == LenInfo{Scalars: 4, Units: 6}
func Len8(p []byte) LenInfo {
	return len8Slot.get()(p)
}

// Len16LE is Len8 for little-endian UTF-16.
func Len16LE(p []uint16) LenInfo {
	return len16LESlot.get()(p)
}

// Len16BE is Len8 for big-endian UTF-16.
func Len16BE(p []uint16) LenInfo {
	return len16BESlot.get()(p)
}

// Count8 returns the number of code points in all of p. Zero bytes do not
// terminate the count.
func Count8(p []byte) int {
	return count8Slot.get()(p)
}

// Count16LE returns the number of code points in all of p.
func Count16LE(p []uint16) int {
	return count16LESlot.get()(p)
}

// Count16BE returns the number of code points in all of p.
func Count16BE(p []uint16) int {
	return count16BESlot.get()(p)
}
