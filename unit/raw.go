package unit

import "unsafe"

// Raw8 returns the bytes of s without copying.
func Raw8[T ASCII | Char8](s []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// Raw16 returns the stored 16-bit values of s without copying. The values
// are in the byte order of T, not host order.
func Raw16[T Char16LE | Char16BE](s []T) []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// Raw32 returns the stored 32-bit values of s without copying.
func Raw32[T Char32LE | Char32BE](s []T) []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// Units8 is the inverse of Raw8.
func Units8[T ASCII | Char8](p []byte) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(p))), len(p))
}

// Units16 is the inverse of Raw16. The values of p must already be in the
// byte order of T.
func Units16[T Char16LE | Char16BE](p []uint16) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(p))), len(p))
}

// Units32 is the inverse of Raw32.
func Units32[T Char32LE | Char32BE](p []uint32) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(p))), len(p))
}
