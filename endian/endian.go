// Package endian provides byte swapping and host/little/big endian
// conversions for unsigned integers of 1, 2, 4 and 8 bytes.
//
// Swap is the primitive. It is built on math/bits.ReverseBytes*, which the
// compiler lowers to a single BSWAP/REV instruction on every supported
// architecture, and selects the width from the type parameter so the choice
// is made at compile time for each instantiation.
//
// The conversion helpers are no-ops when the host already has the requested
// byte order:
//
//	v := endian.HtoB(uint16(0x1234)) // 0x3412 on little endian hosts
//	endian.BtoH(v)                   // 0x1234 everywhere
package endian

import (
	"math/bits"
	"unsafe"
)

// Order identifies a byte order.
type Order uint8

const (
	// Little is the little endian byte order.
	Little Order = iota
	// Big is the big endian byte order.
	Big
)

// String returns "little" or "big".
func (o Order) String() string {
	if o == Big {
		return "big"
	}
	return "little"
}

// Unsigned is the set of integer types Swap accepts.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Swap reverses the bytes of x. It is the identity for 1-byte values.
func Swap[T Unsigned](x T) T {
	switch unsafe.Sizeof(x) {
	case 2:
		return T(bits.ReverseBytes16(uint16(x)))
	case 4:
		return T(bits.ReverseBytes32(uint32(x)))
	case 8:
		return T(bits.ReverseBytes64(uint64(x)))
	}
	return x
}

// IsLittle reports whether the host is little endian.
func IsLittle() bool {
	return Native == Little
}

// HtoL converts x from host order to little endian.
func HtoL[T Unsigned](x T) T {
	if Native == Little {
		return x
	}
	return Swap(x)
}

// HtoB converts x from host order to big endian.
func HtoB[T Unsigned](x T) T {
	if Native == Big {
		return x
	}
	return Swap(x)
}

// LtoH converts x from little endian to host order.
func LtoH[T Unsigned](x T) T {
	return HtoL(x)
}

// BtoH converts x from big endian to host order.
func BtoH[T Unsigned](x T) T {
	return HtoB(x)
}
