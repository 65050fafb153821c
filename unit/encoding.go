// Package unit models the code units of the supported Unicode encodings.
//
// Every encoding has a value type holding one code unit in the byte order of
// that encoding: ASCII, Char8, Char16LE, Char16BE, Char32LE and Char32BE. The
// stored bits are exactly what sits in memory, so a []Char16BE can be handed
// to code expecting big endian UTF-16 bytes without conversion. Constructors
// take host-order values and convert them; AsHost converts back.
//
// The package also holds the sequence-length classifier: pure functions that
// tell how many units the code point beginning at a unit occupies, and the
// dual predicates (trail byte, trail surrogate) used when walking backward.
package unit

// Encoding identifies a text encoding.
type Encoding uint8

const (
	// EncASCII is 7-bit ASCII stored in bytes.
	EncASCII Encoding = iota
	// EncUTF8 is UTF-8.
	EncUTF8
	// EncUTF16LE is little endian UTF-16.
	EncUTF16LE
	// EncUTF16BE is big endian UTF-16.
	EncUTF16BE
	// EncUTF32LE is little endian UTF-32.
	EncUTF32LE
	// EncUTF32BE is big endian UTF-32.
	EncUTF32BE

	encodingCount
)

var encodingNames = [encodingCount]string{
	EncASCII:   "ASCII",
	EncUTF8:    "UTF-8",
	EncUTF16LE: "UTF-16LE",
	EncUTF16BE: "UTF-16BE",
	EncUTF32LE: "UTF-32LE",
	EncUTF32BE: "UTF-32BE",
}

// String returns the IANA-style name of the encoding.
func (e Encoding) String() string {
	if e < encodingCount {
		return encodingNames[e]
	}
	return "Encoding(invalid)"
}

// IsValid reports whether e is one of the six defined encodings.
func (e Encoding) IsValid() bool {
	return e < encodingCount
}

// UnitSize returns the size in bytes of one code unit of e.
func (e Encoding) UnitSize() int {
	switch e {
	case EncUTF16LE, EncUTF16BE:
		return 2
	case EncUTF32LE, EncUTF32BE:
		return 4
	}
	return 1
}

// IsVariable reports whether a code point may need more than one unit in e.
// This is true for UTF-8 and both UTF-16 byte orders.
func (e Encoding) IsVariable() bool {
	return e == EncUTF8 || e == EncUTF16LE || e == EncUTF16BE
}

// IsSwapped reports whether units of e are stored in the opposite byte order
// of the host. Single-byte encodings are never swapped.
func (e Encoding) IsSwapped() bool {
	switch e {
	case EncUTF16LE, EncUTF32LE:
		return nativeBig
	case EncUTF16BE, EncUTF32BE:
		return !nativeBig
	}
	return false
}
