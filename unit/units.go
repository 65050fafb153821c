package unit

import "github.com/coregx/coretext/endian"

// Unit is the set of code unit types. Generic algorithms over text buffers
// are written against it.
type Unit interface {
	ASCII | Char8 | Char16LE | Char16BE | Char32LE | Char32BE

	// Encoding returns the encoding the unit belongs to.
	Encoding() Encoding
	// Value returns the unit in host order, widened to 32 bits.
	Value() uint32
	// SequenceLength returns how many units the code point starting with
	// this unit occupies.
	SequenceLength() int
	// IsTrail reports whether the unit continues a code point started by an
	// earlier unit.
	IsTrail() bool
	// IsZero reports whether the unit is the terminator.
	IsZero() bool
}

// ASCII is a 7-bit character stored in a byte.
type ASCII struct{ v byte }

// NewASCII returns b as an ASCII unit.
func NewASCII(b byte) ASCII { return ASCII{b} }

// AsHost returns the byte.
func (c ASCII) AsHost() byte { return c.v }

// InEndian returns the stored byte.
func (c ASCII) InEndian() byte { return c.v }

// Value returns the byte widened to 32 bits.
func (c ASCII) Value() uint32 { return uint32(c.v) }

// Encoding returns EncASCII.
func (ASCII) Encoding() Encoding { return EncASCII }

// SequenceLength is always 1.
func (ASCII) SequenceLength() int { return 1 }

// IsTrail is always false.
func (ASCII) IsTrail() bool { return false }

// IsZero reports whether c is NUL.
func (c ASCII) IsZero() bool { return c.v == 0 }

// IsValid reports whether c is below 0x80.
func (c ASCII) IsValid() bool { return c.v < 0x80 }

// Char8 is a UTF-8 code unit.
type Char8 struct{ v byte }

// NewChar8 returns b as a UTF-8 unit.
func NewChar8(b byte) Char8 { return Char8{b} }

// AsHost returns the byte.
func (c Char8) AsHost() byte { return c.v }

// InEndian returns the stored byte.
func (c Char8) InEndian() byte { return c.v }

// Value returns the byte widened to 32 bits.
func (c Char8) Value() uint32 { return uint32(c.v) }

// Encoding returns EncUTF8.
func (Char8) Encoding() Encoding { return EncUTF8 }

// SequenceLength returns SequenceLength8 of the byte.
func (c Char8) SequenceLength() int { return SequenceLength8(c.v) }

// LeadLength returns LeadLength8 of the byte.
func (c Char8) LeadLength() (int, bool) { return LeadLength8(c.v) }

// IsTrail reports whether c is a continuation byte.
func (c Char8) IsTrail() bool { return IsTrail8(c.v) }

// IsValidLead reports whether c can start a sequence.
func (c Char8) IsValidLead() bool { return IsValidLead8(c.v) }

// IsZero reports whether c is NUL.
func (c Char8) IsZero() bool { return c.v == 0 }

// Char16LE is a little endian UTF-16 code unit.
type Char16LE struct{ v uint16 }

// NewChar16LE converts the host-order value v to little endian.
func NewChar16LE(v uint16) Char16LE { return Char16LE{endian.HtoL(v)} }

// AsHost returns the unit in host order.
func (c Char16LE) AsHost() uint16 { return endian.LtoH(c.v) }

// AsLittle returns c.
func (c Char16LE) AsLittle() Char16LE { return c }

// AsBig returns the same unit stored big endian.
func (c Char16LE) AsBig() Char16BE { return Char16BE{endian.Swap(c.v)} }

// InEndian returns the stored little endian bits.
func (c Char16LE) InEndian() uint16 { return c.v }

// Value returns the host-order unit widened to 32 bits.
func (c Char16LE) Value() uint32 { return uint32(c.AsHost()) }

// Encoding returns EncUTF16LE.
func (Char16LE) Encoding() Encoding { return EncUTF16LE }

// SequenceLength returns 2 for a lead surrogate, else 1.
func (c Char16LE) SequenceLength() int { return SequenceLength16(c.AsHost()) }

// IsLeadSurrogate reports whether c is a lead surrogate.
func (c Char16LE) IsLeadSurrogate() bool { return IsLeadSurrogate(c.AsHost()) }

// IsTrailSurrogate reports whether c is a trail surrogate.
func (c Char16LE) IsTrailSurrogate() bool { return IsTrailSurrogate(c.AsHost()) }

// IsTrail is IsTrailSurrogate.
func (c Char16LE) IsTrail() bool { return c.IsTrailSurrogate() }

// IsZero reports whether c is NUL.
func (c Char16LE) IsZero() bool { return c.v == 0 }

// Char16BE is a big endian UTF-16 code unit.
type Char16BE struct{ v uint16 }

// NewChar16BE converts the host-order value v to big endian.
func NewChar16BE(v uint16) Char16BE { return Char16BE{endian.HtoB(v)} }

// AsHost returns the unit in host order.
func (c Char16BE) AsHost() uint16 { return endian.BtoH(c.v) }

// AsLittle returns the same unit stored little endian.
func (c Char16BE) AsLittle() Char16LE { return Char16LE{endian.Swap(c.v)} }

// AsBig returns c.
func (c Char16BE) AsBig() Char16BE { return c }

// InEndian returns the stored big endian bits.
func (c Char16BE) InEndian() uint16 { return c.v }

// Value returns the host-order unit widened to 32 bits.
func (c Char16BE) Value() uint32 { return uint32(c.AsHost()) }

// Encoding returns EncUTF16BE.
func (Char16BE) Encoding() Encoding { return EncUTF16BE }

// SequenceLength returns 2 for a lead surrogate, else 1.
func (c Char16BE) SequenceLength() int { return SequenceLength16(c.AsHost()) }

// IsLeadSurrogate reports whether c is a lead surrogate.
func (c Char16BE) IsLeadSurrogate() bool { return IsLeadSurrogate(c.AsHost()) }

// IsTrailSurrogate reports whether c is a trail surrogate.
func (c Char16BE) IsTrailSurrogate() bool { return IsTrailSurrogate(c.AsHost()) }

// IsTrail is IsTrailSurrogate.
func (c Char16BE) IsTrail() bool { return c.IsTrailSurrogate() }

// IsZero reports whether c is NUL.
func (c Char16BE) IsZero() bool { return c.v == 0 }

// Char32LE is a little endian UTF-32 code unit.
type Char32LE struct{ v uint32 }

// NewChar32LE converts the host-order value v to little endian.
func NewChar32LE(v uint32) Char32LE { return Char32LE{endian.HtoL(v)} }

// AsHost returns the unit in host order.
func (c Char32LE) AsHost() uint32 { return endian.LtoH(c.v) }

// AsLittle returns c.
func (c Char32LE) AsLittle() Char32LE { return c }

// AsBig returns the same unit stored big endian.
func (c Char32LE) AsBig() Char32BE { return Char32BE{endian.Swap(c.v)} }

// InEndian returns the stored little endian bits.
func (c Char32LE) InEndian() uint32 { return c.v }

// Value returns the unit in host order.
func (c Char32LE) Value() uint32 { return c.AsHost() }

// Encoding returns EncUTF32LE.
func (Char32LE) Encoding() Encoding { return EncUTF32LE }

// SequenceLength is always 1.
func (Char32LE) SequenceLength() int { return 1 }

// IsTrail is always false.
func (Char32LE) IsTrail() bool { return false }

// IsZero reports whether c is NUL.
func (c Char32LE) IsZero() bool { return c.v == 0 }

// IsValid reports whether c is at most MaxScalar.
func (c Char32LE) IsValid() bool { return c.AsHost() <= MaxScalar }

// Char32BE is a big endian UTF-32 code unit.
type Char32BE struct{ v uint32 }

// NewChar32BE converts the host-order value v to big endian.
func NewChar32BE(v uint32) Char32BE { return Char32BE{endian.HtoB(v)} }

// AsHost returns the unit in host order.
func (c Char32BE) AsHost() uint32 { return endian.BtoH(c.v) }

// AsLittle returns the same unit stored little endian.
func (c Char32BE) AsLittle() Char32LE { return Char32LE{endian.Swap(c.v)} }

// AsBig returns c.
func (c Char32BE) AsBig() Char32BE { return c }

// InEndian returns the stored big endian bits.
func (c Char32BE) InEndian() uint32 { return c.v }

// Value returns the unit in host order.
func (c Char32BE) Value() uint32 { return c.AsHost() }

// Encoding returns EncUTF32BE.
func (Char32BE) Encoding() Encoding { return EncUTF32BE }

// SequenceLength is always 1.
func (Char32BE) SequenceLength() int { return 1 }

// IsTrail is always false.
func (Char32BE) IsTrail() bool { return false }

// IsZero reports whether c is NUL.
func (c Char32BE) IsZero() bool { return c.v == 0 }

// IsValid reports whether c is at most MaxScalar.
func (c Char32BE) IsValid() bool { return c.AsHost() <= MaxScalar }

// Make builds a unit of type T from a host-order value. Values wider than
// the unit are truncated.
func Make[T Unit](v uint32) T {
	var u T
	switch p := any(&u).(type) {
	case *ASCII:
		*p = NewASCII(byte(v))
	case *Char8:
		*p = NewChar8(byte(v))
	case *Char16LE:
		*p = NewChar16LE(uint16(v))
	case *Char16BE:
		*p = NewChar16BE(uint16(v))
	case *Char32LE:
		*p = NewChar32LE(v)
	case *Char32BE:
		*p = NewChar32BE(v)
	}
	return u
}

// EncodingOf returns the encoding of the unit type T.
func EncodingOf[T Unit]() Encoding {
	var u T
	return u.Encoding()
}
