package unit

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

func TestSequenceLength8(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want int
		ok   bool
	}{
		{"nul", 0x00, 1, true},
		{"ascii_a", 'a', 1, true},
		{"ascii_del", 0x7F, 1, true},
		{"trail_0x80", 0x80, 1, false},
		{"trail_0xBF", 0xBF, 1, false},
		{"lead2_0xC2", 0xC2, 2, true},
		{"lead2_0xDF", 0xDF, 2, true},
		{"lead3_0xE0", 0xE0, 3, true},
		{"lead3_0xEF", 0xEF, 3, true},
		{"lead4_0xF0", 0xF0, 4, true},
		{"lead4_0xF7", 0xF7, 4, true},
		{"invalid_0xF8", 0xF8, 1, false},
		{"invalid_0xFF", 0xFF, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SequenceLength8(tc.b); got != tc.want {
				t.Errorf("SequenceLength8(%#02x) = %d, want %d", tc.b, got, tc.want)
			}
			n, ok := LeadLength8(tc.b)
			if n != tc.want || ok != tc.ok {
				t.Errorf("LeadLength8(%#02x) = (%d, %v), want (%d, %v)", tc.b, n, ok, tc.want, tc.ok)
			}
			if got := NewChar8(tc.b).SequenceLength(); got != tc.want {
				t.Errorf("Char8.SequenceLength() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTrailAndLead8(t *testing.T) {
	for b := 0; b < 256; b++ {
		trail := b >= 0x80 && b <= 0xBF
		if got := IsTrail8(byte(b)); got != trail {
			t.Errorf("IsTrail8(%#02x) = %v, want %v", b, got, trail)
		}
		lead := b < 0x80 || (b >= 0xC0 && b <= 0xF7)
		if got := IsValidLead8(byte(b)); got != lead {
			t.Errorf("IsValidLead8(%#02x) = %v, want %v", b, got, lead)
		}
		if _, ok := LeadLength8(byte(b)); ok != lead {
			t.Errorf("LeadLength8(%#02x) ok = %v, want %v", b, ok, lead)
		}
	}
}

func TestSequenceLength16(t *testing.T) {
	tests := []struct {
		u     uint16
		want  int
		lead  bool
		trail bool
	}{
		{0x0000, 1, false, false},
		{0x0041, 1, false, false},
		{0xD7FF, 1, false, false},
		{0xD800, 2, true, false},
		{0xDBFF, 2, true, false},
		{0xDC00, 1, false, true},
		{0xDFFF, 1, false, true},
		{0xE000, 1, false, false},
		{0xFFFF, 1, false, false},
	}

	for _, tc := range tests {
		if got := SequenceLength16(tc.u); got != tc.want {
			t.Errorf("SequenceLength16(%#04x) = %d, want %d", tc.u, got, tc.want)
		}
		if got := IsLeadSurrogate(tc.u); got != tc.lead {
			t.Errorf("IsLeadSurrogate(%#04x) = %v", tc.u, got)
		}
		if got := IsTrailSurrogate(tc.u); got != tc.trail {
			t.Errorf("IsTrailSurrogate(%#04x) = %v", tc.u, got)
		}
		if got := NewChar16LE(tc.u).SequenceLength(); got != tc.want {
			t.Errorf("Char16LE(%#04x).SequenceLength() = %d", tc.u, got)
		}
		if got := NewChar16BE(tc.u).SequenceLength(); got != tc.want {
			t.Errorf("Char16BE(%#04x).SequenceLength() = %d", tc.u, got)
		}
		if got := NewChar16BE(tc.u).IsTrail(); got != tc.trail {
			t.Errorf("Char16BE(%#04x).IsTrail() = %v", tc.u, got)
		}
	}
}

func TestFixedWidthClassifier(t *testing.T) {
	for _, v := range []uint32{0, 'a', 0xD800, 0xDC00, 0x10FFFF, 0xFFFFFFFF} {
		if NewChar32LE(v).SequenceLength() != 1 || NewChar32BE(v).SequenceLength() != 1 {
			t.Errorf("UTF-32 sequence length of %#x is not 1", v)
		}
		if NewChar32LE(v).IsTrail() || NewChar32BE(v).IsTrail() {
			t.Errorf("UTF-32 unit %#x reported as trail", v)
		}
		if NewASCII(byte(v)).SequenceLength() != 1 {
			t.Errorf("ASCII sequence length of %#x is not 1", byte(v))
		}
	}
}

// TestMemoryLayout checks that the stored bits are the encoding's bytes.
func TestMemoryLayout(t *testing.T) {
	le := NewChar16LE(0x1234)
	be := NewChar16BE(0x1234)

	leBytes := unsafe.Slice((*byte)(unsafe.Pointer(&le)), 2)
	beBytes := unsafe.Slice((*byte)(unsafe.Pointer(&be)), 2)
	if binary.LittleEndian.Uint16(leBytes) != 0x1234 {
		t.Errorf("Char16LE bytes = % x", leBytes)
	}
	if binary.BigEndian.Uint16(beBytes) != 0x1234 {
		t.Errorf("Char16BE bytes = % x", beBytes)
	}

	le32 := NewChar32LE(0x0010FFFF)
	be32 := NewChar32BE(0x0010FFFF)
	if binary.LittleEndian.Uint32(unsafe.Slice((*byte)(unsafe.Pointer(&le32)), 4)) != 0x0010FFFF {
		t.Error("Char32LE memory layout is not little endian")
	}
	if binary.BigEndian.Uint32(unsafe.Slice((*byte)(unsafe.Pointer(&be32)), 4)) != 0x0010FFFF {
		t.Error("Char32BE memory layout is not big endian")
	}
}

func TestEndianConversions(t *testing.T) {
	for _, v := range []uint16{0, 0x41, 0x8000, 0xD83D, 0xFFFF} {
		le := NewChar16LE(v)
		be := NewChar16BE(v)
		if le.AsHost() != v || be.AsHost() != v {
			t.Errorf("AsHost(%#04x): le=%#04x be=%#04x", v, le.AsHost(), be.AsHost())
		}
		if le.AsBig() != be || be.AsLittle() != le {
			t.Errorf("AsBig/AsLittle mismatch for %#04x", v)
		}
		if le.AsLittle() != le || be.AsBig() != be {
			t.Errorf("same-order conversion is not a no-op for %#04x", v)
		}
		if le.AsBig().AsLittle() != le {
			t.Errorf("round trip through big endian changed %#04x", v)
		}
	}

	for _, v := range []uint32{0, 0x41, 0x10FFFF, 0x110000, 0xDEADBEEF} {
		le := NewChar32LE(v)
		be := NewChar32BE(v)
		if le.AsHost() != v || be.AsHost() != v {
			t.Errorf("AsHost(%#x): le=%#x be=%#x", v, le.AsHost(), be.AsHost())
		}
		if le.AsBig() != be || be.AsLittle() != le {
			t.Errorf("AsBig/AsLittle mismatch for %#x", v)
		}
		if le.IsValid() != (v <= MaxScalar) || be.IsValid() != (v <= MaxScalar) {
			t.Errorf("IsValid(%#x) wrong", v)
		}
	}

	if NewChar16(0x1234).InEndian() != 0x1234 {
		t.Error("host-order Char16 stores a swapped value")
	}
	if NewChar16Other(0x1234).InEndian() != 0x3412 {
		t.Error("Char16Other does not store a swapped value")
	}
	if NewChar32(0x12345678).InEndian() != 0x12345678 {
		t.Error("host-order Char32 stores a swapped value")
	}
	if u := NewChar32Other(0x12345678); u.InEndian() != 0x78563412 || u.AsHost() != 0x12345678 {
		t.Error("Char32Other does not store a swapped value")
	}
	if NewChar16(0xD83D).Encoding() != EncUTF16 || NewChar32(0).Encoding() != EncUTF32 {
		t.Error("host aliases report the wrong encoding")
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		enc      Encoding
		name     string
		size     int
		variable bool
	}{
		{EncASCII, "ASCII", 1, false},
		{EncUTF8, "UTF-8", 1, true},
		{EncUTF16LE, "UTF-16LE", 2, true},
		{EncUTF16BE, "UTF-16BE", 2, true},
		{EncUTF32LE, "UTF-32LE", 4, false},
		{EncUTF32BE, "UTF-32BE", 4, false},
	}

	for _, tc := range tests {
		if tc.enc.String() != tc.name {
			t.Errorf("String() = %q, want %q", tc.enc.String(), tc.name)
		}
		if tc.enc.UnitSize() != tc.size {
			t.Errorf("%s UnitSize() = %d, want %d", tc.name, tc.enc.UnitSize(), tc.size)
		}
		if tc.enc.IsVariable() != tc.variable {
			t.Errorf("%s IsVariable() = %v", tc.name, tc.enc.IsVariable())
		}
		if !tc.enc.IsValid() {
			t.Errorf("%s reported invalid", tc.name)
		}
	}

	if Encoding(42).IsValid() {
		t.Error("Encoding(42) reported valid")
	}
	if EncUTF16.IsSwapped() || EncUTF32.IsSwapped() {
		t.Error("host-order encodings reported swapped")
	}
	if EncUTF8.IsSwapped() || EncASCII.IsSwapped() {
		t.Error("byte encodings reported swapped")
	}
}

func TestMakeAndEncodingOf(t *testing.T) {
	if Make[Char16BE](0xD83D).AsHost() != 0xD83D {
		t.Error("Make[Char16BE] lost the value")
	}
	if Make[Char32LE](0x1F600).AsHost() != 0x1F600 {
		t.Error("Make[Char32LE] lost the value")
	}
	if Make[Char8](0xE2).Value() != 0xE2 {
		t.Error("Make[Char8] lost the value")
	}
	if !Make[ASCII](0).IsZero() {
		t.Error("Make[ASCII](0) is not zero")
	}
	if EncodingOf[Char32BE]() != EncUTF32BE || EncodingOf[Char8]() != EncUTF8 {
		t.Error("EncodingOf returned the wrong encoding")
	}
}

func TestRawViews(t *testing.T) {
	s := []Char16BE{NewChar16BE(0x0102), NewChar16BE(0xD83D)}
	raw := Raw16(s)
	if len(raw) != 2 || raw[0] != s[0].InEndian() || raw[1] != s[1].InEndian() {
		t.Fatalf("Raw16 = %#v", raw)
	}
	back := Units16[Char16BE](raw)
	if &back[0] != &s[0] || back[1] != s[1] {
		t.Errorf("Units16 does not alias the input")
	}

	b := Raw8([]Char8{NewChar8('h'), NewChar8(0xC2)})
	if string(b) != "h\xc2" {
		t.Errorf("Raw8 = %q", b)
	}
	if got := Units8[ASCII]([]byte("ok")); got[1].AsHost() != 'k' {
		t.Errorf("Units8 = %v", got)
	}

	w := Raw32([]Char32LE{NewChar32LE(0x10FFFF)})
	if w[0] != NewChar32LE(0x10FFFF).InEndian() {
		t.Errorf("Raw32 = %#x", w[0])
	}
	if got := Units32[Char32LE](w); got[0].AsHost() != 0x10FFFF {
		t.Errorf("Units32 = %v", got)
	}
	if got := Raw8([]Char8(nil)); len(got) != 0 {
		t.Errorf("Raw8(nil) = %v", got)
	}
}
