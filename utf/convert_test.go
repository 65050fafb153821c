package utf

import (
	"bytes"
	"testing"
	"unicode/utf16"

	"github.com/coregx/coretext/unit"
)

func TestToUTF8_ASCII(t *testing.T) {
	src := unit.Units8[unit.ASCII]([]byte("plain text"))
	dst := make([]byte, 32)
	nDst, nSrc, err := ToUTF8(dst, src)
	if err != NoError || nSrc != len(src) || string(dst[:nDst]) != "plain text" {
		t.Errorf("ToUTF8 = (%d, %d, %v)", nDst, nSrc, err)
	}

	nDst, nSrc, err = ToUTF8(dst[:4], src)
	if err != NotEnoughSpace || nDst != 4 || nSrc != 4 {
		t.Errorf("short dst = (%d, %d, %v)", nDst, nSrc, err)
	}

	bad := unit.Units8[unit.ASCII]([]byte("ab\x80c"))
	nDst, nSrc, err = ToUTF8(dst, bad)
	if err != InvalidInput || nDst != 2 || nSrc != 2 {
		t.Errorf("high byte = (%d, %d, %v)", nDst, nSrc, err)
	}
}

func TestToUTF8_UTF8(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		dstSize int
		wantDst int
		wantSrc int
		wantErr ConvError
	}{
		{"valid", "10μ¼ and more", 32, 15, 15, NoError},
		{"exact", "10μ¼", 6, 6, 6, NoError},
		{"split_multibyte", "10μ¼", 5, 4, 4, NotEnoughSpace},
		{"split_ascii_run", "hello", 3, 3, 3, NotEnoughSpace},
		{"overlong", "ab\xC0\x80", 32, 2, 2, InvalidInput},
		{"surrogate", "\xED\xA0\x80", 32, 0, 0, InvalidInput},
		{"truncated", "a\xE1\x84", 32, 1, 1, InvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, tc.dstSize)
			src := unit.Units8[unit.Char8]([]byte(tc.input))
			nDst, nSrc, err := ToUTF8(dst, src)
			if nDst != tc.wantDst || nSrc != tc.wantSrc || err != tc.wantErr {
				t.Errorf("got (%d, %d, %v), want (%d, %d, %v)",
					nDst, nSrc, err, tc.wantDst, tc.wantSrc, tc.wantErr)
			}
			if !bytes.Equal(dst[:nDst], []byte(tc.input)[:nDst]) {
				t.Errorf("output %q is not a prefix of the input", dst[:nDst])
			}
		})
	}
}

func TestToUTF8_UTF16(t *testing.T) {
	text := "10μ¼ 😀 ᄀ"
	units := utf16.Encode([]rune(text))
	dst := make([]byte, 64)

	le := char16s[unit.Char16LE](units...)
	nDst, nSrc, err := ToUTF8(dst, le)
	if err != NoError || nSrc != len(units) || string(dst[:nDst]) != text {
		t.Errorf("LE = (%d, %d, %v) %q", nDst, nSrc, err, dst[:nDst])
	}
	be := char16s[unit.Char16BE](units...)
	nDst, _, err = ToUTF8(dst, be)
	if err != NoError || string(dst[:nDst]) != text {
		t.Errorf("BE = %v %q", err, dst[:nDst])
	}

	// The pair must not be split across a short buffer.
	nDst, nSrc, err = ToUTF8(dst[:9], le)
	if err != NotEnoughSpace || nDst != 7 || nSrc != 5 {
		t.Errorf("short = (%d, %d, %v), want (7, 5, NotEnoughSpace)", nDst, nSrc, err)
	}

	lone := char16s[unit.Char16LE]('a', 0xD800, 'b')
	if nDst, nSrc, err := ToUTF8(dst, lone); err != InvalidInput || nDst != 1 || nSrc != 1 {
		t.Errorf("lone lead = (%d, %d, %v)", nDst, nSrc, err)
	}
	trail := char16s[unit.Char16BE](0xDC00)
	if _, nSrc, err := ToUTF8(dst, trail); err != InvalidInput || nSrc != 0 {
		t.Errorf("lone trail = (%d, %v)", nSrc, err)
	}
	end := char16s[unit.Char16LE]('a', 0xD83D)
	if _, nSrc, err := ToUTF8(dst, end); err != InvalidInput || nSrc != 1 {
		t.Errorf("lead at end = (%d, %v)", nSrc, err)
	}
}

func TestToUTF8_UTF32(t *testing.T) {
	src := []unit.Char32BE{
		unit.NewChar32BE('1'), unit.NewChar32BE(0x3BC), unit.NewChar32BE(0x1F600),
		unit.NewChar32BE(0x110000),
	}
	dst := make([]byte, 16)
	nDst, nSrc, err := ToUTF8(dst, src)
	if err != InvalidInput || nSrc != 3 || string(dst[:nDst]) != "1μ😀" {
		t.Errorf("ToUTF8 = (%d, %d, %v) %q", nDst, nSrc, err, dst[:nDst])
	}
}

func TestFromUTF8(t *testing.T) {
	text := "10μ¼ 😀"
	want16 := utf16.Encode([]rune(text))

	le := make([]unit.Char16LE, 16)
	n, nSrc, err := FromUTF8(le, []byte(text))
	if err != NoError || nSrc != len(text) || n != len(want16) {
		t.Fatalf("FromUTF8 LE = (%d, %d, %v)", n, nSrc, err)
	}
	for i, u := range want16 {
		if le[i].AsHost() != u {
			t.Errorf("LE unit %d = %#x, want %#x", i, le[i].AsHost(), u)
		}
	}

	be := make([]unit.Char16BE, 6)
	n, nSrc, err = FromUTF8(be, []byte(text))
	if err != NotEnoughSpace || n != 5 || nSrc != 7 {
		t.Errorf("short BE = (%d, %d, %v), want (5, 7, NotEnoughSpace)", n, nSrc, err)
	}

	wide := make([]unit.Char32LE, 8)
	n, _, err = FromUTF8(wide, []byte(text))
	if err != NoError || n != 6 || wide[5].AsHost() != 0x1F600 {
		t.Errorf("FromUTF8 32 = (%d, %v) last %#x", n, err, wide[5].AsHost())
	}

	if _, nSrc, err := FromUTF8(wide, []byte("ok\xFF")); err != InvalidInput || nSrc != 2 {
		t.Errorf("invalid = (%d, %v)", nSrc, err)
	}
}

// roundTripWide converts text to T and back from inside a generic
// function, so both conversions are instantiated through Wide.
func roundTripWide[T Wide](t *testing.T, text string) {
	t.Helper()
	units := make([]T, len(text))
	n, _, err := FromUTF8(units, []byte(text))
	if err != NoError {
		t.Fatalf("%s: FromUTF8 = %v", unit.EncodingOf[T](), err)
	}
	out := make([]byte, len(text))
	m, nSrc, err := ToUTF8(out, units[:n])
	if err != NoError || nSrc != n || string(out[:m]) != text {
		t.Errorf("%s: round trip = %q (%v)", unit.EncodingOf[T](), out[:m], err)
	}
}

func TestWideRoundTrip(t *testing.T) {
	const text = "10μ¼ 😀\U0010FFFF"
	roundTripWide[unit.Char16LE](t, text)
	roundTripWide[unit.Char16BE](t, text)
	roundTripWide[unit.Char32LE](t, text)
	roundTripWide[unit.Char32BE](t, text)
}

func FuzzFromUTF8RoundTrip(f *testing.F) {
	f.Add("10μ¼")
	f.Add("😀ᄀ\x00")
	f.Fuzz(func(t *testing.T, s string) {
		units := make([]unit.Char16BE, 2*len(s))
		n, _, err := FromUTF8(units, []byte(s))
		if !ValidUTF8([]byte(s)) {
			if err != InvalidInput {
				t.Fatalf("invalid input accepted: %v", err)
			}
			return
		}
		if err != NoError {
			t.Fatalf("FromUTF8(%q): %v", s, err)
		}
		out := make([]byte, len(s))
		m, _, err := ToUTF8(out, units[:n])
		if err != NoError || string(out[:m]) != s {
			t.Fatalf("round trip %q -> %q (%v)", s, out[:m], err)
		}
	})
}
