package simd

import (
	"bytes"
	"fmt"
	"testing"
)

// boundarySizes covers the word and block edges of every tier.
var boundarySizes = []int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	15, 16, 17, 31, 32, 33, 63, 64, 65,
	127, 128, 129, 255, 256, 257, 1000,
}

func unitLen8Oracle(p []byte) int {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return i
	}
	return len(p)
}

func TestUnitLen8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  int
	}{
		{"nil", nil, 0},
		{"only_nul", []byte{0}, 0},
		{"no_nul", []byte("hello"), 5},
		{"nul_in_middle", []byte("hel\x00lo"), 3},
		{"utf8", []byte("10μ¼\x00"), 6},
		{"high_bytes", []byte{0x80, 0xFF, 0x01, 0x00}, 3},
		{"long", append(bytes.Repeat([]byte{'x'}, 100), 0), 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, tier := range Tiers(OpUnitLen8) {
				fn, _ := ImplUnitLen8(tier)
				if got := fn(tc.input); got != tc.want {
					t.Errorf("%s: UnitLen8(%q) = %d, want %d", tier, tc.input, got, tc.want)
				}
			}
			if got := UnitLen8(tc.input); got != tc.want {
				t.Errorf("UnitLen8(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

// TestUnitLen8_Positions places the terminator at every position of every
// window, for every alignment offset.
func TestUnitLen8_Positions(t *testing.T) {
	buf := bytes.Repeat([]byte{0xAA}, 64+200)
	for _, tier := range Tiers(OpUnitLen8) {
		fn, _ := ImplUnitLen8(tier)
		for offset := 0; offset < 64; offset++ {
			for _, size := range boundarySizes[:22] {
				window := buf[offset : offset+size]
				if got := fn(window); got != size {
					t.Fatalf("%s offset=%d size=%d: got %d, want %d", tier, offset, size, got, size)
				}
				for pos := 0; pos < size; pos++ {
					window[pos] = 0
					got := fn(window)
					window[pos] = 0xAA
					if got != pos {
						t.Fatalf("%s offset=%d size=%d pos=%d: got %d", tier, offset, size, pos, got)
					}
				}
			}
		}
	}
}

func TestUnitLen16_Positions(t *testing.T) {
	buf := make([]uint16, 32+200)
	for i := range buf {
		buf[i] = 0x0100 // zero low byte must not look like a terminator
	}
	for _, tier := range Tiers(OpUnitLen16) {
		fn, _ := ImplUnitLen16(tier)
		for offset := 0; offset < 32; offset++ {
			for _, size := range boundarySizes[:22] {
				window := buf[offset : offset+size]
				if got := fn(window); got != size {
					t.Fatalf("%s offset=%d size=%d: got %d", tier, offset, size, got)
				}
				for pos := 0; pos < size; pos++ {
					window[pos] = 0
					got := fn(window)
					window[pos] = 0x0100
					if got != pos {
						t.Fatalf("%s offset=%d size=%d pos=%d: got %d", tier, offset, size, pos, got)
					}
				}
			}
		}
	}
}

func TestUnitLen32_Positions(t *testing.T) {
	buf := make([]uint32, 16+200)
	for i := range buf {
		buf[i] = 0x00010000
	}
	for _, tier := range Tiers(OpUnitLen32) {
		fn, _ := ImplUnitLen32(tier)
		for offset := 0; offset < 16; offset++ {
			for _, size := range boundarySizes[:22] {
				window := buf[offset : offset+size]
				if got := fn(window); got != size {
					t.Fatalf("%s offset=%d size=%d: got %d", tier, offset, size, got)
				}
				for pos := 0; pos < size; pos++ {
					window[pos] = 0
					got := fn(window)
					window[pos] = 0x00010000
					if got != pos {
						t.Fatalf("%s offset=%d size=%d pos=%d: got %d", tier, offset, size, pos, got)
					}
				}
			}
		}
	}
}

func FuzzUnitLen8(f *testing.F) {
	f.Add([]byte("hello\x00world"))
	f.Add([]byte{})
	f.Add(bytes.Repeat([]byte{0xFF}, 70))
	f.Fuzz(func(t *testing.T, data []byte) {
		want := unitLen8Oracle(data)
		for _, tier := range Tiers(OpUnitLen8) {
			fn, _ := ImplUnitLen8(tier)
			if got := fn(data); got != want {
				t.Errorf("%s: got %d, want %d", tier, got, want)
			}
		}
	})
}

func BenchmarkUnitLen8(b *testing.B) {
	for _, size := range []int{16, 64, 1024, 64 * 1024} {
		data := append(bytes.Repeat([]byte{'a'}, size), 0)
		for _, tier := range Tiers(OpUnitLen8) {
			fn, _ := ImplUnitLen8(tier)
			b.Run(fmt.Sprintf("%s/%d", tier, size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for i := 0; i < b.N; i++ {
					_ = fn(data)
				}
			})
		}
	}
}
