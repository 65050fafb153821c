package simd

import (
	"fmt"
	"strings"
)

// Tier identifies one candidate implementation of a scanning operation,
// ranked by the vector width it processes per iteration.
//
// Every tier above TierScalar runs the same SWAR (SIMD Within A Register)
// lane arithmetic on 64-bit words; the tier fixes how many bytes make one
// aligned block. The CPU probe enables a tier when the host has vector
// registers of that width, so the block loop matches the hardware load width.
type Tier uint8

const (
	// TierScalar is the unit-at-a-time reference. It exists for every
	// operation and is the last resort of every dispatch.
	TierScalar Tier = iota
	// TierSWAR processes one 8-byte word per block. Available everywhere.
	TierSWAR
	// TierVec128 processes 16-byte aligned blocks (SSE2, NEON/ASIMD).
	TierVec128
	// TierVec256 processes 32-byte aligned blocks (AVX2).
	TierVec256
	// TierVec512 processes 64-byte aligned blocks (AVX-512BW).
	TierVec512

	tierCount
)

var tierNames = [tierCount]string{
	TierScalar: "scalar",
	TierSWAR:   "swar",
	TierVec128: "vec128",
	TierVec256: "vec256",
	TierVec512: "vec512",
}

// String returns the lower-case tier name, as accepted by ParseTier.
func (t Tier) String() string {
	if t < tierCount {
		return tierNames[t]
	}
	return fmt.Sprintf("Tier(%d)", uint8(t))
}

// Width returns the block size in bytes, or 0 for TierScalar.
func (t Tier) Width() int {
	switch t {
	case TierSWAR:
		return 8
	case TierVec128:
		return 16
	case TierVec256:
		return 32
	case TierVec512:
		return 64
	}
	return 0
}

// ParseTier parses a tier name ("scalar", "swar", "vec128", "vec256",
// "vec512"). Matching is case-insensitive.
func ParseTier(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t := TierScalar; t < tierCount; t++ {
		if tierNames[t] == name {
			return t, nil
		}
	}
	return TierScalar, fmt.Errorf("simd: unknown tier %q", s)
}

// Supported returns the tiers the host can run, widest first. The result is
// computed once per process and never changes.
func Supported() []Tier {
	set := supportedTiers()
	out := make([]Tier, 0, tierCount)
	for t := tierCount - 1; ; t-- {
		if set[t] {
			out = append(out, t)
		}
		if t == TierScalar {
			break
		}
	}
	return out
}
