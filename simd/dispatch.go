package simd

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/coregx/coretext/endian"
)

// Op names a dispatched scanning operation.
type Op uint8

const (
	OpUnitLen8 Op = iota
	OpUnitLen16
	OpUnitLen32
	OpLen8
	OpLen16LE
	OpLen16BE
	OpCount8
	OpCount16LE
	OpCount16BE

	opCount
)

var opNames = [opCount]string{
	OpUnitLen8:  "unitlen8",
	OpUnitLen16: "unitlen16",
	OpUnitLen32: "unitlen32",
	OpLen8:      "len8",
	OpLen16LE:   "len16le",
	OpLen16BE:   "len16be",
	OpCount8:    "count8",
	OpCount16LE: "count16le",
	OpCount16BE: "count16be",
}

func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Ops returns every dispatched operation.
func Ops() []Op {
	ops := make([]Op, opCount)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

var supportedTiers = sync.OnceValue(probeTiers)

type choice[F any] struct {
	fn   F
	tier Tier
}

// slot holds the implementations of one operation and caches the selected
// one. The cache is written at most once by a successful CompareAndSwap;
// racing resolvers compute the same choice and adopt the stored one.
type slot[F any] struct {
	op    Op
	impls map[Tier]F
	cache atomic.Pointer[choice[F]]
}

func (s *slot[F]) get() F {
	if c := s.cache.Load(); c != nil {
		return c.fn
	}
	return s.resolve().fn
}

func (s *slot[F]) resolve() *choice[F] {
	resolvedAny.Store(true)
	cfg := currentConfig()
	set := supportedTiers()
	c := &choice[F]{fn: s.impls[TierScalar], tier: TierScalar}
	for t := min(cfg.MaxTier, tierCount-1); t > TierScalar; t-- {
		if fn, ok := s.impls[t]; ok && set[t] {
			c = &choice[F]{fn: fn, tier: t}
			break
		}
	}
	if s.cache.CompareAndSwap(nil, c) {
		Logger().Debug("selected implementation",
			zap.Stringer("op", s.op),
			zap.Stringer("tier", c.tier))
		return c
	}
	return s.cache.Load()
}

func (s *slot[F]) selected() Tier {
	if c := s.cache.Load(); c != nil {
		return c.tier
	}
	return s.resolve().tier
}

func (s *slot[F]) impl(t Tier) (F, bool) {
	fn, ok := s.impls[t]
	return fn, ok
}

func (s *slot[F]) tiers() []Tier {
	out := make([]Tier, 0, len(s.impls))
	for t := TierScalar; t < tierCount; t++ {
		if _, ok := s.impls[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

type resolver interface {
	selected() Tier
	tiers() []Tier
}

// blocks builds the vector tiers of an operation from its block kernel.
func blocks[F any](scalar F, kernel func(block int) F) map[Tier]F {
	m := map[Tier]F{TierScalar: scalar}
	for t := TierSWAR; t < tierCount; t++ {
		m[t] = kernel(t.Width())
	}
	return m
}

// swap16LE and swap16BE report whether little or big endian UTF-16 is
// stored opposite to the host order.
const (
	swap16LE = endian.Native == endian.Big
	swap16BE = endian.Native == endian.Little
)

var (
	unitLen8Slot = slot[func([]byte) int]{
		op: OpUnitLen8,
		impls: blocks(unitLen8Scalar, func(block int) func([]byte) int {
			return func(p []byte) int { return unitLen8Blocks(p, block) }
		}),
	}
	unitLen16Slot = slot[func([]uint16) int]{
		op: OpUnitLen16,
		impls: blocks(unitLen16Scalar, func(block int) func([]uint16) int {
			return func(p []uint16) int { return unitLen16Blocks(p, block) }
		}),
	}
	unitLen32Slot = slot[func([]uint32) int]{
		op: OpUnitLen32,
		impls: blocks(unitLen32Scalar, func(block int) func([]uint32) int {
			return func(p []uint32) int { return unitLen32Blocks(p, block) }
		}),
	}
	len8Slot = slot[func([]byte) LenInfo]{
		op: OpLen8,
		impls: blocks(len8Scalar, func(block int) func([]byte) LenInfo {
			return func(p []byte) LenInfo { return len8Blocks(p, block) }
		}),
	}
	len16LESlot = slot[func([]uint16) LenInfo]{
		op: OpLen16LE,
		impls: blocks(
			func(p []uint16) LenInfo { return len16Scalar(p, swap16LE) },
			func(block int) func([]uint16) LenInfo {
				return func(p []uint16) LenInfo { return len16Blocks(p, block, swap16LE) }
			}),
	}
	len16BESlot = slot[func([]uint16) LenInfo]{
		op: OpLen16BE,
		impls: blocks(
			func(p []uint16) LenInfo { return len16Scalar(p, swap16BE) },
			func(block int) func([]uint16) LenInfo {
				return func(p []uint16) LenInfo { return len16Blocks(p, block, swap16BE) }
			}),
	}
	count8Slot = slot[func([]byte) int]{
		op: OpCount8,
		impls: blocks(count8Scalar, func(block int) func([]byte) int {
			return func(p []byte) int { return count8Blocks(p, block) }
		}),
	}
	count16LESlot = slot[func([]uint16) int]{
		op: OpCount16LE,
		impls: blocks(
			func(p []uint16) int { return count16Scalar(p, swap16LE) },
			func(block int) func([]uint16) int {
				return func(p []uint16) int { return count16Blocks(p, block, swap16LE) }
			}),
	}
	count16BESlot = slot[func([]uint16) int]{
		op: OpCount16BE,
		impls: blocks(
			func(p []uint16) int { return count16Scalar(p, swap16BE) },
			func(block int) func([]uint16) int {
				return func(p []uint16) int { return count16Blocks(p, block, swap16BE) }
			}),
	}
)

var registry = [opCount]resolver{
	OpUnitLen8:  &unitLen8Slot,
	OpUnitLen16: &unitLen16Slot,
	OpUnitLen32: &unitLen32Slot,
	OpLen8:      &len8Slot,
	OpLen16LE:   &len16LESlot,
	OpLen16BE:   &len16BESlot,
	OpCount8:    &count8Slot,
	OpCount16LE: &count16LESlot,
	OpCount16BE: &count16BESlot,
}

// Selected returns the tier op dispatches to, resolving it if needed.
// It panics if op is not a known operation.
func Selected(op Op) Tier {
	return registry[op].selected()
}

// Tiers returns every tier op has an implementation for, narrowest first.
// Tiers the host does not support are included.
func Tiers(op Op) []Tier {
	return registry[op].tiers()
}

// ImplUnitLen8 returns the UnitLen8 implementation of tier t, bypassing the
// dispatch cache. Every implementation is portable Go, so all tiers run on
// any host; only selection depends on the CPU.
func ImplUnitLen8(t Tier) (func([]byte) int, bool) { return unitLen8Slot.impl(t) }

// ImplUnitLen16 returns the UnitLen16 implementation of tier t.
func ImplUnitLen16(t Tier) (func([]uint16) int, bool) { return unitLen16Slot.impl(t) }

// ImplUnitLen32 returns the UnitLen32 implementation of tier t.
func ImplUnitLen32(t Tier) (func([]uint32) int, bool) { return unitLen32Slot.impl(t) }

// ImplLen8 returns the Len8 implementation of tier t.
func ImplLen8(t Tier) (func([]byte) LenInfo, bool) { return len8Slot.impl(t) }

// ImplLen16LE returns the Len16LE implementation of tier t.
func ImplLen16LE(t Tier) (func([]uint16) LenInfo, bool) { return len16LESlot.impl(t) }

// ImplLen16BE returns the Len16BE implementation of tier t.
func ImplLen16BE(t Tier) (func([]uint16) LenInfo, bool) { return len16BESlot.impl(t) }

// ImplCount8 returns the Count8 implementation of tier t.
func ImplCount8(t Tier) (func([]byte) int, bool) { return count8Slot.impl(t) }

// ImplCount16LE returns the Count16LE implementation of tier t.
func ImplCount16LE(t Tier) (func([]uint16) int, bool) { return count16LESlot.impl(t) }

// ImplCount16BE returns the Count16BE implementation of tier t.
func ImplCount16BE(t Tier) (func([]uint16) int, bool) { return count16BESlot.impl(t) }
