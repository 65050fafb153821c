package coretext

import (
	"iter"
	"unsafe"

	"github.com/coregx/coretext/unit"
)

// Iterator is a bidirectional cursor over the code points of a buffer.
//
// It moves one code point at a time: forward by the length the lead unit
// announces, backward over continuation units. Moving outside the buffer is
// a programming error and panics on the next access.
type Iterator[T unit.Unit] struct {
	buf []T
	off int
}

// NewIterator returns an iterator at the first code point of buf.
func NewIterator[T unit.Unit](buf []T) Iterator[T] {
	return Iterator[T]{buf: buf}
}

// IteratorAt returns an iterator at unit offset off, which must be a code
// point boundary.
func IteratorAt[T unit.Unit](buf []T, off int) Iterator[T] {
	return Iterator[T]{buf: buf, off: off}
}

// Advance moves to the next code point and returns it.
func (it *Iterator[T]) Advance() *Iterator[T] {
	it.off += it.buf[it.off].SequenceLength()
	return it
}

// Retreat moves to the previous code point and returns it.
func (it *Iterator[T]) Retreat() *Iterator[T] {
	it.off = prev(it.buf, it.off)
	return it
}

// PostAdvance moves to the next code point and returns a copy of the
// iterator from before the move.
func (it *Iterator[T]) PostAdvance() Iterator[T] {
	old := *it
	it.Advance()
	return old
}

// PostRetreat moves to the previous code point and returns a copy of the
// iterator from before the move.
func (it *Iterator[T]) PostRetreat() Iterator[T] {
	old := *it
	it.Retreat()
	return old
}

// Value decodes the code point at the current position. A malformed
// sequence decodes to U+FFFD.
func (it Iterator[T]) Value() rune {
	r, _ := decodeAt(it.buf, it.off)
	return r
}

// Offset returns the current unit offset.
func (it Iterator[T]) Offset() int {
	return it.off
}

// Equal reports whether both iterators point at the same unit of the same
// buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return unsafe.SliceData(it.buf) == unsafe.SliceData(other.buf) && it.off == other.off
}

// Scalars returns an iterator over the unit offset and value of every code
// point before the logical end of buf.
//
// Example:
//
//	for off, r := range coretext.Scalars(buf) {
//	    fmt.Println(off, string(r))
//	}
func Scalars[T unit.Unit](buf []T) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		end := UnitLen(buf)
		for off := 0; off < end; off = next(buf, off, end) {
			r, _ := decodeAt(buf, off)
			if !yield(off, r) {
				return
			}
		}
	}
}
