package coretext

import "github.com/coregx/coretext/unit"

// Middle is an indexing checkpoint for one buffer: its code point count and
// the unit offset of code point (Count-1)/2. The zero value describes an
// empty buffer.
type Middle struct {
	Count  int
	Offset int
}

// Index returns the code point index that Offset points at.
func (m Middle) Index() int {
	if m.Count == 0 {
		return 0
	}
	return (m.Count - 1) / 2
}

// CountAndMiddle counts the code points in buf[:unitLen] and locates the
// middle one.
//
// The units are split at unitLen/2, the split is moved forward to the next
// code point boundary, and each half is counted separately. The split is
// then walked forward or backward by however many code points separate it
// from the middle index. The walk covers at most the imbalance between the
// halves, so the cost is dominated by the two range counts.
func CountAndMiddle[T unit.Unit](buf []T, unitLen int) Middle {
	if unitLen == 0 {
		return Middle{}
	}
	if fixedWidth[T]() {
		return Middle{Count: unitLen, Offset: (unitLen - 1) / 2}
	}
	buf = buf[:unitLen]
	split := unitLen / 2
	for split < unitLen && buf[split].IsTrail() {
		split++
	}
	lhs := CountLen(buf, split)
	rhs := CountLen(buf[split:], unitLen-split)
	m := Middle{Count: lhs + rhs, Offset: split}

	// buf[split] starts code point lhs.
	target := m.Index()
	for i := lhs; i < target; i++ {
		m.Offset = next(buf, m.Offset, unitLen)
	}
	for i := lhs; i > target; i-- {
		m.Offset = prev(buf, m.Offset)
	}
	return m
}

// IndexFrontCached returns code point i of buf, walking from the start, the
// middle or the end, whichever is closest to i. m must come from
// CountAndMiddle(buf, len(buf)).
func IndexFrontCached[T unit.Unit](buf []T, m Middle, i int) rune {
	if fixedWidth[T]() {
		r, _ := decodeAt(buf, i)
		return r
	}
	mid := m.Index()
	fromEnd := m.Count - 1 - i
	var off int
	switch {
	case i <= mid && i <= mid-i:
		off = OffsetFront(buf, i)
	case i <= mid:
		off = OffsetBack(buf, m.Offset, mid-i-1)
	case i-mid <= fromEnd:
		off = m.Offset
		for k := mid; k < i; k++ {
			off = next(buf, off, len(buf))
		}
	default:
		off = OffsetBack(buf, len(buf), fromEnd)
	}
	r, _ := decodeAt(buf, off)
	return r
}

// IndexBackCached returns code point i of buf counting from the end, using
// the checkpoint m like IndexFrontCached.
func IndexBackCached[T unit.Unit](buf []T, m Middle, i int) rune {
	return IndexFrontCached(buf, m, m.Count-1-i)
}
