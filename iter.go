package magicstring

import "unicode/utf8"

// Iter yields a view's window-adjusted segments in order. It is
// double-ended: Next consumes from the front, NextBack from the back, and
// the two ends meet in the middle. Iterators are single-use; obtain a
// fresh one from Text.Iter for every traversal.
type Iter interface {
	Next() (string, bool)
	NextBack() (string, bool)
}

// segmentIter walks the segments of a leaf window, applying the edge
// offset to the first and last segment as they are produced.
type segmentIter struct {
	segments []string
	off      offset
	front    int // segments consumed from the front
	back     int // segments consumed from the back
}

func (it *segmentIter) Next() (string, bool) {
	if it.front+it.back >= len(it.segments) {
		return "", false
	}
	i := it.front
	it.front++
	return it.adjusted(i), true
}

func (it *segmentIter) NextBack() (string, bool) {
	if it.front+it.back >= len(it.segments) {
		return "", false
	}
	it.back++
	return it.adjusted(len(it.segments) - it.back), true
}

// adjusted returns segment i with the edge offset applied. Only the first
// and last segment of the window are ever trimmed.
func (it *segmentIter) adjusted(i int) string {
	seg := it.segments[i]
	start, end := 0, len(seg)
	if i == 0 {
		start = it.off.startTrim()
	}
	if i == len(it.segments)-1 {
		end = len(seg) - it.off.endTrim()
	}
	return seg[start:end]
}

// chainIter yields every segment of left followed by every segment of
// right. Each side tracks its own exhaustion, so front and back traversal
// stay consistent when they cross the join point.
type chainIter struct {
	left  Iter
	right Iter
}

func (it *chainIter) Next() (string, bool) {
	if seg, ok := it.left.Next(); ok {
		return seg, true
	}
	return it.right.Next()
}

func (it *chainIter) NextBack() (string, bool) {
	if seg, ok := it.right.NextBack(); ok {
		return seg, true
	}
	return it.left.NextBack()
}

// Bytes iterates over the bytes of a view by flattening its segments.
type Bytes struct {
	inner   Iter
	current string
	b       byte
}

func newBytes(inner Iter) *Bytes { return &Bytes{inner: inner} }

func (it *Bytes) Next() bool {
	for it.current == "" {
		seg, ok := it.inner.Next()
		if !ok {
			return false
		}
		it.current = seg
	}
	it.b = it.current[0]
	it.current = it.current[1:]
	return true
}

// Byte returns the byte at the iterator's current position.
func (it *Bytes) Byte() byte { return it.b }

// Runes iterates over the runes of a view by flattening its segments.
type Runes struct {
	inner   Iter
	current string
	r       rune
}

func newRunes(inner Iter) *Runes { return &Runes{inner: inner} }

func (it *Runes) Next() bool {
	for it.current == "" {
		seg, ok := it.inner.Next()
		if !ok {
			return false
		}
		it.current = seg
	}
	r, size := utf8.DecodeRuneInString(it.current)
	it.r = r
	it.current = it.current[size:]
	return true
}

// Rune returns the rune at the iterator's current position.
func (it *Runes) Rune() rune { return it.r }

// RuneIndices iterates over the runes of a view together with their byte
// offset from the start of the view. The base offset accumulates per
// consumed segment, so indices stay global through concatenation: the
// right side of a chained iterator is rebased by everything before it.
type RuneIndices struct {
	inner   Iter
	current string
	base    int // bytes of fully consumed segments
	pos     int // bytes consumed of the current segment
	idx     int
	r       rune
}

func newRuneIndices(inner Iter) *RuneIndices { return &RuneIndices{inner: inner} }

func (it *RuneIndices) Next() bool {
	for it.current == "" {
		if it.pos > 0 {
			it.base += it.pos
			it.pos = 0
		}
		seg, ok := it.inner.Next()
		if !ok {
			return false
		}
		it.current = seg
	}
	r, size := utf8.DecodeRuneInString(it.current)
	it.idx = it.base + it.pos
	it.r = r
	it.pos += size
	it.current = it.current[size:]
	return true
}

// Index returns the byte offset of the current rune from the start of the view.
func (it *RuneIndices) Index() int { return it.idx }

// Rune returns the rune at the iterator's current position.
func (it *RuneIndices) Rune() rune { return it.r }
