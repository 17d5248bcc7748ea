package magicstring

// offsetKind tags the four edge-offset variants. Offsets are byte counts
// and never exceed the length of the segment they trim.
type offsetKind uint8

const (
	offsetNone     offsetKind = iota
	offsetStart               // leading bytes of the first segment excluded
	offsetEnd                 // trailing bytes of the last segment excluded
	offsetStartEnd            // both
)

// offset describes how much of a window's first and last segment lies
// outside the window. When the window covers a single segment, both trims
// apply to that segment simultaneously.
type offset struct {
	kind  offsetKind
	start int
	end   int
}

// makeOffset selects the variant carrying the given trims. Zero trims
// collapse toward offsetNone, so windows produced by different operation
// sequences encode identical coverage identically.
func makeOffset(start, end int) offset {
	switch {
	case start > 0 && end > 0:
		return offset{kind: offsetStartEnd, start: start, end: end}
	case start > 0:
		return offset{kind: offsetStart, start: start}
	case end > 0:
		return offset{kind: offsetEnd, end: end}
	default:
		return offset{kind: offsetNone}
	}
}

// startTrim returns the number of bytes excluded from the first segment.
func (o offset) startTrim() int {
	if o.kind == offsetStart || o.kind == offsetStartEnd {
		return o.start
	}
	return 0
}

// endTrim returns the number of bytes excluded from the last segment.
func (o offset) endTrim() int {
	if o.kind == offsetEnd || o.kind == offsetStartEnd {
		return o.end
	}
	return 0
}
