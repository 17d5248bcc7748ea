package magicstring

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// String is a read-only view over an ordered sequence of borrowed text
// segments. It owns no text: the value is the segment slice plus an edge
// offset recording how much of the first and last segment lies outside the
// window. Copies are cheap and segment contents are never touched.
//
// Each segment must be independently valid UTF-8; a rune never spans a
// segment boundary. The zero value is an empty view.
type String struct {
	segments []string
	off      offset
}

// New returns a view covering every segment in full. The caller keeps
// ownership of the slice and its contents; neither may be mutated while
// any view derived from it is alive.
func New(segments []string) *String {
	return &String{segments: segments}
}

// Len returns the total byte length of the window.
func (s *String) Len() int {
	n := 0
	it := s.Iter()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		n += len(seg)
	}
	return n
}

// IsEmpty reports whether the window has zero length.
func (s *String) IsEmpty() bool { return s.Len() == 0 }

// Iter returns a fresh double-ended iterator over the window-adjusted
// segments.
func (s *String) Iter() Iter {
	return &segmentIter{segments: s.segments, off: s.off}
}

// Bytes iterates over the bytes of the window.
func (s *String) Bytes() *Bytes { return newBytes(s.Iter()) }

// Runes iterates over the runes of the window.
func (s *String) Runes() *Runes { return newRunes(s.Iter()) }

// RuneIndices iterates over the runes of the window together with their
// byte offset from the start of the window.
func (s *String) RuneIndices() *RuneIndices { return newRuneIndices(s.Iter()) }

// SplitAt splits the window's logical byte range at index: the left view
// covers [0, index), the right covers [index, Len()). The boundary segment
// appears in both windows with complementary trims; no text is copied.
func (s *String) SplitAt(index int) (Text, Text, error) {
	left, right, err := s.splitAt(index)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// splitAt is SplitAt with concrete leaf results for internal callers.
func (s *String) splitAt(index int) (*String, *String, error) {
	if index < 0 {
		return nil, nil, outOfRange(index, s.Len(), "negative index")
	}
	if len(s.segments) == 0 {
		if index != 0 {
			return nil, nil, outOfRange(index, 0, "")
		}
		return &String{}, &String{}, nil
	}

	seg, local, err := s.locate(index)
	if err != nil {
		return nil, nil, err
	}

	// The inherited start trim lives on segment 0 and the inherited end
	// trim on the last segment. Left always keeps segment 0 and right
	// always keeps the last segment, so those carry over unchanged; the
	// start trim contributes to the boundary arithmetic only when the
	// boundary segment is segment 0.
	inheritedStart := 0
	if seg == 0 {
		inheritedStart = s.off.startTrim()
	}
	boundaryLen := len(s.segments[seg])

	left := &String{
		segments: s.segments[:seg+1],
		off:      makeOffset(s.off.startTrim(), boundaryLen-inheritedStart-local),
	}
	right := &String{
		segments: s.segments[seg:],
		off:      makeOffset(inheritedStart+local, s.off.endTrim()),
	}
	return left, right, nil
}

// locate maps a window-relative byte index to (segment index, byte offset
// within that segment's window-adjusted text). An index on a segment
// boundary resolves to the end of the earlier segment.
func (s *String) locate(index int) (int, int, error) {
	offset := 0
	i := 0
	it := s.Iter()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		if index-offset > len(seg) {
			offset += len(seg)
			i++
			continue
		}
		local := index - offset
		if local < len(seg) && !utf8.RuneStart(seg[local]) {
			return 0, 0, outOfRange(index, s.Len(), "not a rune boundary")
		}
		return i, local, nil
	}
	return 0, 0, outOfRange(index, s.Len(), "")
}

// Get returns the sub-window selected by r, via two splits: at the range
// end, then at the range start inside the left half.
func (s *String) Get(r Range) (Text, error) {
	sub, err := s.get(r)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *String) get(r Range) (*String, error) {
	start, end, err := r.bounds(s.Len())
	if err != nil {
		return nil, err
	}
	left, _, err := s.splitAt(end)
	if err != nil {
		return nil, err
	}
	_, sub, err := left.splitAt(start)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// TrimStart returns a view with leading Unicode whitespace removed. This
// assumes left-to-right text.
func (s *String) TrimStart() Text { return s.trimStart() }

// TrimEnd returns a view with trailing Unicode whitespace removed. This
// assumes left-to-right text.
func (s *String) TrimEnd() Text { return s.trimEnd() }

// Trim returns a view with leading and trailing whitespace removed.
func (s *String) Trim() Text { return s.trimStart().trimEnd() }

func (s *String) trimStart() *String {
	i := 0
	it := s.Iter()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		trimmed := strings.TrimLeftFunc(seg, unicode.IsSpace)
		if trimmed == "" {
			i++
			continue
		}
		ws := len(seg) - len(trimmed)
		inherited := 0
		if i == 0 {
			inherited = s.off.startTrim()
		}
		return &String{
			segments: s.segments[i:],
			off:      makeOffset(inherited+ws, s.off.endTrim()),
		}
	}
	// All whitespace: the window trims to an empty window.
	return &String{}
}

func (s *String) trimEnd() *String {
	j := len(s.segments) - 1
	it := s.Iter()
	for seg, ok := it.NextBack(); ok; seg, ok = it.NextBack() {
		trimmed := strings.TrimRightFunc(seg, unicode.IsSpace)
		if trimmed == "" {
			j--
			continue
		}
		ws := len(seg) - len(trimmed)
		inherited := 0
		if j == len(s.segments)-1 {
			inherited = s.off.endTrim()
		}
		return &String{
			segments: s.segments[:j+1],
			off:      makeOffset(s.off.startTrim(), inherited+ws),
		}
	}
	return &String{}
}

// Pop removes the last rune from the window, returning the narrowed view
// and the removed rune. It reports false on an empty window.
func (s *String) Pop() (Text, rune, bool) {
	popped, r, ok := s.pop()
	return popped, r, ok
}

func (s *String) pop() (*String, rune, bool) {
	r, size, ok := lastRune(s.Iter())
	if !ok {
		return s, 0, false
	}
	// The cut lands on the popped rune's own boundary, so this cannot fail.
	left, _, _ := s.splitAt(s.Len() - size)
	return left, r, true
}

// lastRune returns the final rune of the sequence produced by it, scanning
// from the back past empty segments.
func lastRune(it Iter) (rune, int, bool) {
	for {
		seg, ok := it.NextBack()
		if !ok {
			return 0, 0, false
		}
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeLastRuneInString(seg)
		return r, size, true
	}
}

// String renders the window by emitting its segments in order.
func (s *String) String() string { return render(s.Iter(), s.Len()) }

// DebugString renders the window with each segment quoted.
func (s *String) DebugString() string { return renderDebug(s.Iter()) }
