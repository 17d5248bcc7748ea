package magicstring

import (
	"fmt"
	"strings"
)

// Text is the capability set shared by leaf windows and concatenation
// nodes. Every operation is a pure function of the value: results are new
// views over the same borrowed segments, and the receiver is never
// modified.
type Text interface {
	// Len returns the total byte length of the view.
	Len() int
	// IsEmpty reports whether the view has zero length.
	IsEmpty() bool
	// Iter returns a fresh double-ended iterator over the view's
	// window-adjusted segments.
	Iter() Iter
	// Bytes iterates over the bytes of the view.
	Bytes() *Bytes
	// Runes iterates over the runes of the view.
	Runes() *Runes
	// RuneIndices iterates over the runes of the view together with their
	// byte offset from the start of the view.
	RuneIndices() *RuneIndices
	// SplitAt splits the logical byte range at index: the left view covers
	// [0, index), the right covers [index, Len()). The error is a
	// *OutOfRangeError when index is past the end or inside a rune.
	SplitAt(index int) (Text, Text, error)
	// Get returns the sub-view selected by r.
	Get(r Range) (Text, error)
	// TrimStart returns a view with leading Unicode whitespace removed.
	// Like the rest of the surface it assumes left-to-right text.
	TrimStart() Text
	// TrimEnd returns a view with trailing Unicode whitespace removed.
	TrimEnd() Text
	// Trim is TrimStart followed by TrimEnd.
	Trim() Text
	// Pop removes the last rune, returning the narrowed view and the rune.
	// It reports false on an empty view.
	Pop() (Text, rune, bool)
	// String renders the view by emitting its segments in order.
	String() string
	// DebugString renders the view with each segment quoted.
	DebugString() string
}

func render(it Iter, n int) string {
	var b strings.Builder
	b.Grow(n)
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		b.WriteString(seg)
	}
	return b.String()
}

func renderDebug(it Iter) string {
	var b strings.Builder
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		fmt.Fprintf(&b, "%q", seg)
	}
	return b.String()
}
