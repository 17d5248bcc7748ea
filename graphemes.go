package magicstring

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// GraphemeIter iterates over the grapheme clusters of a view. Byte
// positions are global to the view. Clusters never span segment
// boundaries: each segment is independently valid text, so segmenting per
// segment and segmenting the flattened string agree.
type GraphemeIter struct {
	inner  Iter
	cur    *graphemes.Iterator[string]
	base   int // bytes of fully consumed segments
	segLen int
	cond   *runewidth.Condition
}

// NewGraphemeIter returns a grapheme iterator over t. If opts is nil, the
// locale is assumed to be non-East Asian.
func NewGraphemeIter(t Text, opts *WidthOptions) *GraphemeIter {
	return &GraphemeIter{inner: t.Iter(), cond: conditionFromOptions(opts)}
}

func (it *GraphemeIter) Next() bool {
	for {
		if it.cur != nil {
			if it.cur.Next() {
				return true
			}
			it.base += it.segLen
			it.cur = nil
		}
		seg, ok := it.inner.Next()
		if !ok {
			return false
		}
		g := graphemes.FromString(seg)
		it.cur = &g
		it.segLen = len(seg)
	}
}

// Value returns the current grapheme cluster.
func (it *GraphemeIter) Value() string { return it.cur.Value() }

// Start returns the byte position of the current cluster in the view.
func (it *GraphemeIter) Start() int { return it.base + it.cur.Start() }

// End returns the byte position after the current cluster. Allows looping over bytes [Start(), End()).
func (it *GraphemeIter) End() int { return it.base + it.cur.End() }

// TextWidth returns the terminal cell width of the current cluster.
func (it *GraphemeIter) TextWidth() int { return it.cond.StringWidth(it.cur.Value()) }
