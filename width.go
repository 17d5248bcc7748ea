package magicstring

import "github.com/mattn/go-runewidth"

// WidthOptions control terminal width calculation.
//
// Currently only relevant for East Asian code points and their locale.
type WidthOptions struct {
	EastAsianWidth   bool // if true, treats certain East Asian code points as 2 wide (e.g., Chinese, Japanese, Korean). Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// Width returns the terminal cell width of t for monospace fonts, summed
// per window-adjusted segment. If opts is nil, the locale is assumed to be
// non-East Asian.
func Width(t Text, opts *WidthOptions) int {
	cond := conditionFromOptions(opts)
	n := 0
	it := t.Iter()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		n += cond.StringWidth(seg)
	}
	return n
}

func conditionFromOptions(opts *WidthOptions) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}
