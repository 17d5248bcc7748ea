package magicstring

import "strings"

// Find returns the byte offset of the first occurrence in t of any rune in
// pat, scanning segments left to right. Offsets are relative to the start
// of the view.
func Find(t Text, pat ...rune) (int, bool) {
	chars := string(pat)
	offset := 0
	it := t.Iter()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		if pos := strings.IndexAny(seg, chars); pos >= 0 {
			return offset + pos, true
		}
		offset += len(seg)
	}
	return 0, false
}

// RFind returns the byte offset of the last occurrence in t of any rune in
// pat, scanning segments right to left.
func RFind(t Text, pat ...rune) (int, bool) {
	chars := string(pat)
	offset := t.Len()
	it := t.Iter()
	for seg, ok := it.NextBack(); ok; seg, ok = it.NextBack() {
		offset -= len(seg)
		if pos := strings.LastIndexAny(seg, chars); pos >= 0 {
			return offset + pos, true
		}
	}
	return 0, false
}
