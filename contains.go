package magicstring

import "strings"

// Contains reports whether t contains any rune in pat. It tests each
// segment independently, so no position tracking is needed.
func Contains(t Text, pat ...rune) bool {
	chars := string(pat)
	it := t.Iter()
	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
		if strings.ContainsAny(seg, chars) {
			return true
		}
	}
	return false
}
