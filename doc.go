// Package magicstring provides zero-copy string views over ordered sequences of borrowed text segments.
//
// A String is a window over a caller-supplied []string: it records the segment slice plus an edge offset
// describing how many leading bytes of the first segment and trailing bytes of the last segment fall
// outside the window. Splitting, trimming, slicing, and popping narrow windows by composing offsets;
// no operation copies segment contents or allocates a new backing buffer.
//
//	input := []string{"012", "34", "5"}
//	s := magicstring.New(input)
//	pos, ok := magicstring.Find(s, '3') // 3, true
//
// Two views join lazily with Join, which builds a Concat node satisfying the same Text contract.
// Repeated joins grow a tree rather than flattening into one array, so each join is O(1) regardless
// of the size of either side.
//
// Views never outlive or mutate their segments: the caller keeps ownership of the slice and its
// contents for the lifetime of every view derived from it. All shared data is read-only, so distinct
// views over the same segments may be used from multiple goroutines concurrently.
package magicstring
