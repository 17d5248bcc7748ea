package magicstring

import "fmt"

// OutOfRangeError reports a split or range index the view cannot honor:
// past the end of the window, or inside a multi-byte rune.
type OutOfRangeError struct {
	Index  int
	Len    int
	Reason string
}

func (e *OutOfRangeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("index %d out of range for window of %d bytes: %s", e.Index, e.Len, e.Reason)
	}
	return fmt.Sprintf("index %d out of range for window of %d bytes", e.Index, e.Len)
}

func outOfRange(index, length int, reason string) *OutOfRangeError {
	return &OutOfRangeError{Index: index, Len: length, Reason: reason}
}
