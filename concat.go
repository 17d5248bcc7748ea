package magicstring

import "errors"

// Concat joins two views into one logical string without copying or
// flattening either side. Both operands satisfy Text, so Concat values
// nest into trees of arbitrary depth and every join is O(1).
//
// The tree shape is never normalized: splitting a Concat yields Concat
// results even when one operand ends up empty.
type Concat struct {
	Left  Text
	Right Text
}

// Join returns the lazy concatenation of left and right.
func Join(left, right Text) *Concat {
	return &Concat{Left: left, Right: right}
}

// Len returns the summed byte length of both sides.
func (c *Concat) Len() int { return c.Left.Len() + c.Right.Len() }

// IsEmpty reports whether both sides are empty.
func (c *Concat) IsEmpty() bool { return c.Left.IsEmpty() && c.Right.IsEmpty() }

// Iter returns a fresh iterator chaining the left side's segments before
// the right side's.
func (c *Concat) Iter() Iter {
	return &chainIter{left: c.Left.Iter(), right: c.Right.Iter()}
}

// Bytes iterates over the bytes of both sides in order.
func (c *Concat) Bytes() *Bytes { return newBytes(c.Iter()) }

// Runes iterates over the runes of both sides in order.
func (c *Concat) Runes() *Runes { return newRunes(c.Iter()) }

// RuneIndices iterates over the runes of both sides with byte offsets
// global to the joined view: right-side indices are shifted by the left
// side's total byte length.
func (c *Concat) RuneIndices() *RuneIndices { return newRuneIndices(c.Iter()) }

// SplitAt splits the logical byte range at index. When index falls inside
// the left side, the left side is split there and the right side at 0;
// otherwise the left side is split at 0 and the right side at the
// remainder. Both results are Concat values; empty operands are allowed.
func (c *Concat) SplitAt(index int) (Text, Text, error) {
	leftLen := c.Left.Len()
	if index < leftLen {
		ll, lr, err := c.Left.SplitAt(index)
		if err != nil {
			return nil, nil, err
		}
		rl, rr, err := c.Right.SplitAt(0)
		if err != nil {
			return nil, nil, err
		}
		return Join(ll, rl), Join(lr, rr), nil
	}

	ll, lr, err := c.Left.SplitAt(0)
	if err != nil {
		return nil, nil, err
	}
	rl, rr, err := c.Right.SplitAt(index - leftLen)
	if err != nil {
		// Report the caller's index, not the right-side-relative one.
		var oor *OutOfRangeError
		if errors.As(err, &oor) {
			return nil, nil, outOfRange(index, c.Len(), oor.Reason)
		}
		return nil, nil, err
	}
	return Join(lr, rl), Join(ll, rr), nil
}

// Get returns the sub-view selected by r.
func (c *Concat) Get(r Range) (Text, error) { return getText(c, r) }

// TrimStart trims the left side; when the left side trims away entirely
// the right side is trimmed too, so whitespace spanning the join point is
// fully removed.
func (c *Concat) TrimStart() Text {
	left := c.Left.TrimStart()
	right := c.Right
	if left.IsEmpty() {
		right = c.Right.TrimStart()
	}
	return Join(left, right)
}

// TrimEnd trims the right side; when the right side trims away entirely
// the left side is trimmed too.
func (c *Concat) TrimEnd() Text {
	right := c.Right.TrimEnd()
	left := c.Left
	if right.IsEmpty() {
		left = c.Left.TrimEnd()
	}
	return Join(left, right)
}

// Trim is TrimStart followed by TrimEnd.
func (c *Concat) Trim() Text { return c.TrimStart().TrimEnd() }

// Pop removes the last rune of the right side, or of the left side when
// the right side is empty. It reports false when both sides are empty.
func (c *Concat) Pop() (Text, rune, bool) {
	if right, r, ok := c.Right.Pop(); ok {
		return Join(c.Left, right), r, true
	}
	if left, r, ok := c.Left.Pop(); ok {
		return Join(left, c.Right), r, true
	}
	return c, 0, false
}

// String renders both sides by emitting their segments in order.
func (c *Concat) String() string { return render(c.Iter(), c.Len()) }

// DebugString renders both sides with each segment quoted.
func (c *Concat) DebugString() string { return renderDebug(c.Iter()) }
