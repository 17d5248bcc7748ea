package magicstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinCollect(t *testing.T) {
	s := Join(New([]string{"a", "b"}), New([]string{"c", "d"}))
	assert.Equal(t, "abcd", collectRunes(s.Runes()))
	assert.Equal(t, "abcd", s.String())
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.IsEmpty())
}

func TestJoinEmpty(t *testing.T) {
	s := Join(New(nil), New([]string{""}))
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}

func TestJoinRemoveMiddle(t *testing.T) {
	s := New([]string{"some", "silly", "text"})
	left, right, err := s.SplitAt(9)
	require.NoError(t, err)
	assert.Equal(t, "somesilly", collectRunes(left.Runes()))
	assert.Equal(t, "text", collectRunes(right.Runes()))

	left, _, err = left.SplitAt(4)
	require.NoError(t, err)
	joined := Join(left, right)
	assert.Equal(t, "sometext", collectRunes(joined.Runes()))
}

// Content is associative regardless of tree shape.
func TestJoinAssociativity(t *testing.T) {
	s1 := New([]string{"a", "b"})
	s2 := New([]string{"c", "d"})
	s3 := New([]string{"e", "f"})
	s4 := New([]string{"g", "h"})

	line := Join(Join(Join(s1, s2), s3), s4)
	tree := Join(Join(s1, s2), Join(s3, s4))

	assert.Equal(t, "abcdefgh", collectRunes(line.Runes()))
	assert.Equal(t, collectRunes(line.Runes()), collectRunes(tree.Runes()))
}

func TestJoinSplit(t *testing.T) {
	s := Join(New([]string{"0123", "4", "56"}), New([]string{"c", "d"}))
	left, right, err := s.SplitAt(3)
	require.NoError(t, err)
	assert.Equal(t, "012", left.String())
	assert.Equal(t, "3456cd", right.String())
}

func TestJoinSplitInsideRight(t *testing.T) {
	s := Join(New([]string{"0123", "4", "56"}), New([]string{"c", "d"}))
	left, right, err := s.SplitAt(8)
	require.NoError(t, err)
	assert.Equal(t, "0123456c", left.String())
	assert.Equal(t, "d", right.String())
}

// Splitting a join yields join nodes even when one operand is empty; the
// tree shape is not normalized.
func TestJoinSplitShape(t *testing.T) {
	s := Join(New([]string{"ab"}), New([]string{"cd"}))
	left, right, err := s.SplitAt(0)
	require.NoError(t, err)

	_, ok := left.(*Concat)
	assert.True(t, ok)
	_, ok = right.(*Concat)
	assert.True(t, ok)
	assert.Equal(t, "", left.String())
	assert.Equal(t, "abcd", right.String())
}

func TestJoinSplitOutOfRange(t *testing.T) {
	s := Join(New([]string{"ab"}), New([]string{"cd"}))
	_, _, err := s.SplitAt(9)

	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 9, oor.Index)
	assert.Equal(t, 4, oor.Len)
}

// Right-side indices are shifted by the left side's byte length.
func TestJoinRuneIndices(t *testing.T) {
	s := Join(New([]string{"a", "🍅", "b"}), New([]string{"c", "d"}))

	var indices []int
	var runes []rune
	it := s.RuneIndices()
	for it.Next() {
		indices = append(indices, it.Index())
		runes = append(runes, it.Rune())
	}

	assert.Equal(t, []int{0, 1, 5, 6, 7}, indices)
	assert.Equal(t, []rune{'a', '🍅', 'b', 'c', 'd'}, runes)
}

func TestJoinSmallTrims(t *testing.T) {
	s := New([]string{"  "})
	assert.Equal(t, "", collectRunes(s.TrimStart().Runes()))
	assert.Equal(t, "", collectRunes(s.TrimEnd().Runes()))

	joined := Join(New([]string{"a"}), New([]string{"  "}))
	assert.Equal(t, "a", collectRunes(joined.TrimEnd().Runes()))
}

func TestJoinBigTrims(t *testing.T) {
	left := New([]string{"   ", " ", "  "})
	mid := New([]string{" ", "T", " "})
	right := New([]string{" ", "     ", " "})
	s := Join(Join(left, mid), right)

	assert.Equal(t, "T        ", collectRunes(s.TrimStart().Runes()))
	assert.Equal(t, "       T", collectRunes(s.TrimEnd().Runes()))
	assert.Equal(t, "T", collectRunes(s.Trim().Runes()))
}

func TestJoinPop(t *testing.T) {
	var v Text = Join(New([]string{"ab"}), New([]string{"c"}))

	v, r, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, 'c', r)
	assert.Equal(t, "ab", v.String())

	v, r, ok = v.Pop()
	require.True(t, ok)
	assert.Equal(t, 'b', r)
	assert.Equal(t, "a", v.String())
}

func TestJoinPopEmptyRight(t *testing.T) {
	s := Join(New([]string{"ab"}), New(nil))
	popped, r, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 'b', r)
	assert.Equal(t, "a", popped.String())
}

func TestJoinPopEmpty(t *testing.T) {
	_, _, ok := Join(New(nil), New(nil)).Pop()
	assert.False(t, ok)
}

func TestJoinGet(t *testing.T) {
	s := Join(New([]string{"0123", "4"}), New([]string{"56", "789"}))
	sub, err := s.Get(Between(3, 8))
	require.NoError(t, err)
	assert.Equal(t, "34567", sub.String())
}

func TestJoinIterBackwards(t *testing.T) {
	s := Join(New([]string{"0", "1"}), New([]string{"2"}))

	var got []string
	it := s.Iter()
	for seg, ok := it.NextBack(); ok; seg, ok = it.NextBack() {
		got = append(got, seg)
	}
	assert.Equal(t, []string{"2", "1", "0"}, got)
}

func TestJoinDebugString(t *testing.T) {
	s := Join(New([]string{"a"}), New([]string{"b", "c"}))
	assert.Equal(t, `"a""b""c"`, s.DebugString())
}
