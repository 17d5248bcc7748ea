package magicstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRune(t *testing.T) {
	s := New([]string{"ab ", "c e", "fg"})

	pos, ok := Find(s, ' ')
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	pos, ok = Find(s, 'e')
	require.True(t, ok)
	assert.Equal(t, 5, pos)

	_, ok = Find(s, 'z')
	assert.False(t, ok)
}

func TestFindRuneSet(t *testing.T) {
	s := New([]string{"ab ", "c e", "fg"})

	pos, ok := Find(s, '|', ' ')
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	pos, ok = Find(s, 'f', 'g', '%')
	require.True(t, ok)
	assert.Equal(t, 6, pos)
}

func TestRFindRune(t *testing.T) {
	s := New([]string{"12", "3$45", "6$7", "89"})

	pos, ok := RFind(s, '$')
	require.True(t, ok)
	assert.Equal(t, 7, pos)

	upTo, err := s.Get(Through(0, pos))
	require.NoError(t, err)
	assert.Equal(t, "123$456$", upTo.String())
}

func TestRFindRuneSet(t *testing.T) {
	s := New([]string{"123$456$789"})

	pos, ok := RFind(s, '|', '$')
	require.True(t, ok)
	assert.Equal(t, 7, pos)
}

// Offsets from RFind are relative to the sub-window, not the raw segments.
func TestRFindOnSubstring(t *testing.T) {
	s := New([]string{"01", "23", "4567"})
	sub, err := s.Get(Between(1, 5))
	require.NoError(t, err)

	pos, ok := RFind(sub, '3')
	require.True(t, ok)

	head, err := sub.Get(To(pos))
	require.NoError(t, err)
	assert.Equal(t, "123", head.String())
}

func TestFindOnJoin(t *testing.T) {
	s := Join(New([]string{"ab"}), New([]string{"cd"}))

	pos, ok := Find(s, 'd')
	require.True(t, ok)
	assert.Equal(t, 3, pos)

	pos, ok = RFind(s, 'b')
	require.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestFindContainsConsistency(t *testing.T) {
	s := Join(New([]string{"ab ", "c e"}), New([]string{"fg"}))

	for _, r := range []rune{'a', 'c', 'g', ' ', 'z', 'é'} {
		_, found := Find(s, r)
		assert.Equal(t, Contains(s, r), found, "rune %q", r)
	}
}
