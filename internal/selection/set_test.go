// internal/selection/set_test.go
package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/coral/internal/types"
)

func sel(start, end int) Selection {
	return New(types.CharRange{Start: start, End: end})
}

func TestNewSetOrdersAndDedupes(t *testing.T) {
	s := NewSet([]Selection{sel(10, 12), sel(0, 2), sel(10, 12), sel(5, 6)}, 0)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []types.CharRange{
		{Start: 0, End: 2}, {Start: 5, End: 6}, {Start: 10, End: 12},
	}, s.Ranges())

	// Primary was the (10,12) selection; after sorting it sits at index 2.
	assert.Equal(t, 2, s.PrimaryIndex())
	assert.Equal(t, types.CharRange{Start: 10, End: 12}, s.Primary().Range())
}

func TestReversedSelectionKeepsRange(t *testing.T) {
	s := Selection{Anchor: 5, Head: 2}
	assert.True(t, s.Reversed())
	assert.Equal(t, types.CharRange{Start: 2, End: 5}, s.Range())

	swapped := s.SwapEnds()
	assert.False(t, swapped.Reversed())
	assert.Equal(t, s.Range(), swapped.Range())
}

func TestWithRangePreservesDirection(t *testing.T) {
	back := Selection{Anchor: 5, Head: 2}
	moved := back.WithRange(types.CharRange{Start: 8, End: 11})
	assert.True(t, moved.Reversed())
	assert.Equal(t, types.CharRange{Start: 8, End: 11}, moved.Range())
}

func TestReplaceFollowsPrimary(t *testing.T) {
	s := NewSet([]Selection{sel(0, 1), sel(4, 5), sel(8, 9)}, 1)
	moved := s.Replace([]Selection{sel(1, 2), sel(5, 6), sel(9, 10)})

	assert.Equal(t, 1, moved.PrimaryIndex())
	assert.Equal(t, types.CharRange{Start: 5, End: 6}, moved.Primary().Range())
}

func TestRemoveRebasesPrimary(t *testing.T) {
	s := NewSet([]Selection{sel(0, 1), sel(4, 5), sel(8, 9)}, 2)

	s = s.Remove(2)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, types.CharRange{Start: 4, End: 5}, s.Primary().Range())

	// Removing down to one cursor is allowed; removing the last is not.
	s = s.Remove(0)
	require.Equal(t, 1, s.Len())
	last := s.Remove(0)
	assert.Equal(t, 1, last.Len())
}

func TestAddMakePrimary(t *testing.T) {
	s := NewSet([]Selection{sel(4, 5)}, 0)
	s = s.Add(sel(0, 1), true)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 0, s.PrimaryIndex())
	assert.Equal(t, types.CharRange{Start: 0, End: 1}, s.Primary().Range())

	// Adding a duplicate range changes nothing.
	dup := s.Add(sel(4, 5), false)
	assert.Equal(t, 2, dup.Len())
}

func TestCollapseToPrimary(t *testing.T) {
	s := NewSet([]Selection{sel(0, 1), sel(4, 5), sel(8, 9)}, 1)
	c := s.CollapseToPrimary()
	require.Equal(t, 1, c.Len())
	assert.Equal(t, types.CharRange{Start: 4, End: 5}, c.Primary().Range())
}
