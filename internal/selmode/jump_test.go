// internal/selmode/jump_test.go
package selmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/coral/internal/types"
)

func TestJumpNoCandidates(t *testing.T) {
	b := newBuffer(t, "abc")
	_, err := NewJumpSession(b, dummyMode{}, r(0, 1), "abc")
	var inputErr *UserInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestJumpFirstRoundUsesLeadingChars(t *testing.T) {
	b := newBuffer(t, "foo bar baz")
	mode := Word{}
	s, err := NewJumpSession(b, mode, r(0, 3), "ab")
	require.NoError(t, err)

	labels := s.Labels()
	require.Len(t, labels, 3)
	assert.Equal(t, 'f', labels[0].Label)
	assert.Equal(t, 'b', labels[1].Label)
	assert.Equal(t, 'b', labels[2].Label)

	// 'f' is unique; one keystroke resolves.
	target, done, err := s.Key('f')
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "foo", b.Slice(target))
}

func TestJumpProgressiveFiltering(t *testing.T) {
	b := newBuffer(t, "bar baz bee")
	s, err := NewJumpSession(b, Word{}, r(0, 3), "xy")
	require.NoError(t, err)

	// All three start with 'b', so the first round falls back to the
	// alphabet: labels x, y, x.
	labels := s.Labels()
	require.Len(t, labels, 3)
	assert.Equal(t, []rune{'x', 'y', 'x'}, []rune{labels[0].Label, labels[1].Label, labels[2].Label})

	// 'x' keeps two candidates; relabeled x and y.
	_, done, err := s.Key('x')
	require.NoError(t, err)
	assert.False(t, done)

	target, done, err := s.Key('y')
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "bee", b.Slice(target))
}

func TestJumpWrongKeyIsRetryable(t *testing.T) {
	b := newBuffer(t, "foo bar")
	s, err := NewJumpSession(b, Word{}, r(0, 3), "ab")
	require.NoError(t, err)

	_, done, err := s.Key('z')
	var inputErr *UserInputError
	assert.ErrorAs(t, err, &inputErr)
	assert.False(t, done)

	// The session is still usable.
	target, done, err := s.Key('f')
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "foo", b.Slice(target))
}

func TestJumpConvergenceBound(t *testing.T) {
	// 40 identical candidates, alphabet of 4: must converge within
	// ceil(log4(40))+1 = 4 keystrokes by always picking the first label.
	var ranges []types.CharRange
	text := ""
	for i := 0; i < 40; i++ {
		ranges = append(ranges, types.CharRange{Start: i * 2, End: i*2 + 1})
		text += "a "
	}
	b := newBuffer(t, text)
	s, err := NewJumpSession(b, dummyMode{ranges: ranges}, r(0, 1), "wxyz")
	require.NoError(t, err)

	keys := 0
	for {
		keys++
		require.LessOrEqual(t, keys, 4, "jump did not converge")
		label := s.Labels()[0].Label
		_, done, err := s.Key(label)
		require.NoError(t, err)
		if done {
			return
		}
	}
}
