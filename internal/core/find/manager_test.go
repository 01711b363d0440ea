// internal/core/find/manager_test.go
package find

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/syntax"
	"github.com/bethropolis/coral/internal/types"
)

func newJSBuffer(t *testing.T, text string) *buffer.Buffer {
	t.Helper()
	lang := syntax.LanguageByName("JavaScript")
	require.NotNil(t, lang)
	b, err := buffer.New(lang, text)
	require.NoError(t, err)
	t.Cleanup(b.Close)
	return b
}

func TestSearchLiteral(t *testing.T) {
	b := newJSBuffer(t, "a.b; x; a.b;\n")
	m := NewManager()

	matches, err := m.Search(b, "a.b", true)
	require.NoError(t, err)
	assert.Equal(t, []types.CharRange{{Start: 0, End: 3}, {Start: 8, End: 11}}, matches)
	assert.Equal(t, "a.b", m.LastTerm())
}

func TestSearchRegex(t *testing.T) {
	b := newJSBuffer(t, "aXb; ayb;\n")
	m := NewManager()

	matches, err := m.Search(b, "a.b", false)
	require.NoError(t, err)
	assert.Equal(t, []types.CharRange{{Start: 0, End: 3}, {Start: 5, End: 8}}, matches)

	_, err = m.Search(b, "a(", false)
	assert.Error(t, err)
}

func TestSearchRuneOffsetsPastMultibyte(t *testing.T) {
	b := newJSBuffer(t, "let ü = 1; ok;\n")
	m := NewManager()

	matches, err := m.Search(b, "ok", true)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "ok", b.Slice(matches[0]))
}

func TestSearchSkipsZeroWidthMatches(t *testing.T) {
	b := newJSBuffer(t, "abc\n")
	m := NewManager()

	matches, err := m.Search(b, "x*", false)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchesRerunsAfterEdit(t *testing.T) {
	b := newJSBuffer(t, "foo; bar;\n")
	m := NewManager()

	_, err := m.Search(b, "bar", true)
	require.NoError(t, err)

	tx, err := edit.NewTransaction([]edit.Group{
		edit.NewGroup(nil, edit.Edit{Range: types.CharRange{Start: 0, End: 0}, New: "bar; "}),
	})
	require.NoError(t, err)
	_, err = b.ApplyTransaction(tx)
	require.NoError(t, err)

	matches := m.Matches(b)
	require.Len(t, matches, 2)
	assert.Equal(t, "bar", b.Slice(matches[0]))
	assert.Equal(t, "bar", b.Slice(matches[1]))
}

func TestClearForgetsSearch(t *testing.T) {
	b := newJSBuffer(t, "foo;\n")
	m := NewManager()

	_, err := m.Search(b, "foo", true)
	require.NoError(t, err)

	m.Clear()
	assert.Nil(t, m.Matches(b))
	assert.Empty(t, m.LastTerm())
}
