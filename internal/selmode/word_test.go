// internal/selmode/word_test.go
package selmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordSubwordSplit(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{text: "snake_case_name", want: []string{"snake", "case", "name"}},
		{text: "camelCaseName", want: []string{"camel", "Case", "Name"}},
		{text: "HTTPServer", want: []string{"HTTP", "Server"}},
		{text: "v2Parser", want: []string{"v", "2", "Parser"}},
		{text: "a.b(c)", want: []string{"a", ".", "b", "(", "c", ")"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			b := newBuffer(t, tt.text)
			cands := Word{}.Candidates(b, r(0, 0))
			var got []string
			for _, c := range cands {
				got = append(got, b.Slice(c))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWordCoarseKeepsIdentifiersWhole(t *testing.T) {
	b := newBuffer(t, "fooBar baz_qux")
	cands := Word{Coarse: true}.Candidates(b, r(0, 0))
	require.Len(t, cands, 2)
	assert.Equal(t, "fooBar", b.Slice(cands[0]))
	assert.Equal(t, "baz_qux", b.Slice(cands[1]))
}

func TestColumnClampsAndSkipsEmptyLines(t *testing.T) {
	b := newBuffer(t, "abcd\n\nef\n")
	cands := Column{}.Candidates(b, r(2, 3)) // column 2

	require.Len(t, cands, 2)
	assert.Equal(t, "c", b.Slice(cands[0]))
	// Line "ef" is shorter than the column; its last character stands in.
	assert.Equal(t, "f", b.Slice(cands[1]))
}

func TestWordModeIsContiguous(t *testing.T) {
	assert.True(t, Word{}.IsContiguous())
	assert.True(t, Line{}.IsContiguous())
	assert.True(t, SyntaxNode{}.IsContiguous())
	assert.False(t, Column{}.IsContiguous())
	assert.False(t, SearchMatches(nil).IsContiguous())
}
