// internal/core/actions_test.go
package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/config"
	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/selmode"
	"github.com/bethropolis/coral/internal/syntax"
	"github.com/bethropolis/coral/internal/types"
)

func newTestEditor(t *testing.T, text string) *Editor {
	t.Helper()
	lang := syntax.LanguageByName("JavaScript")
	require.NotNil(t, lang)
	b, err := buffer.New(lang, text)
	require.NoError(t, err)
	t.Cleanup(b.Close)

	cfg := config.EditorConfig{
		TabWidth:     4,
		ScrollOff:    3,
		MaxHistory:   0,
		JumpAlphabet: "asdf",
	}
	return NewEditor(b, cfg, nil)
}

func r(start, end int) types.CharRange { return types.CharRange{Start: start, End: end} }

func TestDeleteConsumesSeparatorForward(t *testing.T) {
	e := newTestEditor(t, "hello(x, y);")
	e.SetMode(ModeSyntaxNode)
	e.SetSelections([]types.CharRange{r(6, 7)}, 0) // x

	require.NoError(t, e.Delete())
	assert.Equal(t, "hello(y);", e.Buffer().Text())
	// The surviving neighbor is selected.
	assert.Equal(t, "y", e.Buffer().Slice(e.Selections().Primary().Range()))
}

func TestDeleteConsumesSeparatorBackwardAtLast(t *testing.T) {
	e := newTestEditor(t, "hello(x, y);")
	e.SetMode(ModeSyntaxNode)
	e.SetSelections([]types.CharRange{r(9, 10)}, 0) // y, the last argument

	require.NoError(t, e.Delete())
	assert.Equal(t, "hello(x);", e.Buffer().Text())
	assert.Equal(t, "x", e.Buffer().Slice(e.Selections().Primary().Range()))
}

func TestDeleteNonContiguousKeepsNeighbors(t *testing.T) {
	e := newTestEditor(t, "abc def abc")
	e.SetSearchRanges([]types.CharRange{r(0, 3), r(8, 11)})
	e.SetMode(ModeSearch)
	e.SetSelections([]types.CharRange{r(0, 3)}, 0)

	require.NoError(t, e.Delete())
	assert.Equal(t, " def abc", e.Buffer().Text())
}

func TestMultiCursorConflictAborts(t *testing.T) {
	e := newTestEditor(t, "abcdef")
	e.SetSelections([]types.CharRange{r(0, 3), r(2, 5)}, 0)
	before := e.Buffer().Text()
	sels := e.Selections().Ranges()

	err := e.ReplaceWith("zz")
	var conflict *edit.ConflictError
	require.ErrorAs(t, err, &conflict)

	assert.Equal(t, before, e.Buffer().Text(), "buffer must be untouched")
	assert.Equal(t, sels, e.Selections().Ranges(), "selections must be untouched")
	assert.False(t, e.History().IsDirty(), "nothing may reach the history")
}

func TestMultiCursorAtomicInsert(t *testing.T) {
	e := newTestEditor(t, "aa bb cc")
	e.SetSelections([]types.CharRange{r(0, 2), r(3, 5), r(6, 8)}, 0)

	require.NoError(t, e.ReplaceWith("x"))
	assert.Equal(t, "x x x", e.Buffer().Text())
	assert.Equal(t, []types.CharRange{r(0, 1), r(2, 3), r(4, 5)}, e.Selections().Ranges())
}

func TestRaiseReplacesParent(t *testing.T) {
	e := newTestEditor(t, "let a = b + c;")
	e.SetMode(ModeSyntaxNode)
	e.SetSelections([]types.CharRange{r(8, 9)}, 0) // b

	require.NoError(t, e.Raise())
	assert.Equal(t, "let a = b;", e.Buffer().Text())
	assert.Equal(t, "b", e.Buffer().Slice(e.Selections().Primary().Range()))
	assert.Equal(t, 0, e.Buffer().ErrorCount())
}

func TestRaiseRefusesToBreakSyntax(t *testing.T) {
	e := newTestEditor(t, "function f() { return 1; }")
	e.SetMode(ModeSyntaxNode)
	e.SetSelections([]types.CharRange{r(15, 24)}, 0) // return 1;
	before := e.Buffer().Text()

	err := e.Raise()
	var violation *StructuralInvariantError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, before, e.Buffer().Text())
	assert.False(t, e.History().IsDirty())
}

func TestExchangeSwapsSiblings(t *testing.T) {
	e := newTestEditor(t, "hello(x, yy);")
	e.SetMode(ModeSyntaxNode)
	e.SetSelections([]types.CharRange{r(6, 7)}, 0) // x

	require.NoError(t, e.Exchange(selmode.VerbRight, 0))
	assert.Equal(t, "hello(yy, x);", e.Buffer().Text())
	// The selection follows its text to the new slot.
	assert.Equal(t, "x", e.Buffer().Slice(e.Selections().Primary().Range()))
}

func TestExchangeWithEnclosingNodeIsInputError(t *testing.T) {
	e := newTestEditor(t, "hello(x, y);")
	e.SetMode(ModeSyntaxNode)
	e.SetSelections([]types.CharRange{r(6, 7)}, 0) // x
	before := e.Buffer().Text()

	err := e.Exchange(selmode.VerbUp, 0)
	var input *selmode.UserInputError
	require.ErrorAs(t, err, &input)
	assert.Equal(t, before, e.Buffer().Text())
	assert.False(t, e.History().IsDirty())
}

func TestExchangeDownMultiCursor(t *testing.T) {
	e := newTestEditor(t, "aa bb\nc d")
	e.SetMode(ModeWord)
	e.SetSelections([]types.CharRange{r(0, 2), r(3, 5)}, 0) // aa, bb

	require.NoError(t, e.Exchange(selmode.VerbDown, 0))
	assert.Equal(t, "c d\naa bb", e.Buffer().Text())

	// Each selection follows its text, even though the swap pairs interleave.
	ranges := e.Selections().Ranges()
	require.Len(t, ranges, 2)
	assert.Equal(t, "aa", e.Buffer().Slice(ranges[0]))
	assert.Equal(t, "bb", e.Buffer().Slice(ranges[1]))
}

func TestPasteSmartGap(t *testing.T) {
	e := newTestEditor(t, "hello(x, y);")
	e.SetMode(ModeSyntaxNode)
	e.SetSelections([]types.CharRange{r(6, 7)}, 0) // x

	require.NoError(t, e.Copy())
	require.NoError(t, e.Paste())
	assert.Equal(t, "hello(x, x, y);", e.Buffer().Text())
	assert.Equal(t, "x", e.Buffer().Slice(e.Selections().Primary().Range()))
}

func TestPasteEmptyClipboard(t *testing.T) {
	e := newTestEditor(t, "abc")
	err := e.Paste()
	assert.Error(t, err)
	assert.Equal(t, "abc", e.Buffer().Text())
}

func TestOpenLineInsertsIndentedLine(t *testing.T) {
	e := newTestEditor(t, "if (a) {\n    b();\n}")
	e.SetMode(ModeLine)
	e.SetSelections([]types.CharRange{r(13, 17)}, 0) // b();

	require.NoError(t, e.Open())
	assert.Equal(t, "if (a) {\n    b();\n    \n}", e.Buffer().Text())
	// Caret sits at the end of the new line's indent.
	caret := e.Selections().Primary().Range()
	assert.True(t, caret.IsEmpty())
	assert.Equal(t, 22, caret.Start)
}

func TestJoinCollapsesLineBreaks(t *testing.T) {
	e := newTestEditor(t, "a(\n    b,\n    c\n);")
	e.SetSelections([]types.CharRange{r(0, 18)}, 0)

	require.NoError(t, e.Join())
	assert.Equal(t, "a( b, c );", e.Buffer().Text())
}

func TestInsertUndoIsPerCharacter(t *testing.T) {
	e := newTestEditor(t, "")
	e.SetSelections([]types.CharRange{r(0, 0)}, 0)

	require.NoError(t, e.Insert("a"))
	require.NoError(t, e.Insert("b"))
	require.NoError(t, e.Insert("c"))
	assert.Equal(t, "abc", e.Buffer().Text())

	require.NoError(t, e.Undo())
	assert.Equal(t, "ab", e.Buffer().Text())
	require.NoError(t, e.Undo())
	assert.Equal(t, "a", e.Buffer().Text())
	require.NoError(t, e.Redo())
	assert.Equal(t, "ab", e.Buffer().Text())
}

func TestUndoAfterEditBranches(t *testing.T) {
	e := newTestEditor(t, "")
	e.SetSelections([]types.CharRange{r(0, 0)}, 0)

	require.NoError(t, e.Insert("a"))
	require.NoError(t, e.Insert("b"))
	require.NoError(t, e.Undo())
	require.NoError(t, e.Insert("c"))
	assert.Equal(t, "ac", e.Buffer().Text())

	// The "b" branch is still reachable by branch navigation.
	require.NoError(t, e.switchBranch(-1))
	assert.Equal(t, "ab", e.Buffer().Text())
}

func TestUndoAtRootIsBoundary(t *testing.T) {
	e := newTestEditor(t, "abc")
	err := e.Undo()
	assert.Error(t, err)
	assert.True(t, IsBoundary(err))
	assert.Equal(t, "abc", e.Buffer().Text())
}

func TestTransformCase(t *testing.T) {
	tests := []struct {
		casing Casing
		want   string
	}{
		{CasingCamel, "fooBarBaz"},
		{CasingPascal, "FooBarBaz"},
		{CasingSnake, "foo_bar_baz"},
		{CasingKebab, "foo-bar-baz"},
		{CasingUpperSnake, "FOO_BAR_BAZ"},
	}

	for _, tt := range tests {
		t.Run(tt.casing.String(), func(t *testing.T) {
			e := newTestEditor(t, "fooBar_baz")
			e.SetSelections([]types.CharRange{r(0, 10)}, 0)
			require.NoError(t, e.TransformCase(tt.casing))
			assert.Equal(t, tt.want, e.Buffer().Text())
		})
	}
}

func TestToIndexOutOfRangeLeavesSelection(t *testing.T) {
	e := newTestEditor(t, "aa;\nbb;\n")
	e.SetMode(ModeLine)
	e.SetSelections([]types.CharRange{r(0, 3)}, 0)
	before := e.Selections().Ranges()

	err := e.ApplyMovement(selmode.VerbToIndex, 99)
	assert.Error(t, err)
	assert.Equal(t, before, e.Selections().Ranges())
}

func TestModeSwitchRunsCurrent(t *testing.T) {
	e := newTestEditor(t, "foo bar;\nbaz;\n")
	e.SetSelections([]types.CharRange{r(4, 5)}, 0) // inside "bar"
	e.SetMode(ModeWord)
	assert.Equal(t, "bar", e.Buffer().Slice(e.Selections().Primary().Range()))

	e.SetMode(ModeLine)
	assert.Equal(t, "foo bar;", e.Buffer().Slice(e.Selections().Primary().Range()))
}
