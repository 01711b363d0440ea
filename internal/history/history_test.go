// internal/history/history_test.go
package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/types"
)

// insertTx builds a one-edit transaction inserting text at a position.
func insertTx(t *testing.T, at int, text string) *edit.Transaction {
	t.Helper()
	tx, err := edit.NewTransaction([]edit.Group{
		edit.NewGroup(nil, edit.Edit{
			Range: types.CharRange{Start: at, End: at},
			New:   text,
		}),
	})
	require.NoError(t, err)
	return tx
}

// play applies every recorded step to text, for asserting history walks.
func play(text string, txs ...*edit.Transaction) string {
	for _, tx := range txs {
		text = tx.ApplyToString(text)
	}
	return text
}

func TestUndoRedoLinear(t *testing.T) {
	h := New(0)
	assert.False(t, h.IsDirty())

	t1 := insertTx(t, 0, "a")
	t2 := insertTx(t, 1, "b")
	h.Push(t1)
	h.Push(t2)
	assert.True(t, h.IsDirty())
	assert.Equal(t, 2, h.Len())

	text := play("", t1, t2)
	assert.Equal(t, "ab", text)

	inv, err := h.Undo()
	require.NoError(t, err)
	text = play(text, inv)
	assert.Equal(t, "a", text)

	redo, err := h.Redo()
	require.NoError(t, err)
	text = play(text, redo)
	assert.Equal(t, "ab", text)
}

func TestBoundaries(t *testing.T) {
	h := New(0)

	_, err := h.Undo()
	assert.ErrorIs(t, err, ErrAtRoot)
	assert.True(t, IsBoundary(err))

	h.Push(insertTx(t, 0, "a"))
	_, err = h.Redo()
	assert.ErrorIs(t, err, ErrAtLeaf)
	assert.True(t, IsBoundary(err))
}

func TestEditAfterUndoCreatesBranch(t *testing.T) {
	h := New(0)
	t1 := insertTx(t, 0, "a")
	tOld := insertTx(t, 1, "b")
	h.Push(t1)
	h.Push(tOld)

	text := play("", t1, tOld)
	inv, err := h.Undo()
	require.NoError(t, err)
	text = play(text, inv)
	assert.Equal(t, "a", text)

	// A new edit here branches instead of discarding tOld.
	tNew := insertTx(t, 1, "c")
	h.Push(tNew)
	text = play(text, tNew)
	assert.Equal(t, "ac", text)
	assert.Equal(t, 2, h.BranchCount())

	// Redo now follows the new branch.
	inv, err = h.Undo()
	require.NoError(t, err)
	text = play(text, inv)
	redo, err := h.Redo()
	require.NoError(t, err)
	text = play(text, redo)
	assert.Equal(t, "ac", text)
}

func TestSwitchBranch(t *testing.T) {
	h := New(0)
	t1 := insertTx(t, 0, "a")
	tOld := insertTx(t, 1, "b")
	tNew := insertTx(t, 1, "c")

	h.Push(t1)
	h.Push(tOld)
	text := play("", t1, tOld)

	inv, err := h.Undo()
	require.NoError(t, err)
	text = play(text, inv)
	h.Push(tNew)
	text = play(text, tNew)
	assert.Equal(t, "ac", text)

	// Step to the older sibling: undo "c", redo "b".
	undo, redo, err := h.SwitchBranch(-1)
	require.NoError(t, err)
	text = play(text, undo, redo)
	assert.Equal(t, "ab", text)

	// And back again.
	undo, redo, err = h.SwitchBranch(+1)
	require.NoError(t, err)
	text = play(text, undo, redo)
	assert.Equal(t, "ac", text)

	// No third branch.
	_, _, err = h.SwitchBranch(+1)
	assert.ErrorIs(t, err, ErrNoBranch)
}

func TestSwitchBranchAtRoot(t *testing.T) {
	h := New(0)
	_, _, err := h.SwitchBranch(-1)
	assert.ErrorIs(t, err, ErrAtRoot)
}
