// internal/core/commit.go
package core

import (
	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/event"
	"github.com/bethropolis/coral/internal/history"
	"github.com/bethropolis/coral/internal/logger"
	"github.com/bethropolis/coral/internal/selection"
	"github.com/bethropolis/coral/internal/types"
)

// Commit applies a transaction to the buffer, records it in the history,
// and installs the transaction's post-edit selections. Granularity is
// exactly one history node per commit; insert mode commits one transaction
// per typed character and undo therefore steps per character.
func (e *Editor) Commit(tx *edit.Transaction) error {
	if tx == nil || tx.IsEmpty() {
		return nil
	}
	infos, err := e.buf.ApplyTransaction(tx)
	if err != nil {
		return err
	}
	e.hist.Push(tx)
	e.setSelectionsFrom(tx.Selections())
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{
		Edits:   infos,
		Version: e.buf.Version(),
	})
	e.dispatchSelection()
	return nil
}

// Undo reverts the last committed transaction. At the root it reports a
// HistoryBoundary error and changes nothing.
func (e *Editor) Undo() error {
	inv, err := e.hist.Undo()
	if err != nil {
		return err
	}
	return e.applyHistoryStep(inv, true)
}

// Redo re-applies the most recent child of the current history node.
func (e *Editor) Redo() error {
	tx, err := e.hist.Redo()
	if err != nil {
		return err
	}
	return e.applyHistoryStep(tx, false)
}

// switchBranch undoes the current node and redoes a sibling branch.
func (e *Editor) switchBranch(delta int) error {
	undo, redo, err := e.hist.SwitchBranch(delta)
	if err != nil {
		return err
	}
	if err := e.applyHistoryStep(undo, true); err != nil {
		return err
	}
	return e.applyHistoryStep(redo, false)
}

// applyHistoryStep applies a history-held transaction without pushing a new
// node. Failure here means buffer and history disagree, which is an
// internal inconsistency, not a user error.
func (e *Editor) applyHistoryStep(tx *edit.Transaction, undo bool) error {
	infos, err := e.buf.ApplyTransaction(tx)
	if err != nil {
		logger.Errorf("core: history replay failed: %v", err)
		return err
	}
	e.setSelectionsFrom(tx.Selections())
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{
		Edits:   infos,
		Version: e.buf.Version(),
	})
	e.dispatch(event.TypeHistoryMoved, event.HistoryMovedData{Undo: undo})
	e.dispatchSelection()
	return nil
}

// setSelectionsFrom installs the ranges a transaction designates for its
// cursors, clamped to the post-edit buffer. An empty list keeps the current
// cursors but clamps them, since their text may be gone.
func (e *Editor) setSelectionsFrom(ranges []types.CharRange) {
	if len(ranges) == 0 {
		clamped := make([]types.CharRange, 0, e.sels.Len())
		for _, s := range e.sels.All() {
			clamped = append(clamped, e.clampRange(s.Range()))
		}
		e.sels = e.sels.WithRanges(clamped)
		return
	}
	sels := make([]selection.Selection, 0, len(ranges))
	for _, r := range ranges {
		sels = append(sels, selection.New(e.clampRange(r)))
	}
	primary := e.sels.PrimaryIndex()
	if primary >= len(sels) {
		primary = len(sels) - 1
	}
	e.sels = selection.NewSet(sels, primary)
}

func (e *Editor) clampRange(r types.CharRange) types.CharRange {
	n := e.buf.RuneCount()
	if r.Start > n {
		r.Start = n
	}
	if r.End > n {
		r.End = n
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// IsBoundary reports whether err is a history no-op (undo at root, redo at
// a leaf). The shell shows these as status messages, not errors.
func IsBoundary(err error) bool { return history.IsBoundary(err) }
