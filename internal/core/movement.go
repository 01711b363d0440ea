// internal/core/movement.go
package core

import (
	"github.com/bethropolis/coral/internal/selection"
	"github.com/bethropolis/coral/internal/selmode"
	"github.com/bethropolis/coral/internal/types"
)

// ApplyMovement applies a movement verb to every cursor independently and
// installs the resulting selection set. index is the 1-based argument of
// VerbToIndex. In Undo-branch mode the verbs navigate history instead:
// Left undoes, Right redoes, Up and Down step between sibling branches.
func (e *Editor) ApplyMovement(verb selmode.Verb, index int) error {
	if e.modeTag == ModeUndoBranch {
		return e.historyMovement(verb)
	}
	mode := e.activeMode()
	if mode == nil {
		return inputErrorf("%s mode has no movement", e.modeTag)
	}

	moved := make([]types.CharRange, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		r, err := selmode.Move(mode, e.buf, sel.Range(), verb, index)
		if err != nil {
			return err // Input errors leave the whole set unchanged.
		}
		moved = append(moved, r)
	}
	e.sels = e.sels.WithRanges(moved)
	e.dispatchSelection()
	return nil
}

func (e *Editor) historyMovement(verb selmode.Verb) error {
	switch verb {
	case selmode.VerbLeft:
		return e.Undo()
	case selmode.VerbRight:
		return e.Redo()
	case selmode.VerbUp:
		return e.switchBranch(-1)
	case selmode.VerbDown:
		return e.switchBranch(+1)
	}
	return inputErrorf("%s is not a history movement", verb)
}

// StartJump begins a progressive-label jump over the active mode's
// candidates, scoped to the primary selection. The other cursors collapse;
// jump is a single-cursor movement.
func (e *Editor) StartJump() error {
	mode := e.activeMode()
	if mode == nil {
		return inputErrorf("%s mode has no candidates to jump to", e.modeTag)
	}
	session, err := selmode.NewJumpSession(e.buf, mode, e.sels.Primary().Range(), e.cfg.JumpAlphabet)
	if err != nil {
		return err
	}
	e.jump = session
	return nil
}

// JumpLabels returns the labels of the active jump session, for rendering,
// or nil when no session is running.
func (e *Editor) JumpLabels() []selmode.JumpLabel {
	if e.jump == nil {
		return nil
	}
	return e.jump.Labels()
}

// JumpKey feeds one keystroke to the jump session. done reports that the
// jump resolved (or errored out); the session ends either way except on a
// retryable input error.
func (e *Editor) JumpKey(r rune) (done bool, err error) {
	if e.jump == nil {
		return true, inputErrorf("no jump in progress")
	}
	target, resolved, err := e.jump.Key(r)
	if err != nil {
		return false, err // Session stays alive; a wrong key is retryable.
	}
	if !resolved {
		return false, nil
	}
	e.jump = nil
	e.sels = selection.NewSet([]selection.Selection{selection.New(target)}, 0)
	e.dispatchSelection()
	return true, nil
}

// AbortJump cancels the jump session, keeping the pre-jump selections.
func (e *Editor) AbortJump() { e.jump = nil }
