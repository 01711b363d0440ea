// internal/core/structural.go
package core

import (
	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/selmode"
	"github.com/bethropolis/coral/internal/types"
)

// Raise replaces each selection's parent node with the selection itself.
// The hypothetical result is re-parsed before anything is committed; a
// result with new error nodes aborts with *StructuralInvariantError and an
// untouched buffer. Only meaningful in a syntax-node mode.
func (e *Editor) Raise() error {
	node, ok := e.activeMode().(selmode.SyntaxNode)
	if !ok {
		return inputErrorf("raise requires a syntax-node mode, not %s", e.modeTag)
	}

	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		if r, err := selmode.Move(node, e.buf, cur, selmode.VerbCurrent, 0); err == nil {
			cur = r
		}
		parent, hasParent := node.Parent(e.buf, cur)
		if !hasParent {
			return inputErrorf("selection has no parent node to raise into")
		}
		text := e.buf.Slice(cur)
		after := types.CharRange{Start: parent.Start, End: parent.Start + len([]rune(text))}
		groups = append(groups, edit.NewGroup(&after, e.replaceEdit(parent, text)))
	}

	tx, err := edit.NewTransaction(groups)
	if err != nil {
		return err
	}
	valid, err := e.buf.ValidateTransaction(tx)
	if err != nil {
		return err
	}
	if !valid {
		return &StructuralInvariantError{
			Action: "raise",
			Detail: "replacement text does not parse at the parent's position",
		}
	}
	return e.Commit(tx)
}

// Exchange reinterprets a movement verb as a text swap: the target is
// computed via the verb, then the current and target texts trade places and
// the selection follows its text to the target slot. In syntax-node modes a
// target whose swap would not re-parse cleanly is skipped and the movement
// continues in the same direction (faultless exchange).
func (e *Editor) Exchange(verb selmode.Verb, index int) error {
	mode := e.activeMode()
	if mode == nil {
		return inputErrorf("%s mode cannot exchange", e.modeTag)
	}
	_, structural := mode.(selmode.SyntaxNode)

	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		if r, err := selmode.Move(mode, e.buf, cur, selmode.VerbCurrent, 0); err == nil {
			cur = r
		}
		group, ok, err := e.exchangeGroup(mode, cur, verb, index, structural)
		if err != nil {
			return err
		}
		if !ok {
			continue // Boundary: this cursor has nowhere to go.
		}
		groups = append(groups, group)
	}
	return e.buildAndCommit(groups)
}

func (e *Editor) exchangeGroup(mode selmode.Mode, cur types.CharRange, verb selmode.Verb, index int, structural bool) (edit.Group, bool, error) {
	from := cur
	for {
		target, err := selmode.Move(mode, e.buf, from, verb, index)
		if err != nil {
			return edit.Group{}, false, err
		}
		if target == from || target == cur {
			return edit.Group{}, false, nil
		}
		if target.Overlaps(cur) {
			// An ancestor or descendant of the current node; the two texts
			// share characters and cannot trade places.
			return edit.Group{}, false, inputErrorf("cannot exchange a selection with a target that contains it")
		}

		group := e.swapGroup(cur, target)
		if !structural {
			return group, true, nil
		}
		tx, err := edit.NewTransaction([]edit.Group{group})
		if err != nil {
			return edit.Group{}, false, err
		}
		valid, err := e.buf.ValidateTransaction(tx)
		if err != nil {
			return edit.Group{}, false, err
		}
		if valid {
			return group, true, nil
		}
		if verb != selmode.VerbLeft && verb != selmode.VerbRight {
			return edit.Group{}, false, nil // Nothing further to try.
		}
		from = target // Skip the faulty target, keep moving.
	}
}

// swapGroup builds the two-edit group exchanging the texts of a and b, with
// the selection landing on the current text's new home.
func (e *Editor) swapGroup(cur, target types.CharRange) edit.Group {
	curText := e.buf.Slice(cur)
	targetText := e.buf.Slice(target)

	var sel types.CharRange
	if target.Start > cur.Start {
		// The target slot shifts by the size difference of the earlier swap.
		start := target.Start + len([]rune(targetText)) - cur.Len()
		sel = types.CharRange{Start: start, End: start + len([]rune(curText))}
	} else {
		sel = types.CharRange{Start: target.Start, End: target.Start + len([]rune(curText))}
	}
	return edit.NewGroup(&sel,
		edit.Edit{Range: cur, New: targetText, Old: curText},
		edit.Edit{Range: target, New: curText, Old: targetText},
	)
}
