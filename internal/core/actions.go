// internal/core/actions.go
package core

import (
	"regexp"
	"strings"

	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/selmode"
	"github.com/bethropolis/coral/internal/types"
)

// buildAndCommit merges per-cursor groups into one transaction and commits
// it. Overlapping groups abort the whole action with *edit.ConflictError;
// the buffer and the selections stay untouched.
func (e *Editor) buildAndCommit(groups []edit.Group) error {
	tx, err := edit.NewTransaction(groups)
	if err != nil {
		return err
	}
	return e.Commit(tx)
}

// replaceEdit builds an edit replacing r with text, reading the old text
// from the buffer.
func (e *Editor) replaceEdit(r types.CharRange, text string) edit.Edit {
	return edit.Edit{Range: r, New: text, Old: e.buf.Slice(r)}
}

// Delete removes every selection. Under a contiguous mode the deletion
// extends over the separator to the next candidate (to the previous one at
// the last candidate) and the surviving neighbor becomes the selection;
// under a non-contiguous mode only the selected text goes.
func (e *Editor) Delete() error {
	mode := e.activeMode()
	if mode == nil {
		return inputErrorf("%s mode cannot delete", e.modeTag)
	}

	var removed []string
	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		del, survivor := e.deleteExtent(mode, cur)
		removed = append(removed, e.buf.Slice(cur))
		groups = append(groups, edit.NewGroup(&survivor, e.replaceEdit(del, "")))
	}
	if err := e.buildAndCommit(groups); err != nil {
		return err
	}
	e.clip.Write(strings.Join(removed, "\n"))
	return nil
}

// deleteExtent computes the range Delete consumes for one cursor and the
// selection left behind, in group-applied-alone coordinates.
func (e *Editor) deleteExtent(mode selmode.Mode, cur types.CharRange) (del, survivor types.CharRange) {
	cands, i, ok := selmode.Locate(mode, e.buf, cur)
	if !mode.IsContiguous() || !ok || len(cands) < 2 {
		return cur, types.CharRange{Start: cur.Start, End: cur.Start}
	}
	cur = cands[i]
	if i < len(cands)-1 {
		next := cands[i+1]
		del = types.CharRange{Start: cur.Start, End: next.Start}
		survivor = types.CharRange{Start: cur.Start, End: cur.Start + next.Len()}
		return del, survivor
	}
	prev := cands[i-1]
	del = types.CharRange{Start: prev.End, End: cur.End}
	return del, prev
}

// Change deletes the selected text and leaves a caret in its place; the
// removed text goes to the clipboard. The shell follows up with insert-mode
// keystrokes.
func (e *Editor) Change() error {
	var removed []string
	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		removed = append(removed, e.buf.Slice(cur))
		caret := types.CharRange{Start: cur.Start, End: cur.Start}
		groups = append(groups, edit.NewGroup(&caret, e.replaceEdit(cur, "")))
	}
	if err := e.buildAndCommit(groups); err != nil {
		return err
	}
	e.clip.Write(strings.Join(removed, "\n"))
	return nil
}

// Insert types text at every cursor, replacing non-empty selections. The
// shell calls this once per keystroke, which keeps undo per-character.
func (e *Editor) Insert(text string) error {
	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		caret := cur.Start + len([]rune(text))
		after := types.CharRange{Start: caret, End: caret}
		groups = append(groups, edit.NewGroup(&after, e.replaceEdit(cur, text)))
	}
	return e.buildAndCommit(groups)
}

// Backspace deletes the rune before each cursor, or the selection itself
// when non-empty.
func (e *Editor) Backspace() error {
	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		if cur.IsEmpty() {
			if cur.Start == 0 {
				continue
			}
			cur = types.CharRange{Start: cur.Start - 1, End: cur.Start}
		}
		caret := types.CharRange{Start: cur.Start, End: cur.Start}
		groups = append(groups, edit.NewGroup(&caret, e.replaceEdit(cur, "")))
	}
	return e.buildAndCommit(groups)
}

// Copy yanks every selection into the clipboard, multi-cursor texts joined
// with newlines. The buffer is untouched.
func (e *Editor) Copy() error {
	parts := make([]string, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		parts = append(parts, e.buf.Slice(sel.Range()))
	}
	e.clip.Write(strings.Join(parts, "\n"))
	return nil
}

// Paste inserts the clipboard after every selection. Under a contiguous
// mode it replicates the separator found between the current and the
// adjacent candidate around the pasted text (the "smart gap"); otherwise
// the text is inserted verbatim.
func (e *Editor) Paste() error {
	text := e.clip.Read()
	if text == "" {
		return inputErrorf("clipboard is empty")
	}
	mode := e.activeMode()
	if mode == nil {
		return inputErrorf("%s mode cannot paste", e.modeTag)
	}

	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		gap := e.smartGap(mode, cur)
		at := types.CharRange{Start: cur.End, End: cur.End}
		pasted := types.CharRange{
			Start: cur.End + len([]rune(gap)),
			End:   cur.End + len([]rune(gap)) + len([]rune(text)),
		}
		groups = append(groups, edit.NewGroup(&pasted, e.replaceEdit(at, gap+text)))
	}
	return e.buildAndCommit(groups)
}

// smartGap inspects the separator between the current candidate and its
// neighbor and returns the text to put between the selection and the paste.
func (e *Editor) smartGap(mode selmode.Mode, cur types.CharRange) string {
	if !mode.IsContiguous() {
		return ""
	}
	cands, i, ok := selmode.Locate(mode, e.buf, cur)
	if !ok || len(cands) < 2 {
		return ""
	}
	if i < len(cands)-1 {
		return e.buf.Slice(types.CharRange{Start: cands[i].End, End: cands[i+1].Start})
	}
	return e.buf.Slice(types.CharRange{Start: cands[i-1].End, End: cands[i].Start})
}

// Open inserts a mode-appropriate gap after every selection and leaves a
// caret inside it. Line modes open an indented new line; syntax-node mode
// inserts the separator used between siblings; other modes degrade to a
// single space.
func (e *Editor) Open() error {
	mode := e.activeMode()
	if mode == nil {
		return inputErrorf("%s mode cannot open", e.modeTag)
	}

	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		groups = append(groups, e.openGroup(mode, sel.Range()))
	}
	return e.buildAndCommit(groups)
}

func (e *Editor) openGroup(mode selmode.Mode, cur types.CharRange) edit.Group {
	switch e.modeTag {
	case ModeLine, ModeLineFull:
		line := e.buf.CharToLine(cur.Start)
		indent := leadingIndent(e.buf.LineText(line))
		eol := e.buf.LineRange(line).End
		caret := eol + 1 + len([]rune(indent))
		sel := types.CharRange{Start: caret, End: caret}
		return edit.NewGroup(&sel, e.replaceEdit(types.CharRange{Start: eol, End: eol}, "\n"+indent))

	case ModeSyntaxNode, ModeSyntaxNodeCoarse:
		gap := e.smartGap(mode, cur)
		if gap == "" {
			gap = " "
		}
		caret := cur.End + len([]rune(gap))
		sel := types.CharRange{Start: caret, End: caret}
		return edit.NewGroup(&sel, e.replaceEdit(types.CharRange{Start: cur.End, End: cur.End}, gap))
	}

	caret := cur.End + 1
	sel := types.CharRange{Start: caret, End: caret}
	return edit.NewGroup(&sel, e.replaceEdit(types.CharRange{Start: cur.End, End: cur.End}, " "))
}

var joinGapPattern = regexp.MustCompile(`[ \t]*\n[ \t]*`)

// Join collapses every line break inside each selection to a single space.
func (e *Editor) Join() error {
	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		old := e.buf.Slice(cur)
		joined := joinGapPattern.ReplaceAllString(old, " ")
		if joined == old {
			continue
		}
		after := types.CharRange{Start: cur.Start, End: cur.Start + len([]rune(joined))}
		groups = append(groups, edit.NewGroup(&after, edit.Edit{Range: cur, New: joined, Old: old}))
	}
	return e.buildAndCommit(groups)
}

// ReplaceWith substitutes every selection's text, one edit per cursor.
func (e *Editor) ReplaceWith(text string) error {
	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		after := types.CharRange{Start: cur.Start, End: cur.Start + len([]rune(text))}
		groups = append(groups, edit.NewGroup(&after, e.replaceEdit(cur, text)))
	}
	return e.buildAndCommit(groups)
}

// ReplaceWithPattern rewrites each selection through a regular expression,
// expanding $1-style references in the template.
func (e *Editor) ReplaceWithPattern(re *regexp.Regexp, template string) error {
	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		old := e.buf.Slice(cur)
		replaced := re.ReplaceAllString(old, template)
		if replaced == old {
			continue
		}
		after := types.CharRange{Start: cur.Start, End: cur.Start + len([]rune(replaced))}
		groups = append(groups, edit.NewGroup(&after, edit.Edit{Range: cur, New: replaced, Old: old}))
	}
	return e.buildAndCommit(groups)
}

func leadingIndent(line string) string {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}
	return line
}
