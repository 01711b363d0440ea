// internal/core/editor.go

// Package core wires the buffer, selection set, selection modes and history
// into the editing facade the front end drives. All mutation goes through
// transactions built here; the shell only ever sees movement and action
// entry points that return typed errors.
package core

import (
	"fmt"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/config"
	"github.com/bethropolis/coral/internal/core/clipboard"
	"github.com/bethropolis/coral/internal/event"
	"github.com/bethropolis/coral/internal/history"
	"github.com/bethropolis/coral/internal/logger"
	"github.com/bethropolis/coral/internal/selection"
	"github.com/bethropolis/coral/internal/selmode"
	"github.com/bethropolis/coral/internal/types"
)

// ModeTag names the active selection mode. All selections in the set share
// one tag; switching tags re-resolves every cursor via the Current verb.
type ModeTag int

const (
	ModeCharacter ModeTag = iota
	ModeWord
	ModeWordCoarse
	ModeToken
	ModeLine
	ModeLineFull
	ModeColumn
	ModeSyntaxNode
	ModeSyntaxNodeCoarse
	ModeSearch
	ModeDiagnostic
	ModeQuickfix
	ModeGitHunk
	ModeMark
	ModeUndoBranch
)

var modeNames = map[ModeTag]string{
	ModeCharacter:        "Character",
	ModeWord:             "Word",
	ModeWordCoarse:       "Word (coarse)",
	ModeToken:            "Token",
	ModeLine:             "Line",
	ModeLineFull:         "Line (full)",
	ModeColumn:           "Column",
	ModeSyntaxNode:       "SyntaxNode",
	ModeSyntaxNodeCoarse: "SyntaxNode (coarse)",
	ModeSearch:           "Search",
	ModeDiagnostic:       "Diagnostic",
	ModeQuickfix:         "Quickfix",
	ModeGitHunk:          "Git hunk",
	ModeMark:             "Mark",
	ModeUndoBranch:       "Undo branch",
}

func (t ModeTag) String() string {
	if s, ok := modeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ModeTag(%d)", int(t))
}

// Editor is the editing core for one buffer.
type Editor struct {
	buf     *buffer.Buffer
	sels    *selection.Set
	hist    *history.History
	clip    *clipboard.Manager
	events  *event.Manager
	cfg     config.EditorConfig
	modeTag ModeTag
	jump    *selmode.JumpSession

	// Externally supplied range sources, one per list-backed mode.
	searchRanges   []types.CharRange
	diags          []selmode.Diagnostic
	diagSeverity   string
	quickfixRanges []types.CharRange
	hunkRanges     []types.CharRange
	markRanges     []types.CharRange
}

// NewEditor creates an editor over buf with one cursor on the first
// character.
func NewEditor(buf *buffer.Buffer, cfg config.EditorConfig, events *event.Manager) *Editor {
	e := &Editor{
		buf:     buf,
		hist:    history.New(cfg.MaxHistory),
		clip:    clipboard.NewManager(cfg.SystemClipboard),
		events:  events,
		cfg:     cfg,
		modeTag: ModeLine,
	}
	end := 1
	if buf.RuneCount() == 0 {
		end = 0
	}
	e.sels = selection.NewSet([]selection.Selection{selection.New(types.CharRange{Start: 0, End: end})}, 0)
	e.resolveAll()
	return e
}

// Buffer returns the underlying buffer.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Selections returns the current selection set.
func (e *Editor) Selections() *selection.Set { return e.sels }

// Mode returns the active mode tag.
func (e *Editor) Mode() ModeTag { return e.modeTag }

// Clipboard returns the clipboard manager.
func (e *Editor) Clipboard() *clipboard.Manager { return e.clip }

// History returns the undo history.
func (e *Editor) History() *history.History { return e.hist }

// SetMode switches the active selection mode and re-resolves every cursor
// with the Current policy, so each selection snaps to the nearest unit of
// the new mode.
func (e *Editor) SetMode(tag ModeTag) {
	if e.modeTag == tag {
		return
	}
	e.modeTag = tag
	e.jump = nil
	if tag != ModeUndoBranch {
		e.resolveAll()
	}
	e.dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: tag.String()})
	logger.Debugf("core: mode set to %s", tag)
}

// activeMode materializes the strategy for the current tag. UndoBranch has
// no candidate enumeration; its verbs are intercepted by ApplyMovement.
func (e *Editor) activeMode() selmode.Mode {
	switch e.modeTag {
	case ModeCharacter:
		return selmode.Character{}
	case ModeWord:
		return selmode.Word{}
	case ModeWordCoarse:
		return selmode.Word{Coarse: true}
	case ModeToken:
		return selmode.Token{}
	case ModeLine:
		return selmode.Line{}
	case ModeLineFull:
		return selmode.Line{Full: true}
	case ModeColumn:
		return selmode.Column{}
	case ModeSyntaxNode:
		return selmode.SyntaxNode{}
	case ModeSyntaxNodeCoarse:
		return selmode.SyntaxNode{Coarse: true}
	case ModeSearch:
		return selmode.SearchMatches(e.searchRanges)
	case ModeDiagnostic:
		return selmode.Diagnostics(e.diags, e.diagSeverity)
	case ModeQuickfix:
		return selmode.Quickfix(e.quickfixRanges)
	case ModeGitHunk:
		return selmode.GitHunks(e.hunkRanges)
	case ModeMark:
		return selmode.Marks(e.markRanges)
	}
	return nil
}

// resolveAll snaps every selection to its mode-current candidate.
func (e *Editor) resolveAll() {
	mode := e.activeMode()
	if mode == nil {
		return
	}
	ranges := make([]types.CharRange, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		r, err := selmode.Move(mode, e.buf, sel.Range(), selmode.VerbCurrent, 0)
		if err != nil {
			r = sel.Range()
		}
		ranges = append(ranges, r)
	}
	e.sels = e.sels.WithRanges(ranges)
}

// SetSearchRanges installs engine-provided match ranges for Search mode.
func (e *Editor) SetSearchRanges(ranges []types.CharRange) {
	e.searchRanges = ranges
	if e.modeTag == ModeSearch {
		e.resolveAll()
	}
}

// SetDiagnostics installs provider diagnostics; severity filters candidates
// (empty keeps all).
func (e *Editor) SetDiagnostics(diags []selmode.Diagnostic, severity string) {
	e.diags = diags
	e.diagSeverity = severity
	if e.modeTag == ModeDiagnostic {
		e.resolveAll()
	}
}

// SetQuickfixRanges installs the quickfix list's ranges for this buffer.
func (e *Editor) SetQuickfixRanges(ranges []types.CharRange) {
	e.quickfixRanges = ranges
	if e.modeTag == ModeQuickfix {
		e.resolveAll()
	}
}

// SetGitHunkRanges installs changed-region ranges from the diff tracker.
func (e *Editor) SetGitHunkRanges(ranges []types.CharRange) {
	e.hunkRanges = ranges
	if e.modeTag == ModeGitHunk {
		e.resolveAll()
	}
}

// ToggleMark adds the primary selection as a mark, or removes the mark it
// exactly matches.
func (e *Editor) ToggleMark() {
	r := e.sels.Primary().Range()
	for i, m := range e.markRanges {
		if m == r {
			e.markRanges = append(e.markRanges[:i], e.markRanges[i+1:]...)
			return
		}
	}
	e.markRanges = append(e.markRanges, r)
}

// SetSelections installs an externally built selection set (integration
// bridges, pickers). Ranges are taken as-is, without mode re-resolution.
func (e *Editor) SetSelections(ranges []types.CharRange, primary int) {
	sels := make([]selection.Selection, 0, len(ranges))
	for _, r := range ranges {
		sels = append(sels, selection.New(e.clampRange(r)))
	}
	e.sels = selection.NewSet(sels, primary)
	e.dispatchSelection()
}

// AddCursorFromPrimary duplicates the primary cursor onto the next
// candidate of the active mode, keeping the primary on the new cursor.
func (e *Editor) AddCursorFromPrimary() error {
	mode := e.activeMode()
	if mode == nil {
		return inputErrorf("cannot add cursors in %s mode", e.modeTag)
	}
	cur := e.sels.Primary().Range()
	next, err := selmode.Move(mode, e.buf, cur, selmode.VerbRight, 0)
	if err != nil {
		return err
	}
	if next == cur {
		return inputErrorf("no next candidate to add a cursor on")
	}
	e.sels = e.sels.Add(selection.New(next), true)
	e.dispatchSelection()
	return nil
}

// RemoveCursor drops the primary cursor, keeping at least one.
func (e *Editor) RemoveCursor() {
	e.sels = e.sels.Remove(e.sels.PrimaryIndex())
	e.dispatchSelection()
}

// CollapseCursors keeps only the primary cursor.
func (e *Editor) CollapseCursors() {
	e.sels = e.sels.CollapseToPrimary()
	e.dispatchSelection()
}

// SwapSelectionEnds flips anchor and head of every selection.
func (e *Editor) SwapSelectionEnds() {
	sels := make([]selection.Selection, 0, e.sels.Len())
	for _, s := range e.sels.All() {
		sels = append(sels, s.SwapEnds())
	}
	e.sels = e.sels.Replace(sels)
	e.dispatchSelection()
}

func (e *Editor) dispatch(t event.Type, data any) {
	if e.events != nil {
		e.events.Dispatch(t, data)
	}
}

func (e *Editor) dispatchSelection() {
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{
		Primary: e.sels.PrimaryIndex(),
		Count:   e.sels.Len(),
	})
}
