// internal/app/input.go
package app

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/coral/internal/core"
	"github.com/bethropolis/coral/internal/selmode"
)

func (a *App) handleKey(ev *tcell.EventKey) {
	switch a.state {
	case stateInsert:
		a.handleInsertKey(ev)
	case stateJump:
		a.handleJumpKey(ev)
	case statePrompt:
		a.handlePromptKey(ev)
	default:
		a.handleNormalKey(ev)
	}
}

func (a *App) handleNormalKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		close(a.quit)
		return
	case tcell.KeyCtrlS:
		a.save()
		return
	case tcell.KeyLeft:
		a.move(selmode.VerbLeft)
		return
	case tcell.KeyRight:
		a.move(selmode.VerbRight)
		return
	case tcell.KeyUp:
		a.move(selmode.VerbUp)
		return
	case tcell.KeyDown:
		a.move(selmode.VerbDown)
		return
	case tcell.KeyHome:
		a.move(selmode.VerbFirst)
		return
	case tcell.KeyEnd:
		a.move(selmode.VerbLast)
		return
	case tcell.KeyEnter:
		a.applyCount()
		return
	case tcell.KeyTab:
		a.report(a.editor.AddCursorFromPrimary())
		return
	case tcell.KeyEscape:
		a.countDigits = nil
		a.editor.CollapseCursors()
		return
	}

	r := ev.Rune()
	if r >= '0' && r <= '9' {
		a.countDigits = append(a.countDigits, r)
		return
	}

	switch r {
	// Movement.
	case 'h':
		a.move(selmode.VerbLeft)
	case 'l':
		a.move(selmode.VerbRight)
	case 'k':
		a.move(selmode.VerbUp)
	case 'j':
		a.move(selmode.VerbDown)
	case 'f':
		if err := a.editor.StartJump(); err != nil {
			a.report(err)
			return
		}
		a.state = stateJump

	// Selection modes.
	case 'c':
		a.editor.SetMode(core.ModeCharacter)
	case 'w':
		a.editor.SetMode(core.ModeWord)
	case 'W':
		a.editor.SetMode(core.ModeWordCoarse)
	case 't':
		a.editor.SetMode(core.ModeToken)
	case 'e':
		a.editor.SetMode(core.ModeLine)
	case 'E':
		a.editor.SetMode(core.ModeLineFull)
	case 'v':
		a.editor.SetMode(core.ModeColumn)
	case 's':
		a.editor.SetMode(core.ModeSyntaxNode)
	case 'S':
		a.editor.SetMode(core.ModeSyntaxNodeCoarse)
	case 'u':
		a.editor.SetMode(core.ModeUndoBranch)
	case 'g':
		a.editor.SetMode(core.ModeGitHunk)
	case 'M':
		a.editor.SetMode(core.ModeMark)
	case 'm':
		a.editor.ToggleMark()
	case '/':
		a.state = statePrompt
		a.promptText = nil

	// Actions.
	case 'd':
		a.report(a.editor.Delete())
	case 'o':
		a.report(a.editor.Open())
	case 'r':
		a.report(a.editor.Raise())
	case 'x':
		a.report(a.editor.Exchange(selmode.VerbRight, 0))
	case 'X':
		a.report(a.editor.Exchange(selmode.VerbLeft, 0))
	case 'y':
		a.report(a.editor.Copy())
	case 'p':
		a.report(a.editor.Paste())
	case 'J':
		a.report(a.editor.Join())
	case 'C':
		if a.report(a.editor.Change()) {
			a.state = stateInsert
		}
	case 'i':
		a.state = stateInsert
	case 'U':
		a.report(a.editor.Undo())
	case 'R':
		a.report(a.editor.Redo())
	case '~':
		a.editor.SwapSelectionEnds()
	}
}

func (a *App) handleInsertKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.state = stateNormal
	case tcell.KeyEnter:
		a.report(a.editor.Insert("\n"))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.report(a.editor.Backspace())
	case tcell.KeyTab:
		a.report(a.editor.Insert("\t"))
	case tcell.KeyRune:
		a.report(a.editor.Insert(string(ev.Rune())))
	}
}

func (a *App) handleJumpKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		a.editor.AbortJump()
		a.state = stateNormal
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	done, err := a.editor.JumpKey(ev.Rune())
	if err != nil {
		a.report(err)
	}
	if done {
		a.state = stateNormal
	}
}

func (a *App) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.state = stateNormal
		a.promptText = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.promptText) > 0 {
			a.promptText = a.promptText[:len(a.promptText)-1]
		}
	case tcell.KeyEnter:
		a.runSearch(string(a.promptText))
		a.state = stateNormal
		a.promptText = nil
	case tcell.KeyRune:
		a.promptText = append(a.promptText, ev.Rune())
	}
}

func (a *App) runSearch(term string) {
	ranges, err := a.findManager.Search(a.editor.Buffer(), term, false)
	if err != nil {
		a.report(err)
		return
	}
	a.editor.SetSearchRanges(ranges)
	a.editor.SetMode(core.ModeSearch)
	a.setStatus("%d match(es)", len(ranges))
}

func (a *App) move(verb selmode.Verb) {
	a.countDigits = nil
	a.report(a.editor.ApplyMovement(verb, 0))
}

// applyCount turns accumulated digits into a ToIndex movement.
func (a *App) applyCount() {
	if len(a.countDigits) == 0 {
		return
	}
	n, err := strconv.Atoi(string(a.countDigits))
	a.countDigits = nil
	if err != nil {
		return
	}
	a.report(a.editor.ApplyMovement(selmode.VerbToIndex, n))
}

// report surfaces an error in the status bar; boundary no-ops get the mild
// phrasing they deserve. Returns true when err is nil.
func (a *App) report(err error) bool {
	if err == nil {
		return true
	}
	if core.IsBoundary(err) {
		a.setStatus("%v", err)
		return false
	}
	a.setStatus("error: %v", err)
	return false
}
