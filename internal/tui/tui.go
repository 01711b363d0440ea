// internal/tui/tui.go

// Package tui owns the tcell screen and the buffer/selection renderer.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TUI wraps the terminal screen. The hardware cursor stays hidden for the
// whole session: cursors are drawn as styled cells, which is the only way
// to show more than one of them.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes the terminal screen.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.SetStyle(defaultStyle)
	s.HideCursor()
	return &TUI{screen: s}, nil
}

// Close restores the terminal to its previous state.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent blocks until the next terminal event.
func (t *TUI) PollEvent() tcell.Event { return t.screen.PollEvent() }

// Clear wipes the back buffer before a redraw.
func (t *TUI) Clear() { t.screen.Clear() }

// Show flushes the back buffer to the terminal.
func (t *TUI) Show() { t.screen.Show() }

// Sync redraws the whole terminal, after a resize.
func (t *TUI) Sync() { t.screen.Sync() }

// Size returns the terminal's width and height.
func (t *TUI) Size() (int, int) { return t.screen.Size() }

// Screen exposes the underlying tcell screen to the drawing routines.
func (t *TUI) Screen() tcell.Screen { return t.screen }
