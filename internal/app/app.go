// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/config"
	"github.com/bethropolis/coral/internal/core"
	"github.com/bethropolis/coral/internal/core/find"
	"github.com/bethropolis/coral/internal/event"
	"github.com/bethropolis/coral/internal/gitdiff"
	"github.com/bethropolis/coral/internal/logger"
	"github.com/bethropolis/coral/internal/tui"
)

// inputState is the shell's modal state.
type inputState int

const (
	stateNormal inputState = iota
	stateInsert
	stateJump
	statePrompt
)

// App encapsulates the editor core, the terminal front end and the main
// event loop.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	eventManager *event.Manager
	findManager  *find.Manager
	diffTracker  *gitdiff.Tracker
	filePath     string

	state       inputState
	promptText  []rune
	countDigits []rune
	viewY       int

	statusMessage     string
	statusMessageTime time.Time

	quit chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	buf, err := buffer.Load(filePath)
	if err != nil {
		tuiManager.Close()
		return nil, fmt.Errorf("buffer load failed: %w", err)
	}

	eventManager := event.NewManager()
	cfg := config.Get()
	editor := core.NewEditor(buf, cfg.Editor, eventManager)

	a := &App{
		tuiManager:   tuiManager,
		editor:       editor,
		eventManager: eventManager,
		findManager:  find.NewManager(),
		diffTracker:  gitdiff.NewTracker(buf.Text()),
		filePath:     filePath,
		quit:         make(chan struct{}),
	}

	eventManager.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		a.editor.SetGitHunkRanges(a.diffTracker.Hunks(buf))
		return false
	})
	eventManager.Subscribe(event.TypeBufferSaved, func(e event.Event) bool {
		a.diffTracker.SetBaseline(buf.Text())
		return false
	})

	return a, nil
}

// Run drives the synchronous edit loop: poll one event, dispatch it, draw.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	logger.Infof("app: editing %s", a.filePath)

	a.draw()
	for {
		select {
		case <-a.quit:
			return nil
		default:
		}

		ev := a.tuiManager.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventResize:
			a.tuiManager.Sync()
		}
		a.draw()
	}
}

func (a *App) draw() {
	a.scrollToPrimary()
	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, a.viewY, a.statusLine())
	a.tuiManager.Show()
}

func (a *App) statusLine() string {
	switch a.state {
	case stateInsert:
		return "-- INSERT --"
	case stateJump:
		return "-- JUMP --"
	case statePrompt:
		return "/" + string(a.promptText)
	}
	if a.statusMessage != "" && time.Since(a.statusMessageTime) < 4*time.Second {
		return a.statusMessage
	}
	return ""
}

func (a *App) setStatus(format string, args ...any) {
	a.statusMessage = fmt.Sprintf(format, args...)
	a.statusMessageTime = time.Now()
}

// scrollToPrimary keeps the primary cursor inside the viewport with the
// configured scroll margin.
func (a *App) scrollToPrimary() {
	cfg := config.Get()
	_, height := a.tuiManager.Size()
	viewHeight := height - 1
	if viewHeight <= 0 {
		return
	}
	line := a.editor.Buffer().CharToPosition(a.editor.Selections().Primary().Cursor()).Line
	off := cfg.Editor.ScrollOff
	if line < a.viewY+off {
		a.viewY = line - off
	}
	if line >= a.viewY+viewHeight-off {
		a.viewY = line - viewHeight + off + 1
	}
	if a.viewY < 0 {
		a.viewY = 0
	}
}

func (a *App) save() {
	if err := a.editor.Buffer().Save(""); err != nil {
		a.setStatus("save failed: %v", err)
		return
	}
	a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.editor.Buffer().FilePath()})
	a.setStatus("saved %s", a.editor.Buffer().FilePath())
}
