// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/coral/internal/core"
	"github.com/bethropolis/coral/internal/selmode"
	"github.com/bethropolis/coral/internal/types"
)

var (
	defaultStyle   = tcell.StyleDefault
	gutterStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	selectionStyle = tcell.StyleDefault.Reverse(true)
	primaryStyle   = tcell.StyleDefault.Reverse(true).Bold(true)
	jumpLabelStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	statusStyle    = tcell.StyleDefault.Reverse(true)
)

// DrawBuffer renders the visible lines, selection highlights and jump
// labels, plus a one-line status bar at the bottom.
func DrawBuffer(t *TUI, editor *core.Editor, viewY int, statusMsg string) {
	width, height := t.Size()
	viewHeight := height - 1
	if viewHeight <= 0 || width <= 0 {
		return
	}
	screen := t.Screen()
	buf := editor.Buffer()

	lineCount := buf.LineCount()
	maxDigits := int(math.Log10(float64(maxInt(lineCount, 1)))) + 1
	gutterWidth := maxDigits + 1
	if gutterWidth >= width {
		gutterWidth = 0
	}

	sels := editor.Selections()
	primary := sels.PrimaryIndex()
	jumpLabels := editor.JumpLabels()

	for row := 0; row < viewHeight; row++ {
		line := viewY + row
		if line >= lineCount {
			break
		}
		if gutterWidth > 0 {
			num := fmt.Sprintf("%*d", maxDigits, line+1)
			col := 0
			for _, r := range num {
				screen.SetContent(col, row, r, nil, gutterStyle)
				col++
			}
		}

		lineRange := buf.LineRange(line)
		text := buf.Slice(lineRange)
		col := gutterWidth
		offset := lineRange.Start
		g := uniseg.NewGraphemes(text)
		for g.Next() && col < width {
			runes := g.Runes()
			style := styleAt(offset, sels.Ranges(), primary)
			if label, ok := jumpLabelAt(offset, jumpLabels); ok {
				screen.SetContent(col, row, label, nil, jumpLabelStyle)
			} else {
				screen.SetContent(col, row, runes[0], runes[1:], style)
			}
			col += maxInt(g.Width(), 1)
			offset += len(runes)
		}
		// An empty-range cursor at end of line still needs a cell.
		if styleAt(offset, sels.Ranges(), primary) != defaultStyle && col < width {
			screen.SetContent(col, row, ' ', nil, selectionStyle)
		}
	}

	drawStatusBar(screen, editor, width, viewHeight, statusMsg)
}

func styleAt(offset int, ranges []types.CharRange, primary int) tcell.Style {
	for i, r := range ranges {
		if r.Contains(offset) || (r.IsEmpty() && r.Start == offset) {
			if i == primary {
				return primaryStyle
			}
			return selectionStyle
		}
	}
	return defaultStyle
}

func jumpLabelAt(offset int, labels []selmode.JumpLabel) (rune, bool) {
	for _, l := range labels {
		if l.Range.Start == offset {
			return l.Label, true
		}
	}
	return 0, false
}

func drawStatusBar(screen tcell.Screen, editor *core.Editor, width, row int, msg string) {
	buf := editor.Buffer()
	name := buf.FilePath()
	if name == "" {
		name = "[no name]"
	}
	dirty := ""
	if buf.IsModified() {
		dirty = " [+]"
	}
	left := fmt.Sprintf(" %s%s  %s  %d sel", name, dirty, editor.Mode(), editor.Selections().Len())
	if msg != "" {
		left += "  " + msg
	}
	col := 0
	for _, r := range left {
		if col >= width {
			break
		}
		screen.SetContent(col, row, r, nil, statusStyle)
		col += runewidth.RuneWidth(r)
	}
	for ; col < width; col++ {
		screen.SetContent(col, row, ' ', nil, statusStyle)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
