// internal/selmode/engine.go
package selmode

import (
	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/types"
)

// Verb is one of the movement operators. Every verb is applied per cursor:
// moving a multi-cursor set maps the verb over each selection independently.
type Verb int

const (
	VerbCurrent Verb = iota
	VerbLeft
	VerbRight
	VerbUp
	VerbDown
	VerbFirst
	VerbLast
	VerbToIndex
)

func (v Verb) String() string {
	switch v {
	case VerbCurrent:
		return "Current"
	case VerbLeft:
		return "Left"
	case VerbRight:
		return "Right"
	case VerbUp:
		return "Up"
	case VerbDown:
		return "Down"
	case VerbFirst:
		return "First"
	case VerbLast:
		return "Last"
	case VerbToIndex:
		return "ToIndex"
	}
	return "Unknown"
}

// Move applies verb to one selection under mode. index is the 1-based
// argument of VerbToIndex and ignored otherwise. Boundary moves (Left at
// the first candidate, Up on the top line) leave the selection unchanged
// and return no error; only invalid input errors.
func Move(mode Mode, buf *buffer.Buffer, cur types.CharRange, verb Verb, index int) (types.CharRange, error) {
	cands := mode.Candidates(buf, cur)

	switch verb {
	case VerbCurrent:
		if r, ok := nearest(buf, cands, cur); ok {
			return r, nil
		}
		return cur, nil

	case VerbLeft, VerbRight:
		i, ok := currentIndex(buf, cands, cur)
		if !ok {
			return cur, nil
		}
		if verb == VerbLeft {
			i--
		} else {
			i++
		}
		if i < 0 || i >= len(cands) {
			return cur, nil // No wrapping at the boundary.
		}
		return cands[i], nil

	case VerbUp, VerbDown:
		if vm, ok := mode.(VerticalMover); ok {
			var r types.CharRange
			var moved bool
			if verb == VerbUp {
				r, moved = vm.MoveUp(buf, cur)
			} else {
				r, moved = vm.MoveDown(buf, cur)
			}
			if moved {
				return r, nil
			}
			return cur, nil
		}
		if r, ok := nearestVertical(buf, cands, cur, verb == VerbDown); ok {
			return r, nil
		}
		return cur, nil

	case VerbFirst:
		if len(cands) == 0 {
			return cur, nil
		}
		return cands[0], nil

	case VerbLast:
		if len(cands) == 0 {
			return cur, nil
		}
		return cands[len(cands)-1], nil

	case VerbToIndex:
		if index < 1 || index > len(cands) {
			return cur, inputErrorf("index %d out of range (1..%d)", index, len(cands))
		}
		return cands[index-1], nil
	}

	return cur, inputErrorf("unknown movement verb %d", verb)
}

// Locate returns the mode's candidates for a selection together with the
// index of the candidate the selection currently stands on. Edit actions
// use it to reason about neighbors (separators, survivors).
func Locate(mode Mode, buf *buffer.Buffer, cur types.CharRange) ([]types.CharRange, int, bool) {
	cands := mode.Candidates(buf, cur)
	i, ok := currentIndex(buf, cands, cur)
	return cands, i, ok
}

// nearest resolves the "current" candidate for a cursor position. An exact
// range match wins, then a candidate overlapping the selection, then the
// closest by line distance, column distance, and finally length. Ties go to
// the earlier candidate in document order.
func nearest(buf *buffer.Buffer, cands []types.CharRange, cur types.CharRange) (types.CharRange, bool) {
	if len(cands) == 0 {
		return types.CharRange{}, false
	}
	curPos := buf.CharToPosition(cur.Start)

	best := -1
	var bestKey [5]int
	for i, c := range cands {
		key := rankKey(buf, c, cur, curPos)
		if best == -1 || less(key, bestKey) {
			best, bestKey = i, key
		}
	}
	return cands[best], true
}

func rankKey(buf *buffer.Buffer, c, cur types.CharRange, curPos types.Position) [5]int {
	exact := 1
	if c == cur {
		exact = 0
	}
	overlap := 1
	if c.Overlaps(cur) || c.Contains(cur.Start) {
		overlap = 0
	}
	cPos := buf.CharToPosition(c.Start)
	lineDist := abs(cPos.Line - curPos.Line)
	colDist := abs(cPos.Col - curPos.Col)
	return [5]int{exact, overlap, lineDist, colDist, c.Len()}
}

func less(a, b [5]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// currentIndex finds the enumeration index of the selection's current
// candidate, resolving via the nearest policy when the selection does not
// match a candidate exactly.
func currentIndex(buf *buffer.Buffer, cands []types.CharRange, cur types.CharRange) (int, bool) {
	r, ok := nearest(buf, cands, cur)
	if !ok {
		return 0, false
	}
	for i, c := range cands {
		if c == r {
			return i, true
		}
	}
	return 0, false
}

// nearestVertical picks the candidate on the closest line strictly below
// (down) or above the current line, breaking ties by column distance.
func nearestVertical(buf *buffer.Buffer, cands []types.CharRange, cur types.CharRange, down bool) (types.CharRange, bool) {
	curPos := buf.CharToPosition(cur.Start)

	best := -1
	var bestLine, bestCol int
	for i, c := range cands {
		p := buf.CharToPosition(c.Start)
		if down && p.Line <= curPos.Line {
			continue
		}
		if !down && p.Line >= curPos.Line {
			continue
		}
		lineDist := abs(p.Line - curPos.Line)
		colDist := abs(p.Col - curPos.Col)
		if best == -1 || lineDist < bestLine || (lineDist == bestLine && colDist < bestCol) {
			best, bestLine, bestCol = i, lineDist, colDist
		}
	}
	if best == -1 {
		return types.CharRange{}, false
	}
	return cands[best], true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
