// internal/selmode/line.go
package selmode

import (
	"unicode"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/types"
)

// Line selects whole lines. Trimmed mode covers each line's content without
// leading/trailing whitespace or the newline; Full mode covers the line
// including its newline, which is what the line-wise edit actions cut and
// paste.
type Line struct {
	Full bool
}

func (l Line) Name() string {
	if l.Full {
		return "Line (full)"
	}
	return "Line"
}

func (Line) IsContiguous() bool { return true }

func (l Line) Candidates(buf *buffer.Buffer, _ types.CharRange) []types.CharRange {
	out := make([]types.CharRange, 0, buf.LineCount())
	for i := 0; i < buf.LineCount(); i++ {
		if l.Full {
			out = append(out, buf.LineRangeFull(i))
			continue
		}
		out = append(out, trimmedLineRange(buf, i))
	}
	return out
}

func trimmedLineRange(buf *buffer.Buffer, line int) types.CharRange {
	r := buf.LineRange(line)
	text := []rune(buf.Slice(r))
	start, end := 0, len(text)
	for start < end && unicode.IsSpace(text[start]) {
		start++
	}
	for end > start && unicode.IsSpace(text[end-1]) {
		end--
	}
	return types.CharRange{Start: r.Start + start, End: r.Start + end}
}
