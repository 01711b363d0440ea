// internal/selmode/column.go
package selmode

import (
	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/types"
)

// Column selects one character per line at the current selection's column,
// clamped to each line's length. Short lines yield their last character;
// empty lines have nothing to select and are skipped by vertical movement.
type Column struct{}

func (Column) Name() string       { return "Column" }
func (Column) IsContiguous() bool { return false }

func (Column) Candidates(buf *buffer.Buffer, cur types.CharRange) []types.CharRange {
	col := buf.CharToPosition(cur.Start).Col
	out := make([]types.CharRange, 0, buf.LineCount())
	for i := 0; i < buf.LineCount(); i++ {
		r := buf.LineRange(i)
		start := r.Start + col
		if start > r.End {
			start = r.End
		}
		end := start + 1
		if end > r.End {
			end = r.End
		}
		if end == start {
			if start > r.Start {
				start-- // Short line: take its last character.
			} else {
				continue // Empty line has nothing to select.
			}
		}
		out = append(out, types.CharRange{Start: start, End: end})
	}
	return out
}
