// internal/selmode/character.go
package selmode

import (
	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/types"
	"github.com/rivo/uniseg"
)

// Character selects one grapheme cluster at a time. A cluster may span
// several runes (combining marks, emoji sequences), so candidates are
// computed with uniseg rather than by iterating runes.
type Character struct{}

func (Character) Name() string       { return "Character" }
func (Character) IsContiguous() bool { return true }

func (Character) Candidates(buf *buffer.Buffer, _ types.CharRange) []types.CharRange {
	var out []types.CharRange
	g := uniseg.NewGraphemes(buf.Text())
	offset := 0
	for g.Next() {
		n := len(g.Runes())
		out = append(out, types.CharRange{Start: offset, End: offset + n})
		offset += n
	}
	return out
}
