// internal/selmode/token.go
package selmode

import (
	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/syntax"
	"github.com/bethropolis/coral/internal/types"
)

// Token selects the leaf tokens of the syntax tree, in document order.
type Token struct{}

func (Token) Name() string       { return "Token" }
func (Token) IsContiguous() bool { return true }

func (Token) Candidates(buf *buffer.Buffer, _ types.CharRange) []types.CharRange {
	leaves := syntax.CollectLeaves(buf.Tree().RootNode(), nil)
	out := make([]types.CharRange, 0, len(leaves))
	for _, n := range leaves {
		r := buf.NodeRange(n)
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	return out
}
