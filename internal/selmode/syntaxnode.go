// internal/selmode/syntaxnode.go
package selmode

import (
	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/syntax"
	"github.com/bethropolis/coral/internal/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// SyntaxNode selects named nodes of the syntax tree. Candidates are the
// named siblings of the current node, so Left/Right walk the sibling list
// and ToIndex addresses a child position. Vertical movement is structural:
// Up selects the parent, Down the first named child.
//
// Fine mode takes the smallest node covering the selection; Coarse mode
// expands it to the outermost node starting at the same offset, which is
// usually the whole statement or expression.
type SyntaxNode struct {
	Coarse bool
}

func (s SyntaxNode) Name() string {
	if s.Coarse {
		return "SyntaxNode (coarse)"
	}
	return "SyntaxNode"
}

func (SyntaxNode) IsContiguous() bool { return true }

// current locates the node the selection stands on.
func (s SyntaxNode) current(buf *buffer.Buffer, cur types.CharRange) *sitter.Node {
	n := buf.NodeAt(cur)
	if n == nil {
		return nil
	}
	if s.Coarse {
		n = syntax.OutermostNodeStartingAt(n)
	}
	return n
}

func (s SyntaxNode) Candidates(buf *buffer.Buffer, cur types.CharRange) []types.CharRange {
	n := s.current(buf, cur)
	if n == nil {
		return nil
	}
	parent := syntax.AncestorWithLargerRange(n)
	if parent == nil {
		return []types.CharRange{buf.NodeRange(n)}
	}
	sibs := syntax.NamedChildren(parent)
	out := make([]types.CharRange, 0, len(sibs))
	for _, sib := range sibs {
		r := buf.NodeRange(sib)
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return []types.CharRange{buf.NodeRange(n)}
	}
	return out
}

// MoveUp selects the parent node, skipping ancestors that cover the same
// range as the current node.
func (s SyntaxNode) MoveUp(buf *buffer.Buffer, cur types.CharRange) (types.CharRange, bool) {
	n := s.current(buf, cur)
	if n == nil {
		return cur, false
	}
	parent := syntax.AncestorWithLargerRange(n)
	if parent == nil {
		return cur, false
	}
	return buf.NodeRange(parent), true
}

// MoveDown selects the first named child strictly inside the current node.
func (s SyntaxNode) MoveDown(buf *buffer.Buffer, cur types.CharRange) (types.CharRange, bool) {
	n := s.current(buf, cur)
	if n == nil {
		return cur, false
	}
	for _, child := range syntax.NamedChildren(n) {
		r := buf.NodeRange(child)
		if !r.IsEmpty() && r != buf.NodeRange(n) {
			return r, true
		}
	}
	return cur, false
}

// Parent exposes the enclosing node's range for the Raise action.
func (s SyntaxNode) Parent(buf *buffer.Buffer, cur types.CharRange) (types.CharRange, bool) {
	return s.MoveUp(buf, cur)
}
