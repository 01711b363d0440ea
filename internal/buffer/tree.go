// internal/buffer/tree.go
package buffer

import (
	"github.com/bethropolis/coral/internal/syntax"
	"github.com/bethropolis/coral/internal/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// Tree returns the current syntax tree. It is valid until the next
// ApplyTransaction.
func (b *Buffer) Tree() *sitter.Tree { return b.tree }

// Language returns the buffer's language.
func (b *Buffer) Language() *syntax.Language { return b.parser.Language() }

// NodeAt returns the smallest named node covering the rune range.
func (b *Buffer) NodeAt(r types.CharRange) *sitter.Node {
	return syntax.NodeCoveringPoints(b.tree, b.charToPoint(r.Start), b.charToPoint(r.End))
}

// NodeRange converts a node's byte span to a rune range.
func (b *Buffer) NodeRange(n *sitter.Node) types.CharRange {
	return b.ByteRangeToCharRange(n.StartByte(), n.EndByte())
}

// ErrorCount returns the number of error nodes in the current tree.
func (b *Buffer) ErrorCount() int {
	return syntax.CountErrorNodes(b.tree.RootNode())
}
