// internal/syntax/parser.go
package syntax

import (
	"context"
	"fmt"

	"github.com/bethropolis/coral/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
)

// Parser manages a tree-sitter parser for one language.
// It is not safe for concurrent use; the editing core is single-threaded.
type Parser struct {
	parser *sitter.Parser
	lang   *Language
}

// NewParser creates a parser for the given language.
func NewParser(lang *Language) (*Parser, error) {
	if lang == nil || lang.TreeSitterLang == nil {
		return nil, fmt.Errorf("no language provided for parsing")
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang.TreeSitterLang)
	return &Parser{parser: parser, lang: lang}, nil
}

// Language returns the language this parser was built for.
func (p *Parser) Language() *Language { return p.lang }

// Parse produces a syntax tree for content. When oldTree is non-nil and has
// been told about the edits since its creation (via Tree.Edit), the parse is
// incremental.
func (p *Parser) Parse(oldTree *sitter.Tree, content []byte) (*sitter.Tree, error) {
	tree, err := p.parser.ParseCtx(context.Background(), oldTree, content)
	if err != nil {
		logger.Errorf("Tree-sitter parsing error: %v", err)
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	return tree, nil
}

// CountErrorNodes walks the tree and counts ERROR and missing nodes.
// Raise validation compares this count before and after a hypothetical edit.
func CountErrorNodes(node *sitter.Node) int {
	if node == nil || !node.HasError() && !node.IsMissing() {
		return 0
	}
	count := 0
	if node.Type() == "ERROR" || node.IsMissing() {
		count++
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		count += CountErrorNodes(node.Child(i))
	}
	return count
}

// NodeCoveringPoints returns the smallest named node that spans the given
// row/column range. Points are row plus byte column, the coordinates the
// tree-sitter bindings navigate by.
func NodeCoveringPoints(tree *sitter.Tree, start, end sitter.Point) *sitter.Node {
	if tree == nil {
		return nil
	}
	return tree.RootNode().NamedDescendantForPointRange(start, end)
}

// OutermostNodeStartingAt walks ancestors of node while they share its start
// byte, returning the largest node anchored at the same position. The root
// node is excluded so that coarse selection never swallows the whole file.
func OutermostNodeStartingAt(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	for {
		parent := node.Parent()
		if parent == nil || parent.Parent() == nil || parent.StartByte() != node.StartByte() {
			return node
		}
		node = parent
	}
}

// AncestorWithLargerRange returns the nearest ancestor whose span strictly
// contains the node's span. Parents that cover the exact same bytes are
// skipped, otherwise "up" movements would get stuck on wrapper nodes.
func AncestorWithLargerRange(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.StartByte() != node.StartByte() || parent.EndByte() != node.EndByte() {
			return parent
		}
	}
	return nil
}

// NamedChildren collects the named children of node in document order.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	n := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, n)
	for i := 0; i < n; i++ {
		if child := node.NamedChild(i); child != nil {
			children = append(children, child)
		}
	}
	return children
}

// CollectLeaves appends every leaf node (token) under node, in document order.
func CollectLeaves(node *sitter.Node, leaves []*sitter.Node) []*sitter.Node {
	if node == nil {
		return leaves
	}
	if node.ChildCount() == 0 {
		if node.StartByte() < node.EndByte() {
			leaves = append(leaves, node)
		}
		return leaves
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		leaves = CollectLeaves(node.Child(i), leaves)
	}
	return leaves
}
