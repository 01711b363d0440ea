// internal/history/history.go

// Package history stores applied transactions as a branching tree. Undoing
// and then editing starts a sibling branch instead of discarding the redo
// chain, so no committed state is ever unreachable.
package history

import (
	"errors"

	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/logger"
)

var (
	// ErrAtRoot reports Undo with nothing to undo. A no-op, not a failure.
	ErrAtRoot = errors.New("already at oldest change")
	// ErrAtLeaf reports Redo with nothing to redo.
	ErrAtLeaf = errors.New("already at newest change")
	// ErrNoBranch reports branch navigation with no sibling branch.
	ErrNoBranch = errors.New("no sibling branch")
)

// node is one history entry. Nodes live in a growable arena and reference
// each other by index; the root (index 0) represents the pristine state and
// carries no transaction.
type node struct {
	tx       *edit.Transaction
	inverse  *edit.Transaction
	parent   int
	children []int
}

// History is the undo tree with a position pointer. position always indexes
// a live node; the zero value is not usable, use New.
type History struct {
	nodes    []node
	position int
	maxNodes int
}

// New creates an empty history. maxNodes caps the arena; zero means
// unlimited. The cap is advisory: once reached, further pushes are still
// recorded (dropping mid-tree nodes would orphan branches).
func New(maxNodes int) *History {
	return &History{
		nodes:    []node{{parent: -1}},
		maxNodes: maxNodes,
	}
}

// Push records a committed transaction as a new child of the current
// position and moves the position onto it. If the position already had
// children from prior undos, the new node becomes a younger sibling and
// Redo will now follow it.
func (h *History) Push(tx *edit.Transaction) {
	if h.maxNodes > 0 && len(h.nodes) >= h.maxNodes {
		logger.Warnf("history: %d nodes recorded, past the configured cap of %d", len(h.nodes), h.maxNodes)
	}
	idx := len(h.nodes)
	h.nodes = append(h.nodes, node{
		tx:      tx,
		inverse: tx.Inverse(),
		parent:  h.position,
	})
	h.nodes[h.position].children = append(h.nodes[h.position].children, idx)
	h.position = idx
}

// Undo moves the position to its parent and returns the inverse transaction
// the caller must apply. ErrAtRoot when there is nothing to undo.
func (h *History) Undo() (*edit.Transaction, error) {
	if h.position == 0 {
		return nil, ErrAtRoot
	}
	inv := h.nodes[h.position].inverse
	h.position = h.nodes[h.position].parent
	return inv, nil
}

// Redo moves the position onto its most recent child and returns that
// child's transaction for re-application. ErrAtLeaf at a leaf.
func (h *History) Redo() (*edit.Transaction, error) {
	children := h.nodes[h.position].children
	if len(children) == 0 {
		return nil, ErrAtLeaf
	}
	h.position = children[len(children)-1]
	return h.nodes[h.position].tx, nil
}

// IsDirty reports whether the position differs from the pristine root.
func (h *History) IsDirty() bool { return h.position != 0 }

// Len returns the number of recorded transactions.
func (h *History) Len() int { return len(h.nodes) - 1 }

// IsBoundary reports whether err is one of the history no-op conditions.
func IsBoundary(err error) bool {
	return errors.Is(err, ErrAtRoot) || errors.Is(err, ErrAtLeaf) || errors.Is(err, ErrNoBranch)
}
