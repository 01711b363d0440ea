// internal/history/branch.go
package history

import "github.com/bethropolis/coral/internal/edit"

// SwitchBranch moves the position onto a sibling branch: delta -1 for the
// previous (older) sibling, +1 for the next (younger) one. It returns the
// two transactions the caller must apply in order: first the current
// node's inverse, then the sibling's transaction.
func (h *History) SwitchBranch(delta int) (undo, redo *edit.Transaction, err error) {
	if h.position == 0 {
		return nil, nil, ErrAtRoot
	}
	parent := h.nodes[h.position].parent
	siblings := h.nodes[parent].children
	at := -1
	for i, c := range siblings {
		if c == h.position {
			at = i
			break
		}
	}
	target := at + delta
	if target < 0 || target >= len(siblings) {
		return nil, nil, ErrNoBranch
	}
	undo = h.nodes[h.position].inverse
	h.position = siblings[target]
	return undo, h.nodes[h.position].tx, nil
}

// BranchCount returns how many siblings (including the current node) share
// the current node's parent. 1 means the position is on a linear run.
func (h *History) BranchCount() int {
	if h.position == 0 {
		return 1
	}
	return len(h.nodes[h.nodes[h.position].parent].children)
}
