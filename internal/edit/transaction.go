// internal/edit/transaction.go
package edit

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/bethropolis/coral/internal/types"
)

// ConflictError reports two cursors whose computed edits overlap. The whole
// action is aborted; partially applying a multi-cursor edit would leave the
// remaining cursors with undefined coordinates.
type ConflictError struct {
	A, B types.CharRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting edits at %s and %s", e.A, e.B)
}

// Transaction is an atomic, invertible batch of edits. Edits are stored
// normalized: sorted by position, pairwise non-overlapping, with each edit's
// coordinates already adjusted for the edits before it, so they can be
// spliced into the text sequentially in order.
type Transaction struct {
	edits []Edit
	sels  []types.CharRange
}

// NewTransaction merges per-cursor groups into one transaction. All group
// edits are expressed against the same pre-edit snapshot; they are sorted
// globally, verified pairwise non-overlapping, and each edit is shifted by
// the accumulated delta of the edits before it so the result can be spliced
// sequentially. Overlapping edits abort the whole build with *ConflictError.
func NewTransaction(groups []Group) (*Transaction, error) {
	type tagged struct {
		Edit
		group int
	}
	var all []tagged
	for gi, g := range groups {
		for _, e := range g.Edits {
			all = append(all, tagged{Edit: e, group: gi})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Range.Cmp(all[j].Range) < 0
	})
	for i := 1; i < len(all); i++ {
		if all[i-1].Range.Overlaps(all[i].Range) {
			return nil, &ConflictError{A: all[i-1].Range, B: all[i].Range}
		}
	}

	tx := &Transaction{edits: make([]Edit, 0, len(all))}
	offset := 0
	for _, e := range all {
		tx.edits = append(tx.edits, e.shift(offset))
		offset += e.Delta()
	}

	// A group's selection is expressed as if its own edits were applied
	// alone. Mapping its start back to the pre-edit snapshot and shifting
	// by the deltas of every other-group edit before that point puts it in
	// post-transaction coordinates, even when groups interleave.
	for gi, g := range groups {
		if g.Sel == nil {
			continue
		}
		pre := g.aloneToPre(g.Sel.Start)
		shift := 0
		for _, e := range all {
			if e.group != gi && e.Range.End <= pre {
				shift += e.Delta()
			}
		}
		tx.sels = append(tx.sels, g.Sel.Shift(shift))
	}
	sort.Slice(tx.sels, func(i, j int) bool { return tx.sels[i].Cmp(tx.sels[j]) < 0 })
	return tx, nil
}

// Edits returns the normalized edits in application order.
func (t *Transaction) Edits() []Edit { return t.edits }

// Selections returns the post-transaction selection ranges, one per cursor
// that requested one, in document order.
func (t *Transaction) Selections() []types.CharRange { return t.sels }

// IsEmpty reports whether the transaction changes no text.
func (t *Transaction) IsEmpty() bool { return len(t.edits) == 0 }

// Delta returns the total rune-count change.
func (t *Transaction) Delta() int {
	total := 0
	for _, e := range t.edits {
		total += e.Delta()
	}
	return total
}

// Inverse returns the transaction that undoes t. Its edits are expressed in
// post-t coordinates and stored in reverse order, which keeps sequential
// application valid. Its selections cover the restored text.
func (t *Transaction) Inverse() *Transaction {
	inv := &Transaction{
		edits: make([]Edit, 0, len(t.edits)),
		sels:  make([]types.CharRange, 0, len(t.edits)),
	}
	for i := len(t.edits) - 1; i >= 0; i-- {
		inverted := t.edits[i].Inverse()
		inv.edits = append(inv.edits, inverted)
		inv.sels = append(inv.sels, types.CharRange{
			Start: inverted.Range.Start,
			End:   inverted.Range.Start + utf8.RuneCountInString(inverted.New),
		})
	}
	// Selections in document order.
	sort.Slice(inv.sels, func(i, j int) bool { return inv.sels[i].Cmp(inv.sels[j]) < 0 })
	return inv
}

// ApplyToString splices the transaction into a standalone string. The buffer
// uses its own application path; this one serves hypothetical-edit validation
// and tests.
func (t *Transaction) ApplyToString(s string) string {
	runes := []rune(s)
	for _, e := range t.edits {
		start, end := e.Range.Start, e.Range.End
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start > end {
			start = end
		}
		next := make([]rune, 0, len(runes)+e.Delta())
		next = append(next, runes[:start]...)
		next = append(next, []rune(e.New)...)
		next = append(next, runes[end:]...)
		runes = next
	}
	return string(runes)
}
