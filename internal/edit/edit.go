// internal/edit/edit.go
package edit

import (
	"sort"
	"unicode/utf8"

	"github.com/bethropolis/coral/internal/types"
)

// Edit replaces the text covered by Range with New. Old records the replaced
// text so the edit can be inverted without consulting the buffer again.
type Edit struct {
	Range types.CharRange
	New   string
	Old   string
}

// Delta returns the rune-count change this edit causes.
func (e Edit) Delta() int {
	return utf8.RuneCountInString(e.New) - e.Range.Len()
}

// Inverse returns the edit that undoes e, expressed in post-edit coordinates.
func (e Edit) Inverse() Edit {
	newLen := utf8.RuneCountInString(e.New)
	return Edit{
		Range: types.CharRange{Start: e.Range.Start, End: e.Range.Start + newLen},
		New:   e.Old,
		Old:   e.New,
	}
}

func (e Edit) shift(delta int) Edit {
	e.Range = e.Range.Shift(delta)
	return e
}

// Group bundles the edits of a single cursor together with the selection
// range that cursor should hold afterwards. Edits within a group do not
// offset each other; Sel is expressed as if the group were applied alone.
type Group struct {
	Edits []Edit
	Sel   *types.CharRange
}

// NewGroup builds a group from a list of edits and an optional selection.
func NewGroup(sel *types.CharRange, edits ...Edit) Group {
	return Group{Edits: edits, Sel: sel}
}

// aloneToPre maps a coordinate from "this group applied alone" space back
// to the pre-edit snapshot. A coordinate inside replacement text maps to
// the start of the replaced range.
func (g Group) aloneToPre(pos int) int {
	edits := make([]Edit, len(g.Edits))
	copy(edits, g.Edits)
	sort.Slice(edits, func(i, j int) bool { return edits[i].Range.Cmp(edits[j].Range) < 0 })

	delta := 0
	for _, e := range edits {
		start := e.Range.Start + delta
		if pos < start {
			break
		}
		if pos < start+utf8.RuneCountInString(e.New) {
			return e.Range.Start
		}
		delta += e.Delta()
	}
	return pos - delta
}

