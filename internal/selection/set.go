// internal/selection/set.go
package selection

import (
	"sort"

	"github.com/bethropolis/coral/internal/types"
)

// Set is an ordered collection of selections with one primary. Selections
// are kept sorted by their normalized range and deduplicated; the primary
// index is rebased whenever the set is rebuilt so it keeps pointing at the
// same logical cursor.
type Set struct {
	sels    []Selection
	primary int
}

// NewSet builds a set from selections, normalizing order and duplicates.
// primary indexes into the input slice; after normalization the set's
// primary is the survivor of that input selection.
func NewSet(sels []Selection, primary int) *Set {
	if len(sels) == 0 {
		sels = []Selection{Caret(0)}
	}
	if primary < 0 || primary >= len(sels) {
		primary = 0
	}
	return (&Set{}).rebuild(sels, sels[primary])
}

// rebuild sorts and dedupes, then locates primaryOf among the survivors.
func (s *Set) rebuild(sels []Selection, primaryOf Selection) *Set {
	sorted := make([]Selection, len(sels))
	copy(sorted, sels)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Range().Cmp(sorted[j].Range()) < 0
	})

	out := sorted[:0]
	for _, sel := range sorted {
		if len(out) > 0 && out[len(out)-1].Range() == sel.Range() {
			continue
		}
		out = append(out, sel)
	}
	s.sels = out

	s.primary = 0
	for i, sel := range out {
		if sel.Range() == primaryOf.Range() {
			s.primary = i
			break
		}
	}
	return s
}

// All returns the selections in document order. Callers must not mutate.
func (s *Set) All() []Selection { return s.sels }

// Len returns the number of cursors.
func (s *Set) Len() int { return len(s.sels) }

// Primary returns the primary selection.
func (s *Set) Primary() Selection { return s.sels[s.primary] }

// PrimaryIndex returns the index of the primary selection.
func (s *Set) PrimaryIndex() int { return s.primary }

// Ranges returns the normalized ranges of all selections, in order.
func (s *Set) Ranges() []types.CharRange {
	out := make([]types.CharRange, len(s.sels))
	for i, sel := range s.sels {
		out[i] = sel.Range()
	}
	return out
}

// Replace produces a new set from per-cursor replacement selections. The
// i'th input replaces the i'th current selection; the primary follows its
// replacement.
func (s *Set) Replace(sels []Selection) *Set {
	if len(sels) == 0 {
		return s
	}
	p := s.primary
	if p >= len(sels) {
		p = len(sels) - 1
	}
	return (&Set{}).rebuild(sels, sels[p])
}

// WithRanges produces a new set whose selections cover the given ranges,
// preserving each cursor's direction pairwise.
func (s *Set) WithRanges(ranges []types.CharRange) *Set {
	sels := make([]Selection, len(ranges))
	for i, r := range ranges {
		if i < len(s.sels) {
			sels[i] = s.sels[i].WithRange(r)
		} else {
			sels[i] = New(r)
		}
	}
	return s.Replace(sels)
}

// CollapseToPrimary drops all cursors except the primary.
func (s *Set) CollapseToPrimary() *Set {
	return NewSet([]Selection{s.Primary()}, 0)
}

// Add returns a set with sel added. If sel's range duplicates an existing
// cursor the set is unchanged. makePrimary promotes the added cursor.
func (s *Set) Add(sel Selection, makePrimary bool) *Set {
	sels := append(append([]Selection{}, s.sels...), sel)
	primaryOf := s.Primary()
	if makePrimary {
		primaryOf = sel
	}
	return (&Set{}).rebuild(sels, primaryOf)
}

// Remove returns a set without the cursor at index i. Removing the last
// cursor is a no-op. If the primary is removed, the nearest survivor
// becomes primary.
func (s *Set) Remove(i int) *Set {
	if len(s.sels) <= 1 || i < 0 || i >= len(s.sels) {
		return s
	}
	sels := append(append([]Selection{}, s.sels[:i]...), s.sels[i+1:]...)
	p := s.primary
	if p > i || p >= len(sels) {
		p--
	}
	if p < 0 {
		p = 0
	}
	return (&Set{}).rebuild(sels, sels[p])
}
