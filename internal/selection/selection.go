// internal/selection/selection.go

// Package selection defines the cursor model: each cursor is a non-empty
// directed range of runes, and an editor holds an ordered set of them with
// one designated primary.
package selection

import (
	"fmt"

	"github.com/bethropolis/coral/internal/types"
)

// Selection is a directed rune range. Anchor is the fixed end, Head the
// moving end; Anchor may be greater than Head when the selection faces
// backwards. The covered range is always the normalized [min, max).
type Selection struct {
	Anchor int
	Head   int
}

// New creates a forward selection covering r.
func New(r types.CharRange) Selection {
	return Selection{Anchor: r.Start, Head: r.End}
}

// Caret creates an empty selection at offset. Empty selections only appear
// transiently in insert mode; committed selections are non-empty.
func Caret(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// Range returns the normalized range covered by the selection.
func (s Selection) Range() types.CharRange {
	return types.NewCharRange(s.Anchor, s.Head)
}

// Reversed reports whether the head precedes the anchor.
func (s Selection) Reversed() bool { return s.Head < s.Anchor }

// SwapEnds flips anchor and head, keeping the covered range.
func (s Selection) SwapEnds() Selection {
	return Selection{Anchor: s.Head, Head: s.Anchor}
}

// WithRange keeps the selection's direction but moves it to cover r.
func (s Selection) WithRange(r types.CharRange) Selection {
	if s.Reversed() {
		return Selection{Anchor: r.End, Head: r.Start}
	}
	return Selection{Anchor: r.Start, Head: r.End}
}

// Cursor returns the rune offset of the head end.
func (s Selection) Cursor() int { return s.Head }

func (s Selection) String() string {
	return fmt.Sprintf("Sel(%d→%d)", s.Anchor, s.Head)
}
