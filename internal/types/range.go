// internal/types/range.go
package types

import "fmt"

// CharRange is a half-open [Start, End) range of rune offsets into the buffer.
// All editing-core coordinates are expressed as CharRanges; conversion to and
// from byte offsets (needed by the syntax layer) is owned by the buffer.
type CharRange struct {
	Start int
	End   int
}

// NewCharRange builds a normalized range (Start <= End).
func NewCharRange(start, end int) CharRange {
	if start > end {
		start, end = end, start
	}
	return CharRange{Start: start, End: end}
}

// Len returns the number of runes covered by the range.
func (r CharRange) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range covers no text.
func (r CharRange) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether the rune offset lies within the range.
func (r CharRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps reports whether two ranges share at least one rune.
// Touching ranges (end == start) do not overlap.
func (r CharRange) Overlaps(other CharRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Shift returns the range moved by delta runes.
func (r CharRange) Shift(delta int) CharRange {
	return CharRange{Start: r.Start + delta, End: r.End + delta}
}

// Cmp orders ranges by start, then by end. Used to keep candidate
// enumerations and selection sets in document order.
func (r CharRange) Cmp(other CharRange) int {
	switch {
	case r.Start != other.Start:
		if r.Start < other.Start {
			return -1
		}
		return 1
	case r.End != other.End:
		if r.End < other.End {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (r CharRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
