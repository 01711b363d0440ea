// internal/selmode/rangelist.go
package selmode

import (
	"sort"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/types"
)

// rangeList adapts an externally supplied ordered range list to the Mode
// contract. Search engines, diagnostics providers, quickfix lists, git hunk
// trackers and mark registries all hand the core a finished []CharRange;
// the core never knows which engine produced it.
type rangeList struct {
	name   string
	ranges []types.CharRange
}

func newRangeList(name string, ranges []types.CharRange) rangeList {
	sorted := make([]types.CharRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })
	return rangeList{name: name, ranges: sorted}
}

func (m rangeList) Name() string       { return m.name }
func (m rangeList) IsContiguous() bool { return false }

func (m rangeList) Candidates(_ *buffer.Buffer, _ types.CharRange) []types.CharRange {
	return m.ranges
}

// SearchMatches wraps ranges produced by a search engine.
func SearchMatches(ranges []types.CharRange) Mode {
	return newRangeList("Search", ranges)
}

// Diagnostic is one provider-reported range with a severity.
type Diagnostic struct {
	Range    types.CharRange
	Severity string
}

// Diagnostics wraps provider diagnostics, keeping only the given severity.
// An empty severity keeps everything.
func Diagnostics(diags []Diagnostic, severity string) Mode {
	var ranges []types.CharRange
	for _, d := range diags {
		if severity == "" || d.Severity == severity {
			ranges = append(ranges, d.Range)
		}
	}
	name := "Diagnostic"
	if severity != "" {
		name += " (" + severity + ")"
	}
	return newRangeList(name, ranges)
}

// Quickfix wraps the current quickfix list's ranges for this buffer.
func Quickfix(ranges []types.CharRange) Mode {
	return newRangeList("Quickfix", ranges)
}

// GitHunks wraps changed-region ranges computed against a baseline.
func GitHunks(ranges []types.CharRange) Mode {
	return newRangeList("Git hunk", ranges)
}

// Marks wraps user-placed mark ranges.
func Marks(ranges []types.CharRange) Mode {
	return newRangeList("Mark", ranges)
}
