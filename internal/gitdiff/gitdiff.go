// internal/gitdiff/gitdiff.go

// Package gitdiff computes the changed regions of a buffer against a
// recorded baseline (the on-disk or committed content). The resulting
// ranges feed the Git-hunk selection mode.
package gitdiff

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/logger"
	"github.com/bethropolis/coral/internal/types"
)

// Tracker holds the baseline text hunks are computed against.
type Tracker struct {
	baseline string
}

// NewTracker records baseline as the unchanged reference content.
func NewTracker(baseline string) *Tracker {
	return &Tracker{baseline: baseline}
}

// SetBaseline replaces the reference content (after a save or a commit).
func (t *Tracker) SetBaseline(baseline string) { t.baseline = baseline }

// Hunks returns the buffer's changed regions in document order. Inserted
// and replaced text yields its covering range; a pure deletion yields an
// empty-adjacent one-character range so the hunk stays selectable.
func (t *Tracker) Hunks(buf *buffer.Buffer) []types.CharRange {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(t.baseline, buf.Text(), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var out []types.CharRange
	offset := 0 // Rune offset into the current buffer text.
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			offset += n
		case diffmatchpatch.DiffInsert:
			out = append(out, types.CharRange{Start: offset, End: offset + n})
			offset += n
		case diffmatchpatch.DiffDelete:
			// The deleted text is absent from the buffer; mark the character
			// at the deletion point.
			end := offset + 1
			if end > buf.RuneCount() {
				end = buf.RuneCount()
			}
			if end > offset {
				out = append(out, types.CharRange{Start: offset, End: end})
			}
		}
	}
	out = mergeAdjacent(out)
	logger.Debugf("gitdiff: %d hunk(s)", len(out))
	return out
}

// mergeAdjacent coalesces touching or overlapping ranges, which DiffMain
// can produce around replacements (delete followed by insert).
func mergeAdjacent(ranges []types.CharRange) []types.CharRange {
	var out []types.CharRange
	for _, r := range ranges {
		if len(out) > 0 && r.Start <= out[len(out)-1].End {
			if r.End > out[len(out)-1].End {
				out[len(out)-1].End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
