// internal/selmode/jump.go
package selmode

import (
	"unicode"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/types"
)

// JumpLabel pairs a candidate range with the character currently labeling
// it on screen.
type JumpLabel struct {
	Range types.CharRange
	Label rune
}

// JumpSession runs progressive-label disambiguation: every candidate gets a
// one-character label, a keystroke keeps the candidates whose label matches,
// and the survivors are relabeled until one remains. Each keystroke is a
// cancellation point; aborting restores the pre-jump selection, which the
// caller keeps.
//
// The first round labels candidates with the lowercased leading character
// of their own text, so the natural reflex of typing what you see works.
// Later rounds (and a first round where every candidate starts alike)
// assign alphabet characters round-robin, which splits the survivors into
// at most len(alphabet) groups per keystroke.
type JumpSession struct {
	buf      *buffer.Buffer
	alphabet []rune
	labels   []JumpLabel
}

// NewJumpSession starts a session over mode's candidates. Zero candidates
// is a user input error, not a stuck session.
func NewJumpSession(buf *buffer.Buffer, mode Mode, cur types.CharRange, alphabet string) (*JumpSession, error) {
	cands := mode.Candidates(buf, cur)
	if len(cands) == 0 {
		return nil, inputErrorf("no candidates to jump to")
	}
	if alphabet == "" {
		alphabet = "asdfjkluiowernm"
	}
	s := &JumpSession{buf: buf, alphabet: []rune(alphabet)}
	s.labels = s.firstRound(cands)
	return s, nil
}

// Labels returns the current candidates with their labels, for rendering.
func (s *JumpSession) Labels() []JumpLabel { return s.labels }

// Key feeds one keystroke. done is true when exactly one candidate remains;
// target is then the resolved range. A key matching no label is a user
// input error and leaves the session unchanged.
func (s *JumpSession) Key(r rune) (target types.CharRange, done bool, err error) {
	r = unicode.ToLower(r)
	var kept []JumpLabel
	for _, l := range s.labels {
		if l.Label == r {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return types.CharRange{}, false, inputErrorf("no candidate labeled %q", r)
	}
	if len(kept) == 1 {
		return kept[0].Range, true, nil
	}
	ranges := make([]types.CharRange, len(kept))
	for i, l := range kept {
		ranges[i] = l.Range
	}
	s.labels = s.roundRobin(ranges)
	return types.CharRange{}, false, nil
}

// firstRound labels candidates by their leading character. If that gives
// every candidate the same label the keystroke would not narrow anything,
// so fall back to round-robin alphabet labels immediately.
func (s *JumpSession) firstRound(cands []types.CharRange) []JumpLabel {
	labels := make([]JumpLabel, len(cands))
	distinct := map[rune]bool{}
	for i, c := range cands {
		label := s.alphabet[0]
		if text := []rune(s.buf.Slice(c)); len(text) > 0 {
			label = unicode.ToLower(text[0])
		}
		labels[i] = JumpLabel{Range: c, Label: label}
		distinct[label] = true
	}
	if len(distinct) == 1 && len(cands) > 1 {
		return s.roundRobin(cands)
	}
	return labels
}

func (s *JumpSession) roundRobin(cands []types.CharRange) []JumpLabel {
	labels := make([]JumpLabel, len(cands))
	for i, c := range cands {
		labels[i] = JumpLabel{Range: c, Label: s.alphabet[i%len(s.alphabet)]}
	}
	return labels
}
