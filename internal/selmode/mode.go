// internal/selmode/mode.go

// Package selmode implements selection modes, the strategies that decide
// what counts as one editing unit (a character, a word, a syntax node, a
// search match), and the movement engine that navigates between a mode's
// candidates. All movement verbs are written once against the Mode
// interface; modes only supply candidates and optional overrides.
package selmode

import (
	"fmt"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/types"
)

// Mode is the capability set shared by every selection mode variant.
type Mode interface {
	// Name identifies the mode for logging and status display.
	Name() string

	// Candidates enumerates the mode's units in document order. The result
	// is only valid for the buffer version it was computed against; callers
	// re-enumerate after any mutation. cur is the selection the enumeration
	// is scoped to, for modes whose locality depends on it (syntax-node
	// siblings, column).
	Candidates(buf *buffer.Buffer, cur types.CharRange) []types.CharRange

	// IsContiguous reports whether consecutive candidates are adjacent up
	// to a semantically insignificant gap (whitespace, separator token).
	// Contiguous modes get neighbor-relative Delete/Open/Paste semantics.
	IsContiguous() bool
}

// VerticalMover overrides the generic nearest-line Up/Down with
// mode-specific semantics (syntax-node Up selects the parent node).
type VerticalMover interface {
	MoveUp(buf *buffer.Buffer, cur types.CharRange) (types.CharRange, bool)
	MoveDown(buf *buffer.Buffer, cur types.CharRange) (types.CharRange, bool)
}

// UserInputError reports invalid input to a movement (index out of range,
// jump with nothing to jump to). The selection state is unchanged.
type UserInputError struct {
	Msg string
}

func (e *UserInputError) Error() string { return e.Msg }

func inputErrorf(format string, args ...any) error {
	return &UserInputError{Msg: fmt.Sprintf(format, args...)}
}
