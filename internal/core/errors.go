// internal/core/errors.go
package core

import (
	"fmt"

	"github.com/bethropolis/coral/internal/selmode"
)

// StructuralInvariantError reports a structure-aware action (Raise) whose
// result would not parse cleanly. The contract is that this never happens
// on valid input, so it is surfaced loudly; the buffer is left untouched.
type StructuralInvariantError struct {
	Action string
	Detail string
}

func (e *StructuralInvariantError) Error() string {
	return fmt.Sprintf("%s would break the syntax tree: %s", e.Action, e.Detail)
}

func inputErrorf(format string, args ...any) error {
	return &selmode.UserInputError{Msg: fmt.Sprintf(format, args...)}
}
