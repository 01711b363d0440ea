// internal/types/edit.go
package types

import sitter "github.com/smacker/go-tree-sitter"

// EditInfo encapsulates the information needed for tree-sitter's Edit function,
// so the syntax tree can be re-parsed incrementally after a buffer mutation.
type EditInfo struct {
	StartIndex     uint32       // Start byte of the edit
	OldEndIndex    uint32       // End byte of the old text
	NewEndIndex    uint32       // End byte of the new text
	StartPosition  sitter.Point // Start position (row, column in bytes)
	OldEndPosition sitter.Point // Old end position
	NewEndPosition sitter.Point // New end position
}
