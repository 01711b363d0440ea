// internal/buffer/apply.go
package buffer

import (
	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/logger"
	"github.com/bethropolis/coral/internal/syntax"
	"github.com/bethropolis/coral/internal/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// ApplyTransaction splices the transaction's edits into the content and
// re-parses the tree incrementally. Edits are already normalized: each is
// expressed in the coordinates left by the ones before it, in ascending
// order, so a single forward pass suffices.
//
// Returns per-edit change records for listeners (renderers, diff trackers).
func (b *Buffer) ApplyTransaction(tx *edit.Transaction) ([]types.EditInfo, error) {
	if tx.IsEmpty() {
		return nil, nil
	}

	infos := make([]types.EditInfo, 0, len(tx.Edits()))
	for _, e := range tx.Edits() {
		info, err := b.splice(e)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}

	old := b.tree
	b.tree = nil // reparse closes b.tree; old is edited in place below
	for _, info := range infos {
		old.Edit(sitter.EditInput{
			StartIndex:  info.StartIndex,
			OldEndIndex: info.OldEndIndex,
			NewEndIndex: info.NewEndIndex,
			StartPoint:  info.StartPosition,
			OldEndPoint: info.OldEndPosition,
			NewEndPoint: info.NewEndPosition,
		})
	}
	if err := b.reparse(old); err != nil {
		old.Close()
		return nil, err
	}
	old.Close()

	b.version++
	b.modified = true
	logger.Debugf("buffer: applied %d edit(s), version now %d", len(infos), b.version)
	return infos, nil
}

// splice applies one edit and records byte/point deltas before the rune
// index is rebuilt. The edit's range is clamped to the buffer.
func (b *Buffer) splice(e edit.Edit) (types.EditInfo, error) {
	start := clamp(e.Range.Start, 0, b.RuneCount())
	end := clamp(e.Range.End, start, b.RuneCount())

	startByte := b.CharToByte(start)
	oldEndByte := b.CharToByte(end)
	startPoint := b.charToPoint(start)
	oldEndPoint := b.charToPoint(end)

	newText := []byte(e.New)
	content := make([]byte, 0, len(b.content)-(oldEndByte-startByte)+len(newText))
	content = append(content, b.content[:startByte]...)
	content = append(content, newText...)
	content = append(content, b.content[oldEndByte:]...)
	b.content = content
	b.reindex()

	newEndByte := startByte + len(newText)
	return types.EditInfo{
		StartIndex:     uint32(startByte),
		OldEndIndex:    uint32(oldEndByte),
		NewEndIndex:    uint32(newEndByte),
		StartPosition:  startPoint,
		OldEndPosition: oldEndPoint,
		NewEndPosition: b.charToPoint(b.ByteToChar(newEndByte)),
	}, nil
}

// PreviewTransaction returns the text that would result from applying tx,
// without touching the buffer. Used to validate structural edits before
// committing them.
func (b *Buffer) PreviewTransaction(tx *edit.Transaction) string {
	return tx.ApplyToString(string(b.content))
}

// ValidateTransaction parses the post-edit text with a fresh parser and
// reports whether the edit introduces new syntax errors. A transaction that
// takes the error-node count above the current count is rejected by
// structure-aware actions.
func (b *Buffer) ValidateTransaction(tx *edit.Transaction) (bool, error) {
	preview := b.PreviewTransaction(tx)
	p, err := syntax.NewParser(b.parser.Language())
	if err != nil {
		return false, err
	}
	tree, err := p.Parse(nil, []byte(preview))
	if err != nil {
		return false, err
	}
	defer tree.Close()
	before := syntax.CountErrorNodes(b.tree.RootNode())
	after := syntax.CountErrorNodes(tree.RootNode())
	return after <= before, nil
}
