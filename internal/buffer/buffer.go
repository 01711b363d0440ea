// internal/buffer/buffer.go
package buffer

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/bethropolis/coral/internal/syntax"
	"github.com/bethropolis/coral/internal/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// Buffer owns the current text content and a concrete syntax tree that is
// re-parsed incrementally after every committed transaction. All public
// coordinates are rune offsets; byte offsets exist only at the tree-sitter
// boundary.
//
// The tree is always derivable from the text at the current version; no
// caller ever observes a stale tree.
type Buffer struct {
	content  []byte
	runeIdx  []int // runeIdx[i] = byte offset of rune i; has RuneCount()+1 entries
	lineIdx  []int // lineIdx[l] = rune offset of the first rune of line l
	version  int
	tree     *sitter.Tree
	parser   *syntax.Parser
	filePath string
	modified bool
}

// New creates a buffer holding text, parsed with the given language.
func New(lang *syntax.Language, text string) (*Buffer, error) {
	parser, err := syntax.NewParser(lang)
	if err != nil {
		return nil, err
	}
	b := &Buffer{
		content: []byte(text),
		parser:  parser,
	}
	b.reindex()
	if err := b.reparse(nil); err != nil {
		return nil, err
	}
	return b, nil
}

// Load creates a buffer from a file, detecting the language by extension.
// A missing file yields an empty buffer bound to that path.
func Load(filePath string) (*Buffer, error) {
	lang := syntax.LanguageForFile(filePath)
	if lang == nil {
		// Fall back to the JS grammar: it tolerates arbitrary text and still
		// produces a tree for token-level selection.
		lang = syntax.LanguageByName("JavaScript")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to open file '%s': %w", filePath, err)
		}
		content = nil
	}

	b, err := New(lang, string(content))
	if err != nil {
		return nil, err
	}
	b.filePath = filePath
	return b, nil
}

// Save writes the buffer content to the stored filePath, or to an override.
func (b *Buffer) Save(filePath string) error {
	path := b.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}
	if err := os.WriteFile(path, b.content, 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	b.filePath = path
	b.modified = false
	return nil
}

// FilePath returns the path this buffer is bound to, if any.
func (b *Buffer) FilePath() string { return b.filePath }

// IsModified returns true if the buffer has unsaved changes.
func (b *Buffer) IsModified() bool { return b.modified }

// Version returns the monotonically increasing mutation counter.
func (b *Buffer) Version() int { return b.version }

// Text returns the full buffer content.
func (b *Buffer) Text() string { return string(b.content) }

// Bytes returns the raw content. Callers must not mutate it.
func (b *Buffer) Bytes() []byte { return b.content }

// RuneCount returns the number of runes in the buffer.
func (b *Buffer) RuneCount() int { return len(b.runeIdx) - 1 }

// LineCount returns the number of lines (at least one, even when empty).
func (b *Buffer) LineCount() int { return len(b.lineIdx) }

// Slice returns the text covered by the rune range, clamped to the buffer.
func (b *Buffer) Slice(r types.CharRange) string {
	start := b.CharToByte(clamp(r.Start, 0, b.RuneCount()))
	end := b.CharToByte(clamp(r.End, 0, b.RuneCount()))
	if start > end {
		start = end
	}
	return string(b.content[start:end])
}

// CharToByte converts a rune offset to a byte offset.
func (b *Buffer) CharToByte(c int) int {
	return b.runeIdx[clamp(c, 0, b.RuneCount())]
}

// ByteToChar converts a byte offset to the rune offset containing it.
func (b *Buffer) ByteToChar(byteOff int) int {
	i := sort.SearchInts(b.runeIdx, byteOff)
	if i < len(b.runeIdx) && b.runeIdx[i] == byteOff {
		return i
	}
	return i - 1
}

// ByteRangeToCharRange converts tree-sitter byte spans to rune ranges.
func (b *Buffer) ByteRangeToCharRange(start, end uint32) types.CharRange {
	return types.CharRange{Start: b.ByteToChar(int(start)), End: b.ByteToChar(int(end))}
}

// CharToLine returns the line containing the rune offset.
func (b *Buffer) CharToLine(c int) int {
	c = clamp(c, 0, b.RuneCount())
	return sort.SearchInts(b.lineIdx, c+1) - 1
}

// LineToChar returns the rune offset of the first rune of line.
func (b *Buffer) LineToChar(line int) int {
	return b.lineIdx[clamp(line, 0, len(b.lineIdx)-1)]
}

// LineRange returns the rune range of line excluding its trailing newline.
func (b *Buffer) LineRange(line int) types.CharRange {
	line = clamp(line, 0, len(b.lineIdx)-1)
	start := b.lineIdx[line]
	end := b.RuneCount()
	if line+1 < len(b.lineIdx) {
		end = b.lineIdx[line+1] - 1 // Exclude the '\n'
	}
	if end < start {
		end = start
	}
	return types.CharRange{Start: start, End: end}
}

// LineRangeFull returns the rune range of line including its trailing newline.
func (b *Buffer) LineRangeFull(line int) types.CharRange {
	line = clamp(line, 0, len(b.lineIdx)-1)
	start := b.lineIdx[line]
	end := b.RuneCount()
	if line+1 < len(b.lineIdx) {
		end = b.lineIdx[line+1]
	}
	return types.CharRange{Start: start, End: end}
}

// LineText returns the text of line excluding the trailing newline.
func (b *Buffer) LineText(line int) string {
	return b.Slice(b.LineRange(line))
}

// CharToPosition converts a rune offset to a (line, column) position.
func (b *Buffer) CharToPosition(c int) types.Position {
	line := b.CharToLine(c)
	return types.Position{Line: line, Col: clamp(c, 0, b.RuneCount()) - b.lineIdx[line]}
}

// PositionToChar converts a position to a rune offset, clamping the column
// to the line length.
func (b *Buffer) PositionToChar(pos types.Position) int {
	line := clamp(pos.Line, 0, len(b.lineIdx)-1)
	r := b.LineRange(line)
	return clamp(r.Start+pos.Col, r.Start, r.End)
}

func (b *Buffer) charToPoint(c int) sitter.Point {
	line := b.CharToLine(c)
	return sitter.Point{
		Row:    uint32(line),
		Column: uint32(b.CharToByte(c) - b.CharToByte(b.lineIdx[line])),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// reindex rebuilds the rune and line indexes from the content.
func (b *Buffer) reindex() {
	runeIdx := make([]int, 0, len(b.content)+1)
	lineIdx := []int{0}
	runeCount := 0
	for i := 0; i < len(b.content); {
		runeIdx = append(runeIdx, i)
		r, size := utf8.DecodeRune(b.content[i:])
		i += size
		runeCount++
		if r == '\n' {
			lineIdx = append(lineIdx, runeCount)
		}
	}
	runeIdx = append(runeIdx, len(b.content))
	b.runeIdx = runeIdx
	b.lineIdx = lineIdx
}

func (b *Buffer) reparse(old *sitter.Tree) error {
	tree, err := b.parser.Parse(old, b.content)
	if err != nil {
		return err
	}
	if b.tree != nil {
		b.tree.Close()
	}
	b.tree = tree
	return nil
}

// Close releases the syntax tree. The buffer must not be used afterwards.
func (b *Buffer) Close() {
	if b.tree != nil {
		b.tree.Close()
		b.tree = nil
	}
}
