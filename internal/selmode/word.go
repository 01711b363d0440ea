// internal/selmode/word.go
package selmode

import (
	"regexp"
	"unicode"

	"github.com/bethropolis/coral/internal/buffer"
	"github.com/bethropolis/coral/internal/types"
)

// wordPattern matches whole words: identifier runs or a single symbol rune.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]`)

// Word selects sub-words: camelCase humps, snake_case segments and digit
// runs are separate candidates. Coarse mode keeps the whole identifier as
// one unit.
type Word struct {
	Coarse bool
}

func (w Word) Name() string {
	if w.Coarse {
		return "Word (coarse)"
	}
	return "Word"
}

func (Word) IsContiguous() bool { return true }

func (w Word) Candidates(buf *buffer.Buffer, _ types.CharRange) []types.CharRange {
	text := []rune(buf.Text())
	var out []types.CharRange
	for _, m := range wordPattern.FindAllStringIndex(buf.Text(), -1) {
		start := buf.ByteToChar(m[0])
		end := buf.ByteToChar(m[1])
		if w.Coarse {
			out = append(out, types.CharRange{Start: start, End: end})
			continue
		}
		out = append(out, splitSubwords(text, start, end)...)
	}
	return out
}

// splitSubwords cuts a word rune range at underscores and case transitions:
// lower→Upper starts a new hump, and the last capital of an acronym run
// belongs to the following word (HTTPServer → HTTP, Server).
func splitSubwords(text []rune, start, end int) []types.CharRange {
	var out []types.CharRange
	segStart := start
	flush := func(to int) {
		if to > segStart {
			out = append(out, types.CharRange{Start: segStart, End: to})
		}
	}
	for i := start; i < end; i++ {
		r := text[i]
		if r == '_' {
			flush(i)
			segStart = i + 1
			continue
		}
		if i == segStart {
			continue
		}
		prev := text[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush(i)
			segStart = i
		case unicode.IsLower(r) && unicode.IsUpper(prev) && i-1 > segStart:
			flush(i - 1)
			segStart = i - 1
		case unicode.IsDigit(r) != unicode.IsDigit(prev):
			flush(i)
			segStart = i
		}
	}
	flush(end)
	return out
}
