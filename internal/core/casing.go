// internal/core/casing.go
package core

import (
	"strings"
	"unicode"

	"github.com/bethropolis/coral/internal/edit"
	"github.com/bethropolis/coral/internal/types"
)

// Casing names a naming-convention transform applied to selections.
type Casing int

const (
	CasingCamel Casing = iota
	CasingPascal
	CasingSnake
	CasingKebab
	CasingUpperSnake
)

func (c Casing) String() string {
	switch c {
	case CasingCamel:
		return "camelCase"
	case CasingPascal:
		return "PascalCase"
	case CasingSnake:
		return "snake_case"
	case CasingKebab:
		return "kebab-case"
	case CasingUpperSnake:
		return "UPPER_SNAKE"
	}
	return "unknown"
}

// TransformCase rewrites every selection into the given naming convention,
// one edit per cursor. Selections that already match are skipped.
func (e *Editor) TransformCase(c Casing) error {
	groups := make([]edit.Group, 0, e.sels.Len())
	for _, sel := range e.sels.All() {
		cur := sel.Range()
		old := e.buf.Slice(cur)
		transformed := applyCasing(old, c)
		if transformed == old {
			continue
		}
		after := types.CharRange{Start: cur.Start, End: cur.Start + len([]rune(transformed))}
		groups = append(groups, edit.NewGroup(&after, edit.Edit{Range: cur, New: transformed, Old: old}))
	}
	return e.buildAndCommit(groups)
}

func applyCasing(text string, c Casing) string {
	words := identifierWords(text)
	if len(words) == 0 {
		return text
	}
	switch c {
	case CasingCamel:
		out := strings.ToLower(words[0])
		for _, w := range words[1:] {
			out += title(w)
		}
		return out
	case CasingPascal:
		var out string
		for _, w := range words {
			out += title(w)
		}
		return out
	case CasingSnake:
		return strings.ToLower(strings.Join(words, "_"))
	case CasingKebab:
		return strings.ToLower(strings.Join(words, "-"))
	case CasingUpperSnake:
		return strings.ToUpper(strings.Join(words, "_"))
	}
	return text
}

// identifierWords splits an identifier into its words regardless of the
// convention it currently uses: separators, camel humps and acronym runs
// all count as boundaries.
func identifierWords(text string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && len(cur) > 0 && unicode.IsUpper(runes[i-1])) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

func title(w string) string {
	if w == "" {
		return w
	}
	lower := strings.ToLower(w)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
