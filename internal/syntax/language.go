// internal/syntax/language.go
package syntax

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/coral/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
)

// Language couples a tree-sitter grammar with the file extensions it serves.
type Language struct {
	Name           string
	TreeSitterLang *sitter.Language
	Extensions     []string
}

var registry struct {
	sync.RWMutex
	languages     []*Language
	extToLanguage map[string]*Language
}

var registerOnce sync.Once

// RegisterLanguages installs the built-in grammars. Called lazily by the
// lookup functions, so callers never need to invoke it directly.
func RegisterLanguages() {
	registerOnce.Do(func() {
		registry.extToLanguage = make(map[string]*Language)

		register(&Language{
			Name:           "Go",
			TreeSitterLang: gosrc.GetLanguage(),
			Extensions:     []string{".go"},
		})
		register(&Language{
			Name:           "JavaScript",
			TreeSitterLang: jssrc.GetLanguage(),
			Extensions:     []string{".js", ".mjs", ".cjs"},
		})
		// The JS parser handles JSON well enough for structural selection.
		register(&Language{
			Name:           "JSON",
			TreeSitterLang: jssrc.GetLanguage(),
			Extensions:     []string{".json"},
		})
	})
}

func register(lang *Language) {
	registry.Lock()
	defer registry.Unlock()

	registry.languages = append(registry.languages, lang)
	for _, ext := range lang.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, lang.Name)
		}
		registry.extToLanguage[lowerExt] = lang
	}
}

// LanguageForFile returns the registered language for the file's extension,
// or nil when the file type is unknown.
func LanguageForFile(filePath string) *Language {
	RegisterLanguages()

	registry.RLock()
	defer registry.RUnlock()
	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// LanguageByName returns the registered language with the given name, or nil.
func LanguageByName(name string) *Language {
	RegisterLanguages()

	registry.RLock()
	defer registry.RUnlock()
	for _, lang := range registry.languages {
		if strings.EqualFold(lang.Name, name) {
			return lang
		}
	}
	return nil
}
