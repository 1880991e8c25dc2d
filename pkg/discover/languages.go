package discover

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/launchgen/core/pkg/domain"
)

// maxTreeDepth is the maximum recursion depth when walking AST trees.
const maxTreeDepth = 1000

var (
	goLang  *sitter.Language
	jsLang  *sitter.Language
	pyLang  *sitter.Language
	tsLang  *sitter.Language
	tsxLang *sitter.Language

	langOnce sync.Once
)

func initLanguages() {
	langOnce.Do(func() {
		goLang = golang.GetLanguage()
		jsLang = javascript.GetLanguage()
		pyLang = python.GetLanguage()
		tsLang = typescript.GetLanguage()
		tsxLang = tsx.GetLanguage()
	})
}

// grammarFor returns the tree-sitter grammar for a file path, or nil when
// the extension is not supported.
func grammarFor(filePath string) *sitter.Language {
	initLanguages()
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".go":
		return goLang
	case ".js", ".jsx", ".mjs", ".cjs":
		return jsLang
	case ".py":
		return pyLang
	case ".ts", ".mts", ".cts":
		return tsLang
	case ".tsx":
		return tsxLang
	default:
		return nil
	}
}

// LanguageFor maps a file path to its registry language key, or "" when the
// extension is not supported.
func LanguageFor(filePath string) domain.Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".go":
		return domain.LanguageGo
	case ".js", ".jsx", ".mjs", ".cjs":
		return domain.LanguageJavaScript
	case ".py":
		return domain.LanguagePython
	case ".ts", ".tsx", ".mts", ".cts":
		return domain.LanguageTypeScript
	default:
		return ""
	}
}
