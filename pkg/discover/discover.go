// Package discover produces SymbolInfo values from source files using
// tree-sitter. It is the upstream producer for the launch registry: the
// registry itself never parses source code.
package discover

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/launchgen/core/pkg/domain"
)

// Symbols extracts the debuggable symbols (functions, methods, classes)
// from the given source. filePath selects the grammar by extension and is
// recorded on every symbol together with workspaceRoot.
func Symbols(ctx context.Context, filePath string, source []byte, workspaceRoot string) ([]domain.SymbolInfo, error) {
	grammar := grammarFor(filePath)
	if grammar == nil {
		return nil, fmt.Errorf("discover: unsupported file type %s", filePath)
	}

	// Fresh parser per call: tree-sitter parsers are not safe for
	// concurrent use and do not recover cleanly from cancelled parses.
	p := sitter.NewParser()
	p.SetLanguage(grammar)

	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("discover: parse %s: %w", filePath, err)
	}
	defer tree.Close()

	ext := extractorFor(LanguageFor(filePath))
	symbols := ext(tree.RootNode(), source)

	for i := range symbols {
		symbols[i].Language = LanguageFor(filePath)
		symbols[i].FilePath = filePath
		symbols[i].WorkspaceRoot = workspaceRoot
	}
	return symbols, nil
}

// FileSymbols reads the file from disk and extracts its symbols.
func FileSymbols(ctx context.Context, filePath, workspaceRoot string) ([]domain.SymbolInfo, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("discover: read %s: %w", filePath, err)
	}
	return Symbols(ctx, filePath, source, workspaceRoot)
}

type extractor func(root *sitter.Node, source []byte) []domain.SymbolInfo

func extractorFor(lang domain.Language) extractor {
	switch lang {
	case domain.LanguageGo:
		return extractGoSymbols
	case domain.LanguagePython:
		return extractPythonSymbols
	case domain.LanguageJavaScript, domain.LanguageTypeScript:
		return extractJSSymbols
	default:
		return func(*sitter.Node, []byte) []domain.SymbolInfo { return nil }
	}
}
