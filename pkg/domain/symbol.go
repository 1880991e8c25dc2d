package domain

import "strings"

// SymbolKind categorizes a located code construct.
type SymbolKind string

// Symbol kinds produced by discovery and consumed by the generators.
const (
	SymbolKindClass    SymbolKind = "class"
	SymbolKindFunction SymbolKind = "function"
	SymbolKindMethod   SymbolKind = "method"
	SymbolKindModule   SymbolKind = "module"
)

// SymbolInfo describes a located code construct. It is an immutable value
// created by a symbol-discovery producer and consumed once per generation
// call.
type SymbolInfo struct {
	// Name is the symbol's simple identifier.
	Name string `json:"name"`

	// Path is the ordered sequence of identifiers from the outermost
	// enclosing scope to the symbol itself (e.g., class then method).
	Path []string `json:"path"`

	// Kind is the symbol category.
	Kind SymbolKind `json:"kind"`

	// Language is the registry lookup key for this symbol.
	Language Language `json:"language"`

	// FilePath is the absolute path of the file containing the symbol.
	FilePath string `json:"filePath"`

	// WorkspaceRoot is the absolute path of the project root.
	WorkspaceRoot string `json:"workspaceRoot"`

	// Location is the symbol's position within FilePath.
	Location Location `json:"location"`
}

// QualifiedName joins the symbol's path with the given separator
// (e.g., "TestClass::test_example" or "TestClass.test_example").
func (s SymbolInfo) QualifiedName(sep string) string {
	if len(s.Path) == 0 {
		return s.Name
	}
	return strings.Join(s.Path, sep)
}

// Location identifies a position range in a source file.
type Location struct {
	// StartLine is 1-based.
	StartLine int `json:"startLine"`
	// EndLine is 1-based.
	EndLine  int `json:"endLine"`
	StartCol int `json:"startCol"`
	EndCol   int `json:"endCol"`
}
