package discover

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/launchgen/core/pkg/domain"
)

const (
	jsNodeFunctionDeclaration = "function_declaration"
	jsNodeClassDeclaration    = "class_declaration"
	jsNodeMethodDefinition    = "method_definition"
	jsNodeLexicalDeclaration  = "lexical_declaration"
	jsNodeVariableDeclarator  = "variable_declarator"
	jsNodeArrowFunction       = "arrow_function"
	jsNodeFunctionExpression  = "function_expression"
	jsNodeExportStatement     = "export_statement"
)

// extractJSSymbols collects top-level function declarations, arrow-function
// bindings, classes and their methods. Export wrappers are unwrapped. The
// grammar for .ts/.tsx files shares these node types, so one extractor
// serves both languages.
func extractJSSymbols(root *sitter.Node, source []byte) []domain.SymbolInfo {
	var symbols []domain.SymbolInfo

	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child.Type() == jsNodeExportStatement {
			if decl := child.ChildByFieldName("declaration"); decl != nil {
				child = decl
			}
		}

		switch child.Type() {
		case jsNodeFunctionDeclaration:
			name := fieldText(child, "name", source)
			if name == "" {
				continue
			}
			symbols = append(symbols, domain.SymbolInfo{
				Name:     name,
				Path:     []string{name},
				Kind:     domain.SymbolKindFunction,
				Location: nodeLocation(child),
			})

		case jsNodeClassDeclaration:
			symbols = append(symbols, extractJSClass(child, source)...)

		case jsNodeLexicalDeclaration:
			symbols = append(symbols, extractArrowBindings(child, source)...)
		}
	}
	return symbols
}

func extractJSClass(class *sitter.Node, source []byte) []domain.SymbolInfo {
	className := fieldText(class, "name", source)
	if className == "" {
		return nil
	}

	symbols := []domain.SymbolInfo{{
		Name:     className,
		Path:     []string{className},
		Kind:     domain.SymbolKindClass,
		Location: nodeLocation(class),
	}}

	body := class.ChildByFieldName("body")
	if body == nil {
		return symbols
	}

	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		if child.Type() != jsNodeMethodDefinition {
			continue
		}

		name := fieldText(child, "name", source)
		if name == "" {
			continue
		}
		symbols = append(symbols, domain.SymbolInfo{
			Name:     name,
			Path:     []string{className, name},
			Kind:     domain.SymbolKindMethod,
			Location: nodeLocation(child),
		})
	}
	return symbols
}

// extractArrowBindings collects const/let bindings whose value is an arrow
// function or function expression.
func extractArrowBindings(decl *sitter.Node, source []byte) []domain.SymbolInfo {
	var symbols []domain.SymbolInfo

	for i := 0; i < int(decl.ChildCount()); i++ {
		child := decl.Child(i)
		if child.Type() != jsNodeVariableDeclarator {
			continue
		}

		value := child.ChildByFieldName("value")
		if value == nil {
			continue
		}
		switch value.Type() {
		case jsNodeArrowFunction, jsNodeFunctionExpression:
		default:
			continue
		}

		name := fieldText(child, "name", source)
		if name == "" {
			continue
		}
		symbols = append(symbols, domain.SymbolInfo{
			Name:     name,
			Path:     []string{name},
			Kind:     domain.SymbolKindFunction,
			Location: nodeLocation(child),
		})
	}
	return symbols
}
