package discover

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/launchgen/core/pkg/domain"
)

const (
	goNodeFunctionDeclaration  = "function_declaration"
	goNodeMethodDeclaration    = "method_declaration"
	goNodeParameterDeclaration = "parameter_declaration"
)

// extractGoSymbols collects top-level functions and methods. A method's path
// is [receiver type, name] so consumers can build qualified references.
func extractGoSymbols(root *sitter.Node, source []byte) []domain.SymbolInfo {
	var symbols []domain.SymbolInfo

	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)

		switch child.Type() {
		case goNodeFunctionDeclaration:
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

		case goNodeMethodDeclaration:
			name := fieldText(child, "name", source)
			if name == "" {
				continue
			}
			sym := domain.SymbolInfo{
				Name:     name,
				Kind:     domain.SymbolKindMethod,
				Location: nodeLocation(child),
			}
			if recv := goReceiverType(child, source); recv != "" {
				sym.Path = []string{recv, name}
			} else {
				sym.Path = []string{name}
			}
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

// goReceiverType returns the bare receiver type name, with any pointer and
// type-parameter decoration stripped.
func goReceiverType(method *sitter.Node, source []byte) string {
	receiver := method.ChildByFieldName("receiver")
	if receiver == nil {
		return ""
	}

	var typeText string
	for i := 0; i < int(receiver.ChildCount()); i++ {
		child := receiver.Child(i)
		if child.Type() != goNodeParameterDeclaration {
			continue
		}
		if typeNode := child.ChildByFieldName("type"); typeNode != nil {
			typeText = nodeText(typeNode, source)
		}
		break
	}

	typeText = strings.TrimPrefix(typeText, "*")
	if idx := strings.IndexByte(typeText, '['); idx >= 0 {
		typeText = typeText[:idx]
	}
	return typeText
}

func fieldText(node *sitter.Node, field string, source []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return nodeText(child, source)
}
