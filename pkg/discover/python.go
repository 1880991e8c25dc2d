package discover

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/launchgen/core/pkg/domain"
)

const (
	pyNodeFunctionDefinition  = "function_definition"
	pyNodeClassDefinition     = "class_definition"
	pyNodeDecoratedDefinition = "decorated_definition"
)

// extractPythonSymbols collects module-level functions, classes, and class
// methods. Decorated definitions are unwrapped to the underlying function or
// class.
func extractPythonSymbols(root *sitter.Node, source []byte) []domain.SymbolInfo {
	var symbols []domain.SymbolInfo

	for i := 0; i < int(root.ChildCount()); i++ {
		child := undecorate(root.Child(i))
		if child == nil {
			continue
		}

		switch child.Type() {
		case pyNodeFunctionDefinition:
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

		case pyNodeClassDefinition:
			symbols = append(symbols, extractPythonClass(child, source)...)
		}
	}
	return symbols
}

// extractPythonClass returns the class symbol followed by its methods, each
// method carrying the [class, method] path.
func extractPythonClass(class *sitter.Node, source []byte) []domain.SymbolInfo {
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
		child := undecorate(body.Child(i))
		if child == nil || child.Type() != pyNodeFunctionDefinition {
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

// undecorate resolves decorated_definition wrappers to the wrapped node.
func undecorate(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() != pyNodeDecoratedDefinition {
		return node
	}
	return node.ChildByFieldName("definition")
}
