package discover

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/launchgen/core/pkg/domain"
)

// nodeText returns the source text for the given AST node. Returns the empty
// string when the node's byte range exceeds the source length.
func nodeText(node *sitter.Node, source []byte) string {
	start := node.StartByte()
	end := node.EndByte()
	if start > uint32(len(source)) || end > uint32(len(source)) {
		return ""
	}
	return node.Content(source)
}

// nodeLocation converts a tree-sitter node position to a domain.Location.
// Line numbers are converted to 1-based indexing.
func nodeLocation(node *sitter.Node) domain.Location {
	start := node.StartPoint()
	end := node.EndPoint()

	return domain.Location{
		StartLine: int(start.Row) + 1,
		EndLine:   int(end.Row) + 1,
		StartCol:  int(start.Column),
		EndCol:    int(end.Column),
	}
}

func walkTreeWithDepth(node *sitter.Node, visitor func(*sitter.Node) bool, depth int) {
	if depth > maxTreeDepth {
		return
	}
	if !visitor(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walkTreeWithDepth(node.Child(i), visitor, depth+1)
	}
}

// walkTree recursively visits all nodes in the AST. The visitor returns
// false to stop descending into a node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	walkTreeWithDepth(node, visitor, 0)
}
