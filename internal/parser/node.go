package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/ludo-technologies/jsvet/domain"
)

// Node is one node of the converted syntax tree. Node kinds are the
// tree-sitter grammar kinds (e.g. "debugger_statement", "catch_clause");
// only named nodes are kept.
type Node struct {
	kind     string
	loc      domain.SourceLocation
	text     string
	children []*Node
}

// Kind returns the grammar kind of the node
func (n *Node) Kind() string {
	return n.kind
}

// Span returns the node's source location
func (n *Node) Span() domain.SourceLocation {
	return n.loc
}

// Text returns the source text covered by the node
func (n *Node) Text() string {
	return n.text
}

// Children returns the named child nodes in source order
func (n *Node) Children() []domain.ASTNode {
	out := make([]domain.ASTNode, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Walk traverses the subtree depth-first and calls the visitor for each
// node. If the visitor returns false, traversal of that branch stops.
func (n *Node) Walk(visitor func(domain.ASTNode) bool) {
	if n == nil {
		return
	}
	if !visitor(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(visitor)
	}
}

// convert builds the internal tree from a tree-sitter CST. Lines and
// columns are 1-based in the resulting locations.
func convert(node *sitter.Node, filename string, source []byte) *Node {
	start := node.StartPoint()
	end := node.EndPoint()

	out := &Node{
		kind: node.Type(),
		loc: domain.SourceLocation{
			FilePath:    filename,
			StartLine:   int(start.Row) + 1,
			StartColumn: int(start.Column) + 1,
			EndLine:     int(end.Row) + 1,
			EndColumn:   int(end.Column) + 1,
		},
		text: node.Content(source),
	}

	count := int(node.NamedChildCount())
	if count > 0 {
		out.children = make([]*Node, 0, count)
		for i := 0; i < count; i++ {
			out.children = append(out.children, convert(node.NamedChild(i), filename, source))
		}
	}
	return out
}
