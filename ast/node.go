package ast

import (
	"fmt"
)

// Ref identifies a node within the Arena that allocated it. A Ref is only
// meaningful together with its Arena.
type Ref uint32

// Span is the source range a node covers: the zero-based line where it
// starts, the byte range [Start, End) and the text in that range.
type Span struct {
	Line  int
	Start int
	End   int
	Text  string
}

// Node represents a leaf or a branch of the AST. Nodes are created by an
// Arena and never change afterwards.
type Node struct {
	nt   NodeType
	span Span

	num  float64
	text string

	// children live in Arena.refs[first:first+count]
	first int
	count int
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Span returns the source range covered by the node and its descendants.
func (n Node) Span() Span {
	return n.span
}

// Line returns the line where the node starts.
func (n Node) Line() int {
	return n.span.Line
}

// Offsets returns the byte range covered by the node.
func (n Node) Offsets() (int, int) {
	return n.span.Start, n.span.End
}

// Float64 returns the value of a number node.
func (n Node) Float64() float64 {
	return n.num
}

// Text returns the resolved text of a string node or the name of an
// identifier.
func (n Node) Text() string {
	return n.text
}

// Value returns the payload of a value node: float64 for numbers and string
// for strings and identifiers. Vector nodes have no payload.
func (n Node) Value() interface{} {
	switch n.nt {
	case NodeTypeNumber:
		return n.num
	case NodeTypeString, NodeTypeIdent:
		return n.text
	}
	return nil
}

// Len returns the number of children of the node.
func (n Node) Len() int {
	return n.count
}

// IsValue returns true if the node is of type value
func (n Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

func (n Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, n.count)
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.Value())
}
