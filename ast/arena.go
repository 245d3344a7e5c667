package ast

import (
	"fmt"
)

// Arena owns every node produced by one parse. Nodes refer to their children
// by Ref; the whole tree is released together when the Arena is dropped.
type Arena struct {
	nodes []Node
	refs  []Ref

	adopted []bool
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node returns the node identified by ref.
func (a *Arena) Node(ref Ref) Node {
	return a.nodes[ref]
}

// Children returns the children of a list or quote node, in order. The
// returned slice must not be modified.
func (a *Arena) Children(ref Ref) []Ref {
	n := a.nodes[ref]
	return a.refs[n.first : n.first+n.count : n.first+n.count]
}

// Child returns the i-th child of a vector node.
func (a *Arena) Child(ref Ref, i int) Ref {
	return a.Children(ref)[i]
}

// NewNumber allocates a number node.
func (a *Arena) NewNumber(span Span, v float64) Ref {
	return a.alloc(Node{nt: NodeTypeNumber, span: span, num: v})
}

// NewString allocates a string node holding the already unescaped text.
func (a *Arena) NewString(span Span, v string) Ref {
	return a.alloc(Node{nt: NodeTypeString, span: span, text: v})
}

// NewIdent allocates an identifier node.
func (a *Arena) NewIdent(span Span, name string) Ref {
	return a.alloc(Node{nt: NodeTypeIdent, span: span, text: name})
}

// NewList allocates a list node adopting the given children.
func (a *Arena) NewList(span Span, children []Ref) Ref {
	return a.newVector(NodeTypeList, span, children)
}

// NewQuote allocates a quote node wrapping exactly one child.
func (a *Arena) NewQuote(span Span, child Ref) Ref {
	return a.newVector(NodeTypeQuote, span, []Ref{child})
}

func (a *Arena) newVector(nt NodeType, span Span, children []Ref) Ref {
	first := len(a.refs)
	for _, child := range children {
		a.adopt(child)
		a.refs = append(a.refs, child)
	}
	return a.alloc(Node{nt: nt, span: span, first: first, count: len(children)})
}

// adopt marks child as owned by a parent. A node can't have two parents and
// can't be adopted before it exists, which keeps the arena a forest.
func (a *Arena) adopt(child Ref) {
	if int(child) >= len(a.nodes) {
		panic(fmt.Sprintf("ast: unknown node %d", child))
	}
	if a.adopted[child] {
		panic(fmt.Sprintf("ast: node %d already has a parent", child))
	}
	a.adopted[child] = true
}

func (a *Arena) alloc(n Node) Ref {
	ref := Ref(len(a.nodes))
	a.nodes = append(a.nodes, n)
	a.adopted = append(a.adopted, false)
	return ref
}

// Roots returns every node that has no parent, in allocation order.
func (a *Arena) Roots() []Ref {
	roots := []Ref{}
	for i := range a.nodes {
		if !a.adopted[i] {
			roots = append(roots, Ref(i))
		}
	}
	return roots
}
