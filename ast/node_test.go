package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	a := NewArena()

	ref := a.NewNumber(Span{Line: 0, Start: 0, End: 3, Text: "1.5"}, 1.5)
	node := a.Node(ref)

	assert.Equal(t, NodeTypeNumber, node.Type())
	assert.True(t, node.IsValue())
	assert.False(t, node.IsVector())
	assert.Equal(t, 1.5, node.Float64())
	assert.Equal(t, 1.5, node.Value())
	assert.Equal(t, 0, node.Len())
	assert.Empty(t, a.Children(ref))
	assert.Equal(t, "(number): 1.5", node.String())
}

func TestNodeList(t *testing.T) {
	a := NewArena()

	x := a.NewIdent(Span{Line: 0, Start: 1, End: 2, Text: "x"}, "x")
	s := a.NewString(Span{Line: 0, Start: 3, End: 8, Text: `"a\nb"`}, "a\nb")
	list := a.NewList(Span{Line: 0, Start: 0, End: 9, Text: `(x "a\nb")`}, []Ref{x, s})

	node := a.Node(list)
	assert.Equal(t, NodeTypeList, node.Type())
	assert.True(t, node.IsVector())
	assert.Nil(t, node.Value())
	assert.Equal(t, 2, node.Len())
	assert.Equal(t, []Ref{x, s}, a.Children(list))
	assert.Equal(t, s, a.Child(list, 1))
	assert.Equal(t, "(list)[2]", node.String())

	start, end := node.Offsets()
	assert.Equal(t, 0, start)
	assert.Equal(t, 9, end)

	assert.Equal(t, "x", a.Node(x).Text())
	assert.Equal(t, "a\nb", a.Node(s).Value())
	assert.Equal(t, `"a\nb"`, a.Node(s).Span().Text)
}

func TestNodeTypeNames(t *testing.T) {
	assert.Equal(t, "number", NodeTypeNumber.String())
	assert.Equal(t, "quote", NodeTypeQuote.String())
	assert.Equal(t, "", NodeType(0).String())
}
