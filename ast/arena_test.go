package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildSample(a *Arena) []Ref {
	// (a 'b) 2
	ida := a.NewIdent(Span{Line: 0, Start: 1, End: 2, Text: "a"}, "a")
	idb := a.NewIdent(Span{Line: 0, Start: 4, End: 5, Text: "b"}, "b")
	quote := a.NewQuote(Span{Line: 0, Start: 3, End: 5, Text: "'b"}, idb)
	list := a.NewList(Span{Line: 0, Start: 0, End: 6, Text: "(a 'b)"}, []Ref{ida, quote})
	num := a.NewNumber(Span{Line: 0, Start: 7, End: 8, Text: "2"}, 2)
	return []Ref{list, num}
}

func TestArenaAllocation(t *testing.T) {
	a := NewArena()
	roots := buildSample(a)

	assert.Equal(t, 5, a.Len())
	assert.Equal(t, roots, a.Roots())

	quote := a.Child(roots[0], 1)
	assert.Equal(t, NodeTypeQuote, a.Node(quote).Type())
	assert.Equal(t, 1, a.Node(quote).Len())
	assert.Equal(t, "b", a.Node(a.Child(quote, 0)).Text())
}

func TestArenaChildrenCapacity(t *testing.T) {
	a := NewArena()
	x := a.NewIdent(Span{}, "x")
	y := a.NewIdent(Span{}, "y")
	first := a.NewList(Span{}, []Ref{x})
	second := a.NewList(Span{}, []Ref{y})

	_ = append(a.Children(first), first)

	assert.Equal(t, []Ref{x}, a.Children(first))
	assert.Equal(t, []Ref{y}, a.Children(second))
}

func TestArenaStrictTree(t *testing.T) {
	a := NewArena()
	x := a.NewIdent(Span{}, "x")
	a.NewList(Span{}, []Ref{x})

	assert.Panics(t, func() {
		a.NewQuote(Span{}, x)
	})

	assert.Panics(t, func() {
		a.NewList(Span{}, []Ref{Ref(99)})
	})
}

func TestArenaDeepEqual(t *testing.T) {
	a1, a2 := NewArena(), NewArena()
	r1, r2 := buildSample(a1), buildSample(a2)

	assert.Equal(t, r1, r2)
	assert.Equal(t, a1, a2)
}

func TestEncode(t *testing.T) {
	a := NewArena()
	roots := buildSample(a)

	assert.Equal(t, "(a 'b) 2", string(Encode(a, roots...)))
	assert.Equal(t, "", string(Encode(a)))

	s := a.NewString(Span{}, "say \"hi\"\n")
	f := a.NewNumber(Span{}, 0.25)
	assert.Equal(t, `("say \"hi\"\n" 0.25)`, string(Encode(a, a.NewList(Span{}, []Ref{s, f}))))
}

func TestFprint(t *testing.T) {
	a := NewArena()
	roots := buildSample(a)

	var buf bytes.Buffer
	Fprint(&buf, a, roots...)

	expected := "(list): [0 0:6]\n" +
		"    (ident): \"a\" [0 1:2]\n" +
		"    (quote): [0 3:5]\n" +
		"        (ident): \"b\" [0 4:5]\n" +
		"(number): 2 [0 7:8]\n"

	assert.Equal(t, expected, buf.String())
}
