package wisp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/wisp/ast"
	"github.com/xiam/wisp/lexer"
	"github.com/xiam/wisp/parser"
)

func TestScan(t *testing.T) {
	tokens, err := Scan("a\n  (b 1)")
	require.NoError(t, err)

	types := []lexer.TokenType{}
	for _, tok := range tokens {
		types = append(types, tok.Type())
	}

	assert.Equal(t, []lexer.TokenType{
		lexer.TokenIndent,
		lexer.TokenIdent,
		lexer.TokenIndent,
		lexer.TokenOpenList,
		lexer.TokenIdent,
		lexer.TokenNumber,
		lexer.TokenCloseList,
	}, types)
	assert.Equal(t, 2, tokens[2].Width())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{"(a b c)", "(a b c)"},
		{"'x", "'x"},
		{"(a (b c)\n   d)", "(a (b c) d)"},
		{"a\n  b\n  c\nd", "(a (b c)) d"},
		{"define (square x)\n  * x x", "(define (square x) (* x x))"},
		{"define f\n  * x x\n  + y y", "(define f (* x x + y y))"},
		{"define f\n  (* x x)\n  (+ y y)", "(define f ((* x x) (+ y y)))"},
	}

	for i := range testCases {
		arena, roots, err := Parse(testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(arena, roots...)))
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{"a\n  b\n c", parser.ErrIndentMismatch},
		{"(a b", parser.ErrUnclosedList},
		{"(a $)", lexer.ErrUnexpectedChar},
	}

	for i := range testCases {
		arena, roots, err := Parse(testCases[i].In)
		assert.Nil(t, arena)
		assert.Nil(t, roots)
		assert.True(t, errors.Is(err, testCases[i].Err))
	}
}
