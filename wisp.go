// Package wisp reads Lisp source where nesting is given by parentheses as
// well as by indentation.
//
// A line indented deeper than the line above it opens a block owned by that
// line:
//
//	define (square x)
//	  * x x
//
// reads the same as
//
//	(define (square x) (* x x))
//
// The block is a single list holding the forms of all its lines, so
//
//	define f
//	  * x x
//	  + y y
//
// reads as (define f (* x x + y y)). Write one parenthesized form per line,
// or nest a deeper block under each line, to keep the lines apart.
//
// Inside parentheses, lines that don't dedent below the enclosing block only
// continue the list.
package wisp

import (
	"github.com/xiam/wisp/ast"
	"github.com/xiam/wisp/lexer"
	"github.com/xiam/wisp/parser"
)

// Scan returns the tokens of src, including one lexer.TokenIndent per
// non-blank line, or the first lexical error.
func Scan(src string) ([]lexer.Token, error) {
	return lexer.Tokenize(src)
}

// Parse reads src and returns the arena that owns the AST together with the
// top-level nodes, in source order. On error neither is returned.
func Parse(src string) (*ast.Arena, []ast.Ref, error) {
	return parser.Parse(src)
}
