package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	line  int
	start int
	end   int

	// only meaningful for TokenIndent
	width int
}

// NewToken creates a lexical unit spanning src[start:end].
func NewToken(tt TokenType, lexeme string, line int, start int, end int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		start:  start,
		end:    end,
	}
}

// NewIndent creates a zero-width indentation marker for a line whose content
// starts after width spaces or tabs.
func NewIndent(width int, line int, offset int) *Token {
	return &Token{
		tt:    TokenIndent,
		line:  line,
		start: offset,
		end:   offset,
		width: width,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Line returns the zero-based line of the lexical unit
func (t Token) Line() int {
	return t.line
}

// Offsets returns the byte range [start, end) the lexical unit occupies in
// the source.
func (t Token) Offsets() (int, int) {
	return t.start, t.end
}

// Start returns the byte offset where the lexical unit begins.
func (t Token) Start() int {
	return t.start
}

// End returns the byte offset right after the lexical unit.
func (t Token) End() int {
	return t.end
}

// Width returns the indentation width of a TokenIndent.
func (t Token) Width() int {
	return t.width
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	if t.tt == TokenIndent {
		return fmt.Sprintf("(:%v %d [%d %d:%d])", t.tt, t.width, t.line, t.start, t.end)
	}
	return fmt.Sprintf("(:%v %q [%d %d:%d])", t.tt, t.lexeme, t.line, t.start, t.end)
}
