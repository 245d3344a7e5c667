package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenIdent               // Identifier: letters, digits and symbols
	TokenNumber              // Number: 1, 1.5, 2e10
	TokenString              // Double quoted string: "..."
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenQuote               // Single quote: "'"
	TokenIndent              // Indentation width of a non-blank line
	TokenEOF                 // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenQuote:     []rune{'\''},
	TokenString:    []rune{'"'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenIdent:     "ident",
	TokenNumber:    "number",
	TokenString:    "string",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenQuote:     "quote",
	TokenIndent:    "indent",
	TokenEOF:       "EOF",
}

var (
	// symbolic characters allowed anywhere in an identifier
	identSymbols = []rune("-_?!*+/<>=")

	// leading indentation
	indentChars = []rune(" \t")

	// intra-line whitespace
	spaceChars = []rune(" \t\r\f\v")
)

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return isOneOf(tokenValues[tt])
}

func isOneOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isOpenList    = isTokenType(TokenOpenList)
	isCloseList   = isTokenType(TokenCloseList)
	isQuote       = isTokenType(TokenQuote)
	isDoubleQuote = isTokenType(TokenString)

	isSymbol = isOneOf(identSymbols)
	isIndent = isOneOf(indentChars)
	isSpace  = isOneOf(spaceChars)
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || isSymbol(r)
}

func isIdentBody(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || isSymbol(r)
}

// lineTerminator returns the length of the line terminator starting at
// s[i], or 0 if there is none.
func lineTerminator(s string, i int) int {
	if i >= len(s) {
		return 0
	}
	switch s[i] {
	case '\n':
		return 1
	case '\r':
		if i+1 < len(s) && s[i+1] == '\n' {
			return 2
		}
	}
	return 0
}
