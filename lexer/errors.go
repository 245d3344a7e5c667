package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnterminatedString = errors.New("unterminated string")
)

// UnexpectedCharError is returned when a character can't begin any token.
type UnexpectedCharError struct {
	Char   rune
	Line   int
	Offset int
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("%v %q on line %d", ErrUnexpectedChar, e.Char, e.Line)
}

func (e *UnexpectedCharError) Unwrap() error {
	return ErrUnexpectedChar
}

// UnterminatedStringError is returned when a string literal reaches a line
// terminator or the end of input before its closing quote. Offset points at
// the opening quote.
type UnterminatedStringError struct {
	Line   int
	Offset int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("%v on line %d", ErrUnterminatedString, e.Line)
}

func (e *UnterminatedStringError) Unwrap() error {
	return ErrUnterminatedString
}
