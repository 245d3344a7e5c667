package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/wisp/lexer"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnclosedList    = errors.New("unclosed list")
	ErrIndentMismatch  = errors.New("indent mismatch")
)

// UnexpectedTokenError is returned when a token can't start or continue the
// form being parsed.
type UnexpectedTokenError struct {
	Expected string
	Found    lexer.Token
	Line     int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%v on line %d: expected %s, found %v", ErrUnexpectedToken, e.Line, e.Expected, e.Found.Type())
}

func (e *UnexpectedTokenError) Unwrap() error {
	return ErrUnexpectedToken
}

// UnclosedListError is returned when the end of input or the end of the
// enclosing indentation block is reached before a list is closed. Line and
// Offset point at the opening parenthesis.
type UnclosedListError struct {
	Line   int
	Offset int
}

func (e *UnclosedListError) Error() string {
	return fmt.Sprintf("%v opened on line %d", ErrUnclosedList, e.Line)
}

func (e *UnclosedListError) Unwrap() error {
	return ErrUnclosedList
}

// IndentMismatchError is returned when a line dedents to a width that
// matches none of the open blocks. Levels holds the widths still open after
// closing every deeper block, outermost first; level 0 is implicit.
type IndentMismatchError struct {
	Got    int
	Levels []int
	Line   int
}

func (e *IndentMismatchError) Error() string {
	return fmt.Sprintf("%v on line %d: indentation %d does not match any of %v", ErrIndentMismatch, e.Line, e.Got, append([]int{0}, e.Levels...))
}

func (e *IndentMismatchError) Unwrap() error {
	return ErrIndentMismatch
}
