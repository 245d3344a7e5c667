package lexer

import (
	"strings"
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer over the given source text.
func New(src string) *Lexer {
	return &Lexer{
		src:   src,
		state: lexIndentState,
	}
}

// Lexer represents a lexical analyzer. It is pulled one token at a time with
// NextToken; every line with content is announced by a TokenIndent carrying
// the width of its leading whitespace.
type Lexer struct {
	src string

	state lexState
	tok   *Token

	lastErr error

	offset int
	line   int
}

// NextToken scans and returns the next token. Once the end of input is
// reached TokenEOF is returned on every call; once an error is found the
// same error is returned on every call.
func (lx *Lexer) NextToken() (Token, error) {
	for lx.tok == nil {
		if lx.lastErr != nil {
			return Token{}, lx.lastErr
		}
		lx.state = lx.state(lx)
	}

	tok := *lx.tok
	lx.tok = nil

	return tok, nil
}

// Offset returns the current byte position of the lexer.
func (lx *Lexer) Offset() int {
	return lx.offset
}

func (lx *Lexer) emit(tt TokenType, start int, end int) {
	lx.tok = NewToken(tt, lx.src[start:end], lx.line, start, end)
	lx.offset = end
}

func (lx *Lexer) peek() (rune, int) {
	if lx.offset >= len(lx.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(lx.src[lx.offset:])
}

func (lx *Lexer) newLine(n int) {
	lx.offset += n
	lx.line++
}

func lexIndentState(lx *Lexer) lexState {
	start := lx.offset

	i := start
	for i < len(lx.src) && isIndent(rune(lx.src[i])) {
		i++
	}
	width := i - start

	// whitespace-only lines are blank no matter what kind of whitespace
	// follows the indentation
	j := i
	for j < len(lx.src) && isSpace(rune(lx.src[j])) {
		j++
	}

	if n := lineTerminator(lx.src, j); n > 0 {
		lx.offset = j
		lx.newLine(n)
		return lexIndentState
	}

	if j >= len(lx.src) {
		lx.offset = j
		return lexEOFState
	}

	lx.tok = NewIndent(width, lx.line, start)
	lx.offset = i

	return lexDefaultState
}

func lexDefaultState(lx *Lexer) lexState {
	for lx.offset < len(lx.src) {
		if n := lineTerminator(lx.src, lx.offset); n > 0 {
			lx.newLine(n)
			return lexIndentState
		}
		if !isSpace(rune(lx.src[lx.offset])) {
			break
		}
		lx.offset++
	}

	r, size := lx.peek()
	if size == 0 {
		return lexEOFState
	}

	switch {
	case isOpenList(r):
		return lexEmit(TokenOpenList, size)
	case isCloseList(r):
		return lexEmit(TokenCloseList, size)
	case isQuote(r):
		return lexEmit(TokenQuote, size)
	case isDoubleQuote(r):
		return lexString
	case isDigit(r):
		return lexNumber
	case isIdentStart(r):
		return lexIdent
	}

	return lexStateError(&UnexpectedCharError{
		Char:   r,
		Line:   lx.line,
		Offset: lx.offset,
	})
}

func lexEmit(tt TokenType, size int) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt, lx.offset, lx.offset+size)
		return lexDefaultState
	}
}

func lexString(lx *Lexer) lexState {
	start := lx.offset

	for i := start + 1; i < len(lx.src); i++ {
		if lineTerminator(lx.src, i) > 0 {
			break
		}
		switch lx.src[i] {
		case '"':
			lx.emit(TokenString, start, i+1)
			return lexDefaultState
		case '\\':
			if i+1 >= len(lx.src) || lineTerminator(lx.src, i+1) > 0 {
				return lexStateError(&UnterminatedStringError{Line: lx.line, Offset: start})
			}
			i++
		}
	}

	return lexStateError(&UnterminatedStringError{Line: lx.line, Offset: start})
}

func lexNumber(lx *Lexer) lexState {
	src := lx.src
	start := lx.offset

	i := skipDigits(src, start)

	// fraction
	if i+1 < len(src) && src[i] == '.' && isDigit(rune(src[i+1])) {
		i = skipDigits(src, i+1)
	}

	// exponent
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(rune(src[j])) {
			i = skipDigits(src, j)
		}
	}

	lx.emit(TokenNumber, start, i)
	return lexDefaultState
}

func lexIdent(lx *Lexer) lexState {
	start := lx.offset

	i := start
	for i < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[i:])
		if !isIdentBody(r) {
			break
		}
		i += size
	}

	lx.emit(TokenIdent, start, i)
	return lexDefaultState
}

func lexEOFState(lx *Lexer) lexState {
	lx.tok = NewToken(TokenEOF, "", lx.line, lx.offset, lx.offset)
	return lexEOFState
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	return i
}

// Tokenize takes a source text and returns all the tokens within it, not
// including the final TokenEOF, or the first error found.
func Tokenize(src string) ([]Token, error) {
	tokens := []Token{}

	lx := New(src)
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Unquote resolves the escape sequences of a string literal and strips its
// surrounding double quotes. Unknown escapes are kept as they are.
func Unquote(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		lexeme = lexeme[1 : len(lexeme)-1]
	}
	if strings.IndexByte(lexeme, '\\') < 0 {
		return lexeme
	}

	var b strings.Builder
	b.Grow(len(lexeme))

	for i := 0; i < len(lexeme); i++ {
		c := lexeme[i]
		if c != '\\' || i+1 >= len(lexeme) {
			b.WriteByte(c)
			continue
		}
		i++
		switch lexeme[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte('\\')
			b.WriteByte(lexeme[i])
		}
	}

	return b.String()
}
