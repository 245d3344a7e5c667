package parser

import (
	"errors"
	"log"
	"strconv"

	"github.com/xiam/wisp/ast"
	"github.com/xiam/wisp/lexer"
)

// ParserOptions tweaks how a Parser reads its input. The zero value is the
// strict behaviour.
type ParserOptions struct {
	// AutoCloseOnEOF closes the lists that are still open when the input
	// ends instead of failing with UnclosedListError.
	AutoCloseOnEOF bool

	// Logger, if set, receives every token read and the error that stopped
	// the parser, if any.
	Logger *log.Logger
}

// Parser turns source text into a forest of nodes allocated in a single
// Arena. Lines of the same width are siblings; a line followed by deeper
// lines owns them as a block.
type Parser struct {
	src string
	lx  *lexer.Lexer

	arena *ast.Arena
	roots []ast.Ref

	// widths of the open blocks, outermost first; empty means width 0
	indent []int

	// number of parenthesized lists being parsed
	depth int

	nextTok *lexer.Token

	options ParserOptions
}

// New creates a parser for the given source text. A Parser is meant to run
// once.
func New(src string) *Parser {
	return &Parser{
		src:   src,
		lx:    lexer.New(src),
		arena: ast.NewArena(),
	}
}

// SetOptions replaces the options of the parser.
func (p *Parser) SetOptions(options ParserOptions) {
	p.options = options
}

// Parse reads the whole input. It stops at the first error, which is
// returned as is when it comes from the lexer.
func (p *Parser) Parse() error {
	roots, err := p.parseSource()
	if err != nil {
		p.logf("parser error: %v", err)
		return err
	}
	p.roots = roots
	return nil
}

// Arena returns the arena that owns every node created by the parser.
func (p *Parser) Arena() *ast.Arena {
	return p.arena
}

// Roots returns the top-level nodes found by Parse, in source order.
func (p *Parser) Roots() []ast.Ref {
	return p.roots
}

func (p *Parser) logf(format string, v ...interface{}) {
	if p.options.Logger != nil {
		p.options.Logger.Printf(format, v...)
	}
}

func (p *Parser) read() (*lexer.Token, error) {
	tok, err := p.lx.NextToken()
	if err != nil {
		return nil, err
	}
	p.logf("tok: %v", tok)
	return &tok, nil
}

func (p *Parser) peek() (*lexer.Token, error) {
	if p.nextTok != nil {
		return p.nextTok, nil
	}

	tok, err := p.read()
	if err != nil {
		return nil, err
	}
	p.nextTok = tok
	return tok, nil
}

func (p *Parser) next() (*lexer.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	p.nextTok = nil
	return tok, nil
}

func (p *Parser) level() int {
	if len(p.indent) == 0 {
		return 0
	}
	return p.indent[len(p.indent)-1]
}

func (p *Parser) push(width int) {
	p.indent = append(p.indent, width)
}

func (p *Parser) pop() {
	p.indent = p.indent[:len(p.indent)-1]
}

func (p *Parser) levels() []int {
	return append([]int{}, p.indent...)
}

func (p *Parser) span(line int, start int, end int) ast.Span {
	return ast.Span{
		Line:  line,
		Start: start,
		End:   end,
		Text:  p.src[start:end],
	}
}

func (p *Parser) tokenSpan(tok *lexer.Token) ast.Span {
	return p.span(tok.Line(), tok.Start(), tok.End())
}

// spanOf returns the span covering a non-empty run of sibling nodes.
func (p *Parser) spanOf(refs []ast.Ref) ast.Span {
	first := p.arena.Node(refs[0]).Span()
	last := p.arena.Node(refs[len(refs)-1]).Span()
	return p.span(first.Line, first.Start, last.End)
}

func (p *Parser) unexpected(expected string, tok *lexer.Token) error {
	return &UnexpectedTokenError{
		Expected: expected,
		Found:    *tok,
		Line:     tok.Line(),
	}
}

func (p *Parser) parseSource() ([]ast.Ref, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type() {
	case lexer.TokenEOF:
		return []ast.Ref{}, nil
	case lexer.TokenIndent:
		// ok
	default:
		return nil, p.unexpected("indentation", tok)
	}

	if tok.Width() != 0 {
		return nil, &IndentMismatchError{
			Got:    tok.Width(),
			Levels: p.levels(),
			Line:   tok.Line(),
		}
	}

	return p.parseBlock(0)
}

// parseBlock parses the lines of a block indented at level. The indentation
// token of its first line has already been consumed. It stops at the end of
// input or before a line indented less than level.
func (p *Parser) parseBlock(level int) ([]ast.Ref, error) {
	items := []ast.Ref{}

	for {
		line, err := p.parseLine(level)
		if err != nil {
			return nil, err
		}
		items = append(items, line...)

		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Is(lexer.TokenEOF) || tok.Width() < level {
			return items, nil
		}

		// same width: a sibling line
		if _, err := p.next(); err != nil {
			return nil, err
		}
	}
}

// parseLine parses the forms of a single line. If the following lines are
// indented deeper they are parsed as a block and the line becomes a list
// holding its own forms followed by the block.
func (p *Parser) parseLine(level int) ([]ast.Ref, error) {
	forms := []ast.Ref{}

	var tok *lexer.Token
	for {
		var err error
		if tok, err = p.peek(); err != nil {
			return nil, err
		}
		if tok.Is(lexer.TokenEOF) || tok.Is(lexer.TokenIndent) {
			break
		}

		form, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}

	if !tok.Is(lexer.TokenIndent) || tok.Width() <= level {
		return forms, nil
	}

	width := tok.Width()
	if _, err := p.next(); err != nil {
		return nil, err
	}

	p.push(width)
	items, err := p.parseBlock(width)
	if err != nil {
		return nil, err
	}
	p.pop()

	after, err := p.peek()
	if err != nil {
		return nil, err
	}
	if after.Is(lexer.TokenIndent) && after.Width() > level {
		return nil, &IndentMismatchError{
			Got:    after.Width(),
			Levels: p.levels(),
			Line:   after.Line(),
		}
	}

	block := p.arena.NewList(p.spanOf(items), items)
	forms = append(forms, block)

	return []ast.Ref{p.arena.NewList(p.spanOf(forms), forms)}, nil
}

func (p *Parser) parseForm() (ast.Ref, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}

	switch tok.Type() {
	case lexer.TokenOpenList:
		return p.parseList(tok)

	case lexer.TokenQuote:
		return p.parseQuote(tok)

	case lexer.TokenNumber:
		f64, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, p.unexpected("number", tok)
		}
		return p.arena.NewNumber(p.tokenSpan(tok), f64), nil

	case lexer.TokenString:
		return p.arena.NewString(p.tokenSpan(tok), lexer.Unquote(tok.Text())), nil

	case lexer.TokenIdent:
		return p.arena.NewIdent(p.tokenSpan(tok), tok.Text()), nil
	}

	return 0, p.unexpected("form", tok)
}

// parseList parses the forms after an open parenthesis up to the matching
// close. Lines indented at least as deep as the enclosing block continue the
// list; a dedent below it leaves the list unclosed.
func (p *Parser) parseList(open *lexer.Token) (ast.Ref, error) {
	level := p.level()

	p.depth++
	defer func() {
		p.depth--
	}()

	children := []ast.Ref{}
	for {
		tok, err := p.peek()
		if err != nil {
			return 0, err
		}

		switch tok.Type() {
		case lexer.TokenCloseList:
			if _, err := p.next(); err != nil {
				return 0, err
			}
			return p.arena.NewList(p.span(open.Line(), open.Start(), tok.End()), children), nil

		case lexer.TokenEOF:
			if p.options.AutoCloseOnEOF {
				end := open.End()
				if len(children) > 0 {
					end = p.arena.Node(children[len(children)-1]).Span().End
				}
				return p.arena.NewList(p.span(open.Line(), open.Start(), end), children), nil
			}
			return 0, &UnclosedListError{Line: open.Line(), Offset: open.Start()}

		case lexer.TokenIndent:
			if tok.Width() < level {
				return 0, &UnclosedListError{Line: open.Line(), Offset: open.Start()}
			}
			if _, err := p.next(); err != nil {
				return 0, err
			}

		default:
			child, err := p.parseForm()
			if err != nil {
				return 0, err
			}
			children = append(children, child)
		}
	}
}

// parseQuote wraps the single form that follows a quote.
func (p *Parser) parseQuote(quote *lexer.Token) (ast.Ref, error) {
	level := p.level()

	for {
		tok, err := p.peek()
		if err != nil {
			return 0, err
		}

		switch tok.Type() {
		case lexer.TokenOpenList, lexer.TokenQuote, lexer.TokenNumber, lexer.TokenString, lexer.TokenIdent:
			child, err := p.parseForm()
			if err != nil {
				return 0, err
			}
			end := p.arena.Node(child).Span().End
			return p.arena.NewQuote(p.span(quote.Line(), quote.Start(), end), child), nil

		case lexer.TokenIndent:
			// the quoted form may continue on the next line inside a list
			if p.depth > 0 && tok.Width() >= level {
				if _, err := p.next(); err != nil {
					return 0, err
				}
				continue
			}
		}

		return 0, p.unexpected("quoted form", tok)
	}
}

// Parse reads the given source text and returns the arena holding the AST
// together with its top-level nodes.
func Parse(src string) (*ast.Arena, []ast.Ref, error) {
	p := New(src)

	if err := p.Parse(); err != nil {
		return nil, nil, err
	}

	return p.arena, p.roots, nil
}
