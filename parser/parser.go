// Package parser turns Java 8-era source text into the typed AST defined by
// package ast. Parsing is synchronous and single-shot: Parse (and its
// ParseExpression/ParseMemberDeclaration/ParseType siblings) consume an
// entire source buffer and return either a complete tree or the first error
// encountered. There is no incremental re-parse and no error-recovery past
// the first syntax error, matching this module's non-goals.
package parser

import (
	"fmt"

	"github.com/dhamidi/javaast/ast"
	"github.com/dhamidi/javaast/lexer"
	"github.com/dhamidi/javaast/token"
)

// ParserError reports a syntax error: the offending token, what was
// expected, and a human-readable message. It is the only error type the
// parser produces; like the lexer, it never panics across package
// boundaries.
type ParserError struct {
	Token    token.Token
	Expected string
	Message  string
}

func (e *ParserError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: %s (expected %s, found %s)", e.Token.Span.Start, e.Message, e.Expected, e.Token)
	}
	return fmt.Sprintf("%s: %s", e.Token.Span.Start, e.Message)
}

// Option configures a Parser. Options are applied in the order given.
type Option func(*config)

type config struct {
	file          string
	attachJavadoc bool
}

// WithFile sets the file name recorded in every position and error produced
// by the parser. It has no effect on parsing itself.
func WithFile(name string) Option {
	return func(c *config) { c.file = name }
}

// WithJavadoc enables attaching preceding /** ... */ comments to the
// declarations they immediately precede (ClassDeclaration.Javadoc,
// MethodDeclaration.Javadoc, and so on). It is on by default; WithJavadoc(false)
// disables the bookkeeping entirely for callers that never inspect it.
func WithJavadoc(enabled bool) Option {
	return func(c *config) { c.attachJavadoc = enabled }
}

// Parser holds the token cursor and configuration shared by every parse
// entry point. A Parser is single-use: construct one per call to Parse (or
// use the package-level functions, which do this for you).
type Parser struct {
	cur *cursor
	lex *lexer.Lexer
	cfg config

	// javadocAt maps a token index to the Javadoc comment text immediately
	// preceding it. Captured once during tokenize, since draining the whole
	// lexer up front (see tokenize) means Lexer.PendingJavadoc can no longer
	// be consulted token-by-token during parsing itself.
	javadocAt map[int]string
}

func newParser(src []byte, opts []Option) *Parser {
	cfg := config{attachJavadoc: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	lx := lexer.New(src, cfg.file)
	return &Parser{lex: lx, cfg: cfg}
}

// tokenize eagerly drains the lexer into a token slice, per spec's "eagerly
// produced finite ordered sequence of tokens" (the one place a lexer error
// surfaces to a parser caller, since the two are otherwise decoupled).
//
// Draining the lexer up front, rather than pulling one token at a time
// during parsing, means a Javadoc comment's adjacency to the token that
// follows it must be recorded here, while the lexer still has it pending;
// javadocAt is populated as a side effect and consulted later by
// takeJavadoc, since Lexer.PendingJavadoc would otherwise only ever reflect
// the last comment seen before end of file by the time parsing begins.
func (p *Parser) tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		t, err := p.lex.Next()
		if err != nil {
			return nil, err
		}
		if doc, ok := p.lex.PendingJavadoc(); ok && p.cfg.attachJavadoc {
			if p.javadocAt == nil {
				p.javadocAt = make(map[int]string)
			}
			p.javadocAt[len(toks)] = doc
		}
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks, nil
		}
	}
}

// parseFail is the sentinel panic value used to unwind a deeply nested
// recursive-descent call chain back to the entry point on the first syntax
// error, rather than threading an error return through every grammar rule.
type parseFail struct{ err error }

func (p *Parser) fail(tok token.Token, expected, message string) {
	panic(parseFail{&ParserError{Token: tok, Expected: expected, Message: message}})
}

// recoverSpeculation is deferred by speculative lookahead helpers (isCast,
// isLocalVarDecl, isEnhancedFor, isTypedResource) that probe ahead by calling real
// parse* functions and must treat a syntax error mid-probe as "no, this
// isn't the construct I was checking for" rather than a fatal parse error.
// *ok is left at its zero value (false) if a parseFail is recovered; any
// other panic still propagates.
func recoverSpeculation(ok *bool) {
	if r := recover(); r != nil {
		if _, isParseFail := r.(parseFail); !isParseFail {
			panic(r)
		}
		*ok = false
	}
}

// run invokes body and converts a parseFail panic into a returned error;
// any other panic propagates as a genuine bug.
func run(body func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if pf, ok := r.(parseFail); ok {
				err = pf.err
				return
			}
			panic(r)
		}
	}()
	body()
	return nil
}

// expect consumes and returns the current token if it has kind k, or fails.
func (p *Parser) expect(k token.Kind) token.Token {
	if !p.cur.check(k) {
		p.fail(p.cur.peek(), k.String(), "unexpected token")
	}
	return p.cur.advance()
}

// span builds the Span covering [start, the position just consumed].
func (p *Parser) span(start token.Position) token.Span {
	end := start
	if p.cur.pos > 0 {
		end = p.cur.tokens[p.cur.pos-1].Span.End
	}
	return token.Span{Start: start, End: end}
}

// Tokenize lexes src into its complete token sequence, terminated by an
// EOF token, without parsing it.
func Tokenize(src []byte, opts ...Option) ([]token.Token, error) {
	p := newParser(src, opts)
	return p.tokenize()
}

// Parse parses an entire compilation unit: an optional package declaration,
// its imports, and the file's top-level type declarations.
func Parse(src []byte, opts ...Option) (*ast.CompilationUnit, error) {
	p := newParser(src, opts)
	toks, err := p.tokenize()
	if err != nil {
		return nil, err
	}
	p.cur = newCursor(toks)

	var unit *ast.CompilationUnit
	err = run(func() {
		unit = p.parseCompilationUnit()
		if !p.cur.check(token.EOF) {
			p.fail(p.cur.peek(), "end of input", "unexpected trailing input")
		}
	})
	if err != nil {
		return nil, err
	}
	return unit, nil
}

// ParseExpression parses src as a single standalone expression.
func ParseExpression(src []byte, opts ...Option) (ast.Expr, error) {
	p := newParser(src, opts)
	toks, err := p.tokenize()
	if err != nil {
		return nil, err
	}
	p.cur = newCursor(toks)

	var expr ast.Expr
	err = run(func() {
		expr = p.parseExpression()
		if !p.cur.check(token.EOF) {
			p.fail(p.cur.peek(), "end of input", "unexpected trailing input")
		}
	})
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseMemberDeclaration parses src as a single class/interface/enum member:
// a field, method, constructor, or nested type declaration.
func ParseMemberDeclaration(src []byte, opts ...Option) (ast.MemberDeclaration, error) {
	p := newParser(src, opts)
	toks, err := p.tokenize()
	if err != nil {
		return nil, err
	}
	p.cur = newCursor(toks)

	var m ast.MemberDeclaration
	err = run(func() {
		m = p.parseMember()
		if !p.cur.check(token.EOF) {
			p.fail(p.cur.peek(), "end of input", "unexpected trailing input")
		}
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ParseType parses src as a single type reference (primitive, reference, or
// array type).
func ParseType(src []byte, opts ...Option) (ast.Type, error) {
	p := newParser(src, opts)
	toks, err := p.tokenize()
	if err != nil {
		return nil, err
	}
	p.cur = newCursor(toks)

	var ty ast.Type
	err = run(func() {
		ty = p.parseType()
		if !p.cur.check(token.EOF) {
			p.fail(p.cur.peek(), "end of input", "unexpected trailing input")
		}
	})
	if err != nil {
		return nil, err
	}
	return ty, nil
}
