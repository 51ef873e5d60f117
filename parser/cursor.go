package parser

import "github.com/dhamidi/javaast/token"

// cursor is a buffered, backtrackable view over an eagerly tokenized source
// file. Eager tokenization (rather than pulling one token at a time from the
// lexer) is what makes mark/reset a cheap index save-and-restore instead of
// a re-lex, and is what lets expectGT mutate a token in place when a `>>` or
// `>>>` composite needs to be split while closing a type-argument list.
type cursor struct {
	tokens []token.Token
	pos    int
}

func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens}
}

func (c *cursor) peek() token.Token {
	return c.tokens[c.pos]
}

func (c *cursor) peekN(n int) token.Token {
	i := c.pos + n
	if i >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1] // EOF sentinel
	}
	return c.tokens[i]
}

func (c *cursor) advance() token.Token {
	t := c.tokens[c.pos]
	if t.Kind != token.EOF {
		c.pos++
	}
	return t
}

func (c *cursor) check(k token.Kind) bool {
	return c.peek().Kind == k
}

func (c *cursor) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if c.check(k) {
			return true
		}
	}
	return false
}

// mark returns a cursor position that reset can later rewind to, for
// speculative lookahead (isCast, isLambda, and similar disambiguation).
func (c *cursor) mark() int { return c.pos }

func (c *cursor) reset(mark int) { c.pos = mark }

// expectGT consumes a single `>` that closes a type-argument or
// type-parameter list, splitting a `>>`, `>>>`, `>=`, `>>=`, or `>>>=`
// token in place when the lexer's maximal munch swallowed more than one
// closing angle bracket. Each split peels exactly one `>` off the front of
// the current token and leaves the remainder in place for the next
// expectGT (or other consumer) to see.
func (c *cursor) expectGT() bool {
	switch c.peek().Kind {
	case token.GT:
		c.advance()
		return true
	case token.Shr:
		c.splitToken(token.GT)
		return true
	case token.UShr:
		c.splitToken(token.Shr)
		return true
	case token.GE:
		c.splitToken(token.Assign)
		return true
	case token.ShrAssign:
		c.splitToken(token.GE)
		return true
	case token.UShrAssign:
		c.splitToken(token.ShrAssign)
		return true
	}
	return false
}

// splitToken replaces the current token with one that has its first
// character (always '>') removed, reassigned to remainder, and advances
// past the consumed '>'. The composite is always a single line, so only
// Column needs to move; there is no byte Offset field to adjust.
func (c *cursor) splitToken(remainder token.Kind) {
	tok := c.tokens[c.pos]
	c.tokens[c.pos] = token.Token{
		Kind:    remainder,
		Literal: tok.Literal[1:],
		Span: token.Span{
			Start: token.Position{
				File:   tok.Span.Start.File,
				Line:   tok.Span.Start.Line,
				Column: tok.Span.Start.Column + 1,
			},
			End: tok.Span.End,
		},
	}
}
