package parser

import (
	"github.com/dhamidi/javaast/ast"
	"github.com/dhamidi/javaast/token"
)

func (p *Parser) parseBlock() *ast.Block {
	start := p.cur.peek().Span.Start
	p.expect(token.LBrace)
	b := &ast.Block{}
	for !p.cur.check(token.RBrace) && !p.cur.check(token.EOF) {
		b.Statements = append(b.Statements, p.parseStatement())
	}
	p.expect(token.RBrace)
	setSpan(b, p.span(start))
	return b
}

func (p *Parser) parseStatement() ast.Statement {
	start := p.cur.peek().Span.Start
	switch p.cur.peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.cur.advance()
		e := &ast.EmptyStatement{}
		setSpan(e, p.span(start))
		return e
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.Do:
		return p.parseDoWhile()
	case token.For:
		return p.parseFor()
	case token.Switch:
		return p.parseSwitch()
	case token.Break:
		p.cur.advance()
		var label string
		if p.cur.check(token.Ident) {
			label, _ = p.parseIdent()
		}
		p.expect(token.Semicolon)
		s := &ast.BreakStatement{Label: label}
		setSpan(s, p.span(start))
		return s
	case token.Continue:
		p.cur.advance()
		var label string
		if p.cur.check(token.Ident) {
			label, _ = p.parseIdent()
		}
		p.expect(token.Semicolon)
		s := &ast.ContinueStatement{Label: label}
		setSpan(s, p.span(start))
		return s
	case token.Return:
		p.cur.advance()
		var value ast.Expr
		if !p.cur.check(token.Semicolon) {
			value = p.parseExpression()
		}
		p.expect(token.Semicolon)
		s := &ast.ReturnStatement{Value: value}
		setSpan(s, p.span(start))
		return s
	case token.Throw:
		p.cur.advance()
		value := p.parseExpression()
		p.expect(token.Semicolon)
		s := &ast.ThrowStatement{Value: value}
		setSpan(s, p.span(start))
		return s
	case token.Try:
		return p.parseTry()
	case token.Synchronized:
		return p.parseSynchronized()
	case token.Assert:
		p.cur.advance()
		cond := p.parseExpression()
		var msg ast.Expr
		if p.cur.check(token.Colon) {
			p.cur.advance()
			msg = p.parseExpression()
		}
		p.expect(token.Semicolon)
		s := &ast.AssertStatement{Condition: cond, Message: msg}
		setSpan(s, p.span(start))
		return s
	}

	if p.cur.check(token.Ident) && p.cur.peekN(1).Kind == token.Colon {
		label, _ := p.parseIdent()
		p.cur.advance() // ':'
		stmt := p.parseStatement()
		s := &ast.LabeledStatement{Label: label, Statement: stmt}
		setSpan(s, p.span(start))
		return s
	}

	if p.isLocalVarDecl() {
		lv := p.parseLocalVariableDeclaration()
		p.expect(token.Semicolon)
		return lv
	}

	expr := p.parseExpression()
	p.expect(token.Semicolon)
	s := &ast.ExpressionStatement{Expression: expr}
	setSpan(s, p.span(start))
	return s
}

// isLocalVarDecl treats a statement that starts with a primitive type
// keyword, `final`, or `@` as a declaration outright; for one that starts
// with an identifier it speculatively parses a type and checks whether an
// identifier follows: `List<T> xs` is a declaration, while `foo.bar()` and
// `x = 1` are expression statements that happen to start with something
// type-shaped.
func (p *Parser) isLocalVarDecl() (result bool) {
	if token.IsBasicTypeKeyword(p.cur.peek().Kind) {
		return true
	}
	mods := p.cur.peek().Kind
	if mods == token.Final || mods == token.At {
		return true
	}
	if !p.cur.check(token.Ident) {
		return false
	}
	save := p.cur.mark()
	defer p.cur.reset(save)
	defer recoverSpeculation(&result)
	p.parseType()
	return p.cur.check(token.Ident)
}

func (p *Parser) parseModifiersAndAnnotations() (ast.Modifiers, []*ast.Annotation) {
	var mods ast.Modifiers
	var anns []*ast.Annotation
	for {
		if p.cur.check(token.At) && p.cur.peekN(1).Kind != token.Interface {
			anns = append(anns, p.parseAnnotation())
			continue
		}
		if bit, ok := ast.ModifierFromKeyword(p.cur.peek().Kind); ok {
			mods = mods.With(bit)
			p.cur.advance()
			continue
		}
		break
	}
	return mods, anns
}

func (p *Parser) parseLocalVariableDeclaration() *ast.LocalVariableDeclaration {
	start := p.cur.peek().Span.Start
	mods, anns := p.parseModifiersAndAnnotations()
	ty := p.parseType()
	lv := &ast.LocalVariableDeclaration{Modifiers: mods, Annotations: anns, Type: ty}
	lv.Declarators = p.parseVariableDeclarators()
	setSpan(lv, p.span(start))
	return lv
}

func (p *Parser) parseVariableDeclarators() []*ast.VariableDeclarator {
	var decls []*ast.VariableDeclarator
	for {
		decls = append(decls, p.parseVariableDeclarator())
		if !p.cur.check(token.Comma) {
			break
		}
		p.cur.advance()
	}
	return decls
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	start := p.cur.peek().Span.Start
	name, _ := p.parseIdent()
	vd := &ast.VariableDeclarator{Name: name}
	for p.cur.check(token.LBracket) {
		p.cur.advance()
		p.expect(token.RBracket)
		vd.Dimensions++
	}
	if p.cur.check(token.Assign) {
		p.cur.advance()
		if p.cur.check(token.LBrace) {
			vd.Initializer = p.parseArrayInitializer()
		} else {
			vd.Initializer = p.parseExpression()
		}
	}
	setSpan(vd, p.span(start))
	return vd
}

func (p *Parser) parseIf() ast.Statement {
	start := p.cur.peek().Span.Start
	p.expect(token.If)
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	then := p.parseStatement()
	var elseStmt ast.Statement
	if p.cur.check(token.Else) {
		p.cur.advance()
		elseStmt = p.parseStatement()
	}
	s := &ast.IfStatement{Condition: cond, Then: then, Else: elseStmt}
	setSpan(s, p.span(start))
	return s
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.cur.peek().Span.Start
	p.expect(token.While)
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	body := p.parseStatement()
	s := &ast.WhileStatement{Condition: cond, Body: body}
	setSpan(s, p.span(start))
	return s
}

func (p *Parser) parseDoWhile() ast.Statement {
	start := p.cur.peek().Span.Start
	p.expect(token.Do)
	body := p.parseStatement()
	p.expect(token.While)
	p.expect(token.LParen)
	cond := p.parseExpression()
	p.expect(token.RParen)
	p.expect(token.Semicolon)
	s := &ast.DoWhileStatement{Body: body, Condition: cond}
	setSpan(s, p.span(start))
	return s
}

// parseFor disambiguates classic `for (init; cond; update)` from
// `for (Type name : iterable)` by speculatively parsing the header and
// checking for a bare ':' before any ';'.
func (p *Parser) parseFor() ast.Statement {
	start := p.cur.peek().Span.Start
	p.expect(token.For)
	p.expect(token.LParen)

	if p.isEnhancedFor() {
		mods, anns := p.parseModifiersAndAnnotations()
		ty := p.parseType()
		name, _ := p.parseIdent()
		p.expect(token.Colon)
		iterable := p.parseExpression()
		p.expect(token.RParen)
		body := p.parseStatement()
		s := &ast.ForEachStatement{
			Modifiers: mods, Annotations: anns, Type: ty, Name: name,
			Iterable: iterable, Body: body,
		}
		setSpan(s, p.span(start))
		return s
	}

	var init []ast.Statement
	if !p.cur.check(token.Semicolon) {
		if p.isLocalVarDecl() {
			init = []ast.Statement{p.parseLocalVariableDeclaration()}
		} else {
			for {
				exprStart := p.cur.peek().Span.Start
				e := p.parseExpression()
				s := &ast.ExpressionStatement{Expression: e}
				setSpan(s, p.span(exprStart))
				init = append(init, s)
				if !p.cur.check(token.Comma) {
					break
				}
				p.cur.advance()
			}
		}
	}
	p.expect(token.Semicolon)

	var cond ast.Expr
	if !p.cur.check(token.Semicolon) {
		cond = p.parseExpression()
	}
	p.expect(token.Semicolon)

	var update []ast.Expr
	if !p.cur.check(token.RParen) {
		for {
			update = append(update, p.parseExpression())
			if !p.cur.check(token.Comma) {
				break
			}
			p.cur.advance()
		}
	}
	p.expect(token.RParen)
	body := p.parseStatement()
	s := &ast.ForStatement{Init: init, Condition: cond, Update: update, Body: body}
	setSpan(s, p.span(start))
	return s
}

// isEnhancedFor speculatively parses modifiers/annotations and a type and
// name, then checks for a ':' to distinguish for-each from a classic for.
func (p *Parser) isEnhancedFor() (result bool) {
	save := p.cur.mark()
	defer p.cur.reset(save)
	defer recoverSpeculation(&result)

	p.parseModifiersAndAnnotations()
	if !token.IsBasicTypeKeyword(p.cur.peek().Kind) && !p.cur.check(token.Ident) {
		return false
	}
	p.parseType()
	if !p.cur.check(token.Ident) {
		return false
	}
	p.cur.advance()
	return p.cur.check(token.Colon)
}

func (p *Parser) parseSwitch() ast.Statement {
	start := p.cur.peek().Span.Start
	p.expect(token.Switch)
	p.expect(token.LParen)
	selector := p.parseExpression()
	p.expect(token.RParen)
	p.expect(token.LBrace)
	s := &ast.SwitchStatement{Selector: selector}
	for !p.cur.check(token.RBrace) && !p.cur.check(token.EOF) {
		s.Cases = append(s.Cases, p.parseSwitchCase())
	}
	p.expect(token.RBrace)
	setSpan(s, p.span(start))
	return s
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	start := p.cur.peek().Span.Start
	c := &ast.SwitchCase{}
	if p.cur.check(token.Default) {
		p.cur.advance()
		p.expect(token.Colon)
	} else {
		for {
			p.expect(token.Case)
			c.Labels = append(c.Labels, p.parseExpression())
			p.expect(token.Colon)
			if !p.cur.check(token.Case) {
				break
			}
		}
	}
	for !p.cur.match(token.Case, token.Default, token.RBrace) && !p.cur.check(token.EOF) {
		c.Statements = append(c.Statements, p.parseStatement())
	}
	setSpan(c, p.span(start))
	return c
}

func (p *Parser) parseTry() ast.Statement {
	start := p.cur.peek().Span.Start
	p.expect(token.Try)
	s := &ast.TryStatement{}
	if p.cur.check(token.LParen) {
		p.cur.advance()
		for {
			s.Resources = append(s.Resources, p.parseResource())
			if !p.cur.check(token.Semicolon) {
				break
			}
			p.cur.advance()
			if p.cur.check(token.RParen) {
				break
			}
		}
		p.expect(token.RParen)
	}
	s.Body = p.parseBlock()
	for p.cur.check(token.Catch) {
		s.Catches = append(s.Catches, p.parseCatchClause())
	}
	if p.cur.check(token.Finally) {
		p.cur.advance()
		s.Finally = p.parseBlock()
	}
	setSpan(s, p.span(start))
	return s
}

func (p *Parser) parseResource() *ast.Resource {
	start := p.cur.peek().Span.Start
	mods, anns := p.parseModifiersAndAnnotations()
	r := &ast.Resource{Modifiers: mods, Annotations: anns}

	if p.isTypedResource() {
		ty := p.parseType()
		r.Type = ty
		r.Name, _ = p.parseIdent()
		p.expect(token.Assign)
		r.Initializer = p.parseExpression()
	} else {
		r.Expr = p.parseExpression()
	}
	setSpan(r, p.span(start))
	return r
}

// isTypedResource speculatively parses a type and checks whether an
// identifier follows, the same disambiguation isLocalVarDecl performs for
// local variable declarations; a resource that is a bare effectively-final
// variable reference (Java 9) is not type-shaped and must fall back to
// parsing an expression instead.
func (p *Parser) isTypedResource() (result bool) {
	save := p.cur.mark()
	defer p.cur.reset(save)
	defer recoverSpeculation(&result)
	p.parseType()
	return p.cur.check(token.Ident)
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	start := p.cur.peek().Span.Start
	p.expect(token.Catch)
	p.expect(token.LParen)
	mods, _ := p.parseModifiersAndAnnotations()
	c := &ast.CatchClause{Modifiers: mods}
	c.Types = append(c.Types, p.parseReferenceTypeOnly())
	for p.cur.check(token.Or) {
		p.cur.advance()
		c.Types = append(c.Types, p.parseReferenceTypeOnly())
	}
	c.Name, _ = p.parseIdent()
	p.expect(token.RParen)
	c.Body = p.parseBlock()
	setSpan(c, p.span(start))
	return c
}

func (p *Parser) parseSynchronized() ast.Statement {
	start := p.cur.peek().Span.Start
	p.expect(token.Synchronized)
	p.expect(token.LParen)
	lock := p.parseExpression()
	p.expect(token.RParen)
	body := p.parseBlock()
	s := &ast.SynchronizedStatement{Lock: lock, Body: body}
	setSpan(s, p.span(start))
	return s
}
