package parser

import (
	"github.com/dhamidi/javaast/ast"
	"github.com/dhamidi/javaast/token"
)

func (p *Parser) parseIdent() (string, token.Span) {
	tok := p.expect(token.Ident)
	return tok.Literal, tok.Span
}

// parseType parses a single type: a primitive/void keyword, or a
// (possibly generic, possibly dotted, possibly array) reference type.
func (p *Parser) parseType() ast.Type {
	start := p.cur.peek().Span.Start
	anns := p.parseAnnotations()

	var base ast.Type
	if token.IsBasicTypeKeyword(p.cur.peek().Kind) {
		tok := p.cur.advance()
		base = &ast.BasicType{Annotations: anns, Name: tok.Literal}
		setSpan(base, p.span(start))
	} else if p.cur.check(token.Ident) {
		base = p.parseReferenceType(start, anns)
	} else {
		p.fail(p.cur.peek(), "type", "expected a type")
	}

	for p.cur.check(token.At) || p.cur.check(token.LBracket) {
		mark := p.cur.mark()
		dimAnns := p.parseAnnotations()
		if !p.cur.check(token.LBracket) {
			p.cur.reset(mark)
			break
		}
		p.cur.advance()
		p.expect(token.RBracket)

		if arr, ok := base.(*ast.ArrayType); ok {
			arr.Dimensions++
			arr.DimAnnotations = append(arr.DimAnnotations, dimAnns)
			setSpan(arr, p.span(start))
		} else {
			arr := &ast.ArrayType{Component: base, Dimensions: 1, DimAnnotations: [][]*ast.Annotation{dimAnns}}
			setSpan(arr, p.span(start))
			base = arr
		}
	}
	return base
}

// parseReferenceType parses Outer<Args>.Inner<Args>... building the
// right-leaning Sub chain documented on ast.ReferenceType.
func (p *Parser) parseReferenceType(start token.Position, anns []*ast.Annotation) *ast.ReferenceType {
	name, _ := p.parseIdent()
	rt := &ast.ReferenceType{Annotations: anns, Name: name}
	if p.cur.check(token.LT) {
		rt.TypeArguments = p.parseTypeArguments()
	}
	setSpan(rt, p.span(start))

	if p.cur.check(token.Dot) && p.cur.peekN(1).Kind == token.Ident {
		p.cur.advance()
		subStart := p.cur.peek().Span.Start
		subAnns := p.parseAnnotations()
		rt.Sub = p.parseReferenceType(subStart, subAnns)
		setSpan(rt, p.span(start))
	}
	return rt
}

// parseTypeArguments parses `<T1, T2, ...>`, using expectGT to correctly
// close the list even when the lexer merged the closing `>` into a `>>`,
// `>>>`, or compound-assignment composite with an enclosing list's own
// closing bracket.
func (p *Parser) parseTypeArguments() []*ast.TypeArgument {
	p.expect(token.LT)
	var args []*ast.TypeArgument
	if p.cur.check(token.GT) || p.cur.match(token.Shr, token.UShr, token.GE, token.ShrAssign, token.UShrAssign) {
		p.cur.expectGT()
		return args
	}
	for {
		args = append(args, p.parseTypeArgument())
		if !p.cur.check(token.Comma) {
			break
		}
		p.cur.advance()
	}
	if !p.cur.expectGT() {
		p.fail(p.cur.peek(), ">", "unterminated type argument list")
	}
	return args
}

func (p *Parser) parseTypeArgument() *ast.TypeArgument {
	start := p.cur.peek().Span.Start
	if p.cur.check(token.Question) {
		p.cur.advance()
		ta := &ast.TypeArgument{Wildcard: true}
		if p.cur.check(token.Extends) {
			p.cur.advance()
			ta.ExtendsBound = p.parseType()
		} else if p.cur.check(token.Super) {
			p.cur.advance()
			ta.SuperBound = p.parseType()
		}
		setSpan(ta, p.span(start))
		return ta
	}
	ty := p.parseType()
	ta := &ast.TypeArgument{ConcreteType: ty}
	setSpan(ta, p.span(start))
	return ta
}

// skipTypeArguments consumes a `<...>` list without building any nodes, for
// the isCast speculative lookahead path where only shape matters.
func (p *Parser) skipTypeArguments() {
	p.expect(token.LT)
	depth := 1
	for depth > 0 {
		switch p.cur.peek().Kind {
		case token.LT:
			p.cur.advance()
			depth++
		case token.GT:
			p.cur.advance()
			depth--
		case token.Shr:
			p.cur.advance()
			depth -= 2
		case token.UShr:
			p.cur.advance()
			depth -= 3
		case token.GE, token.ShrAssign, token.UShrAssign:
			p.cur.advance()
			depth = 0
		case token.EOF:
			return
		default:
			p.cur.advance()
		}
	}
}

func (p *Parser) parseTypeParameters() []*ast.TypeParameter {
	p.expect(token.LT)
	var params []*ast.TypeParameter
	for {
		params = append(params, p.parseTypeParameter())
		if !p.cur.check(token.Comma) {
			break
		}
		p.cur.advance()
	}
	p.cur.expectGT()
	return params
}

func (p *Parser) parseTypeParameter() *ast.TypeParameter {
	start := p.cur.peek().Span.Start
	anns := p.parseAnnotations()
	name, _ := p.parseIdent()
	tp := &ast.TypeParameter{Annotations: anns, Name: name}
	if p.cur.check(token.Extends) {
		p.cur.advance()
		tp.Bounds = append(tp.Bounds, p.parseReferenceTypeOnly())
		for p.cur.check(token.And) {
			p.cur.advance()
			tp.Bounds = append(tp.Bounds, p.parseReferenceTypeOnly())
		}
	}
	setSpan(tp, p.span(start))
	return tp
}

func (p *Parser) parseReferenceTypeOnly() *ast.ReferenceType {
	start := p.cur.peek().Span.Start
	anns := p.parseAnnotations()
	return p.parseReferenceType(start, anns)
}

// parseAnnotations parses zero or more use-site annotations in sequence.
func (p *Parser) parseAnnotations() []*ast.Annotation {
	var anns []*ast.Annotation
	for p.cur.check(token.At) {
		anns = append(anns, p.parseAnnotation())
	}
	return anns
}

func (p *Parser) parseAnnotation() *ast.Annotation {
	start := p.cur.peek().Span.Start
	p.expect(token.At)
	name, _ := p.parseIdent()
	for p.cur.check(token.Dot) {
		p.cur.advance()
		n2, _ := p.parseIdent()
		name = name + "." + n2
	}
	a := &ast.Annotation{Name: name}
	if p.cur.check(token.LParen) {
		p.cur.advance()
		if !p.cur.check(token.RParen) {
			p.parseAnnotationBody(a)
		}
		p.expect(token.RParen)
	}
	setSpan(a, p.span(start))
	return a
}

// parseAnnotationBody disambiguates @Name(expr) from @Name(k=v, ...) by
// checking whether the first element is `ident =` (but not `==`).
func (p *Parser) parseAnnotationBody(a *ast.Annotation) {
	if p.cur.check(token.Ident) && p.cur.peekN(1).Kind == token.Assign {
		for {
			name, start := p.parseIdent()
			p.expect(token.Assign)
			value := p.parseElementValue()
			ev := &ast.ElementValuePair{Name: name, Value: value}
			setSpan(ev, p.span(start.Start))
			a.Pairs = append(a.Pairs, ev)
			if !p.cur.check(token.Comma) {
				break
			}
			p.cur.advance()
		}
		return
	}
	a.Value = p.parseElementValue()
}

func (p *Parser) parseElementValue() ast.Node {
	start := p.cur.peek().Span.Start
	if p.cur.check(token.At) {
		return p.parseAnnotation()
	}
	if p.cur.check(token.LBrace) {
		p.cur.advance()
		ev := &ast.ElementArrayValue{}
		if !p.cur.check(token.RBrace) {
			for {
				ev.Values = append(ev.Values, p.parseElementValue())
				if !p.cur.check(token.Comma) {
					break
				}
				p.cur.advance()
				if p.cur.check(token.RBrace) {
					break
				}
			}
		}
		p.expect(token.RBrace)
		setSpan(ev, p.span(start))
		return ev
	}
	return p.parseTernary()
}

// setSpan assigns a node's Span via its embedded ast.base through the
// SetSpan hook so every parse* helper can finish a node with one line.
func setSpan(n ast.Node, span token.Span) {
	ast.SetSpan(n, span)
}
