package parser

import (
	"github.com/dhamidi/javaast/ast"
	"github.com/dhamidi/javaast/token"
)

var assignOps = map[token.Kind]bool{
	token.Assign: true, token.PlusAssign: true, token.MinusAssign: true,
	token.StarAssign: true, token.SlashAssign: true, token.PercentAssign: true,
	token.AndAssign: true, token.OrAssign: true, token.XorAssign: true,
	token.ShlAssign: true, token.ShrAssign: true, token.UShrAssign: true,
}

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is right-associative: `a = b = c` parses as `a = (b = c)`.
func (p *Parser) parseAssignment() ast.Expr {
	start := p.cur.peek().Span.Start
	if p.isLambda() {
		return p.parseLambda()
	}
	left := p.parseTernary()
	if op := p.cur.peek().Kind; assignOps[op] {
		p.cur.advance()
		value := p.parseAssignment()
		asg := &ast.Assignment{Target: left, Operator: op, Value: value}
		setSpan(asg, p.span(start))
		return asg
	}
	return left
}

func (p *Parser) parseTernary() ast.Expr {
	start := p.cur.peek().Span.Start
	cond := p.parseLogicalOr()
	if p.cur.check(token.Question) {
		p.cur.advance()
		then := p.parseExpression()
		p.expect(token.Colon)
		var elseExpr ast.Expr
		if p.isLambda() {
			elseExpr = p.parseLambda()
		} else {
			elseExpr = p.parseAssignment()
		}
		t := &ast.TernaryExpression{Condition: cond, Then: then, Else: elseExpr}
		setSpan(t, p.span(start))
		return t
	}
	return cond
}

// binaryLevel is one precedence tier: operators at this level, and the
// parse function for the next tighter-binding tier.
type binaryLevel struct {
	ops  []token.Kind
	next func(*Parser) ast.Expr
}

var binaryLevels []binaryLevel

func init() {
	binaryLevels = []binaryLevel{
		{[]token.Kind{token.LOr}, (*Parser).parseLogicalAnd},
		{[]token.Kind{token.LAnd}, (*Parser).parseBitOr},
		{[]token.Kind{token.Or}, (*Parser).parseBitXor},
		{[]token.Kind{token.Xor}, (*Parser).parseBitAnd},
		{[]token.Kind{token.And}, (*Parser).parseEquality},
		{[]token.Kind{token.EQ, token.NE}, (*Parser).parseRelational},
		{[]token.Kind{token.Shl, token.Shr, token.UShr}, (*Parser).parseAdditive},
		{[]token.Kind{token.Plus, token.Minus}, (*Parser).parseMultiplicative},
		{[]token.Kind{token.Star, token.Slash, token.Percent}, (*Parser).parseUnary},
	}
}

func (p *Parser) parseLogicalOr() ast.Expr   { return p.parseLevel(0) }
func (p *Parser) parseLogicalAnd() ast.Expr  { return p.parseLevel(1) }
func (p *Parser) parseBitOr() ast.Expr       { return p.parseLevel(2) }
func (p *Parser) parseBitXor() ast.Expr      { return p.parseLevel(3) }
func (p *Parser) parseBitAnd() ast.Expr      { return p.parseLevel(4) }
func (p *Parser) parseEquality() ast.Expr    { return p.parseLevel(5) }
func (p *Parser) parseShift() ast.Expr       { return p.parseLevel(6) }
func (p *Parser) parseAdditive() ast.Expr    { return p.parseLevel(7) }
func (p *Parser) parseMultiplicative() ast.Expr { return p.parseLevel(8) }

func (p *Parser) parseLevel(i int) ast.Expr {
	level := binaryLevels[i]
	start := p.cur.peek().Span.Start
	left := level.next(p)
	for {
		matched := false
		for _, op := range level.ops {
			if p.cur.check(op) {
				p.cur.advance()
				right := level.next(p)
				bin := &ast.BinaryOperation{Operator: op, Left: left, Right: right}
				setSpan(bin, p.span(start))
				left = bin
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
	}
}

// parseRelational handles `<`, `<=`, `>`, `>=`, and `instanceof`, which sit
// between equality and shift in Java's precedence table.
func (p *Parser) parseRelational() ast.Expr {
	start := p.cur.peek().Span.Start
	left := p.parseShift()
	for {
		switch {
		case p.cur.check(token.LT) || p.cur.check(token.LE) ||
			p.cur.check(token.GT) || p.cur.check(token.GE):
			op := p.cur.advance().Kind
			right := p.parseShift()
			bin := &ast.BinaryOperation{Operator: op, Left: left, Right: right}
			setSpan(bin, p.span(start))
			left = bin
		case p.cur.check(token.Instanceof):
			p.cur.advance()
			ty := p.parseType()
			bin := &ast.BinaryOperation{Operator: token.Instanceof, Left: left, Right: wrapTypeAsExpr(ty)}
			setSpan(bin, p.span(start))
			left = bin
		default:
			return left
		}
	}
}

// wrapTypeAsExpr lets instanceof's right-hand type ride in BinaryOperation's
// Expr-typed Right field; ClassReference already exists for `T.class` and
// fits this shape without inventing a new node kind.
func wrapTypeAsExpr(ty ast.Type) ast.Expr {
	cr := &ast.ClassReference{Type: ty}
	ast.SetSpan(cr, ty.Span())
	return cr
}

func (p *Parser) parseUnary() ast.Expr {
	start := p.cur.peek().Span.Start
	switch p.cur.peek().Kind {
	case token.Inc, token.Dec:
		op := p.cur.advance().Kind
		operand := p.parseUnary()
		u := &ast.IncDecExpression{Operator: op, Operand: operand, Prefix: true}
		setSpan(u, p.span(start))
		return u
	case token.Plus, token.Minus, token.Not, token.Tilde:
		op := p.cur.advance().Kind
		operand := p.parseUnary()
		u := &ast.UnaryOperation{Operator: op, Operand: operand}
		setSpan(u, p.span(start))
		return u
	case token.LParen:
		if p.isCast() {
			return p.parseCast()
		}
	}
	return p.parsePostfix()
}

// isCast speculatively parses `(Type)` (including intersection types
// `(A & B)`) and reports whether it is immediately followed by a token that
// can only start an operand, disambiguating a cast from a parenthesized
// expression without backtracking the caller.
func (p *Parser) isCast() (result bool) {
	if !p.cur.check(token.LParen) {
		return false
	}
	save := p.cur.mark()
	defer p.cur.reset(save)
	defer recoverSpeculation(&result)
	p.cur.advance()

	for p.cur.check(token.At) {
		p.parseAnnotation()
	}

	isType := false
	switch {
	case token.IsBasicTypeKeyword(p.cur.peek().Kind):
		isType = true
		p.cur.advance()
	case p.cur.check(token.Ident):
		p.cur.advance()
		for p.cur.check(token.Dot) && p.cur.peekN(1).Kind == token.Ident {
			p.cur.advance()
			p.cur.advance()
		}
		if p.cur.check(token.LT) {
			p.skipTypeArguments()
		}
		for p.cur.check(token.LBracket) && p.cur.peekN(1).Kind == token.RBracket {
			p.cur.advance()
			p.cur.advance()
		}
		for p.cur.check(token.And) {
			p.cur.advance()
			if !p.cur.check(token.Ident) {
				break
			}
			p.cur.advance()
			if p.cur.check(token.LT) {
				p.skipTypeArguments()
			}
		}
		isType = p.cur.check(token.RParen)
	}
	if !isType || !p.cur.check(token.RParen) {
		return false
	}
	p.cur.advance()
	switch p.cur.peek().Kind {
	case token.Ident, token.This, token.Super, token.New, token.LParen,
		token.Not, token.Tilde, token.Inc, token.Dec,
		token.LiteralDecimalInteger, token.LiteralOctalInteger, token.LiteralBinaryInteger,
		token.LiteralHexInteger, token.LiteralDecimalFloat, token.LiteralHexFloat,
		token.LiteralChar, token.LiteralString, token.LiteralBoolean, token.LiteralNull:
		return true
	}
	return token.IsBasicTypeKeyword(p.cur.peek().Kind)
}

func (p *Parser) parseCast() ast.Expr {
	start := p.cur.peek().Span.Start
	p.expect(token.LParen)
	types := []ast.Type{p.parseType()}
	for p.cur.check(token.And) {
		p.cur.advance()
		types = append(types, p.parseType())
	}
	p.expect(token.RParen)
	var operand ast.Expr
	if p.isLambda() {
		operand = p.parseLambda()
	} else {
		operand = p.parseUnary()
	}
	c := &ast.Cast{Types: types, Expr: operand}
	setSpan(c, p.span(start))
	return c
}

// isLambda speculatively recognizes a lambda's parameter list: a bare
// identifier directly followed by `->`, or a balanced `(...)` directly
// followed by `->`.
func (p *Parser) isLambda() bool {
	if p.cur.check(token.Ident) && p.cur.peekN(1).Kind == token.Arrow {
		return true
	}
	if !p.cur.check(token.LParen) {
		return false
	}
	save := p.cur.mark()
	defer p.cur.reset(save)
	p.cur.advance()
	depth := 1
	for depth > 0 {
		switch p.cur.peek().Kind {
		case token.LParen:
			depth++
			p.cur.advance()
		case token.RParen:
			depth--
			p.cur.advance()
		case token.EOF:
			return false
		default:
			p.cur.advance()
		}
	}
	return p.cur.check(token.Arrow)
}

func (p *Parser) parseLambda() ast.Expr {
	start := p.cur.peek().Span.Start
	var params []*ast.FormalParameter
	if p.cur.check(token.Ident) {
		pstart := p.cur.peek().Span.Start
		name, _ := p.parseIdent()
		fp := &ast.FormalParameter{Name: name}
		setSpan(fp, p.span(pstart))
		params = append(params, fp)
	} else {
		p.expect(token.LParen)
		if !p.cur.check(token.RParen) {
			for {
				params = append(params, p.parseLambdaParameter())
				if !p.cur.check(token.Comma) {
					break
				}
				p.cur.advance()
			}
		}
		p.expect(token.RParen)
	}
	p.expect(token.Arrow)

	var body ast.Node
	if p.cur.check(token.LBrace) {
		body = p.parseBlock()
	} else {
		body = p.parseExpression()
	}
	l := &ast.LambdaExpression{Parameters: params, Body: body}
	setSpan(l, p.span(start))
	return l
}

// parseLambdaParameter accepts both untyped (`x`) and typed (`final Type x`)
// lambda parameters; Type is left nil for the untyped form.
func (p *Parser) parseLambdaParameter() *ast.FormalParameter {
	start := p.cur.peek().Span.Start
	mods, anns := p.parseModifiersAndAnnotations()
	fp := &ast.FormalParameter{Modifiers: mods, Annotations: anns}

	if p.cur.check(token.Ident) && (p.cur.peekN(1).Kind == token.Comma || p.cur.peekN(1).Kind == token.RParen) {
		fp.Name, _ = p.parseIdent()
		setSpan(fp, p.span(start))
		return fp
	}
	fp.Type = p.parseType()
	if p.cur.check(token.Ellipsis) {
		p.cur.advance()
		fp.Varargs = true
	}
	fp.Name, _ = p.parseIdent()
	setSpan(fp, p.span(start))
	return fp
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	return p.parsePostfixSuffix(expr)
}

func (p *Parser) parsePostfixSuffix(expr ast.Expr) ast.Expr {
	for {
		start := expr.Span().Start
		switch p.cur.peek().Kind {
		case token.Inc, token.Dec:
			op := p.cur.advance().Kind
			e := &ast.IncDecExpression{Operator: op, Operand: expr, Prefix: false}
			setSpan(e, p.span(start))
			expr = e
		case token.Dot:
			p.cur.advance()
			expr = p.parseDottedSuffix(expr, start)
		case token.LBracket:
			p.cur.advance()
			idx := p.parseExpression()
			p.expect(token.RBracket)
			sel := &ast.ArraySelector{Array: expr, Index: idx}
			setSpan(sel, p.span(start))
			expr = sel
		case token.ColonColon:
			p.cur.advance()
			expr = p.parseMethodRef(expr, start)
		default:
			return expr
		}
	}
}

func (p *Parser) parseDottedSuffix(qualifier ast.Expr, start token.Position) ast.Expr {
	switch {
	case p.cur.check(token.New):
		return p.parseInnerNew(qualifier, start)
	case p.cur.check(token.Class):
		p.cur.advance()
		n := &ast.MemberReference{Qualifier: qualifier, Name: "class"}
		setSpan(n, p.span(start))
		return n
	case p.cur.check(token.This):
		p.cur.advance()
		th := &ast.This{Qualifier: qualifier}
		setSpan(th, p.span(start))
		return th
	case p.cur.check(token.Super):
		p.cur.advance()
		return p.parseQualifiedSuper(qualifier, start)
	case p.cur.check(token.LT):
		typeArgs := p.parseTypeArguments()
		name, _ := p.parseIdent()
		if p.cur.check(token.LParen) {
			return p.parseMethodCall(qualifier, typeArgs, name, start)
		}
		mr := &ast.MemberReference{Qualifier: qualifier, Name: name}
		setSpan(mr, p.span(start))
		return mr
	default:
		name, _ := p.parseIdent()
		if p.cur.check(token.LParen) {
			return p.parseMethodCall(qualifier, nil, name, start)
		}
		mr := &ast.MemberReference{Qualifier: qualifier, Name: name}
		setSpan(mr, p.span(start))
		return mr
	}
}

// parseQualifiedSuper handles `Qualifier.super.method(args)` and
// `Qualifier.super(args)`, the qualified forms of a super invocation used
// from a nested class to reach an enclosing class's supertype member.
func (p *Parser) parseQualifiedSuper(qualifier ast.Expr, start token.Position) ast.Expr {
	if p.cur.check(token.LParen) {
		eci := &ast.ExplicitConstructorInvocation{Qualifier: qualifier, IsSuper: true}
		eci.Arguments = p.parseArguments()
		setSpan(eci, p.span(start))
		return eci
	}
	p.expect(token.Dot)
	name, _ := p.parseIdent()
	var typeArgs []*ast.TypeArgument
	if p.cur.check(token.LT) {
		typeArgs = p.parseTypeArguments()
	}
	args := p.parseArguments()
	smi := &ast.SuperMethodInvocation{TypeArguments: typeArgs, Name: name, Arguments: args}
	setSpan(smi, p.span(start))
	return smi
}

func (p *Parser) parseMethodCall(qualifier ast.Expr, typeArgs []*ast.TypeArgument, name string, start token.Position) ast.Expr {
	args := p.parseArguments()
	mi := &ast.MethodInvocation{Qualifier: qualifier, TypeArguments: typeArgs, Name: name, Arguments: args}
	setSpan(mi, p.span(start))
	return mi
}

func (p *Parser) parseArguments() []ast.Expr {
	p.expect(token.LParen)
	var args []ast.Expr
	if !p.cur.check(token.RParen) {
		for {
			args = append(args, p.parseExpression())
			if !p.cur.check(token.Comma) {
				break
			}
			p.cur.advance()
		}
	}
	p.expect(token.RParen)
	return args
}

func (p *Parser) parseMethodRef(qualifier ast.Expr, start token.Position) ast.Expr {
	var typeArgs []*ast.TypeArgument
	if p.cur.check(token.LT) {
		typeArgs = p.parseTypeArguments()
	}
	name := "new"
	if p.cur.check(token.New) {
		p.cur.advance()
	} else {
		name, _ = p.parseIdent()
	}
	mr := &ast.MethodReference{Qualifier: qualifier, TypeArguments: typeArgs, Name: name}
	setSpan(mr, p.span(start))
	return mr
}

func (p *Parser) parsePrimary() ast.Expr {
	start := p.cur.peek().Span.Start
	switch p.cur.peek().Kind {
	case token.LiteralDecimalInteger, token.LiteralOctalInteger, token.LiteralBinaryInteger,
		token.LiteralHexInteger, token.LiteralDecimalFloat, token.LiteralHexFloat,
		token.LiteralChar, token.LiteralString, token.LiteralBoolean, token.LiteralNull:
		tok := p.cur.advance()
		lit := &ast.Literal{Kind: tok.Kind, Value: tok.Literal}
		setSpan(lit, p.span(start))
		return lit

	case token.This:
		p.cur.advance()
		th := &ast.This{}
		setSpan(th, p.span(start))
		return th

	case token.Super:
		p.cur.advance()
		if p.cur.check(token.Dot) {
			p.cur.advance()
			name, _ := p.parseIdent()
			var typeArgs []*ast.TypeArgument
			if p.cur.check(token.LT) {
				typeArgs = p.parseTypeArguments()
			}
			if p.cur.check(token.LParen) {
				args := p.parseArguments()
				smi := &ast.SuperMethodInvocation{TypeArguments: typeArgs, Name: name, Arguments: args}
				setSpan(smi, p.span(start))
				return smi
			}
			mr := &ast.MemberReference{Name: name}
			setSpan(mr, p.span(start))
			return mr
		}
		if p.cur.check(token.LParen) {
			eci := &ast.ExplicitConstructorInvocation{IsSuper: true, Arguments: p.parseArguments()}
			setSpan(eci, p.span(start))
			return eci
		}
		mr := &ast.MemberReference{Name: "super"}
		setSpan(mr, p.span(start))
		return mr

	case token.New:
		return p.parseNew()

	case token.LParen:
		return p.parseParenExpr()

	case token.Ident:
		if p.cur.check(token.Ident) && p.cur.peekN(1).Kind == token.LParen {
			name, _ := p.parseIdent()
			args := p.parseArguments()
			mi := &ast.MethodInvocation{Name: name, Arguments: args}
			setSpan(mi, p.span(start))
			return mi
		}
		name, _ := p.parseIdent()
		n := &ast.Name{Parts: []string{name}}
		setSpan(n, p.span(start))
		return n

	case token.Void:
		p.cur.advance()
		p.expect(token.Dot)
		p.expect(token.Class)
		v := &ast.VoidClassReference{}
		setSpan(v, p.span(start))
		return v

	default:
		if token.IsBasicTypeKeyword(p.cur.peek().Kind) {
			ty := p.parseType()
			p.expect(token.Dot)
			p.expect(token.Class)
			cr := &ast.ClassReference{Type: ty}
			setSpan(cr, p.span(start))
			return cr
		}
	}
	p.fail(p.cur.peek(), "expression", "expected an expression")
	return nil
}

func (p *Parser) parseParenExpr() ast.Expr {
	start := p.cur.peek().Span.Start
	p.expect(token.LParen)
	expr := p.parseExpression()
	p.expect(token.RParen)
	// Java does not have a distinct "parenthesized expression" node; the
	// parentheses only disambiguate grammar and leave no trace in the tree.
	ast.SetSpan(expr, p.span(start))
	return expr
}

func (p *Parser) parseNew() ast.Expr {
	start := p.cur.peek().Span.Start
	p.expect(token.New)
	var typeArgs []*ast.TypeArgument
	if p.cur.check(token.LT) {
		typeArgs = p.parseTypeArguments()
	}
	anns := p.parseAnnotations()

	if token.IsBasicTypeKeyword(p.cur.peek().Kind) {
		tok := p.cur.advance()
		baseType := ast.Type(&ast.BasicType{Annotations: anns, Name: tok.Literal})
		setSpan(baseType, p.span(start))
		if !p.cur.check(token.LBracket) {
			p.fail(p.cur.peek(), "[", "primitive type in a 'new' expression must be an array creation")
		}
		return p.parseArrayCreation(start, baseType)
	}

	baseType := p.parseReferenceType(p.cur.peek().Span.Start, anns)

	if p.cur.check(token.LBracket) {
		return p.parseArrayCreation(start, baseType)
	}

	ic := &ast.InstanceCreation{TypeArguments: typeArgs, Type: baseType}
	ic.Arguments = p.parseArguments()
	if p.cur.check(token.LBrace) {
		ic.Body = p.parseClassBody()
	}
	setSpan(ic, p.span(start))
	return ic
}

func (p *Parser) parseInnerNew(qualifier ast.Expr, start token.Position) ast.Expr {
	p.expect(token.New)
	var typeArgs []*ast.TypeArgument
	if p.cur.check(token.LT) {
		typeArgs = p.parseTypeArguments()
	}
	baseType := p.parseReferenceType(p.cur.peek().Span.Start, nil)
	icc := &ast.InnerClassCreation{Qualifier: qualifier, TypeArguments: typeArgs, Type: baseType}
	icc.Arguments = p.parseArguments()
	if p.cur.check(token.LBrace) {
		icc.Body = p.parseClassBody()
	}
	setSpan(icc, p.span(start))
	return icc
}

func (p *Parser) parseArrayCreation(start token.Position, baseType ast.Type) ast.Expr {
	var dims []ast.Expr
	extra := 0
	for p.cur.check(token.LBracket) {
		p.cur.advance()
		if p.cur.check(token.RBracket) {
			p.cur.advance()
			extra++
			continue
		}
		dims = append(dims, p.parseExpression())
		p.expect(token.RBracket)
	}
	ac := &ast.ArrayCreation{Type: baseType, Dimensions: dims, ExtraDimensions: extra}
	if p.cur.check(token.LBrace) {
		ac.Initializer = p.parseArrayInitializer()
	}
	setSpan(ac, p.span(start))
	return ac
}

func (p *Parser) parseArrayInitializer() *ast.ArrayInitializer {
	start := p.cur.peek().Span.Start
	p.expect(token.LBrace)
	ai := &ast.ArrayInitializer{}
	for !p.cur.check(token.RBrace) {
		if p.cur.check(token.LBrace) {
			ai.Values = append(ai.Values, p.parseArrayInitializer())
		} else {
			ai.Values = append(ai.Values, p.parseExpression())
		}
		if !p.cur.check(token.Comma) {
			break
		}
		p.cur.advance()
	}
	p.expect(token.RBrace)
	setSpan(ai, p.span(start))
	return ai
}
