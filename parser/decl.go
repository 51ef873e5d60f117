package parser

import (
	"github.com/dhamidi/javaast/ast"
	"github.com/dhamidi/javaast/javadoc"
	"github.com/dhamidi/javaast/token"
)

// takeJavadoc returns the doc comment immediately preceding the upcoming
// token, parsed into a *javadoc.DocComment, if javadoc attachment is enabled
// and one was captured by the lexer during tokenize. Returns nil otherwise.
func (p *Parser) takeJavadoc() *javadoc.DocComment {
	if !p.cfg.attachJavadoc {
		return nil
	}
	doc, ok := p.javadocAt[p.cur.pos]
	if !ok {
		return nil
	}
	delete(p.javadocAt, p.cur.pos)
	return javadoc.Parse(doc)
}

func (p *Parser) parseCompilationUnit() *ast.CompilationUnit {
	start := p.cur.peek().Span.Start
	cu := &ast.CompilationUnit{}

	if p.cur.check(token.At) || p.cur.check(token.Package) {
		cu.Package = p.parsePackageDeclaration()
	}
	for p.cur.check(token.Import) {
		cu.Imports = append(cu.Imports, p.parseImport())
	}
	for !p.cur.check(token.EOF) {
		if p.cur.check(token.Semicolon) {
			p.cur.advance() // stray top-level ';', permitted by the grammar
			continue
		}
		cu.Types = append(cu.Types, p.parseTypeDeclaration())
	}
	setSpan(cu, p.span(start))
	return cu
}

func (p *Parser) parsePackageDeclaration() *ast.PackageDeclaration {
	start := p.cur.peek().Span.Start
	anns := p.parseAnnotations()
	p.expect(token.Package)
	name := p.parseQualifiedNameString()
	p.expect(token.Semicolon)
	pd := &ast.PackageDeclaration{Annotations: anns, Name: name}
	setSpan(pd, p.span(start))
	return pd
}

func (p *Parser) parseImport() *ast.Import {
	start := p.cur.peek().Span.Start
	p.expect(token.Import)
	im := &ast.Import{}
	if p.cur.check(token.Static) {
		p.cur.advance()
		im.Static = true
	}
	im.Name = p.parseQualifiedNameString()
	if p.cur.check(token.Dot) {
		p.cur.advance()
		p.expect(token.Star)
		im.Wildcard = true
	}
	p.expect(token.Semicolon)
	setSpan(im, p.span(start))
	return im
}

// parseQualifiedNameString parses a dotted identifier sequence (package,
// import, or annotation name) into a single dot-joined string.
func (p *Parser) parseQualifiedNameString() string {
	name, _ := p.parseIdent()
	for p.cur.check(token.Dot) && p.cur.peekN(1).Kind == token.Ident {
		p.cur.advance()
		n2, _ := p.parseIdent()
		name = name + "." + n2
	}
	return name
}

func (p *Parser) parseTypeDeclaration() ast.TypeDeclaration {
	doc := p.takeJavadoc()
	start := p.cur.peek().Span.Start
	mods, anns := p.parseModifiersAndAnnotations()

	switch p.cur.peek().Kind {
	case token.Class:
		return p.parseClassDeclaration(start, mods, anns, doc)
	case token.Interface:
		return p.parseInterfaceDeclaration(start, mods, anns, doc)
	case token.Enum:
		return p.parseEnumDeclaration(start, mods, anns, doc)
	case token.At:
		// @interface: parseModifiersAndAnnotations treats '@' as an
		// annotation only when it is not followed by Interface, so it
		// stops before '@' Interface and the '@' is still pending here.
		p.cur.advance()
		p.expect(token.Interface)
		return p.parseAnnotationTypeDeclaration(start, mods, anns, doc)
	}
	p.fail(p.cur.peek(), "class, interface, enum, or @interface", "expected a type declaration")
	return nil
}

func (p *Parser) parseClassDeclaration(start token.Position, mods ast.Modifiers, anns []*ast.Annotation, doc *javadoc.DocComment) *ast.ClassDeclaration {
	p.expect(token.Class)
	name, _ := p.parseIdent()
	c := &ast.ClassDeclaration{Modifiers: mods, Annotations: anns, Name: name, Javadoc: doc}
	if p.cur.check(token.LT) {
		c.TypeParameters = p.parseTypeParameters()
	}
	if p.cur.check(token.Extends) {
		p.cur.advance()
		c.Extends = p.parseReferenceTypeOnly()
	}
	if p.cur.check(token.Implements) {
		p.cur.advance()
		c.Implements = p.parseReferenceTypeList()
	}
	c.Body = p.parseClassBody()
	setSpan(c, p.span(start))
	return c
}

func (p *Parser) parseInterfaceDeclaration(start token.Position, mods ast.Modifiers, anns []*ast.Annotation, doc *javadoc.DocComment) *ast.InterfaceDeclaration {
	p.expect(token.Interface)
	name, _ := p.parseIdent()
	i := &ast.InterfaceDeclaration{Modifiers: mods, Annotations: anns, Name: name, Javadoc: doc}
	if p.cur.check(token.LT) {
		i.TypeParameters = p.parseTypeParameters()
	}
	if p.cur.check(token.Extends) {
		p.cur.advance()
		i.Extends = p.parseReferenceTypeList()
	}
	i.Body = p.parseClassBody()
	setSpan(i, p.span(start))
	return i
}

func (p *Parser) parseEnumDeclaration(start token.Position, mods ast.Modifiers, anns []*ast.Annotation, doc *javadoc.DocComment) *ast.EnumDeclaration {
	p.expect(token.Enum)
	name, _ := p.parseIdent()
	e := &ast.EnumDeclaration{Modifiers: mods, Annotations: anns, Name: name, Javadoc: doc}
	if p.cur.check(token.Implements) {
		p.cur.advance()
		e.Implements = p.parseReferenceTypeList()
	}
	p.expect(token.LBrace)
	if !p.cur.check(token.Semicolon) && !p.cur.check(token.RBrace) {
		for {
			e.Constants = append(e.Constants, p.parseEnumConstant())
			if !p.cur.check(token.Comma) {
				break
			}
			p.cur.advance()
			if p.cur.check(token.Semicolon) || p.cur.check(token.RBrace) {
				break
			}
		}
	}
	if p.cur.check(token.Semicolon) {
		p.cur.advance()
		for !p.cur.check(token.RBrace) && !p.cur.check(token.EOF) {
			e.Body = append(e.Body, p.parseMember())
		}
	}
	p.expect(token.RBrace)
	setSpan(e, p.span(start))
	return e
}

func (p *Parser) parseEnumConstant() *ast.EnumConstantDeclaration {
	start := p.cur.peek().Span.Start
	anns := p.parseAnnotations()
	name, _ := p.parseIdent()
	ec := &ast.EnumConstantDeclaration{Annotations: anns, Name: name}
	if p.cur.check(token.LParen) {
		ec.Arguments = p.parseArguments()
	}
	if p.cur.check(token.LBrace) {
		ec.Body = p.parseClassBody()
	}
	setSpan(ec, p.span(start))
	return ec
}

func (p *Parser) parseAnnotationTypeDeclaration(start token.Position, mods ast.Modifiers, anns []*ast.Annotation, doc *javadoc.DocComment) *ast.AnnotationTypeDeclaration {
	name, _ := p.parseIdent()
	a := &ast.AnnotationTypeDeclaration{Modifiers: mods, Annotations: anns, Name: name, Javadoc: doc}
	p.expect(token.LBrace)
	for !p.cur.check(token.RBrace) && !p.cur.check(token.EOF) {
		a.Body = append(a.Body, p.parseAnnotationMember())
	}
	p.expect(token.RBrace)
	setSpan(a, p.span(start))
	return a
}

func (p *Parser) parseReferenceTypeList() []*ast.ReferenceType {
	var out []*ast.ReferenceType
	out = append(out, p.parseReferenceTypeOnly())
	for p.cur.check(token.Comma) {
		p.cur.advance()
		out = append(out, p.parseReferenceTypeOnly())
	}
	return out
}

func (p *Parser) parseClassBody() []ast.MemberDeclaration {
	p.expect(token.LBrace)
	var members []ast.MemberDeclaration
	for !p.cur.check(token.RBrace) && !p.cur.check(token.EOF) {
		if p.cur.check(token.Semicolon) {
			p.cur.advance()
			continue
		}
		members = append(members, p.parseMember())
	}
	p.expect(token.RBrace)
	return members
}

// parseMember parses one field, method, constructor, static/instance
// initializer block, or nested type declaration.
func (p *Parser) parseMember() ast.MemberDeclaration {
	doc := p.takeJavadoc()
	start := p.cur.peek().Span.Start

	if p.cur.check(token.LBrace) {
		body := p.parseBlock()
		ib := &ast.InitializerBlock{Body: body}
		setSpan(ib, p.span(start))
		return ib
	}
	if p.cur.check(token.Static) && p.cur.peekN(1).Kind == token.LBrace {
		p.cur.advance()
		body := p.parseBlock()
		ib := &ast.InitializerBlock{Static: true, Body: body}
		setSpan(ib, p.span(start))
		return ib
	}

	mods, anns := p.parseModifiersAndAnnotations()

	switch p.cur.peek().Kind {
	case token.Class:
		return p.parseClassDeclaration(start, mods, anns, doc)
	case token.Interface:
		return p.parseInterfaceDeclaration(start, mods, anns, doc)
	case token.Enum:
		return p.parseEnumDeclaration(start, mods, anns, doc)
	case token.At:
		if p.cur.peekN(1).Kind == token.Interface {
			p.cur.advance()
			p.expect(token.Interface)
			return p.parseAnnotationTypeDeclaration(start, mods, anns, doc)
		}
	}

	var typeParams []*ast.TypeParameter
	if p.cur.check(token.LT) {
		typeParams = p.parseTypeParameters()
	}

	// A constructor has no return type: its own name is the class name,
	// immediately followed by '('.
	if p.cur.check(token.Ident) && p.cur.peekN(1).Kind == token.LParen {
		return p.parseConstructor(start, mods, anns, typeParams, doc)
	}

	var returnType ast.Type
	if !p.cur.check(token.Void) {
		returnType = p.parseType()
	} else {
		p.cur.advance()
	}

	name, _ := p.parseIdent()
	if p.cur.check(token.LParen) {
		return p.parseMethod(start, mods, anns, typeParams, returnType, name, doc)
	}
	return p.parseField(start, mods, anns, returnType, name, doc)
}

func (p *Parser) parseConstructor(start token.Position, mods ast.Modifiers, anns []*ast.Annotation, typeParams []*ast.TypeParameter, doc *javadoc.DocComment) *ast.ConstructorDeclaration {
	name, _ := p.parseIdent()
	c := &ast.ConstructorDeclaration{Modifiers: mods, Annotations: anns, TypeParameters: typeParams, Name: name, Javadoc: doc}
	c.Parameters = p.parseFormalParameters()
	if p.cur.check(token.Throws) {
		p.cur.advance()
		c.Throws = p.parseReferenceTypeList()
	}
	c.Body = p.parseBlock()
	setSpan(c, p.span(start))
	return c
}

func (p *Parser) parseMethod(start token.Position, mods ast.Modifiers, anns []*ast.Annotation, typeParams []*ast.TypeParameter, returnType ast.Type, name string, doc *javadoc.DocComment) *ast.MethodDeclaration {
	m := &ast.MethodDeclaration{
		Modifiers: mods, Annotations: anns, TypeParameters: typeParams,
		ReturnType: returnType, Name: name, Javadoc: doc,
	}
	m.Parameters = p.parseFormalParameters()
	for p.cur.check(token.LBracket) {
		p.cur.advance()
		p.expect(token.RBracket)
		m.ReturnType = &ast.ArrayType{Component: m.ReturnType, Dimensions: 1, DimAnnotations: [][]*ast.Annotation{nil}}
	}
	if p.cur.check(token.Throws) {
		p.cur.advance()
		m.Throws = p.parseReferenceTypeList()
	}
	if p.cur.check(token.LBrace) {
		m.Body = p.parseBlock()
	} else {
		p.expect(token.Semicolon)
	}
	setSpan(m, p.span(start))
	return m
}

func (p *Parser) parseField(start token.Position, mods ast.Modifiers, anns []*ast.Annotation, ty ast.Type, firstName string, doc *javadoc.DocComment) *ast.FieldDeclaration {
	f := &ast.FieldDeclaration{Modifiers: mods, Annotations: anns, Type: ty, Javadoc: doc}
	first := p.parseVariableDeclaratorTail(firstName)
	f.Declarators = append(f.Declarators, first)
	for p.cur.check(token.Comma) {
		p.cur.advance()
		f.Declarators = append(f.Declarators, p.parseVariableDeclarator())
	}
	p.expect(token.Semicolon)
	setSpan(f, p.span(start))
	return f
}

// parseVariableDeclaratorTail finishes a declarator whose name has already
// been consumed by the caller while disambiguating method vs. field.
func (p *Parser) parseVariableDeclaratorTail(name string) *ast.VariableDeclarator {
	start := p.cur.peek().Span.Start
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

func (p *Parser) parseFormalParameters() []*ast.FormalParameter {
	p.expect(token.LParen)
	var params []*ast.FormalParameter
	if !p.cur.check(token.RParen) {
		for {
			params = append(params, p.parseFormalParameter())
			if !p.cur.check(token.Comma) {
				break
			}
			p.cur.advance()
		}
	}
	p.expect(token.RParen)
	return params
}

func (p *Parser) parseFormalParameter() *ast.FormalParameter {
	start := p.cur.peek().Span.Start
	mods, anns := p.parseModifiersAndAnnotations()
	ty := p.parseType()
	fp := &ast.FormalParameter{Modifiers: mods, Annotations: anns, Type: ty}
	if p.cur.check(token.Ellipsis) {
		p.cur.advance()
		fp.Varargs = true
	}
	fp.Name, _ = p.parseIdent()
	for p.cur.check(token.LBracket) {
		p.cur.advance()
		p.expect(token.RBracket)
		fp.Type = &ast.ArrayType{Component: fp.Type, Dimensions: 1, DimAnnotations: [][]*ast.Annotation{nil}}
	}
	setSpan(fp, p.span(start))
	return fp
}

func (p *Parser) parseAnnotationMember() ast.MemberDeclaration {
	doc := p.takeJavadoc()
	start := p.cur.peek().Span.Start
	mods, anns := p.parseModifiersAndAnnotations()

	switch p.cur.peek().Kind {
	case token.Class:
		return p.parseClassDeclaration(start, mods, anns, doc)
	case token.Interface:
		return p.parseInterfaceDeclaration(start, mods, anns, doc)
	case token.Enum:
		return p.parseEnumDeclaration(start, mods, anns, doc)
	}

	ty := p.parseType()
	name, _ := p.parseIdent()
	if p.cur.check(token.LParen) {
		p.expect(token.LParen)
		p.expect(token.RParen)
		am := &ast.AnnotationMethod{Modifiers: mods, Annotations: anns, ReturnType: ty, Name: name}
		if p.cur.check(token.Default) {
			p.cur.advance()
			am.Default = p.parseElementValueAsExpr()
		}
		p.expect(token.Semicolon)
		setSpan(am, p.span(start))
		return am
	}
	return p.parseField(start, mods, anns, ty, name, doc)
}

// parseElementValueAsExpr parses a default element value for an
// AnnotationMethod; AnnotationMethod.Default is typed Expr, so a bare
// annotation or array value is carried by wrapping isn't needed for the
// common (Expr) case and is the only case this parser accepts as a default.
func (p *Parser) parseElementValueAsExpr() ast.Expr {
	v := p.parseElementValue()
	if e, ok := v.(ast.Expr); ok {
		return e
	}
	p.fail(p.cur.peek(), "expression", "unsupported default element value")
	return nil
}
