package ast

import "github.com/dhamidi/javaast/javadoc"

// CompilationUnit is the root of a parsed source file: an optional package
// declaration, its imports (which precede types by construction, spec.md
// §3.4), and the top-level type declarations.
type CompilationUnit struct {
	base
	Package *PackageDeclaration
	Imports []*Import
	Types   []TypeDeclaration
}

func (c *CompilationUnit) Children() []Attr {
	return []Attr{one("package", c.Package), many("imports", c.Imports), many("types", c.Types)}
}

// PackageDeclaration names the package a compilation unit belongs to.
type PackageDeclaration struct {
	base
	Annotations []*Annotation
	Name        string
}

func (p *PackageDeclaration) Children() []Attr {
	return []Attr{many("annotations", p.Annotations)}
}

// Import is a single import declaration: plain, static, and/or a
// wildcard (`import a.b.*;`, `import static a.B.c;`).
type Import struct {
	base
	Name     string
	Static   bool
	Wildcard bool
}

func (i *Import) Children() []Attr { return nil }

// ClassDeclaration is a (possibly nested) class declaration.
type ClassDeclaration struct {
	base
	Modifiers      Modifiers
	Annotations    []*Annotation
	Name           string
	TypeParameters []*TypeParameter
	Extends        *ReferenceType
	Implements     []*ReferenceType
	Body           []MemberDeclaration
	Javadoc        *javadoc.DocComment
}

func (c *ClassDeclaration) memberNode()   {}
func (c *ClassDeclaration) typeDeclNode() {}
func (c *ClassDeclaration) Children() []Attr {
	return []Attr{
		many("annotations", c.Annotations),
		many("typeParameters", c.TypeParameters),
		one("extends", c.Extends),
		many("implements", c.Implements),
		many("body", c.Body),
	}
}

// InterfaceDeclaration is a (possibly nested) interface declaration.
// Unlike a class, an interface may extend multiple interfaces.
type InterfaceDeclaration struct {
	base
	Modifiers      Modifiers
	Annotations    []*Annotation
	Name           string
	TypeParameters []*TypeParameter
	Extends        []*ReferenceType
	Body           []MemberDeclaration
	Javadoc        *javadoc.DocComment
}

func (i *InterfaceDeclaration) memberNode()   {}
func (i *InterfaceDeclaration) typeDeclNode() {}
func (i *InterfaceDeclaration) Children() []Attr {
	return []Attr{
		many("annotations", i.Annotations),
		many("typeParameters", i.TypeParameters),
		many("extends", i.Extends),
		many("body", i.Body),
	}
}

// EnumDeclaration is a (possibly nested) enum declaration.
type EnumDeclaration struct {
	base
	Modifiers   Modifiers
	Annotations []*Annotation
	Name        string
	Implements  []*ReferenceType
	Constants   []*EnumConstantDeclaration
	Body        []MemberDeclaration
	Javadoc     *javadoc.DocComment
}

func (e *EnumDeclaration) memberNode()   {}
func (e *EnumDeclaration) typeDeclNode() {}
func (e *EnumDeclaration) Children() []Attr {
	return []Attr{
		many("annotations", e.Annotations),
		many("implements", e.Implements),
		many("constants", e.Constants),
		many("body", e.Body),
	}
}

// AnnotationTypeDeclaration is a (possibly nested) `@interface` declaration.
type AnnotationTypeDeclaration struct {
	base
	Modifiers   Modifiers
	Annotations []*Annotation
	Name        string
	Body        []MemberDeclaration // AnnotationMethod, FieldDeclaration, nested types
	Javadoc     *javadoc.DocComment
}

func (a *AnnotationTypeDeclaration) memberNode()   {}
func (a *AnnotationTypeDeclaration) typeDeclNode() {}
func (a *AnnotationTypeDeclaration) Children() []Attr {
	return []Attr{many("annotations", a.Annotations), many("body", a.Body)}
}

// InitializerBlock is a `{ ... }` or `static { ... }` block at class scope,
// run when an instance is constructed or when the class is initialized.
type InitializerBlock struct {
	base
	Static bool
	Body   *Block
}

func (i *InitializerBlock) memberNode() {}
func (i *InitializerBlock) Children() []Attr {
	return []Attr{one("body", i.Body)}
}

// FieldDeclaration declares one or more variables of the same type at
// class/interface/enum scope.
type FieldDeclaration struct {
	base
	Modifiers   Modifiers
	Annotations []*Annotation
	Type        Type
	Declarators []*VariableDeclarator
	Javadoc     *javadoc.DocComment
}

func (f *FieldDeclaration) memberNode() {}
func (f *FieldDeclaration) Children() []Attr {
	return []Attr{many("annotations", f.Annotations), one("type", f.Type), many("declarators", f.Declarators)}
}

// MethodDeclaration declares a method. ReturnType is nil for a void
// method. Body is nil for abstract and interface methods without a
// default body.
type MethodDeclaration struct {
	base
	Modifiers      Modifiers
	Annotations    []*Annotation
	TypeParameters []*TypeParameter
	ReturnType     Type
	Name           string
	Parameters     []*FormalParameter
	Throws         []*ReferenceType
	Body           *Block
	Javadoc        *javadoc.DocComment
}

func (m *MethodDeclaration) memberNode() {}
func (m *MethodDeclaration) Children() []Attr {
	return []Attr{
		many("annotations", m.Annotations),
		many("typeParameters", m.TypeParameters),
		one("returnType", m.ReturnType),
		many("parameters", m.Parameters),
		many("throws", m.Throws),
		one("body", m.Body),
	}
}

// ConstructorDeclaration declares a constructor.
type ConstructorDeclaration struct {
	base
	Modifiers      Modifiers
	Annotations    []*Annotation
	TypeParameters []*TypeParameter
	Name           string
	Parameters     []*FormalParameter
	Throws         []*ReferenceType
	Body           *Block
	Javadoc        *javadoc.DocComment
}

func (c *ConstructorDeclaration) memberNode() {}
func (c *ConstructorDeclaration) Children() []Attr {
	return []Attr{
		many("annotations", c.Annotations),
		many("typeParameters", c.TypeParameters),
		many("parameters", c.Parameters),
		many("throws", c.Throws),
		one("body", c.Body),
	}
}

// EnumConstantDeclaration is one `NAME(args) { body }` entry in an enum's
// constant list; Arguments and Body are both optional.
type EnumConstantDeclaration struct {
	base
	Annotations []*Annotation
	Name        string
	Arguments   []Expr
	Body        []MemberDeclaration // anonymous-class body, if present
}

func (e *EnumConstantDeclaration) Children() []Attr {
	return []Attr{many("annotations", e.Annotations), many("arguments", e.Arguments), many("body", e.Body)}
}

// AnnotationMethod is an `@interface` element declaration:
// `Type name() default value;`.
type AnnotationMethod struct {
	base
	Modifiers   Modifiers
	Annotations []*Annotation
	ReturnType  Type
	Name        string
	Default     Expr
}

func (a *AnnotationMethod) memberNode() {}
func (a *AnnotationMethod) Children() []Attr {
	return []Attr{many("annotations", a.Annotations), one("returnType", a.ReturnType), one("default", a.Default)}
}

// FormalParameter is one parameter of a method, constructor, or lambda.
// Varargs is true for the last parameter of a `T... name` declaration.
type FormalParameter struct {
	base
	Modifiers   Modifiers
	Annotations []*Annotation
	Type        Type // nil for an untyped lambda parameter
	Varargs     bool
	Name        string
}

func (f *FormalParameter) Children() []Attr {
	return []Attr{many("annotations", f.Annotations), one("type", f.Type)}
}

// LocalVariableDeclaration declares one or more local variables; it
// implements Statement since it also appears directly in a Block.
type LocalVariableDeclaration struct {
	base
	Modifiers   Modifiers
	Annotations []*Annotation
	Type        Type
	Declarators []*VariableDeclarator
}

func (l *LocalVariableDeclaration) stmtNode() {}
func (l *LocalVariableDeclaration) Children() []Attr {
	return []Attr{many("annotations", l.Annotations), one("type", l.Type), many("declarators", l.Declarators)}
}

// VariableDeclarator is one `name[] = initializer` entry in a field,
// local-variable, or resource declaration. Dimensions counts trailing
// `[]` pairs written after the name (C-style array declarators), which
// add to the declared type's own array dimensions.
type VariableDeclarator struct {
	base
	Name        string
	Dimensions  int
	Initializer Expr
}

func (v *VariableDeclarator) Children() []Attr {
	return []Attr{one("initializer", v.Initializer)}
}
