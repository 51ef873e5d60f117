package ast

import "github.com/dhamidi/javaast/token"

// Literal is a literal value token carried verbatim into the AST; the
// literal text is never parsed to a number (spec.md §3.2).
type Literal struct {
	base
	Kind  token.Kind
	Value string
}

func (l *Literal) exprNode() {}
func (l *Literal) Children() []Attr { return nil }

// Name is a simple or qualified identifier reference used where the
// grammar does not yet know whether it denotes a package, a type, a
// field, or a local variable (that disambiguation is semantic analysis,
// out of scope per spec.md §1). The parser always produces a single-element
// Parts: a dotted access such as a.b is a MemberReference whose Qualifier
// is a Name, and package, import, and annotation names are stored as
// dot-joined strings on their own nodes rather than as Name nodes.
type Name struct {
	base
	Parts []string
}

func (n *Name) exprNode() {}
func (n *Name) Children() []Attr { return nil }

// MemberReference is a `.field` access on an arbitrary expression.
type MemberReference struct {
	base
	Qualifier Expr
	Name      string
}

func (m *MemberReference) exprNode() {}
func (m *MemberReference) Children() []Attr {
	return []Attr{one("qualifier", m.Qualifier)}
}

// MethodInvocation is `qualifier.<T>name(args)`; Qualifier is nil for an
// unqualified call.
type MethodInvocation struct {
	base
	Qualifier     Expr
	TypeArguments []*TypeArgument
	Name          string
	Arguments     []Expr
}

func (m *MethodInvocation) exprNode() {}
func (m *MethodInvocation) Children() []Attr {
	return []Attr{
		one("qualifier", m.Qualifier),
		many("typeArguments", m.TypeArguments),
		many("arguments", m.Arguments),
	}
}

// SuperMethodInvocation is `super.<T>name(args)`.
type SuperMethodInvocation struct {
	base
	TypeArguments []*TypeArgument
	Name          string
	Arguments     []Expr
}

func (s *SuperMethodInvocation) exprNode() {}
func (s *SuperMethodInvocation) Children() []Attr {
	return []Attr{many("typeArguments", s.TypeArguments), many("arguments", s.Arguments)}
}

// ExplicitConstructorInvocation is the first statement of a constructor
// body: `this(args);`, `super(args);`, or a qualified form
// (`Outer.this.super(args);`, `expr.super(args);`).
type ExplicitConstructorInvocation struct {
	base
	Qualifier     Expr
	IsSuper       bool
	TypeArguments []*TypeArgument
	Arguments     []Expr
}

func (e *ExplicitConstructorInvocation) exprNode() {}
func (e *ExplicitConstructorInvocation) Children() []Attr {
	return []Attr{one("qualifier", e.Qualifier), many("typeArguments", e.TypeArguments), many("arguments", e.Arguments)}
}

// This is a `this` or qualified `Outer.this` reference.
type This struct {
	base
	Qualifier Expr
}

func (t *This) exprNode() {}
func (t *This) Children() []Attr {
	return []Attr{one("qualifier", t.Qualifier)}
}

// Cast is `(T) expr`; Types has more than one entry for an intersection
// cast `(A & B) expr`.
type Cast struct {
	base
	Types []Type
	Expr  Expr
}

func (c *Cast) exprNode() {}
func (c *Cast) Children() []Attr {
	return []Attr{many("types", c.Types), one("expr", c.Expr)}
}

// BinaryOperation is any binary operator application, including
// relational/shift/bitwise/logical/arithmetic and `instanceof`.
type BinaryOperation struct {
	base
	Operator token.Kind
	Left     Expr
	Right    Expr
}

func (b *BinaryOperation) exprNode() {}
func (b *BinaryOperation) Children() []Attr {
	return []Attr{one("left", b.Left), one("right", b.Right)}
}

// Assignment is `target op= value` for `=` and every compound assignment
// operator.
type Assignment struct {
	base
	Target   Expr
	Operator token.Kind
	Value    Expr
}

func (a *Assignment) exprNode() {}
func (a *Assignment) Children() []Attr {
	return []Attr{one("target", a.Target), one("value", a.Value)}
}

// TernaryExpression is `cond ? then : else`.
type TernaryExpression struct {
	base
	Condition Expr
	Then      Expr
	Else      Expr
}

func (t *TernaryExpression) exprNode() {}
func (t *TernaryExpression) Children() []Attr {
	return []Attr{one("condition", t.Condition), one("then", t.Then), one("else", t.Else)}
}

// InstanceCreation is `new Type(args)`, optionally with an anonymous
// class Body.
type InstanceCreation struct {
	base
	TypeArguments []*TypeArgument
	Type          *ReferenceType
	Arguments     []Expr
	Body          []MemberDeclaration // anonymous class body, if present
}

func (i *InstanceCreation) exprNode() {}
func (i *InstanceCreation) Children() []Attr {
	return []Attr{
		many("typeArguments", i.TypeArguments),
		one("type", i.Type),
		many("arguments", i.Arguments),
		many("body", i.Body),
	}
}

// InnerClassCreation is `qualifier.new Type(args)`, creating an inner
// class instance bound to an enclosing instance.
type InnerClassCreation struct {
	base
	Qualifier     Expr
	TypeArguments []*TypeArgument
	Type          *ReferenceType
	Arguments     []Expr
	Body          []MemberDeclaration
}

func (i *InnerClassCreation) exprNode() {}
func (i *InnerClassCreation) Children() []Attr {
	return []Attr{
		one("qualifier", i.Qualifier),
		many("typeArguments", i.TypeArguments),
		one("type", i.Type),
		many("arguments", i.Arguments),
		many("body", i.Body),
	}
}

// ArrayCreation is `new T[expr]...[]{...}`. Dimensions holds one entry
// per explicit `[size]` and never contains nil; ExtraDimensions counts the
// sizeless `[]` pairs.
// Initializer is set instead of Dimensions for `new T[]{...}`.
type ArrayCreation struct {
	base
	Type            Type
	Dimensions      []Expr
	ExtraDimensions int
	Initializer     *ArrayInitializer
}

func (a *ArrayCreation) exprNode() {}
func (a *ArrayCreation) Children() []Attr {
	return []Attr{one("type", a.Type), many("dimensions", a.Dimensions), one("initializer", a.Initializer)}
}

// ArrayInitializer is a `{ v1, v2, ... }` initializer, which may itself
// contain nested ArrayInitializers for multi-dimensional arrays.
type ArrayInitializer struct {
	base
	Values []Expr
}

func (a *ArrayInitializer) exprNode() {}
func (a *ArrayInitializer) Children() []Attr {
	return []Attr{many("values", a.Values)}
}

// ArraySelector is `array[index]`.
type ArraySelector struct {
	base
	Array Expr
	Index Expr
}

func (a *ArraySelector) exprNode() {}
func (a *ArraySelector) Children() []Attr {
	return []Attr{one("array", a.Array), one("index", a.Index)}
}

// MethodReference is `qualifier::name` or `qualifier::new`, where
// Qualifier may be an expression, a bare type name, or (for arrays)
// an array type.
type MethodReference struct {
	base
	Qualifier     Expr
	TypeArguments []*TypeArgument
	Name          string // "new" for a constructor reference
}

func (m *MethodReference) exprNode() {}
func (m *MethodReference) Children() []Attr {
	return []Attr{one("qualifier", m.Qualifier), many("typeArguments", m.TypeArguments)}
}

// LambdaExpression is `(params) -> body`; Body is either an Expr
// (expression-bodied lambda) or a *Block (block-bodied lambda).
type LambdaExpression struct {
	base
	Parameters []*FormalParameter
	Body       Node
}

func (l *LambdaExpression) exprNode() {}
func (l *LambdaExpression) Children() []Attr {
	return []Attr{many("parameters", l.Parameters), one("body", l.Body)}
}

// ClassReference is `Type.class` for a primitive type (`int.class`); it
// also carries the type operand of `instanceof`. A class literal on a named
// type (`Foo.class`) is not a ClassReference: it parses as a
// MemberReference whose Name is "class".
type ClassReference struct {
	base
	Type Type
}

func (c *ClassReference) exprNode() {}
func (c *ClassReference) Children() []Attr {
	return []Attr{one("type", c.Type)}
}

// VoidClassReference is `void.class`.
type VoidClassReference struct {
	base
}

func (v *VoidClassReference) exprNode()      {}
func (v *VoidClassReference) Children() []Attr { return nil }

// IncDecExpression is `++x`/`--x` (Prefix true) or `x++`/`x--` (Prefix
// false); Operator is token.Inc or token.Dec.
type IncDecExpression struct {
	base
	Operator token.Kind
	Operand  Expr
	Prefix   bool
}

func (i *IncDecExpression) exprNode() {}
func (i *IncDecExpression) Children() []Attr {
	return []Attr{one("operand", i.Operand)}
}

// UnaryOperation is prefix `+ - ! ~`.
type UnaryOperation struct {
	base
	Operator token.Kind
	Operand  Expr
}

func (u *UnaryOperation) exprNode() {}
func (u *UnaryOperation) Children() []Attr {
	return []Attr{one("operand", u.Operand)}
}
