// Package ast defines the typed node family produced by the parser: a
// CompilationUnit rooted tree of declarations, types, statements, and
// expressions, plus a uniform traversal protocol over it.
//
// The design follows the teacher's javadoc AST: one concrete struct per
// grammatical variant, each implementing a small unexported marker method
// so the compiler enforces which nodes may appear where (an Expr cannot be
// handed where a Statement is expected), instead of a single generic
// Node{Kind, Children} tree walked by switching on a kind tag.
package ast

import (
	"reflect"

	"github.com/dhamidi/javaast/token"
)

// Node is implemented by every AST variant.
type Node interface {
	Span() token.Span
	// Children returns this node's declared attributes in source order,
	// each paired with its child node(s). Leaf attributes (strings, bools,
	// operators) are not nodes and are not included here; callers read
	// them directly off the concrete struct.
	Children() []Attr
	node()
}

// Attr is one declared attribute of a node: a name and its associated
// child or children, per spec's "(attribute-name, child-or-child-list)"
// traversal protocol.
type Attr struct {
	Name  string
	Nodes []Node
}

// one builds a single-child Attr, skipping nil (absent optional children).
func one(name string, n Node) Attr {
	if n == nil || isNilNode(n) {
		return Attr{Name: name}
	}
	return Attr{Name: name, Nodes: []Node{n}}
}

// many builds a list-child Attr from a slice of any Node-implementing type.
func many[T Node](name string, items []T) Attr {
	if len(items) == 0 {
		return Attr{Name: name}
	}
	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, it)
	}
	return Attr{Name: name, Nodes: nodes}
}

// isNilNode reports whether n is a typed nil pointer wrapped in the Node
// interface (e.g. a (*ReferenceType)(nil) optional field), which one() must
// still treat as absent rather than a present-but-empty child.
func isNilNode(n Node) bool {
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	stmtNode()
}

// Type is implemented by every type node (BasicType, ReferenceType, ArrayType).
type Type interface {
	Node
	typeNode()
}

// MemberDeclaration is implemented by every node that may appear directly in
// a class/interface/enum/annotation body.
type MemberDeclaration interface {
	Node
	memberNode()
}

// TypeDeclaration is implemented by the four top-level/nested type kinds;
// it is also a MemberDeclaration since Java permits nested type declarations.
type TypeDeclaration interface {
	MemberDeclaration
	typeDeclNode()
}

// Modifier is one bit of the declaration modifier set (spec.md §3.3).
type Modifier uint16

const (
	ModPublic Modifier = 1 << iota
	ModProtected
	ModPrivate
	ModStatic
	ModFinal
	ModAbstract
	ModNative
	ModSynchronized
	ModTransient
	ModVolatile
	ModStrictfp
	ModDefault
)

var modifierNames = []struct {
	bit  Modifier
	name string
}{
	{ModPublic, "public"}, {ModProtected, "protected"}, {ModPrivate, "private"},
	{ModStatic, "static"}, {ModFinal, "final"}, {ModAbstract, "abstract"},
	{ModNative, "native"}, {ModSynchronized, "synchronized"}, {ModTransient, "transient"},
	{ModVolatile, "volatile"}, {ModStrictfp, "strictfp"}, {ModDefault, "default"},
}

// Modifiers is a deduplicated set of modifier keywords, per spec.md §3.4.
type Modifiers uint16

// Has reports whether m includes mod.
func (m Modifiers) Has(mod Modifier) bool { return m&Modifiers(mod) != 0 }

// With returns m with mod added; repeated modifiers are idempotent, giving
// the deduplication spec.md §3.4 requires.
func (m Modifiers) With(mod Modifier) Modifiers { return m | Modifiers(mod) }

func (m Modifiers) String() string {
	s := ""
	for _, e := range modifierNames {
		if m.Has(e.bit) {
			if s != "" {
				s += " "
			}
			s += e.name
		}
	}
	return s
}

// ModifierFromKeyword maps a keyword token kind to its Modifier bit, or
// (0, false) if k is not a modifier keyword.
func ModifierFromKeyword(k token.Kind) (Modifier, bool) {
	switch k {
	case token.Public:
		return ModPublic, true
	case token.Protected:
		return ModProtected, true
	case token.Private:
		return ModPrivate, true
	case token.Static:
		return ModStatic, true
	case token.Final:
		return ModFinal, true
	case token.Abstract:
		return ModAbstract, true
	case token.Native:
		return ModNative, true
	case token.Synchronized:
		return ModSynchronized, true
	case token.Transient:
		return ModTransient, true
	case token.Volatile:
		return ModVolatile, true
	case token.Strictfp:
		return ModStrictfp, true
	case token.Default:
		return ModDefault, true
	}
	return 0, false
}

// base is embedded in every node to carry its span and the unexported
// marker method without repeating both in every struct literal.
type base struct {
	span token.Span
}

func (b base) Span() token.Span { return b.span }
func (base) node()              {}

// spanSetter is implemented by every node via the promoted pointer-receiver
// method on base; it is unexported so only SetSpan can use it.
type spanSetter interface{ setSpanField(token.Span) }

func (b *base) setSpanField(span token.Span) { b.span = span }

// SetSpan assigns n's source span. The parser builds most nodes
// incrementally, discovering a production's full extent only after every
// child has been parsed, so node construction and span assignment are
// separate steps rather than both happening in one struct literal.
func SetSpan(n Node, span token.Span) {
	if s, ok := n.(spanSetter); ok {
		s.setSpanField(span)
	}
}
