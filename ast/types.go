package ast

// BasicType is one of the eight Java primitive types or void (spec.md
// §3.3 lists the eight). void appears as a BasicType only where a type is
// parsed directly from the void keyword; a void method's ReturnType is
// nil, and void.class is a VoidClassReference.
type BasicType struct {
	base
	Annotations []*Annotation
	Name        string // "byte","short","int","long","float","double","boolean","char","void"
}

func (t *BasicType) typeNode() {}
func (t *BasicType) Children() []Attr {
	return []Attr{many("annotations", t.Annotations)}
}

// ReferenceType is a named class/interface type, optionally parameterized
// and optionally qualified by an outer reference type for nested types
// like Outer<T>.Inner<U> (spec.md §3.3's "optional outer sub_type").
type ReferenceType struct {
	base
	Annotations   []*Annotation
	Name          string
	TypeArguments []*TypeArgument
	Sub           *ReferenceType // Inner part of Outer.Inner; nil if unqualified
}

func (t *ReferenceType) typeNode() {}
func (t *ReferenceType) Children() []Attr {
	return []Attr{
		many("annotations", t.Annotations),
		many("typeArguments", t.TypeArguments),
		one("sub", t.Sub),
	}
}

// ArrayType wraps a component type with a dimension count, each dimension
// optionally carrying its own type-use annotations (Java 8 type
// annotations, spec.md §4.2 grammar coverage).
type ArrayType struct {
	base
	Component      Type
	Dimensions     int
	DimAnnotations [][]*Annotation // len == Dimensions; may contain nil/empty slices
}

func (t *ArrayType) typeNode() {}
func (t *ArrayType) Children() []Attr {
	attrs := []Attr{one("component", t.Component)}
	for _, anns := range t.DimAnnotations {
		attrs = append(attrs, many("dimensionAnnotations", anns))
	}
	return attrs
}

// TypeArgument is either a concrete type or a bounded/unbounded wildcard
// (`?`, `? extends T`, `? super T`).
type TypeArgument struct {
	base
	Wildcard     bool
	ExtendsBound Type // set iff Wildcard && bound is an extends-bound
	SuperBound   Type // set iff Wildcard && bound is a super-bound
	ConcreteType Type // set iff !Wildcard
}

func (t *TypeArgument) typeNode() {}
func (t *TypeArgument) Children() []Attr {
	return []Attr{
		one("extendsBound", t.ExtendsBound),
		one("superBound", t.SuperBound),
		one("type", t.ConcreteType),
	}
}

// TypeParameter is a declaration-site generic parameter: a name plus zero
// or more bounds (the first `extends`-bound may be a class, the rest
// interfaces; this module does not distinguish the two positions since
// neither the grammar's structure nor spec.md requires it for a pure
// parser).
type TypeParameter struct {
	base
	Annotations []*Annotation
	Name        string
	Bounds      []*ReferenceType
}

func (t *TypeParameter) Children() []Attr {
	return []Attr{many("annotations", t.Annotations), many("bounds", t.Bounds)}
}
