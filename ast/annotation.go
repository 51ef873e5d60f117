package ast

// Annotation is a use-site annotation: @Name, @Name(value), or
// @Name(k1=v1, k2=v2, ...). At most one of Value or Pairs is populated,
// matching Java's single-element-annotation shorthand; both are empty for
// a marker annotation (@Name or @Name()).
type Annotation struct {
	base
	Name  string
	Value Node          // set for the single-value shorthand @Name(expr)
	Pairs []*ElementValuePair
}

func (a *Annotation) Children() []Attr {
	return []Attr{one("value", a.Value), many("pairs", a.Pairs)}
}

// ElementValuePair is one `name = value` entry inside an annotation's
// parenthesized argument list.
type ElementValuePair struct {
	base
	Name  string
	Value Node // Expr, *Annotation, or *ElementArrayValue
}

func (e *ElementValuePair) Children() []Attr {
	return []Attr{one("value", e.Value)}
}

// ElementArrayValue is a `{a, b, c}` array literal appearing as an
// annotation element value.
type ElementArrayValue struct {
	base
	Values []Node
}

func (e *ElementArrayValue) Children() []Attr {
	return []Attr{{Name: "values", Nodes: e.Values}}
}
