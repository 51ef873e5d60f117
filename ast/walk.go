package ast

// Walk performs a pre-order traversal of n, calling visit with the list of
// strict ancestors (root first, n's immediate parent last) and the current
// node. Traversal into a node's children stops if visit returns false.
//
// This is the "Pre-order walk yielding (path, node)" operation spec.md
// §4.3 requires to be guaranteed on top of the per-node Children() protocol.
func Walk(n Node, visit func(path []Node, n Node) bool) {
	walk(nil, n, visit)
}

func walk(path []Node, n Node, visit func(path []Node, n Node) bool) {
	if n == nil {
		return
	}
	if !visit(path, n) {
		return
	}
	childPath := append(append([]Node{}, path...), n)
	for _, attr := range n.Children() {
		for _, child := range attr.Nodes {
			walk(childPath, child, visit)
		}
	}
}

// Filter returns every descendant of n (including n itself) for which
// pred returns true, in pre-order. This is the "Filter-by-type" operation
// spec.md §4.3 requires; callers typically write pred as a type switch or
// type assertion, e.g. FindAll[*MethodDeclaration](n).
func Filter(n Node, pred func(Node) bool) []Node {
	var out []Node
	Walk(n, func(_ []Node, cur Node) bool {
		if pred(cur) {
			out = append(out, cur)
		}
		return true
	})
	return out
}

// FindAll returns every descendant of n (including n itself) whose runtime
// type is T, in pre-order. It is the typed convenience wrapper over Filter
// that spec.md §4.3's "runtime variant matches a given set" calls for.
func FindAll[T Node](n Node) []T {
	var out []T
	Walk(n, func(_ []Node, cur Node) bool {
		if t, ok := cur.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
