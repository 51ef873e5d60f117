package ast

import (
	"testing"

	"github.com/dhamidi/javaast/token"
)

func lit(v string) *Literal {
	return &Literal{Kind: token.LiteralDecimalInteger, Value: v}
}

func TestWalkPreOrder(t *testing.T) {
	tree := &BinaryOperation{
		Operator: token.Plus,
		Left:     lit("1"),
		Right: &BinaryOperation{
			Operator: token.Star,
			Left:     lit("2"),
			Right:    lit("3"),
		},
	}

	var order []string
	Walk(tree, func(_ []Node, n Node) bool {
		switch v := n.(type) {
		case *BinaryOperation:
			order = append(order, v.Operator.String())
		case *Literal:
			order = append(order, v.Value)
		}
		return true
	})

	want := []string{"+", "1", "*", "2", "3"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestWalkStopsDescending(t *testing.T) {
	tree := &BinaryOperation{
		Operator: token.Plus,
		Left:     lit("1"),
		Right: &BinaryOperation{
			Operator: token.Star,
			Left:     lit("2"),
			Right:    lit("3"),
		},
	}

	var visited int
	Walk(tree, func(_ []Node, n Node) bool {
		visited++
		if _, ok := n.(*BinaryOperation); ok && visited == 3 {
			return false
		}
		return true
	})
	if visited != 3 {
		t.Fatalf("expected traversal to stop after 3 visits, got %d", visited)
	}
}

func TestWalkPathIsAncestorsOnly(t *testing.T) {
	inner := lit("2")
	tree := &BinaryOperation{Operator: token.Plus, Left: lit("1"), Right: inner}

	var gotPath []Node
	Walk(tree, func(path []Node, n Node) bool {
		if n == Node(inner) {
			gotPath = path
		}
		return true
	})
	if len(gotPath) != 1 || gotPath[0] != Node(tree) {
		t.Fatalf("expected path [tree], got %v", gotPath)
	}
}

func TestFindAllByType(t *testing.T) {
	tree := &BinaryOperation{
		Operator: token.Plus,
		Left:     lit("1"),
		Right: &BinaryOperation{
			Operator: token.Star,
			Left:     lit("2"),
			Right:    lit("3"),
		},
	}

	lits := FindAll[*Literal](tree)
	if len(lits) != 3 {
		t.Fatalf("expected 3 literals, got %d", len(lits))
	}

	ops := FindAll[*BinaryOperation](tree)
	if len(ops) != 2 {
		t.Fatalf("expected 2 binary operations, got %d", len(ops))
	}
}

func TestFilterPredicate(t *testing.T) {
	tree := &BinaryOperation{
		Operator: token.Plus,
		Left:     lit("1"),
		Right:    lit("2"),
	}
	matches := Filter(tree, func(n Node) bool {
		l, ok := n.(*Literal)
		return ok && l.Value == "2"
	})
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}
