package ast

import (
	"testing"

	"github.com/dhamidi/javaast/token"
)

func TestModifiersDeduplicate(t *testing.T) {
	var m Modifiers
	m = m.With(ModPublic)
	m = m.With(ModStatic)
	m = m.With(ModPublic) // repeated, must be a no-op

	if !m.Has(ModPublic) || !m.Has(ModStatic) {
		t.Fatalf("expected public+static, got %q", m.String())
	}
	if m.Has(ModFinal) {
		t.Fatalf("did not expect final in %q", m.String())
	}
	if got, want := m.String(), "public static"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestModifierFromKeyword(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want Modifier
	}{
		{token.Public, ModPublic},
		{token.Protected, ModProtected},
		{token.Private, ModPrivate},
		{token.Static, ModStatic},
		{token.Final, ModFinal},
		{token.Abstract, ModAbstract},
		{token.Native, ModNative},
		{token.Synchronized, ModSynchronized},
		{token.Transient, ModTransient},
		{token.Volatile, ModVolatile},
		{token.Strictfp, ModStrictfp},
		{token.Default, ModDefault},
	}
	for _, c := range cases {
		got, ok := ModifierFromKeyword(c.kind)
		if !ok || got != c.want {
			t.Errorf("ModifierFromKeyword(%v) = (%v, %v), want (%v, true)", c.kind, got, ok, c.want)
		}
	}
	if _, ok := ModifierFromKeyword(token.Class); ok {
		t.Errorf("expected token.Class to not be a modifier keyword")
	}
}

func TestChildrenOmitsNilOptional(t *testing.T) {
	cd := &ClassDeclaration{Name: "Foo"}
	for _, attr := range cd.Children() {
		if attr.Name == "extends" && len(attr.Nodes) != 0 {
			t.Fatalf("expected no extends child on a class with no superclass, got %v", attr.Nodes)
		}
	}
}

func TestChildrenIncludesPresentOptional(t *testing.T) {
	cd := &ClassDeclaration{
		Name:    "Foo",
		Extends: &ReferenceType{Name: "Bar"},
	}
	var found bool
	for _, attr := range cd.Children() {
		if attr.Name == "extends" {
			found = true
			if len(attr.Nodes) != 1 {
				t.Fatalf("expected exactly one extends child, got %d", len(attr.Nodes))
			}
		}
	}
	if !found {
		t.Fatalf("expected an extends attribute")
	}
}

func TestIsNilNodeTypedNilPointer(t *testing.T) {
	var rt *ReferenceType
	var n Node = rt
	if n == nil {
		t.Fatalf("sanity check: wrapped typed nil should not equal untyped nil")
	}
	if !isNilNode(n) {
		t.Fatalf("expected isNilNode to detect a typed-nil *ReferenceType")
	}
}

func TestMemberDeclarationSatisfiesTypeDeclaration(t *testing.T) {
	var md MemberDeclaration = &ClassDeclaration{Name: "Inner"}
	if _, ok := md.(TypeDeclaration); !ok {
		t.Fatalf("expected *ClassDeclaration to satisfy TypeDeclaration")
	}
}

func TestSpanPropagatesFromBase(t *testing.T) {
	want := token.Span{
		Start: token.Position{File: "A.java", Line: 1, Column: 1},
		End:   token.Position{File: "A.java", Line: 1, Column: 10},
	}
	n := &Literal{base: base{span: want}, Value: "1"}
	if n.Span() != want {
		t.Fatalf("Span() = %+v, want %+v", n.Span(), want)
	}
}
