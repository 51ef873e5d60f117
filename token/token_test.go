package token

import "testing"

func TestLookupKeywords(t *testing.T) {
	tests := []struct {
		ident string
		kind  Kind
	}{
		{"class", Class},
		{"public", Public},
		{"static", Static},
		{"return", Return},
		{"instanceof", Instanceof},
		{"foo", Ident},
		{"Foo123", Ident},
	}
	for _, tt := range tests {
		if got := Lookup(tt.ident); got != tt.kind {
			t.Errorf("Lookup(%q) = %v, want %v", tt.ident, got, tt.kind)
		}
	}
}

func TestLookupLiteralKeywords(t *testing.T) {
	tests := []struct {
		ident string
		kind  Kind
	}{
		{"true", LiteralBoolean},
		{"false", LiteralBoolean},
		{"null", LiteralNull},
	}
	for _, tt := range tests {
		got := Lookup(tt.ident)
		if got != tt.kind {
			t.Errorf("Lookup(%q) = %v, want %v", tt.ident, got, tt.kind)
		}
		if got.IsKeyword() {
			t.Errorf("Lookup(%q).IsKeyword() = true, want false (literal, not keyword)", tt.ident)
		}
	}
}

func TestKindIsKeyword(t *testing.T) {
	if !Class.IsKeyword() {
		t.Error("Class.IsKeyword() = false, want true")
	}
	if Ident.IsKeyword() {
		t.Error("Ident.IsKeyword() = true, want false")
	}
	if LiteralBoolean.IsKeyword() {
		t.Error("LiteralBoolean.IsKeyword() = true, want false")
	}
}

func TestKindIsModifier(t *testing.T) {
	for _, k := range []Kind{Public, Private, Protected, Static, Final, Abstract, Native, Synchronized, Transient, Volatile, Strictfp, Default} {
		if !k.IsModifier() {
			t.Errorf("%v.IsModifier() = false, want true", k)
		}
	}
	if Class.IsModifier() {
		t.Error("Class.IsModifier() = true, want false")
	}
}

func TestIsBasicTypeKeyword(t *testing.T) {
	for _, k := range []Kind{Boolean, Byte, Char, Short, Int, Long, Float, Double, Void} {
		if !IsBasicTypeKeyword(k) {
			t.Errorf("IsBasicTypeKeyword(%v) = false, want true", k)
		}
	}
	if IsBasicTypeKeyword(Class) {
		t.Error("IsBasicTypeKeyword(Class) = true, want false")
	}
}

func TestKindString(t *testing.T) {
	if Class.String() != "class" {
		t.Errorf("Class.String() = %q, want %q", Class.String(), "class")
	}
	if Shr.String() != ">>" {
		t.Errorf("Shr.String() = %q, want %q", Shr.String(), ">>")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Ident, Literal: "foo"}
	if tok.String() != `identifier("foo")` {
		t.Errorf("Token.String() = %q", tok.String())
	}
	tok2 := Token{Kind: LParen}
	if tok2.String() != "(" {
		t.Errorf("Token.String() = %q, want %q", tok2.String(), "(")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{File: "Foo.java", Line: 3, Column: 5}
	if p.String() != "Foo.java:3:5" {
		t.Errorf("Position.String() = %q", p.String())
	}
	p2 := Position{Line: 1, Column: 1}
	if p2.String() != "1:1" {
		t.Errorf("Position.String() = %q", p2.String())
	}
}
