package javaast

import (
	"testing"

	"github.com/dhamidi/javaast/ast"
	"github.com/dhamidi/javaast/parser"
	"github.com/dhamidi/javaast/token"
)

func TestTokenizeReturnsEOFTerminatedSequence(t *testing.T) {
	toks, err := Tokenize([]byte("class A {}"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected an EOF-terminated token sequence, got %v", toks)
	}
	if toks[0].Kind != token.Class {
		t.Fatalf("expected first token to be 'class', got %v", toks[0].Kind)
	}
}

func TestParseEmptyClass(t *testing.T) {
	unit, err := Parse([]byte("class A {}"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(unit.Types) != 1 {
		t.Fatalf("expected one top-level type, got %d", len(unit.Types))
	}
	cls, ok := unit.Types[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected *ast.ClassDeclaration, got %T", unit.Types[0])
	}
	if cls.Name != "A" {
		t.Fatalf("expected class name A, got %q", cls.Name)
	}
}

func TestParseEndToEndScenarios(t *testing.T) {
	sources := []string{
		"package com.example;\nimport java.util.List;\nclass A { List<String> names; }",
		"class A { <T extends Comparable<T>> T max(T a, T b) { return a; } }",
		"class A { Runnable r = () -> { System.out.println(1); }; }",
		"class A { int x = 0xCAFEBABE; }",
		`class A {
			void f() {
				try (AutoCloseable a = open(); AutoCloseable b = open()) {
					use(a, b);
				} catch (java.io.IOException | RuntimeException e) {
					handle(e);
				}
			}
		}`,
	}
	for _, src := range sources {
		if _, err := Parse([]byte(src)); err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", src, err)
		}
	}
}

func TestParseExpressionEntryPoint(t *testing.T) {
	expr, err := ParseExpression([]byte("1 + 2 * 3"))
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	if _, ok := expr.(*ast.BinaryOperation); !ok {
		t.Fatalf("expected *ast.BinaryOperation, got %T", expr)
	}
}

func TestParseMemberDeclarationEntryPoint(t *testing.T) {
	m, err := ParseMemberDeclaration([]byte("void greet(String name) { System.out.println(name); }"))
	if err != nil {
		t.Fatalf("ParseMemberDeclaration: %v", err)
	}
	method, ok := m.(*ast.MethodDeclaration)
	if !ok {
		t.Fatalf("expected *ast.MethodDeclaration, got %T", m)
	}
	if method.Name != "greet" {
		t.Fatalf("expected method name greet, got %q", method.Name)
	}
}

func TestParseTypeEntryPoint(t *testing.T) {
	ty, err := ParseType([]byte("java.util.List<String>"))
	if err != nil {
		t.Fatalf("ParseType: %v", err)
	}
	rt, ok := ty.(*ast.ReferenceType)
	if !ok {
		t.Fatalf("expected *ast.ReferenceType, got %T", ty)
	}
	if rt.Name != "java" {
		t.Fatalf("expected outermost segment 'java', got %q", rt.Name)
	}
}

func TestParseErrorSurfaceIsParserError(t *testing.T) {
	_, err := Parse([]byte("class {"))
	if err == nil {
		t.Fatal("expected an error for a class declaration missing its name")
	}
	if _, ok := err.(*parser.ParserError); !ok {
		t.Fatalf("expected a *parser.ParserError, got %T", err)
	}
}

func TestOptionsForwardToParser(t *testing.T) {
	unit, err := Parse([]byte("/** Doc. */\nclass A {}"), parser.WithJavadoc(false))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cls := unit.Types[0].(*ast.ClassDeclaration)
	if cls.Javadoc != nil {
		t.Fatalf("expected WithJavadoc(false) to suppress attachment, got %v", cls.Javadoc)
	}
}
