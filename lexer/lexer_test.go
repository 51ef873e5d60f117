package lexer

import (
	"testing"

	"github.com/dhamidi/javaast/token"
)

func TestNextKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"class", token.Class},
		{"public", token.Public},
		{"private", token.Private},
		{"protected", token.Protected},
		{"static", token.Static},
		{"final", token.Final},
		{"abstract", token.Abstract},
		{"interface", token.Interface},
		{"extends", token.Extends},
		{"implements", token.Implements},
		{"void", token.Void},
		{"int", token.Int},
		{"boolean", token.Boolean},
		{"if", token.If},
		{"else", token.Else},
		{"for", token.For},
		{"while", token.While},
		{"return", token.Return},
		{"new", token.New},
		{"this", token.This},
		{"super", token.Super},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New([]byte(tt.input), "test.java")
			tok, err := l.Next()
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestNextLiteralKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"true", token.LiteralBoolean},
		{"false", token.LiteralBoolean},
		{"null", token.LiteralNull},
	}
	for _, tt := range tests {
		l := New([]byte(tt.input), "test.java")
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if tok.Kind != tt.kind {
			t.Errorf("%s: Kind = %v, want %v (true/false/null are literals, not keywords)", tt.input, tok.Kind, tt.kind)
		}
	}
}

func TestNextIdentifiers(t *testing.T) {
	tests := []string{
		"foo", "Bar", "_private", "$special", "camelCase",
		"SCREAMING_CASE", "with123Numbers",
	}
	for _, input := range tests {
		l := New([]byte(input), "test.java")
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next(%q) error = %v", input, err)
		}
		if tok.Kind != token.Ident {
			t.Errorf("%q: Kind = %v, want Ident", input, tok.Kind)
		}
		if tok.Literal != input {
			t.Errorf("%q: Literal = %q, want %q", input, tok.Literal, input)
		}
	}
}

func TestNextNumericLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.LiteralDecimalInteger},
		{"123", token.LiteralDecimalInteger},
		{"123L", token.LiteralDecimalInteger},
		{"123_456", token.LiteralDecimalInteger},
		{"0x1F", token.LiteralHexInteger},
		{"0X1f_2a", token.LiteralHexInteger},
		{"0b1010", token.LiteralBinaryInteger},
		{"0B10_01", token.LiteralBinaryInteger},
		{"017", token.LiteralOctalInteger},
		{"1.0", token.LiteralDecimalFloat},
		{"1.0f", token.LiteralDecimalFloat},
		{".5", token.LiteralDecimalFloat},
		{"1e10", token.LiteralDecimalFloat},
		{"1e-10", token.LiteralDecimalFloat},
		{"1.0d", token.LiteralDecimalFloat},
		{"0x1.8p1", token.LiteralHexFloat},
		{"0x1.8p1f", token.LiteralHexFloat},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New([]byte(tt.input), "test.java")
			tok, err := l.Next()
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestNextHexFloatRequiresExponent(t *testing.T) {
	l := New([]byte("0x1.8"), "test.java")
	if _, err := l.Next(); err == nil {
		t.Error("expected error for hex float literal missing binary exponent")
	}
}

func TestNextStringAndCharLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{`"hello"`, token.LiteralString},
		{`"with \"escape\""`, token.LiteralString},
		{`"tab\tnewline\n"`, token.LiteralString},
		{`"A"`, token.LiteralString},
		{`'a'`, token.LiteralChar},
		{`'\n'`, token.LiteralChar},
		{`'A'`, token.LiteralChar},
		{`'\101'`, token.LiteralChar},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New([]byte(tt.input), "test.java")
			tok, err := l.Next()
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestNextUnterminatedStringIsError(t *testing.T) {
	l := New([]byte(`"unterminated`), "test.java")
	if _, err := l.Next(); err == nil {
		t.Error("expected LexerError for unterminated string literal")
	}
}

func TestNextInvalidEscapeIsError(t *testing.T) {
	l := New([]byte(`"\q"`), "test.java")
	if _, err := l.Next(); err == nil {
		t.Error("expected LexerError for invalid escape sequence")
	}
}

func TestNextOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"+", token.Plus}, {"++", token.Inc}, {"+=", token.PlusAssign},
		{"-", token.Minus}, {"--", token.Dec}, {"-=", token.MinusAssign}, {"->", token.Arrow},
		{"<", token.LT}, {"<=", token.LE}, {"<<", token.Shl}, {"<<=", token.ShlAssign},
		{">", token.GT}, {">=", token.GE},
		{">>", token.Shr}, {">>=", token.ShrAssign},
		{">>>", token.UShr}, {">>>=", token.UShrAssign},
		{"&", token.And}, {"&&", token.LAnd}, {"&=", token.AndAssign},
		{"|", token.Or}, {"||", token.LOr}, {"|=", token.OrAssign},
		{"::", token.ColonColon}, {":", token.Colon},
		{"...", token.Ellipsis}, {".", token.Dot},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New([]byte(tt.input), "test.java")
			tok, err := l.Next()
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
		})
	}
}

func TestNextSkipsCommentsAndWhitespace(t *testing.T) {
	src := "// line comment\n  /* block */ class"
	l := New([]byte(src), "test.java")
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.Kind != token.Class {
		t.Errorf("Kind = %v, want Class", tok.Kind)
	}
}

func TestPendingJavadocCapturesDocComment(t *testing.T) {
	src := "/** does a thing */\npublic class Foo {}"
	l := New([]byte(src), "test.java")
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.Kind != token.Public {
		t.Fatalf("Kind = %v, want Public", tok.Kind)
	}
	doc, ok := l.PendingJavadoc()
	if !ok {
		t.Fatal("expected pending Javadoc")
	}
	want := "* does a thing "
	if doc != want {
		t.Errorf("PendingJavadoc() = %q, want %q", doc, want)
	}
	if _, ok := l.PendingJavadoc(); ok {
		t.Error("PendingJavadoc() should be cleared after being read")
	}
}

func TestPendingJavadocIgnoresPlainBlockComment(t *testing.T) {
	src := "/* plain */ class Foo {}"
	l := New([]byte(src), "test.java")
	if _, err := l.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if _, ok := l.PendingJavadoc(); ok {
		t.Error("plain block comment should not be captured as Javadoc")
	}
}

func TestNextEOF(t *testing.T) {
	l := New([]byte("  "), "test.java")
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.Kind != token.EOF {
		t.Errorf("Kind = %v, want EOF", tok.Kind)
	}
	// Next() is idempotent at EOF.
	tok2, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok2.Kind != token.EOF {
		t.Errorf("Kind = %v, want EOF", tok2.Kind)
	}
}

func TestPositionTracking(t *testing.T) {
	l := New([]byte("a\nbb"), "test.java")
	first, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if first.Span.Start.Line != 1 || first.Span.Start.Column != 1 {
		t.Errorf("first token start = %+v, want line 1 col 1", first.Span.Start)
	}
	second, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if second.Span.Start.Line != 2 || second.Span.Start.Column != 1 {
		t.Errorf("second token start = %+v, want line 2 col 1", second.Span.Start)
	}
}

func TestNextUnicodeEscapeInIdentifier(t *testing.T) {
	// \u0041 expands to the letter A; a bare identifier spelled with a
	// \uXXXX escape must lex exactly as if it had been written with the
	// literal character.
	l := New([]byte(`\u0041bc`), "test.java")
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.Kind != token.Ident {
		t.Fatalf("Kind = %v, want Ident", tok.Kind)
	}
	if tok.Literal != "Abc" {
		t.Errorf("Literal = %q, want %q", tok.Literal, "Abc")
	}
}

func TestNextUnicodeEscapeInsideKeyword(t *testing.T) {
	// \u0063 is 'c'; spelling "class" as "\u0063lass" must still lex as
	// the keyword, matching the requirement that \uXXXX be expanded before
	// tokenization, not just inside string/char literal bodies.
	l := New([]byte(`\u0063lass`), "test.java")
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.Kind != token.Class {
		t.Fatalf("Kind = %v, want Class", tok.Kind)
	}
	if tok.Literal != "class" {
		t.Errorf("Literal = %q, want %q", tok.Literal, "class")
	}
}

func TestNextInvalidUnicodeEscapeIsError(t *testing.T) {
	l := New([]byte(`\uXXXX`), "test.java")
	if _, err := l.Next(); err == nil {
		t.Error("expected an error for a malformed unicode escape with non-hex digits")
	}
}

func TestNextNumericUnderscorePlacement(t *testing.T) {
	valid := []string{"1_000", "0x1_F", "0b10_01", "0_777", "1_0.5_0"}
	for _, input := range valid {
		l := New([]byte(input), "test.java")
		if _, err := l.Next(); err != nil {
			t.Errorf("Next(%q): unexpected error: %v", input, err)
		}
	}

	invalid := []string{"0x_1", "1_", "1__2", "0b_1", "1._5", "1_.5", "1e1_", "1_e1"}
	for _, input := range invalid {
		l := New([]byte(input), "test.java")
		if _, err := l.Next(); err == nil {
			t.Errorf("Next(%q): expected a LexerError for misplaced underscore", input)
		}
	}
}
