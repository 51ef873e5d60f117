// Package javaast turns Java 8-era source text into a typed abstract syntax
// tree, in one synchronous call per input.
//
// # Overview
//
// The package is a thin façade over four lower packages that each own one
// concern:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   lexer     │────▶│   parser    │────▶│     ast     │
//	│  ([]byte)   │     │  (tokens)   │     │ (disambig.) │     │  (typed     │
//	└─────────────┘     └─────────────┘     └──────┬──────┘     │    tree)    │
//	                                                │            └─────────────┘
//	                                                ▼
//	                                         ┌─────────────┐
//	                                         │   javadoc   │
//	                                         │ (doc parse) │
//	                                         └─────────────┘
//
// package lexer scans bytes into token.Token values; package parser drains
// an entire token stream and builds one ast.Node tree per call, resolving
// Java's classic grammar ambiguities (cast vs. parenthesized expression,
// type arguments vs. relational/shift operators, lambda vs. parenthesized
// expression, generic method invocation) along the way; package javadoc
// parses the body and block tags of any Javadoc comment the parser attaches
// to a declaration.
//
// # Synchronous, one-shot parsing
//
// Unlike a streaming/incremental parser built for an editor, every function
// here consumes its entire input and returns a complete tree or the first
// error encountered. There is no partial result, no error recovery past the
// first syntax error, and no facility to feed more bytes into an
// in-progress parse — a full re-parse is the only way to reflect an edit.
//
// # Entry points
//
//	// Tokenize returns the token sequence source lexes to, in isolation.
//	func Tokenize(source []byte, opts ...parser.Option) ([]token.Token, error)
//
//	// Parse parses a complete compilation unit: the usual entry point for
//	// an entire .java source file.
//	func Parse(source []byte, opts ...parser.Option) (*ast.CompilationUnit, error)
//
//	// ParseExpression, ParseMemberDeclaration, and ParseType parse a single
//	// expression, a single class/interface/enum member, and a single type
//	// reference respectively — convenience entries for tooling that only
//	// ever sees a grammar subset (an evaluated snippet, one pasted method).
//	func ParseExpression(source []byte, opts ...parser.Option) (ast.Expr, error)
//	func ParseMemberDeclaration(source []byte, opts ...parser.Option) (ast.MemberDeclaration, error)
//	func ParseType(source []byte, opts ...parser.Option) (ast.Type, error)
//
// # Error surface
//
// Every error returned is either a *lexer.LexerError (malformed token: an
// unterminated literal, an invalid escape, a stray character) or a
// *parser.ParserError (unexpected token, naming what was expected); both
// implement error, and neither function panics on malformed input.
//
// # Source encoding
//
// Input is Unicode text. The `\uXXXX` escape defined by the Java
// specification is expanded in a pre-tokenization pass over the whole
// buffer, so `\u0041` is equivalent to `A` anywhere a character may
// appear, including inside an identifier or keyword, not only inside a
// string or character literal body.
//
// # No I/O, no CLI, no persisted state
//
// The caller supplies a byte slice and receives a tree; nothing here reads
// a file, a classpath, or an environment variable, and no state survives
// between calls.
package javaast

import (
	"github.com/dhamidi/javaast/ast"
	"github.com/dhamidi/javaast/parser"
	"github.com/dhamidi/javaast/token"
)

// Tokenize lexes source into its token sequence without parsing it. It is
// useful in isolation for tooling that only needs lexical information
// (syntax highlighting, token-level diffing) and as the first stage Parse
// and its siblings run internally.
func Tokenize(source []byte, opts ...parser.Option) ([]token.Token, error) {
	return parser.Tokenize(source, opts...)
}

// Parse parses source as a complete compilation unit: an optional package
// declaration, its imports, and the file's top-level type declarations.
func Parse(source []byte, opts ...parser.Option) (*ast.CompilationUnit, error) {
	return parser.Parse(source, opts...)
}

// ParseExpression parses source as a single standalone expression.
func ParseExpression(source []byte, opts ...parser.Option) (ast.Expr, error) {
	return parser.ParseExpression(source, opts...)
}

// ParseMemberDeclaration parses source as a single class/interface/enum
// member: a field, method, constructor, initializer block, or nested type
// declaration.
func ParseMemberDeclaration(source []byte, opts ...parser.Option) (ast.MemberDeclaration, error) {
	return parser.ParseMemberDeclaration(source, opts...)
}

// ParseType parses source as a single type reference: a primitive type, a
// (possibly generic, possibly nested) reference type, or an array type.
func ParseType(source []byte, opts ...parser.Option) (ast.Type, error) {
	return parser.ParseType(source, opts...)
}
