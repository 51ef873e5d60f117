// Package token defines the lexical token kinds, positions, and keyword
// table shared by the lexer and parser.
package token

import "fmt"

// Position is a 1-indexed source location. Positions are immutable and used
// only for diagnostics; they never affect AST equality.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether the position carries real line/column info.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span is a half-open source range expressed as two Positions.
type Span struct {
	Start Position
	End   Position
}

// Kind partitions tokens the way spec.md §3.2 describes: keywords,
// identifiers, the distinct literal families, separators, operators, the
// bare '@' sigil, and end-of-input.
type Kind int

const (
	EOF Kind = iota
	Illegal

	Ident

	// Literal kinds. Integer/FloatingPoint are never emitted as bare kinds;
	// see SPEC_FULL.md "Resolved Open Questions".
	LiteralDecimalInteger
	LiteralOctalInteger
	LiteralBinaryInteger
	LiteralHexInteger
	LiteralDecimalFloat
	LiteralHexFloat
	LiteralBoolean
	LiteralChar
	LiteralString
	LiteralNull

	keywordBeg
	Abstract
	Assert
	Boolean
	Break
	Byte
	Case
	Catch
	Char
	Class
	Const
	Continue
	Default
	Do
	Double
	Else
	Enum
	Extends
	Final
	Finally
	Float
	For
	Goto
	If
	Implements
	Import
	Instanceof
	Int
	Interface
	Long
	Native
	New
	Package
	Private
	Protected
	Public
	Return
	Short
	Static
	Strictfp
	Super
	Switch
	Synchronized
	This
	Throw
	Throws
	Transient
	Try
	Void
	Volatile
	While
	keywordEnd

	// Separators
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Ellipsis

	At
	ColonColon

	// Operators
	Assign
	EQ
	NE
	LT
	LE
	GT
	GE
	LAnd
	LOr
	Not
	And
	Or
	Xor
	Tilde
	Shl
	Shr
	UShr
	Plus
	Minus
	Star
	Slash
	Percent
	Inc
	Dec
	Question
	Colon
	Arrow
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
	UShrAssign
)

var names = map[Kind]string{
	EOF:                   "EOF",
	Illegal:               "Illegal",
	Ident:                 "identifier",
	LiteralDecimalInteger: "DecimalInteger",
	LiteralOctalInteger:   "OctalInteger",
	LiteralBinaryInteger:  "BinaryInteger",
	LiteralHexInteger:     "HexInteger",
	LiteralDecimalFloat:   "DecimalFloatingPoint",
	LiteralHexFloat:       "HexFloatingPoint",
	LiteralBoolean:        "Boolean",
	LiteralChar:           "Character",
	LiteralString:         "String",
	LiteralNull:           "Null",
	Abstract:              "abstract",
	Assert:                "assert",
	Boolean:               "boolean",
	Break:                 "break",
	Byte:                  "byte",
	Case:                  "case",
	Catch:                 "catch",
	Char:                  "char",
	Class:                 "class",
	Const:                 "const",
	Continue:              "continue",
	Default:               "default",
	Do:                    "do",
	Double:                "double",
	Else:                  "else",
	Enum:                  "enum",
	Extends:               "extends",
	Final:                 "final",
	Finally:               "finally",
	Float:                 "float",
	For:                   "for",
	Goto:                  "goto",
	If:                    "if",
	Implements:            "implements",
	Import:                "import",
	Instanceof:            "instanceof",
	Int:                   "int",
	Interface:             "interface",
	Long:                  "long",
	Native:                "native",
	New:                   "new",
	Package:               "package",
	Private:               "private",
	Protected:             "protected",
	Public:                "public",
	Return:                "return",
	Short:                 "short",
	Static:                "static",
	Strictfp:              "strictfp",
	Super:                 "super",
	Switch:                "switch",
	Synchronized:          "synchronized",
	This:                  "this",
	Throw:                 "throw",
	Throws:                "throws",
	Transient:             "transient",
	Try:                   "try",
	Void:                  "void",
	Volatile:              "volatile",
	While:                 "while",
	LParen:                "(",
	RParen:                ")",
	LBrace:                "{",
	RBrace:                "}",
	LBracket:              "[",
	RBracket:              "]",
	Semicolon:             ";",
	Comma:                 ",",
	Dot:                   ".",
	Ellipsis:              "...",
	At:                    "@",
	ColonColon:            "::",
	Assign:                "=",
	EQ:                    "==",
	NE:                    "!=",
	LT:                    "<",
	LE:                    "<=",
	GT:                    ">",
	GE:                    ">=",
	LAnd:                  "&&",
	LOr:                   "||",
	Not:                   "!",
	And:                   "&",
	Or:                    "|",
	Xor:                   "^",
	Tilde:                 "~",
	Shl:                   "<<",
	Shr:                   ">>",
	UShr:                  ">>>",
	Plus:                  "+",
	Minus:                 "-",
	Star:                  "*",
	Slash:                 "/",
	Percent:               "%",
	Inc:                   "++",
	Dec:                   "--",
	Question:              "?",
	Colon:                 ":",
	Arrow:                 "->",
	PlusAssign:            "+=",
	MinusAssign:           "-=",
	StarAssign:            "*=",
	SlashAssign:           "/=",
	PercentAssign:         "%=",
	AndAssign:             "&=",
	OrAssign:              "|=",
	XorAssign:             "^=",
	ShlAssign:             "<<=",
	ShrAssign:             ">>=",
	UShrAssign:            ">>>=",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Unknown"
}

// IsKeyword reports whether k is one of the 50 reserved words (true/false/null
// are literals, not keywords; see SPEC_FULL.md).
func (k Kind) IsKeyword() bool {
	return k > keywordBeg && k < keywordEnd
}

// IsLiteral reports whether k is one of the literal kinds.
func (k Kind) IsLiteral() bool {
	switch k {
	case LiteralDecimalInteger, LiteralOctalInteger, LiteralBinaryInteger,
		LiteralHexInteger, LiteralDecimalFloat, LiteralHexFloat,
		LiteralBoolean, LiteralChar, LiteralString, LiteralNull:
		return true
	}
	return false
}

// IsModifier reports whether k spells one of the declaration modifier
// keywords (spec.md §3.3's modifiers set).
func (k Kind) IsModifier() bool {
	switch k {
	case Public, Protected, Private, Static, Final, Abstract, Native,
		Synchronized, Transient, Volatile, Strictfp, Default:
		return true
	}
	return false
}

var keywords = map[string]Kind{
	"abstract": Abstract, "assert": Assert, "boolean": Boolean, "break": Break,
	"byte": Byte, "case": Case, "catch": Catch, "char": Char, "class": Class,
	"const": Const, "continue": Continue, "default": Default, "do": Do,
	"double": Double, "else": Else, "enum": Enum, "extends": Extends,
	"final": Final, "finally": Finally, "float": Float, "for": For,
	"goto": Goto, "if": If, "implements": Implements, "import": Import,
	"instanceof": Instanceof, "int": Int, "interface": Interface, "long": Long,
	"native": Native, "new": New, "package": Package, "private": Private,
	"protected": Protected, "public": Public, "return": Return, "short": Short,
	"static": Static, "strictfp": Strictfp, "super": Super, "switch": Switch,
	"synchronized": Synchronized, "this": This, "throw": Throw, "throws": Throws,
	"transient": Transient, "try": Try, "void": Void, "volatile": Volatile,
	"while": While,
	// Contextual literal spellings, not keywords; see SPEC_FULL.md.
	"true": LiteralBoolean, "false": LiteralBoolean, "null": LiteralNull,
}

// Lookup classifies an identifier-shaped lexeme as a keyword, a boolean/null
// literal, or a plain identifier.
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}

// IsBasicTypeKeyword reports whether k is one of the eight primitive type
// keywords or void, valid in type position.
func IsBasicTypeKeyword(k Kind) bool {
	switch k {
	case Boolean, Byte, Char, Short, Int, Long, Float, Double, Void:
		return true
	}
	return false
}

// Token is a tagged value: kind, literal text, and source span.
type Token struct {
	Kind    Kind
	Literal string
	Span    Span
}

func (t Token) String() string {
	if t.Literal != "" {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
	}
	return t.Kind.String()
}
