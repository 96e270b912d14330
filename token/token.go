// Package token SPDX-License-Identifier: Apache-2.0
package token

import "strings"

type TokenType string

type Token struct {
	Type    TokenType
	Literal string
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT       = "IDENT"       // counter, by, u64 ...
	INT         = "INT"         // 1234567890, 0xff, 1_000
	STRING      = "STRING"      // "vote"
	BYTE_STRING = "BYTE_STRING" // b"vote"
	LIFETIME    = "LIFETIME"    // 'info

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	BANG     = "!"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"

	PLUS_ASSIGN     = "+="
	MINUS_ASSIGN    = "-="
	ASTERISK_ASSIGN = "*="
	SLASH_ASSIGN    = "/="
	PERCENT_ASSIGN  = "%="

	LT = "<"
	GT = ">"

	EQ     = "=="
	NOT_EQ = "!="
	LT_EQ  = "<="
	GT_EQ  = ">="
	AND    = "&&"
	OR     = "||"

	AMPERSAND = "&"
	ARROW     = "->"
	QUESTION  = "?"

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	COLON     = ":"
	NAMESPACE = "::"
	DOT       = "."
	HASH      = "#"

	LPAREN   = "("
	RPAREN   = ")"
	LBRACE   = "{"
	RBRACE   = "}"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	USE    = "USE"
	MOD    = "MOD"
	PUB    = "PUB"
	FN     = "FN"
	STRUCT = "STRUCT"
	LET    = "LET"
	MUT    = "MUT"
	RETURN = "RETURN"
	TRUE   = "TRUE"
	FALSE  = "FALSE"
	SUPER  = "SUPER"
	CRATE  = "CRATE"
	AS     = "AS"
	IF     = "IF"
	ELSE   = "ELSE"
)

var keywords = map[string]TokenType{
	"use":    USE,
	"mod":    MOD,
	"pub":    PUB,
	"fn":     FN,
	"struct": STRUCT,
	"let":    LET,
	"mut":    MUT,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
	"super":  SUPER,
	"crate":  CRATE,
	"as":     AS,
	"if":     IF,
	"else":   ELSE,
}

var punctuation = map[string]TokenType{
	"=": ASSIGN, "+": PLUS, "-": MINUS, "!": BANG, "*": ASTERISK, "/": SLASH, "%": PERCENT,
	"+=": PLUS_ASSIGN, "-=": MINUS_ASSIGN, "*=": ASTERISK_ASSIGN, "/=": SLASH_ASSIGN, "%=": PERCENT_ASSIGN,
	"<": LT, ">": GT, "==": EQ, "!=": NOT_EQ, "<=": LT_EQ, ">=": GT_EQ, "&&": AND, "||": OR,
	"&": AMPERSAND, "->": ARROW, "?": QUESTION,
	",": COMMA, ";": SEMICOLON, ":": COLON, "::": NAMESPACE, ".": DOT, "#": HASH,
	"(": LPAREN, ")": RPAREN, "{": LBRACE, "}": RBRACE, "[": LBRACKET, "]": RBRACKET,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether ident is a reserved word
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// LookupPunct returns the type of an operator or delimiter
func LookupPunct(lit string) (TokenType, bool) {
	tok, ok := punctuation[lit]
	return tok, ok
}

// Stream is an ordered list of target tokens
type Stream []Token

// Word appends an identifier or keyword
func (s *Stream) Word(name string) {
	*s = append(*s, Token{Type: LookupIdent(name), Literal: name})
}

// Punct appends an operator or delimiter; unknown text becomes ILLEGAL
func (s *Stream) Punct(lit string) {
	tok, ok := LookupPunct(lit)
	if !ok {
		tok = ILLEGAL
	}
	*s = append(*s, Token{Type: tok, Literal: lit})
}

// Int appends an integer literal as written
func (s *Stream) Int(lit string) {
	*s = append(*s, Token{Type: INT, Literal: lit})
}

// Str appends a quoted string literal
func (s *Stream) Str(value string) {
	*s = append(*s, Token{Type: STRING, Literal: Quote(value)})
}

// ByteStr appends a quoted byte string literal
func (s *Stream) ByteStr(value string) {
	*s = append(*s, Token{Type: BYTE_STRING, Literal: "b" + Quote(value)})
}

// Lifetime appends a lifetime such as 'info
func (s *Stream) Lifetime(name string) {
	*s = append(*s, Token{Type: LIFETIME, Literal: "'" + name})
}

// Append adds every token of other
func (s *Stream) Append(other Stream) {
	*s = append(*s, other...)
}

// String renders the stream as space-separated raw text
func (s Stream) String() string {
	parts := make([]string, len(s))
	for i, tok := range s {
		parts[i] = tok.Literal
	}
	return strings.Join(parts, " ")
}

// Quote renders value as a double-quoted literal
func Quote(value string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
