package format

import (
	"fmt"
	"unicode"

	"tsanchor/token"
)

// SyntaxError reports text the builtin formatter cannot lay out
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("format: offset %d: %s", e.Offset, e.Message)
}

type lexer struct {
	src    []rune
	pos    int
	tokens []token.Token
}

// lex splits raw Rust text back into tokens
func lex(src string) ([]token.Token, error) {
	l := &lexer{src: []rune(src)}
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		switch {
		case unicode.IsSpace(r):
			l.pos++
		case isIdentStart(r):
			word := l.word()
			if word == "r" && l.peek() == '#' && l.pos+1 < len(l.src) && isIdentStart(l.src[l.pos+1]) {
				l.pos++
				l.emit(token.IDENT, "r#"+l.word())
				continue
			}
			if word == "b" && l.peek() == '"' {
				str, err := l.string()
				if err != nil {
					return nil, err
				}
				l.emit(token.BYTE_STRING, "b"+str)
				continue
			}
			l.emit(token.LookupIdent(word), word)
		case unicode.IsDigit(r):
			l.emit(token.INT, l.word())
		case r == '"':
			str, err := l.string()
			if err != nil {
				return nil, err
			}
			l.emit(token.STRING, str)
		case r == '\'':
			start := l.pos
			l.pos++
			if l.pos >= len(l.src) || !isIdentStart(l.src[l.pos]) {
				return nil, &SyntaxError{Offset: start, Message: "character literals are not supported"}
			}
			l.emit(token.LIFETIME, "'"+l.word())
		default:
			if err := l.punct(); err != nil {
				return nil, err
			}
		}
	}
	return l.tokens, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func (l *lexer) emit(tt token.TokenType, lit string) {
	l.tokens = append(l.tokens, token.Token{Type: tt, Literal: lit})
}

func (l *lexer) peek() rune {
	if l.pos < len(l.src) {
		return l.src[l.pos]
	}
	return 0
}

func (l *lexer) word() string {
	start := l.pos
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos++
	}
	return string(l.src[start:l.pos])
}

func (l *lexer) string() (string, error) {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
		case '"':
			l.pos++
			return string(l.src[start:l.pos]), nil
		default:
			l.pos++
		}
	}
	return "", &SyntaxError{Offset: start, Message: "unterminated string literal"}
}

func (l *lexer) punct() error {
	if l.pos+1 < len(l.src) {
		two := string(l.src[l.pos : l.pos+2])
		if tt, ok := token.LookupPunct(two); ok {
			l.emit(tt, two)
			l.pos += 2
			return nil
		}
	}
	one := string(l.src[l.pos])
	if tt, ok := token.LookupPunct(one); ok {
		l.emit(tt, one)
		l.pos++
		return nil
	}
	return &SyntaxError{Offset: l.pos, Message: fmt.Sprintf("unexpected character %q", l.src[l.pos])}
}
