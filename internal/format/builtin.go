package format

import (
	"fmt"
	"strings"

	"tsanchor/token"
)

// Builtin lays out Rust text without external tools: one statement, field
// or attribute per line, four-space indentation and a blank line between
// items of a module.
type Builtin struct{}

type frameKind int

const (
	parenFrame frameKind = iota
	bracketFrame
	blockFrame     // function body
	fieldsFrame    // struct body
	containerFrame // module body
)

type frame struct {
	kind frameKind
	open string
	attr bool // bracket of an outer attribute
}

type printer struct {
	out     strings.Builder
	indent  int
	stack   []frame
	pending frameKind

	lineStart bool
	blank     bool
	prev      *token.Token
	prevUnary bool
	itemWord  string
}

const indentUnit = "    "

func (Builtin) Format(src string) (string, error) {
	tokens, err := lex(src)
	if err != nil {
		return "", err
	}

	p := &printer{lineStart: true, blank: true, pending: blockFrame}
	if err := p.run(tokens); err != nil {
		return "", err
	}
	return p.out.String(), nil
}

func (p *printer) run(tokens []token.Token) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		var next *token.Token
		if i+1 < len(tokens) {
			next = &tokens[i+1]
		}

		switch tok.Literal {
		case "{":
			kind := p.pending
			p.pending = blockFrame
			p.write(tok, !p.lineStart)
			if next != nil && next.Literal == "}" {
				p.write(*next, false)
				i++
				var after *token.Token
				if i+1 < len(tokens) {
					after = &tokens[i+1]
				}
				p.endItem(after)
				continue
			}
			p.stack = append(p.stack, frame{kind: kind, open: "{"})
			p.indent++
			p.newline()

		case "}":
			if _, err := p.pop("{", tok); err != nil {
				return err
			}
			p.indent--
			p.newline()
			p.write(tok, false)
			p.endItem(next)

		case "(", "[":
			attr := tok.Literal == "[" && p.prev != nil && p.prev.Literal == "#"
			p.write(tok, p.spaceBefore(tok))
			kind := parenFrame
			if tok.Literal == "[" {
				kind = bracketFrame
			}
			p.stack = append(p.stack, frame{kind: kind, open: tok.Literal, attr: attr})

		case ")", "]":
			open := "("
			if tok.Literal == "]" {
				open = "["
			}
			f, err := p.pop(open, tok)
			if err != nil {
				return err
			}
			p.write(tok, false)
			if f.attr {
				p.newline()
			}

		case ";":
			p.write(tok, false)
			if p.inList() {
				continue
			}
			p.newline()
			if p.atContainer() && next != nil && next.Literal != "}" &&
				!(p.itemWord == "use" && next.Literal == "use") {
				p.blankLine()
			}

		case ",":
			p.write(tok, false)
			if !p.inList() {
				p.newline()
			}

		default:
			switch tok.Type {
			case token.MOD:
				p.pending = containerFrame
			case token.STRUCT:
				p.pending = fieldsFrame
			case token.FN:
				p.pending = blockFrame
			}
			p.write(tok, p.spaceBefore(tok))
		}
	}

	if len(p.stack) > 0 {
		return &SyntaxError{Offset: -1, Message: fmt.Sprintf("unclosed %q", p.stack[len(p.stack)-1].open)}
	}
	p.newline()
	return nil
}

func (p *printer) pop(open string, closing token.Token) (frame, error) {
	if len(p.stack) == 0 {
		return frame{}, &SyntaxError{Offset: -1, Message: fmt.Sprintf("unexpected %q", closing.Literal)}
	}
	top := p.stack[len(p.stack)-1]
	if top.open != open {
		return frame{}, &SyntaxError{Offset: -1, Message: fmt.Sprintf("%q closes %q", closing.Literal, top.open)}
	}
	p.stack = p.stack[:len(p.stack)-1]
	return top, nil
}

// endItem finishes a closing brace; items of a module are separated by a blank line
func (p *printer) endItem(next *token.Token) {
	if next != nil && (next.Literal == "," || next.Literal == ";" || next.Literal == ")") {
		return
	}
	p.newline()
	if p.atContainer() && next != nil && next.Literal != "}" {
		p.blankLine()
	}
}

func (p *printer) inList() bool {
	if len(p.stack) == 0 {
		return false
	}
	kind := p.stack[len(p.stack)-1].kind
	return kind == parenFrame || kind == bracketFrame
}

func (p *printer) atContainer() bool {
	return len(p.stack) == 0 || p.stack[len(p.stack)-1].kind == containerFrame
}

func (p *printer) newline() {
	if !p.lineStart {
		p.out.WriteString("\n")
		p.lineStart = true
	}
}

func (p *printer) blankLine() {
	p.newline()
	if !p.blank {
		p.out.WriteString("\n")
		p.blank = true
	}
}

func (p *printer) write(tok token.Token, space bool) {
	unary := isPrefixOp(tok.Literal) && p.startsOperand()
	if p.lineStart {
		p.out.WriteString(strings.Repeat(indentUnit, p.indent))
		if p.atContainer() {
			p.itemWord = tok.Literal
		}
	} else if space {
		p.out.WriteString(" ")
	}
	p.out.WriteString(tok.Literal)
	p.lineStart = false
	p.blank = false

	p.prevUnary = unary
	t := tok
	p.prev = &t
}

// startsOperand reports whether the previous token leaves the parser
// expecting an operand, which makes - ! & * prefix operators
func (p *printer) startsOperand() bool {
	if p.prev == nil || p.lineStart {
		return true
	}
	switch p.prev.Type {
	case token.IDENT, token.INT, token.STRING, token.BYTE_STRING, token.LIFETIME, token.TRUE, token.FALSE:
		return false
	}
	return p.prev.Literal != ")" && p.prev.Literal != "]"
}

func isPrefixOp(lit string) bool {
	return lit == "-" || lit == "!" || lit == "&" || lit == "*"
}

func (p *printer) spaceBefore(tok token.Token) bool {
	if p.prev == nil {
		return false
	}
	switch tok.Literal {
	case ".", "::", ",", ";", ":", ")", "]", ">", "?":
		return false
	}
	switch p.prev.Literal {
	case ".", "::", "(", "[", "#", "<", "!":
		return false
	}
	if p.prevUnary {
		return false
	}
	prevIdent := p.prev.Type == token.IDENT
	switch tok.Literal {
	case "(", "[", "<", "!":
		return !(prevIdent || p.prev.Literal == ">" && tok.Literal == "(")
	}
	return true
}
