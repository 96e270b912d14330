package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"tsanchor/internal/ast"
)

// ParseError is a syntax error with the position it was detected at
type ParseError struct {
	Message  string
	Position ast.Position
	Length   int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}

func newParseError(path string, err error) ParseError {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := toPosition(perr.Position())
		if pos.Filename == "" {
			pos.Filename = path
		}
		return ParseError{Message: perr.Message(), Position: pos, Length: 1}
	}

	return ParseError{
		Message:  err.Error(),
		Position: ast.Position{Filename: path, Line: 1, Column: 1},
		Length:   1,
	}
}

func toPosition(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
