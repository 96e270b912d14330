package parser

import (
	"tsanchor/grammar"
	"tsanchor/internal/ast"
)

// ParseSource parses a contract module and lowers it into the ast model.
// On failure the module is nil and at least one ParseError is returned.
func ParseSource(path string, source string) (*ast.Module, []ParseError) {
	tree, err := grammar.ParseString(path, source)
	if err != nil {
		return nil, []ParseError{newParseError(path, err)}
	}

	l := &lowerer{filename: path}
	module := l.lowerModule(tree)
	if len(l.errors) > 0 {
		return nil, l.errors
	}
	return module, nil
}
