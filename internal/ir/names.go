package ir

import (
	"github.com/iancoleman/strcase"
	"tsanchor/internal/ast"
	"tsanchor/internal/errors"
)

// handlerIdents are declared by every generated handler and Accounts struct
var handlerIdents = map[string]bool{
	"ctx":            true,
	"system_program": true,
}

// nameSet tracks the Rust spellings taken in one namespace
type nameSet struct {
	taken    map[string]string
	reserved map[string]bool
}

func newNameSet(reserved map[string]bool) *nameSet {
	return &nameSet{taken: make(map[string]string), reserved: reserved}
}

// claim reserves the snake_case form of name, failing if another name or a
// generated identifier already has it
func (ns *nameSet) claim(kind, name string, pos ast.Position) error {
	if err := checkIdent(kind, name, pos); err != nil {
		return err
	}
	ident := strcase.ToSnake(name)
	if ns.reserved[ident] {
		return errors.NameCollision(kind, name, ident, pos)
	}
	if prev, taken := ns.taken[ident]; taken {
		return errors.NameCollision(kind, name, prev, pos)
	}
	ns.taken[ident] = name
	return nil
}

// checkIdent rejects names Rust cannot spell, such as those containing '$'
func checkIdent(kind, name string, pos ast.Position) error {
	for _, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return errors.InvalidIdentifier(kind, name, pos)
		}
	}
	return nil
}
