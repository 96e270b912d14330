package semantic

import (
	"sort"

	"tsanchor/internal/ast"
)

type SymbolKind int

const (
	SymbolImport SymbolKind = iota
	SymbolParameter
	SymbolVariable
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolImport:
		return "import"
	case SymbolParameter:
		return "parameter"
	default:
		return "variable"
	}
}

type Symbol struct {
	Name     string
	Kind     SymbolKind
	Position ast.Position
	Used     bool
}

type SymbolTable struct {
	symbols map[string]*Symbol
	parent  *SymbolTable
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
		parent:  parent,
	}
}

func (st *SymbolTable) Define(name string, kind SymbolKind, pos ast.Position) *Symbol {
	symbol := &Symbol{
		Name:     name,
		Kind:     kind,
		Position: pos,
	}
	st.symbols[name] = symbol
	return symbol
}

func (st *SymbolTable) Lookup(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	if st.parent != nil {
		return st.parent.Lookup(name)
	}
	return nil
}

// MarkUsed flags the nearest symbol called name
func (st *SymbolTable) MarkUsed(name string) {
	if symbol := st.Lookup(name); symbol != nil {
		symbol.Used = true
	}
}

// Unused returns the symbols of this scope that were never used, in source order
func (st *SymbolTable) Unused() []*Symbol {
	var unused []*Symbol
	for _, symbol := range st.symbols {
		if !symbol.Used {
			unused = append(unused, symbol)
		}
	}
	sort.Slice(unused, func(i, j int) bool {
		return unused[i].Position.Offset < unused[j].Position.Offset
	})
	return unused
}
