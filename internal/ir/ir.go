package ir

import (
	"sort"

	"github.com/tliron/commonlog"
	"tsanchor/internal/errors"
	"tsanchor/internal/types"
)

var log = commonlog.GetLogger("tsanchor.ir")

// Program is the intermediate representation of one translated module
type Program struct {
	Name         string // program class name
	ModuleName   string // snake_case Rust module name
	ProgramID    string // empty until the class declares PROGRAM_ID
	Accounts     map[string]*Account
	CustomTypes  map[string]*Account
	State        *Account // synthesized from class fields, nil if none
	Instructions []*Instruction
	Warnings     []errors.CompilerError

	// Types carries the module's imports; when set, framework types used
	// without an import are reported
	Types *types.TypeRegistry
}

// NewProgram creates an empty program
func NewProgram(name string) *Program {
	return &Program{
		Name:        name,
		Accounts:    make(map[string]*Account),
		CustomTypes: make(map[string]*Account),
	}
}

// AccountNames returns the account names in sorted order
func (p *Program) AccountNames() []string {
	return sortedKeys(p.Accounts)
}

// CustomTypeNames returns the custom type names in sorted order
func (p *Program) CustomTypeNames() []string {
	return sortedKeys(p.CustomTypes)
}

// RecordNames returns every distinct record name of Accounts and CustomTypes, sorted
func (p *Program) RecordNames() []string {
	seen := make(map[string]*Account, len(p.Accounts)+len(p.CustomTypes))
	for name, acct := range p.CustomTypes {
		seen[name] = acct
	}
	for name, acct := range p.Accounts {
		seen[name] = acct
	}
	return sortedKeys(seen)
}

// Record looks a record up by name, preferring Accounts
func (p *Program) Record(name string) (*Account, bool) {
	if acct, ok := p.Accounts[name]; ok {
		return acct, true
	}
	acct, ok := p.CustomTypes[name]
	return acct, ok
}

// Instruction looks an instruction up by name
func (p *Program) Instruction(name string) *Instruction {
	for _, ix := range p.Instructions {
		if ix.Name == name {
			return ix
		}
	}
	return nil
}

func sortedKeys(m map[string]*Account) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
