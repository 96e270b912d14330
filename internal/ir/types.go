package ir

import (
	"github.com/iancoleman/strcase"
	"tsanchor/internal/ast"
	"tsanchor/internal/types"
)

// Account is a record declared by an exported interface or synthesized from
// the program class fields. IsAccount marks on-chain account state.
type Account struct {
	Name      string
	Fields    []*Field
	IsAccount bool
	Pos       ast.Position
}

// Field is one ordered member of a record
type Field struct {
	Name string
	Type types.Type
	Pos  ast.Position
}

// Field looks a field up by name
func (a *Account) Field(name string) *Field {
	for _, f := range a.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Instruction is one public method of the program class
type Instruction struct {
	Name     string
	Params   []*Param
	Accounts []*AccountBinding
	Body     []Stmt
	Pos      ast.Position
}

// Param is an instruction argument passed by value
type Param struct {
	Name string
	Type types.Type
}

// ContextName is the Accounts struct generated for the instruction
func (ix *Instruction) ContextName() string {
	return strcase.ToCamel(ix.Name) + "Context"
}

// Binding looks an account binding up by name
func (ix *Instruction) Binding(name string) *AccountBinding {
	for _, b := range ix.Accounts {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Param looks a parameter up by name
func (ix *Instruction) Param(name string) *Param {
	for _, p := range ix.Params {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// UsesParamSeeds reports whether any binding derives its address from a parameter
func (ix *Instruction) UsesParamSeeds() bool {
	for _, b := range ix.Accounts {
		for _, s := range b.Seeds {
			if s.Kind == SeedParam {
				return true
			}
		}
	}
	return false
}

// NeedsSystemProgram reports whether any binding creates an account
func (ix *Instruction) NeedsSystemProgram() bool {
	for _, b := range ix.Accounts {
		if b.Init || b.InitIfNeeded {
			return true
		}
	}
	return false
}

// BindingKind is the Anchor account wrapper of a binding
type BindingKind int

const (
	ProgramAccount   BindingKind = iota // Account<'info, T>
	SignerAccount                       // Signer<'info>
	SystemAccount                       // SystemAccount<'info>
	UncheckedAccount                    // UncheckedAccount<'info>
)

func (k BindingKind) String() string {
	switch k {
	case ProgramAccount:
		return "Account"
	case SignerAccount:
		return "Signer"
	case SystemAccount:
		return "SystemAccount"
	case UncheckedAccount:
		return "UncheckedAccount"
	default:
		return "unknown"
	}
}

// AccountBinding is one account an instruction receives
type AccountBinding struct {
	Name         string
	Kind         BindingKind
	TypeName     string // record name for ProgramAccount
	Mutable      bool
	Init         bool
	InitIfNeeded bool
	Payer        string
	Derived      bool // address is a PDA; Seeds may be empty
	Seeds        []Seed
	Close        string
	Implicit     bool // synthesized state binding
}

// SeedKind classifies one PDA seed
type SeedKind int

const (
	SeedLiteral    SeedKind = iota // "vote"
	SeedAccountKey                 // user.key
	SeedParam                      // instruction parameter
)

// Seed is one element of a derive([...]) list
type Seed struct {
	Kind  SeedKind
	Value string     // literal text, account name or parameter name
	Type  types.Type // parameter type for SeedParam
}

// Stmt is one statement of an instruction body
type Stmt interface {
	isStmt()
}

// AssignStmt assigns to a record field or a mutable local
type AssignStmt struct {
	Target Expr // *FieldRef or *LocalRef
	Op     string
	Value  Expr
}

// LetStmt introduces a local
type LetStmt struct {
	Name    string
	Mutable bool
	Value   Expr
}

// ReturnStmt ends the instruction early with success
type ReturnStmt struct{}

func (*AssignStmt) isStmt() {}
func (*LetStmt) isStmt()    {}
func (*ReturnStmt) isStmt() {}

// Expr is a value expression inside an instruction body
type Expr interface {
	isExpr()
}

type ParamRef struct{ Name string }
type LocalRef struct{ Name string }

// FieldRef reads a field of an account binding
type FieldRef struct {
	Account string
	Field   string
}

// ParamFieldRef reads a field of a record passed by value
type ParamFieldRef struct {
	Param string
	Field string
}

// KeyRef is the public key of an account binding
type KeyRef struct{ Account string }

type IntLit struct{ Value string }
type BoolLit struct{ Value bool }
type StringLit struct{ Value string }

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

type UnaryExpr struct {
	Op    string
	Value Expr
}

type ParenExpr struct{ Value Expr }

func (*ParamRef) isExpr()      {}
func (*LocalRef) isExpr()      {}
func (*FieldRef) isExpr()      {}
func (*ParamFieldRef) isExpr() {}
func (*KeyRef) isExpr()        {}
func (*IntLit) isExpr()        {}
func (*BoolLit) isExpr()       {}
func (*StringLit) isExpr()     {}
func (*BinaryExpr) isExpr()    {}
func (*UnaryExpr) isExpr()     {}
func (*ParenExpr) isExpr()     {}

// Precedence of the binary operators that survive into the IR
var Precedence = map[string]int{
	"+": 1, "-": 1,
	"*": 2, "/": 2, "%": 2,
}
