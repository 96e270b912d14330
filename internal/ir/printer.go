package ir

import (
	"fmt"
	"strings"
)

// Printer provides pretty-printing for IR
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new IR printer
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the string representation of an IR program
func Print(program *Program) string {
	p := NewPrinter()
	p.printProgram(program)
	return p.output.String()
}

// Helper methods

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

// printProgram prints the entire IR program
func (p *Printer) printProgram(program *Program) {
	p.writeLine("PROGRAM %s (mod %s)", program.Name, program.ModuleName)
	if program.ProgramID != "" {
		p.writeLine("ID %s", program.ProgramID)
	}
	p.writeLine("")

	if names := program.AccountNames(); len(names) > 0 {
		p.writeLine("ACCOUNTS:")
		p.indent++
		for _, name := range names {
			p.printRecord(program.Accounts[name])
		}
		p.indent--
		p.writeLine("")
	}

	if names := program.CustomTypeNames(); len(names) > 0 {
		p.writeLine("TYPES:")
		p.indent++
		for _, name := range names {
			p.printRecord(program.CustomTypes[name])
		}
		p.indent--
		p.writeLine("")
	}

	for _, ix := range program.Instructions {
		p.printInstruction(ix)
		p.writeLine("")
	}
}

func (p *Printer) printRecord(record *Account) {
	kind := "record"
	if record.IsAccount {
		kind = "account"
	}
	p.writeLine("%s %s", kind, record.Name)
	p.indent++
	for _, f := range record.Fields {
		p.writeLine("%s: %s", f.Name, f.Type)
	}
	p.indent--
}

func (p *Printer) printInstruction(ix *Instruction) {
	p.writeLine("INSTRUCTION %s", ix.Name)
	p.indent++

	if len(ix.Params) > 0 {
		p.writeLine("params:")
		p.indent++
		for _, param := range ix.Params {
			p.writeLine("%s: %s", param.Name, param.Type)
		}
		p.indent--
	}

	if len(ix.Accounts) > 0 {
		p.writeLine("accounts:")
		p.indent++
		for _, b := range ix.Accounts {
			p.writeLine("%s", bindingString(b))
		}
		p.indent--
	}

	if len(ix.Body) > 0 {
		p.writeLine("body:")
		p.indent++
		for _, stmt := range ix.Body {
			p.writeLine("%s", StmtString(stmt))
		}
		p.indent--
	}

	p.indent--
}

func bindingString(b *AccountBinding) string {
	var sb strings.Builder
	sb.WriteString(b.Name + ": " + b.Kind.String())
	if b.Kind == ProgramAccount {
		sb.WriteString("<" + b.TypeName + ">")
	}
	if b.Mutable {
		sb.WriteString(" mut")
	}
	if b.Init {
		sb.WriteString(" init")
	}
	if b.InitIfNeeded {
		sb.WriteString(" init_if_needed")
	}
	if b.Payer != "" {
		sb.WriteString(" payer=" + b.Payer)
	}
	if b.Derived {
		seeds := make([]string, len(b.Seeds))
		for i, s := range b.Seeds {
			seeds[i] = seedString(s)
		}
		sb.WriteString(" seeds=[" + strings.Join(seeds, ", ") + "]")
	}
	if b.Close != "" {
		sb.WriteString(" close=" + b.Close)
	}
	if b.Implicit {
		sb.WriteString(" (implicit)")
	}
	return sb.String()
}

func seedString(s Seed) string {
	switch s.Kind {
	case SeedLiteral:
		return fmt.Sprintf("%q", s.Value)
	case SeedAccountKey:
		return s.Value + ".key"
	default:
		return s.Value
	}
}

// StmtString renders an IR statement on one line
func StmtString(stmt Stmt) string {
	switch s := stmt.(type) {
	case *AssignStmt:
		return ExprString(s.Target) + " " + s.Op + " " + ExprString(s.Value)
	case *LetStmt:
		if s.Mutable {
			return "let mut " + s.Name + " = " + ExprString(s.Value)
		}
		return "let " + s.Name + " = " + ExprString(s.Value)
	case *ReturnStmt:
		return "return"
	}
	return "?"
}

// ExprString renders an IR expression
func ExprString(expr Expr) string {
	switch e := expr.(type) {
	case *ParamRef:
		return e.Name
	case *LocalRef:
		return e.Name
	case *FieldRef:
		return e.Account + "." + e.Field
	case *ParamFieldRef:
		return e.Param + "." + e.Field
	case *KeyRef:
		return e.Account + ".key"
	case *IntLit:
		return e.Value
	case *BoolLit:
		return fmt.Sprintf("%t", e.Value)
	case *StringLit:
		return fmt.Sprintf("%q", e.Value)
	case *BinaryExpr:
		return "(" + ExprString(e.Left) + " " + e.Op + " " + ExprString(e.Right) + ")"
	case *UnaryExpr:
		return e.Op + ExprString(e.Value)
	case *ParenExpr:
		return ExprString(e.Value)
	}
	return "?"
}
