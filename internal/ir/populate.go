package ir

import (
	"sort"

	"github.com/iancoleman/strcase"
	"tsanchor/internal/ast"
	"tsanchor/internal/errors"
	"tsanchor/internal/stdlib"
	"tsanchor/internal/types"
)

// DefaultStateBinding is the account name class fields are reached through
const DefaultStateBinding = "state"

// PopulateOptions tunes how a program class becomes instructions
type PopulateOptions struct {
	// StateBinding names the implicit account that holds class fields
	StateBinding string
	// StrictHelpers turns skipped private/protected methods into errors
	StrictHelpers bool
}

func (o PopulateOptions) stateBinding() string {
	if o.StateBinding == "" {
		return DefaultStateBinding
	}
	return o.StateBinding
}

// PopulateFromClass fills the program from the program class: program id,
// state account and one instruction per public method. customTypes is the
// record set the extractor collected; the first violation aborts.
func (p *Program) PopulateFromClass(class *ast.ClassDecl, customTypes map[string]*Account, opts PopulateOptions) error {
	if err := checkIdent("program", class.Name.Value, class.Name.Pos); err != nil {
		return err
	}
	p.Name = class.Name.Value
	p.ModuleName = strcase.ToSnake(class.Name.Value)
	if customTypes != nil {
		p.CustomTypes = customTypes
	}

	records := p.recordSet()
	if err := checkRecords(records); err != nil {
		return err
	}

	registry := p.Types
	if registry == nil {
		registry = types.NewTypeRegistry()
	}
	for name, acct := range records {
		registry.AddUserDefinedType(name, acct.IsAccount)
	}

	var methods []*ast.MethodMember
	var state *Account
	stateFields := newNameSet(nil)

	for _, member := range class.Members {
		switch m := member.(type) {
		case *ast.PropertyMember:
			if m.Modifiers.Static {
				if err := p.applyStatic(m); err != nil {
					return err
				}
				continue
			}
			if state == nil {
				state = &Account{Name: class.Name.Value + "State", IsAccount: true, Pos: m.Pos}
			}
			field, err := stateField(m, records)
			if err != nil {
				return err
			}
			if state.Field(field.Name) != nil {
				return errors.DuplicateDeclaration("field", field.Name, m.Name.Pos)
			}
			if err := stateFields.claim("field", field.Name, m.Name.Pos); err != nil {
				return err
			}
			state.Fields = append(state.Fields, field)

		case *ast.MethodMember:
			if err := checkMethodShape(m); err != nil {
				return err
			}
			if m.Modifiers.Private || m.Modifiers.Protected {
				if opts.StrictHelpers {
					return errors.UnsupportedMember(m.Name.Value, "non-public methods are not translated", m.Name.Pos)
				}
				warning := errors.SkippedHelper(m.Name.Value, m.Name.Pos)
				p.Warnings = append(p.Warnings, warning)
				log.Warningf("%s", warning.Error())
				continue
			}
			methods = append(methods, m)
		}
	}

	if state != nil {
		if _, taken := records[state.Name]; taken {
			return errors.DuplicateDeclaration("record", state.Name, state.Pos)
		}
		p.State = state
		p.Accounts[state.Name] = state
		registry.AddUserDefinedType(state.Name, true)
		log.Debugf("synthesized state account %s with %d fields", state.Name, len(state.Fields))
	}

	handlers := newNameSet(nil)
	for _, m := range methods {
		if p.Instruction(m.Name.Value) != nil {
			return errors.DuplicateDeclaration("instruction", m.Name.Value, m.Name.Pos)
		}
		if err := handlers.claim("instruction", m.Name.Value, m.Name.Pos); err != nil {
			return err
		}
		ix, err := p.buildInstruction(m, registry, opts)
		if err != nil {
			return err
		}
		if _, taken := p.Record(ix.ContextName()); taken {
			return errors.NameCollision("instruction", ix.Name, ix.ContextName(), m.Name.Pos)
		}
		p.Instructions = append(p.Instructions, ix)
		log.Debugf("instruction %s: %d params, %d accounts, %d statements",
			ix.Name, len(ix.Params), len(ix.Accounts), len(ix.Body))
	}

	return nil
}

// applyStatic handles `static PROGRAM_ID = new Pubkey("...")`
func (p *Program) applyStatic(m *ast.PropertyMember) error {
	if m.Name.Value != "PROGRAM_ID" {
		return errors.UnsupportedMember(m.Name.Value, "only PROGRAM_ID may be static", m.Name.Pos)
	}

	newExpr, ok := m.Value.(*ast.NewExpr)
	if ok && newExpr.Callee.Value == "Pubkey" && len(newExpr.Args) == 1 {
		if lit, ok := newExpr.Args[0].(*ast.StringLit); ok {
			p.ProgramID = lit.Value
			log.Debugf("program id %s", p.ProgramID)
			return nil
		}
	}

	return errors.UnsupportedMember(m.Name.Value, `expected new Pubkey("<base58 id>")`, m.Pos)
}

func stateField(m *ast.PropertyMember, records map[string]*Account) (*Field, error) {
	if m.Optional {
		return nil, errors.UnsupportedMember(m.Name.Value, "optional fields are not supported", m.Name.Pos)
	}
	if m.Value != nil {
		return nil, errors.UnsupportedMember(m.Name.Value, "field initializers are not supported; assign in an instruction", m.Name.Pos)
	}
	if m.Type == nil {
		return nil, errors.UnsupportedMember(m.Name.Value, "missing type annotation", m.Name.Pos)
	}
	if m.Name.Value == KeyProperty {
		return nil, errors.UnsupportedMember(m.Name.Value, "'key' is reserved for the account address", m.Name.Pos)
	}

	t := types.FromTypeRef(m.Type)
	if t.IsCustom() && records[t.Name] == nil {
		return nil, errors.UnresolvedType(t.Name, m.Type.Pos, sortedRecordNames(records))
	}

	return &Field{Name: m.Name.Value, Type: t, Pos: m.Pos}, nil
}

func checkMethodShape(m *ast.MethodMember) error {
	name := m.Name.Value
	switch {
	case name == "constructor":
		return errors.UnsupportedMember(name, "constructors are not supported; use an initialize instruction", m.Name.Pos)
	case m.Modifiers.Static:
		return errors.UnsupportedMember(name, "static methods are not supported", m.Name.Pos)
	case m.Modifiers.Async:
		return errors.UnsupportedMember(name, "async methods are not supported", m.Name.Pos)
	case m.Body == nil:
		return errors.UnsupportedMember(name, "method has no body", m.Name.Pos)
	}

	if m.Return != nil {
		ret := m.Return.Name.Value
		if (ret != "Result" && ret != "void") || len(m.Return.Generics) > 0 || m.Return.Array {
			return errors.UnsupportedMember(name, "instructions must return Result or void, not "+m.Return.String(), m.Return.Pos)
		}
	}
	return nil
}

func (p *Program) buildInstruction(m *ast.MethodMember, registry *types.TypeRegistry, opts PopulateOptions) (*Instruction, error) {
	ix := &Instruction{Name: m.Name.Value, Pos: m.Pos}
	uses := accountUses(m.Body)
	scope := newBodyScope(p, ix, opts.stateBinding())

	for _, param := range m.Params {
		name := param.Name.Value
		if ix.Param(name) != nil || ix.Binding(name) != nil {
			return nil, errors.DuplicateDeclaration("parameter", name, param.Name.Pos)
		}
		if param.Optional || param.Default != nil {
			return nil, errors.UnsupportedMember(ix.Name, "parameter '"+name+"' cannot be optional", param.Pos)
		}
		if param.Type == nil {
			return nil, errors.UnsupportedMember(ix.Name, "parameter '"+name+"' has no type annotation", param.Pos)
		}
		if err := scope.names.claim("parameter", name, param.Name.Pos); err != nil {
			return nil, err
		}

		binding, value, err := p.classifyParam(name, param.Type, registry, uses[name])
		if err != nil {
			return nil, err
		}
		if binding != nil {
			ix.Accounts = append(ix.Accounts, binding)
		} else {
			ix.Params = append(ix.Params, value)
		}
	}

	for _, stmt := range m.Body.Statements {
		if err := scope.lowerStmt(stmt); err != nil {
			return nil, err
		}
	}
	scope.finish()

	return ix, nil
}

// classifyParam decides whether a parameter is an account binding or a value.
// A plain record becomes an account when the body uses it as one; the record
// is then emitted as account state.
func (p *Program) classifyParam(name string, ref *ast.TypeRef, registry *types.TypeRegistry, usedAsAccount bool) (*AccountBinding, *Param, error) {
	t := types.FromTypeRef(ref)
	if t.IsPrimitive() {
		return nil, &Param{Name: name, Type: t}, nil
	}

	if kind, ok := registry.FrameworkKind(t.Name); ok {
		if p.Types != nil && !registry.IsImportedType(t.Name) {
			p.warnOnce(errors.MissingImport(t.Name, ref.Pos))
		}
		switch kind {
		case stdlib.KindSigner:
			return &AccountBinding{Name: name, Kind: SignerAccount}, nil, nil
		case stdlib.KindSystemAccount:
			return &AccountBinding{Name: name, Kind: SystemAccount}, nil, nil
		case stdlib.KindUncheckedAccount:
			return &AccountBinding{Name: name, Kind: UncheckedAccount}, nil, nil
		}
	}

	if registry.IsUserDefinedType(t.Name) {
		if registry.IsAccountType(t.Name) {
			return &AccountBinding{Name: name, Kind: ProgramAccount, TypeName: t.Name}, nil, nil
		}
		if usedAsAccount {
			record, _ := p.Record(t.Name)
			record.IsAccount = true
			registry.AddUserDefinedType(t.Name, true)
			log.Debugf("record %s bound as an account by '%s'", t.Name, name)
			return &AccountBinding{Name: name, Kind: ProgramAccount, TypeName: t.Name}, nil, nil
		}
		return nil, &Param{Name: name, Type: t}, nil
	}

	candidates := append(sortedRecordNames(p.recordSet()), "Signer", "SystemAccount", "UncheckedAccount")
	return nil, nil, errors.UnresolvedType(t.Name, ref.Pos, candidates)
}

func (p *Program) warnOnce(warning errors.CompilerError) {
	for _, w := range p.Warnings {
		if w.Code == warning.Code && w.Message == warning.Message {
			return
		}
	}
	p.Warnings = append(p.Warnings, warning)
	log.Warningf("%s", warning.Error())
}

// accountUses collects the names a method body treats as accounts: targets of
// field assignments and receivers of derive, init, initIfNeeded and close.
func accountUses(body *ast.Block) map[string]bool {
	uses := make(map[string]bool)
	if body == nil {
		return uses
	}
	for _, stmt := range body.Statements {
		es, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		switch e := es.Expr.(type) {
		case *ast.AssignExpr:
			if member, ok := e.Target.(*ast.MemberExpr); ok {
				if id, ok := member.Object.(*ast.IdentExpr); ok {
					uses[id.Name] = true
				}
			}
		case *ast.CallExpr:
			markConstraintReceiver(e, uses)
		}
	}
	return uses
}

func markConstraintReceiver(call *ast.CallExpr, uses map[string]bool) {
	callee, ok := call.Callee.(*ast.MemberExpr)
	if !ok {
		return
	}
	switch callee.Property.Value {
	case "derive", "init", "initIfNeeded", "close":
	default:
		return
	}
	switch obj := callee.Object.(type) {
	case *ast.IdentExpr:
		uses[obj.Name] = true
	case *ast.CallExpr:
		markConstraintReceiver(obj, uses)
	}
}

func (p *Program) recordSet() map[string]*Account {
	records := make(map[string]*Account, len(p.Accounts)+len(p.CustomTypes))
	for name, acct := range p.CustomTypes {
		records[name] = acct
	}
	for name, acct := range p.Accounts {
		records[name] = acct
	}
	return records
}

func sortedRecordNames(records map[string]*Account) []string {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
