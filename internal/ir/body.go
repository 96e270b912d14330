package ir

import (
	"fmt"
	"strings"
	"unicode"

	"tsanchor/internal/ast"
	"tsanchor/internal/errors"
	"tsanchor/internal/types"
)

// bodyScope lowers the statements of one instruction
type bodyScope struct {
	program   *Program
	ix        *Instruction
	stateName string
	state     *AccountBinding // created on first use of `this`
	locals    map[string]*LetStmt
	names     *nameSet // parameters, bindings and locals share one namespace
}

func newBodyScope(p *Program, ix *Instruction, stateName string) *bodyScope {
	return &bodyScope{
		program:   p,
		ix:        ix,
		stateName: stateName,
		locals:    make(map[string]*LetStmt),
		names:     newNameSet(handlerIdents),
	}
}

// finish puts the implicit state binding first when the body used it
func (s *bodyScope) finish() {
	if s.state != nil {
		s.ix.Accounts = append([]*AccountBinding{s.state}, s.ix.Accounts...)
	}
}

func (s *bodyScope) bindingNames() []string {
	names := make([]string, 0, len(s.ix.Accounts)+1)
	for _, b := range s.ix.Accounts {
		names = append(names, b.Name)
	}
	if s.state != nil {
		names = append(names, s.state.Name)
	}
	return names
}

func (s *bodyScope) binding(name string) *AccountBinding {
	if s.state != nil && s.state.Name == name {
		return s.state
	}
	return s.ix.Binding(name)
}

// stateBinding returns the implicit binding that `this` refers to
func (s *bodyScope) stateBinding(at ast.Node) (*AccountBinding, error) {
	if s.state != nil {
		return s.state, nil
	}
	if s.program.State == nil {
		return nil, errors.UnsupportedExpression("`this` used but the program class declares no fields", at.NodePos())
	}
	if s.ix.Binding(s.stateName) != nil || s.ix.Param(s.stateName) != nil {
		return nil, errors.DuplicateDeclaration("account", s.stateName, at.NodePos())
	}
	if err := s.names.claim("account", s.stateName, at.NodePos()); err != nil {
		return nil, err
	}
	s.state = &AccountBinding{
		Name:     s.stateName,
		Kind:     ProgramAccount,
		TypeName: s.program.State.Name,
		Derived:  true,
		Seeds:    []Seed{{Kind: SeedLiteral, Value: s.stateName}},
		Implicit: true,
	}
	return s.state, nil
}

// accountOf resolves the receiver of an account method or field access
func (s *bodyScope) accountOf(expr ast.Expr) (*AccountBinding, error) {
	switch e := expr.(type) {
	case *ast.ThisExpr:
		return s.stateBinding(e)
	case *ast.IdentExpr:
		if b := s.binding(e.Name); b != nil {
			return b, nil
		}
		return nil, errors.UnknownAccountBinding(e.Name, e.Pos, s.bindingNames())
	}
	return nil, errors.UnsupportedStatement(fmt.Sprintf("expected an account, found %s", expr.NodeType()), expr.NodePos())
}

func (s *bodyScope) lowerStmt(stmt ast.Stmt) error {
	switch st := stmt.(type) {
	case *ast.ReturnStmt:
		if st.Value != nil {
			return errors.UnsupportedStatement("instructions cannot return a value", st.Pos)
		}
		s.ix.Body = append(s.ix.Body, &ReturnStmt{})
		return nil

	case *ast.VarDecl:
		return s.lowerLocal(st)

	case *ast.ExprStmt:
		switch e := st.Expr.(type) {
		case *ast.AssignExpr:
			return s.lowerAssign(e)
		case *ast.CallExpr:
			return s.lowerConstraint(e)
		}
		return errors.UnsupportedStatement(fmt.Sprintf("%s used as a statement", st.Expr.NodeType()), st.Pos)
	}

	return errors.UnsupportedStatement(stmt.NodeType().String(), stmt.NodePos())
}

func (s *bodyScope) lowerLocal(decl *ast.VarDecl) error {
	name := decl.Name.Value
	if decl.Value == nil {
		return errors.UnsupportedStatement(fmt.Sprintf("local '%s' must be initialized", name), decl.Pos)
	}
	if s.locals[name] != nil || s.ix.Param(name) != nil || s.binding(name) != nil {
		return errors.DuplicateDeclaration("local", name, decl.Name.Pos)
	}
	if err := s.names.claim("local", name, decl.Name.Pos); err != nil {
		return err
	}

	value, err := s.lowerExpr(decl.Value)
	if err != nil {
		return err
	}

	let := &LetStmt{Name: name, Value: value}
	s.locals[name] = let
	s.ix.Body = append(s.ix.Body, let)
	return nil
}

var assignOps = map[string]bool{"=": true, "+=": true, "-=": true, "*=": true, "/=": true}

func (s *bodyScope) lowerAssign(e *ast.AssignExpr) error {
	if !assignOps[e.Op] {
		return errors.UnsupportedStatement(fmt.Sprintf("assignment operator %s", e.Op), e.Pos)
	}

	var target Expr
	switch t := e.Target.(type) {
	case *ast.MemberExpr:
		acct, err := s.accountOf(t.Object)
		if err != nil {
			return err
		}
		if err := s.checkField(acct, t.Property); err != nil {
			return err
		}
		acct.Mutable = true
		target = &FieldRef{Account: acct.Name, Field: t.Property.Value}

	case *ast.IdentExpr:
		let := s.locals[t.Name]
		if let == nil {
			if s.ix.Param(t.Name) != nil {
				return errors.UnsupportedStatement(fmt.Sprintf("cannot assign to parameter '%s'", t.Name), t.Pos)
			}
			return errors.UnsupportedStatement(fmt.Sprintf("assignment to undeclared '%s'", t.Name), t.Pos)
		}
		let.Mutable = true
		target = &LocalRef{Name: t.Name}

	default:
		return errors.UnsupportedStatement(fmt.Sprintf("cannot assign to %s", e.Target.NodeType()), e.Target.NodePos())
	}

	value, err := s.lowerExpr(e.Value)
	if err != nil {
		return err
	}

	s.ix.Body = append(s.ix.Body, &AssignStmt{Target: target, Op: e.Op, Value: value})
	return nil
}

func (s *bodyScope) checkField(acct *AccountBinding, prop ast.Ident) error {
	if acct.Kind != ProgramAccount {
		return errors.UnsupportedExpression(fmt.Sprintf("%s '%s' has no field '%s'", acct.Kind, acct.Name, prop.Value), prop.Pos)
	}
	record, ok := s.program.Record(acct.TypeName)
	if !ok || record.Field(prop.Value) == nil {
		return errors.UnsupportedExpression(fmt.Sprintf("account '%s' (%s) has no field '%s'", acct.Name, acct.TypeName, prop.Value), prop.Pos)
	}
	return nil
}

// lowerConstraint handles derive/init/initIfNeeded/close call chains
func (s *bodyScope) lowerConstraint(call *ast.CallExpr) error {
	callee, ok := call.Callee.(*ast.MemberExpr)
	if !ok {
		return errors.UnsupportedStatement(fmt.Sprintf("call to %s", call.Callee.String()), call.Pos)
	}

	method := callee.Property.Value
	switch method {
	case "derive":
		_, err := s.applyDerive(callee.Object, call)
		return err

	case "init", "initIfNeeded":
		var acct *AccountBinding
		var err error
		if inner, ok := callee.Object.(*ast.CallExpr); ok {
			innerCallee, ok := inner.Callee.(*ast.MemberExpr)
			if !ok || innerCallee.Property.Value != "derive" {
				return errors.UnsupportedStatement(fmt.Sprintf("%s must follow derive(...)", method), call.Pos)
			}
			acct, err = s.applyDerive(innerCallee.Object, inner)
		} else {
			acct, err = s.accountOf(callee.Object)
		}
		if err != nil {
			return err
		}
		if acct.Kind != ProgramAccount {
			return errors.UnsupportedStatement(fmt.Sprintf("cannot initialize %s '%s'", acct.Kind, acct.Name), call.Pos)
		}

		payer, err := s.accountArg(method, call)
		if err != nil {
			return err
		}
		payer.Mutable = true
		acct.Payer = payer.Name
		if method == "init" {
			acct.Init = true
		} else {
			acct.InitIfNeeded = true
		}
		return nil

	case "close":
		acct, err := s.accountOf(callee.Object)
		if err != nil {
			return err
		}
		if acct.Kind != ProgramAccount {
			return errors.UnsupportedStatement(fmt.Sprintf("cannot close %s '%s'", acct.Kind, acct.Name), call.Pos)
		}
		dest, err := s.accountArg(method, call)
		if err != nil {
			return err
		}
		dest.Mutable = true
		acct.Mutable = true
		acct.Close = dest.Name
		return nil
	}

	return errors.UnsupportedStatement(fmt.Sprintf("call to %s", call.Callee.String()), call.Pos)
}

// accountArg resolves the single account argument of init/close
func (s *bodyScope) accountArg(method string, call *ast.CallExpr) (*AccountBinding, error) {
	if len(call.Args) != 1 {
		return nil, errors.UnsupportedStatement(fmt.Sprintf("%s expects exactly one account argument", method), call.Pos)
	}
	id, ok := call.Args[0].(*ast.IdentExpr)
	if !ok {
		return nil, errors.UnsupportedStatement(fmt.Sprintf("%s expects an account name, found %s", method, call.Args[0].NodeType()), call.Args[0].NodePos())
	}
	acct := s.binding(id.Name)
	if acct == nil {
		return nil, errors.UnknownAccountBinding(id.Name, id.Pos, s.bindingNames())
	}
	return acct, nil
}

func (s *bodyScope) applyDerive(object ast.Expr, call *ast.CallExpr) (*AccountBinding, error) {
	acct, err := s.accountOf(object)
	if err != nil {
		return nil, err
	}
	if len(call.Args) != 1 {
		return nil, errors.UnsupportedStatement("derive expects one array of seeds", call.Pos)
	}
	list, ok := call.Args[0].(*ast.ArrayLit)
	if !ok {
		return nil, errors.UnsupportedStatement("derive expects an array literal of seeds", call.Args[0].NodePos())
	}

	seeds := make([]Seed, 0, len(list.Elements))
	for _, el := range list.Elements {
		seed, err := s.lowerSeed(el)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}

	acct.Derived = true
	acct.Seeds = seeds
	return acct, nil
}

func (s *bodyScope) lowerSeed(expr ast.Expr) (Seed, error) {
	switch e := expr.(type) {
	case *ast.StringLit:
		for _, r := range e.Value {
			if r > unicode.MaxASCII {
				return Seed{}, errors.UnsupportedExpression(fmt.Sprintf("seed %q is not ASCII", e.Value), e.Pos)
			}
		}
		return Seed{Kind: SeedLiteral, Value: e.Value}, nil
	case *ast.MemberExpr:
		if e.Property.Value == KeyProperty {
			acct, err := s.accountOf(e.Object)
			if err != nil {
				return Seed{}, err
			}
			return Seed{Kind: SeedAccountKey, Value: acct.Name}, nil
		}
	case *ast.IdentExpr:
		if p := s.ix.Param(e.Name); p != nil {
			if !p.Type.IsInteger() && !p.Type.IsPubkey() && !p.Type.IsString() {
				return Seed{}, errors.UnsupportedExpression(fmt.Sprintf("parameter '%s' of type %s cannot be a seed", e.Name, p.Type), e.Pos)
			}
			return Seed{Kind: SeedParam, Value: e.Name, Type: p.Type}, nil
		}
		if s.binding(e.Name) != nil {
			return Seed{}, errors.UnsupportedExpression(fmt.Sprintf("use %s.key to seed with an account", e.Name), e.Pos)
		}
		return Seed{}, errors.UnknownAccountBinding(e.Name, e.Pos, s.bindingNames())
	}
	return Seed{}, errors.UnsupportedExpression(fmt.Sprintf("seed %s", expr.String()), expr.NodePos())
}

var arithmeticMethods = map[string]string{
	"add": "+",
	"sub": "-",
	"mul": "*",
	"div": "/",
	"mod": "%",
}

func (s *bodyScope) lowerExpr(expr ast.Expr) (Expr, error) {
	switch e := expr.(type) {
	case *ast.IdentExpr:
		if s.locals[e.Name] != nil {
			return &LocalRef{Name: e.Name}, nil
		}
		if s.ix.Param(e.Name) != nil {
			return &ParamRef{Name: e.Name}, nil
		}
		if s.binding(e.Name) != nil {
			return nil, errors.UnsupportedExpression(fmt.Sprintf("account '%s' used as a value", e.Name), e.Pos)
		}
		return nil, errors.UnsupportedExpression(fmt.Sprintf("unknown identifier '%s'", e.Name), e.Pos)

	case *ast.NumberLit:
		raw := strings.TrimSuffix(e.Raw, "n")
		if strings.Contains(raw, ".") {
			return nil, errors.UnsupportedExpression("fractional literal "+e.Raw, e.Pos)
		}
		return &IntLit{Value: raw}, nil

	case *ast.StringLit:
		return &StringLit{Value: e.Value}, nil

	case *ast.BoolLit:
		return &BoolLit{Value: e.Value}, nil

	case *ast.ParenExpr:
		inner, err := s.lowerExpr(e.Value)
		if err != nil {
			return nil, err
		}
		return &ParenExpr{Value: inner}, nil

	case *ast.UnaryExpr:
		if e.Op != "-" && e.Op != "!" {
			return nil, errors.UnsupportedExpression("unary "+e.Op, e.Pos)
		}
		value, err := s.lowerExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if e.Op == "-" {
			if t, ok := s.typeOf(value); ok && t.IsInteger() && !t.IsSigned() {
				return nil, errors.UnsupportedExpression(fmt.Sprintf("cannot negate unsigned %s value %s", t, e.Value.String()), e.Pos)
			}
		}
		return &UnaryExpr{Op: e.Op, Value: value}, nil

	case *ast.BinaryExpr:
		if _, ok := Precedence[e.Op]; !ok {
			return nil, errors.UnsupportedExpression("operator "+e.Op, e.Pos)
		}
		return s.binary(e.Op, e.Left, e.Right)

	case *ast.NewExpr:
		name := e.Callee.Value
		t := types.PrimitiveType(name)
		if (t.IsInteger() || t.IsBool()) && len(e.Args) == 1 {
			return s.lowerExpr(e.Args[0])
		}
		return nil, errors.UnsupportedExpression(fmt.Sprintf("new %s(...)", name), e.Pos)

	case *ast.MemberExpr:
		return s.lowerMember(e)

	case *ast.CallExpr:
		if callee, ok := e.Callee.(*ast.MemberExpr); ok {
			if op, ok := arithmeticMethods[callee.Property.Value]; ok && len(e.Args) == 1 {
				return s.binary(op, callee.Object, e.Args[0])
			}
		}
		return nil, errors.UnsupportedExpression("call to "+e.Callee.String(), e.Pos)
	}

	return nil, errors.UnsupportedExpression(expr.NodeType().String(), expr.NodePos())
}

// typeOf returns the declared type behind an operand when it has one
func (s *bodyScope) typeOf(expr Expr) (types.Type, bool) {
	switch e := expr.(type) {
	case *ParamRef:
		if p := s.ix.Param(e.Name); p != nil {
			return p.Type, !p.Type.IsZero()
		}
	case *ParamFieldRef:
		if p := s.ix.Param(e.Param); p != nil {
			return s.fieldType(p.Type.Name, e.Field)
		}
	case *FieldRef:
		if b := s.binding(e.Account); b != nil {
			return s.fieldType(b.TypeName, e.Field)
		}
	case *LocalRef:
		if let := s.locals[e.Name]; let != nil {
			return s.typeOf(let.Value)
		}
	case *ParenExpr:
		return s.typeOf(e.Value)
	case *BinaryExpr:
		if t, ok := s.typeOf(e.Left); ok {
			return t, true
		}
		return s.typeOf(e.Right)
	}
	return types.Type{}, false
}

func (s *bodyScope) fieldType(record, field string) (types.Type, bool) {
	acct, ok := s.program.Record(record)
	if !ok {
		return types.Type{}, false
	}
	if f := acct.Field(field); f != nil {
		return f.Type, true
	}
	return types.Type{}, false
}

func (s *bodyScope) binary(op string, left, right ast.Expr) (Expr, error) {
	l, err := s.lowerExpr(left)
	if err != nil {
		return nil, err
	}
	r, err := s.lowerExpr(right)
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Op: op, Left: l, Right: r}, nil
}

func (s *bodyScope) lowerMember(e *ast.MemberExpr) (Expr, error) {
	if id, ok := e.Object.(*ast.IdentExpr); ok {
		if p := s.ix.Param(id.Name); p != nil {
			record, ok := s.program.Record(p.Type.Name)
			if !p.Type.IsCustom() || !ok || record.Field(e.Property.Value) == nil {
				return nil, errors.UnsupportedExpression(fmt.Sprintf("parameter '%s' has no field '%s'", id.Name, e.Property.Value), e.Property.Pos)
			}
			return &ParamFieldRef{Param: id.Name, Field: e.Property.Value}, nil
		}
	}

	acct, err := s.accountOf(e.Object)
	if err != nil {
		return nil, err
	}
	if e.Property.Value == KeyProperty {
		return &KeyRef{Account: acct.Name}, nil
	}
	if err := s.checkField(acct, e.Property); err != nil {
		return nil, err
	}
	return &FieldRef{Account: acct.Name, Field: e.Property.Value}, nil
}
