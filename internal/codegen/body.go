package codegen

import (
	"tsanchor/internal/ir"
	"tsanchor/internal/rust"
)

func (g *generator) stmt(stmt ir.Stmt) rust.Stmt {
	switch s := stmt.(type) {
	case *ir.AssignStmt:
		return &rust.Assign{Target: g.expr(s.Target), Op: s.Op, Value: g.expr(s.Value)}
	case *ir.LetStmt:
		return &rust.Let{Mutable: s.Mutable, Name: snake(s.Name), Value: g.expr(s.Value)}
	case *ir.ReturnStmt:
		return &rust.Return{Value: okUnit()}
	}
	panic("codegen: unknown statement")
}

func accounts() rust.Expr {
	return &rust.Field{Recv: rust.Ident("ctx"), Name: "accounts"}
}

func (g *generator) expr(expr ir.Expr) rust.Expr {
	switch e := expr.(type) {
	case *ir.ParamRef:
		return rust.Ident(snake(e.Name))
	case *ir.LocalRef:
		return rust.Ident(snake(e.Name))
	case *ir.FieldRef:
		acct := &rust.Field{Recv: accounts(), Name: snake(e.Account)}
		return &rust.Field{Recv: acct, Name: snake(e.Field)}
	case *ir.ParamFieldRef:
		return &rust.Field{Recv: rust.Ident(snake(e.Param)), Name: snake(e.Field)}
	case *ir.KeyRef:
		acct := &rust.Field{Recv: accounts(), Name: snake(e.Account)}
		return &rust.MethodCall{Recv: acct, Method: "key"}
	case *ir.IntLit:
		return rust.Int(e.Value)
	case *ir.BoolLit:
		return rust.Bool(e.Value)
	case *ir.StringLit:
		return &rust.Call{Func: rust.PathOf("String", "from"), Args: []rust.Expr{rust.Str(e.Value)}}
	case *ir.ParenExpr:
		return g.expr(e.Value)
	case *ir.UnaryExpr:
		value := g.expr(e.Value)
		if _, ok := unparen(e.Value).(*ir.BinaryExpr); ok {
			value = &rust.Paren{Value: value}
		}
		return &rust.Unary{Op: e.Op, Value: value}
	case *ir.BinaryExpr:
		return &rust.Binary{
			Op:    e.Op,
			Left:  g.operand(e.Left, e.Op, false),
			Right: g.operand(e.Right, e.Op, true),
		}
	}
	panic("codegen: unknown expression")
}

// operand wraps a nested binary operand in parentheses when it binds looser
// than its parent, or equally tight on the right-hand side
func (g *generator) operand(expr ir.Expr, parentOp string, right bool) rust.Expr {
	value := g.expr(expr)
	inner, ok := unparen(expr).(*ir.BinaryExpr)
	if !ok {
		return value
	}
	innerPrec, parentPrec := ir.Precedence[inner.Op], ir.Precedence[parentOp]
	if innerPrec < parentPrec || (right && innerPrec == parentPrec) {
		return &rust.Paren{Value: value}
	}
	return value
}

func unparen(expr ir.Expr) ir.Expr {
	for {
		p, ok := expr.(*ir.ParenExpr)
		if !ok {
			return expr
		}
		expr = p.Value
	}
}
