package parser

import (
	"tsanchor/grammar"
	"tsanchor/internal/ast"
)

var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "===": 3, "!==": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func (l *lowerer) lowerExpr(e *grammar.Expr) ast.Expr {
	left := l.lowerBinary(e.Left)
	if e.Assign == nil {
		return left
	}

	value := l.lowerExpr(e.Value)
	return &ast.AssignExpr{
		Pos:    left.NodePos(),
		EndPos: value.NodeEndPos(),
		Op:     *e.Assign,
		Target: left,
		Value:  value,
	}
}

// opCursor walks the flat operator list of a grammar.Binary.
type opCursor struct {
	ops  []*grammar.BinaryOp
	next int
}

func (c *opCursor) peek() (*grammar.BinaryOp, int, bool) {
	if c.next >= len(c.ops) {
		return nil, 0, false
	}
	op := c.ops[c.next]
	return op, binaryPrecedence[op.Operator], true
}

func (l *lowerer) lowerBinary(b *grammar.Binary) ast.Expr {
	cursor := &opCursor{ops: b.Ops}
	return l.climb(l.lowerUnary(b.Head), cursor, 1)
}

// climb folds operators of precedence >= minPrec into left, binding tighter
// operators to the right operand first. All operators are left associative.
func (l *lowerer) climb(left ast.Expr, c *opCursor, minPrec int) ast.Expr {
	for {
		op, prec, ok := c.peek()
		if !ok || prec < minPrec {
			return left
		}
		c.next++

		right := l.lowerUnary(op.Right)
		for {
			_, nextPrec, ok := c.peek()
			if !ok || nextPrec <= prec {
				break
			}
			right = l.climb(right, c, prec+1)
		}

		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Operator,
			Left:   left,
			Right:  right,
		}
	}
}

func (l *lowerer) lowerUnary(u *grammar.Unary) ast.Expr {
	if u.Operand != nil {
		value := l.lowerUnary(u.Operand)
		return &ast.UnaryExpr{
			Pos:    l.pos(u.Pos),
			EndPos: value.NodeEndPos(),
			Op:     u.Operator,
			Value:  value,
		}
	}
	return l.lowerPostfix(u.Value)
}

func (l *lowerer) lowerPostfix(p *grammar.Postfix) ast.Expr {
	expr := l.lowerPrimary(p.Primary)
	start := expr.NodePos()

	for _, op := range p.Ops {
		end := l.pos(op.EndPos)
		switch {
		case op.Member != nil:
			expr = &ast.MemberExpr{Pos: start, EndPos: end, Object: expr, Property: l.ident(*op.Member)}
		case op.Call != nil:
			expr = &ast.CallExpr{Pos: start, EndPos: end, Callee: expr, Args: l.lowerExprList(op.Call.Args)}
		case op.Index != nil:
			expr = &ast.IndexExpr{Pos: start, EndPos: end, Object: expr, Index: l.lowerExpr(op.Index)}
		}
	}

	return expr
}

func (l *lowerer) lowerPrimary(p *grammar.Primary) ast.Expr {
	pos, end := l.pos(p.Pos), l.pos(p.EndPos)

	switch {
	case p.New != nil:
		expr := &ast.NewExpr{Pos: pos, EndPos: end, Callee: l.ident(p.New.Callee)}
		if p.New.Args != nil {
			expr.Args = l.lowerExprList(p.New.Args.Args)
		}
		return expr
	case p.Number != nil:
		return &ast.NumberLit{Pos: pos, EndPos: end, Raw: *p.Number}
	case p.String != nil:
		return &ast.StringLit{Pos: pos, EndPos: end, Value: l.unquote(p.Pos, *p.String)}
	case p.Array != nil:
		return &ast.ArrayLit{Pos: pos, EndPos: end, Elements: l.lowerExprList(p.Array.Elements)}
	case p.Ident != nil:
		switch *p.Ident {
		case "true":
			return &ast.BoolLit{Pos: pos, EndPos: end, Value: true}
		case "false":
			return &ast.BoolLit{Pos: pos, EndPos: end, Value: false}
		case "this":
			return &ast.ThisExpr{Pos: pos, EndPos: end}
		}
		return &ast.IdentExpr{Pos: pos, EndPos: end, Name: *p.Ident}
	case p.Parens != nil:
		return &ast.ParenExpr{Pos: pos, EndPos: end, Value: l.lowerExpr(p.Parens)}
	}

	l.errorAt(p.Pos, "expected an expression")
	return &ast.IdentExpr{Pos: pos, EndPos: end}
}

func (l *lowerer) lowerExprList(exprs []*grammar.Expr) []ast.Expr {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]ast.Expr, len(exprs))
	for i, e := range exprs {
		out[i] = l.lowerExpr(e)
	}
	return out
}
