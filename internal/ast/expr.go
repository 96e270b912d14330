package ast

// IdentExpr represents an identifier reference
// Example: "by", "counter", "true"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// ThisExpr represents the "this" keyword
type ThisExpr struct {
	Pos    Position
	EndPos Position
}

// NumberLit represents a numeric literal as written
// Example: "100", "0xff", "1_000n"
type NumberLit struct {
	Pos    Position
	EndPos Position
	Raw    string
}

// StringLit represents an unquoted string literal
// Example: "\"vote\""
type StringLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// BoolLit represents "true" or "false"
type BoolLit struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// ArrayLit represents an array literal
// Example: "[\"vote\", user.key]"
type ArrayLit struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// MemberExpr represents property access
// Example: "counter.count", "this.total"
type MemberExpr struct {
	Pos      Position
	EndPos   Position
	Object   Expr
	Property Ident
}

// CallExpr represents a call
// Example: "counter.count.add(by)", "state.derive([\"vote\"])"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// IndexExpr represents element access
// Example: "items[0]"
type IndexExpr struct {
	Pos    Position
	EndPos Position
	Object Expr
	Index  Expr
}

// NewExpr represents a constructor call
// Example: "new u64(0)", "new Pubkey(\"...\")"
type NewExpr struct {
	Pos    Position
	EndPos Position
	Callee Ident
	Args   []Expr
}

// UnaryExpr represents a prefix operation
// Example: "-amount", "!flag"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// BinaryExpr represents a binary operation
// Example: "a + b", "count * 2"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// AssignExpr represents an assignment or compound assignment
// Example: "counter.count = 0", "counter.count += by"
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Target Expr
	Value  Expr
}

// ParenExpr represents a parenthesized expression
// Example: "(a + b)"
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}
