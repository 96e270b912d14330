package rust

// Expr is a Rust expression
type Expr interface {
	isExpr()
}

// Stmt is a statement inside a function body
type Stmt interface {
	isStmt()
}

// Path is a path expression
// Example: "by", "String::from"
type Path struct {
	Segments []string
}

// LitKind tells how a literal is rendered
type LitKind int

const (
	IntLit LitKind = iota
	BoolLit
	StrLit
	ByteStrLit
)

// Lit is a literal
type Lit struct {
	Kind  LitKind
	Value string // unquoted for strings
}

// Field is a field access
type Field struct {
	Recv Expr
	Name string
}

// MethodCall is a method call on a receiver
type MethodCall struct {
	Recv   Expr
	Method string
	Args   []Expr
}

// Call is a call of a path or expression
type Call struct {
	Func Expr
	Args []Expr
}

// MacroCall is a macro invocation in expression position
type MacroCall struct {
	Name string
	Args []Expr
}

// Binary is a binary operation; "=" is also used for attribute arguments
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

// Unary is a prefix operation
type Unary struct {
	Op    string
	Value Expr
}

// Paren is a parenthesized expression
type Paren struct {
	Value Expr
}

// Array is an array expression
type Array struct {
	Elements []Expr
}

// Tuple is a tuple expression; no elements renders as ()
type Tuple struct {
	Elements []Expr
}

// TypeArg wraps a type used where an expression is expected, e.g. #[instruction(by: u64)]
type TypeArg struct {
	Name string
	Type Type
}

func (*Path) isExpr()       {}
func (*Lit) isExpr()        {}
func (*Field) isExpr()      {}
func (*MethodCall) isExpr() {}
func (*Call) isExpr()       {}
func (*MacroCall) isExpr()  {}
func (*Binary) isExpr()     {}
func (*Unary) isExpr()      {}
func (*Paren) isExpr()      {}
func (*Array) isExpr()      {}
func (*Tuple) isExpr()      {}
func (*TypeArg) isExpr()    {}

// Let is a let binding
type Let struct {
	Mutable bool
	Name    string
	Value   Expr
}

// Assign is an assignment or compound assignment
type Assign struct {
	Target Expr
	Op     string
	Value  Expr
}

// ExprStmt is an expression followed by a semicolon
type ExprStmt struct {
	Expr Expr
}

// Return is a return statement
type Return struct {
	Value Expr // nil for bare return
}

func (*Let) isStmt()      {}
func (*Assign) isStmt()   {}
func (*ExprStmt) isStmt() {}
func (*Return) isStmt()   {}

// Ident is shorthand for a single-segment path
func Ident(name string) *Path {
	return &Path{Segments: []string{name}}
}

// PathOf builds a multi-segment path
func PathOf(segments ...string) *Path {
	return &Path{Segments: segments}
}

// Int builds an integer literal
func Int(value string) *Lit {
	return &Lit{Kind: IntLit, Value: value}
}

// Str builds a string literal
func Str(value string) *Lit {
	return &Lit{Kind: StrLit, Value: value}
}

// ByteStr builds a byte string literal
func ByteStr(value string) *Lit {
	return &Lit{Kind: ByteStrLit, Value: value}
}

// Bool builds a boolean literal
func Bool(value bool) *Lit {
	if value {
		return &Lit{Kind: BoolLit, Value: "true"}
	}
	return &Lit{Kind: BoolLit, Value: "false"}
}

// Meta builds an attribute argument of the form name = value
func Meta(name string, value Expr) *Binary {
	return &Binary{Op: "=", Left: Ident(name), Right: value}
}
