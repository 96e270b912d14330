package ast

// ClassDecl represents a class declaration
// Example: "class Counter { increment(counter: CounterState, by: u64): Result { ... } }"
type ClassDecl struct {
	Pos        Position
	EndPos     Position
	Abstract   bool
	Name       Ident
	Extends    *TypeRef
	Implements []*TypeRef
	Members    []ClassMember
}

// Modifiers holds the keyword modifiers of a class member
// Example: "static", "private readonly"
type Modifiers struct {
	Public    bool
	Private   bool
	Protected bool
	Static    bool
	Readonly  bool
	Async     bool
}

// MethodMember represents a class method
// Example: "increment(counter: CounterState, by: u64): Result { counter.count += by; }"
type MethodMember struct {
	Pos       Position
	EndPos    Position
	Modifiers Modifiers
	Name      Ident
	Params    []*Param
	Return    *TypeRef
	Body      *Block
}

// PropertyMember represents a class property
// Example: "static PROGRAM_ID = new Pubkey(\"...\");", "count: u64;"
type PropertyMember struct {
	Pos       Position
	EndPos    Position
	Modifiers Modifiers
	Name      Ident
	Optional  bool
	Type      *TypeRef
	Value     Expr
}

// InterfaceDecl represents an interface declaration
// Example: "interface Counter extends Account { count: u64; }"
type InterfaceDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Extends []*TypeRef
	Members []InterfaceMember
}

// PropertySignature represents an interface property
// Example: "count: u64;", "owner?: Pubkey;"
type PropertySignature struct {
	Pos      Position
	EndPos   Position
	Readonly bool
	Name     Ident
	Optional bool
	Type     *TypeRef
}

// MethodSignature represents an interface method
// Example: "reset(): void;"
type MethodSignature struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Param
	Return *TypeRef
}

// TypeAliasDecl represents a type alias
// Example: "type Mode = \"open\" | \"closed\";"
type TypeAliasDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Types  []string
}

// EnumDecl represents an enum declaration
// Example: "enum Side { Buy, Sell }"
type EnumDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Members []Ident
}

// FunctionDecl represents a function declaration
// Example: "function helper(a: u64): u64 { return a; }"
type FunctionDecl struct {
	Pos    Position
	EndPos Position
	Async  bool
	Name   *Ident // nil for anonymous default exports
	Params []*Param
	Return *TypeRef
	Body   *Block
}

// VarDecl represents a variable declaration, at top level or inside a block
// Example: "const LIMIT = 10;", "let total: u64 = a + b;"
type VarDecl struct {
	Pos    Position
	EndPos Position
	Kind   string // const, let or var
	Name   Ident
	Type   *TypeRef
	Value  Expr
}

// ExprDecl represents a bare expression used as a declaration
// Example: "export default 42;"
type ExprDecl struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// Param represents a method or function parameter
// Example: "by: u64", "payer: Signer"
type Param struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Optional bool
	Type     *TypeRef
	Default  Expr
}

// TypeRef represents a type annotation
// Example: "u64", "Account", "Vec<u8>", "u8[]"
type TypeRef struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Generics []*TypeRef
	Array    bool
}

// Block represents a braced statement list
// Example: "{ counter.count += by; }"
type Block struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// ExprStmt represents an expression statement
// Example: "counter.derive([\"counter\"]);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// ReturnStmt represents a return statement
// Example: "return;", "return a;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil if plain `return;`
}
