package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Module struct {
	Pos   lexer.Position
	Items []*Item `@@*`
}

type Item struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Import *Import      `  @@`
	Export *Export      `| @@`
	Other  *Declaration `| @@`
	Empty  bool         `| @";"`
}

type Ident struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

type Import struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Default   *Ident        `"import" [ @@ [ "," ] ]`
	Namespace *Ident        `[ "*" "as" @@ ]`
	Named     *NamedImports `[ @@ ]`
	Source    string        `[ "from" ] @String [ ";" ]`
}

type NamedImports struct {
	Open       bool               `@"{"`
	Specifiers []*ImportSpecifier `[ @@ { "," @@ } [ "," ] ] "}"`
}

type ImportSpecifier struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Imported Ident  `@@`
	Local    *Ident `[ "as" @@ ]`
}

type Export struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Default bool         `"export" [ @"default" ]`
	Decl    *Declaration `@@`
}

type Declaration struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Class     *Class     `  @@`
	Interface *Interface `| @@`
	TypeAlias *TypeAlias `| @@`
	Enum      *Enum      `| @@`
	Function  *Function  `| @@`
	Variable  *Variable  `| @@`
	Expr      *ExprStmt  `| @@`
}

type Class struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Abstract   bool           `[ @"abstract" ]`
	Name       Ident          `"class" @@`
	Extends    *TypeRef       `[ "extends" @@ ]`
	Implements []*TypeRef     `[ "implements" @@ { "," @@ } ]`
	Members    []*ClassMember `"{" @@* "}"`
}

type ClassMember struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Modifiers []string  `@( "public" | "private" | "protected" | "static" | "readonly" | "async" )*`
	Name      Ident     `@@`
	Optional  bool      `[ @"?" ]`
	Method    *Method   `( @@`
	Property  *Property `| @@ ) [ ";" ]`
}

type Method struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Params *ParamList `@@`
	Return *TypeRef   `[ ":" @@ ]`
	Body   *Block     `@@`
}

type Property struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Type   *TypeRef `[ ":" @@ ]`
	Value  *Expr    `[ "=" @@ ]`
}

type Interface struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Name    Ident              `"interface" @@`
	Extends []*TypeRef         `[ "extends" @@ { "," @@ } ]`
	Members []*InterfaceMember `"{" @@* "}"`
}

type InterfaceMember struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Readonly bool       `[ @"readonly" ]`
	Name     Ident      `@@`
	Optional bool       `[ @"?" ]`
	Params   *ParamList `[ @@ ]`
	Type     *TypeRef   `[ ":" @@ ] [ ";" | "," ]`
}

type TypeAlias struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   Ident        `"type" @@ "="`
	Types  []*TypeUnion `@@ { "|" @@ } [ ";" ]`
}

type TypeUnion struct {
	Literal *string  `  @String`
	Type    *TypeRef `| @@`
}

type Enum struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Name    Ident         `"enum" @@ "{"`
	Members []*EnumMember `[ @@ { "," @@ } [ "," ] ] "}"`
}

type EnumMember struct {
	Name  Ident `@@`
	Value *Expr `[ "=" @@ ]`
}

type Function struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Async  bool       `[ @"async" ]`
	Name   *Ident     `"function" [ @@ ]`
	Params *ParamList `@@`
	Return *TypeRef   `[ ":" @@ ]`
	Body   *Block     `@@`
}

type ParamList struct {
	Open   bool     `@"("`
	Params []*Param `[ @@ { "," @@ } [ "," ] ] ")"`
}

type Param struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Name     Ident    `@@`
	Optional bool     `[ @"?" ]`
	Type     *TypeRef `[ ":" @@ ]`
	Default  *Expr    `[ "=" @@ ]`
}

type TypeRef struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Name     Ident      `@@`
	Generics []*TypeRef `[ "<" @@ { "," @@ } ">" ]`
	Array    bool       `[ @"[" "]" ]`
}

type Variable struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Kind   string   `@( "const" | "let" | "var" )`
	Name   Ident    `@@`
	Type   *TypeRef `[ ":" @@ ]`
	Value  *Expr    `[ "=" @@ ] [ ";" ]`
}

type Block struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type Statement struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Return   *ReturnStmt `  @@`
	Variable *Variable   `| @@`
	Empty    bool        `| @";"`
	Expr     *ExprStmt   `| @@`
}

type ReturnStmt struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Keyword bool  `@"return"`
	Value   *Expr `[ @@ ] [ ";" ]`
}

type ExprStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Expr   *Expr `@@ [ ";" ]`
}

type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Binary `@@`
	Assign *string `[ @( "=" | "+=" | "-=" | "*=" | "/=" | "%=" )`
	Value  *Expr   `  @@ ]`
}

type Binary struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Head   *Unary      `@@`
	Ops    []*BinaryOp `@@*`
}

type BinaryOp struct {
	Pos      lexer.Position
	Operator string `@( "||" | "&&" | "===" | "!==" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "%" )`
	Right    *Unary `@@`
}

type Unary struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string   `( @( "!" | "-" | "+" )`
	Operand  *Unary   `  @@ )`
	Value    *Postfix `| @@`
}

type Postfix struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Primary *Primary     `@@`
	Ops     []*PostfixOp `@@*`
}

type PostfixOp struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Member *Ident     `  "." @@`
	Call   *Arguments `| @@`
	Index  *Expr      `| "[" @@ "]"`
}

type Arguments struct {
	Open bool    `@"("`
	Args []*Expr `[ @@ { "," @@ } [ "," ] ] ")"`
}

type Primary struct {
	Pos    lexer.Position
	EndPos lexer.Position
	New    *NewExpr  `  @@`
	Number *string   `| @Number`
	String *string   `| @String`
	Array  *ArrayLit `| @@`
	Ident  *string   `| @Ident`
	Parens *Expr     `| "(" @@ ")"`
}

type NewExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Callee Ident      `"new" @@`
	Args   *Arguments `[ @@ ]`
}

type ArrayLit struct {
	Open     bool    `@"["`
	Elements []*Expr `[ @@ { "," @@ } [ "," ] ] "]"`
}
