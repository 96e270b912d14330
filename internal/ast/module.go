package ast

// Module represents a parsed source file: an ordered list of top-level items
// Example: "import { u64 } from \"@tsanchor/lang\"; export default class Counter { ... }"
type Module struct {
	Pos      Position
	EndPos   Position
	Filename string
	Items    []ModuleItem
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like class names, field names, parameter names
// Example: "Counter", "increment", "by"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// ImportDecl represents an import statement
// Example: "import lang, { Account, u64 as U64 } from \"@tsanchor/lang\";"
type ImportDecl struct {
	Pos       Position
	EndPos    Position
	Source    string // unquoted module specifier
	Default   *Ident
	Namespace *Ident
	Named     []*ImportSpecifier
}

// ImportSpecifier represents one named import
// Example: "Account", "u64 as U64"
type ImportSpecifier struct {
	Pos      Position
	EndPos   Position
	Imported Ident
	Local    Ident // equals Imported when there is no alias
}

// ExportDefaultDecl represents "export default <decl>"
// Example: "export default class Counter { ... }"
type ExportDefaultDecl struct {
	Pos    Position
	EndPos Position
	Decl   Decl
}

// ExportDecl represents a named export
// Example: "export interface Counter { count: u64 }"
type ExportDecl struct {
	Pos    Position
	EndPos Position
	Decl   Decl
}

// StatementItem represents a top-level declaration or expression that is not exported
// Example: "class Helper {}", "const x = 1;"
type StatementItem struct {
	Pos    Position
	EndPos Position
	Decl   Decl
}
