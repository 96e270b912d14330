package rust

import "tsanchor/token"

// File is a Rust source file: an ordered list of items
type File struct {
	Items []Item
}

// Item is a top-level or module-level declaration
type Item interface {
	lower(s *token.Stream)
}

// Attribute is an outer attribute such as #[account(mut)] or #[doc = "..."]
type Attribute struct {
	Name  string
	Args  []Expr // nil renders without parentheses
	Value Expr   // set for name = value attributes
}

// Use is a use declaration
// Example: "use anchor_lang::prelude::*;"
type Use struct {
	Path []string
	Glob bool
}

// MacroItem is a macro invocation in item position
// Example: "declare_id!(\"...\");"
type MacroItem struct {
	Name string
	Args []Expr
}

// Module is an inline module
type Module struct {
	Attrs []Attribute
	Pub   bool
	Name  string
	Items []Item
}

// Fn is a function item
type Fn struct {
	Attrs  []Attribute
	Pub    bool
	Name   string
	Params []FnParam
	Return *Type
	Body   []Stmt
	Tail   Expr // trailing expression without a semicolon, may be nil
}

// FnParam is one function parameter
type FnParam struct {
	Name string
	Type Type
}

// Struct is a struct item with named fields
type Struct struct {
	Attrs    []Attribute
	Pub      bool
	Name     string
	Lifetime string // generic lifetime parameter without the quote, empty for none
	Fields   []StructField
}

// StructField is one named struct field
type StructField struct {
	Attrs []Attribute
	Pub   bool
	Name  string
	Type  Type
}

// Type is a Rust type path with optional lifetime and generic arguments
// Example: "u64", "Account<'info, Counter>", "Result<()>"
type Type struct {
	Path     []string
	Lifetime string
	Args     []Type
	Unit     bool
}

// Named returns a simple single-segment type
func Named(name string, args ...Type) Type {
	return Type{Path: []string{name}, Args: args}
}

// WithLifetime returns a single-segment type carrying a lifetime argument
func WithLifetime(name, lifetime string, args ...Type) Type {
	return Type{Path: []string{name}, Lifetime: lifetime, Args: args}
}

// UnitType is ()
func UnitType() Type {
	return Type{Unit: true}
}
