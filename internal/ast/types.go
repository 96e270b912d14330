package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Module
	MODULE
	IDENT

	// Top-level items
	IMPORT_DECL
	IMPORT_SPECIFIER
	EXPORT_DEFAULT_DECL
	EXPORT_DECL
	STATEMENT_ITEM

	// Declarations
	CLASS_DECL
	INTERFACE_DECL
	TYPE_ALIAS_DECL
	ENUM_DECL
	FUNCTION_DECL
	VAR_DECL
	EXPR_DECL

	// Members
	METHOD_MEMBER
	PROPERTY_MEMBER
	PROPERTY_SIGNATURE
	METHOD_SIGNATURE
	PARAM

	// Types
	TYPE_REF

	// Statements
	BLOCK
	EXPR_STMT
	RETURN_STMT

	// Expressions
	IDENT_EXPR
	THIS_EXPR
	NUMBER_LIT
	STRING_LIT
	BOOL_LIT
	ARRAY_LIT
	MEMBER_EXPR
	CALL_EXPR
	INDEX_EXPR
	NEW_EXPR
	UNARY_EXPR
	BINARY_EXPR
	ASSIGN_EXPR
	PAREN_EXPR
)

var nodeTypeNames = map[NodeType]string{
	ILLEGAL:             "illegal",
	MODULE:              "module",
	IDENT:               "identifier",
	IMPORT_DECL:         "import declaration",
	IMPORT_SPECIFIER:    "import specifier",
	EXPORT_DEFAULT_DECL: "default export",
	EXPORT_DECL:         "export declaration",
	STATEMENT_ITEM:      "statement",
	CLASS_DECL:          "class declaration",
	INTERFACE_DECL:      "interface declaration",
	TYPE_ALIAS_DECL:     "type alias",
	ENUM_DECL:           "enum declaration",
	FUNCTION_DECL:       "function declaration",
	VAR_DECL:            "variable declaration",
	EXPR_DECL:           "expression",
	METHOD_MEMBER:       "method",
	PROPERTY_MEMBER:     "property",
	PROPERTY_SIGNATURE:  "property signature",
	METHOD_SIGNATURE:    "method signature",
	PARAM:               "parameter",
	TYPE_REF:            "type reference",
	BLOCK:               "block",
	EXPR_STMT:           "expression statement",
	RETURN_STMT:         "return statement",
	IDENT_EXPR:          "identifier",
	THIS_EXPR:           "this",
	NUMBER_LIT:          "number literal",
	STRING_LIT:          "string literal",
	BOOL_LIT:            "boolean literal",
	ARRAY_LIT:           "array literal",
	MEMBER_EXPR:         "member access",
	CALL_EXPR:           "call",
	INDEX_EXPR:          "index expression",
	NEW_EXPR:            "new expression",
	UNARY_EXPR:          "unary expression",
	BINARY_EXPR:         "binary expression",
	ASSIGN_EXPR:         "assignment",
	PAREN_EXPR:          "parenthesized expression",
}

// String returns a human readable name used in diagnostics
func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
