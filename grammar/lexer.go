package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ContractLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`, nil},

		// String literals, either quote style
		{"String", `"(\\.|[^"\\\n])*"|'(\\.|[^'\\\n])*'`, nil},

		// Numeric literals (hex, decimal with separators, bigint suffix)
		{"Number", `0[xX][0-9a-fA-F_]+n?|[0-9][0-9_]*(\.[0-9]+)?n?`, nil},

		// Keywords and Identifiers (order matters)
		{"Ident", `[a-zA-Z_$][a-zA-Z0-9_$]*`, nil},

		// Operators, longest first
		{"Operator", `(===|!==|\.\.\.|==|!=|<=|>=|&&|\|\||\+=|-=|\*=|/=|%=|=>|[-+*/%=<>!&|?])`, nil},

		// Punctuation (must come after operators)
		{"Punctuation", `[{}[\]():;,.@]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
