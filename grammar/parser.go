package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var parser = buildParser()

func buildParser() *participle.Parser[Module] {
	p, err := participle.Build[Module](
		participle.Lexer(ContractLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

// ParseString parses module source. Errors are participle.Error values
// carrying the offending position.
func ParseString(filename, source string) (*Module, error) {
	return parser.ParseString(filename, source)
}
