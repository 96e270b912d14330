package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tsanchor/internal/ast"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := `export default class Counter {
    increment(counter: Countr, by: u64): Result {
        counter.count += by;
    }
}`

	reporter := NewErrorReporter("counter.ts", source)

	err := UnresolvedType("Countr", ast.Position{Line: 2, Column: 24}, []string{"Counter", "Vote"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUnresolvedType+"]")
	assert.Contains(t, formatted, "unresolved type")
	assert.Contains(t, formatted, "counter.ts:2:24")
	assert.Contains(t, formatted, "did you mean 'Counter'")
	assert.Contains(t, formatted, "^^^^^^")
}

func TestCompilerErrorIsError(t *testing.T) {
	pos := ast.Position{Filename: "vote.ts", Line: 3, Column: 1}
	var err error = InvalidNamedExport("type alias", pos)

	assert.Equal(t, "vote.ts:3:1: error[E0004]: invalid named export: expected an interface, found type alias", err.Error())

	wrapped := fmt.Errorf("translate: %w", err)
	ce, ok := AsCompilerError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorInvalidNamedExport, ce.Code)

	_, ok = AsCompilerError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestRequiredMessages(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	assert.Contains(t, MissingProgramClass("a.ts").Message, "missing program class")
	assert.Contains(t, InvalidDefaultExport("function", pos).Message, "invalid default export")
	assert.Contains(t, InvalidNamedExport("enum", pos).Message, "invalid named export")
	assert.Contains(t, UnresolvedType("Foo", pos, nil).Message, "unresolved type")
	assert.Contains(t, InvalidSyntax("class declaration", pos).Message, "invalid syntax")
}

func TestErrorCodes(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	cases := []struct {
		err  CompilerError
		code string
	}{
		{InvalidSyntax("const", pos), ErrorInvalidSyntax},
		{InvalidDefaultExport("number literal", pos), ErrorInvalidDefaultExport},
		{MissingProgramClass("x.ts"), ErrorMissingProgramClass},
		{InvalidNamedExport("enum", pos), ErrorInvalidNamedExport},
		{UnresolvedType("T", pos, nil), ErrorUnresolvedType},
		{UnsupportedMember("constructor", "constructors are not supported", pos), ErrorUnsupportedMember},
		{UnsupportedStatement("if", pos), ErrorUnsupportedStatement},
		{DuplicateDeclaration("instruction", "vote", pos), ErrorDuplicateDeclaration},
		{UnknownAccountBinding("payer", pos, nil), ErrorUnknownAccountBinding},
		{InvalidInterfaceMember("Vote", "reset", "method signatures are not fields", pos), ErrorInvalidInterfaceMember},
		{RecursiveType([]string{"A", "B", "A"}, pos), ErrorRecursiveType},
		{UnsupportedExpression("call", pos), ErrorUnsupportedExpression},
		{InvalidIdentifier("parameter", "$x", pos), ErrorInvalidSyntax},
		{NameCollision("parameter", "fooBar", "foo_bar", pos), ErrorDuplicateDeclaration},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code, tc.err.Message)
		assert.Equal(t, Error, tc.err.Level)
		assert.NotEqual(t, "Unknown error code", GetErrorDescription(tc.code))
	}
}

func TestUnknownAccountBindingSuggestions(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	err := UnknownAccountBinding("usr", pos, []string{"user", "vote"})
	require.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0], "did you mean 'user'")
	assert.Empty(t, err.Candidates)

	err = UnknownAccountBinding("payer", pos, []string{"vote", "authority"})
	assert.Empty(t, err.Suggestions)
	assert.Equal(t, []string{"authority", "vote"}, err.Candidates)
	assert.Equal(t, "accounts", err.CandidateKind)

	source := "export default class P {\n    run(vote: Vote, authority: Signer) { vote.init(payer); }\n}"
	formatted := NewErrorReporter("p.ts", source).FormatError(UnknownAccountBinding("payer", ast.Position{Line: 2, Column: 52}, []string{"vote", "authority"}))
	assert.Contains(t, formatted, "= accounts in scope: authority, vote\n")
	assert.Contains(t, formatted, "\n   │ "+strings.Repeat(" ", 51)+"^^^^^\n")
}

func TestRecursiveTypeMessage(t *testing.T) {
	err := RecursiveType([]string{"Node", "Child", "Node"}, ast.Position{Line: 4, Column: 2})
	assert.Equal(t, "recursive type: Node -> Child -> Node", err.Message)
	assert.Equal(t, []string{"Node", "Child", "Node"}, err.Chain)
	assert.Empty(t, err.Labels)
}

func TestRecursiveTypeRendering(t *testing.T) {
	source := `export interface Node {
    child: Child;
}
export interface Child {
    parent: Node;
}`
	err := RecursiveType([]string{"Node", "Child", "Node"}, ast.Position{Filename: "tree.ts", Line: 1, Column: 1},
		CycleLink{Record: "Node", Target: "Child", Position: ast.Position{Line: 2, Column: 12}},
		CycleLink{Record: "Child", Target: "Node", Position: ast.Position{Line: 5, Column: 13}},
	)
	require.Len(t, err.Labels, 2)
	assert.Equal(t, 5, err.Labels[0].Length)

	formatted := NewErrorReporter("fallback.ts", source).FormatError(err)
	assert.Contains(t, formatted, "error[E0011]: recursive type: Node -> Child -> Node\n")
	assert.Contains(t, formatted, "   --> tree.ts:1:1\n")
	assert.Contains(t, formatted, "   ::: fallback.ts:2:12\n")
	assert.Contains(t, formatted, "           ----- Node holds Child here\n")
	assert.Contains(t, formatted, "   ::: fallback.ts:5:13\n")
	assert.Contains(t, formatted, "            ---- Child holds Node here\n")
	assert.Contains(t, formatted, "   = cycle: Node\n")
	assert.Contains(t, formatted, "      └─ Child\n")
	assert.Contains(t, formatted, "         └─ Node\n")
	assert.Contains(t, formatted, "   = help: records are serialized inline")
}

func TestWarningFormatting(t *testing.T) {
	source := `    private helper() {}`
	reporter := NewErrorReporter("test.ts", source)

	err := SkippedHelper("helper", ast.Position{Line: 1, Column: 13})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning[W0001]")
	assert.Contains(t, formatted, "is skipped")
	assert.True(t, IsWarning(err.Code))
	assert.Equal(t, "Warning", GetErrorCategory(err.Code))

	missing := MissingImport("Signer", ast.Position{Line: 1, Column: 1})
	assert.Equal(t, WarningMissingImport, missing.Code)
	assert.Equal(t, Warning, missing.Level)
	assert.Equal(t, "'Signer' is used but not imported", missing.Message)
}

func TestMarkerFollowsTabs(t *testing.T) {
	assert.Equal(t, "    ", markerIndent("let variable = value;", 5))
	assert.Equal(t, "\t\t  ", markerIndent("\t\tx = y;", 5))
	assert.Equal(t, "", markerIndent("x", 0))

	source := "class P {\n\trun(a: Mystery) {}\n}"
	formatted := NewErrorReporter("tabs.ts", source).FormatError(UnresolvedType("Mystery", ast.Position{Line: 2, Column: 9}, nil))
	lines := strings.Split(formatted, "\n")
	var marker string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			marker = line
		}
	}
	assert.Equal(t, "   │ \t       ^^^^^^^", marker)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"balance", "amount", "total", "balanceOf", "xyz"}

	similar := findSimilarNames("balace", candidates)
	assert.Contains(t, similar, "balance")
	assert.NotContains(t, similar, "xyz")

	similar = findSimilarNames("verydifferent", candidates)
	assert.Empty(t, similar)
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("test.ts", `test`)
	pos := ast.Position{Line: 1, Column: 1}

	errorFormatted := reporter.FormatError(CompilerError{Level: Error, Message: "test error", Position: pos})
	warningFormatted := reporter.FormatError(CompilerError{Level: Warning, Message: "test warning", Position: pos})

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")

	syntax := Syntax("unexpected token", pos, 0)
	assert.Equal(t, 1, syntax.Length)
	assert.Contains(t, reporter.FormatError(syntax), "error: unexpected token")
}
