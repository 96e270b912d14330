package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"tsanchor/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning creates a new warning builder
func NewSemanticWarning(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, message)
	return b
}

// WithLabel points at a secondary span
func (b *SemanticErrorBuilder) WithLabel(pos ast.Position, length int, message string) *SemanticErrorBuilder {
	b.err.Labels = append(b.err.Labels, Label{Position: pos, Length: max(1, length), Message: message})
	return b
}

// WithCandidates lists the names that were in scope, sorted
func (b *SemanticErrorBuilder) WithCandidates(kind string, names []string) *SemanticErrorBuilder {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	b.err.Candidates = sorted
	b.err.CandidateKind = kind
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// AsCompilerError unwraps err into a CompilerError if it carries one
func AsCompilerError(err error) (CompilerError, bool) {
	var ce CompilerError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return CompilerError{}, false
}

// Syntax wraps a front-end parse failure so it can go through the reporter
func Syntax(message string, pos ast.Position, length int) CompilerError {
	return CompilerError{
		Level:    Error,
		Message:  message,
		Position: pos,
		Length:   max(1, length),
	}
}

// Module structure errors

// InvalidSyntax rejects a top-level item the translator cannot place
func InvalidSyntax(what string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("invalid syntax: cannot translate top-level %s", what)
	return NewSemanticError(ErrorInvalidSyntax, message, pos).
		WithHelp("top-level items must be imports, one `export default class` and exported interfaces").
		Build()
}

// InvalidIdentifier rejects a name that has no Rust spelling
func InvalidIdentifier(kind, name string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("invalid syntax: %s name '%s' cannot be used in the generated program", kind, name)
	return NewSemanticError(ErrorInvalidSyntax, message, pos).
		WithLength(max(1, len(name))).
		WithHelp("names may only contain ASCII letters, digits and underscores").
		Build()
}

// InvalidDefaultExport rejects a default export that is not a class
func InvalidDefaultExport(what string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("invalid default export: expected a class, found %s", what)
	return NewSemanticError(ErrorInvalidDefaultExport, message, pos).
		WithHelp("the default export is the program and must be a class").
		Build()
}

// MissingProgramClass reports a module with no default-exported class
func MissingProgramClass(filename string) CompilerError {
	return NewSemanticError(ErrorMissingProgramClass, "missing program class: no `export default class` found",
		ast.Position{Filename: filename, Line: 1, Column: 1}).
		WithSuggestion("add `export default class MyProgram { ... }`").
		Build()
}

// InvalidNamedExport rejects a named export that is not an interface
func InvalidNamedExport(what string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("invalid named export: expected an interface, found %s", what)
	return NewSemanticError(ErrorInvalidNamedExport, message, pos).
		WithHelp("only interfaces may be exported by name; they declare accounts and records").
		Build()
}

// InvalidInterfaceMember rejects an interface member that is not a plain typed field
func InvalidInterfaceMember(iface, member, reason string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("invalid interface member '%s.%s': %s", iface, member, reason)
	return NewSemanticError(ErrorInvalidInterfaceMember, message, pos).
		WithNote("interface members must be required fields of the form `name: Type;`").
		Build()
}

// Program errors

// UnresolvedType reports a type name that does not resolve
func UnresolvedType(name string, pos ast.Position, candidates []string) CompilerError {
	message := fmt.Sprintf("unresolved type '%s'", name)
	builder := NewSemanticError(ErrorUnresolvedType, message, pos).WithLength(max(1, len(name)))

	similar := findSimilarNames(name, candidates)
	if len(similar) > 0 {
		builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else {
		builder.WithSuggestion("declare it with `export interface " + name + " { ... }` or use a primitive type")
		if len(candidates) > 0 {
			builder.WithCandidates("types", candidates)
		}
	}
	return builder.Build()
}

// UnsupportedMember rejects a class member
func UnsupportedMember(name, reason string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("unsupported class member '%s': %s", name, reason)
	return NewSemanticError(ErrorUnsupportedMember, message, pos).
		WithLength(max(1, len(name))).
		Build()
}

// UnsupportedStatement rejects a statement inside an instruction body
func UnsupportedStatement(what string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("unsupported statement: %s", what)
	return NewSemanticError(ErrorUnsupportedStatement, message, pos).
		WithNote("instruction bodies support account constraints, assignments, const/let and `return;`").
		Build()
}

// UnsupportedExpression rejects an expression inside an instruction body
func UnsupportedExpression(what string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("unsupported expression: %s", what)
	return NewSemanticError(ErrorUnsupportedExpression, message, pos).Build()
}

// DuplicateDeclaration reports a second declaration of the same name
func DuplicateDeclaration(kind, name string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("duplicate declaration of %s '%s'", kind, name)
	return NewSemanticError(ErrorDuplicateDeclaration, message, pos).
		WithLength(max(1, len(name))).
		Build()
}

// NameCollision reports two source names that map to one Rust identifier
func NameCollision(kind, name, ident string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("%s '%s' collides with '%s' in the generated program", kind, name, ident)
	return NewSemanticError(ErrorDuplicateDeclaration, message, pos).
		WithLength(max(1, len(name))).
		WithHelp("rename it; names are compared after conversion to snake_case").
		Build()
}

// UnknownAccountBinding reports a reference to an account the instruction does not bind
func UnknownAccountBinding(name string, pos ast.Position, bindings []string) CompilerError {
	message := fmt.Sprintf("unknown account binding '%s'", name)
	builder := NewSemanticError(ErrorUnknownAccountBinding, message, pos).WithLength(max(1, len(name)))

	similar := findSimilarNames(name, bindings)
	if len(similar) > 0 {
		builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else if len(bindings) > 0 {
		builder.WithCandidates("accounts", bindings)
	} else {
		builder.WithSuggestion("add a parameter typed `Signer` or an account interface")
	}
	return builder.Build()
}

// CycleLink is one field on a record cycle: Record holds a field of type Target
type CycleLink struct {
	Record   string
	Target   string
	Position ast.Position
}

// RecursiveType reports a record that reaches itself through its fields.
// links carries the field of each step and becomes one label per field.
func RecursiveType(chain []string, pos ast.Position, links ...CycleLink) CompilerError {
	message := fmt.Sprintf("recursive type: %s", strings.Join(chain, " -> "))
	builder := NewSemanticError(ErrorRecursiveType, message, pos).
		WithHelp("records are serialized inline and cannot contain themselves")
	builder.err.Chain = append([]string(nil), chain...)
	for _, link := range links {
		builder.WithLabel(link.Position, len(link.Target), fmt.Sprintf("%s holds %s here", link.Record, link.Target))
	}
	return builder.Build()
}

// SkippedHelper warns that a private or protected method is not translated
func SkippedHelper(name string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("method '%s' is not public and is skipped", name)
	return NewSemanticWarning(WarningSkippedHelper, message, pos).
		WithLength(max(1, len(name))).
		Build()
}

// UnknownImport warns about an import the framework does not provide
func UnknownImport(message string, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningUnknownImport, message, pos).Build()
}

// MissingImport warns about a framework type the module never imports
func MissingImport(name string, pos ast.Position) CompilerError {
	message := fmt.Sprintf("'%s' is used but not imported", name)
	return NewSemanticWarning(WarningMissingImport, message, pos).
		WithLength(len(name)).
		WithSuggestion(fmt.Sprintf("add `import { %s } from \"@tsanchor/lang\";`", name)).
		Build()
}

// Unused reports a declared name nothing reads. kind is import, parameter or variable.
func Unused(kind, name string, pos ast.Position) CompilerError {
	code := WarningUnusedVariable
	switch kind {
	case "import":
		code = WarningUnusedImport
	case "parameter":
		code = WarningUnusedParameter
	}
	message := fmt.Sprintf("%s '%s' is never used", kind, name)
	builder := NewSemanticWarning(code, message, pos).WithLength(max(1, len(name)))
	if kind != "import" {
		builder = builder.WithHelp(fmt.Sprintf("prefix it with an underscore to silence this: _%s", name))
	}
	return builder.Build()
}

// Helper functions

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}
	sort.Strings(similar)

	return similar
}

// levenshteinDistance counts single-rune edits, substitutions included
func levenshteinDistance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptionsWithSub)
}
