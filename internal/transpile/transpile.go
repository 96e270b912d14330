package transpile

import (
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"
	"tsanchor/internal/ast"
	"tsanchor/internal/codegen"
	"tsanchor/internal/errors"
	"tsanchor/internal/extract"
	"tsanchor/internal/format"
	"tsanchor/internal/ir"
	"tsanchor/internal/parser"
	"tsanchor/internal/rust"
)

var log = commonlog.GetLogger("tsanchor.transpile")

// Options configures every stage of a translation
type Options struct {
	Extract   extract.Options
	Populate  ir.PopulateOptions
	Codegen   codegen.Options
	Formatter format.Formatter // nil means format.Builtin
}

// Result is everything one translation produced
type Result struct {
	Imports  []extract.Import
	Program  *ir.Program
	File     *rust.File
	Source   string // formatted Rust
	Warnings []errors.CompilerError
}

// SyntaxErrors is returned when the input does not parse
type SyntaxErrors []parser.ParseError

func (e SyntaxErrors) Error() string {
	lines := make([]string, len(e))
	for i, pe := range e {
		lines[i] = pe.Error()
	}
	return strings.Join(lines, "\n")
}

// Diagnostics returns the reportable errors behind err, or nil when err is
// not a translation error (I/O, formatter)
func Diagnostics(err error) []errors.CompilerError {
	if syntax, ok := err.(SyntaxErrors); ok {
		diags := make([]errors.CompilerError, len(syntax))
		for i, pe := range syntax {
			diags[i] = errors.Syntax(pe.Message, pe.Position, pe.Length)
		}
		return diags
	}
	if ce, ok := errors.AsCompilerError(err); ok {
		return []errors.CompilerError{ce}
	}
	return nil
}

// Translate runs extraction, population, emission and formatting over a
// parsed module. Each call owns all of its state.
func Translate(mod *ast.Module, opts Options) (*Result, error) {
	extracted, err := extract.Extract(mod, opts.Extract)
	if err != nil {
		return nil, err
	}

	program := ir.NewProgram(extracted.ProgramClass.Name.Value)
	program.Accounts = extracted.Accounts
	program.Types = extracted.Types
	if err := program.PopulateFromClass(extracted.ProgramClass, extracted.CustomTypes, opts.Populate); err != nil {
		return nil, err
	}

	file, err := codegen.Generate(program, opts.Codegen)
	if err != nil {
		return nil, err
	}

	formatter := opts.Formatter
	if formatter == nil {
		formatter = format.Builtin{}
	}
	source, err := formatter.Format(file.String())
	if err != nil {
		return nil, err
	}

	warnings := append(append([]errors.CompilerError(nil), extracted.Warnings...), program.Warnings...)
	log.Infof("translated %s: %d instructions, %d warnings", program.Name, len(program.Instructions), len(warnings))

	return &Result{
		Imports:  extracted.Imports,
		Program:  program,
		File:     file,
		Source:   source,
		Warnings: warnings,
	}, nil
}

// TranslateSource parses src and translates it
func TranslateSource(filename, src string, opts Options) (*Result, error) {
	mod, parseErrors := parser.ParseSource(filename, src)
	if len(parseErrors) > 0 {
		return nil, SyntaxErrors(parseErrors)
	}
	return Translate(mod, opts)
}

// TranslateFile translates input and writes the Rust source to output,
// replacing any existing file. Nothing is written when translation fails.
func TranslateFile(input, output string, opts Options) (*Result, error) {
	src, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	result, err := TranslateSource(input, string(src), opts)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(output, []byte(result.Source), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	log.Debugf("wrote %s", output)
	return result, nil
}
