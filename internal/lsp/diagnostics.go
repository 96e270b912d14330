package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"tsanchor/internal/errors"
	"tsanchor/internal/parser"
)

const diagnosticSource = "tsanchor"

// ConvertParseErrors transforms parser errors into LSP diagnostics
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(parseErrors))
	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    span(parseErr.Position.Line, parseErr.Position.Column, parseErr.Length),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(diagnosticSource),
			Message:  parseErr.Message,
		})
	}
	return diagnostics
}

// ConvertCompilerErrors transforms translation errors and warnings into LSP
// diagnostics, keeping the error code
func ConvertCompilerErrors(compilerErrors []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(compilerErrors))
	for _, ce := range compilerErrors {
		severity := protocol.DiagnosticSeverityError
		if ce.Level == errors.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}

		line, column := ce.Position.Line, ce.Position.Column
		if line == 0 {
			// module-wide errors such as a missing program class
			line, column = 1, 1
		}

		diagnostic := protocol.Diagnostic{
			Range:    span(line, column, ce.Length),
			Severity: ptrSeverity(severity),
			Source:   ptrString(diagnosticSource),
			Message:  ce.Message,
		}
		if ce.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: ce.Code}
		}
		diagnostics = append(diagnostics, diagnostic)
	}
	return diagnostics
}

// span converts a 1-based line and column into a single-line LSP range
func span(line, column, length int) protocol.Range {
	if length <= 0 {
		length = 1
	}
	start := protocol.Position{Line: uint32(max(line-1, 0)), Character: uint32(max(column-1, 0))}
	end := start
	end.Character += uint32(length)
	return protocol.Range{Start: start, End: end}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
