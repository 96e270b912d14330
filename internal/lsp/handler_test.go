package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"tsanchor/internal/lsp"
	"tsanchor/internal/transpile"
)

const counterSource = `import { Account, u64 } from "@tsanchor/lang";

export interface Counter extends Account {
    count: u64;
}

export default class CounterProgram {
    increment(counter: Counter, by: u64) {
        counter.count += by;
    }
}
`

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) []protocol.Diagnostic {
	t.Helper()
	require.NotEmpty(t, r.published)
	return r.published[len(r.published)-1].Diagnostics
}

func writeDocument(t *testing.T, source string) (string, protocol.DocumentUri) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.ts")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path, "file://" + filepath.ToSlash(path)
}

func TestDiagnostics(t *testing.T) {
	handler := lsp.NewHandler(transpile.Options{})

	tests := []struct {
		name     string
		source   string
		code     string
		severity protocol.DiagnosticSeverity
		line     uint32
	}{
		{"clean", counterSource, "", 0, 0},
		{"missing class", "export interface A extends Account { x: u8; }\n", "E0003", protocol.DiagnosticSeverityError, 0},
		{"unresolved type", "export default class P {\n    run(x: Mystery) {\n        x.count = 1;\n    }\n}\n", "E0005", protocol.DiagnosticSeverityError, 1},
		{"skipped helper", "export default class P {\n    private helper() {}\n}\n", "W0001", protocol.DiagnosticSeverityWarning, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module, diagnostics := handler.Diagnostics("program.ts", tt.source)
			require.NotNil(t, module)
			if tt.code == "" {
				assert.Empty(t, diagnostics)
				return
			}
			require.Len(t, diagnostics, 1)
			d := diagnostics[0]
			require.NotNil(t, d.Code)
			assert.Equal(t, tt.code, d.Code.Value)
			assert.Equal(t, tt.severity, *d.Severity)
			assert.Equal(t, tt.line, d.Range.Start.Line)
		})
	}
}

func TestDiagnosticsIncludeUnusedSymbols(t *testing.T) {
	handler := lsp.NewHandler(transpile.Options{})
	source := "import { Signer } from \"@tsanchor/lang\";\nexport default class P {\n    run(by: u64) {}\n}\n"

	_, diagnostics := handler.Diagnostics("program.ts", source)
	require.Len(t, diagnostics, 2)
	assert.Equal(t, "W0003", diagnostics[0].Code.Value)
	assert.Equal(t, "W0004", diagnostics[1].Code.Value)
	assert.Equal(t, uint32(2), diagnostics[1].Range.Start.Line)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diagnostics[1].Severity)
}

func TestDiagnosticsForSyntaxErrors(t *testing.T) {
	handler := lsp.NewHandler(transpile.Options{})
	module, diagnostics := handler.Diagnostics("broken.ts", "export interface {")
	assert.Nil(t, module)
	require.NotEmpty(t, diagnostics)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diagnostics[0].Severity)
	assert.Nil(t, diagnostics[0].Code)
}

func TestOpenAndChangePublishDiagnostics(t *testing.T) {
	handler := lsp.NewHandler(transpile.Options{})
	rec := &recorder{}
	_, uri := writeDocument(t, counterSource)

	require.NoError(t, handler.TextDocumentDidOpen(rec.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "typescript", Text: counterSource},
	}))
	assert.Empty(t, rec.last(t))
	assert.Equal(t, uri, rec.published[0].URI)

	broken := "export interface Counter extends Account { count: u64; }\n"
	require.NoError(t, handler.TextDocumentDidChange(rec.context(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: broken}},
	}))
	diagnostics := rec.last(t)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "E0003", diagnostics[0].Code.Value)

	require.NoError(t, handler.TextDocumentDidClose(rec.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
}

func TestCompletion(t *testing.T) {
	handler := lsp.NewHandler(transpile.Options{})
	_, uri := writeDocument(t, counterSource)
	require.NoError(t, handler.TextDocumentDidOpen(&glsp.Context{}, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: counterSource},
	}))

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	labels := make(map[string]protocol.CompletionItemKind)
	for _, item := range list.Items {
		labels[item.Label] = *item.Kind
	}
	assert.Equal(t, protocol.CompletionItemKindInterface, labels["Signer"])
	assert.Equal(t, protocol.CompletionItemKindTypeParameter, labels["u64"])
	assert.Equal(t, protocol.CompletionItemKindMethod, labels["derive"])
	assert.Equal(t, protocol.CompletionItemKindStruct, labels["Counter"])
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewHandler(transpile.Options{})
	rec := &recorder{}
	_, uri := writeDocument(t, counterSource)

	tokens, err := handler.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.Empty(t, rec.last(t))

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 15)

	decl := []string{"declaration"}
	assertToken(t, &decoded[0], 1, 10, 7, "type", nil)
	assertToken(t, &decoded[1], 1, 19, 3, "type", nil)
	assertToken(t, &decoded[2], 3, 18, 7, "interface", decl)
	assertToken(t, &decoded[3], 3, 34, 7, "type", nil)
	assertToken(t, &decoded[4], 4, 5, 5, "property", decl)
	assertToken(t, &decoded[5], 4, 12, 3, "type", nil)
	assertToken(t, &decoded[6], 7, 22, 14, "class", decl)
	assertToken(t, &decoded[7], 8, 5, 9, "method", decl)
	assertToken(t, &decoded[8], 8, 15, 7, "parameter", decl)
	assertToken(t, &decoded[9], 8, 24, 7, "type", nil)
	assertToken(t, &decoded[10], 8, 33, 2, "parameter", decl)
	assertToken(t, &decoded[11], 8, 37, 3, "type", nil)
	assertToken(t, &decoded[12], 9, 9, 7, "variable", nil)
	assertToken(t, &decoded[13], 9, 17, 5, "property", nil)
	assertToken(t, &decoded[14], 9, 26, 2, "variable", nil)
}

func TestInitializeAdvertisesLegend(t *testing.T) {
	handler := lsp.NewHandler(transpile.Options{})
	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	semantic, ok := init.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, semantic.Legend.TokenTypes)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1,
			Char:      char + 1,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	t.Helper()
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
