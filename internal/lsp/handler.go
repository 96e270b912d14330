package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"tsanchor/internal/ast"
	"tsanchor/internal/errors"
	"tsanchor/internal/parser"
	"tsanchor/internal/semantic"
	"tsanchor/internal/transpile"
)

var log = commonlog.GetLogger("tsanchor.lsp")

// SemanticTokenTypes is the token legend advertised to clients
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"class",
	"interface",
	"function",
	"method",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"string",
	"operator",
	"modifier",
}

// SemanticTokenModifiers is the modifier legend advertised to clients
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// Handler implements the LSP server handlers for contract modules. Each
// document is parsed on open and change and run through the translator for
// diagnostics.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	modules map[string]*ast.Module
	opts    transpile.Options
}

// NewHandler creates a handler that translates with opts
func NewHandler(opts transpile.Options) *Handler {
	return &Handler{
		content: make(map[string]string),
		modules: make(map[string]*ast.Module),
		opts:    opts,
	}
}

// Initialize advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider:   ptrBool(false),
				TriggerCharacters: []string{"."},
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened document and publishes diagnostics
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)

	diagnostics, err := h.update(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return err
	}
	publish(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose forgets the document
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.modules, path)
	return nil
}

// TextDocumentDidChange reparses the document from the last full-text change
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := lastFullText(params.ContentChanges)
	if !ok {
		return nil
	}

	diagnostics, err := h.update(params.TextDocument.URI, text)
	if err != nil {
		return err
	}
	publish(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers framework symbols, primitive types and the
// interfaces declared in the document
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	module := h.modules[path]
	h.mu.RUnlock()

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(module),
	}, nil
}

// TextDocumentSemanticTokensFull returns semantic tokens for the whole document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, err
	}

	module, err := h.getOrLoad(ctx, path, rawURI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{Data: encodeTokens(collectSemanticTokens(module))}, nil
}

// Diagnostics parses and translates text, returning what an editor should show
func (h *Handler) Diagnostics(path, text string) (*ast.Module, []protocol.Diagnostic) {
	module, parseErrors := parser.ParseSource(path, text)
	if len(parseErrors) > 0 {
		return nil, ConvertParseErrors(parseErrors)
	}

	var diags []errors.CompilerError
	result, err := transpile.Translate(module, h.opts)
	if err != nil {
		diags = transpile.Diagnostics(err)
		if diags == nil {
			// formatter failures are not the document's fault
			log.Warningf("translating %s: %s", path, err.Error())
		}
	} else {
		diags = result.Warnings
	}

	diags = append(diags, semantic.NewAnalyzer().Analyze(module)...)
	return module, ConvertCompilerErrors(diags)
}

func (h *Handler) update(rawURI protocol.DocumentUri, text string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, err
	}

	module, diagnostics := h.Diagnostics(path, text)

	h.mu.Lock()
	h.content[path] = text
	if module != nil {
		h.modules[path] = module
	}
	h.mu.Unlock()

	return diagnostics, nil
}

func (h *Handler) getOrLoad(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) (*ast.Module, error) {
	h.mu.RLock()
	module, ok := h.modules[path]
	h.mu.RUnlock()
	if ok {
		return module, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	diagnostics, err := h.update(rawURI, string(content))
	if err != nil {
		return nil, err
	}
	publish(ctx, rawURI, diagnostics)

	h.mu.RLock()
	module = h.modules[path]
	h.mu.RUnlock()
	return module, nil
}

func lastFullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
