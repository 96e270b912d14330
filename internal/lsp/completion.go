package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"tsanchor/internal/ast"
	"tsanchor/internal/builtins"
	"tsanchor/internal/stdlib"
)

// completionItems lists framework types and methods, then the interfaces
// declared in module
func completionItems(module *ast.Module) []protocol.CompletionItem {
	lang := stdlib.GetModuleDefinition(stdlib.LangModule)
	items := make([]protocol.CompletionItem, 0, len(lang.Types)+len(lang.Functions))

	for _, name := range lang.SortedTypeNames() {
		kind := protocol.CompletionItemKindInterface
		detail := "framework type"
		if builtins.IsBuiltinType(name) {
			kind = protocol.CompletionItemKindTypeParameter
			detail = "primitive " + builtins.RustName(name)
		}
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   ptrItemKind(kind),
			Detail: ptrString(detail),
		})
	}

	for _, name := range lang.SortedFunctionNames() {
		fn := lang.Functions[name]
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   ptrItemKind(protocol.CompletionItemKindMethod),
			Detail: ptrString(fn.Detail),
		})
	}

	for _, name := range declaredInterfaces(module) {
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   ptrItemKind(protocol.CompletionItemKindStruct),
			Detail: ptrString("interface"),
		})
	}

	return items
}

func declaredInterfaces(module *ast.Module) []string {
	if module == nil {
		return nil
	}

	var names []string
	for _, item := range module.Items {
		var decl ast.Decl
		switch v := item.(type) {
		case *ast.ExportDecl:
			decl = v.Decl
		case *ast.StatementItem:
			decl = v.Decl
		}
		if iface, ok := decl.(*ast.InterfaceDecl); ok {
			names = append(names, iface.Name.Value)
		}
	}
	sort.Strings(names)
	return names
}

func ptrItemKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
