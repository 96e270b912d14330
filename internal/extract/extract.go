package extract

import (
	"fmt"

	"github.com/tliron/commonlog"
	"tsanchor/internal/ast"
	"tsanchor/internal/errors"
	"tsanchor/internal/ir"
	"tsanchor/internal/types"
)

var log = commonlog.GetLogger("tsanchor.extract")

// DuplicatePolicy decides what a repeated program class or interface name does
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the declaration visited last
	DuplicateOverwrite DuplicatePolicy = iota
	// DuplicateStrict rejects the second declaration with E0008
	DuplicateStrict
)

func (p DuplicatePolicy) String() string {
	if p == DuplicateStrict {
		return "strict"
	}
	return "overwrite"
}

// ParseDuplicatePolicy maps a configuration value to a policy
func ParseDuplicatePolicy(value string) (DuplicatePolicy, error) {
	switch value {
	case "", "overwrite":
		return DuplicateOverwrite, nil
	case "strict":
		return DuplicateStrict, nil
	}
	return DuplicateOverwrite, fmt.Errorf("unknown duplicate policy %q (want overwrite or strict)", value)
}

// Options controls extraction
type Options struct {
	Duplicates DuplicatePolicy
}

// Import is one import declaration reduced to its named specifiers
type Import struct {
	Source string
	Names  []string
}

// Result holds everything the extractor classified
type Result struct {
	Imports      []Import
	Accounts     map[string]*ir.Account
	CustomTypes  map[string]*ir.Account
	ProgramClass *ast.ClassDecl
	Types        *types.TypeRegistry // imported names
	Warnings     []errors.CompilerError
}

// Extract classifies the top-level items of mod. Items are popped from the
// end of the item list, so later declarations are visited first. The first
// violation aborts extraction.
func Extract(mod *ast.Module, opts Options) (*Result, error) {
	x := &extractor{
		opts: opts,
		result: &Result{
			Accounts:    make(map[string]*ir.Account),
			CustomTypes: make(map[string]*ir.Account),
		},
	}

	x.result.Types = types.NewTypeRegistry()
	x.imports = types.NewImportParser(x.result.Types)

	stack := append([]ast.ModuleItem(nil), mod.Items...)
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := x.classify(item); err != nil {
			return nil, err
		}
	}

	if x.result.ProgramClass == nil {
		return nil, errors.MissingProgramClass(mod.Filename)
	}

	log.Debugf("extracted %s: %d imports, %d records", x.result.ProgramClass.Name.Value,
		len(x.result.Imports), len(x.result.CustomTypes))
	return x.result, nil
}

type extractor struct {
	opts    Options
	imports *types.ImportParser
	result  *Result
}

func (x *extractor) classify(item ast.ModuleItem) error {
	switch it := item.(type) {
	case *ast.ImportDecl:
		x.addImport(it)
		return nil

	case *ast.ExportDefaultDecl:
		class, ok := it.Decl.(*ast.ClassDecl)
		if !ok {
			return errors.InvalidDefaultExport(it.Decl.NodeType().String(), it.Decl.NodePos())
		}
		if prev := x.result.ProgramClass; prev != nil {
			if x.opts.Duplicates == DuplicateStrict {
				return errors.DuplicateDeclaration("program class", class.Name.Value, class.Name.Pos)
			}
			log.Warningf("default class %s replaces %s", class.Name.Value, prev.Name.Value)
		}
		log.Debugf("program class %s", class.Name.Value)
		x.result.ProgramClass = class
		return nil

	case *ast.ExportDecl:
		iface, ok := it.Decl.(*ast.InterfaceDecl)
		if !ok {
			return errors.InvalidNamedExport(it.Decl.NodeType().String(), it.Decl.NodePos())
		}
		return x.addInterface(iface)

	case *ast.StatementItem:
		return errors.InvalidSyntax(it.Decl.NodeType().String(), it.Decl.NodePos())
	}

	return errors.InvalidSyntax(item.NodeType().String(), item.NodePos())
}

func (x *extractor) addImport(decl *ast.ImportDecl) {
	imp := Import{Source: decl.Source}
	for _, spec := range decl.Named {
		imp.Names = append(imp.Names, spec.Local.Value)
	}
	log.Debugf("import %v from %s", imp.Names, imp.Source)

	for _, warning := range x.imports.ParseImport(imp.Source, imp.Names) {
		x.result.Warnings = append(x.result.Warnings, errors.UnknownImport(warning, decl.Pos))
	}
	x.result.Imports = append(x.result.Imports, imp)
}

func (x *extractor) addInterface(iface *ast.InterfaceDecl) error {
	acct, err := ir.AccountFromInterface(iface)
	if err != nil {
		return err
	}

	if _, exists := x.result.CustomTypes[acct.Name]; exists {
		if x.opts.Duplicates == DuplicateStrict {
			return errors.DuplicateDeclaration("interface", acct.Name, iface.Name.Pos)
		}
		log.Warningf("interface %s declared more than once; keeping the earliest", acct.Name)
	}

	log.Debugf("record %s (account=%t, %d fields)", acct.Name, acct.IsAccount, len(acct.Fields))
	x.result.Accounts[acct.Name] = acct
	x.result.CustomTypes[acct.Name] = acct
	return nil
}
