package semantic

import (
	"sort"
	"strings"

	"github.com/tliron/commonlog"
	"tsanchor/internal/ast"
	"tsanchor/internal/errors"
)

var log = commonlog.GetLogger("tsanchor.semantic")

// Analyzer finds declared names a module never uses: imported names,
// method parameters and local variables. It only produces warnings and
// never blocks a translation.
type Analyzer struct {
	warnings []errors.CompilerError
	module   *SymbolTable
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze walks mod and returns its warnings sorted by position
func (a *Analyzer) Analyze(mod *ast.Module) []errors.CompilerError {
	a.warnings = nil
	a.module = NewSymbolTable(nil)

	if mod == nil {
		return nil
	}

	for _, item := range mod.Items {
		if imp, ok := item.(*ast.ImportDecl); ok {
			a.defineImport(imp)
		}
	}

	for _, item := range mod.Items {
		switch it := item.(type) {
		case *ast.ExportDefaultDecl:
			a.analyzeDecl(it.Decl)
		case *ast.ExportDecl:
			a.analyzeDecl(it.Decl)
		case *ast.StatementItem:
			a.analyzeDecl(it.Decl)
		}
	}

	a.report(a.module)

	sort.SliceStable(a.warnings, func(i, j int) bool {
		return a.warnings[i].Position.Offset < a.warnings[j].Position.Offset
	})
	log.Debugf("%d unused-symbol warnings in %s", len(a.warnings), mod.Filename)
	return a.warnings
}

func (a *Analyzer) defineImport(imp *ast.ImportDecl) {
	for _, spec := range imp.Named {
		a.module.Define(spec.Local.Value, SymbolImport, spec.Local.Pos)
	}
	if imp.Namespace != nil {
		a.module.Define(imp.Namespace.Value, SymbolImport, imp.Namespace.Pos)
	}
	if imp.Default != nil {
		a.module.Define(imp.Default.Value, SymbolImport, imp.Default.Pos)
	}
}

func (a *Analyzer) analyzeDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.ClassDecl:
		a.useType(a.module, d.Extends)
		for _, impl := range d.Implements {
			a.useType(a.module, impl)
		}
		for _, member := range d.Members {
			switch m := member.(type) {
			case *ast.MethodMember:
				a.analyzeFunction(m.Params, m.Return, m.Body)
			case *ast.PropertyMember:
				a.useType(a.module, m.Type)
				a.useExpr(a.module, m.Value)
			}
		}

	case *ast.InterfaceDecl:
		for _, ext := range d.Extends {
			a.useType(a.module, ext)
		}
		for _, member := range d.Members {
			switch m := member.(type) {
			case *ast.PropertySignature:
				a.useType(a.module, m.Type)
			case *ast.MethodSignature:
				for _, p := range m.Params {
					a.useType(a.module, p.Type)
				}
				a.useType(a.module, m.Return)
			}
		}

	case *ast.FunctionDecl:
		a.analyzeFunction(d.Params, d.Return, d.Body)

	case *ast.VarDecl:
		a.useType(a.module, d.Type)
		a.useExpr(a.module, d.Value)

	case *ast.ExprDecl:
		a.useExpr(a.module, d.Expr)
	}
}

func (a *Analyzer) analyzeFunction(params []*ast.Param, ret *ast.TypeRef, body *ast.Block) {
	scope := NewSymbolTable(a.module)
	for _, p := range params {
		a.useType(a.module, p.Type)
		a.useExpr(a.module, p.Default)
		scope.Define(p.Name.Value, SymbolParameter, p.Name.Pos)
	}
	a.useType(a.module, ret)

	if body != nil {
		for _, stmt := range body.Statements {
			a.analyzeStmt(scope, stmt)
		}
	}
	a.report(scope)
}

func (a *Analyzer) analyzeStmt(scope *SymbolTable, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		a.useType(scope, s.Type)
		// the initializer cannot see the name it declares
		a.useExpr(scope, s.Value)
		scope.Define(s.Name.Value, SymbolVariable, s.Name.Pos)
	case *ast.ExprStmt:
		a.useExpr(scope, s.Expr)
	case *ast.ReturnStmt:
		a.useExpr(scope, s.Value)
	}
}

func (a *Analyzer) useType(scope *SymbolTable, t *ast.TypeRef) {
	if t == nil {
		return
	}
	scope.MarkUsed(t.Name.Value)
	for _, g := range t.Generics {
		a.useType(scope, g)
	}
}

func (a *Analyzer) useExpr(scope *SymbolTable, expr ast.Expr) {
	switch e := expr.(type) {
	case nil:
	case *ast.IdentExpr:
		scope.MarkUsed(e.Name)
	case *ast.ArrayLit:
		for _, el := range e.Elements {
			a.useExpr(scope, el)
		}
	case *ast.MemberExpr:
		a.useExpr(scope, e.Object)
	case *ast.CallExpr:
		a.useExpr(scope, e.Callee)
		for _, arg := range e.Args {
			a.useExpr(scope, arg)
		}
	case *ast.IndexExpr:
		a.useExpr(scope, e.Object)
		a.useExpr(scope, e.Index)
	case *ast.NewExpr:
		scope.MarkUsed(e.Callee.Value)
		for _, arg := range e.Args {
			a.useExpr(scope, arg)
		}
	case *ast.UnaryExpr:
		a.useExpr(scope, e.Value)
	case *ast.BinaryExpr:
		a.useExpr(scope, e.Left)
		a.useExpr(scope, e.Right)
	case *ast.AssignExpr:
		// writing a plain name is not a read
		if _, plain := e.Target.(*ast.IdentExpr); !plain {
			a.useExpr(scope, e.Target)
		}
		a.useExpr(scope, e.Value)
	case *ast.ParenExpr:
		a.useExpr(scope, e.Value)
	}
}

func (a *Analyzer) report(scope *SymbolTable) {
	for _, symbol := range scope.Unused() {
		if strings.HasPrefix(symbol.Name, "_") {
			continue
		}
		a.warnings = append(a.warnings, errors.Unused(symbol.Kind.String(), symbol.Name, symbol.Position))
	}
}
