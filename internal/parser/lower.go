package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"tsanchor/grammar"
	"tsanchor/internal/ast"
)

// lowerer converts the participle parse tree into the ast model.
type lowerer struct {
	filename string
	errors   []ParseError
}

func (l *lowerer) pos(p lexer.Position) ast.Position {
	pos := toPosition(p)
	if pos.Filename == "" {
		pos.Filename = l.filename
	}
	return pos
}

func (l *lowerer) errorAt(p lexer.Position, format string, args ...any) {
	l.errors = append(l.errors, ParseError{
		Message:  fmt.Sprintf(format, args...),
		Position: l.pos(p),
		Length:   1,
	})
}

func (l *lowerer) ident(id grammar.Ident) ast.Ident {
	return ast.Ident{Pos: l.pos(id.Pos), EndPos: l.pos(id.EndPos), Value: id.Value}
}

func (l *lowerer) lowerModule(tree *grammar.Module) *ast.Module {
	module := &ast.Module{
		Pos:      l.pos(tree.Pos),
		Filename: l.filename,
	}

	for _, item := range tree.Items {
		lowered := l.lowerItem(item)
		if lowered == nil {
			continue
		}
		module.Items = append(module.Items, lowered)
		module.EndPos = lowered.NodeEndPos()
	}

	return module
}

func (l *lowerer) lowerItem(item *grammar.Item) ast.ModuleItem {
	switch {
	case item.Import != nil:
		return l.lowerImport(item.Import)
	case item.Export != nil:
		decl := l.lowerDecl(item.Export.Decl)
		if decl == nil {
			return nil
		}
		if item.Export.Default {
			return &ast.ExportDefaultDecl{Pos: l.pos(item.Pos), EndPos: l.pos(item.EndPos), Decl: decl}
		}
		return &ast.ExportDecl{Pos: l.pos(item.Pos), EndPos: l.pos(item.EndPos), Decl: decl}
	case item.Other != nil:
		decl := l.lowerDecl(item.Other)
		if decl == nil {
			return nil
		}
		return &ast.StatementItem{Pos: l.pos(item.Pos), EndPos: l.pos(item.EndPos), Decl: decl}
	}
	return nil
}

func (l *lowerer) lowerImport(imp *grammar.Import) *ast.ImportDecl {
	decl := &ast.ImportDecl{
		Pos:    l.pos(imp.Pos),
		EndPos: l.pos(imp.EndPos),
		Source: l.unquote(imp.Pos, imp.Source),
	}

	if imp.Default != nil {
		id := l.ident(*imp.Default)
		decl.Default = &id
	}
	if imp.Namespace != nil {
		id := l.ident(*imp.Namespace)
		decl.Namespace = &id
	}
	if imp.Named != nil {
		for _, spec := range imp.Named.Specifiers {
			imported := l.ident(spec.Imported)
			local := imported
			if spec.Local != nil {
				local = l.ident(*spec.Local)
			}
			decl.Named = append(decl.Named, &ast.ImportSpecifier{
				Pos:      l.pos(spec.Pos),
				EndPos:   l.pos(spec.EndPos),
				Imported: imported,
				Local:    local,
			})
		}
	}

	return decl
}

func (l *lowerer) lowerDecl(d *grammar.Declaration) ast.Decl {
	switch {
	case d.Class != nil:
		return l.lowerClass(d.Class)
	case d.Interface != nil:
		return l.lowerInterface(d.Interface)
	case d.TypeAlias != nil:
		return l.lowerTypeAlias(d.TypeAlias)
	case d.Enum != nil:
		return l.lowerEnum(d.Enum)
	case d.Function != nil:
		return l.lowerFunction(d.Function)
	case d.Variable != nil:
		return l.lowerVariable(d.Variable)
	case d.Expr != nil:
		return &ast.ExprDecl{
			Pos:    l.pos(d.Expr.Pos),
			EndPos: l.pos(d.Expr.EndPos),
			Expr:   l.lowerExpr(d.Expr.Expr),
		}
	}

	l.errorAt(d.Pos, "expected a declaration")
	return nil
}

func (l *lowerer) lowerClass(c *grammar.Class) *ast.ClassDecl {
	class := &ast.ClassDecl{
		Pos:      l.pos(c.Pos),
		EndPos:   l.pos(c.EndPos),
		Abstract: c.Abstract,
		Name:     l.ident(c.Name),
		Extends:  l.lowerTypeRef(c.Extends),
	}
	for _, impl := range c.Implements {
		class.Implements = append(class.Implements, l.lowerTypeRef(impl))
	}

	for _, m := range c.Members {
		mods := lowerModifiers(m.Modifiers)
		if m.Method != nil {
			class.Members = append(class.Members, &ast.MethodMember{
				Pos:       l.pos(m.Pos),
				EndPos:    l.pos(m.EndPos),
				Modifiers: mods,
				Name:      l.ident(m.Name),
				Params:    l.lowerParams(m.Method.Params),
				Return:    l.lowerTypeRef(m.Method.Return),
				Body:      l.lowerBlock(m.Method.Body),
			})
			continue
		}

		prop := &ast.PropertyMember{
			Pos:       l.pos(m.Pos),
			EndPos:    l.pos(m.EndPos),
			Modifiers: mods,
			Name:      l.ident(m.Name),
			Optional:  m.Optional,
		}
		if m.Property != nil {
			prop.Type = l.lowerTypeRef(m.Property.Type)
			if m.Property.Value != nil {
				prop.Value = l.lowerExpr(m.Property.Value)
			}
		}
		class.Members = append(class.Members, prop)
	}

	return class
}

func lowerModifiers(words []string) ast.Modifiers {
	var mods ast.Modifiers
	for _, w := range words {
		switch w {
		case "public":
			mods.Public = true
		case "private":
			mods.Private = true
		case "protected":
			mods.Protected = true
		case "static":
			mods.Static = true
		case "readonly":
			mods.Readonly = true
		case "async":
			mods.Async = true
		}
	}
	return mods
}

func (l *lowerer) lowerInterface(i *grammar.Interface) *ast.InterfaceDecl {
	iface := &ast.InterfaceDecl{
		Pos:    l.pos(i.Pos),
		EndPos: l.pos(i.EndPos),
		Name:   l.ident(i.Name),
	}
	for _, ext := range i.Extends {
		iface.Extends = append(iface.Extends, l.lowerTypeRef(ext))
	}

	for _, m := range i.Members {
		if m.Params != nil {
			iface.Members = append(iface.Members, &ast.MethodSignature{
				Pos:    l.pos(m.Pos),
				EndPos: l.pos(m.EndPos),
				Name:   l.ident(m.Name),
				Params: l.lowerParams(m.Params),
				Return: l.lowerTypeRef(m.Type),
			})
			continue
		}
		iface.Members = append(iface.Members, &ast.PropertySignature{
			Pos:      l.pos(m.Pos),
			EndPos:   l.pos(m.EndPos),
			Readonly: m.Readonly,
			Name:     l.ident(m.Name),
			Optional: m.Optional,
			Type:     l.lowerTypeRef(m.Type),
		})
	}

	return iface
}

func (l *lowerer) lowerTypeAlias(t *grammar.TypeAlias) *ast.TypeAliasDecl {
	alias := &ast.TypeAliasDecl{
		Pos:    l.pos(t.Pos),
		EndPos: l.pos(t.EndPos),
		Name:   l.ident(t.Name),
	}
	for _, u := range t.Types {
		switch {
		case u.Literal != nil:
			alias.Types = append(alias.Types, *u.Literal)
		case u.Type != nil:
			alias.Types = append(alias.Types, l.lowerTypeRef(u.Type).String())
		}
	}
	return alias
}

func (l *lowerer) lowerEnum(e *grammar.Enum) *ast.EnumDecl {
	enum := &ast.EnumDecl{
		Pos:    l.pos(e.Pos),
		EndPos: l.pos(e.EndPos),
		Name:   l.ident(e.Name),
	}
	for _, m := range e.Members {
		enum.Members = append(enum.Members, l.ident(m.Name))
	}
	return enum
}

func (l *lowerer) lowerFunction(f *grammar.Function) *ast.FunctionDecl {
	fn := &ast.FunctionDecl{
		Pos:    l.pos(f.Pos),
		EndPos: l.pos(f.EndPos),
		Async:  f.Async,
		Params: l.lowerParams(f.Params),
		Return: l.lowerTypeRef(f.Return),
		Body:   l.lowerBlock(f.Body),
	}
	if f.Name != nil {
		name := l.ident(*f.Name)
		fn.Name = &name
	}
	return fn
}

func (l *lowerer) lowerVariable(v *grammar.Variable) *ast.VarDecl {
	decl := &ast.VarDecl{
		Pos:    l.pos(v.Pos),
		EndPos: l.pos(v.EndPos),
		Kind:   v.Kind,
		Name:   l.ident(v.Name),
		Type:   l.lowerTypeRef(v.Type),
	}
	if v.Value != nil {
		decl.Value = l.lowerExpr(v.Value)
	}
	return decl
}

func (l *lowerer) lowerParams(list *grammar.ParamList) []*ast.Param {
	if list == nil {
		return nil
	}
	params := make([]*ast.Param, 0, len(list.Params))
	for _, p := range list.Params {
		param := &ast.Param{
			Pos:      l.pos(p.Pos),
			EndPos:   l.pos(p.EndPos),
			Name:     l.ident(p.Name),
			Optional: p.Optional,
			Type:     l.lowerTypeRef(p.Type),
		}
		if p.Default != nil {
			param.Default = l.lowerExpr(p.Default)
		}
		params = append(params, param)
	}
	return params
}

func (l *lowerer) lowerTypeRef(t *grammar.TypeRef) *ast.TypeRef {
	if t == nil {
		return nil
	}
	ref := &ast.TypeRef{
		Pos:    l.pos(t.Pos),
		EndPos: l.pos(t.EndPos),
		Name:   l.ident(t.Name),
		Array:  t.Array,
	}
	for _, g := range t.Generics {
		ref.Generics = append(ref.Generics, l.lowerTypeRef(g))
	}
	return ref
}

func (l *lowerer) lowerBlock(b *grammar.Block) *ast.Block {
	if b == nil {
		return nil
	}
	block := &ast.Block{Pos: l.pos(b.Pos), EndPos: l.pos(b.EndPos)}

	for _, s := range b.Statements {
		switch {
		case s.Return != nil:
			ret := &ast.ReturnStmt{Pos: l.pos(s.Return.Pos), EndPos: l.pos(s.Return.EndPos)}
			if s.Return.Value != nil {
				ret.Value = l.lowerExpr(s.Return.Value)
			}
			block.Statements = append(block.Statements, ret)
		case s.Variable != nil:
			block.Statements = append(block.Statements, l.lowerVariable(s.Variable))
		case s.Expr != nil:
			block.Statements = append(block.Statements, &ast.ExprStmt{
				Pos:    l.pos(s.Expr.Pos),
				EndPos: l.pos(s.Expr.EndPos),
				Expr:   l.lowerExpr(s.Expr.Expr),
			})
		}
	}

	return block
}

// unquote strips the quotes of a single or double quoted literal.
func (l *lowerer) unquote(at lexer.Position, raw string) string {
	if len(raw) < 2 {
		l.errorAt(at, "malformed string literal %s", raw)
		return raw
	}

	value, err := strconv.Unquote(goQuoted(raw[1 : len(raw)-1]))
	if err != nil {
		l.errorAt(at, "invalid string literal %s: %v", raw, err)
		return raw
	}
	return value
}

// goEscapes are the escapes both languages spell the same way
const goEscapes = `bfnrtvxu\"`

// goQuoted rewrites the body of a string literal into a Go double quoted
// literal. Bare double quotes get escaped, \' and identity escapes lose their
// backslash, \0 and \u{...} get their Go spelling.
func goQuoted(body string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '"' {
			sb.WriteString(`\"`)
			continue
		}
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			continue
		}

		i++
		next := body[i]
		switch {
		case next == '0' && (i+1 == len(body) || !isDigit(body[i+1])):
			sb.WriteString(`\x00`)
		case next == 'u' && i+1 < len(body) && body[i+1] == '{':
			end := strings.IndexByte(body[i:], '}')
			hex := ""
			if end > 0 {
				hex = body[i+2 : i+end]
			}
			if hex == "" || len(hex) > 8 {
				// leave it malformed for Unquote to reject
				sb.WriteString(`\u`)
				continue
			}
			sb.WriteString(`\U` + strings.Repeat("0", 8-len(hex)) + hex)
			i += end
		case strings.IndexByte(goEscapes, next) >= 0, isDigit(next):
			sb.WriteByte('\\')
			sb.WriteByte(next)
		default:
			sb.WriteByte(next)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
