package ast

import (
	"fmt"
	"strings"
)

func (m *Module) String() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(item.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (d *ImportDecl) String() string {
	var parts []string
	if d.Default != nil {
		parts = append(parts, d.Default.Value)
	}
	if d.Namespace != nil {
		parts = append(parts, "* as "+d.Namespace.Value)
	}
	if len(d.Named) > 0 {
		names := make([]string, len(d.Named))
		for i, spec := range d.Named {
			names[i] = spec.String()
		}
		parts = append(parts, "{ "+strings.Join(names, ", ")+" }")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("import %q;", d.Source)
	}
	return fmt.Sprintf("import %s from %q;", strings.Join(parts, ", "), d.Source)
}

func (s *ImportSpecifier) String() string {
	if s.Local.Value != "" && s.Local.Value != s.Imported.Value {
		return s.Imported.Value + " as " + s.Local.Value
	}
	return s.Imported.Value
}

func (d *ExportDefaultDecl) String() string {
	return "export default " + d.Decl.String()
}

func (d *ExportDecl) String() string {
	return "export " + d.Decl.String()
}

func (s *StatementItem) String() string {
	return s.Decl.String()
}

func (c *ClassDecl) String() string {
	var b strings.Builder
	if c.Abstract {
		b.WriteString("abstract ")
	}
	b.WriteString("class " + c.Name.Value)
	if c.Extends != nil {
		b.WriteString(" extends " + c.Extends.String())
	}
	if len(c.Implements) > 0 {
		b.WriteString(" implements " + joinTypes(c.Implements))
	}
	b.WriteString(" {\n")
	for _, member := range c.Members {
		b.WriteString("  " + strings.ReplaceAll(member.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (m Modifiers) String() string {
	var mods []string
	if m.Public {
		mods = append(mods, "public")
	}
	if m.Private {
		mods = append(mods, "private")
	}
	if m.Protected {
		mods = append(mods, "protected")
	}
	if m.Static {
		mods = append(mods, "static")
	}
	if m.Readonly {
		mods = append(mods, "readonly")
	}
	if m.Async {
		mods = append(mods, "async")
	}
	if len(mods) == 0 {
		return ""
	}
	return strings.Join(mods, " ") + " "
}

func (m *MethodMember) String() string {
	var b strings.Builder
	b.WriteString(m.Modifiers.String())
	b.WriteString(m.Name.Value)
	b.WriteString("(" + joinParams(m.Params) + ")")
	if m.Return != nil {
		b.WriteString(": " + m.Return.String())
	}
	b.WriteString(" " + m.Body.String())
	return b.String()
}

func (p *PropertyMember) String() string {
	var b strings.Builder
	b.WriteString(p.Modifiers.String())
	b.WriteString(p.Name.Value)
	if p.Optional {
		b.WriteString("?")
	}
	if p.Type != nil {
		b.WriteString(": " + p.Type.String())
	}
	if p.Value != nil {
		b.WriteString(" = " + p.Value.String())
	}
	b.WriteString(";")
	return b.String()
}

func (i *InterfaceDecl) String() string {
	var b strings.Builder
	b.WriteString("interface " + i.Name.Value)
	if len(i.Extends) > 0 {
		b.WriteString(" extends " + joinTypes(i.Extends))
	}
	b.WriteString(" {\n")
	for _, member := range i.Members {
		b.WriteString("  " + member.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (p *PropertySignature) String() string {
	var b strings.Builder
	if p.Readonly {
		b.WriteString("readonly ")
	}
	b.WriteString(p.Name.Value)
	if p.Optional {
		b.WriteString("?")
	}
	if p.Type != nil {
		b.WriteString(": " + p.Type.String())
	}
	b.WriteString(";")
	return b.String()
}

func (m *MethodSignature) String() string {
	s := m.Name.Value + "(" + joinParams(m.Params) + ")"
	if m.Return != nil {
		s += ": " + m.Return.String()
	}
	return s + ";"
}

func (t *TypeAliasDecl) String() string {
	return fmt.Sprintf("type %s = %s;", t.Name.Value, strings.Join(t.Types, " | "))
}

func (e *EnumDecl) String() string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Value
	}
	return fmt.Sprintf("enum %s { %s }", e.Name.Value, strings.Join(names, ", "))
}

func (f *FunctionDecl) String() string {
	var b strings.Builder
	if f.Async {
		b.WriteString("async ")
	}
	b.WriteString("function")
	if f.Name != nil {
		b.WriteString(" " + f.Name.Value)
	}
	b.WriteString("(" + joinParams(f.Params) + ")")
	if f.Return != nil {
		b.WriteString(": " + f.Return.String())
	}
	b.WriteString(" " + f.Body.String())
	return b.String()
}

func (v *VarDecl) String() string {
	s := v.Kind + " " + v.Name.Value
	if v.Type != nil {
		s += ": " + v.Type.String()
	}
	if v.Value != nil {
		s += " = " + v.Value.String()
	}
	return s + ";"
}

func (e *ExprDecl) String() string {
	return e.Expr.String() + ";"
}

func (p *Param) String() string {
	s := p.Name.Value
	if p.Optional {
		s += "?"
	}
	if p.Type != nil {
		s += ": " + p.Type.String()
	}
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}

func (t *TypeRef) String() string {
	s := t.Name.Value
	if len(t.Generics) > 0 {
		s += "<" + joinTypes(t.Generics) + ">"
	}
	if t.Array {
		s += "[]"
	}
	return s
}

func (b *Block) String() string {
	if b == nil || len(b.Statements) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (s *ExprStmt) String() string {
	return s.Expr.String() + ";"
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

func (e *IdentExpr) String() string { return e.Name }
func (*ThisExpr) String() string    { return "this" }
func (e *NumberLit) String() string { return e.Raw }
func (e *StringLit) String() string { return fmt.Sprintf("%q", e.Value) }

func (e *BoolLit) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

func (e *ArrayLit) String() string {
	return "[" + joinExprs(e.Elements) + "]"
}

func (e *MemberExpr) String() string {
	return e.Object.String() + "." + e.Property.Value
}

func (e *CallExpr) String() string {
	return e.Callee.String() + "(" + joinExprs(e.Args) + ")"
}

func (e *IndexExpr) String() string {
	return e.Object.String() + "[" + e.Index.String() + "]"
}

func (e *NewExpr) String() string {
	return "new " + e.Callee.Value + "(" + joinExprs(e.Args) + ")"
}

func (e *UnaryExpr) String() string {
	return e.Op + e.Value.String()
}

func (e *BinaryExpr) String() string {
	return e.Left.String() + " " + e.Op + " " + e.Right.String()
}

func (e *AssignExpr) String() string {
	return e.Target.String() + " " + e.Op + " " + e.Value.String()
}

func (e *ParenExpr) String() string {
	return "(" + e.Value.String() + ")"
}

func joinTypes(types []*TypeRef) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func joinParams(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
