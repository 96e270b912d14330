package rust

import "tsanchor/token"

// Tokens lowers the file into a flat token stream
func (f *File) Tokens() token.Stream {
	var s token.Stream
	for _, item := range f.Items {
		item.lower(&s)
	}
	return s
}

// String renders the raw, unformatted text of the file
func (f *File) String() string {
	return f.Tokens().String()
}

func lowerAttrs(s *token.Stream, attrs []Attribute) {
	for _, attr := range attrs {
		s.Punct("#")
		s.Punct("[")
		s.Word(attr.Name)
		if attr.Args != nil {
			s.Punct("(")
			lowerList(s, attr.Args)
			s.Punct(")")
		}
		if attr.Value != nil {
			s.Punct("=")
			lowerExpr(s, attr.Value)
		}
		s.Punct("]")
	}
}

func lowerList(s *token.Stream, exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			s.Punct(",")
		}
		lowerExpr(s, e)
	}
}

func lowerPath(s *token.Stream, segments []string) {
	for i, seg := range segments {
		if i > 0 {
			s.Punct("::")
		}
		s.Word(seg)
	}
}

func (u *Use) lower(s *token.Stream) {
	s.Word("use")
	lowerPath(s, u.Path)
	if u.Glob {
		s.Punct("::")
		s.Punct("*")
	}
	s.Punct(";")
}

func (m *MacroItem) lower(s *token.Stream) {
	s.Word(m.Name)
	s.Punct("!")
	s.Punct("(")
	lowerList(s, m.Args)
	s.Punct(")")
	s.Punct(";")
}

func (m *Module) lower(s *token.Stream) {
	lowerAttrs(s, m.Attrs)
	if m.Pub {
		s.Word("pub")
	}
	s.Word("mod")
	s.Word(m.Name)
	s.Punct("{")
	for _, item := range m.Items {
		item.lower(s)
	}
	s.Punct("}")
}

func (f *Fn) lower(s *token.Stream) {
	lowerAttrs(s, f.Attrs)
	if f.Pub {
		s.Word("pub")
	}
	s.Word("fn")
	s.Word(f.Name)
	s.Punct("(")
	for i, p := range f.Params {
		if i > 0 {
			s.Punct(",")
		}
		s.Word(p.Name)
		s.Punct(":")
		p.Type.lower(s)
	}
	s.Punct(")")
	if f.Return != nil {
		s.Punct("->")
		f.Return.lower(s)
	}
	s.Punct("{")
	for _, stmt := range f.Body {
		lowerStmt(s, stmt)
	}
	if f.Tail != nil {
		lowerExpr(s, f.Tail)
	}
	s.Punct("}")
}

func (st *Struct) lower(s *token.Stream) {
	lowerAttrs(s, st.Attrs)
	if st.Pub {
		s.Word("pub")
	}
	s.Word("struct")
	s.Word(st.Name)
	if st.Lifetime != "" {
		s.Punct("<")
		s.Lifetime(st.Lifetime)
		s.Punct(">")
	}
	s.Punct("{")
	for _, f := range st.Fields {
		lowerAttrs(s, f.Attrs)
		if f.Pub {
			s.Word("pub")
		}
		s.Word(f.Name)
		s.Punct(":")
		f.Type.lower(s)
		s.Punct(",")
	}
	s.Punct("}")
}

func (t Type) lower(s *token.Stream) {
	if t.Unit {
		s.Punct("(")
		s.Punct(")")
		return
	}
	lowerPath(s, t.Path)
	if t.Lifetime == "" && len(t.Args) == 0 {
		return
	}
	s.Punct("<")
	if t.Lifetime != "" {
		s.Lifetime(t.Lifetime)
	}
	for i, arg := range t.Args {
		if i > 0 || t.Lifetime != "" {
			s.Punct(",")
		}
		arg.lower(s)
	}
	s.Punct(">")
}

func lowerStmt(s *token.Stream, stmt Stmt) {
	switch st := stmt.(type) {
	case *Let:
		s.Word("let")
		if st.Mutable {
			s.Word("mut")
		}
		s.Word(st.Name)
		s.Punct("=")
		lowerExpr(s, st.Value)
	case *Assign:
		lowerExpr(s, st.Target)
		s.Punct(st.Op)
		lowerExpr(s, st.Value)
	case *ExprStmt:
		lowerExpr(s, st.Expr)
	case *Return:
		s.Word("return")
		if st.Value != nil {
			lowerExpr(s, st.Value)
		}
	}
	s.Punct(";")
}

func lowerExpr(s *token.Stream, expr Expr) {
	switch e := expr.(type) {
	case *Path:
		lowerPath(s, e.Segments)
	case *Lit:
		switch e.Kind {
		case StrLit:
			s.Str(e.Value)
		case ByteStrLit:
			s.ByteStr(e.Value)
		case BoolLit:
			s.Word(e.Value)
		default:
			s.Int(e.Value)
		}
	case *Field:
		lowerExpr(s, e.Recv)
		s.Punct(".")
		s.Word(e.Name)
	case *MethodCall:
		lowerExpr(s, e.Recv)
		s.Punct(".")
		s.Word(e.Method)
		s.Punct("(")
		lowerList(s, e.Args)
		s.Punct(")")
	case *Call:
		lowerExpr(s, e.Func)
		s.Punct("(")
		lowerList(s, e.Args)
		s.Punct(")")
	case *MacroCall:
		s.Word(e.Name)
		s.Punct("!")
		s.Punct("(")
		lowerList(s, e.Args)
		s.Punct(")")
	case *Binary:
		lowerExpr(s, e.Left)
		s.Punct(e.Op)
		lowerExpr(s, e.Right)
	case *Unary:
		s.Punct(e.Op)
		lowerExpr(s, e.Value)
	case *Paren:
		s.Punct("(")
		lowerExpr(s, e.Value)
		s.Punct(")")
	case *Array:
		s.Punct("[")
		lowerList(s, e.Elements)
		s.Punct("]")
	case *Tuple:
		s.Punct("(")
		lowerList(s, e.Elements)
		if len(e.Elements) == 1 {
			s.Punct(",")
		}
		s.Punct(")")
	case *TypeArg:
		s.Word(e.Name)
		s.Punct(":")
		e.Type.lower(s)
	}
}
