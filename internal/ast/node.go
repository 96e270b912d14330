package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

// ModuleItem is a top-level entry of a Module
type ModuleItem interface {
	Node
	isModuleItem()
}

// Decl is anything that can follow "export", "export default" or stand alone
type Decl interface {
	Node
	isDecl()
}

type ClassMember interface {
	Node
	isClassMember()
	MemberName() string
}

type InterfaceMember interface {
	Node
	isInterfaceMember()
}

type Stmt interface {
	Node
	isStmt()
}

type Expr interface {
	Node
	isExpr()
}

func (m *Module) NodePos() Position    { return m.Pos }
func (m *Module) NodeEndPos() Position { return m.EndPos }
func (*Module) NodeType() NodeType     { return MODULE }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (d *ImportDecl) NodePos() Position    { return d.Pos }
func (d *ImportDecl) NodeEndPos() Position { return d.EndPos }
func (*ImportDecl) NodeType() NodeType     { return IMPORT_DECL }

func (s *ImportSpecifier) NodePos() Position    { return s.Pos }
func (s *ImportSpecifier) NodeEndPos() Position { return s.EndPos }
func (*ImportSpecifier) NodeType() NodeType     { return IMPORT_SPECIFIER }

func (d *ExportDefaultDecl) NodePos() Position    { return d.Pos }
func (d *ExportDefaultDecl) NodeEndPos() Position { return d.EndPos }
func (*ExportDefaultDecl) NodeType() NodeType     { return EXPORT_DEFAULT_DECL }

func (d *ExportDecl) NodePos() Position    { return d.Pos }
func (d *ExportDecl) NodeEndPos() Position { return d.EndPos }
func (*ExportDecl) NodeType() NodeType     { return EXPORT_DECL }

func (s *StatementItem) NodePos() Position    { return s.Pos }
func (s *StatementItem) NodeEndPos() Position { return s.EndPos }
func (*StatementItem) NodeType() NodeType     { return STATEMENT_ITEM }

func (c *ClassDecl) NodePos() Position    { return c.Pos }
func (c *ClassDecl) NodeEndPos() Position { return c.EndPos }
func (*ClassDecl) NodeType() NodeType     { return CLASS_DECL }

func (m *MethodMember) NodePos() Position    { return m.Pos }
func (m *MethodMember) NodeEndPos() Position { return m.EndPos }
func (*MethodMember) NodeType() NodeType     { return METHOD_MEMBER }

func (p *PropertyMember) NodePos() Position    { return p.Pos }
func (p *PropertyMember) NodeEndPos() Position { return p.EndPos }
func (*PropertyMember) NodeType() NodeType     { return PROPERTY_MEMBER }

func (i *InterfaceDecl) NodePos() Position    { return i.Pos }
func (i *InterfaceDecl) NodeEndPos() Position { return i.EndPos }
func (*InterfaceDecl) NodeType() NodeType     { return INTERFACE_DECL }

func (p *PropertySignature) NodePos() Position    { return p.Pos }
func (p *PropertySignature) NodeEndPos() Position { return p.EndPos }
func (*PropertySignature) NodeType() NodeType     { return PROPERTY_SIGNATURE }

func (m *MethodSignature) NodePos() Position    { return m.Pos }
func (m *MethodSignature) NodeEndPos() Position { return m.EndPos }
func (*MethodSignature) NodeType() NodeType     { return METHOD_SIGNATURE }

func (t *TypeAliasDecl) NodePos() Position    { return t.Pos }
func (t *TypeAliasDecl) NodeEndPos() Position { return t.EndPos }
func (*TypeAliasDecl) NodeType() NodeType     { return TYPE_ALIAS_DECL }

func (e *EnumDecl) NodePos() Position    { return e.Pos }
func (e *EnumDecl) NodeEndPos() Position { return e.EndPos }
func (*EnumDecl) NodeType() NodeType     { return ENUM_DECL }

func (f *FunctionDecl) NodePos() Position    { return f.Pos }
func (f *FunctionDecl) NodeEndPos() Position { return f.EndPos }
func (*FunctionDecl) NodeType() NodeType     { return FUNCTION_DECL }

func (v *VarDecl) NodePos() Position    { return v.Pos }
func (v *VarDecl) NodeEndPos() Position { return v.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (e *ExprDecl) NodePos() Position    { return e.Pos }
func (e *ExprDecl) NodeEndPos() Position { return e.EndPos }
func (*ExprDecl) NodeType() NodeType     { return EXPR_DECL }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (s *ExprStmt) NodePos() Position    { return s.Pos }
func (s *ExprStmt) NodeEndPos() Position { return s.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *IdentExpr) NodePos() Position    { return e.Pos }
func (e *IdentExpr) NodeEndPos() Position { return e.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (e *ThisExpr) NodePos() Position    { return e.Pos }
func (e *ThisExpr) NodeEndPos() Position { return e.EndPos }
func (*ThisExpr) NodeType() NodeType     { return THIS_EXPR }

func (e *NumberLit) NodePos() Position    { return e.Pos }
func (e *NumberLit) NodeEndPos() Position { return e.EndPos }
func (*NumberLit) NodeType() NodeType     { return NUMBER_LIT }

func (e *StringLit) NodePos() Position    { return e.Pos }
func (e *StringLit) NodeEndPos() Position { return e.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING_LIT }

func (e *BoolLit) NodePos() Position    { return e.Pos }
func (e *BoolLit) NodeEndPos() Position { return e.EndPos }
func (*BoolLit) NodeType() NodeType     { return BOOL_LIT }

func (e *ArrayLit) NodePos() Position    { return e.Pos }
func (e *ArrayLit) NodeEndPos() Position { return e.EndPos }
func (*ArrayLit) NodeType() NodeType     { return ARRAY_LIT }

func (e *MemberExpr) NodePos() Position    { return e.Pos }
func (e *MemberExpr) NodeEndPos() Position { return e.EndPos }
func (*MemberExpr) NodeType() NodeType     { return MEMBER_EXPR }

func (e *CallExpr) NodePos() Position    { return e.Pos }
func (e *CallExpr) NodeEndPos() Position { return e.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (e *IndexExpr) NodePos() Position    { return e.Pos }
func (e *IndexExpr) NodeEndPos() Position { return e.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (e *NewExpr) NodePos() Position    { return e.Pos }
func (e *NewExpr) NodeEndPos() Position { return e.EndPos }
func (*NewExpr) NodeType() NodeType     { return NEW_EXPR }

func (e *UnaryExpr) NodePos() Position    { return e.Pos }
func (e *UnaryExpr) NodeEndPos() Position { return e.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (e *BinaryExpr) NodePos() Position    { return e.Pos }
func (e *BinaryExpr) NodeEndPos() Position { return e.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (e *AssignExpr) NodePos() Position    { return e.Pos }
func (e *AssignExpr) NodeEndPos() Position { return e.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (e *ParenExpr) NodePos() Position    { return e.Pos }
func (e *ParenExpr) NodeEndPos() Position { return e.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

// Marker methods

func (*ImportDecl) isModuleItem()        {}
func (*ExportDefaultDecl) isModuleItem() {}
func (*ExportDecl) isModuleItem()        {}
func (*StatementItem) isModuleItem()     {}

func (*ClassDecl) isDecl()     {}
func (*InterfaceDecl) isDecl() {}
func (*TypeAliasDecl) isDecl() {}
func (*EnumDecl) isDecl()      {}
func (*FunctionDecl) isDecl()  {}
func (*VarDecl) isDecl()       {}
func (*ExprDecl) isDecl()      {}

func (*MethodMember) isClassMember()   {}
func (*PropertyMember) isClassMember() {}

func (m *MethodMember) MemberName() string   { return m.Name.Value }
func (p *PropertyMember) MemberName() string { return p.Name.Value }

func (*PropertySignature) isInterfaceMember() {}
func (*MethodSignature) isInterfaceMember()   {}

func (*ExprStmt) isStmt()   {}
func (*ReturnStmt) isStmt() {}
func (*VarDecl) isStmt()    {}

func (*IdentExpr) isExpr()  {}
func (*ThisExpr) isExpr()   {}
func (*NumberLit) isExpr()  {}
func (*StringLit) isExpr()  {}
func (*BoolLit) isExpr()    {}
func (*ArrayLit) isExpr()   {}
func (*MemberExpr) isExpr() {}
func (*CallExpr) isExpr()   {}
func (*IndexExpr) isExpr()  {}
func (*NewExpr) isExpr()    {}
func (*UnaryExpr) isExpr()  {}
func (*BinaryExpr) isExpr() {}
func (*AssignExpr) isExpr() {}
func (*ParenExpr) isExpr()  {}
