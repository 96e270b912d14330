package lsp

import (
	"sort"
	"strconv"

	"tsanchor/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func collectSemanticTokens(module *ast.Module) []SemanticToken {
	var tokens []SemanticToken

	if module == nil {
		return tokens
	}

	for _, item := range module.Items {
		tokens = append(tokens, walkModuleItem(item)...)
	}

	// clients require tokens in document order
	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})
	return tokens
}

// encodeTokens packs tokens into the relative LSP wire format
func encodeTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}

func walkModuleItem(item ast.ModuleItem) []SemanticToken {
	switch v := item.(type) {
	case *ast.ImportDecl:
		return walkImport(v)
	case *ast.ExportDefaultDecl:
		return walkDecl(v.Decl)
	case *ast.ExportDecl:
		return walkDecl(v.Decl)
	case *ast.StatementItem:
		return walkDecl(v.Decl)
	}
	return nil
}

func walkImport(imp *ast.ImportDecl) []SemanticToken {
	var tokens []SemanticToken

	if imp.Default != nil {
		tokens = append(tokens, identToken(*imp.Default, "namespace", declaration)...)
	}
	if imp.Namespace != nil {
		tokens = append(tokens, identToken(*imp.Namespace, "namespace", declaration)...)
	}
	for _, spec := range imp.Named {
		tokens = append(tokens, identToken(spec.Imported, "type", 0)...)
		if spec.Local.Pos != spec.Imported.Pos {
			tokens = append(tokens, identToken(spec.Local, "type", declaration)...)
		}
	}
	return tokens
}

func walkDecl(decl ast.Decl) []SemanticToken {
	switch v := decl.(type) {
	case *ast.ClassDecl:
		return walkClass(v)
	case *ast.InterfaceDecl:
		return walkInterface(v)
	case *ast.TypeAliasDecl:
		return identToken(v.Name, "type", declaration)
	case *ast.EnumDecl:
		tokens := identToken(v.Name, "type", declaration)
		for _, member := range v.Members {
			tokens = append(tokens, identToken(member, "property", declaration)...)
		}
		return tokens
	case *ast.FunctionDecl:
		var tokens []SemanticToken
		if v.Name != nil {
			tokens = append(tokens, identToken(*v.Name, "function", declaration)...)
		}
		tokens = append(tokens, walkParams(v.Params)...)
		tokens = append(tokens, walkType(v.Return)...)
		return append(tokens, walkBlock(v.Body)...)
	case *ast.VarDecl:
		return walkVar(v)
	case *ast.ExprDecl:
		return walkExpression(v.Expr)
	}
	return nil
}

func walkClass(c *ast.ClassDecl) []SemanticToken {
	modifiers := declaration
	if c.Abstract {
		modifiers |= modifier("abstract")
	}
	tokens := identToken(c.Name, "class", modifiers)
	tokens = append(tokens, walkType(c.Extends)...)
	for _, impl := range c.Implements {
		tokens = append(tokens, walkType(impl)...)
	}

	for _, member := range c.Members {
		switch m := member.(type) {
		case *ast.MethodMember:
			mods := declaration
			if m.Modifiers.Static {
				mods |= modifier("static")
			}
			tokens = append(tokens, identToken(m.Name, "method", mods)...)
			tokens = append(tokens, walkParams(m.Params)...)
			tokens = append(tokens, walkType(m.Return)...)
			tokens = append(tokens, walkBlock(m.Body)...)
		case *ast.PropertyMember:
			mods := declaration
			if m.Modifiers.Static {
				mods |= modifier("static")
			}
			if m.Modifiers.Readonly {
				mods |= modifier("readonly")
			}
			tokens = append(tokens, identToken(m.Name, "property", mods)...)
			tokens = append(tokens, walkType(m.Type)...)
			tokens = append(tokens, walkExpression(m.Value)...)
		}
	}
	return tokens
}

func walkInterface(i *ast.InterfaceDecl) []SemanticToken {
	tokens := identToken(i.Name, "interface", declaration)
	for _, ext := range i.Extends {
		tokens = append(tokens, walkType(ext)...)
	}

	for _, member := range i.Members {
		switch m := member.(type) {
		case *ast.PropertySignature:
			mods := declaration
			if m.Readonly {
				mods |= modifier("readonly")
			}
			tokens = append(tokens, identToken(m.Name, "property", mods)...)
			tokens = append(tokens, walkType(m.Type)...)
		case *ast.MethodSignature:
			tokens = append(tokens, identToken(m.Name, "method", declaration)...)
			tokens = append(tokens, walkParams(m.Params)...)
			tokens = append(tokens, walkType(m.Return)...)
		}
	}
	return tokens
}

func walkParams(params []*ast.Param) []SemanticToken {
	var tokens []SemanticToken
	for _, param := range params {
		tokens = append(tokens, identToken(param.Name, "parameter", declaration)...)
		tokens = append(tokens, walkType(param.Type)...)
		tokens = append(tokens, walkExpression(param.Default)...)
	}
	return tokens
}

func walkType(t *ast.TypeRef) []SemanticToken {
	if t == nil {
		return nil
	}
	tokens := identToken(t.Name, "type", 0)
	for _, generic := range t.Generics {
		tokens = append(tokens, walkType(generic)...)
	}
	return tokens
}

func walkBlock(b *ast.Block) []SemanticToken {
	if b == nil {
		return nil
	}
	var tokens []SemanticToken
	for _, stmt := range b.Statements {
		switch s := stmt.(type) {
		case *ast.VarDecl:
			tokens = append(tokens, walkVar(s)...)
		case *ast.ExprStmt:
			tokens = append(tokens, walkExpression(s.Expr)...)
		case *ast.ReturnStmt:
			tokens = append(tokens, walkExpression(s.Value)...)
		}
	}
	return tokens
}

func walkVar(v *ast.VarDecl) []SemanticToken {
	mods := declaration
	if v.Kind == "const" {
		mods |= modifier("readonly")
	}
	tokens := identToken(v.Name, "variable", mods)
	tokens = append(tokens, walkType(v.Type)...)
	return append(tokens, walkExpression(v.Value)...)
}

func walkExpression(expr ast.Expr) []SemanticToken {
	if expr == nil {
		return nil
	}

	switch v := expr.(type) {
	case *ast.IdentExpr:
		return makeToken(v.Pos, len(v.Name), "variable", 0)
	case *ast.ThisExpr:
		return makeToken(v.Pos, len("this"), "keyword", 0)
	case *ast.NumberLit:
		return makeToken(v.Pos, len(v.Raw), "number", 0)
	case *ast.StringLit:
		return stringToken(v)
	case *ast.BoolLit:
		return makeToken(v.Pos, len(strconv.FormatBool(v.Value)), "keyword", 0)
	case *ast.ArrayLit:
		var tokens []SemanticToken
		for _, el := range v.Elements {
			tokens = append(tokens, walkExpression(el)...)
		}
		return tokens
	case *ast.MemberExpr:
		tokens := walkExpression(v.Object)
		return append(tokens, identToken(v.Property, "property", 0)...)
	case *ast.CallExpr:
		var tokens []SemanticToken
		if member, ok := v.Callee.(*ast.MemberExpr); ok {
			tokens = append(tokens, walkExpression(member.Object)...)
			tokens = append(tokens, identToken(member.Property, "method", 0)...)
		} else {
			tokens = append(tokens, walkExpression(v.Callee)...)
		}
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpression(arg)...)
		}
		return tokens
	case *ast.IndexExpr:
		return append(walkExpression(v.Object), walkExpression(v.Index)...)
	case *ast.NewExpr:
		tokens := identToken(v.Callee, "type", 0)
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpression(arg)...)
		}
		return tokens
	case *ast.UnaryExpr:
		return walkExpression(v.Value)
	case *ast.BinaryExpr:
		return append(walkExpression(v.Left), walkExpression(v.Right)...)
	case *ast.AssignExpr:
		return append(walkExpression(v.Target), walkExpression(v.Value)...)
	case *ast.ParenExpr:
		return walkExpression(v.Value)
	}
	return nil
}

// stringToken spans the quotes, which the unquoted value does not include
func stringToken(s *ast.StringLit) []SemanticToken {
	if s.EndPos.Line != s.Pos.Line || s.EndPos.Column <= s.Pos.Column {
		return nil
	}
	return makeToken(s.Pos, s.EndPos.Column-s.Pos.Column, "string", 0)
}

var declaration = modifier("declaration")

func modifier(name string) int {
	return 1 << indexOf(name, SemanticTokenModifiers)
}

func identToken(id ast.Ident, tokenType string, modifiers int) []SemanticToken {
	return makeToken(id.Pos, len(id.Value), tokenType, modifiers)
}

// makeToken creates a semantic token of length characters at pos
func makeToken(pos ast.Position, length int, tokenType string, modifiers int) []SemanticToken {
	if length <= 0 || pos.Line == 0 {
		return nil
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
