package codegen

import (
	"tsanchor/internal/ir"
	"tsanchor/internal/rust"
)

const lifetime = "info"

func (g *generator) contextStruct(ix *ir.Instruction) (*rust.Struct, error) {
	st := &rust.Struct{
		Attrs: []rust.Attribute{{Name: "derive", Args: []rust.Expr{rust.Ident("Accounts")}}},
		Pub:   true,
		Name:  ix.ContextName(),
	}

	if ix.UsesParamSeeds() {
		args := make([]rust.Expr, len(ix.Params))
		for i, p := range ix.Params {
			args[i] = &rust.TypeArg{Name: snake(p.Name), Type: rust.Named(p.Type.RustName())}
		}
		st.Attrs = append(st.Attrs, rust.Attribute{Name: "instruction", Args: args})
	}

	if len(ix.Accounts) == 0 {
		return st, nil
	}
	st.Lifetime = lifetime

	for _, b := range ix.Accounts {
		field, err := g.bindingField(b)
		if err != nil {
			return nil, err
		}
		st.Fields = append(st.Fields, field)
	}

	if ix.NeedsSystemProgram() {
		st.Fields = append(st.Fields, rust.StructField{
			Pub:  true,
			Name: "system_program",
			Type: rust.WithLifetime("Program", lifetime, rust.Named("System")),
		})
	}
	return st, nil
}

func (g *generator) bindingField(b *ir.AccountBinding) (rust.StructField, error) {
	field := rust.StructField{Pub: true, Name: snake(b.Name)}

	switch b.Kind {
	case ir.ProgramAccount:
		field.Type = rust.WithLifetime("Account", lifetime, rust.Named(b.TypeName))
	case ir.SignerAccount:
		field.Type = rust.WithLifetime("Signer", lifetime)
	case ir.SystemAccount:
		field.Type = rust.WithLifetime("SystemAccount", lifetime)
	case ir.UncheckedAccount:
		field.Type = rust.WithLifetime("UncheckedAccount", lifetime)
		field.Attrs = append(field.Attrs, rust.Attribute{
			Name:  "doc",
			Value: rust.Str(" CHECK: not validated by the program"),
		})
	}

	constraints, err := g.constraints(b)
	if err != nil {
		return field, err
	}
	if len(constraints) > 0 {
		field.Attrs = append(field.Attrs, rust.Attribute{Name: "account", Args: constraints})
	}
	return field, nil
}

// constraints renders the #[account(...)] arguments in Anchor's usual order
func (g *generator) constraints(b *ir.AccountBinding) ([]rust.Expr, error) {
	var args []rust.Expr

	creates := b.Init || b.InitIfNeeded
	if b.Mutable && !creates {
		args = append(args, rust.Ident("mut"))
	}
	if b.Init {
		args = append(args, rust.Ident("init"))
	}
	if b.InitIfNeeded {
		args = append(args, rust.Ident("init_if_needed"))
	}
	if b.Payer != "" {
		args = append(args, rust.Meta("payer", rust.Ident(snake(b.Payer))))
	}
	if creates {
		space, err := g.space(b.TypeName)
		if err != nil {
			return nil, err
		}
		args = append(args, rust.Meta("space", space))
	}
	if b.Derived {
		seeds := make([]rust.Expr, len(b.Seeds))
		for i, s := range b.Seeds {
			seeds[i] = seedExpr(s)
		}
		args = append(args, rust.Meta("seeds", &rust.Array{Elements: seeds}), rust.Ident("bump"))
	}
	if b.Close != "" {
		args = append(args, rust.Meta("close", rust.Ident(snake(b.Close))))
	}
	return args, nil
}

func seedExpr(s ir.Seed) rust.Expr {
	switch s.Kind {
	case ir.SeedLiteral:
		return rust.ByteStr(s.Value)
	case ir.SeedAccountKey:
		key := &rust.MethodCall{Recv: rust.Ident(snake(s.Value)), Method: "key"}
		return &rust.MethodCall{Recv: key, Method: "as_ref"}
	}

	param := rust.Ident(snake(s.Value))
	switch {
	case s.Type.IsString():
		return &rust.MethodCall{Recv: param, Method: "as_bytes"}
	case s.Type.IsPubkey():
		return &rust.MethodCall{Recv: param, Method: "as_ref"}
	}
	bytes := &rust.MethodCall{Recv: param, Method: "to_le_bytes"}
	return &rust.MethodCall{Recv: bytes, Method: "as_ref"}
}
