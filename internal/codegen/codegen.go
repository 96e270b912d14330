package codegen

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/tliron/commonlog"
	"tsanchor/internal/ir"
	"tsanchor/internal/rust"
)

var log = commonlog.GetLogger("tsanchor.codegen")

const (
	// DefaultProgramID is the system program address, used when neither the
	// class nor the configuration names a program id
	DefaultProgramID = "11111111111111111111111111111111"

	// DefaultMaxStringLen is the byte budget reserved for each string field
	DefaultMaxStringLen = 64
)

// Options controls emission
type Options struct {
	ProgramID    string // used when the class declares no PROGRAM_ID
	MaxStringLen int
}

func (o Options) programID(p *ir.Program) string {
	switch {
	case p.ProgramID != "":
		return p.ProgramID
	case o.ProgramID != "":
		return o.ProgramID
	}
	return DefaultProgramID
}

func (o Options) maxStringLen() int {
	if o.MaxStringLen > 0 {
		return o.MaxStringLen
	}
	return DefaultMaxStringLen
}

type generator struct {
	program *ir.Program
	opts    Options
}

// Generate builds the Anchor program for a populated IR program. The result
// depends only on the program content: records are emitted sorted by name
// and instructions in declaration order.
func Generate(p *ir.Program, opts Options) (*rust.File, error) {
	g := &generator{program: p, opts: opts}

	file := &rust.File{}
	file.Items = append(file.Items,
		&rust.Use{Path: []string{"anchor_lang", "prelude"}, Glob: true},
		&rust.MacroItem{Name: "declare_id", Args: []rust.Expr{rust.Str(opts.programID(p))}},
	)

	mod := &rust.Module{
		Attrs: []rust.Attribute{{Name: "program"}},
		Pub:   true,
		Name:  g.moduleName(),
		Items: []rust.Item{&rust.Use{Path: []string{"super"}, Glob: true}},
	}
	for _, ix := range p.Instructions {
		mod.Items = append(mod.Items, g.instructionFn(ix))
	}
	file.Items = append(file.Items, mod)

	for _, ix := range p.Instructions {
		ctx, err := g.contextStruct(ix)
		if err != nil {
			return nil, err
		}
		file.Items = append(file.Items, ctx)
	}

	for _, name := range p.RecordNames() {
		record, _ := p.Record(name)
		file.Items = append(file.Items, g.recordStruct(record))
	}

	log.Debugf("generated %s: %d instructions, %d records", p.Name, len(p.Instructions), len(p.RecordNames()))
	return file, nil
}

func (g *generator) moduleName() string {
	if g.program.ModuleName != "" {
		return g.program.ModuleName
	}
	return strcase.ToSnake(g.program.Name)
}

// snake converts a source identifier into a Rust value name, escaping
// reserved words as raw identifiers
func snake(name string) string {
	name = strcase.ToSnake(name)
	if reserved[name] {
		return "r#" + name
	}
	return name
}

var reserved = map[string]bool{
	"abstract": true, "as": true, "async": true, "await": true, "become": true, "box": true,
	"break": true, "const": true, "continue": true, "do": true, "dyn": true, "else": true,
	"enum": true, "extern": true, "false": true, "final": true, "fn": true, "for": true,
	"if": true, "impl": true, "in": true, "let": true, "loop": true, "macro": true,
	"match": true, "mod": true, "move": true, "mut": true, "override": true, "priv": true,
	"pub": true, "ref": true, "return": true, "static": true, "struct": true, "trait": true,
	"true": true, "try": true, "type": true, "typeof": true, "unsafe": true, "unsized": true,
	"use": true, "virtual": true, "where": true, "while": true, "yield": true,
}

func (g *generator) instructionFn(ix *ir.Instruction) *rust.Fn {
	result := rust.Named("Result", rust.UnitType())
	fn := &rust.Fn{
		Pub:    true,
		Name:   snake(ix.Name),
		Params: []rust.FnParam{{Name: "ctx", Type: rust.Named("Context", rust.Named(ix.ContextName()))}},
		Return: &result,
		Tail:   okUnit(),
	}
	for _, p := range ix.Params {
		fn.Params = append(fn.Params, rust.FnParam{Name: snake(p.Name), Type: rust.Named(p.Type.RustName())})
	}
	for _, stmt := range ix.Body {
		fn.Body = append(fn.Body, g.stmt(stmt))
	}
	return fn
}

func (g *generator) recordStruct(record *ir.Account) *rust.Struct {
	st := &rust.Struct{Pub: true, Name: record.Name}
	if record.IsAccount {
		st.Attrs = []rust.Attribute{{Name: "account"}}
	} else {
		st.Attrs = []rust.Attribute{{Name: "derive", Args: []rust.Expr{
			rust.Ident("AnchorSerialize"),
			rust.Ident("AnchorDeserialize"),
			rust.Ident("Clone"),
		}}}
	}
	for _, f := range record.Fields {
		st.Fields = append(st.Fields, rust.StructField{
			Pub:  true,
			Name: snake(f.Name),
			Type: rust.Named(f.Type.RustName()),
		})
	}
	return st
}

func okUnit() rust.Expr {
	return &rust.Call{Func: rust.Ident("Ok"), Args: []rust.Expr{&rust.Tuple{}}}
}

func (g *generator) space(typeName string) (rust.Expr, error) {
	total, err := g.program.Space(typeName, g.opts.maxStringLen())
	if err != nil {
		return nil, fmt.Errorf("space for %s: %w", typeName, err)
	}
	return &rust.Binary{
		Op:    "+",
		Left:  rust.Int(fmt.Sprint(ir.DiscriminatorSize)),
		Right: rust.Int(fmt.Sprint(total - ir.DiscriminatorSize)),
	}, nil
}
