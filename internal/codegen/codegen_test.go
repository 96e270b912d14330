package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tsanchor/internal/extract"
	"tsanchor/internal/format"
	"tsanchor/internal/ir"
	"tsanchor/internal/parser"
	"tsanchor/internal/rust"
)

func populate(t *testing.T, filename, source string) *ir.Program {
	t.Helper()
	module, parseErrors := parser.ParseSource(filename, source)
	require.Empty(t, parseErrors)

	result, err := extract.Extract(module, extract.Options{})
	require.NoError(t, err)

	program := ir.NewProgram(result.ProgramClass.Name.Value)
	program.Accounts = result.Accounts
	require.NoError(t, program.PopulateFromClass(result.ProgramClass, result.CustomTypes, ir.PopulateOptions{}))
	return program
}

func render(t *testing.T, program *ir.Program, opts Options) string {
	t.Helper()
	file, err := Generate(program, opts)
	require.NoError(t, err)
	out, err := format.Builtin{}.Format(file.String())
	require.NoError(t, err)
	return out
}

func TestGenerateGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, name := range []string{"counter", "vote"} {
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(filepath.Join("testdata", "input", name+".ts"))
			require.NoError(t, err)

			program := populate(t, name+".ts", string(source))
			g.Assert(t, name, []byte(render(t, program, Options{})))
		})
	}
}

func TestCounterScenario(t *testing.T) {
	source, err := os.ReadFile(filepath.Join("testdata", "input", "counter.ts"))
	require.NoError(t, err)
	program := populate(t, "counter.ts", string(source))

	require.Len(t, program.CustomTypes, 1)
	require.Len(t, program.Accounts, 1)
	counter := program.CustomTypes["Counter"]
	require.Len(t, counter.Fields, 1)
	assert.Equal(t, "count", counter.Fields[0].Name)
	assert.True(t, counter.Fields[0].Type.IsInteger())

	require.Len(t, program.Instructions, 1)
	ix := program.Instructions[0]
	assert.Equal(t, "increment", ix.Name)
	require.Len(t, ix.Params, 1)
	assert.Equal(t, "by", ix.Params[0].Name)
	assert.True(t, ix.Params[0].Type.IsInteger())
}

func TestPlainInterfaceCounter(t *testing.T) {
	source := `import { u64 } from "@tsanchor/lang";

export interface Counter { count: u64 }

export default class CounterProgram {
    increment(counter: Counter, by: u64) {
        counter.count += by;
    }
}
`
	program := populate(t, "plain.ts", source)
	require.Len(t, program.CustomTypes, 1)
	require.Len(t, program.Instructions, 1)
	require.Len(t, program.Instructions[0].Params, 1)

	expected, err := os.ReadFile(filepath.Join("testdata", "golden", "counter.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(expected), render(t, program, Options{}))
}

func TestOptions(t *testing.T) {
	source, err := os.ReadFile(filepath.Join("testdata", "input", "counter.ts"))
	require.NoError(t, err)

	out := render(t, populate(t, "counter.ts", string(source)), Options{ProgramID: "Cfg1111111111111111111111111111111111111111"})
	assert.Contains(t, out, `declare_id!("Cfg1111111111111111111111111111111111111111");`)

	vote, err := os.ReadFile(filepath.Join("testdata", "input", "vote.ts"))
	require.NoError(t, err)
	out = render(t, populate(t, "vote.ts", string(vote)), Options{ProgramID: "Ignored", MaxStringLen: 32})
	assert.Contains(t, out, `declare_id!("Vote111111111111111111111111111111111111111");`)
	assert.Contains(t, out, "space = 8 + 101")
}

func TestContextShapes(t *testing.T) {
	source := `export default class Shapes {
    ping(n: u64) {}
    touch(target: UncheckedAccount, wallet: SystemAccount) {}
    seed(vault: Vault, payer: Signer, key: Pubkey, tag: string) {
        vault.derive([key, tag]).initIfNeeded(payer);
    }
    flip(vault: Vault) {
        vault.v = -(vault.v + 1);
        vault.flag = !vault.flag;
        vault.name = "x";
        vault.type = 2;
    }
}
export interface Vault extends Account { v: i64; flag: bool; name: string; type: u8; }
`
	program := populate(t, "shapes.ts", source)
	file, err := Generate(program, Options{})
	require.NoError(t, err)
	raw := file.String()

	assert.Contains(t, raw, "pub struct PingContext { }")
	assert.Contains(t, raw, "pub fn ping ( ctx : Context < PingContext > , n : u64 )")
	assert.Contains(t, raw, `# [ doc = " CHECK: not validated by the program" ] pub target : UncheckedAccount < 'info >`)
	assert.Contains(t, raw, "pub wallet : SystemAccount < 'info >")
	assert.Contains(t, raw, "# [ instruction ( key : Pubkey , tag : String ) ]")
	assert.Contains(t, raw, "init_if_needed , payer = payer , space = 8 + 78 , seeds = [ key . as_ref ( ) , tag . as_bytes ( ) ] , bump")
	assert.Contains(t, raw, "ctx . accounts . vault . v = - ( ctx . accounts . vault . v + 1 ) ;")
	assert.Contains(t, raw, "ctx . accounts . vault . flag = ! ctx . accounts . vault . flag ;")
	assert.Contains(t, raw, `ctx . accounts . vault . name = String :: from ( "x" ) ;`)
	assert.Contains(t, raw, "ctx . accounts . vault . r#type = 2 ;")
	assert.Contains(t, raw, "pub r#type : u8 ,")

	out, err := format.Builtin{}.Format(raw)
	require.NoError(t, err)
	assert.Contains(t, out, "        ctx.accounts.vault.v = -(ctx.accounts.vault.v + 1);\n")
	assert.Contains(t, out, "    pub r#type: u8,\n")
}

func TestOperandParentheses(t *testing.T) {
	g := &generator{program: ir.NewProgram("P")}
	a, b, c := &ir.ParamRef{Name: "a"}, &ir.ParamRef{Name: "b"}, &ir.ParamRef{Name: "c"}

	tests := []struct {
		expr     ir.Expr
		expected string
	}{
		{&ir.BinaryExpr{Op: "-", Left: &ir.BinaryExpr{Op: "-", Left: a, Right: b}, Right: c}, "a - b - c"},
		{&ir.BinaryExpr{Op: "-", Left: a, Right: &ir.BinaryExpr{Op: "-", Left: b, Right: c}}, "a - ( b - c )"},
		{&ir.BinaryExpr{Op: "+", Left: a, Right: &ir.BinaryExpr{Op: "*", Left: b, Right: c}}, "a + b * c"},
		{&ir.BinaryExpr{Op: "%", Left: &ir.BinaryExpr{Op: "+", Left: a, Right: b}, Right: c}, "( a + b ) % c"},
		{&ir.BinaryExpr{Op: "*", Left: &ir.ParenExpr{Value: a}, Right: b}, "a * b"},
	}
	for _, tt := range tests {
		file := &rust.File{Items: []rust.Item{&rust.Fn{Name: "f", Body: []rust.Stmt{&rust.ExprStmt{Expr: g.expr(tt.expr)}}}}}
		assert.Equal(t, "fn f ( ) { "+tt.expected+" ; }", file.String())
	}
}

func rotatedSource(shift int) string {
	records := []string{
		"export interface Alpha extends Account { a: u8; beta: Beta; }",
		"export interface Beta { b: u16; }",
		"export interface Gamma extends Account { g: u32; }",
		"export interface Delta { d: bool; }",
	}
	var sb strings.Builder
	sb.WriteString("export default class Rotating {\n")
	sb.WriteString("    run(alpha: Alpha, gamma: Gamma, delta: Delta) { alpha.a = 1; gamma.g += 2; }\n")
	sb.WriteString("}\n")
	for i := range records {
		fmt.Fprintln(&sb, records[(i+shift)%len(records)])
	}
	return sb.String()
}

func TestEmissionIsDeterministic(t *testing.T) {
	baseline := render(t, populate(t, "base.ts", rotatedSource(0)), Options{})

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("declaration order never changes the output", prop.ForAll(
		func(shift int) bool {
			program := populate(t, "rotated.ts", rotatedSource(shift))
			first := render(t, program, Options{})
			second := render(t, program, Options{})
			return first == baseline && second == baseline
		},
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
