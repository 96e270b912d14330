package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerItems(t *testing.T) {
	file := &File{Items: []Item{
		&Use{Path: []string{"anchor_lang", "prelude"}, Glob: true},
		&MacroItem{Name: "declare_id", Args: []Expr{Str("Prog111")}},
		&Struct{
			Attrs:    []Attribute{{Name: "derive", Args: []Expr{Ident("Accounts")}}},
			Pub:      true,
			Name:     "Bump",
			Lifetime: "info",
			Fields: []StructField{{
				Attrs: []Attribute{{Name: "account", Args: []Expr{
					Ident("mut"),
					Meta("seeds", &Array{Elements: []Expr{ByteStr("c")}}),
				}}},
				Pub:  true,
				Name: "counter",
				Type: WithLifetime("Account", "info", Named("Counter")),
			}},
		},
	}}

	expected := `use anchor_lang :: prelude :: * ; ` +
		`declare_id ! ( "Prog111" ) ; ` +
		`# [ derive ( Accounts ) ] pub struct Bump < 'info > { ` +
		`# [ account ( mut , seeds = [ b"c" ] ) ] pub counter : Account < 'info , Counter > , }`
	assert.Equal(t, expected, file.String())
}

func TestLowerFn(t *testing.T) {
	ret := Named("Result", UnitType())
	fn := &Fn{
		Pub:  true,
		Name: "bump",
		Params: []FnParam{
			{Name: "ctx", Type: Named("Context", Named("BumpContext"))},
			{Name: "by", Type: Named("u64")},
		},
		Return: &ret,
		Body: []Stmt{
			&Let{Mutable: true, Name: "total", Value: &Binary{Op: "*", Left: &Paren{Value: &Binary{Op: "+", Left: Ident("by"), Right: Int("1")}}, Right: Int("2")}},
			&Assign{
				Target: &Field{Recv: &Field{Recv: Ident("ctx"), Name: "accounts"}, Name: "total"},
				Op:     "+=",
				Value:  &Unary{Op: "-", Value: Ident("total")},
			},
			&Return{Value: &Call{Func: Ident("Ok"), Args: []Expr{&Tuple{}}}},
		},
		Tail: &Call{Func: Ident("Ok"), Args: []Expr{&Tuple{}}},
	}

	file := &File{Items: []Item{fn}}
	expected := `pub fn bump ( ctx : Context < BumpContext > , by : u64 ) -> Result < ( ) > { ` +
		`let mut total = ( by + 1 ) * 2 ; ` +
		`ctx . accounts . total += - total ; ` +
		`return Ok ( ( ) ) ; ` +
		`Ok ( ( ) ) }`
	assert.Equal(t, expected, file.String())
}

func TestLowerExprs(t *testing.T) {
	file := &File{Items: []Item{&Fn{
		Name: "f",
		Body: []Stmt{
			&ExprStmt{Expr: &MethodCall{Recv: &MethodCall{Recv: Ident("user"), Method: "key"}, Method: "as_ref"}},
			&ExprStmt{Expr: &Call{Func: PathOf("String", "from"), Args: []Expr{Str("x")}}},
			&ExprStmt{Expr: &MacroCall{Name: "msg", Args: []Expr{Str("hi")}}},
			&ExprStmt{Expr: &Tuple{Elements: []Expr{Bool(true)}}},
			&ExprStmt{Expr: &TypeArg{Name: "by", Type: Named("u64")}},
		},
	}}}
	expected := `fn f ( ) { ` +
		`user . key ( ) . as_ref ( ) ; ` +
		`String :: from ( "x" ) ; ` +
		`msg ! ( "hi" ) ; ` +
		`( true , ) ; ` +
		`by : u64 ; }`
	assert.Equal(t, expected, file.String())
}
