package format

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterRaw = `use anchor_lang :: prelude :: * ; declare_id ! ( "11111111111111111111111111111111" ) ; ` +
	`# [ program ] pub mod counter { use super :: * ; ` +
	`pub fn increment ( ctx : Context < IncrementContext > , by : u64 ) -> Result < ( ) > { ` +
	`ctx . accounts . counter . count += by ; Ok ( ( ) ) } } ` +
	`# [ derive ( Accounts ) ] pub struct IncrementContext < 'info > { ` +
	`# [ account ( mut ) ] pub counter : Account < 'info , Counter > , } ` +
	`# [ account ] pub struct Counter { pub count : u64 , }`

const counterFormatted = `use anchor_lang::prelude::*;

declare_id!("11111111111111111111111111111111");

#[program]
pub mod counter {
    use super::*;

    pub fn increment(ctx: Context<IncrementContext>, by: u64) -> Result<()> {
        ctx.accounts.counter.count += by;
        Ok(())
    }
}

#[derive(Accounts)]
pub struct IncrementContext<'info> {
    #[account(mut)]
    pub counter: Account<'info, Counter>,
}

#[account]
pub struct Counter {
    pub count: u64,
}
`

func TestBuiltinCounter(t *testing.T) {
	out, err := Builtin{}.Format(counterRaw)
	require.NoError(t, err)
	assert.Equal(t, counterFormatted, out)
}

func TestBuiltinIsIdempotent(t *testing.T) {
	out, err := Builtin{}.Format(counterFormatted)
	require.NoError(t, err)
	assert.Equal(t, counterFormatted, out)
}

func TestBuiltinShapes(t *testing.T) {
	raw := `pub struct Empty { } fn f ( ) { let x = - a ; let y = ! flag ; ` +
		`let z : [ u8 ; 4 ] = [ 0 ; 4 ] ; }`
	expected := `pub struct Empty {}

fn f() {
    let x = -a;
    let y = !flag;
    let z: [u8; 4] = [0; 4];
}
`
	out, err := Builtin{}.Format(raw)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestBuiltinAttributesAndSeeds(t *testing.T) {
	raw := `# [ derive ( Accounts ) ] # [ instruction ( label : String ) ] pub struct VoteContext < 'info > { ` +
		`# [ account ( init , payer = user , space = 8 + 40 , seeds = [ b"vote" , user . key ( ) . as_ref ( ) , label . as_bytes ( ) ] , bump ) ] ` +
		`pub vote : Account < 'info , Vote > , ` +
		`# [ doc = " CHECK: not validated by the program" ] pub other : UncheckedAccount < 'info > , }`
	expected := `#[derive(Accounts)]
#[instruction(label: String)]
pub struct VoteContext<'info> {
    #[account(init, payer = user, space = 8 + 40, seeds = [b"vote", user.key().as_ref(), label.as_bytes()], bump)]
    pub vote: Account<'info, Vote>,
    #[doc = " CHECK: not validated by the program"]
    pub other: UncheckedAccount<'info>,
}
`
	out, err := Builtin{}.Format(raw)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unclosed brace", "fn f ( ) {"},
		{"stray paren", "fn f ( ) ) { }"},
		{"mismatched", "fn f ( ] { }"},
		{"unknown character", "let x = @ ;"},
		{"unterminated string", `let x = "abc ;`},
		{"char literal", "let x = ' ' ;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Builtin{}.Format(tt.raw)
			require.Error(t, err)
			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr))
		})
	}
}

func TestNew(t *testing.T) {
	f, err := New("", "")
	require.NoError(t, err)
	assert.IsType(t, Builtin{}, f)

	f, err = New(RustfmtName, "/opt/rustfmt")
	require.NoError(t, err)
	assert.Equal(t, Rustfmt{Path: "/opt/rustfmt"}, f)

	_, err = New("prettier", "")
	assert.Error(t, err)
}

func TestRustfmtMissingBinary(t *testing.T) {
	_, err := Rustfmt{Path: "/nonexistent/tsanchor-rustfmt"}.Format("fn main() {}")
	require.Error(t, err)
	var rustfmtErr *RustfmtError
	assert.True(t, errors.As(err, &rustfmtErr))
}

func TestRustfmt(t *testing.T) {
	if _, err := exec.LookPath("rustfmt"); err != nil {
		t.Skip("rustfmt not installed")
	}
	out, err := Rustfmt{}.Format(counterRaw)
	require.NoError(t, err)
	assert.Contains(t, out, "pub mod counter {")
	assert.Contains(t, out, "ctx.accounts.counter.count += by;")

	_, err = Rustfmt{}.Format("fn f( {")
	assert.Error(t, err)
}
