package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tsanchor/grammar"
)

const voteSource = `// vote program
import { Account, Pubkey, Result, Signer, u64 } from "@tsanchor/lang";
import * as lang from "@tsanchor/lang";

export default class VoteProgram {
    static PROGRAM_ID = new Pubkey("Vote111111111111111111111111111111111111111");

    initialize(state: VoteState, user: Signer): Result {
        state.derive(["vote"]).init(user);
        state.votes = new u64(0);
    }

    upvote(state: VoteState, by: u64): Result {
        state.derive(["vote"]);
        state.votes = state.votes.add(by);
    }
}

/* account shape */
export interface VoteState extends Account {
    votes: u64;
    bump: u8;
}
`

func TestParseVoteProgram(t *testing.T) {
	module, err := grammar.ParseString("vote.ts", voteSource)
	require.NoError(t, err)
	require.NotNil(t, module)
	require.Len(t, module.Items, 4)

	imp := module.Items[0].Import
	require.NotNil(t, imp)
	assert.Equal(t, `"@tsanchor/lang"`, imp.Source)
	require.NotNil(t, imp.Named)
	assert.Len(t, imp.Named.Specifiers, 5)
	assert.Equal(t, "Account", imp.Named.Specifiers[0].Imported.Value)

	ns := module.Items[1].Import
	require.NotNil(t, ns)
	require.NotNil(t, ns.Namespace)
	assert.Equal(t, "lang", ns.Namespace.Value)
	assert.Nil(t, ns.Named)

	export := module.Items[2].Export
	require.NotNil(t, export)
	assert.True(t, export.Default)
	require.NotNil(t, export.Decl.Class)
	class := export.Decl.Class
	assert.Equal(t, "VoteProgram", class.Name.Value)
	require.Len(t, class.Members, 3)

	programID := class.Members[0]
	assert.Equal(t, []string{"static"}, programID.Modifiers)
	assert.Equal(t, "PROGRAM_ID", programID.Name.Value)
	require.NotNil(t, programID.Property)
	require.NotNil(t, programID.Property.Value)

	initialize := class.Members[1]
	require.NotNil(t, initialize.Method)
	assert.Equal(t, "initialize", initialize.Name.Value)
	require.Len(t, initialize.Method.Params.Params, 2)
	assert.Equal(t, "Signer", initialize.Method.Params.Params[1].Type.Name.Value)
	assert.Equal(t, "Result", initialize.Method.Return.Name.Value)
	assert.Len(t, initialize.Method.Body.Statements, 2)

	iface := module.Items[3].Export
	require.NotNil(t, iface)
	assert.False(t, iface.Default)
	require.NotNil(t, iface.Decl.Interface)
	assert.Equal(t, "VoteState", iface.Decl.Interface.Name.Value)
	require.Len(t, iface.Decl.Interface.Extends, 1)
	assert.Equal(t, "Account", iface.Decl.Interface.Extends[0].Name.Value)
	require.Len(t, iface.Decl.Interface.Members, 2)
	assert.Equal(t, "u8", iface.Decl.Interface.Members[1].Type.Name.Value)
}

func TestParseOtherExports(t *testing.T) {
	source := `
export type Mode = "open" | "closed";
export enum Side { Buy, Sell = 2 }
export const LIMIT = 10;
export function helper(a: u64): u64 { return a; }
export default 42;
`
	module, err := grammar.ParseString("other.ts", source)
	require.NoError(t, err)
	require.Len(t, module.Items, 5)

	assert.NotNil(t, module.Items[0].Export.Decl.TypeAlias)
	assert.Len(t, module.Items[0].Export.Decl.TypeAlias.Types, 2)
	assert.NotNil(t, module.Items[1].Export.Decl.Enum)
	assert.Len(t, module.Items[1].Export.Decl.Enum.Members, 2)
	assert.NotNil(t, module.Items[2].Export.Decl.Variable)
	assert.NotNil(t, module.Items[3].Export.Decl.Function)
	assert.True(t, module.Items[4].Export.Default)
	assert.NotNil(t, module.Items[4].Export.Decl.Expr)
}

func TestParseExpressionShapes(t *testing.T) {
	source := `class Scratch {
    run(a: u64, b: u64) {
        const total = a + b * 2;
        this.count += -total;
        items[0] = !flag;
        return;
    }
}`
	module, err := grammar.ParseString("scratch.ts", source)
	require.NoError(t, err)
	require.Len(t, module.Items, 1)

	class := module.Items[0].Other.Class
	require.NotNil(t, class)
	body := class.Members[0].Method.Body.Statements
	require.Len(t, body, 4)

	require.NotNil(t, body[0].Variable)
	assert.Equal(t, "const", body[0].Variable.Kind)
	assert.Len(t, body[0].Variable.Value.Left.Ops, 2)

	require.NotNil(t, body[1].Expr)
	require.NotNil(t, body[1].Expr.Expr.Assign)
	assert.Equal(t, "+=", *body[1].Expr.Expr.Assign)

	require.NotNil(t, body[3].Return)
	assert.Nil(t, body[3].Return.Value)
}

func TestParseErrorPosition(t *testing.T) {
	_, err := grammar.ParseString("broken.ts", "export interface {")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.ts:1:")
}
