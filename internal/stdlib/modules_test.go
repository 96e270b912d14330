package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStandardModules(t *testing.T) {
	modules := GetStandardModules()

	lang := modules[LangModule]
	require.NotNil(t, lang, "lang module should exist")
	assert.Equal(t, "lang", lang.Name)
	assert.Equal(t, "@tsanchor/lang", lang.Path)

	assert.Equal(t, KindAccount, lang.Types["Account"].Kind)
	assert.Equal(t, KindSigner, lang.Types["Signer"].Kind)
	assert.Equal(t, KindPrimitive, lang.Types["u64"].Kind)
	assert.Equal(t, KindPrimitive, lang.Types["Pubkey"].Kind)

	derive := lang.Functions["derive"]
	assert.Equal(t, OnAccount, derive.Receiver)
	require.Len(t, derive.Parameters, 1)
	assert.Equal(t, "seeds", derive.Parameters[0].Name)

	add := lang.Functions["add"]
	assert.Equal(t, OnInteger, add.Receiver)
	assert.True(t, add.ReturnType.IsGeneric)

	closeFn := lang.Functions["close"]
	assert.Nil(t, closeFn.ReturnType)
}

func TestUnknownModule(t *testing.T) {
	assert.NotNil(t, GetModuleDefinition("@tsanchor/lang"))
	assert.Nil(t, GetModuleDefinition("lodash"))
}

func TestLookups(t *testing.T) {
	def, ok := LookupType("UncheckedAccount")
	assert.True(t, ok)
	assert.Equal(t, KindUncheckedAccount, def.Kind)

	_, ok = LookupType("Vote")
	assert.False(t, ok)

	method, ok := LookupMethod("initIfNeeded")
	assert.True(t, ok)
	assert.Equal(t, OnDerived, method.Receiver)

	names := GetModuleDefinition(LangModule).SortedFunctionNames()
	assert.Equal(t, []string{"add", "close", "derive", "div", "init", "initIfNeeded", "key", "mod", "mul", "sub"}, names)
}
