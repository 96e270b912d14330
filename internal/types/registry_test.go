package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tsanchor/internal/ast"
	"tsanchor/internal/stdlib"
)

func TestFromTypeRef(t *testing.T) {
	u64 := FromTypeRef(&ast.TypeRef{Name: ast.Ident{Value: "u64"}})
	assert.True(t, u64.IsPrimitive())
	assert.True(t, u64.IsInteger())
	assert.Equal(t, "u64", u64.RustName())

	boolean := FromTypeRef(&ast.TypeRef{Name: ast.Ident{Value: "boolean"}})
	assert.Equal(t, "bool", boolean.Name)
	assert.True(t, boolean.IsBool())

	str := FromTypeRef(&ast.TypeRef{Name: ast.Ident{Value: "string"}})
	assert.True(t, str.IsString())
	assert.Equal(t, "String", str.RustName())

	custom := FromTypeRef(&ast.TypeRef{Name: ast.Ident{Value: "Vote"}})
	assert.True(t, custom.IsCustom())
	assert.Equal(t, "Vote", custom.RustName())

	array := FromTypeRef(&ast.TypeRef{Name: ast.Ident{Value: "u8"}, Array: true})
	assert.True(t, array.IsCustom())
	assert.Equal(t, "u8[]", array.Name)

	assert.True(t, FromTypeRef(nil).IsZero())
}

func TestTypeRegistry(t *testing.T) {
	registry := NewTypeRegistry()
	registry.AddUserDefinedType("Vote", true)
	registry.AddUserDefinedType("Point", false)

	assert.True(t, registry.IsUserDefinedType("Point"))
	assert.False(t, registry.IsUserDefinedType("Missing"))

	assert.True(t, registry.IsAccountType("Vote"))
	assert.False(t, registry.IsAccountType("Point"))

	kind, ok := registry.FrameworkKind("SystemAccount")
	require.True(t, ok)
	assert.Equal(t, stdlib.KindSystemAccount, kind)

	_, ok = registry.FrameworkKind("Vote")
	assert.False(t, ok)
}

func TestImportParser(t *testing.T) {
	registry := NewTypeRegistry()
	parser := NewImportParser(registry)

	warnings := parser.ParseImport("@tsanchor/lang", []string{"Account", "u64"})
	assert.Empty(t, warnings)
	assert.True(t, registry.IsImportedType("Account"))
	assert.True(t, registry.IsImportedType("u64"))
	assert.False(t, registry.IsImportedType("Signer"))

	warnings = parser.ParseImport("@tsanchor/lang", []string{"Nope"})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"Nope"`)

	warnings = parser.ParseImport("lodash", []string{"map"})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not a framework module")
}
