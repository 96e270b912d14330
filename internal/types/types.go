package types

import (
	"tsanchor/internal/ast"
	"tsanchor/internal/builtins"
)

// Kind separates primitive types from references to declared records
type Kind int

const (
	Primitive Kind = iota
	Custom
)

// Type is the semantic tag attached to fields and parameters
type Type struct {
	Kind Kind
	Name string
}

// PrimitiveType builds a primitive tag, normalizing "boolean" to "bool"
func PrimitiveType(name string) Type {
	if builtins.IsBoolType(name) {
		name = string(builtins.Bool)
	}
	return Type{Kind: Primitive, Name: name}
}

// CustomType builds a reference to a declared record by name
func CustomType(name string) Type {
	return Type{Kind: Custom, Name: name}
}

// FromTypeRef classifies a source type annotation. Generic and array
// annotations are kept as custom references under their printed form so
// that resolution reports them as unresolved.
func FromTypeRef(ref *ast.TypeRef) Type {
	if ref == nil {
		return Type{}
	}
	if len(ref.Generics) == 0 && !ref.Array && builtins.IsBuiltinType(ref.Name.Value) {
		return PrimitiveType(ref.Name.Value)
	}
	return CustomType(ref.String())
}

func (t Type) IsPrimitive() bool { return t.Kind == Primitive && t.Name != "" }
func (t Type) IsCustom() bool    { return t.Kind == Custom }
func (t Type) IsZero() bool      { return t.Name == "" }

func (t Type) IsInteger() bool {
	return t.IsPrimitive() && builtins.IsIntegerType(t.Name)
}

func (t Type) IsSigned() bool {
	return t.IsPrimitive() && builtins.IsSignedType(t.Name)
}

func (t Type) IsString() bool {
	return t.IsPrimitive() && t.Name == string(builtins.String)
}

func (t Type) IsPubkey() bool {
	return t.IsPrimitive() && t.Name == string(builtins.Pubkey)
}

func (t Type) IsBool() bool {
	return t.IsPrimitive() && builtins.IsBoolType(t.Name)
}

// RustName is the spelling of the type in generated Rust
func (t Type) RustName() string {
	if t.IsPrimitive() {
		return builtins.RustName(t.Name)
	}
	return t.Name
}

func (t Type) String() string {
	return t.Name
}
