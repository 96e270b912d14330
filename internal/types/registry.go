package types

import (
	"tsanchor/internal/stdlib"
)

// TypeRegistry manages the type names visible to a program
type TypeRegistry struct {
	imports     map[string]string // local name -> import specifier
	userDefined map[string]bool   // name -> account state
}

// NewTypeRegistry creates an empty registry
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		imports:     make(map[string]string),
		userDefined: make(map[string]bool),
	}
}

// AddImportedType adds an imported name to the registry
func (tr *TypeRegistry) AddImportedType(name, modulePath string) {
	tr.imports[name] = modulePath
}

// AddUserDefinedType adds a declared record; isAccount marks on-chain state
func (tr *TypeRegistry) AddUserDefinedType(name string, isAccount bool) {
	tr.userDefined[name] = isAccount
}

// IsImportedType checks if a name was imported
func (tr *TypeRegistry) IsImportedType(typeName string) bool {
	_, ok := tr.imports[typeName]
	return ok
}

// IsUserDefinedType checks if a type is a declared record
func (tr *TypeRegistry) IsUserDefinedType(typeName string) bool {
	_, ok := tr.userDefined[typeName]
	return ok
}

// IsAccountType checks if a declared record is account state
func (tr *TypeRegistry) IsAccountType(typeName string) bool {
	return tr.userDefined[typeName]
}

// FrameworkKind returns the framework classification of a type name
func (tr *TypeRegistry) FrameworkKind(typeName string) (stdlib.TypeKind, bool) {
	if tr.IsUserDefinedType(typeName) {
		return 0, false
	}
	def, ok := stdlib.LookupType(typeName)
	if !ok {
		return 0, false
	}
	return def.Kind, true
}
