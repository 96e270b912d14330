package stdlib

import (
	"sort"

	"tsanchor/internal/builtins"
)

// LangModule is the import path of the framework module programs build against
const LangModule = "@tsanchor/lang"

// TypeKind classifies what a framework type means to the translator
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindAccount            // base interface of on-chain account records
	KindSigner
	KindSystemAccount
	KindUncheckedAccount
	KindResult
)

// ModuleDefinition defines a framework module
type ModuleDefinition struct {
	Name      string                        // Module name (e.g., "lang")
	Path      string                        // Import specifier (e.g., "@tsanchor/lang")
	Types     map[string]TypeDefinition     // Available types in this module
	Functions map[string]FunctionDefinition // Methods callable on framework values
}

// TypeDefinition defines a type exported by a framework module
type TypeDefinition struct {
	Name      string
	Kind      TypeKind
	IsGeneric bool
}

// Receiver names the values a framework method can be called on
type Receiver string

const (
	OnAccount Receiver = "account"
	OnInteger Receiver = "integer"
	OnDerived Receiver = "derived" // result of derive(...)
)

// FunctionDefinition defines a method signature from a framework module
type FunctionDefinition struct {
	Name       string                // Method name (e.g., "derive", "add")
	Receiver   Receiver              // What the method is called on
	Parameters []ParameterDefinition // Method parameters
	ReturnType *TypeRef              // Return type (nil if void)
	Detail     string                // One-line description for completions
}

// ParameterDefinition defines a method parameter
type ParameterDefinition struct {
	Name string   // Parameter name
	Type *TypeRef // Parameter type
}

// TypeRef represents a type reference that can be generic
type TypeRef struct {
	Name        string     // Base type name (e.g., "u64", "T")
	IsGeneric   bool       // Whether this is a generic type parameter
	GenericArgs []*TypeRef // Generic type arguments for parameterized types
}

func NewTypeRef(name string) *TypeRef {
	return &TypeRef{Name: name}
}

func NewGenericParam(name string) *TypeRef {
	return &TypeRef{Name: name, IsGeneric: true}
}

func NewGenericTypeRef(name string, args ...*TypeRef) *TypeRef {
	return &TypeRef{Name: name, GenericArgs: args}
}

func PubkeyType() *TypeRef {
	return &TypeRef{Name: string(builtins.Pubkey)}
}

// NewMethod creates a method definition
func NewMethod(name string, receiver Receiver, detail string, returnType *TypeRef, params ...ParameterDefinition) FunctionDefinition {
	return FunctionDefinition{
		Name:       name,
		Receiver:   receiver,
		Parameters: params,
		ReturnType: returnType,
		Detail:     detail,
	}
}

// Helper function for creating parameters
func NewParam(name string, typeRef *TypeRef) ParameterDefinition {
	return ParameterDefinition{Name: name, Type: typeRef}
}

// GetStandardModules returns all framework modules keyed by import path
func GetStandardModules() map[string]*ModuleDefinition {
	types := map[string]TypeDefinition{
		"Account":          {Name: "Account", Kind: KindAccount},
		"Signer":           {Name: "Signer", Kind: KindSigner},
		"SystemAccount":    {Name: "SystemAccount", Kind: KindSystemAccount},
		"UncheckedAccount": {Name: "UncheckedAccount", Kind: KindUncheckedAccount},
		"Result":           {Name: "Result", Kind: KindResult},
	}
	for name := range builtins.BuiltinTypes {
		types[name] = TypeDefinition{Name: name, Kind: KindPrimitive}
	}

	integer := NewGenericParam("T")
	account := NewTypeRef("Account")
	seeds := NewGenericTypeRef("Array", NewGenericParam("Seed"))

	return map[string]*ModuleDefinition{
		LangModule: {
			Name:  "lang",
			Path:  LangModule,
			Types: types,
			Functions: map[string]FunctionDefinition{
				"derive": NewMethod("derive", OnAccount, "program derived address with the given seeds",
					NewTypeRef("Derived"), NewParam("seeds", seeds)),
				"init": NewMethod("init", OnAccount, "create the account, funded by payer",
					nil, NewParam("payer", account)),
				"initIfNeeded": NewMethod("initIfNeeded", OnDerived, "create the account unless it exists",
					nil, NewParam("payer", account)),
				"close": NewMethod("close", OnAccount, "close the account, refunding rent to destination",
					nil, NewParam("destination", account)),
				"key": NewMethod("key", OnAccount, "public key of the account", PubkeyType()),
				"add": NewMethod("add", OnInteger, "addition", integer, NewParam("other", integer)),
				"sub": NewMethod("sub", OnInteger, "subtraction", integer, NewParam("other", integer)),
				"mul": NewMethod("mul", OnInteger, "multiplication", integer, NewParam("other", integer)),
				"div": NewMethod("div", OnInteger, "division", integer, NewParam("other", integer)),
				"mod": NewMethod("mod", OnInteger, "remainder", integer, NewParam("other", integer)),
			},
		},
	}
}

// GetModuleDefinition returns the definition for a framework module
func GetModuleDefinition(modulePath string) *ModuleDefinition {
	return GetStandardModules()[modulePath]
}

// LookupType finds a framework type by name in the language module
func LookupType(name string) (TypeDefinition, bool) {
	def, ok := GetModuleDefinition(LangModule).Types[name]
	return def, ok
}

// LookupMethod finds a framework method by name in the language module
func LookupMethod(name string) (FunctionDefinition, bool) {
	def, ok := GetModuleDefinition(LangModule).Functions[name]
	return def, ok
}

// SortedTypeNames lists the types of a module in name order
func (m *ModuleDefinition) SortedTypeNames() []string {
	names := make([]string, 0, len(m.Types))
	for name := range m.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortedFunctionNames lists the methods of a module in name order
func (m *ModuleDefinition) SortedFunctionNames() []string {
	names := make([]string, 0, len(m.Functions))
	for name := range m.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
