package types

import (
	"fmt"

	"tsanchor/internal/stdlib"
)

// ImportParser registers import declarations and reports names the framework
// does not provide.
type ImportParser struct {
	typeRegistry *TypeRegistry
}

// NewImportParser creates a new import parser
func NewImportParser(typeRegistry *TypeRegistry) *ImportParser {
	return &ImportParser{typeRegistry: typeRegistry}
}

// ParseImport records names imported from source and returns warnings for
// unknown modules or names. Warnings never fail a translation.
func (ip *ImportParser) ParseImport(source string, names []string) []string {
	var warnings []string

	module := stdlib.GetModuleDefinition(source)
	if module == nil {
		warnings = append(warnings, fmt.Sprintf("module %q is not a framework module; its imports are ignored", source))
	}

	for _, name := range names {
		ip.typeRegistry.AddImportedType(name, source)
		if module == nil {
			continue
		}
		if _, isType := module.Types[name]; isType {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%q is not exported by %s", name, source))
	}

	return warnings
}
