package ir

import (
	"fmt"
	"sort"

	"tsanchor/internal/ast"
	"tsanchor/internal/builtins"
	"tsanchor/internal/errors"
	"tsanchor/internal/types"
)

// DiscriminatorSize is the account discriminator Anchor prepends to every account
const DiscriminatorSize = 8

// KeyProperty reads the address of an account binding, so no record may
// declare a field with this name
const KeyProperty = "key"

// AccountFromInterface converts an exported interface into a record.
// Property signatures become ordered fields; `extends Account` marks the
// record as on-chain account state.
func AccountFromInterface(iface *ast.InterfaceDecl) (*Account, error) {
	acct := &Account{
		Name: iface.Name.Value,
		Pos:  iface.Pos,
	}
	if err := checkIdent("record", acct.Name, iface.Name.Pos); err != nil {
		return nil, err
	}
	fields := newNameSet(nil)

	for _, ext := range iface.Extends {
		if ext.Name.Value != "Account" || len(ext.Generics) > 0 || ext.Array {
			return nil, errors.InvalidInterfaceMember(acct.Name, ext.String(),
				"interfaces may only extend Account", ext.Pos)
		}
		acct.IsAccount = true
	}

	for _, member := range iface.Members {
		switch m := member.(type) {
		case *ast.MethodSignature:
			return nil, errors.InvalidInterfaceMember(acct.Name, m.Name.Value,
				"method signatures cannot be stored", m.Pos)
		case *ast.PropertySignature:
			if m.Optional {
				return nil, errors.InvalidInterfaceMember(acct.Name, m.Name.Value,
					"optional fields are not supported", m.Pos)
			}
			if m.Type == nil {
				return nil, errors.InvalidInterfaceMember(acct.Name, m.Name.Value,
					"missing type annotation", m.Pos)
			}
			if m.Name.Value == KeyProperty {
				return nil, errors.InvalidInterfaceMember(acct.Name, m.Name.Value,
					"'key' is reserved for the account address", m.Name.Pos)
			}
			if acct.Field(m.Name.Value) != nil {
				return nil, errors.DuplicateDeclaration("field", m.Name.Value, m.Name.Pos)
			}
			if err := fields.claim("field", m.Name.Value, m.Name.Pos); err != nil {
				return nil, err
			}
			acct.Fields = append(acct.Fields, &Field{
				Name: m.Name.Value,
				Type: types.FromTypeRef(m.Type),
				Pos:  m.Type.Pos,
			})
		}
	}

	return acct, nil
}

// checkRecords verifies that every custom field type resolves to a record
// and that no record contains itself.
func checkRecords(records map[string]*Account) error {
	candidates := make([]string, 0, len(records))
	for name := range records {
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)

	for _, name := range candidates {
		for _, field := range records[name].Fields {
			if field.Type.IsCustom() && records[field.Type.Name] == nil {
				return errors.UnresolvedType(field.Type.Name, field.Pos, candidates)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(records))
	var path []string
	var via []*Field // via[i] is the field of path[i] the walk descended through

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			start := 0
			for i, n := range path {
				if n == name {
					start = i
				}
			}
			chain := append(append([]string(nil), path[start:]...), name)
			links := make([]errors.CycleLink, 0, len(chain)-1)
			for i := start; i < len(path); i++ {
				links = append(links, errors.CycleLink{
					Record:   path[i],
					Target:   via[i].Type.Name,
					Position: via[i].Pos,
				})
			}
			return errors.RecursiveType(chain, records[name].Pos, links...)
		case done:
			return nil
		}

		state[name] = visiting
		path = append(path, name)
		for _, field := range records[name].Fields {
			if field.Type.IsCustom() {
				via = append(via, field)
				if err := visit(field.Type.Name); err != nil {
					return err
				}
				via = via[:len(via)-1]
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	for _, name := range candidates {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// Space returns the allocation size for an account record: discriminator
// plus the serialized size of every field. Strings are bounded by maxStringLen.
func (p *Program) Space(name string, maxStringLen int) (int, error) {
	size, err := p.recordSize(name, maxStringLen, map[string]bool{})
	if err != nil {
		return 0, err
	}
	return DiscriminatorSize + size, nil
}

func (p *Program) recordSize(name string, maxStringLen int, seen map[string]bool) (int, error) {
	record, ok := p.Record(name)
	if !ok {
		return 0, fmt.Errorf("unknown record %q", name)
	}
	if seen[name] {
		return 0, fmt.Errorf("record %q contains itself", name)
	}
	seen[name] = true
	defer delete(seen, name)

	total := 0
	for _, field := range record.Fields {
		if field.Type.IsPrimitive() {
			total += builtins.Size(field.Type.Name, maxStringLen)
			continue
		}
		size, err := p.recordSize(field.Type.Name, maxStringLen, seen)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}
