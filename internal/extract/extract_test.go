package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tsanchor/internal/ast"
	"tsanchor/internal/errors"
	"tsanchor/internal/ir"
	"tsanchor/internal/parser"
)

const counterSource = `import { Account, Signer, u64 } from "@tsanchor/lang";
import lang, * as everything from "@tsanchor/lang";

export default class Counter {
    increment(counter: CounterAccount, by: u64) {
        counter.count += by;
    }
}

export interface CounterAccount extends Account {
    count: u64;
}

export interface Point {
    x: i32;
    y: i32;
}
`

func parse(t *testing.T, source string) *ast.Module {
	t.Helper()
	module, parseErrors := parser.ParseSource("test.ts", source)
	require.Empty(t, parseErrors)
	return module
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var ce errors.CompilerError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, code, ce.Code, ce.Message)
}

func TestExtractCounter(t *testing.T) {
	result, err := Extract(parse(t, counterSource), Options{})
	require.NoError(t, err)

	require.NotNil(t, result.ProgramClass)
	assert.Equal(t, "Counter", result.ProgramClass.Name.Value)

	require.Len(t, result.Imports, 2)
	// popped from the end, so the second import comes first
	assert.Empty(t, result.Imports[0].Names)
	assert.Equal(t, []string{"Account", "Signer", "u64"}, result.Imports[1].Names)
	assert.Equal(t, "@tsanchor/lang", result.Imports[1].Source)

	require.Len(t, result.CustomTypes, 2)
	require.Len(t, result.Accounts, 2)
	counter := result.CustomTypes["CounterAccount"]
	require.NotNil(t, counter)
	assert.True(t, counter.IsAccount)
	assert.Same(t, counter, result.Accounts["CounterAccount"])
	require.Len(t, counter.Fields, 1)
	assert.Equal(t, "count", counter.Fields[0].Name)
	assert.True(t, counter.Fields[0].Type.IsInteger())

	point := result.CustomTypes["Point"]
	require.NotNil(t, point)
	assert.False(t, point.IsAccount)
	assert.Len(t, point.Fields, 2)

	for name, acct := range result.CustomTypes {
		assert.Equal(t, name, acct.Name)
	}
	assert.Empty(t, result.Warnings)

	require.NotNil(t, result.Types)
	assert.True(t, result.Types.IsImportedType("Signer"))
	assert.False(t, result.Types.IsImportedType("SystemAccount"))
}

func TestExtractImportWarnings(t *testing.T) {
	source := `import { Thing } from "@tsanchor/lang";
import { helper } from "./local";
export default class P {}
`
	result, err := Extract(parse(t, source), Options{})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 2)
	for _, w := range result.Warnings {
		assert.Equal(t, errors.WarningUnknownImport, w.Code)
		assert.Equal(t, errors.Warning, w.Level)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   string
	}{
		{"default function", `export default function main() {}`, errors.ErrorInvalidDefaultExport},
		{"default expression", `export default 42;`, errors.ErrorInvalidDefaultExport},
		{"missing class", `export interface A { x: u8; }`, errors.ErrorMissingProgramClass},
		{"empty module", ``, errors.ErrorMissingProgramClass},
		{"exported type alias", "export default class P {}\nexport type Mode = \"a\" | \"b\";", errors.ErrorInvalidNamedExport},
		{"exported enum", "export default class P {}\nexport enum Side { Buy, Sell }", errors.ErrorInvalidNamedExport},
		{"exported class", "export default class P {}\nexport class Q {}", errors.ErrorInvalidNamedExport},
		{"bare class", "class Helper {}\nexport default class P {}", errors.ErrorInvalidSyntax},
		{"bare variable", "const x = 1;\nexport default class P {}", errors.ErrorInvalidSyntax},
		{"interface method", "export default class P {}\nexport interface A { run(): void; }", errors.ErrorInvalidInterfaceMember},
		{"optional field", "export default class P {}\nexport interface A { x?: u8; }", errors.ErrorInvalidInterfaceMember},
		{"untyped field", "export default class P {}\nexport interface A { x; }", errors.ErrorInvalidInterfaceMember},
		{"bad extends", "export default class P {}\nexport interface A extends Point { x: u8; }", errors.ErrorInvalidInterfaceMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(parse(t, tt.source), Options{})
			requireCode(t, err, tt.code)
		})
	}
}

func TestFirstErrorFollowsPopOrder(t *testing.T) {
	// the type alias comes first in source but the default function is visited first
	source := "export type Mode = \"a\";\nexport default function main() {}"
	_, err := Extract(parse(t, source), Options{})
	requireCode(t, err, errors.ErrorInvalidDefaultExport)
}

func TestDuplicates(t *testing.T) {
	source := `export default class First {}
export default class Second {}
export interface Shape extends Account { a: u8; }
export interface Shape { b: u16; c: u16; }
`
	t.Run("overwrite keeps the last visited", func(t *testing.T) {
		result, err := Extract(parse(t, source), Options{Duplicates: DuplicateOverwrite})
		require.NoError(t, err)
		assert.Equal(t, "First", result.ProgramClass.Name.Value)
		shape := result.CustomTypes["Shape"]
		require.NotNil(t, shape)
		assert.True(t, shape.IsAccount)
		assert.Len(t, shape.Fields, 1)
		assert.Same(t, shape, result.Accounts["Shape"])
	})

	t.Run("strict rejects", func(t *testing.T) {
		_, err := Extract(parse(t, source), Options{Duplicates: DuplicateStrict})
		requireCode(t, err, errors.ErrorDuplicateDeclaration)
	})
}

func TestParseDuplicatePolicy(t *testing.T) {
	policy, err := ParseDuplicatePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DuplicateOverwrite, policy)

	policy, err = ParseDuplicatePolicy("strict")
	require.NoError(t, err)
	assert.Equal(t, DuplicateStrict, policy)
	assert.Equal(t, "strict", policy.String())

	_, err = ParseDuplicatePolicy("merge")
	assert.Error(t, err)
}

func moduleSource(interfaces, instructions int) string {
	var sb strings.Builder
	sb.WriteString("import { Account, u64 } from \"@tsanchor/lang\";\n")
	sb.WriteString("export default class Generated {\n")
	for i := 0; i < instructions; i++ {
		fmt.Fprintf(&sb, "    ix%d(by: u64) {}\n", i)
	}
	sb.WriteString("}\n")
	for i := 0; i < interfaces; i++ {
		fmt.Fprintf(&sb, "export interface Record%d extends Account { value: u64; }\n", i)
	}
	return sb.String()
}

func TestShapePreservationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("N interfaces and M instructions survive extraction and population", prop.ForAll(
		func(n, m int) bool {
			module, parseErrors := parser.ParseSource("gen.ts", moduleSource(n, m))
			if len(parseErrors) > 0 {
				return false
			}
			result, err := Extract(module, Options{})
			if err != nil {
				return false
			}
			program := ir.NewProgram(result.ProgramClass.Name.Value)
			program.Accounts = result.Accounts
			if err := program.PopulateFromClass(result.ProgramClass, result.CustomTypes, ir.PopulateOptions{}); err != nil {
				return false
			}
			return len(program.CustomTypes) == n &&
				len(program.Accounts) >= n &&
				len(program.Instructions) == m
		},
		gen.IntRange(0, 8),
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}
