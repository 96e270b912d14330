package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tsanchor/internal/extract"
	"tsanchor/internal/format"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, extract.DuplicateOverwrite, opts.Extract.Duplicates)
	assert.Equal(t, "state", opts.Populate.StateBinding)
	assert.Equal(t, 64, opts.Codegen.MaxStringLen)
	assert.IsType(t, format.Builtin{}, opts.Formatter)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsanchor.yaml")
	content := `program_id: Prog1111111111111111111111111111111111111111
duplicates: strict
formatter: rustfmt
rustfmt_path: /usr/local/bin/rustfmt
max_string_len: 200
strict_helpers: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Prog1111111111111111111111111111111111111111", cfg.ProgramID)
	assert.Equal(t, "state", cfg.StateBinding)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, extract.DuplicateStrict, opts.Extract.Duplicates)
	assert.True(t, opts.Populate.StrictHelpers)
	assert.Equal(t, 200, opts.Codegen.MaxStringLen)
	assert.Equal(t, format.Rustfmt{Path: "/usr/local/bin/rustfmt"}, opts.Formatter)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "program: x\n"},
		{"bad duplicates", "duplicates: merge\n"},
		{"bad formatter", "formatter: prettier\n"},
		{"negative length", "max_string_len: -1\n"},
		{"not base58", "program_id: 0OIl\n"},
		{"malformed", "program_id: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
