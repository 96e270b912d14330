package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"tsanchor/internal/codegen"
	"tsanchor/internal/extract"
	"tsanchor/internal/format"
	"tsanchor/internal/ir"
	"tsanchor/internal/transpile"
)

// Config is the tsanchor.yaml file
type Config struct {
	// ProgramID is declared when the program class has no PROGRAM_ID
	ProgramID string `yaml:"program_id,omitempty"`

	// Duplicates is overwrite (last visited declaration wins) or strict
	Duplicates string `yaml:"duplicates,omitempty"`

	// Formatter is builtin or rustfmt
	Formatter   string `yaml:"formatter,omitempty"`
	RustfmtPath string `yaml:"rustfmt_path,omitempty"`

	// MaxStringLen is the byte budget reserved for string fields
	MaxStringLen int `yaml:"max_string_len,omitempty"`

	// StateBinding names the account that holds program class fields
	StateBinding string `yaml:"state_binding,omitempty"`

	// StrictHelpers rejects private and protected methods instead of skipping them
	StrictHelpers bool `yaml:"strict_helpers,omitempty"`
}

// Default returns the configuration used without a file
func Default() *Config {
	return &Config{
		ProgramID:    codegen.DefaultProgramID,
		Duplicates:   extract.DuplicateOverwrite.String(),
		Formatter:    format.BuiltinName,
		MaxStringLen: codegen.DefaultMaxStringLen,
		StateBinding: ir.DefaultStateBinding,
	}
}

// Load reads a configuration file on top of the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks every field
func (c *Config) Validate() error {
	if _, err := extract.ParseDuplicatePolicy(c.Duplicates); err != nil {
		return err
	}
	if _, err := format.New(c.Formatter, c.RustfmtPath); err != nil {
		return err
	}
	if c.MaxStringLen < 0 {
		return fmt.Errorf("max_string_len must not be negative, got %d", c.MaxStringLen)
	}
	if c.ProgramID != "" && !isBase58(c.ProgramID) {
		return fmt.Errorf("program_id %q is not base58", c.ProgramID)
	}
	return nil
}

// Options converts the configuration into translation options
func (c *Config) Options() (transpile.Options, error) {
	duplicates, err := extract.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return transpile.Options{}, err
	}
	formatter, err := format.New(c.Formatter, c.RustfmtPath)
	if err != nil {
		return transpile.Options{}, err
	}

	return transpile.Options{
		Extract:   extract.Options{Duplicates: duplicates},
		Populate:  ir.PopulateOptions{StateBinding: c.StateBinding, StrictHelpers: c.StrictHelpers},
		Codegen:   codegen.Options{ProgramID: c.ProgramID, MaxStringLen: c.MaxStringLen},
		Formatter: formatter,
	}, nil
}

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func isBase58(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}
