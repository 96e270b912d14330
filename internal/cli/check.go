package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"tsanchor/internal/errors"
	"tsanchor/internal/ir"
	"tsanchor/internal/parser"
	"tsanchor/internal/semantic"
	"tsanchor/internal/transpile"
)

// NewCheckCommand creates the check command
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <input.ts>",
		Short: "Report diagnostics without writing any output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			result, err := translate(rootOpts, args[0])
			if err != nil {
				err = reportFailure(cmd.ErrOrStderr(), args[0], err)
				reportFailed(cmd.ErrOrStderr(), started)
				return err
			}
			warnings := append(result.Warnings, lint(args[0])...)
			reportWarnings(cmd.ErrOrStderr(), args[0], warnings)
			reportSuccess(cmd.OutOrStdout(), "%s: ok in %s", args[0], formatDuration(time.Since(started)))
			return nil
		},
	}
}

// NewIRCommand creates the ir command
func NewIRCommand(rootOpts *RootOptions) *cobra.Command {
	var rust bool

	cmd := &cobra.Command{
		Use:   "ir <input.ts>",
		Short: "Print the intermediate program representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := translate(rootOpts, args[0])
			if err != nil {
				return reportFailure(cmd.ErrOrStderr(), args[0], err)
			}
			if rust {
				fmt.Fprint(cmd.OutOrStdout(), result.Source)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), ir.Print(result.Program))
			return nil
		},
	}

	cmd.Flags().BoolVar(&rust, "rust", false, "print the formatted Rust source instead")

	return cmd
}

// lint runs the unused-symbol analysis; the input already parsed once
func lint(input string) []errors.CompilerError {
	src, err := os.ReadFile(input)
	if err != nil {
		return nil
	}
	mod, parseErrors := parser.ParseSource(input, string(src))
	if len(parseErrors) > 0 {
		return nil
	}
	return semantic.NewAnalyzer().Analyze(mod)
}

func translate(rootOpts *RootOptions, input string) (*transpile.Result, error) {
	translateOpts, err := rootOpts.translateOptions()
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return transpile.TranslateSource(input, string(src), translateOpts)
}
