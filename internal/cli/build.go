package cli

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"tsanchor/internal/transpile"
)

// BuildOptions holds flags for the build command
type BuildOptions struct {
	*RootOptions
	Output string
}

// NewBuildCommand creates the build command
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <input.ts>",
		Short: "Translate a contract module into an Anchor Rust source file",
		Long: `Translate a contract module into an Anchor Rust source file.

The output file is replaced only when translation succeeds. Without -o the
output is written next to the input with a .rs extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *BuildOptions, input string) error {
	started := time.Now()

	translateOpts, err := opts.translateOptions()
	if err != nil {
		return err
	}

	output := opts.Output
	if output == "" {
		output = defaultOutput(input)
	}

	result, err := transpile.TranslateFile(input, output, translateOpts)
	if err != nil {
		err = reportFailure(cmd.ErrOrStderr(), input, err)
		reportFailed(cmd.ErrOrStderr(), started)
		return err
	}

	reportWarnings(cmd.ErrOrStderr(), input, result.Warnings)
	reportSuccess(cmd.OutOrStdout(), "wrote %s (%d instructions) in %s",
		output, len(result.Program.Instructions), formatDuration(time.Since(started)))
	return nil
}

func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".rs"
}
