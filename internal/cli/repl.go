package cli

import (
	"github.com/spf13/cobra"
	"tsanchor/repl"
)

// NewReplCommand creates the repl command
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Translate modules typed at a prompt (.run, .clear, .quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := rootOpts.translateOptions()
			if err != nil {
				return err
			}
			repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			return nil
		},
	}
}
