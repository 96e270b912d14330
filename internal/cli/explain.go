package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	cerrors "tsanchor/internal/errors"
)

// NewExplainCommand creates the explain command
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code>",
		Short: "Describe a diagnostic code such as E0005",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			description := cerrors.GetErrorDescription(code)
			if description == "Unknown error code" {
				return fmt.Errorf("unknown diagnostic code %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", code, cerrors.GetErrorCategory(code), description)
			return nil
		},
	}
}
