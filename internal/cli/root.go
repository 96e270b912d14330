package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"tsanchor/internal/config"
	"tsanchor/internal/transpile"
)

var log = commonlog.GetLogger("tsanchor.cli")

// RootOptions holds global flags for all commands
type RootOptions struct {
	ConfigPath string
	Verbose    int
	NoColor    bool

	// overrides for the config file; empty means keep the file value
	ProgramID  string
	Formatter  string
	Duplicates string
}

// NewRootCommand creates the tsanchor command tree
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tsanchor",
		Short: "Translate TypeScript contract modules into Anchor programs",
		Long: `tsanchor reads a TypeScript-like contract module (one default-exported
program class plus exported account interfaces) and writes the equivalent
Anchor Rust program.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.Verbose, nil)
			if opts.NoColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a tsanchor.yaml file")
	cmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v", "log verbosity (repeat for more)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored diagnostics")
	cmd.PersistentFlags().StringVar(&opts.ProgramID, "program-id", "", "program id used when the class declares none")
	cmd.PersistentFlags().StringVar(&opts.Formatter, "formatter", "", "output formatter (builtin|rustfmt)")
	cmd.PersistentFlags().StringVar(&opts.Duplicates, "duplicates", "", "duplicate declaration policy (overwrite|strict)")

	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewIRCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewExplainCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))

	return cmd
}

// loadConfig reads the --config file, or starts from the defaults, and
// applies the override flags
func (o *RootOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		log.Debugf("loading config %s", o.ConfigPath)
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if o.ProgramID != "" {
		cfg.ProgramID = o.ProgramID
	}
	if o.Formatter != "" {
		cfg.Formatter = o.Formatter
	}
	if o.Duplicates != "" {
		cfg.Duplicates = o.Duplicates
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func (o *RootOptions) translateOptions() (transpile.Options, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return transpile.Options{}, err
	}
	return cfg.Options()
}
