package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/tql/internal/config"
	"github.com/roach88/tql/internal/logger"
)

// RootOptions holds global flags for all commands. PersistentPreRunE
// replaces them with the merged configuration (flags > env > file >
// defaults) before any subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	DBPath     string
	LogJSON    bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tql CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tql",
		Short: "tql - TQL predicate fragment builder",
		Long: `Build, compile and store TQL predicate fragments.

Examples:
  tql render GreaterThanOrEqual f1 666     # (f1 >= 666)
  tql render In f1 666 777                 # (f1 in [666, 777])
  tql compile predicates.yaml              # compile a definition file
  tql lint ./predicates                    # lint a CUE package
  tql filter save adults predicates.yaml   # store a named filter`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyConfig(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Cleanup()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ./tql.toml)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "tql.db", "saved filter database")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewLintCommand(opts))
	cmd.AddCommand(NewOperatorsCommand(opts))
	cmd.AddCommand(NewFilterCommand(opts))

	return cmd
}

// applyConfig merges flags with the config file and environment, then
// initialises the logger.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	v, err := config.NewViper(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading config", err)
	}

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"format":        "format",
		"database.path": "db",
		"log.verbose":   "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return WrapExitError(ExitCommandError, "binding flag "+flag, err)
		}
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	opts.Format = cfg.Format
	opts.DBPath = cfg.Database.Path
	opts.Verbose = cfg.Log.Verbose
	opts.LogJSON = cfg.Log.JSON

	if err := logger.Initialize(opts.LogJSON, opts.Verbose); err != nil {
		return WrapExitError(ExitCommandError, "failed to initialize logger", err)
	}
	logger.Named("cli").Debugw("configuration loaded",
		"format", opts.Format,
		"db", opts.DBPath,
		logger.FieldPath, v.ConfigFileUsed())
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the formatter every command writes through.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	format := opts.Format
	if !isValidFormat(format) {
		format = "text"
	}
	return &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
