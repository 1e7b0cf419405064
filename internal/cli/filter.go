package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tql/internal/errors"
	"github.com/roach88/tql/internal/predfile"
	"github.com/roach88/tql/internal/store"
)

// NewFilterCommand creates the filter command group.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Manage saved filters",
		Long: `Manage saved filters: named, ordered predicate lists kept in the
SQLite database given by --db.`,
	}

	cmd.AddCommand(newFilterSaveCommand(rootOpts))
	cmd.AddCommand(newFilterShowCommand(rootOpts))
	cmd.AddCommand(newFilterListCommand(rootOpts))
	cmd.AddCommand(newFilterDeleteCommand(rootOpts))

	return cmd
}

func newFilterSaveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "save <name> <path>",
		Short:         "Save the definitions in path as a named filter",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)

			defs, err := loadDefinitions(formatter, args[1])
			if err != nil {
				return err
			}
			if _, errs := predfile.Compile(defs, predfile.LoadModeCollectAll); len(errs) > 0 {
				return formatter.FailAll("Compilation failed", errs)
			}
			ops, err := predfile.Operators(defs)
			if err != nil {
				code, message := errorCode(err)
				return formatter.Fail(code, message, nil)
			}

			return withStore(opts, formatter, func(s *store.Store) error {
				f, err := s.Save(cmd.Context(), args[0], ops)
				if err != nil {
					return storeFailure(formatter, err)
				}
				if formatter.JSON() {
					return formatter.Success(f)
				}
				formatter.Printf("✓ Saved %s (%d predicate(s), revision %d)\n", f.Name, len(f.Fragments), f.Revision)
				if len(f.Duplicates) > 0 {
					formatter.Printf("  same predicates as: %s\n", strings.Join(f.Duplicates, ", "))
				}
				return nil
			})
		},
	}
}

func newFilterShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <name>",
		Short:         "Show the fragments of a saved filter",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)

			return withStore(opts, formatter, func(s *store.Store) error {
				f, err := s.Get(cmd.Context(), args[0])
				if err != nil {
					return storeFailure(formatter, err)
				}
				if formatter.JSON() {
					return formatter.Success(f)
				}
				formatter.Printf("%s (revision %d, %s)\n", f.Name, f.Revision, f.Fingerprint[:12])
				for _, frag := range f.Fragments {
					formatter.Printf("  %s\n", frag)
				}
				return nil
			})
		},
	}
}

func newFilterListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List saved filters",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)

			return withStore(opts, formatter, func(s *store.Store) error {
				summaries, err := s.List(cmd.Context())
				if err != nil {
					return storeFailure(formatter, err)
				}
				if formatter.JSON() {
					return formatter.Success(summaries)
				}
				if len(summaries) == 0 {
					formatter.Printf("No saved filters\n")
					return nil
				}
				for _, sum := range summaries {
					formatter.Printf("%-24s %d predicate(s)  rev %d\n", sum.Name, sum.Count, sum.Revision)
				}
				return nil
			})
		},
	}
}

func newFilterDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <name>",
		Short:         "Delete a saved filter",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts, cmd)

			return withStore(opts, formatter, func(s *store.Store) error {
				if err := s.Delete(cmd.Context(), args[0]); err != nil {
					return storeFailure(formatter, err)
				}
				if formatter.JSON() {
					return formatter.Success(map[string]string{"deleted": store.NormalizeName(args[0])})
				}
				formatter.Printf("✓ Deleted %s\n", store.NormalizeName(args[0]))
				return nil
			})
		},
	}
}

// withStore opens the configured database for the duration of fn.
func withStore(opts *RootOptions, formatter *OutputFormatter, fn func(*store.Store) error) error {
	s, err := store.Open(opts.DBPath)
	if err != nil {
		return formatter.Fail(ErrCodeStoreFailed, fmt.Sprintf("opening %s: %v", opts.DBPath, err), nil)
	}
	defer s.Close()

	formatter.VerboseLog("Using database %s", opts.DBPath)
	return fn(s)
}

// storeFailure maps store errors to CLI error codes.
func storeFailure(formatter *OutputFormatter, err error) error {
	message := err.Error()
	if hint := errors.FlattenHints(err); hint != "" {
		message += " (hint: " + hint + ")"
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return formatter.Fail(predfile.ErrCodeNotFound, message, nil)
	case errors.Is(err, store.ErrEmptyName):
		return formatter.Fail(ErrCodeBadArgs, message, nil)
	default:
		return formatter.Fail(ErrCodeStoreFailed, message, nil)
	}
}

