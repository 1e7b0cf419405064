package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tql/internal/tql"
)

// NewLintCommand creates the lint command.
func NewLintCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <path>",
		Short: "Report authoring warnings for predicate definitions",
		Long: `Report authoring warnings for predicate definitions.

Warnings never stop a predicate from compiling; they flag predicates that
are unlikely to mean what was intended, such as unescaped quotes or
descending between bounds. Exits 1 when any warning is reported.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(rootOpts, args[0], cmd)
		},
	}
}

func runLint(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	defs, err := loadDefinitions(formatter, path)
	if err != nil {
		return err
	}

	ops := make([]tql.Operator, 0, len(defs))
	var buildErrs []error
	for _, d := range defs {
		op, err := d.Build()
		if err != nil {
			buildErrs = append(buildErrs, err)
			continue
		}
		ops = append(ops, op)
	}
	if len(buildErrs) > 0 {
		return formatter.FailAll("Lint failed", buildErrs)
	}

	result := tql.Lint(ops...)

	if formatter.JSON() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if result.Clean {
		formatter.Printf("✓ No warnings in %d predicate(s)\n", len(ops))
	} else {
		formatter.Printf("⚠ %d warning(s)\n\n", len(result.Warnings))
		for _, w := range result.Warnings {
			formatter.Printf("  %s\n", w)
		}
	}

	if !result.Clean {
		return NewExitError(ExitFailure, fmt.Sprintf("lint reported %d warning(s)", len(result.Warnings)))
	}
	return nil
}

