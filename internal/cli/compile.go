package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/tql/internal/predfile"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Output string // output file path
}

// CompilationResult holds the compiled fragments.
type CompilationResult struct {
	Fragments []predfile.Fragment `json:"fragments"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <path>",
		Short: "Compile predicate definitions to TQL fragments",
		Long: `Compile predicate definitions to TQL fragments.

<path> is a YAML file (.yaml, .yml) or a directory holding a CUE package.
Every definition is compiled and every error is reported.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runCompile(opts *CompileOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	defs, err := loadDefinitions(formatter, path)
	if err != nil {
		return err
	}

	fragments, errs := predfile.Compile(defs, predfile.LoadModeCollectAll)
	if len(errs) > 0 {
		return formatter.FailAll("Compilation failed", errs)
	}

	result := &CompilationResult{Fragments: fragments}
	if result.Fragments == nil {
		result.Fragments = []predfile.Fragment{}
	}

	if opts.Output != "" {
		if err := writeFragmentsToFile(result, opts.Output); err != nil {
			return formatter.Fail(predfile.ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
		}
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}

	formatter.Printf("✓ Compiled %d predicate(s)\n\n", len(result.Fragments))
	for _, frag := range result.Fragments {
		formatter.Printf("  %s: %s\n", frag.Name, frag.Text)
	}
	if opts.Output != "" {
		formatter.Printf("\nWrote fragments to %s\n", opts.Output)
	}
	return nil
}

// loadDefinitions loads path in collect-all mode and reports load errors.
func loadDefinitions(formatter *OutputFormatter, path string) ([]predfile.Definition, error) {
	result, errs := predfile.Load(path, predfile.LoadModeCollectAll)
	if result == nil && len(errs) > 0 {
		code, message := errorCode(errs[0])
		return nil, formatter.Fail(code, message, nil)
	}
	if len(errs) > 0 {
		return nil, formatter.FailAll("Loading failed", errs)
	}

	formatter.VerboseLog("Loaded %d definition(s) from %d file(s) in %s",
		len(result.Definitions), result.FileCount, path)
	return result.Definitions, nil
}

// writeFragmentsToFile writes the compilation result as indented JSON.
func writeFragmentsToFile(result *CompilationResult, filename string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling fragments: %w", err)
	}
	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}
