package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/tql/internal/predfile"
	"github.com/roach88/tql/internal/tql"
	"github.com/roach88/tql/internal/value"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Strings bool // treat every value as a string literal
}

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	Op    string `json:"op"`
	Field string `json:"field"`
	Text  string `json:"text"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <op> <field> [value...]",
		Short: "Render one predicate as a TQL fragment",
		Long: `Render one predicate as a TQL fragment.

With no value the operand is absent; one value is a scalar; several
values form a list. Values are read as integers, decimals or booleans
when they parse as such, otherwise as strings. --string keeps them all
as strings.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strings, "string", false, "treat values as strings")

	return cmd
}

func runRender(opts *RenderOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	name, field := args[0], args[1]

	op, err := tql.Build(name, field, operandFromArgs(args[2:], opts.Strings))
	if err != nil {
		return formatter.Fail(predfile.ErrCodeUnknownOperator, err.Error(), map[string]any{"known": tql.Names()})
	}

	formatter.VerboseLog("Rendering %s on %s", op.Kind(), field)

	text, err := op.Serialize()
	if err != nil {
		code := predfile.ErrCodeGeneric
		switch {
		case errors.Is(err, tql.ErrMissingOperand):
			code = predfile.ErrCodeMissingOperand
		case errors.Is(err, tql.ErrMalformedOperand):
			code = predfile.ErrCodeMalformed
		}
		return formatter.Fail(code, err.Error(), nil)
	}

	if formatter.JSON() {
		return formatter.Success(RenderResult{Op: name, Field: field, Text: text})
	}
	return formatter.Success(text)
}

// operandFromArgs maps positional values to an operand: none is absent,
// one is a scalar, more is a list.
func operandFromArgs(args []string, asStrings bool) value.Value {
	parse := value.Parse
	if asStrings {
		parse = func(s string) value.Value { return value.String(s) }
	}

	switch len(args) {
	case 0:
		return nil
	case 1:
		return parse(args[0])
	default:
		list := make(value.List, len(args))
		for i, a := range args {
			list[i] = parse(a)
		}
		return list
	}
}
