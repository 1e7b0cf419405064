package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/tql/internal/tql"
)

// OperatorInfo describes one registered operator.
type OperatorInfo struct {
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	HasOperand bool   `json:"has_operand"`
}

// NewOperatorsCommand creates the operators command.
func NewOperatorsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "operators",
		Short:         "List registered operators",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperators(rootOpts, cmd)
		},
	}
}

func runOperators(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	infos := make([]OperatorInfo, 0, len(tql.Kinds()))
	for _, name := range tql.Names() {
		kind, err := tql.ParseKind(name)
		if err != nil {
			return err
		}
		infos = append(infos, OperatorInfo{
			Name:       name,
			Symbol:     kind.Symbol(),
			HasOperand: kind.HasOperand(),
		})
	}

	if formatter.JSON() {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		operand := "operand"
		if !info.HasOperand {
			operand = "-"
		}
		formatter.Printf("%-20s %-20s %s\n", info.Name, info.Symbol, operand)
	}
	return nil
}
