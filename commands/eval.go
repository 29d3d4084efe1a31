package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/mks/eval"
)

// newEvalCmd evaluates a unit expression and prints the result.
func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a unit expression",
		Long: `Evaluate an arithmetic expression over the registered units and
constants. Multiplication must be explicit; exponentiation is ^ or **.

  mks eval "3 * kg"
  mks eval "2*m * 2*m"
  mks eval "kg * A^2 / cd / m^2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			v, err := eval.Eval(expr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.FormatPrecision(opts.style, opts.cfg.Display.Precision))
			return nil
		},
	}
}
