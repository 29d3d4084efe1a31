package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/c360studio/mks/eval"
)

// newConvertCmd expresses a quantity as a multiple of a target unit.
func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <unit> <target>",
		Short: "Express a quantity in another unit of the same dimension",
		Long: `Convert evaluates <value>*<unit> and expresses it as a multiple of
<target>. Both unit arguments may be any expression over the registry:

  mks convert 1.32e-5 m "1e-6*m"   # meters to micrometers
  mks convert 2500 "J/s" W         # identical dimensions, ratio 2500`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse value %q: %w", args[0], err)
			}
			unit, err := eval.Eval(args[1])
			if err != nil {
				return fmt.Errorf("parse unit: %w", err)
			}
			target, err := eval.Eval(args[2])
			if err != nil {
				return fmt.Errorf("parse target: %w", err)
			}
			ratio, err := unit.MulScalar(value).In(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", strconv.FormatFloat(ratio, 'g', opts.cfg.Display.Precision, 64))
			return nil
		},
	}
}
