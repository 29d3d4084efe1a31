package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/mks/dimension"
)

// newDimCmd parses compact dimension notation and shows both renderings.
func newDimCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dim <notation>",
		Short: "Parse dimension notation and print its forms",
		Long: `Parse compact dimension notation and print the canonical and
pretty forms. Letters before the "/" carry exponent +1 each, letters
after it -1 each: "MM/TT" is mass squared over time squared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := dimension.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "canonical: %s\n", v)
			fmt.Fprintf(cmd.OutOrStdout(), "pretty:    %s\n", prettyOrDimensionless(v, opts))
			if sym, ok := v.DerivedSymbol(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "derived:   %s\n", sym)
			}
			return nil
		},
	}
}

func prettyOrDimensionless(v dimension.Vector, opts *options) string {
	if v.IsDimensionless() {
		return dimension.Dimensionless
	}
	return v.Pretty(opts.style)
}
