package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/c360studio/mks/si"
)

// newUnitsCmd lists every symbol in the SI registry.
func newUnitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the registered units and constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tVALUE\tDIMENSION\tPRETTY")
			for _, sym := range si.Symbols() {
				v, _ := si.Lookup(sym)
				fmt.Fprintf(w, "%s\t%v\t%s\t%s\n",
					sym,
					v.Float(),
					v.Dim(),
					v.Dim().Pretty(opts.style),
				)
			}
			return w.Flush()
		},
	}
}
