package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd prints version information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mks version %s (build: %s)\n", Version, BuildTime)
		},
	}
}
