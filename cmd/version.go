package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			if short, _ := cmd.Flags().GetBool("short"); !short {
				fmt.Fprint(cmd.OutOrStdout(), figure.NewFigure("kartuli", "small", true).String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "kartuli", version)
		},
	}
	cmd.Flags().Bool("short", false, "Print only the version string")
	return cmd
}
