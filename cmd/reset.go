package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all lesson progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "Clear all lesson progress? [y/N] ")
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			d, err := openDeps(cmd)
			if err != nil {
				return err
			}
			defer d.Close()

			if err := d.progress.ClearAll(cmd.Context()); err != nil {
				return fmt.Errorf("clear progress: %w", err)
			}
			d.log.Info("progress reset from cli")
			fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared.")
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	return cmd
}
