package cmd

import (
	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kartuli",
		Short: "Learn Georgian in the terminal",
		Long: "Kartuli is a terminal app for learning Georgian: the Mkhedruli alphabet, " +
			"flashcards, everyday phrases, grammar and a spelling bee.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KARTULI_DB)")
	root.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/kartuli/config.yaml)")
	root.Flags().Bool("no-splash", false, "Skip the welcome screen")

	root.AddCommand(
		newLessonsCmd(),
		newProgressCmd(),
		newResetCmd(),
		newVersionCmd(),
	)
	return root
}
