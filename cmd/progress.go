package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kartuli/internal/progress"
)

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "progress",
		Aliases: []string{"stats"},
		Short:   "Show learning progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDeps(cmd)
			if err != nil {
				return err
			}
			defer d.Close()

			s, err := d.progress.Summary(cmd.Context(), d.catalog)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}

			out := cmd.OutOrStdout()
			printTally(out, s.Overall)
			fmt.Fprintln(out, strings.Repeat("─", 40))
			for _, g := range s.Groups {
				printTally(out, g)
			}
			if s.Scored > 0 {
				fmt.Fprintf(out, "\nAverage score: %d%% over %d lessons\n", s.AverageScore, s.Scored)
			}
			if len(s.Recent) > 0 {
				fmt.Fprintln(out, "\nRecently completed:")
				for _, r := range s.Recent[:min(len(s.Recent), 5)] {
					title := r.LessonID
					if l, ok := d.catalog.ByID(r.LessonID); ok {
						title = l.Title
					}
					line := "  " + title
					if score, ok := r.ScoreValue(); ok {
						line += fmt.Sprintf("  %d%%", score)
					}
					if at, ok := r.CompletedTime(); ok {
						line += "  " + at.Local().Format(time.DateOnly)
					}
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
}

func printTally(out io.Writer, t progress.Tally) {
	fmt.Fprintf(out, "%-12s %2d/%-2d  %3d%%\n", t.Label, t.Completed, t.Total, t.Percent)
}
