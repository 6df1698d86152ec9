package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/kartuli/internal/catalog"
)

func newLessonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List the lesson catalog with completion marks",
		RunE: func(cmd *cobra.Command, args []string) error {
			types := catalog.AllTypes()
			if s, _ := cmd.Flags().GetString("type"); s != "" {
				t, err := catalog.ParseType(s)
				if err != nil {
					return err
				}
				types = []catalog.Type{t}
			}

			d, err := openDeps(cmd)
			if err != nil {
				return err
			}
			defer d.Close()

			records, err := d.progress.All(cmd.Context())
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			done := make(map[string]string, len(records))
			for _, r := range records {
				if !r.Completed {
					continue
				}
				done[r.LessonID] = "✓"
				if score, ok := r.ScoreValue(); ok {
					done[r.LessonID] = fmt.Sprintf("✓ %d%%", score)
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tID\tTITLE\tSIZE\tDONE")
			for _, t := range types {
				for _, l := range d.catalog.ByType(t) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", t.DisplayName(), l.ID, l.Title, l.Size(), done[l.ID])
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().String("type", "", "Only list lessons of this type (alphabet, spelling, phrases, grammar, flashcards)")
	return cmd
}
