package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	so := &options.SearchOptions{}
	mo := &options.MoodOptions{}
	io := &options.IDOptions{}
	var full bool

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls", "list"},
		Short:   "List past entries, newest first.",
		Example: `
gratitude history
gratitude history --search coffee
gratitude history --mood calm --full
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m, err := mo.GetMood()
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			h := history.History{
				Search:  so.Search,
				Mood:    m,
				Full:    full,
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
				Locale:  s.Locale,
			}
			err = h.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSearchArgs(cmd, so)
	options.AddMoodArgs(cmd, mo, "Only show entries with this mood.")
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&full, "full", false, "Print every entry in full instead of a table.")

	topLevel.AddCommand(cmd)
}
